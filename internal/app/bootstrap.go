package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/dealdesk/dcverify/internal/adapters/dealcloud"
	"github.com/dealdesk/dcverify/internal/config"
	"github.com/dealdesk/dcverify/internal/core/domain"
	"github.com/dealdesk/dcverify/internal/core/ports"
	"github.com/dealdesk/dcverify/internal/core/service"
	"github.com/dealdesk/dcverify/internal/errors"
	"github.com/dealdesk/dcverify/internal/log"
	"github.com/dealdesk/dcverify/internal/registry"
	jsonreport "github.com/dealdesk/dcverify/internal/reporting/json"
	"github.com/dealdesk/dcverify/internal/reporting/text"
)

// registerDefaults seeds viper with every configuration key. Unmarshal only
// walks keys viper already knows about, so without this an env-only setup
// (DCVERIFY_DEALCLOUD_* and no config file) would never reach the struct.
func registerDefaults(v *viper.Viper) {
	defaults := config.DefaultConfig()
	v.SetDefault("settings.log_level", string(defaults.Settings.LogLevel))
	v.SetDefault("settings.log_format", string(defaults.Settings.LogFormat))
	v.SetDefault("dealcloud.site_url", defaults.DealCloud.SiteURL)
	v.SetDefault("dealcloud.client_id", defaults.DealCloud.ClientID)
	v.SetDefault("dealcloud.client_secret", defaults.DealCloud.ClientSecret)
	v.SetDefault("dealcloud.timeout_seconds", defaults.DealCloud.TimeoutSeconds)
	v.SetDefault("dealcloud.requests_per_second", defaults.DealCloud.RequestsPerSecond)
	v.SetDefault("verify.object_name", defaults.Verify.ObjectName)
	v.SetDefault("verify.schema_path", defaults.Verify.SchemaPath)
	v.SetDefault("reporting.text.no_color", defaults.Reporting.Text.NoColor)
	v.SetDefault("reporting.text.verbose", defaults.Reporting.Text.Verbose)
	v.SetDefault("reporting.json.path", defaults.Reporting.JSON.Path)
}

// BuildApplicationFromViper assembles the whole tool from configuration:
// logger, expected schema, DealCloud provider, engine and reporters. Any
// failure here is a configuration error, before any remote call is made.
func BuildApplicationFromViper(ctx context.Context, v *viper.Viper) (*Application, error) {
	registerDefaults(v)

	cfg := config.DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, errors.CodeConfigParseError, "failed to unmarshal configuration")
	}

	logCfg := log.Config{Level: cfg.Settings.LogLevel, Format: cfg.Settings.LogFormat}
	logger, err := log.NewLogger(logCfg)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "logger initialization failed")
	}
	logger.Debugf(ctx, "Logger initialized (level: %s, format: %s)", cfg.Settings.LogLevel, cfg.Settings.LogFormat)
	if v.ConfigFileUsed() != "" {
		logger.Debugf(ctx, "Using configuration file: %s", v.ConfigFileUsed())
	}

	if err := validateConfig(ctx, cfg); err != nil {
		logger.Errorf(ctx, err, "Configuration validation failed")
		return nil, err
	}

	expected, err := loadExpectedSchema(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	provider, err := dealcloud.NewProvider(cfg.DealCloud, logger)
	if err != nil {
		return nil, err
	}
	logger.Debugf(ctx, "DealCloud provider initialized for %s", cfg.DealCloud.SiteURL)

	engine, err := service.NewVerificationEngine(expected, provider,
		logger.WithFields(map[string]any{"component": "engine"}))
	if err != nil {
		return nil, err
	}

	textReporter, err := text.NewReporter(cfg.Reporting.Text,
		logger.WithFields(map[string]any{"reporter": text.ReporterTypeText}))
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "failed to initialize text reporter")
	}
	jsonReporter, err := jsonreport.NewReporter(cfg.Reporting.JSON,
		logger.WithFields(map[string]any{"reporter": jsonreport.ReporterTypeJSON}))
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "failed to initialize JSON reporter")
	}

	logger.Debugf(ctx, "Application bootstrap complete")
	return &Application{
		Engine:    engine,
		Fetcher:   provider,
		Explorer:  provider,
		Reporters: []ports.Reporter{textReporter, jsonReporter},
		Logger:    logger,
		Config:    cfg,
	}, nil
}

func validateConfig(ctx context.Context, cfg *config.Config) error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	err := validate.StructCtx(ctx, cfg)
	if err == nil {
		return nil
	}

	var details strings.Builder
	details.WriteString("Configuration validation failed:")
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range validationErrors {
			details.WriteString(fmt.Sprintf("\n - Field '%s': failed '%s' validation", fe.Namespace(), fe.Tag()))
		}
	} else {
		details.WriteString(" " + err.Error())
	}
	return errors.NewUserFacing(errors.CodeConfigValidation, details.String(),
		"Check the configuration file, flags and DCVERIFY_* environment variables.")
}

func loadExpectedSchema(ctx context.Context, cfg *config.Config, logger ports.Logger) (domain.ExpectedObjectSchema, error) {
	if cfg.Verify.SchemaPath == "" {
		expected := registry.Default()
		logger.Debugf(ctx, "Using built-in expected schema for object '%s' (%d fields)",
			expected.ObjectName, len(expected.Fields))
		return expected, nil
	}

	expected, err := registry.Load(cfg.Verify.SchemaPath)
	if err != nil {
		return domain.ExpectedObjectSchema{}, err
	}
	logger.Infof(ctx, "Loaded expected schema for object '%s' from %s (%d fields)",
		expected.ObjectName, cfg.Verify.SchemaPath, len(expected.Fields))
	return expected, nil
}
