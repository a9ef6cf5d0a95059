package config

import (
	"github.com/dealdesk/dcverify/internal/adapters/dealcloud"
	"github.com/dealdesk/dcverify/internal/log"
	jsonreport "github.com/dealdesk/dcverify/internal/reporting/json"
	"github.com/dealdesk/dcverify/internal/reporting/text"
)

type Config struct {
	Settings  SettingsConfig   `mapstructure:"settings" yaml:"settings"`
	DealCloud dealcloud.Config `mapstructure:"dealcloud" yaml:"dealcloud" validate:"required"`
	Verify    VerifyConfig     `mapstructure:"verify" yaml:"verify"`
	Reporting ReportingConfig  `mapstructure:"reporting" yaml:"reporting"`
}

type SettingsConfig struct {
	LogLevel  log.Level  `mapstructure:"log_level" yaml:"log_level"`
	LogFormat log.Format `mapstructure:"log_format" yaml:"log_format"`
}

type VerifyConfig struct {
	// ObjectName is the remote object to verify. The built-in contract
	// targets Articles; a sandbox copy can be checked with --object-name.
	ObjectName string `mapstructure:"object_name" yaml:"object_name" validate:"required"`

	// SchemaPath optionally points at a YAML declaration that replaces the
	// built-in expected schema.
	SchemaPath string `mapstructure:"schema_path" yaml:"schema_path"`
}

type ReportingConfig struct {
	Text text.Config       `mapstructure:"text" yaml:"text"`
	JSON jsonreport.Config `mapstructure:"json" yaml:"json"`
}

func DefaultConfig() *Config {
	return &Config{
		Settings: SettingsConfig{
			LogLevel:  log.LevelInfo,
			LogFormat: log.FormatText,
		},
		Verify: VerifyConfig{
			ObjectName: "Articles",
		},
		Reporting: ReportingConfig{
			Text: text.Config{NoColor: false},
			JSON: jsonreport.Config{Path: jsonreport.DefaultReportPath},
		},
	}
}
