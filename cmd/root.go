package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dealdesk/dcverify/internal/app"
	"github.com/dealdesk/dcverify/internal/core/domain"
	apperrors "github.com/dealdesk/dcverify/internal/errors"
)

var (
	cfgFile    string
	objectName string
	schemaPath string
	reportPath string
	verbose    bool
	noColor    bool
	logLevel   string
	logFormat  string

	// verifyExitCode carries the verification outcome (0 pass, 1 fail) out
	// of RunE; environment failures surface as errors and map to exit 2.
	verifyExitCode int
)

var rootCmd = &cobra.Command{
	Use:   "dcverify",
	Short: "Verifies that a DealCloud object's schema matches the declared contract.",
	Long: `dcverify fetches the live field definitions of a DealCloud object and
compares them against a statically declared expected schema: field types,
required flags, choice sets and reference targets. It is meant to gate the
newsletter ingestion pipeline in CI before any records are uploaded.

Exit codes:
  0  schema matches the contract
  1  schema verification failed (missing fields, type mismatches, ...)
  2  connection or configuration error`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := app.BuildApplicationFromViper(cmd.Context(), viper.GetViper())
		if err != nil {
			printUserFacing(err)
			return err
		}

		report, err := application.Run(cmd.Context())
		if err != nil {
			printUserFacing(err)
			return err
		}

		verifyExitCode = report.ExitCode
		return nil
	},
}

// Execute runs the CLI and returns the contract exit code: 0 pass, 1
// verification failure, 2 connection/configuration error. The caller owns
// process termination so deferred cleanup still runs.
func Execute(ctx context.Context) int {
	err := rootCmd.ExecuteContext(ctx)
	return exitCode(err, verifyExitCode)
}

// exitCode translates the command outcome into the process exit status. Any
// error means the environment failed before a verdict existed; otherwise the
// report's own exit code carries the verdict.
func exitCode(err error, reportCode int) int {
	if err != nil {
		return domain.ExitConfigError
	}
	return reportCode
}

func printUserFacing(err error) {
	msg, suggestion, _ := apperrors.GetUserFacingMessage(err)
	fmt.Fprintf(os.Stderr, "ERROR: %s\n", msg)
	if suggestion != "" {
		fmt.Fprintf(os.Stderr, "Suggestion: %s\n", suggestion)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Configuration file path (default is .dcverify.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Override log format (text, json)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.Flags().StringVar(&objectName, "object-name", "Articles", "Object name to verify")
	rootCmd.Flags().StringVar(&schemaPath, "schema", "", "YAML file overriding the built-in expected schema")
	rootCmd.Flags().StringVar(&reportPath, "report", "", "Path for the JSON verification report")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show detailed field comparison")

	viper.BindPFlag("settings.log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("settings.log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("reporting.text.no_color", rootCmd.PersistentFlags().Lookup("no-color"))
	viper.BindPFlag("verify.object_name", rootCmd.Flags().Lookup("object-name"))
	viper.BindPFlag("verify.schema_path", rootCmd.Flags().Lookup("schema"))
	viper.BindPFlag("reporting.json.path", rootCmd.Flags().Lookup("report"))
	viper.BindPFlag("reporting.text.verbose", rootCmd.Flags().Lookup("verbose"))

	viper.SetEnvPrefix("DCVERIFY")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

func initializeConfig(cmd *cobra.Command) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(".")
		viper.AddConfigPath(home)
		viper.SetConfigName(".dcverify")
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return apperrors.Wrap(err, apperrors.CodeConfigReadError, "failed to read config file")
		}
	}
	return nil
}
