package text

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/dealdesk/dcverify/internal/core/domain"
	"github.com/dealdesk/dcverify/internal/core/ports"
)

const ReporterTypeText = "text"

type Config struct {
	NoColor bool `mapstructure:"no_color" yaml:"no_color"`
	Verbose bool `mapstructure:"verbose" yaml:"verbose"`
}

// Reporter renders the verification report as a human-readable summary on
// stdout, in the banner style of the rest of the pipeline tooling.
type Reporter struct {
	config Config
	writer io.Writer
	logger ports.Logger
}

func NewReporter(cfg Config, logger ports.Logger) (*Reporter, error) {
	if cfg.NoColor || !isTerminal(os.Stdout) {
		color.NoColor = true
	}
	return &Reporter{
		config: cfg,
		writer: os.Stdout,
		logger: logger,
	}, nil
}

func isTerminal(f *os.File) bool {
	stat, _ := f.Stat()
	return (stat.Mode() & os.ModeCharDevice) != 0
}

func (r *Reporter) Report(ctx context.Context, report *domain.VerificationReport) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()

	banner := strings.Repeat("=", 80)

	fmt.Fprintln(r.writer, banner)
	fmt.Fprintf(r.writer, "DealCloud Schema Verification - %s\n", report.ObjectName)
	fmt.Fprintln(r.writer, banner)
	fmt.Fprintf(r.writer, "Object: %s (id %d, singular %q, plural %q)\n",
		report.Object.APIName, report.Object.ID, report.Object.SingularName, report.Object.PluralName)
	fmt.Fprintf(r.writer, "Verified at: %s\n\n", report.VerifiedAt.Format("2006-01-02 15:04:05 MST"))

	tw := tabwriter.NewWriter(r.writer, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "Status\tField\tDetails")
	fmt.Fprintln(tw, "------\t-----\t-------")

	for _, verdict := range report.FieldVerdicts {
		switch verdict.Status {
		case domain.StatusPass:
			details := "OK"
			if r.config.Verbose && verdict.Actual != nil {
				details = fmt.Sprintf("type=%s required=%t", verdict.Actual.Type, verdict.Actual.Required)
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\n", green("[OK]"), verdict.FieldName, details)
		case domain.StatusMissing:
			fmt.Fprintf(tw, "%s\t%s\t%s\n", yellow("[MISSING]"), verdict.FieldName,
				"Field not found in DealCloud")
		default:
			fmt.Fprintf(tw, "%s\t%s\t%s\n", red("[X]"), verdict.FieldName, issueSummaries(verdict.Issues))
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(report.ExtraFields) > 0 {
		fmt.Fprintf(r.writer, "\n%s %d extra field(s) not covered by the contract: %s\n",
			cyan("[INFO]"), len(report.ExtraFields), strings.Join(report.ExtraFields, ", "))
	}

	fmt.Fprintf(r.writer, "\nFields Verified: %d/%d\n", report.PassedCount(), len(report.FieldVerdicts))

	if report.OverallStatus == domain.StatusPass {
		fmt.Fprintf(r.writer, "\n%s Schema verification PASSED\n", green("[OK]"))
		fmt.Fprintln(r.writer, "  All expected fields are correctly configured")
		fmt.Fprintln(r.writer, "  --> Ready to proceed with data upload")
	} else {
		fmt.Fprintf(r.writer, "\n%s Schema verification FAILED\n", red("[X]"))
		fmt.Fprintln(r.writer, "  --> Fix the issues above in DealCloud before uploading data")
	}
	fmt.Fprintln(r.writer, banner)

	return nil
}

func issueSummaries(issues []domain.Issue) string {
	parts := make([]string, 0, len(issues))
	for _, issue := range issues {
		parts = append(parts, issue.Summary())
	}
	return strings.Join(parts, "; ")
}
