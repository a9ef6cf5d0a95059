package text

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealdesk/dcverify/internal/core/domain"
	"github.com/dealdesk/dcverify/internal/core/ports"
)

type noopLogger struct{}

func (noopLogger) Debugf(context.Context, string, ...any)        {}
func (noopLogger) Infof(context.Context, string, ...any)         {}
func (noopLogger) Warnf(context.Context, string, ...any)         {}
func (noopLogger) Errorf(context.Context, error, string, ...any) {}
func (noopLogger) WithFields(map[string]any) ports.Logger        { return noopLogger{} }

func newTestReporter(cfg Config) (*Reporter, *bytes.Buffer) {
	color.NoColor = true
	buf := &bytes.Buffer{}
	return &Reporter{config: cfg, writer: buf, logger: noopLogger{}}, buf
}

func passingReport() *domain.VerificationReport {
	return &domain.VerificationReport{
		ObjectName: "Articles",
		Object: domain.ObjectIdentity{
			ID: 2048, APIName: "Articles", SingularName: "Article", PluralName: "Articles",
		},
		VerifiedAt: time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC),
		FieldVerdicts: []domain.FieldVerdict{
			{FieldName: "Source", Status: domain.StatusPass, Actual: &domain.ActualField{
				Name: "Source", Type: domain.FieldTypeText, Required: true,
			}},
			{FieldName: "Headline", Status: domain.StatusPass},
		},
		OverallStatus: domain.StatusPass,
		ExitCode:      domain.ExitPass,
	}
}

func failingReport() *domain.VerificationReport {
	report := passingReport()
	report.FieldVerdicts = append(report.FieldVerdicts,
		domain.FieldVerdict{
			FieldName: "PublishDate",
			Status:    domain.StatusMissing,
			Issues:    []domain.Issue{domain.NewFieldNotFoundIssue()},
		},
		domain.FieldVerdict{
			FieldName: "Type",
			Status:    domain.StatusFail,
			Issues: []domain.Issue{
				domain.NewTypeMismatchIssue(domain.FieldTypeChoice, domain.FieldTypeText),
			},
		},
	)
	report.ExtraFields = []string{"LegacyScore", "ImportBatch"}
	report.OverallStatus = domain.StatusFail
	report.ExitCode = domain.ExitVerificationFailed
	return report
}

func TestReporter_Pass(t *testing.T) {
	reporter, buf := newTestReporter(Config{})
	require.NoError(t, reporter.Report(context.Background(), passingReport()))

	out := buf.String()
	assert.Contains(t, out, "DealCloud Schema Verification - Articles")
	assert.Contains(t, out, "[OK]")
	assert.Contains(t, out, "Source")
	assert.Contains(t, out, "Fields Verified: 2/2")
	assert.Contains(t, out, "Schema verification PASSED")
	assert.Contains(t, out, "Ready to proceed with data upload")
	assert.NotContains(t, out, "[X]")
	assert.NotContains(t, out, "[INFO]")
}

func TestReporter_Fail(t *testing.T) {
	reporter, buf := newTestReporter(Config{})
	require.NoError(t, reporter.Report(context.Background(), failingReport()))

	out := buf.String()
	assert.Contains(t, out, "[MISSING]")
	assert.Contains(t, out, "Field not found in DealCloud")
	assert.Contains(t, out, "[X]")
	assert.Contains(t, out, "Type")
	assert.Contains(t, out, "Fields Verified: 2/4")
	assert.Contains(t, out, "Schema verification FAILED")
	assert.Contains(t, out, "Fix the issues above in DealCloud before uploading data")
	assert.Contains(t, out, "[INFO]")
	assert.Contains(t, out, "LegacyScore, ImportBatch")
}

func TestReporter_Verbose(t *testing.T) {
	reporter, buf := newTestReporter(Config{Verbose: true})
	require.NoError(t, reporter.Report(context.Background(), passingReport()))

	assert.Contains(t, buf.String(), "type=Text required=true")
}

func TestReporter_CancelledContext(t *testing.T) {
	reporter, buf := newTestReporter(Config{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.Error(t, reporter.Report(ctx, passingReport()))
	assert.Empty(t, buf.String())
}
