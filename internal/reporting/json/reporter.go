package json

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/dealdesk/dcverify/internal/core/domain"
	"github.com/dealdesk/dcverify/internal/core/ports"
	"github.com/dealdesk/dcverify/internal/errors"
)

const ReporterTypeJSON = "json"

const DefaultReportPath = "data/schema_verification_report.json"

type Config struct {
	Path string `mapstructure:"path" yaml:"path"`
}

// Reporter persists the verification report as a JSON document. The field
// names and enumerated values in the document are a stable contract consumed
// by CI and the upload step; change them only with a version bump.
type Reporter struct {
	config Config
	logger ports.Logger
}

func NewReporter(cfg Config, logger ports.Logger) (*Reporter, error) {
	if cfg.Path == "" {
		cfg.Path = DefaultReportPath
	}
	return &Reporter{config: cfg, logger: logger}, nil
}

type document struct {
	ObjectName    string       `json:"object_name"`
	Object        objectDoc    `json:"object"`
	VerifiedAt    string       `json:"verified_at"`
	Results       []resultDoc  `json:"results"`
	ExtraFields   []string     `json:"extra_fields"`
	OverallStatus string       `json:"overall_status"`
	ExitCode      int          `json:"exit_code"`
	Summary       summaryDoc   `json:"summary"`
}

type objectDoc struct {
	ID           int    `json:"id"`
	APIName      string `json:"api_name"`
	SingularName string `json:"singular_name"`
	PluralName   string `json:"plural_name"`
}

type resultDoc struct {
	FieldName string         `json:"field_name"`
	Status    string         `json:"status"`
	Issues    []domain.Issue `json:"issues"`
}

type summaryDoc struct {
	TotalFields  int `json:"total_fields"`
	PassedFields int `json:"passed_fields"`
	FailedFields int `json:"failed_fields"`
}

func (r *Reporter) Report(ctx context.Context, report *domain.VerificationReport) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	doc := document{
		ObjectName: report.ObjectName,
		Object: objectDoc{
			ID:           report.Object.ID,
			APIName:      report.Object.APIName,
			SingularName: report.Object.SingularName,
			PluralName:   report.Object.PluralName,
		},
		VerifiedAt:    report.VerifiedAt.UTC().Format(time.RFC3339),
		Results:       make([]resultDoc, 0, len(report.FieldVerdicts)),
		ExtraFields:   report.ExtraFields,
		OverallStatus: string(report.OverallStatus),
		ExitCode:      report.ExitCode,
		Summary: summaryDoc{
			TotalFields:  len(report.FieldVerdicts),
			PassedFields: report.PassedCount(),
			FailedFields: report.FailedCount(),
		},
	}
	if doc.ExtraFields == nil {
		doc.ExtraFields = []string{}
	}

	for _, verdict := range report.FieldVerdicts {
		issues := verdict.Issues
		if issues == nil {
			issues = []domain.Issue{}
		}
		doc.Results = append(doc.Results, resultDoc{
			FieldName: verdict.FieldName,
			Status:    string(verdict.Status),
			Issues:    issues,
		})
	}

	if dir := filepath.Dir(r.config.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(err, errors.CodeReportWriteError, "failed to create report directory")
		}
	}

	file, err := os.Create(r.config.Path)
	if err != nil {
		return errors.Wrap(err, errors.CodeReportWriteError, "failed to create report file")
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return errors.Wrap(err, errors.CodeReportWriteError, "failed to encode report document")
	}

	r.logger.Infof(ctx, "Verification report saved to %s", r.config.Path)
	return nil
}
