package service

import (
	"context"
	"time"

	"github.com/dealdesk/dcverify/internal/core/domain"
	"github.com/dealdesk/dcverify/internal/core/ports"
	"github.com/dealdesk/dcverify/internal/errors"
)

// VerificationEngine runs the single linear verification pass: fetch the
// live schema, compare it field by field against the declared contract, and
// assemble the verdict report. Mismatches are data; only fetch failures
// escalate as errors.
type VerificationEngine struct {
	expected domain.ExpectedObjectSchema
	fetcher  ports.SchemaFetcher
	logger   ports.Logger
	now      func() time.Time
}

func NewVerificationEngine(
	expected domain.ExpectedObjectSchema,
	fetcher ports.SchemaFetcher,
	logger ports.Logger,
) (*VerificationEngine, error) {
	if fetcher == nil {
		return nil, errors.New(errors.CodeInternal, "schema fetcher cannot be nil")
	}
	if len(expected.Fields) == 0 {
		return nil, errors.New(errors.CodeSchemaRegistry, "expected schema declares no fields")
	}

	return &VerificationEngine{
		expected: expected,
		fetcher:  fetcher,
		logger:   logger,
		now:      time.Now,
	}, nil
}

func (e *VerificationEngine) Verify(ctx context.Context, objectName string) (*domain.VerificationReport, error) {
	expected := e.expected
	if objectName == "" {
		objectName = expected.ObjectName
	} else {
		// The contract can be checked against a differently named object,
		// e.g. a sandbox copy. The report names the object actually verified.
		expected.ObjectName = objectName
	}

	e.logger.Infof(ctx, "Fetching live schema for object '%s' via %s provider", objectName, e.fetcher.Type())
	actual, err := e.fetcher.FetchSchema(ctx, objectName)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodePlatformAPIError, "failed to fetch live schema")
	}
	e.logger.Infof(ctx, "Retrieved %d fields for object '%s'", len(actual.Fields), actual.APIName)

	report := Aggregate(expected, actual, e.now().UTC())

	e.logger.Infof(ctx, "Verification complete: %d/%d fields passed, overall %s",
		report.PassedCount(), len(report.FieldVerdicts), report.OverallStatus)
	return report, nil
}

// Aggregate compares every expected field, in declaration order, against the
// live schema and folds the verdicts into a report. It is a pure function of
// its inputs so behaviour is testable with in-memory fixtures.
func Aggregate(
	expected domain.ExpectedObjectSchema,
	actual *domain.ActualObjectSchema,
	verifiedAt time.Time,
) *domain.VerificationReport {
	comparator := NewFieldComparator()

	verdicts := make([]domain.FieldVerdict, 0, len(expected.Fields))
	expectedNames := make(map[string]struct{}, len(expected.Fields))

	for _, expField := range expected.Fields {
		expectedNames[expField.Name] = struct{}{}

		actField, _ := actual.FieldByName(expField.Name)
		verdicts = append(verdicts, comparator.Compare(expField, actField))
	}

	// Extra fields are informational only and never downgrade the verdict.
	var extras []string
	seen := make(map[string]struct{})
	for _, actField := range actual.Fields {
		if _, expectedField := expectedNames[actField.Name]; expectedField {
			continue
		}
		if _, dup := seen[actField.Name]; dup {
			continue
		}
		seen[actField.Name] = struct{}{}
		extras = append(extras, actField.Name)
	}

	overall := domain.StatusPass
	exitCode := domain.ExitPass
	for _, v := range verdicts {
		if !v.Passed() {
			overall = domain.StatusFail
			exitCode = domain.ExitVerificationFailed
			break
		}
	}

	return &domain.VerificationReport{
		ObjectName:    expected.ObjectName,
		Object:        actual.ObjectIdentity,
		VerifiedAt:    verifiedAt,
		FieldVerdicts: verdicts,
		ExtraFields:   extras,
		OverallStatus: overall,
		ExitCode:      exitCode,
	}
}
