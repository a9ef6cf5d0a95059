package service

import (
	"github.com/dealdesk/dcverify/internal/core/domain"
)

// FieldComparator verifies one expected field against its live counterpart.
// It is stateless: identical inputs always produce identical verdicts, and
// every mismatch becomes an Issue value rather than an error.
type FieldComparator struct{}

func NewFieldComparator() *FieldComparator {
	return &FieldComparator{}
}

// Compare produces the verdict for a single field. Actual may be nil, which
// yields a Missing verdict. All applicable checks run even after one fails,
// so one verdict can carry several issues.
func (c *FieldComparator) Compare(expected domain.ExpectedField, actual *domain.ActualField) domain.FieldVerdict {
	if actual == nil {
		return domain.FieldVerdict{
			FieldName: expected.Name,
			Status:    domain.StatusMissing,
			Issues:    []domain.Issue{domain.NewFieldNotFoundIssue()},
		}
	}

	issues := make([]domain.Issue, 0, 2)

	// Canonical types must be equal, not merely compatible. An unresolved
	// remote type code arrives here as Unknown and fails the same way.
	if expected.Type != actual.Type {
		issues = append(issues, domain.NewTypeMismatchIssue(expected.Type, actual.Type))
	}

	if expected.Required != actual.Required {
		issues = append(issues, domain.NewRequiredMismatchIssue(expected.Required, actual.Required))
	}

	if expected.Type == domain.FieldTypeChoice && len(expected.Choices) > 0 {
		if missing := subtract(expected.Choices, actual.Choices); len(missing) > 0 {
			issues = append(issues, domain.NewMissingChoicesIssue(missing))
		}
	}

	if expected.Type == domain.FieldTypeReference && len(expected.ReferenceTargets) > 0 {
		if missing := subtract(expected.ReferenceTargets, actual.ReferenceTargets); len(missing) > 0 {
			issues = append(issues, domain.NewReferenceMismatchIssue(expected.ReferenceTargets, actual.ReferenceTargets))
		}
	}

	status := domain.StatusPass
	if len(issues) > 0 {
		status = domain.StatusFail
	}

	return domain.FieldVerdict{
		FieldName: expected.Name,
		Status:    status,
		Issues:    issues,
		Actual:    actual,
	}
}

// subtract returns the values of want absent from have, preserving the
// order of want. Extra values in have are allowed and never reported.
func subtract(want, have []string) []string {
	haveSet := make(map[string]struct{}, len(have))
	for _, v := range have {
		haveSet[v] = struct{}{}
	}
	var missing []string
	for _, v := range want {
		if _, ok := haveSet[v]; !ok {
			missing = append(missing, v)
		}
	}
	return missing
}
