package domain

import (
	"fmt"
	"strings"
	"time"
)

// VerdictStatus is the outcome of verifying one expected field.
// The string values are part of the persisted report contract.
type VerdictStatus string

const (
	StatusPass VerdictStatus = "PASS"
	StatusFail VerdictStatus = "FAIL"

	// StatusMissing is a distinguished failure: no field with the expected
	// name exists on the remote object at all.
	StatusMissing VerdictStatus = "MISSING"
)

// IssueKind identifies one specific reason a field verdict failed.
// The string values are part of the persisted report contract.
type IssueKind string

const (
	IssueTypeMismatch      IssueKind = "TYPE_MISMATCH"
	IssueRequiredMismatch  IssueKind = "REQUIRED_MISMATCH"
	IssueMissingChoices    IssueKind = "MISSING_CHOICES"
	IssueReferenceMismatch IssueKind = "REFERENCE_MISMATCH"
	IssueFieldNotFound     IssueKind = "FIELD_NOT_FOUND"
)

// Issue is a purely descriptive mismatch record. Only the attributes
// relevant to its kind are populated; it is never raised as an error.
type Issue struct {
	Kind             IssueKind `json:"kind"`
	ExpectedType     FieldType `json:"expected_type,omitempty"`
	ActualType       FieldType `json:"actual_type,omitempty"`
	ExpectedRequired *bool     `json:"expected_required,omitempty"`
	ActualRequired   *bool     `json:"actual_required,omitempty"`
	MissingChoices   []string  `json:"missing_choices,omitempty"`
	ExpectedTargets  []string  `json:"expected_targets,omitempty"`
	ActualTargets    []string  `json:"actual_targets,omitempty"`
}

func NewTypeMismatchIssue(expected, actual FieldType) Issue {
	return Issue{Kind: IssueTypeMismatch, ExpectedType: expected, ActualType: actual}
}

func NewRequiredMismatchIssue(expected, actual bool) Issue {
	return Issue{Kind: IssueRequiredMismatch, ExpectedRequired: &expected, ActualRequired: &actual}
}

func NewMissingChoicesIssue(missing []string) Issue {
	return Issue{Kind: IssueMissingChoices, MissingChoices: missing}
}

func NewReferenceMismatchIssue(expected, actual []string) Issue {
	return Issue{Kind: IssueReferenceMismatch, ExpectedTargets: expected, ActualTargets: actual}
}

func NewFieldNotFoundIssue() Issue {
	return Issue{Kind: IssueFieldNotFound}
}

// Summary renders the issue as a one-line human-readable message.
func (i Issue) Summary() string {
	switch i.Kind {
	case IssueTypeMismatch:
		return fmt.Sprintf("Type mismatch: expected %s, got %s", i.ExpectedType, i.ActualType)
	case IssueRequiredMismatch:
		expected, actual := false, false
		if i.ExpectedRequired != nil {
			expected = *i.ExpectedRequired
		}
		if i.ActualRequired != nil {
			actual = *i.ActualRequired
		}
		if expected && !actual {
			return "Required mismatch: expected required, but field is optional"
		}
		return fmt.Sprintf("Required mismatch: expected %t, got %t", expected, actual)
	case IssueMissingChoices:
		return fmt.Sprintf("Missing choice values: [%s]", strings.Join(i.MissingChoices, ", "))
	case IssueReferenceMismatch:
		return fmt.Sprintf("Reference mismatch: expected targets [%s], got [%s]",
			strings.Join(i.ExpectedTargets, ", "), strings.Join(i.ActualTargets, ", "))
	case IssueFieldNotFound:
		return "Field not found on the remote object"
	default:
		return string(i.Kind)
	}
}

// FieldVerdict is the outcome of comparing one expected field against its
// live counterpart (or its absence). Actual is nil when the field is missing.
type FieldVerdict struct {
	FieldName string
	Status    VerdictStatus
	Issues    []Issue
	Actual    *ActualField
}

func (v FieldVerdict) Passed() bool {
	return v.Status == StatusPass
}

// Process exit codes. The exit code is the sole automation-facing signal;
// the rendered report carries the detail.
const (
	ExitPass               = 0
	ExitVerificationFailed = 1
	ExitConfigError        = 2
)

// VerificationReport is the single artifact of a verification run. It is
// constructed once, after the comparison pass completes, and never mutated.
type VerificationReport struct {
	ObjectName    string
	Object        ObjectIdentity
	VerifiedAt    time.Time
	FieldVerdicts []FieldVerdict
	ExtraFields   []string
	OverallStatus VerdictStatus
	ExitCode      int
}

func (r *VerificationReport) PassedCount() int {
	n := 0
	for _, v := range r.FieldVerdicts {
		if v.Passed() {
			n++
		}
	}
	return n
}

func (r *VerificationReport) FailedCount() int {
	return len(r.FieldVerdicts) - r.PassedCount()
}
