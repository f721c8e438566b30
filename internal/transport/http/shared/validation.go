package shared

import (
	"cmp"
	"net/http"
	"slices"
	"strings"

	"staffdir/internal/transport/http/api"
)

// ValidationIssue names one rejected input and why.
type ValidationIssue struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (i ValidationIssue) String() string {
	if i.Field == "" {
		return i.Reason
	}
	return i.Field + ": " + i.Reason
}

// Validator collects query and form issues. A nil *Validator discards them.
type Validator struct {
	issues []ValidationIssue
}

func NewValidator() *Validator {
	return &Validator{}
}

func (v *Validator) Add(field, reason string) {
	if v == nil {
		return
	}
	if reason = strings.TrimSpace(reason); reason == "" {
		return
	}
	v.issues = append(v.issues, ValidationIssue{Field: strings.TrimSpace(field), Reason: reason})
}

func (v *Validator) HasIssues() bool {
	return v != nil && len(v.issues) > 0
}

// Issues returns a copy ordered by field, then reason.
func (v *Validator) Issues() []ValidationIssue {
	if !v.HasIssues() {
		return nil
	}
	out := slices.Clone(v.issues)
	slices.SortStableFunc(out, func(a, b ValidationIssue) int {
		if c := cmp.Compare(a.Field, b.Field); c != 0 {
			return c
		}
		return cmp.Compare(a.Reason, b.Reason)
	})
	return out
}

// Summary joins every issue into one line for terminal output.
func (v *Validator) Summary() string {
	issues := v.Issues()
	parts := make([]string, len(issues))
	for i, issue := range issues {
		parts[i] = issue.String()
	}
	return strings.Join(parts, "; ")
}

// Reject writes a 400 validation_error and reports true when issues exist.
func (v *Validator) Reject(w http.ResponseWriter, requestID string) bool {
	if !v.HasIssues() {
		return false
	}
	FailValidation(w, requestID, "invalid query parameters", v.Issues())
	return true
}

func FailValidation(w http.ResponseWriter, requestID, message string, issues []ValidationIssue) {
	api.FailWithDetails(w, http.StatusBadRequest, "validation_error", message,
		map[string]any{"fields": issues}, requestID)
}
