package models

// IssueKind separates blocking problems from non-blocking concerns.
type IssueKind string

const (
	IssueError   IssueKind = "error"
	IssueWarning IssueKind = "warning"
)

// Issue is one validation finding. Code is stable and machine-readable;
// Message is the human-readable Portuguese text shown to users.
type Issue struct {
	Kind    IssueKind `json:"kind"`
	Code    string    `json:"code"`
	Message string    `json:"message"`
	// Field names the record field the issue relates to, e.g. "orderNumber".
	Field string `json:"field,omitempty"`
}

// ValidationResult is the outcome of running all consistency rules over
// an ExtractedOrder. Errors and Warnings hold the issue messages in rule
// order; Issues carries the same findings with their codes and kinds.
type ValidationResult struct {
	Issues   []Issue  `json:"issues"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
	IsValid  bool     `json:"isValid"`
}

// NewValidationResult derives the flat error/warning lists and the
// validity flag from a sequence of issues.
func NewValidationResult(issues []Issue) ValidationResult {
	result := ValidationResult{
		Issues:   issues,
		Errors:   []string{},
		Warnings: []string{},
	}
	for _, issue := range issues {
		switch issue.Kind {
		case IssueError:
			result.Errors = append(result.Errors, issue.Message)
		case IssueWarning:
			result.Warnings = append(result.Warnings, issue.Message)
		}
	}
	result.IsValid = len(result.Errors) == 0
	return result
}
