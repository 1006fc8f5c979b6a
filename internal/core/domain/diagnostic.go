package domain

// Severity classifies a diagnostic raised during reconciliation or
// extraction.
type Severity string

const (
	// SeverityError marks a recoverable failure (mismatched tags,
	// unreadable file, failed write). The run still completes.
	SeverityError Severity = "error"

	// SeverityWarning marks a suspicious but tolerated condition
	// (duplicate definition, contentless snippet).
	SeverityWarning Severity = "warning"

	// SeverityInfo marks an expected skip (inactive snippet whose
	// target file already exists).
	SeverityInfo Severity = "info"
)

// Diagnostic is one recoverable condition surfaced to the user. All
// diagnostics from a run are collected and rendered after the report;
// none of them abort the run.
type Diagnostic struct {
	// Severity classifies the condition.
	Severity Severity

	// Message is the human-readable description.
	Message string
}

// ErrorDiag builds an error-severity diagnostic.
func ErrorDiag(message string) Diagnostic {
	return Diagnostic{Severity: SeverityError, Message: message}
}

// WarningDiag builds a warning-severity diagnostic.
func WarningDiag(message string) Diagnostic {
	return Diagnostic{Severity: SeverityWarning, Message: message}
}

// InfoDiag builds an info-severity diagnostic.
func InfoDiag(message string) Diagnostic {
	return Diagnostic{Severity: SeverityInfo, Message: message}
}
