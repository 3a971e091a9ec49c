package domain

import (
	"fmt"
	"strings"
)

// Severity classifies a diagnostic message.
type Severity uint8

const (
	// SeverityInfo is an informational diagnostic.
	SeverityInfo Severity = iota
	// SeverityWarning is a non-fatal diagnostic; compilation still succeeds.
	SeverityWarning
	// SeverityError is a fatal diagnostic; compilation fails.
	SeverityError
)

// String returns the lowercase name of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Diagnostic is a single message produced by the front end or the emitter,
// tied to a location in the unit's source where one is available.
type Diagnostic struct {
	Severity Severity
	Message  string
	// Line is the 1-based source line, or 0 if no location is available.
	Line int
	// Column is the 1-based source column, or 0 if no location is available.
	Column int
}

// String formats the diagnostic for user display.
func (d Diagnostic) String() string {
	if d.Line > 0 {
		if d.Column > 0 {
			return fmt.Sprintf("%d:%d: %s: %s", d.Line, d.Column, d.Severity, d.Message)
		}
		return fmt.Sprintf("%d: %s: %s", d.Line, d.Severity, d.Message)
	}
	return fmt.Sprintf("%s: %s", d.Severity, d.Message)
}

// CompileError is returned when a unit fails to compile due to content-level
// problems. It carries the ordered diagnostic list for user display and
// matches ErrCompilationFailed under errors.Is.
type CompileError struct {
	// Unit is the path of the unit that failed, for display only.
	Unit string
	// Diagnostics is the ordered list of messages reported by the compiler
	// or the emitter. At least one has SeverityError.
	Diagnostics []Diagnostic
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "compilation of %q failed", e.Unit)
	for _, d := range e.Diagnostics {
		b.WriteString("\n  ")
		b.WriteString(d.String())
	}
	return b.String()
}

// Unwrap makes the error match ErrCompilationFailed.
func (e *CompileError) Unwrap() error {
	return ErrCompilationFailed
}

// ErrorDiagnostics returns only the diagnostics with SeverityError.
func (e *CompileError) ErrorDiagnostics() []Diagnostic {
	var out []Diagnostic
	for _, d := range e.Diagnostics {
		if d.Severity == SeverityError {
			out = append(out, d)
		}
	}
	return out
}
