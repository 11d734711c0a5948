// Package diag carries the non-fatal diagnostics the generator attaches to
// its output. Structural failures abort generation with a plain error; these
// values cover everything that should not stop the rest of a source unit from
// being processed.
package diag

import (
	"fmt"
	"go/token"
	"strings"
)

// Severity ranks a diagnostic.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Diagnostic is a position-tagged message collected alongside valid output.
type Diagnostic struct {
	Severity Severity `json:"severity"`
	Pos      string   `json:"pos,omitempty"`
	Message  string   `json:"message"`
}

// Warningf builds a warning diagnostic at the given position.
func Warningf(pos token.Position, format string, args ...any) Diagnostic {
	return Diagnostic{
		Severity: SeverityWarning,
		Pos:      position(pos),
		Message:  fmt.Sprintf(format, args...),
	}
}

// Errorf builds an error diagnostic at the given position.
func Errorf(pos token.Position, format string, args ...any) Diagnostic {
	return Diagnostic{
		Severity: SeverityError,
		Pos:      position(pos),
		Message:  fmt.Sprintf(format, args...),
	}
}

// String renders the diagnostic in the familiar file:line:col form.
func (d Diagnostic) String() string {
	var b strings.Builder
	if d.Pos != "" {
		b.WriteString(d.Pos)
		b.WriteString(": ")
	}
	b.WriteString(string(d.Severity))
	b.WriteString(": ")
	b.WriteString(d.Message)
	return b.String()
}

func position(pos token.Position) string {
	if !pos.IsValid() {
		return ""
	}
	return pos.String()
}
