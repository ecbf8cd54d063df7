package errors

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// profile decides how Format colours its output. It follows the terminal
// attached to stdout.
var profile = termenv.EnvColorProfile()

// DisableColors makes Format emit plain text.
func DisableColors() { profile = termenv.Ascii }

// EnableColors restores colour detection from the environment.
func EnableColors() { profile = termenv.EnvColorProfile() }

func styled(s string, color string, bold bool) string {
	st := profile.String(s)
	if color != "" {
		st = st.Foreground(profile.Color(color))
	}
	if bold {
		st = st.Bold()
	}
	return st.String()
}

const (
	ansiRed  = "1"
	ansiCyan = "6"
	ansiGray = "8"
)

// Format renders the error for a terminal: a headline, the source excerpt
// with a caret under the column, the detail wrapped to 70 columns and the
// hint.
func (e *Error) Format() string {
	var b strings.Builder

	head := "ERROR: "
	if e.Code != "" {
		head = "ERROR " + e.Code + ": "
	}
	b.WriteString("\n" + styled(head, ansiRed, true) + e.Message + "\n\n")

	if e.Location != nil {
		b.WriteString("  " + styled(e.Location.String(), ansiCyan, false) + "\n\n")
		writeExcerpt(&b, e)
	}

	if detail := e.fullDetail(); detail != "" {
		for _, line := range wrapText(detail, 70) {
			b.WriteString("  " + line + "\n")
		}
		b.WriteString("\n")
	}

	if e.Suggestion != "" {
		b.WriteString("  " + styled("Hint: ", ansiCyan, false) + e.Suggestion + "\n\n")
	}
	return b.String()
}

func (e *Error) fullDetail() string {
	switch {
	case e.Wrapped == nil:
		return e.Detail
	case e.Detail == "":
		return e.Wrapped.Error()
	default:
		return e.Detail + ": " + e.Wrapped.Error()
	}
}

func writeExcerpt(b *strings.Builder, e *Error) {
	if len(e.Context) == 0 {
		return
	}
	bar := styled(" │ ", ansiGray, false)
	for i, line := range e.Context {
		n := e.ContextStart + i
		if n != e.Location.Line {
			fmt.Fprintf(b, "    %4d%s%s\n", n, bar, line)
			continue
		}
		fmt.Fprintf(b, "  %s%4d%s%s\n", styled("→ ", ansiRed, false), n, bar, line)
		if col := e.Location.Column; col > 0 {
			b.WriteString("       " + styled("│ ", ansiGray, false) + strings.Repeat(" ", col-1) + styled("^", ansiRed, false) + "\n")
		}
	}
	b.WriteString("\n")
}

// FormatCompact is the single-line form used in log records.
func (e *Error) FormatCompact() string {
	if e.Location == nil {
		return e.Error()
	}
	return e.Location.String() + ": " + e.Error()
}

// wrapText breaks text on word boundaries into lines of at most width
// characters. A single long word gets its own line.
func wrapText(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	lines := []string{words[0]}
	for _, w := range words[1:] {
		last := &lines[len(lines)-1]
		if len(*last)+1+len(w) > width {
			lines = append(lines, w)
			continue
		}
		*last += " " + w
	}
	return lines
}

// Fprint writes err to w, using Format for coded errors.
func Fprint(w io.Writer, err error) {
	if e, ok := As(err); ok {
		io.WriteString(w, e.Format())
		return
	}
	fmt.Fprintf(w, "\n%s %s\n\n", styled("ERROR:", ansiRed, true), err)
}
