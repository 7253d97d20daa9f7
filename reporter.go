package localsystem

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"syscall"

	"github.com/charmbracelet/lipgloss"
)

// MessageFormatter resolves a platform error code to a description.
type MessageFormatter interface {
	FormatMessage(code uint32) (string, error)
}

// Styles controls how the reporter renders its lines.
type Styles struct {
	Failure lipgloss.Style
	Success lipgloss.Style
}

// DefaultStyles returns red failure lines and green success lines rendered
// for r. Pass a renderer whose color profile matches the output.
func DefaultStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Failure: r.NewStyle().Foreground(lipgloss.Color("9")),
		Success: r.NewStyle().Foreground(lipgloss.Color("10")),
	}
}

// Reporter writes one line per event to an output stream. It never fails:
// write errors are dropped and a formatter that errors or panics only costs
// the description.
type Reporter struct {
	out       io.Writer
	formatter MessageFormatter
	styles    *Styles
}

// NewReporter returns a Reporter writing to out. styles may be nil for
// plain text.
func NewReporter(out io.Writer, formatter MessageFormatter, styles *Styles) *Reporter {
	return &Reporter{out: out, formatter: formatter, styles: styles}
}

// PlatformFailure reports that the call op failed with err, as
// "<op> failed with error <code>: <description>".
func (r *Reporter) PlatformFailure(op string, err error) {
	var errno syscall.Errno
	if !errors.As(err, &errno) {
		r.Failure("error.generic", op, err)
		return
	}

	code := uint32(errno)
	if description := r.describe(code); description != "" {
		r.Failure("error.platform", op, code, description)
		return
	}
	r.Failure("error.platform_code", op, code)
}

// Failure prints the translated message key as a failure line.
func (r *Reporter) Failure(key string, args ...any) {
	r.line(TF(key, args...), false)
}

// FailureWithHint prints the translated message key followed by the
// translated hint key on the same line. An empty hint prints key alone.
func (r *Reporter) FailureWithHint(key, hint string, args ...any) {
	text := TF(key, args...)
	if hint != "" {
		text += " " + T(hint)
	}
	r.line(text, false)
}

// Success prints the translated message key as a success line.
func (r *Reporter) Success(key string, args ...any) {
	r.line(TF(key, args...), true)
}

func (r *Reporter) describe(code uint32) (description string) {
	if r.formatter == nil {
		return ""
	}
	defer func() {
		if recover() != nil {
			description = ""
		}
	}()

	msg, err := r.formatter.FormatMessage(code)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(msg)
}

func (r *Reporter) line(text string, success bool) {
	if r.styles != nil {
		if success {
			text = r.styles.Success.Render(text)
		} else {
			text = r.styles.Failure.Render(text)
		}
	}
	fmt.Fprintln(r.out, text)
}
