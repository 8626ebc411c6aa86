// Package notify provides terminal implementations of the reminder sinks.
package notify

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Terminal writes reminder notifications to a terminal.
type Terminal struct {
	Out io.Writer
}

// Notify prints the reminder. It never fails on a usable writer; a nil Out
// falls back to the color-aware stdout.
func (t *Terminal) Notify(title, body string) error {
	out := t.Out
	if out == nil {
		out = color.Output
	}
	b := color.New(color.Bold)
	if _, err := b.Fprintf(out, "\n%s\n", title); err != nil {
		return err
	}
	_, err := fmt.Fprintf(out, "%s\n", body)
	return err
}

// Bell rings the terminal bell as the audio sink.
type Bell struct {
	Out io.Writer
}

// Beep is fire-and-forget; write failures are swallowed.
func (b *Bell) Beep() {
	out := b.Out
	if out == nil {
		out = os.Stdout
	}
	_, _ = fmt.Fprint(out, "\a")
}
