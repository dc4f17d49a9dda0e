// Package term adapts the pipeline's ports to an interactive terminal:
// a stdin confirmation prompt and a colored duplicate-report renderer.
package term

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Confirmer implements ports.Confirmer with an interactive prompt. Only a
// literal "yes" counts as affirmative; anything else, including EOF,
// declines.
type Confirmer struct {
	in  io.Reader
	out io.Writer
}

// NewConfirmer returns a confirmer reading answers from in and writing the
// prompt to out.
func NewConfirmer(in io.Reader, out io.Writer) *Confirmer {
	return &Confirmer{in: in, out: out}
}

// Confirm prompts the operator before count files are permanently removed.
func (c *Confirmer) Confirm(ctx context.Context, count int) (bool, error) {
	warn := color.New(color.FgRed, color.Bold)
	warn.Fprintf(c.out, "WARNING: about to permanently delete %d files!\n", count)
	fmt.Fprint(c.out, "Type 'yes' to confirm: ")

	line, err := bufio.NewReader(c.in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("read confirmation: %w", err)
	}
	return strings.EqualFold(strings.TrimSpace(line), "yes"), nil
}
