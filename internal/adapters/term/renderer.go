package term

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/bft-labs/dupeclean/internal/domain"
)

// Renderer implements ports.ReportSink by printing duplicate groups with
// keep/remove markers and a wasted-space summary.
type Renderer struct {
	out io.Writer

	// Detailed adds the digest to each group header.
	Detailed bool
}

// NewRenderer returns a renderer writing to out.
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// Write renders the report.
func (r *Renderer) Write(ctx context.Context, report domain.Report) error {
	if len(report.Groups) == 0 {
		color.New(color.FgGreen, color.Bold).Fprintln(r.out, "No duplicate files found!")
		return nil
	}

	header := color.New(color.FgMagenta, color.Bold)
	cyan := color.New(color.FgCyan)
	yellow := color.New(color.FgYellow)
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)

	header.Fprintln(r.out, "--- DUPLICATE FILES FOUND ---")
	fmt.Fprintln(r.out)

	for i, g := range report.Groups {
		fmt.Fprintf(r.out, "%s - %s - Size: %s - Wasted: %s\n",
			cyan.Sprintf("Group #%d", i+1),
			yellow.Sprintf("%d copies", g.Count),
			green.Sprint(FormatBytes(g.Size)),
			red.Sprint(FormatBytes(g.Wasted)),
		)
		if r.Detailed {
			fmt.Fprintf(r.out, "  Digest: %s (%s)\n", g.Digest, g.Algorithm)
		}
		for _, path := range g.Files {
			marker := red.Sprint("[DUP] ")
			if path == g.Keep {
				marker = green.Sprint("[KEEP]")
			}
			fmt.Fprintf(r.out, "  %s %s\n", marker, path)
		}
		fmt.Fprintln(r.out)
	}

	header.Fprintln(r.out, "--- SUMMARY ---")
	fmt.Fprintf(r.out, "  Duplicate groups: %s\n", cyan.Sprint(report.TotalGroups))
	fmt.Fprintf(r.out, "  Duplicate files:  %s\n", yellow.Sprint(report.Duplicates))
	fmt.Fprintf(r.out, "  Wasted space:     %s\n", red.Sprint(FormatBytes(report.WastedBytes)))
	return nil
}

// FormatBytes renders a byte count in human units.
func FormatBytes(b int64) string {
	const (
		kib float64 = 1 << 10
		mib float64 = 1 << 20
		gib float64 = 1 << 30
		tib float64 = 1 << 40
	)
	fb := float64(b)
	switch {
	case fb >= tib:
		return fmt.Sprintf("%.2f TiB", fb/tib)
	case fb >= gib:
		return fmt.Sprintf("%.2f GiB", fb/gib)
	case fb >= mib:
		return fmt.Sprintf("%.2f MiB", fb/mib)
	case fb >= kib:
		return fmt.Sprintf("%.2f KiB", fb/kib)
	default:
		return fmt.Sprintf("%d B", b)
	}
}
