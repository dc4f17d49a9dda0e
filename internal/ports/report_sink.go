package ports

import (
	"context"

	"github.com/bft-labs/dupeclean/internal/domain"
)

// ReportSink receives the finalized structured report of one run.
// Implementations render to the terminal, write JSON files, or discard.
type ReportSink interface {
	// Write consumes the report. The report is complete and read-only;
	// implementations must not mutate it.
	Write(ctx context.Context, report domain.Report) error
}

// ReportSinkFunc adapts a function to the ReportSink interface.
type ReportSinkFunc func(ctx context.Context, report domain.Report) error

// Write calls f.
func (f ReportSinkFunc) Write(ctx context.Context, report domain.Report) error {
	return f(ctx, report)
}
