// Package report provides report-sink adapters for exporting run results.
package report

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/bft-labs/dupeclean/internal/domain"
)

// JSONFileSink implements ports.ReportSink by writing the report to a JSON
// file. The write is atomic: temp file in the same directory, then rename,
// so a crash never leaves a truncated report behind.
type JSONFileSink struct {
	path string
}

// NewJSONFileSink returns a sink writing to path.
func NewJSONFileSink(path string) *JSONFileSink {
	return &JSONFileSink{path: path}
}

// Path returns the destination path.
func (s *JSONFileSink) Path() string { return s.path }

// Write marshals the report and writes it atomically.
func (s *JSONFileSink) Write(ctx context.Context, report domain.Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename report: %w", err)
	}
	return nil
}
