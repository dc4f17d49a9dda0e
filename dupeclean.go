// Package dupeclean finds files with byte-identical content under a
// directory tree and safely removes the redundant copies.
//
// Example usage:
//
//	opts := dupeclean.Options{
//	    Root:   "/data/photos",
//	    Policy: dupeclean.PolicyNewest,
//	    Remove: true,
//	    DryRun: true,
//	}
//	res, err := dupeclean.Run(context.Background(), opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Report.TotalGroups, "duplicate groups")
package dupeclean

import (
	"context"

	"github.com/bft-labs/dupeclean/internal/domain"
	"github.com/bft-labs/dupeclean/internal/pipeline"
	"github.com/bft-labs/dupeclean/internal/ports"
	"github.com/bft-labs/dupeclean/internal/remove"
	"github.com/bft-labs/dupeclean/internal/retain"
	"github.com/bft-labs/dupeclean/internal/scan"
)

// Options configures one deduplication run.
type Options = pipeline.Options

// Result is the complete outcome of one run.
type Result = pipeline.Result

// Filter restricts which files are scanned.
type Filter = scan.Filter

// Algorithm is a streaming hash algorithm configuration.
type Algorithm = scan.Algorithm

// Policy selects which member of a duplicate group is kept.
type Policy = retain.Policy

// Retention policies.
const (
	PolicyFirst  = retain.PolicyFirst
	PolicyLast   = retain.PolicyLast
	PolicyOldest = retain.PolicyOldest
	PolicyNewest = retain.PolicyNewest
)

// Mode is the destructive mode of the removal phase.
type Mode = remove.Mode

// Removal modes.
const (
	ModeTrash     = remove.ModeTrash
	ModePermanent = remove.ModePermanent
)

// Confirmer gates irreversible removal.
type Confirmer = ports.Confirmer

// ConfirmerFunc adapts a function to the Confirmer interface.
type ConfirmerFunc = ports.ConfirmerFunc

// ReportSink receives the structured duplicate report.
type ReportSink = ports.ReportSink

// Report is the structured output of one run.
type Report = domain.Report

// ErrConfirmationDeclined is returned by Run when the operator withholds
// the destructive-removal confirmation. Nothing has been mutated.
var ErrConfirmationDeclined = domain.ErrConfirmationDeclined

// ParseAlgorithm maps md5, sha1 or sha256 to its configuration.
func ParseAlgorithm(name string) (Algorithm, error) {
	return scan.ParseAlgorithm(name)
}

// ParsePolicy maps first, last, oldest or newest to its Policy.
func ParsePolicy(name string) (Policy, error) {
	return retain.ParsePolicy(name)
}

// ParseMode maps trash or permanent to its Mode.
func ParseMode(name string) (Mode, error) {
	return remove.ParseMode(name)
}

// Run executes the full pipeline: walk, fingerprint, group, decide
// retention, report, and (when enabled) remove. It blocks until the run
// completes or the context is cancelled between file operations.
func Run(ctx context.Context, opts Options) (*Result, error) {
	return pipeline.Run(ctx, opts)
}
