// Package ports defines the interfaces (ports) that connect the
// deduplication core to the outside world.
//
// The core does not know how an operator confirms a destructive removal or
// how a report is rendered or exported; it only requires that a confirmation
// signal and a structured report sink exist. Adapters under
// internal/adapters provide concrete implementations (terminal prompt,
// colored console renderer, JSON file).
//
// # Port Interfaces
//
//   - [Confirmer]: Obtains the operator's affirmative signal before
//     irreversible removal
//   - [ReportSink]: Receives the finalized duplicate report
//
// This separation enables testing the pipeline with scripted confirmations
// and in-memory sinks, and swapping presentation without touching the core.
package ports
