// Package domain contains the core entities and value objects for dupeclean.
//
// This package represents the innermost layer of the architecture. It has no
// dependencies on infrastructure concerns (file system, terminal, logging)
// and contains only the data model of a deduplication run.
//
// # Entities
//
//   - [FileRecord]: A regular file discovered during traversal (path, size,
//     mtime, content digest once fingerprinted)
//   - [DigestGroup]: Files sharing one content digest, in discovery order
//   - [RetentionDecision]: The keep/remove partition of one group
//   - [TrashEntry]: A file relocated into the trash, with its origin
//   - [Report]: The structured run output handed to report sinks
//
// # Design Principles
//
// Domain entities are:
//   - Immutable once fully formed (a FileRecord never changes after its
//     digest is populated; a finalized DigestGroup is read-only)
//   - Free of infrastructure dependencies
//   - Testable without mocks or external systems
package domain
