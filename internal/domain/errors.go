package domain

import "errors"

// Domain errors represent error conditions in the dupeclean domain.
// These errors are returned by the public API and can be checked with errors.Is.
var (
	// ErrRootNotExist is returned when the scan root does not exist.
	ErrRootNotExist = errors.New("dupeclean: root path does not exist")

	// ErrNotDirectory is returned when the scan root is not a directory.
	ErrNotDirectory = errors.New("dupeclean: root path is not a directory")

	// ErrUnknownAlgorithm is returned for an unrecognized hash algorithm name.
	ErrUnknownAlgorithm = errors.New("dupeclean: unknown hash algorithm")

	// ErrUnknownPolicy is returned for an unrecognized retention policy name.
	ErrUnknownPolicy = errors.New("dupeclean: unknown retention policy")

	// ErrUnknownMode is returned for an unrecognized removal mode name.
	ErrUnknownMode = errors.New("dupeclean: unknown removal mode")

	// ErrConfirmationDeclined is returned when the operator declines the
	// destructive-removal confirmation. No mutation has been performed.
	ErrConfirmationDeclined = errors.New("dupeclean: removal not confirmed")
)
