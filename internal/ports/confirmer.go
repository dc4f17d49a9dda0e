package ports

import "context"

// Confirmer obtains an explicit affirmative signal from the operator before
// an irreversible removal begins. The exact wording of the prompt is an
// adapter concern.
type Confirmer interface {
	// Confirm asks the operator to approve permanently removing count files.
	// It returns true only on an explicit affirmative answer; any other
	// answer, EOF, or error means the removal phase must not mutate anything.
	Confirm(ctx context.Context, count int) (bool, error)
}

// ConfirmerFunc adapts a function to the Confirmer interface.
type ConfirmerFunc func(ctx context.Context, count int) (bool, error)

// Confirm calls f.
func (f ConfirmerFunc) Confirm(ctx context.Context, count int) (bool, error) {
	return f(ctx, count)
}
