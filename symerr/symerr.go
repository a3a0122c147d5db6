// Package symerr defines the sentinel error taxonomy shared by every stage
// of the symbolic analysis pipeline.
//
// The errors returned by the stage packages (pattern, order, analyse, and
// the stages that pass those errors on) wrap one of these four sentinels
// with fmt.Errorf for context; colcount, snpattern and relind return no
// errors. matrix.ErrNotPositiveDefinite, reachable only through the debug
// cross-check, wraps none of them. Callers branch on category with
// errors.Is, never on message text.
//
// Categories:
//
//	ErrInvalidInput       - malformed or inconsistent caller-supplied data.
//	ErrOrderingFailed     - the external ordering collaborator failed.
//	ErrInternalInvariant  - a postcondition of an internal stage did not
//	                        hold; this is always a bug, never a user error.
//	ErrConsumedWorkspace  - the workspace was reused after packaging.
package symerr

import "errors"

var (
	// ErrInvalidInput marks malformed CSC input, a dimension mismatch, or a
	// user-supplied permutation that is not a valid permutation of 0..N.
	ErrInvalidInput = errors.New("symfact: invalid input")

	// ErrOrderingFailed marks a non-OK status from the ordering collaborator.
	ErrOrderingFailed = errors.New("symfact: ordering failed")

	// ErrInternalInvariant marks a failed internal postcondition. Seeing this
	// indicates a bug in the analysis core, not a problem with the input.
	ErrInternalInvariant = errors.New("symfact: internal invariant violated")

	// ErrConsumedWorkspace marks an operation on a Workspace whose result has
	// already been packaged into a Symbolic value.
	ErrConsumedWorkspace = errors.New("symfact: workspace already consumed")
)
