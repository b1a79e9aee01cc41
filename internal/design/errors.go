package design

import "errors"

var (
	// ErrMalformedSpecification reports a missing, unparsable, or structurally
	// incomplete specification document. Fatal at load time.
	ErrMalformedSpecification = errors.New("specification document is malformed")
	// ErrInvalidTaxonomyEntry reports a taxonomy dimension that violates a
	// structural invariant. Fatal at load time.
	ErrInvalidTaxonomyEntry = errors.New("taxonomy entry is invalid")
	// ErrUnknownArchetype reports a rules lookup for a name that is not in the
	// catalogue. Recoverable; returned to the caller.
	ErrUnknownArchetype = errors.New("unknown archetype")
)
