package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores return these (optionally
// wrapped) so the registries can translate them into domain errors without
// depending on a particular backend.
//
// These represent factual states about stored records, not validation
// failures:
// - ErrNotFound: record does not exist in the store
// - ErrConflict: id already allocated / duplicate append
// - ErrInvalidState: record in wrong state for the requested mutation
// - ErrUnavailable: backend temporarily unreachable
//
// For precondition violations use pkg/domain-errors directly.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidState = errors.New("invalid state")
	ErrUnavailable  = errors.New("unavailable")
)
