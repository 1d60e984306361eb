package store

import "errors"

// Sentinel errors returned by the vault adapter and repositories. Callers
// should match them with [errors.Is].
var (
	// ErrNotFound is returned when a vault file is absent. For the pages
	// index this means "no data yet" and triggers bootstrap; for single
	// file removal it is tolerated, since the goal is already satisfied.
	ErrNotFound = errors.New("vault file not found")

	// ErrCorruptData is returned when an index or page document exists but
	// cannot be parsed, or when the index references a document that is
	// missing. Deliberately distinct from ErrNotFound: corrupt data is
	// surfaced to the user instead of being overwritten with defaults.
	ErrCorruptData = errors.New("stored data is corrupt")
)
