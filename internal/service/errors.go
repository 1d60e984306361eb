package service

import "errors"

// Sentinel errors for business-rule violations. Callers should match them
// with [errors.Is]; the HTTP layer maps them to user-visible notices.
var (
	// ErrPageNotFound is returned when an operation targets a page id that
	// is not in the loaded collection.
	ErrPageNotFound = errors.New("page was not found")

	// ErrCharacterNotFound is returned when an operation targets a
	// character id absent from its page.
	ErrCharacterNotFound = errors.New("character was not found")

	// ErrLastPage is returned when deleting the sole remaining page.
	// At least one page must always exist.
	ErrLastPage = errors.New("at least one page must remain")

	// ErrEmptyName is returned when a rename is attempted with a name that
	// is empty after trimming.
	ErrEmptyName = errors.New("name must not be empty")

	// ErrNotLoaded is returned when a service operation runs before the
	// page collection has been loaded.
	ErrNotLoaded = errors.New("pages are not loaded yet")
)
