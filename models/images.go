package models

import "fmt"

// ImageUpload is one file submitted to a batch image upload.
type ImageUpload struct {
	// FileName is the original name as chosen by the user; recorded in the
	// markdown image index. The stored file gets a generated name.
	FileName string

	// Data is the raw image content.
	Data []byte
}

// UploadReport aggregates the outcome of a batch upload. Files are attempted
// independently; successes are never rolled back on later failures.
type UploadReport struct {
	Succeeded int      `json:"succeeded"`
	Failed    int      `json:"failed"`
	Paths     []string `json:"paths"`
}

// String renders the user-facing batch notice, e.g. "2 succeeded, 1 failed".
func (r UploadReport) String() string {
	return fmt.Sprintf("%d succeeded, %d failed", r.Succeeded, r.Failed)
}

// ImageGroup is a display partition of a character's image paths. Membership
// is derived purely from path structure on every read, never stored.
type ImageGroup struct {
	// Name is the grouping key: the parent folder name for packages, empty
	// for the loose-images group.
	Name string `json:"name"`

	// Package reports whether the group is a per-character image package
	// (parent folder named by a character id) as opposed to loose files.
	Package bool `json:"package"`

	// Paths are the group members in their original order.
	Paths []string `json:"paths"`
}
