package model

import "errors"

var (
	// ErrGroupNotFound indicates that the requested group does not exist
	// or is hidden from the requesting principal. The two cases are
	// intentionally indistinguishable so hidden groups do not leak their
	// existence through a distinct error.
	ErrGroupNotFound = errors.New("group not found")
	// ErrInvalidSlug indicates that the provided slug is invalid (e.g., empty).
	ErrInvalidSlug = errors.New("invalid group slug")
)
