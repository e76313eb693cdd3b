package tree

import "errors"

// Walk fails hard only on root-level problems. Everything encountered
// mid-traversal is absorbed into the resulting tree instead.
var (
	// ErrPathNotFound means the walk root does not exist.
	ErrPathNotFound = errors.New("path does not exist")

	// ErrNotDirectory means the walk root exists but is not a directory.
	ErrNotDirectory = errors.New("path is not a directory")
)
