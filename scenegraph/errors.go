package scenegraph

import "go.trai.ch/zerr"

var (
	// ErrDuplicateName is returned when a sibling with the same name already exists.
	ErrDuplicateName = zerr.New("duplicate node name")

	// ErrInvalidName is returned for empty names, "." and "..", and names containing "/".
	ErrInvalidName = zerr.New("invalid node name")

	// ErrNotDescendant is returned when a path is requested for a node outside the root's subtree.
	ErrNotDescendant = zerr.New("node is not a descendant of root")
)
