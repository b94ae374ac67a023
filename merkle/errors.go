package merkle

import "errors"

var (
	ErrBadHashSize    = errors.New("merkle: hasher output must be 32 bytes")
	ErrEmptyURI       = errors.New("merkle: uri must not be empty")
	ErrInvalidURI     = errors.New("merkle: uri must be valid utf-8")
	ErrEmptyLeaves    = errors.New("merkle: leaf set is empty")
	ErrLeafIndexRange = errors.New("merkle: leaf index out of range for the tree")
)
