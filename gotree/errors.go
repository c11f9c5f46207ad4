package gotree

import "github.com/pkg/errors"

// Errors
var (
	ErrDimensionMismatch = errors.New("matrix does not match vertex count")
	ErrAsymmetricMatrix  = errors.New("matrix is not symmetric")
	ErrIndexOutOfRange   = errors.New("index out of range")
	ErrInvalidEdge       = errors.New("edge references an out-of-range vertex")
	ErrSizeMismatch      = errors.New("graphs have different vertex counts")
	ErrNotATree          = errors.New("graph is not a tree")
	ErrTooManyVertices   = errors.New("vertex count exceeds limit")
	ErrBadGraphText      = errors.New("bad graph text")
	ErrBadEncoding       = errors.New("bad graph encoding")
	ErrBadCatalogParam   = errors.New("bad catalog param")
	ErrCountMismatch     = errors.New("tree count does not match known sequence")
	ErrNilGraph          = errors.New("nil graph")
	ErrBadEnumParam      = errors.New("bad enumeration param")
)
