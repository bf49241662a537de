package extract

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind is the kind of failure an Error represents.
type ErrorKind int

const (
	// ErrSourceRead means the container could not be read. The container is
	// skipped.
	ErrSourceRead ErrorKind = iota + 1
	// ErrDirectoryCreate means the output directory for the container could
	// not be created. Nothing is extracted from the container.
	ErrDirectoryCreate
	// ErrChunkWrite means a single resource could not be written. The other
	// resources are still extracted.
	ErrChunkWrite
)

func (k ErrorKind) String() string {
	switch k {
	case ErrSourceRead:
		return "could not read container"
	case ErrDirectoryCreate:
		return "could not create output directory"
	case ErrChunkWrite:
		return "could not write resource"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error is an extraction failure.
type Error struct {
	Kind  ErrorKind
	Path  string // the container for ErrSourceRead, otherwise the output path
	Index int    // the resource index for ErrChunkWrite, otherwise -1
	Err   error
}

func (e *Error) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("%s %d (%s): %v", e.Kind, e.Index, e.Path, e.Err)
	}
	return fmt.Sprintf("%s (%s): %v", e.Kind, e.Path, e.Err)
}

// Cause returns the underlying error (for github.com/pkg/errors).
func (e *Error) Cause() error { return e.Err }

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error { return e.Err }

// IsKind checks if any error in err's chain is an *Error of the specified kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
