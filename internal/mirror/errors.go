package mirror

import (
	"errors"
	"fakecopy/pkg/helpers/iout"
	"fmt"
	"io/fs"
)

//Kind classifies a mirroring failure.
type Kind int

const (
	KindSourceNotFound Kind = iota + 1
	KindSourceUnreadable
	KindDestinationNotFound
	KindDestinationConflict
	KindPermissionDenied
	KindPathMirroring
	KindWriteFailed
)

var (
	ErrSourceNotFound      = errors.New("source not found")
	ErrSourceUnreadable    = errors.New("source unreadable")
	ErrDestinationNotFound = errors.New("destination not found")
	ErrDestinationConflict = errors.New("destination conflict")
	ErrPermissionDenied    = errors.New("permission denied")
	ErrPathMirroring       = errors.New("path mirroring failed")
	ErrWriteFailed         = errors.New("write failed")
)

var kindSentinels = map[Kind]error{
	KindSourceNotFound:      ErrSourceNotFound,
	KindSourceUnreadable:    ErrSourceUnreadable,
	KindDestinationNotFound: ErrDestinationNotFound,
	KindDestinationConflict: ErrDestinationConflict,
	KindPermissionDenied:    ErrPermissionDenied,
	KindPathMirroring:       ErrPathMirroring,
	KindWriteFailed:         ErrWriteFailed,
}

func (k Kind) String() string {
	if err, ok := kindSentinels[k]; ok {
		return err.Error()
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

//Error is returned by every failing mirror operation. It names the offending path.
type Error struct {
	Kind Kind
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s %s: %s", e.Op, e.Path, e.Kind)
	}
	return fmt.Sprintf("%s %s: %s: %v", e.Op, e.Path, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

//Is makes errors.Is(err, ErrDestinationConflict) and friends work.
func (e *Error) Is(target error) bool {
	return kindSentinels[e.Kind] == target
}

//KindOf extracts the kind of a mirror error, zero if err is not one.
func KindOf(err error) Kind {
	var mErr *Error
	if errors.As(err, &mErr) {
		return mErr.Kind
	}
	return 0
}

func newError(kind Kind, op, path string, err error) *Error {
	return &Error{Kind: kind, Op: op, Path: path, Err: err}
}

//destinationError maps a failed destination write to the taxonomy.
func destinationError(op, path string, err error) *Error {
	switch {
	case iout.IsErrNotDir(err), iout.IsErrIsDir(err), errors.Is(err, fs.ErrExist):
		return newError(KindDestinationConflict, op, path, err)
	case errors.Is(err, fs.ErrPermission):
		return newError(KindPermissionDenied, op, path, err)
	case errors.Is(err, fs.ErrNotExist):
		return newError(KindDestinationNotFound, op, path, err)
	default:
		return newError(KindWriteFailed, op, path, err)
	}
}

//sourceError maps a failed source listing to the taxonomy. A listing denied by permissions is
//unreadable; KindPermissionDenied is reserved for the destination.
func sourceError(op, path string, err error) *Error {
	if errors.Is(err, fs.ErrNotExist) {
		return newError(KindSourceNotFound, op, path, err)
	}
	return newError(KindSourceUnreadable, op, path, err)
}
