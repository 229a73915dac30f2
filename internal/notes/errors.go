package notes

import "errors"

var (
	ErrIO             = errors.New("i/o error")
	ErrNoNotesFound   = errors.New("no notes found")
	ErrTitleCollision = errors.New("no free filename for title")
	ErrInvalidTitle   = errors.New("invalid title")
)

// IOError records a failed filesystem operation on the notes directory.
// It satisfies errors.Is(err, ErrIO).
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *IOError) Unwrap() error { return e.Err }

func (e *IOError) Is(target error) bool {
	return target == ErrIO
}

func ioError(op, path string, err error) error {
	return &IOError{Op: op, Path: path, Err: err}
}
