package mines

import "errors"

var (
	ErrBadParams     = errors.New("bad game parameters")
	ErrDuplicateMine = errors.New("duplicate mine")
	ErrOutOfBounds   = errors.New("point is off the board")
	ErrChordNotReady = errors.New("flag count does not match mine count")
)

// AssertionError is panicked when a caller breaks the package contract, e.g.
// by passing a point that is off the board.
type AssertionError struct {
	message string
}

// [AssertionError] implements [error]
func (e AssertionError) Error() string {
	return e.message
}
