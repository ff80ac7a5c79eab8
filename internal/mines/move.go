package mines

import (
	"errors"

	"github.com/sirupsen/logrus"
)

type State int

const (
	Ongoing State = iota
	Won
	Lost
	Quit
	// InvalidInput is returned for a move that was rejected without touching
	// the board. The game stays [Ongoing].
	InvalidInput
)

func (s State) String() string {
	switch s {
	case Ongoing:
		return "ongoing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	case Quit:
		return "quit"
	case InvalidInput:
		return "invalid input"
	default:
		return "unknown"
	}
}

// Terminal reports whether the game is over.
func (s State) Terminal() bool {
	return s == Won || s == Lost || s == Quit
}

type Move struct {
	Point
	Flag bool
}

// Apply plays a single move and reports the resulting state. Moves on a
// finished game are ignored and return the final state.
//
// panics [AssertionError] if m is off the board
func (b *Board) Apply(m Move) State {
	if b.state.Terminal() {
		return b.state
	}

	state := b.apply(m)
	if state != InvalidInput {
		b.state = state
	}

	Log.WithFields(logrus.Fields{
		"row":     m.Row,
		"col":     m.Col,
		"flag":    m.Flag,
		"state":   state.String(),
		"visible": b.visibleCount,
		"flags":   b.flagCount,
	}).Debug("move")

	return state
}

func (b *Board) apply(m Move) State {
	cell := b.at(m.Point)

	switch {
	case m.Flag:
		b.toggleFlag(m.Point)
		return Ongoing
	case cell.flagged:
		return Ongoing
	case cell.visible:
		exploded, err := b.chord(m.Point)
		if errors.Is(err, ErrChordNotReady) {
			return InvalidInput
		}
		if exploded {
			return Lost
		}
	default:
		b.expandZero(m.Point)
		b.setVisible(m.Point)
		if cell.mine {
			b.detonate(m.Point)
			return Lost
		}
	}

	if b.visibleCount+b.flagCount == b.rows*b.cols {
		return Won
	}
	return Ongoing
}

// Quit ends the game without touching any cell.
func (b *Board) Quit() {
	if !b.state.Terminal() {
		b.state = Quit
	}
}
