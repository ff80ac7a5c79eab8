package mines

import "fmt"

type Point struct {
	Row, Col int
}

func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.Row, p.Col)
}

// Cell is a single square of the board. Only the owning [Board] mutates it,
// so a visible cell is never flagged and a flagged cell is never visible.
type Cell struct {
	pos      Point
	mine     bool
	adjacent int
	visible  bool
	flagged  bool
}

func (c Cell) Position() Point {
	return c.pos
}

func (c Cell) Mine() bool {
	return c.mine
}

// Adjacent is the number of mines in the cell's window, the cell itself
// included.
func (c Cell) Adjacent() int {
	return c.adjacent
}

func (c Cell) Visible() bool {
	return c.visible
}

func (c Cell) Flagged() bool {
	return c.flagged
}
