package mines

import "iter"

// Window is an inclusive rectangle of cells clamped to the board edges.
type Window struct {
	Top, Left, Bottom, Right int
}

// Window returns the 3x3 block centered on p, clipped to the board. The
// center itself is part of the window.
func (b *Board) Window(p Point) Window {
	return Window{
		Top:    max(0, p.Row-1),
		Left:   max(0, p.Col-1),
		Bottom: min(p.Row+1, b.rows-1),
		Right:  min(p.Col+1, b.cols-1),
	}
}

func (w Window) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for r := w.Top; r <= w.Bottom; r++ {
			for c := w.Left; c <= w.Right; c++ {
				if !yield(Point{r, c}) {
					return
				}
			}
		}
	}
}

func (w Window) Size() int {
	return (w.Bottom - w.Top + 1) * (w.Right - w.Left + 1)
}

// panics [AssertionError]
func (b *Board) countAround(p Point, pred func(*Cell) bool) (count int) {
	b.at(p)
	for q := range b.Window(p).Points() {
		if pred(b.at(q)) {
			count++
		}
	}
	return
}

func (b *Board) MinesAround(p Point) int {
	return b.countAround(p, func(c *Cell) bool { return c.mine })
}

func (b *Board) FlagsAround(p Point) int {
	return b.countAround(p, func(c *Cell) bool { return c.flagged })
}
