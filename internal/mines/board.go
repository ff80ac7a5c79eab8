package mines

import "iter"

type Board struct {
	rows, cols int
	mineCount  int
	cells      [][]Cell

	flagCount    int
	visibleCount int

	detonated    Point
	hasDetonated bool

	state State
}

func newEmptyBoard(rows, cols, mineCount int) *Board {
	cells := make([][]Cell, rows)
	for r := range rows {
		cells[r] = make([]Cell, cols)
		for c := range cols {
			cells[r][c] = Cell{pos: Point{r, c}}
		}
	}
	return &Board{
		rows:      rows,
		cols:      cols,
		mineCount: mineCount,
		cells:     cells,
		state:     Ongoing,
	}
}

func (b *Board) Rows() int {
	return b.rows
}

func (b *Board) Cols() int {
	return b.cols
}

func (b *Board) MineCount() int {
	return b.mineCount
}

func (b *Board) FlagCount() int {
	return b.flagCount
}

func (b *Board) VisibleCount() int {
	return b.visibleCount
}

// RemainingMines is the "mines left" counter shown to the player. It goes
// negative when the player places more flags than there are mines.
func (b *Board) RemainingMines() int {
	return b.mineCount - b.flagCount
}

func (b *Board) State() State {
	return b.state
}

// Detonated returns the mine that ended the game, if any.
func (b *Board) Detonated() (Point, bool) {
	return b.detonated, b.hasDetonated
}

func (b *Board) Contains(p Point) bool {
	return 0 <= p.Row && p.Row < b.rows && 0 <= p.Col && p.Col < b.cols
}

// Cell returns a copy of the cell at p. It panics if p is off the board.
func (b *Board) Cell(p Point) Cell {
	return *b.at(p)
}

// Cells yields every cell in row-major order.
func (b *Board) Cells() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for r := range b.cells {
			for c := range b.cells[r] {
				if !yield(b.cells[r][c]) {
					return
				}
			}
		}
	}
}

// panics [AssertionError]
func (b *Board) at(p Point) *Cell {
	if !b.Contains(p) {
		panic(AssertionError{"point " + p.String() + " is off the board"})
	}
	return &b.cells[p.Row][p.Col]
}

func (b *Board) setVisible(p Point) {
	cell := b.at(p)
	if cell.visible {
		return
	}
	if cell.flagged {
		cell.flagged = false
		b.flagCount--
	}
	cell.visible = true
	b.visibleCount++
}

func (b *Board) toggleFlag(p Point) {
	cell := b.at(p)
	if cell.visible {
		return
	}
	if cell.flagged {
		cell.flagged = false
		b.flagCount--
	} else {
		cell.flagged = true
		b.flagCount++
	}
}

func (b *Board) detonate(p Point) {
	if b.hasDetonated {
		return
	}
	b.detonated, b.hasDetonated = p, true
}
