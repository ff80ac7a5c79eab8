package mines

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	Log.SetLevel(logrus.DebugLevel)
	m.Run()
}

func newTestBoard(t *testing.T, rows, cols int, mines ...Point) *Board {
	t.Helper()
	b, err := NewBoard(GameParams{Rows: rows, Cols: cols, MineCount: len(mines)}, mines)
	require.NoError(t, err)
	return b
}

// checkCounters compares the incremental counters with a full scan.
func checkCounters(t *testing.T, b *Board) {
	t.Helper()
	var visible, flagged int
	for cell := range b.Cells() {
		if cell.Visible() {
			visible++
		}
		if cell.Flagged() {
			flagged++
		}
		assert.False(t, cell.Visible() && cell.Flagged(),
			"cell %s is both visible and flagged", cell.Position())
	}
	assert.Equal(t, visible, b.VisibleCount(), "visible count")
	assert.Equal(t, flagged, b.FlagCount(), "flag count")
}

type snapshot struct {
	cells          []Cell
	visible, flags int
	state          State
}

func takeSnapshot(b *Board) snapshot {
	s := snapshot{visible: b.VisibleCount(), flags: b.FlagCount(), state: b.State()}
	for cell := range b.Cells() {
		s.cells = append(s.cells, cell)
	}
	return s
}

func TestWindowIsClamped(t *testing.T) {
	b := newTestBoard(t, 3, 4)

	tests := []struct {
		name string
		p    Point
		want Window
		size int
	}{
		{"top left corner", Point{0, 0}, Window{0, 0, 1, 1}, 4},
		{"bottom right corner", Point{2, 3}, Window{1, 2, 2, 3}, 4},
		{"top edge", Point{0, 2}, Window{0, 1, 1, 3}, 6},
		{"left edge", Point{1, 0}, Window{0, 0, 2, 1}, 6},
		{"inner", Point{1, 1}, Window{0, 0, 2, 2}, 9},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			w := b.Window(test.p)
			assert.Equal(t, test.want, w)
			assert.Equal(t, test.size, w.Size())

			n := 0
			for q := range w.Points() {
				assert.True(t, b.Contains(q))
				n++
			}
			assert.Equal(t, test.size, n)
		})
	}
}

func TestWindowOfSingleCell(t *testing.T) {
	b := newTestBoard(t, 1, 1)
	assert.Equal(t, 1, b.Window(Point{0, 0}).Size())
}

func TestCountsIncludeCenter(t *testing.T) {
	b := newTestBoard(t, 3, 3, Point{0, 0}, Point{1, 1})

	assert.Equal(t, 2, b.MinesAround(Point{0, 0}))
	assert.Equal(t, 2, b.MinesAround(Point{1, 1}))
	assert.Equal(t, 1, b.MinesAround(Point{2, 2}))
	assert.Equal(t, 2, b.Cell(Point{0, 0}).Adjacent())

	b.toggleFlag(Point{2, 2})
	assert.Equal(t, 1, b.FlagsAround(Point{2, 2}))
	assert.Equal(t, 1, b.FlagsAround(Point{1, 1}))
	assert.Equal(t, 0, b.FlagsAround(Point{0, 0}))
}

func TestToggleFlag(t *testing.T) {
	b := newTestBoard(t, 2, 2, Point{0, 0})

	b.toggleFlag(Point{0, 0})
	assert.True(t, b.Cell(Point{0, 0}).Flagged())
	assert.Equal(t, 1, b.FlagCount())
	assert.Equal(t, 0, b.RemainingMines())

	b.toggleFlag(Point{1, 1})
	assert.Equal(t, 2, b.FlagCount())
	assert.Equal(t, -1, b.RemainingMines())

	b.toggleFlag(Point{0, 0})
	assert.False(t, b.Cell(Point{0, 0}).Flagged())
	assert.Equal(t, 1, b.FlagCount())
	checkCounters(t, b)
}

func TestToggleFlagOnVisibleCellIsNoop(t *testing.T) {
	b := newTestBoard(t, 2, 2, Point{0, 0})

	b.setVisible(Point{1, 1})
	b.toggleFlag(Point{1, 1})

	assert.False(t, b.Cell(Point{1, 1}).Flagged())
	assert.Equal(t, 0, b.FlagCount())
	checkCounters(t, b)
}

func TestSetVisibleClearsFlag(t *testing.T) {
	b := newTestBoard(t, 2, 2, Point{0, 0})

	b.toggleFlag(Point{1, 1})
	b.setVisible(Point{1, 1})
	b.setVisible(Point{1, 1})

	cell := b.Cell(Point{1, 1})
	assert.True(t, cell.Visible())
	assert.False(t, cell.Flagged())
	assert.Equal(t, 1, b.VisibleCount())
	assert.Equal(t, 0, b.FlagCount())
	checkCounters(t, b)
}

func TestOffBoardPanics(t *testing.T) {
	b := newTestBoard(t, 2, 2)

	assert.Panics(t, func() { b.Cell(Point{2, 0}) })
	assert.Panics(t, func() { b.Cell(Point{0, -1}) })
	assert.Panics(t, func() { b.MinesAround(Point{-1, 0}) })
	assert.Panics(t, func() { b.Apply(Move{Point: Point{5, 5}}) })
}

func TestCellsOrder(t *testing.T) {
	b := newTestBoard(t, 2, 3)

	var got []Point
	for cell := range b.Cells() {
		got = append(got, cell.Position())
	}
	assert.Equal(t, []Point{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}}, got)
}
