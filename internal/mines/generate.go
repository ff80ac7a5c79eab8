package mines

import (
	"fmt"
	"hash/maphash"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

type GameParams struct {
	Rows      int
	Cols      int
	MineCount int
}

func (p GameParams) Area() int {
	return p.Rows * p.Cols
}

func (p GameParams) Validate() error {
	switch {
	case p.Rows <= 0:
		return fmt.Errorf("%w: rows must be positive, got %d", ErrBadParams, p.Rows)
	case p.Cols <= 0:
		return fmt.Errorf("%w: cols must be positive, got %d", ErrBadParams, p.Cols)
	case p.MineCount < 0:
		return fmt.Errorf("%w: mine count must not be negative, got %d", ErrBadParams, p.MineCount)
	case p.MineCount >= p.Area():
		return fmt.Errorf(
			"%w: %d mines do not fit a %dx%d board",
			ErrBadParams, p.MineCount, p.Rows, p.Cols,
		)
	}
	return nil
}

// NewRand returns a generator seeded from the runtime's random hash seed.
func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func NewSeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// NewGame places params.MineCount mines uniformly at random and computes
// every cell's adjacency count.
func NewGame(params GameParams, r *rand.Rand) (*Board, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	b := newEmptyBoard(params.Rows, params.Cols, params.MineCount)
	for planted := 0; planted < params.MineCount; {
		cell := &b.cells[r.IntN(params.Rows)][r.IntN(params.Cols)]
		if !cell.mine {
			cell.mine = true
			planted++
		}
	}
	b.computeAdjacency()

	Log.WithFields(logrus.Fields{
		"rows":  params.Rows,
		"cols":  params.Cols,
		"mines": params.MineCount,
	}).Debug("new game")

	return b, nil
}

// NewBoard builds a board with mines at exactly the given points.
func NewBoard(params GameParams, mines []Point) (*Board, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if len(mines) != params.MineCount {
		return nil, fmt.Errorf(
			"%w: expected %d mines, got %d", ErrBadParams, params.MineCount, len(mines),
		)
	}

	b := newEmptyBoard(params.Rows, params.Cols, params.MineCount)
	for _, p := range mines {
		if !b.Contains(p) {
			return nil, fmt.Errorf("%w: mine at %s", ErrOutOfBounds, p)
		}
		cell := &b.cells[p.Row][p.Col]
		if cell.mine {
			return nil, fmt.Errorf("%w at %s", ErrDuplicateMine, p)
		}
		cell.mine = true
	}
	b.computeAdjacency()
	return b, nil
}

func (b *Board) computeAdjacency() {
	for r := range b.rows {
		for c := range b.cols {
			b.cells[r][c].adjacent = b.MinesAround(Point{r, c})
		}
	}
}
