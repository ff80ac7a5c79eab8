package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper/internal/mines"
)

// Glyphs are the two-column-wide strings drawn inside each cell's brackets.
type Glyphs struct {
	Flag, Exploded, Mine, Hidden, Empty string
}

var (
	Emoji = Glyphs{
		Flag:     "🚩",
		Exploded: "💥",
		Mine:     "💣",
		Hidden:   "🟫",
		Empty:    "  ",
	}
	ASCII = Glyphs{
		Flag:     " F",
		Exploded: " X",
		Mine:     " *",
		Hidden:   " #",
		Empty:    "  ",
	}
)

type Options struct {
	Glyphs Glyphs
	// ShowMines draws every mine, e.g. after the game is lost.
	ShowMines bool
}

func (o Options) glyph(b *mines.Board, cell mines.Cell) string {
	detonated, ok := b.Detonated()
	switch {
	case cell.Flagged():
		return o.Glyphs.Flag
	case ok && cell.Position() == detonated:
		return o.Glyphs.Exploded
	case cell.Mine() && o.ShowMines:
		return o.Glyphs.Mine
	case !cell.Visible():
		return o.Glyphs.Hidden
	case cell.Adjacent() == 0:
		return o.Glyphs.Empty
	default:
		return " " + strconv.Itoa(cell.Adjacent())
	}
}

// String draws the board with row and column numbers and the number of mines
// left to flag.
func String(b *mines.Board, opts Options) string {
	var sb strings.Builder

	sb.WriteString("   ")
	for c := range b.Cols() {
		fmt.Fprintf(&sb, " %02d ", c)
	}
	sb.WriteString("\n")

	for r := range b.Rows() {
		fmt.Fprintf(&sb, "%d: ", r)
		for c := range b.Cols() {
			cell := b.Cell(mines.Point{Row: r, Col: c})
			fmt.Fprintf(&sb, "[%s]", opts.glyph(b, cell))
		}
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, "Mines left: %d\n", b.RemainingMines())
	return sb.String()
}

func Render(w io.Writer, b *mines.Board, opts Options) error {
	_, err := io.WriteString(w, String(b, opts))
	return err
}
