package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/gorilla/schema"
	"github.com/vancomm/minesweeper/internal/mines"
)

var decoder = schema.NewDecoder()

type GameParams struct {
	Rows  int `json:"rows" schema:"rows"`
	Cols  int `json:"cols" schema:"cols"`
	Mines int `json:"mines" schema:"mines"`
}

var Presets = map[string]GameParams{
	"beginner":     {Rows: 9, Cols: 9, Mines: 10},
	"intermediate": {Rows: 16, Cols: 16, Mines: 40},
	"expert":       {Rows: 16, Cols: 30, Mines: 99},
}

func (p GameParams) Params() mines.GameParams {
	return mines.GameParams{Rows: p.Rows, Cols: p.Cols, MineCount: p.Mines}
}

// ParseGameParams accepts either a preset name or a query string such as
// "rows=16&cols=30&mines=99". Keys missing from the query keep their value
// from base.
func ParseGameParams(s string, base GameParams) (GameParams, error) {
	if preset, ok := Presets[strings.ToLower(s)]; ok {
		return preset, nil
	}

	values, err := url.ParseQuery(s)
	if err != nil {
		return base, fmt.Errorf("%w: game params %q: %w", ErrBadConfig, s, err)
	}

	params := base
	if err := decoder.Decode(&params, values); err != nil {
		return base, fmt.Errorf("%w: game params %q: %w", ErrBadConfig, s, err)
	}
	if err := params.Params().Validate(); err != nil {
		return base, fmt.Errorf("%w: %w", ErrBadConfig, err)
	}
	return params, nil
}
