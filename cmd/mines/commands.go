package main

import (
	"errors"
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper/internal/mines"
)

type commandKind int

const (
	commandMove commandKind = iota
	commandHelp
	commandQuit
)

type command struct {
	kind commandKind
	move mines.Move
}

var keywords = map[string]commandKind{
	"help": commandHelp,
	"h":    commandHelp,
	"?":    commandHelp,
	"quit": commandQuit,
	"exit": commandQuit,
	"q":    commandQuit,
}

func parseRowCol(twoStrings []string) (row int, col int, err error) {
	if row, err = strconv.Atoi(strings.TrimSpace(twoStrings[0])); err != nil {
		err = errors.New("row must be an int")
		return
	}
	if col, err = strconv.Atoi(strings.TrimSpace(twoStrings[1])); err != nil {
		err = errors.New("column must be an int")
		return
	}
	return
}

// parseCommand turns a line typed by the player into a command. Moves are
// "row,col" to open a cell or "f row,col" to toggle a flag, and are checked
// against the board so the game never sees an off-board point.
func parseCommand(b *mines.Board, input string) (command, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return command{}, errors.New("empty command")
	}
	if kind, ok := keywords[strings.ToLower(input)]; ok {
		return command{kind: kind}, nil
	}

	var move mines.Move
	if rest, ok := strings.CutPrefix(input, "f"); ok {
		move.Flag = true
		input = rest
	}

	parts := strings.Split(input, ",")
	if len(parts) != 2 {
		return command{}, errors.New("expected row,col")
	}
	row, col, err := parseRowCol(parts)
	if err != nil {
		return command{}, err
	}
	move.Point = mines.Point{Row: row, Col: col}
	if !b.Contains(move.Point) {
		return command{}, errors.New("invalid square coordinates")
	}

	return command{kind: commandMove, move: move}, nil
}
