package main

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/render"
)

const prompt = "Move (f in front to flag): "

type gameSession struct {
	board *mines.Board
	out   io.Writer
	opts  render.Options
	log   *logrus.Logger
}

// scanLines feeds lines read from r into lines until r is exhausted or ctx is
// done. lines is closed on return.
func scanLines(ctx context.Context, r io.Reader, lines chan<- string) error {
	defer close(lines)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		select {
		case lines <- sc.Text():
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return sc.Err()
}

func (s *gameSession) draw(showMines bool) error {
	opts := s.opts
	opts.ShowMines = opts.ShowMines || showMines
	return render.Render(s.out, s.board, opts)
}

// run plays until the game is won, lost or quit. Running out of input or a
// cancelled ctx counts as quitting.
func (s *gameSession) run(ctx context.Context, lines <-chan string) (mines.State, error) {
	for {
		if err := s.draw(false); err != nil {
			return s.board.State(), err
		}
		fmt.Fprint(s.out, prompt)

		var (
			line string
			ok   bool
		)
		select {
		case <-ctx.Done():
			fmt.Fprintln(s.out)
		case line, ok = <-lines:
		}
		if !ok {
			s.board.Quit()
			fmt.Fprintln(s.out, "Exiting...")
			return mines.Quit, nil
		}

		cmd, err := parseCommand(s.board, line)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"input": line,
				"error": err,
			}).Debug("invalid input")
			fmt.Fprintf(s.out, "Invalid input: %s.\n", err)
			continue
		}

		switch cmd.kind {
		case commandHelp:
			fmt.Fprint(s.out, helpText)
			continue
		case commandQuit:
			s.board.Quit()
			fmt.Fprintln(s.out, "Exiting...")
			return mines.Quit, nil
		}

		switch state := s.board.Apply(cmd.move); state {
		case mines.InvalidInput:
			fmt.Fprintln(s.out, "Flag every mine around that number before opening its neighbors.")
		case mines.Lost:
			if err := s.draw(true); err != nil {
				return state, err
			}
			fmt.Fprintln(s.out, "You lost :(")
			return state, nil
		case mines.Won:
			if err := s.draw(false); err != nil {
				return state, err
			}
			fmt.Fprintln(s.out, "You won :D")
			return state, nil
		}
	}
}
