package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/writer"
	"github.com/snowzach/rotatefilehook"

	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/render"
)

var (
	log = logrus.New()

	configPath string
	gameParams string
	seed       uint64
	showMines  bool
)

func init() {
	const usage = "config file path"
	flag.StringVar(&configPath, "config", "", usage)
	flag.StringVar(&configPath, "c", "", usage+" (shorthand)")
	flag.StringVar(&gameParams, "game", "",
		`board size: a preset (beginner, intermediate, expert) or "rows=10&cols=20&mines=15"`)
	flag.Uint64Var(&seed, "seed", 0, "mine layout seed (0 picks a random one)")
	flag.BoolVar(&showMines, "debug", false, "draw mines while playing")
}

// setupLogging keeps the terminal for the board: only warnings and errors
// reach stderr, everything else goes to the rotating log file if there is one.
func setupLogging(cfg *config.Config) error {
	logLevel := logrus.InfoLevel
	if cfg.Development() {
		logLevel = logrus.DebugLevel
	}
	log.SetLevel(logLevel)
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	log.SetOutput(io.Discard)

	log.AddHook(&writer.Hook{
		Writer:    os.Stderr,
		LogLevels: logrus.AllLevels[:logrus.WarnLevel+1],
	})

	if cfg.Log.File != "" {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   cfg.Log.File,
			MaxSize:    cfg.Log.MaxSizeMB,
			MaxBackups: cfg.Log.MaxBackups,
			MaxAge:     cfg.Log.MaxAgeDays,
			Level:      logLevel,
			Formatter:  &logrus.JSONFormatter{},
		})
		if err != nil {
			return fmt.Errorf("unable to open log file %s: %w", cfg.Log.File, err)
		}
		log.AddHook(hook)
	}

	mines.Log = log
	return nil
}

func glyphs(setting string, out *os.File) render.Glyphs {
	switch setting {
	case config.EmojiAlways:
		return render.Emoji
	case config.EmojiNever:
		return render.ASCII
	}
	if isatty.IsTerminal(out.Fd()) || isatty.IsCygwinTerminal(out.Fd()) {
		return render.Emoji
	}
	return render.ASCII
}

func run() int {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	if config.Development() {
		log.SetLevel(logrus.DebugLevel)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Error("unable to load config: ", err)
		return 1
	}
	if gameParams != "" {
		if cfg.Game, err = config.ParseGameParams(gameParams, cfg.Game); err != nil {
			log.Error("invalid -game flag: ", err)
			return 2
		}
	}

	if err := setupLogging(cfg); err != nil {
		log.Error(err)
		return 1
	}
	log.Info("starting up, mode = ", cfg.Mode)
	log.WithFields(cfg.Fields()).Debug("config")

	rnd := mines.NewRand()
	if seed != 0 {
		rnd = mines.NewSeededRand(seed)
	}
	board, err := mines.NewGame(cfg.Game.Params(), rnd)
	if err != nil {
		log.Error("unable to create game: ", err)
		return 1
	}

	session := &gameSession{
		board: board,
		out:   os.Stdout,
		opts:  render.Options{Glyphs: glyphs(cfg.Emoji, os.Stdout), ShowMines: showMines},
		log:   log,
	}

	// A read from stdin cannot be interrupted, so the scanner is left behind
	// when the game ends before input does.
	lines := make(chan string)
	go func() {
		if err := scanLines(ctx, os.Stdin, lines); err != nil && ctx.Err() == nil {
			log.Warn("unable to read input: ", err)
		}
	}()

	state, err := session.run(ctx, lines)
	if err != nil {
		log.Error("unable to draw board: ", err)
		return 1
	}
	log.WithFields(logrus.Fields{
		"state":   state.String(),
		"visible": board.VisibleCount(),
		"flags":   board.FlagCount(),
	}).Info("game over")
	return 0
}

func main() {
	flag.Parse()
	os.Exit(run())
}
