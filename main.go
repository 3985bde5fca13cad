package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/fftoml"
	"github.com/sirupsen/logrus"

	"github.com/dimaq12/minefield/game"
)

type options struct {
	config   game.Config
	level    int
	logLevel string
	logFile  string
}

func parseOptions(args []string) (options, error) {
	fs := flag.NewFlagSet("minefield", flag.ContinueOnError)

	var opts options
	def := game.DefaultConfig()
	fs.IntVar(&opts.config.Width, "width", def.Width, fmt.Sprintf("board width (%d-%d)", game.MinDimension, game.MaxDimension))
	fs.IntVar(&opts.config.Height, "height", def.Height, fmt.Sprintf("board height (%d-%d)", game.MinDimension, game.MaxDimension))
	fs.IntVar(&opts.config.Mines, "mines", def.Mines, "number of mines, clamped to leave at least 3 safe cells")
	fs.BoolVar(&opts.config.Hint, "hint", def.Hint, "start each game with a revealed safe cell")
	fs.BoolVar(&opts.config.DebugReveal, "debug", def.DebugReveal, "show mines while playing")
	fs.IntVar(&opts.level, "level", 0, "preset level 1-3, overrides width/height/mines (0 = off)")
	fs.StringVar(&opts.logLevel, "log-level", "info", "debug|info|warn|error")
	fs.StringVar(&opts.logFile, "log-file", "", "write logs to this file (discarded when empty)")
	_ = fs.String("config", "", "TOML config file")

	err := ff.Parse(fs, args,
		ff.WithEnvVarPrefix("MINEFIELD"),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(fftoml.Parser),
	)
	if err != nil {
		return opts, err
	}

	if opts.level != 0 {
		preset, ok := game.LevelConfig(opts.level)
		if !ok {
			return opts, fmt.Errorf("level %d: want 1-3", opts.level)
		}
		opts.config.Width, opts.config.Height, opts.config.Mines = preset.Width, preset.Height, preset.Mines
	}
	return opts, nil
}

func newLogger(level, file string) (*logrus.Logger, io.Closer, error) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, nil, err
	}
	log.SetLevel(lvl)

	if file == "" {
		return log, io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	return log, f, nil
}

func main() {
	opts, err := parseOptions(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := run(opts); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println("Quitting...")
}

func run(opts options) error {
	log, closer, err := newLogger(opts.logLevel, opts.logFile)
	if err != nil {
		return err
	}
	defer closer.Close()

	session, err := game.NewSession(opts.config, game.WithLogger(log))
	if err != nil {
		log.WithError(err).Error("starting game")
		return err
	}
	cfg := session.Config()
	log.WithFields(logrus.Fields{
		"width":  cfg.Width,
		"height": cfg.Height,
		"mines":  cfg.Mines,
		"level":  opts.level,
	}).Info("starting minefield")

	controller := game.NewGameController(session, log)
	if err := controller.StartGame(); err != nil {
		log.WithError(err).Error("terminal ui")
		return fmt.Errorf("terminal ui: %w", err)
	}
	return nil
}
