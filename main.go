package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rook-computer/scoreboard/internal/app"
	"github.com/rook-computer/scoreboard/internal/assets"
	"github.com/rook-computer/scoreboard/internal/config"
	"github.com/rook-computer/scoreboard/internal/input"
	"github.com/rook-computer/scoreboard/internal/keyboard"
	"github.com/rook-computer/scoreboard/internal/match"
	"github.com/rook-computer/scoreboard/internal/render"
	"github.com/rook-computer/scoreboard/internal/state"
	"github.com/rook-computer/scoreboard/internal/system"
)

const (
	logFile      = "scoreboard.log"
	stdioLogFile = "scoreboard-stdio.log"
)

func main() {
	if err := run(); err != nil {
		fmt.Println("scoreboard error:", err)
		os.Exit(1)
	}
}

func run() error {
	dir := config.ResourceDir()

	// Panics end up in the file even while the console is in graphics mode.
	if err := redirectStdIO(config.ResourcePath(dir, stdioLogFile)); err != nil {
		fmt.Println("stdio log redirect error:", err)
	}

	var logger app.Logger = app.NoopLogger{}
	f, err := os.OpenFile(config.ResourcePath(dir, logFile), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err == nil {
		defer f.Close()
		logger = app.NewFileLogger(f)
	} else {
		fmt.Println("log open error:", err)
	}
	logger.Infof("main", "starting, resources in %s", dir)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := config.NewColorStore(config.ResourcePath(dir, config.FileName), logger)
	info := match.Load(config.ResourcePath(dir, match.FileName), logger)
	fonts := render.LoadFontSet(config.ResourcePath(dir, assets.FontFile), logger)

	background, err := assets.LoadBackground(config.ResourcePath(dir, assets.BackgroundFile))
	if err != nil {
		logger.Infof("assets", "no background image: %v", err)
	}

	renderer := render.NewFBRenderer(fonts)
	renderer.Logger = logger

	console := system.NewConsole(logger)
	console.Enter()
	defer console.Restore()

	a := app.New(state.New(info, store.Load()), renderer, keyboard.NewEvdevSource(logger), input.NewController(store, logger))
	a.Logger = logger
	a.Background = background

	err = a.Start(ctx)
	if errors.Is(err, context.Canceled) {
		logger.Infof("main", "interrupted")
		return nil
	}
	if err != nil {
		logger.Errorf("main", "run error: %v", err)
	}
	return err
}
