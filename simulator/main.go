package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image/png"
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
)

func main() {
	dir := flag.String("dir", ".", "resource directory holding config.ini, match.txt, bg.jpg and fonts.ttf")
	keys := flag.String("keys", "", `scripted key names separated by commas, e.g. "1,1,up,down,=,enter"`)
	interactive := flag.Bool("interactive", false, "read keys from the terminal until esc")
	fullscreen := flag.Bool("fullscreen", false, "start in fullscreen mode")
	out := flag.String("out", "scoreboard.png", "write the last frame to this PNG file")
	verbose := flag.Bool("v", false, "log to stderr")
	flag.Parse()

	var logger app.Logger = app.NoopLogger{}
	if *verbose {
		logger = app.NewFileLogger(os.Stderr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var source keyboard.Source
	if *interactive {
		source = keyboard.NewTerminalSource(os.Stdin)
	} else {
		script, err := keyboard.NewScriptSource(*keys)
		if err != nil {
			fmt.Println("keys:", err)
			os.Exit(2)
		}
		source = script
	}

	store := config.NewColorStore(config.ResourcePath(*dir, config.FileName), logger)
	info := match.Load(config.ResourcePath(*dir, match.FileName), logger)
	fonts := render.LoadFontSet(config.ResourcePath(*dir, assets.FontFile), logger)
	renderer := render.NewImageRenderer(fonts)
	renderer.SetFullscreen(*fullscreen)

	st := state.New(info, store.Load())
	st.Window.Fullscreen = *fullscreen

	a := app.New(st, renderer, source, input.NewController(store, logger))
	a.Logger = logger
	if bg, err := assets.LoadBackground(config.ResourcePath(*dir, assets.BackgroundFile)); err == nil {
		a.Background = bg
	}
	if !*interactive {
		// The script is applied in full by the first frame.
		a.MaxFrames = 1
	}

	err := a.Start(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Println("simulator error:", err)
		os.Exit(1)
	}

	if err := writePNG(*out, renderer); err != nil {
		fmt.Println("write frame:", err)
		os.Exit(1)
	}
	fmt.Printf("%s: %s %d-%d, view %s, %d frames\n", *out, st.Match.MatchName, st.Scores.Home, st.Scores.Away, st.Mode, renderer.Frames())
}

func writePNG(path string, renderer *render.ImageRenderer) error {
	frame := renderer.Snapshot()
	if frame == nil {
		return errors.New("no frame rendered")
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, frame); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
