package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/leonelquinteros/gotext"

	"templewatch/pkg/engine/input"
	"templewatch/pkg/game/catalog"
	"templewatch/pkg/game/renderer"
	"templewatch/pkg/game/renderer/cells"
	"templewatch/pkg/game/renderer/ebiten"
	"templewatch/pkg/game/renderer/tui"
	"templewatch/pkg/game/scene"
	"templewatch/pkg/game/settings"
	"templewatch/pkg/game/temple"
)

func initGettext(localeDir, lang string) {
	if localeDir == "" {
		return
	}
	gotext.Configure(localeDir, lang, "default")
}

func newLogger(level string, w io.Writer) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("bad -log-level %q: %w", level, err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

func newRenderer(name string, stdout io.Writer) (renderer.Renderer, error) {
	switch name {
	case "tui":
		return tui.New(stdout), nil
	case "cells":
		return cells.New(nil), nil
	case "ebiten":
		return ebiten.New(), nil
	default:
		return nil, fmt.Errorf("unknown renderer %q (want tui, cells or ebiten)", name)
	}
}

// printKeys lists the viewer key bindings, one action per line.
func printKeys(w io.Writer) {
	keys := input.BindingsByAction()
	fmt.Fprintln(w, "\nKeys:")
	for a := input.ActionQuit; a <= input.ActionCopy; a++ {
		if codes := keys[a]; len(codes) > 0 {
			fmt.Fprintf(w, "  %-12s %s\n", strings.Join(codes, ", "), input.ActionName(a))
		}
	}
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fatal("%v", err)
	}
}

// run is the whole program. Everything it opens is released before it returns.
func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("templewatch", flag.ContinueOnError)
	fs.SetOutput(stderr)
	sceneName := fs.String("scene", "world", "scene file, or one of: "+strings.Join(scene.Builtins(), ", "))
	configPath := fs.String("config", "", "settings YAML file (defaults when empty)")
	rendererName := fs.String("renderer", "tui", "tui, cells or ebiten")
	frames := fs.Int("frames", 0, "frames to render; 0 draws one text frame or keeps the ebiten window open")
	copyListing := fs.Bool("copy", false, "copy the last tui frame listing to the clipboard")
	dumpConfig := fs.Bool("dump-config", false, "print the effective settings as YAML and exit")
	lang := fs.String("lang", "en_GB", "display language")
	localeDir := fs.String("locale-dir", "", "directory of gettext catalogs")
	logLevel := fs.String("log-level", "warn", "debug, info, warn or error")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage of templewatch:")
		fs.PrintDefaults()
		printKeys(fs.Output())
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger, err := newLogger(*logLevel, stderr)
	if err != nil {
		return err
	}
	initGettext(*localeDir, *lang)

	cat, err := catalog.Default()
	if err != nil {
		return fmt.Errorf("room catalog: %w", err)
	}

	cfg, err := settings.Load(*configPath)
	if err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	if *dumpConfig {
		if err := cfg.Encode(stdout); err != nil {
			return fmt.Errorf("settings: %w", err)
		}
		return nil
	}

	sc, err := scene.Load(*sceneName)
	if err != nil {
		return err
	}

	r, err := newRenderer(*rendererName, stdout)
	if err != nil {
		return err
	}
	renderer.SetRenderer(r)
	if err := renderer.Init(); err != nil {
		renderer.SetRenderer(nil)
		return fmt.Errorf("renderer %s: %w", *rendererName, err)
	}
	defer renderer.Close()

	eng, err := temple.New(temple.Config{
		Catalog:  cat,
		Settings: &cfg,
		Renderer: r,
		Logger:   logger,
	})
	if err != nil {
		return err
	}
	eng.Initialise(sc.Objects())
	logger.Info("scene loaded", "scene", *sceneName, "objects", len(sc.Entities), "tracked", eng.Tracked().Len())

	logFrame := func(f temple.Frame) {
		logger.Debug("frame", "mode", f.Mode, "annotations", len(f.Annotations), "activated", f.Progress.Count(), "total", f.Progress.Total)
	}

	switch r := r.(type) {
	case *ebiten.EbitenRenderer:
		v := &ebiten.Viewer{Engine: eng, Host: sc, R: r, Objects: sc.Objects(), OnFrame: logFrame, MaxFrames: *frames}
		if err := v.Run("templewatch"); err != nil {
			return fmt.Errorf("ebiten: %w", err)
		}
		return nil
	default:
		for i := 0; i < max(*frames, 1); i++ {
			logFrame(eng.Render(sc))
		}
	}

	switch r := r.(type) {
	case *tui.TUIRenderer:
		if *copyListing {
			if err := clipboard.WriteAll(r.Listing()); err != nil {
				logger.Warn("copy to clipboard failed", "err", err)
			}
		}
	case *cells.Renderer:
		keyLoop(r.NextKey, eng, sc, logFrame)
	}
	return nil
}

// keyLoop applies key presses until quit, redrawing after every change.
func keyLoop(next func() (input.RawInput, bool), eng *temple.Engine, sc *scene.Scene, logFrame func(temple.Frame)) {
	debounce := input.NewDebouncer(0)
	for {
		raw, ok := next()
		if !ok {
			return
		}
		ev, ok := debounce.Accept(raw)
		if !ok {
			continue
		}
		a := input.MapToIntent(ev).Action
		if a == input.ActionQuit {
			return
		}
		if eng.Handle(a, sc.Objects()) {
			logFrame(eng.Render(sc))
		}
	}
}
