package main

import (
	"context"
	"flag"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"syscall"
	"time"

	"splinedit/editor"
	"splinedit/spline"
)

var baseDir string

func main() {
	debugLog := flag.Bool("debug", false, "verbose/debug logging")
	tui := flag.Bool("tui", false, "edit in the terminal instead of a window")
	pngPath := flag.String("png", "", "render one frame to this PNG file and exit")
	sweepDir := flag.String("sweep", "", "render a smoothness sweep into this directory and exit")
	seed := flag.Int64("seed", 0, "seed for the initial point layout (0 picks one)")
	points := flag.Int("points", 0, "number of control points (overrides settings)")
	flag.Parse()

	baseDir = os.Getenv("PWD")
	if baseDir == "" {
		var err error
		if baseDir, err = os.Getwd(); err != nil {
			log.Fatalf("get working directory: %v", err)
		}
	}

	loadSettings()
	overridePoints(*points)
	logToConsole = !*tui
	setupLogging(*debugLog)
	defer func() {
		if r := recover(); r != nil {
			logError("panic: %v\n%s", r, debug.Stack())
		}
	}()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	logDebug("seed %d, %d points", *seed, gs.Points)

	cs, err := spline.NewControlPointSet(editor.SeedPositions(gs.Points, rand.New(rand.NewSource(*seed))))
	if err != nil {
		log.Fatalf("control points: %v", err)
	}
	smooth := editor.NewSmoothness(gs.Smoothness)
	pal := pickPalette(gs.Theme)
	ed := editor.New(cs, smooth, splineOptions(), pal.Style)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	switch {
	case *pngPath != "":
		if err := exportPNG(*pngPath, currentFrame(ed, smooth.Smoothness(), pal)); err != nil {
			log.Fatalf("%v", err)
		}
	case *sweepDir != "":
		if err := os.MkdirAll(*sweepDir, 0755); err != nil {
			log.Fatalf("sweep: %v", err)
		}
		if err := exportSweep(ctx, *sweepDir, currentFrame(ed, smooth.Smoothness(), pal), runtime.NumCPU()); err != nil {
			log.Fatalf("sweep: %v", err)
		}
	case *tui:
		if err := runTerminal(ctx, ed, smooth, pal); err != nil {
			enableConsoleLogging()
			log.Fatalf("terminal: %v", err)
		}
	default:
		runGame(ctx, newGame(ed, smooth, pal))
	}
}
