package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sqweek/dialog"

	"splinedit/editor"
	"splinedit/snapshot"
)

var sweepSmoothness = []float64{0, 0.25, 0.5, 0.75, 1}

// currentFrame captures the editor state for off-screen rendering.
func currentFrame(ed *editor.Editor, k float64, pal palette) snapshot.Frame {
	return snapshot.Frame{
		Positions:  ed.Points().Positions(),
		Smoothness: k,
		Options:    ed.Options(),
		Style:      pal.Style,
		Background: pal.Background,
		Width:      gs.WindowWidth,
		Height:     gs.WindowHeight,
	}
}

// exportPNG writes f to path and logs the result.
func exportPNG(path string, f snapshot.Frame) error {
	n, err := snapshot.SavePNG(path, f)
	if err != nil {
		return fmt.Errorf("export %v: %w", path, err)
	}
	logDebug("wrote %v (%s)", path, humanize.Bytes(uint64(n)))
	return nil
}

// promptExportPNG asks for a file name and saves f there.
func promptExportPNG(f snapshot.Frame) {
	defName := fmt.Sprintf("spline_%s.png", time.Now().Format("20060102_150405"))
	filename, err := dialog.File().Filter("PNG images", "png").SetStartDir(baseDir).SetStartFile(defName).Title("Save Snapshot").Save()
	if err != nil {
		if !errors.Is(err, dialog.ErrCancelled) {
			logError("save snapshot: %v", err)
		}
		return
	}
	if filename == "" {
		return
	}
	if filepath.Ext(filename) == "" {
		filename += ".png"
	}
	if err := exportPNG(filename, f); err != nil {
		logError("save snapshot: %v", err)
	}
}

// exportSweep renders f at each sweep smoothness into dir.
func exportSweep(ctx context.Context, dir string, f snapshot.Frame, workers int) error {
	var errs []error
	var total int64
	for _, r := range snapshot.Sweep(ctx, f, sweepSmoothness, dir, workers) {
		if r.Err != nil {
			errs = append(errs, fmt.Errorf("k=%.2f: %w", r.Smoothness, r.Err))
			continue
		}
		total += r.Size
		logDebug("wrote %v (%s)", r.Path, humanize.Bytes(uint64(r.Size)))
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	log.Printf("sweep: %d images, %s in %v", len(sweepSmoothness), humanize.Bytes(uint64(total)), dir)
	return nil
}
