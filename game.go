package main

import (
	"context"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"splinedit/editor"
	"splinedit/spline"
)

const settingsSaveInterval = 5 * time.Second

var gameCtx context.Context

type Game struct {
	ed     *editor.Editor
	smooth *editor.Smoothness
	pal    palette

	slider  slider
	pointer pointerState
	surf    screenSurface
	events  []editor.PointerEvent

	started          time.Time
	lastSettingsSave time.Time
	stats            frameStats
}

func newGame(ed *editor.Editor, smooth *editor.Smoothness, pal palette) *Game {
	g := &Game{
		ed:               ed,
		smooth:           smooth,
		pal:              pal,
		started:          time.Now(),
		lastSettingsSave: time.Now(),
	}
	g.slider.Value = smooth.Smoothness()
	g.slider.OnChange = func(v float64) {
		smooth.Set(v)
		gs.Smoothness = v
		settingsDirty = true
		logTrace("smoothness %.2f", v)
	}
	g.slider.layout(gs.WindowWidth, gs.WindowHeight)
	return g
}

func (g *Game) Update() error {
	select {
	case <-gameCtx.Done():
		return ebiten.Termination
	default:
	}

	g.events = g.pointer.poll(g.events[:0])
	for _, ev := range g.events {
		g.handlePointerEvent(ev)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		promptExportPNG(currentFrame(g.ed, g.smooth.Smoothness(), g.pal))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) || inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		gs.ShowStatus = !gs.ShowStatus
		settingsDirty = true
	}

	if time.Since(g.lastSettingsSave) >= settingsSaveInterval {
		if settingsDirty {
			saveSettings()
			settingsDirty = false
		}
		g.lastSettingsSave = time.Now()
	}
	return nil
}

// handlePointerEvent routes ev to the slider first and to the editor when
// the slider does not want it.
func (g *Game) handlePointerEvent(ev editor.PointerEvent) {
	if g.slider.handle(ev) {
		return
	}
	if err := g.ed.HandlePointerEvent(ev); err != nil {
		logError("pointer %v: %v", ev.Kind, err)
		return
	}
	if i, ok := g.ed.Points().Selected(); ok && ev.Kind != editor.PointerMove {
		logTrace("pointer %v at %v, dragging %d", ev.Kind, ev.Pos, i)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.pal.Background)

	g.surf.dst = screen
	g.surf.reserve(spline.SampleCount(g.ed.Points().Len(), g.ed.Options()))
	start := time.Now()
	if err := g.ed.RenderFrame(&g.surf); err != nil {
		logFrameError(err)
	}
	g.stats = g.frameStats(time.Since(start))

	g.slider.draw(screen, g.pal)
	if gs.ShowStatus {
		drawStatus(screen, g.stats, g.pal)
	}
}

func (g *Game) frameStats(eval time.Duration) frameStats {
	dragging, ok := g.ed.Points().Selected()
	if !ok {
		dragging = -1
	}
	return frameStats{
		Points:   g.ed.Points().Len(),
		Vertices: g.ed.Samples(),
		Steps:    g.ed.Options().Steps,
		Smooth:   g.smooth.Smoothness(),
		Theme:    g.pal.Name,
		Dragging: dragging,
		Session:  time.Since(g.started),
		Eval:     eval,
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.slider.layout(outsideWidth, outsideHeight)
	if outsideWidth != gs.WindowWidth || outsideHeight != gs.WindowHeight {
		gs.WindowWidth, gs.WindowHeight = outsideWidth, outsideHeight
		settingsDirty = true
	}
	return outsideWidth, outsideHeight
}

func runGame(ctx context.Context, g *Game) {
	gameCtx = ctx

	ebiten.SetWindowTitle("Hermite Spline Editor")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(ebiten.SyncWithFPS)
	initFont()
	applySettings()

	op := &ebiten.RunGameOptions{ScreenTransparent: false}
	if err := ebiten.RunGameWithOptions(g, op); err != nil {
		log.Printf("ebiten: %v", err)
	}
	saveSettings()
	log.Printf("session ended after %s", formatDuration(time.Since(g.started)))
}
