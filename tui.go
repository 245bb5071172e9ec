package main

import (
	"context"
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"splinedit/editor"
	"splinedit/spline"
)

// One terminal cell covers cellW x cellH units and holds a 2x4 braille dot
// block, so a dot is 4x4 units.
const (
	cellW = 8
	cellH = 16
	dotW  = cellW / 2
	dotH  = cellH / 4

	tuiFrame       = 16 * time.Millisecond
	tuiSmoothDelta = 0.05
)

// brailleBits maps a dot at (col, row) inside a cell to its braille bit.
var brailleBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

type cellMark struct {
	r     rune
	style tcell.Style
}

// cellSurface rasterises editor frames into terminal cells.
type cellSurface struct {
	w, h     int
	dots     []uint8
	dotStyle tcell.Style
	marks    map[int]cellMark
}

func newCellSurface(w, h int) *cellSurface {
	return &cellSurface{w: w, h: h, dots: make([]uint8, w*h), marks: map[int]cellMark{}}
}

func (s *cellSurface) reset(w, h int) {
	if w*h != len(s.dots) {
		s.dots = make([]uint8, w*h)
	} else {
		clear(s.dots)
	}
	s.w, s.h = w, h
	clear(s.marks)
}

func tcellColor(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

func (s *cellSurface) FillCircle(center spline.Point, _ float64, col color.Color) {
	cx, cy := int(math.Floor(center.X/cellW)), int(math.Floor(center.Y/cellH))
	if cx < 0 || cy < 0 || cx >= s.w || cy >= s.h {
		return
	}
	s.marks[cy*s.w+cx] = cellMark{r: '●', style: tcell.StyleDefault.Foreground(tcellColor(col))}
}

func (s *cellSurface) StrokePolyline(points []spline.Point, _ float64, col color.Color) {
	s.dotStyle = tcell.StyleDefault.Foreground(tcellColor(col))
	for i := 1; i < len(points); i++ {
		a, b := points[i-1], points[i]
		d := b.Sub(a)
		n := int(math.Ceil(math.Max(math.Abs(d.X)/dotW, math.Abs(d.Y)/dotH)))
		if n < 1 {
			n = 1
		}
		for j := 0; j <= n; j++ {
			s.plot(a.Add(d.Mul(float64(j) / float64(n))))
		}
	}
}

func (s *cellSurface) plot(p spline.Point) {
	dx, dy := int(math.Floor(p.X/dotW)), int(math.Floor(p.Y/dotH))
	if dx < 0 || dy < 0 {
		return
	}
	cx, cy := dx/2, dy/4
	if cx >= s.w || cy >= s.h {
		return
	}
	s.dots[cy*s.w+cx] |= brailleBits[dx%2][dy%4]
}

func (s *cellSurface) flush(screen tcell.Screen) {
	for i, bits := range s.dots {
		if bits != 0 {
			screen.SetContent(i%s.w, i/s.w, rune(0x2800+int(bits)), nil, s.dotStyle)
		}
	}
	for i, m := range s.marks {
		screen.SetContent(i%s.w, i/s.w, m.r, nil, m.style)
	}
}

// cellCenter maps a terminal cell to the centre of the area it covers.
func cellCenter(x, y int) spline.Point {
	return spline.Pt(float64(x)*cellW+cellW/2, float64(y)*cellH+cellH/2)
}

type termEditor struct {
	screen tcell.Screen
	ed     *editor.Editor
	smooth *editor.Smoothness
	pal    palette
	surf   *cellSurface
	down   bool
}

func newTermEditor(screen tcell.Screen, ed *editor.Editor, smooth *editor.Smoothness, pal palette) *termEditor {
	w, h := screen.Size()
	return &termEditor{screen: screen, ed: ed, smooth: smooth, pal: pal, surf: newCellSurface(w, h-1)}
}

// handleEvent applies one terminal event. It returns false when the user
// asked to quit.
func (t *termEditor) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		x, y := ev.Position()
		pos := cellCenter(x, y)
		pressed := ev.Buttons()&tcell.Button1 != 0
		if pressed && !t.down {
			t.pointer(editor.PointerEvent{Kind: editor.PointerDown, Pos: pos})
		}
		t.pointer(editor.PointerEvent{Kind: editor.PointerMove, Pos: pos})
		if !pressed && t.down {
			t.pointer(editor.PointerEvent{Kind: editor.PointerUp, Pos: pos})
		}
		t.down = pressed
	case *tcell.EventKey:
		return t.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return true
}

func (t *termEditor) handleKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
		switch r {
		case 'q':
			return false
		case '+', '=':
			t.nudgeSmoothness(tuiSmoothDelta)
		case '-':
			t.nudgeSmoothness(-tuiSmoothDelta)
		}
	}
	return true
}

func (t *termEditor) pointer(ev editor.PointerEvent) {
	if err := t.ed.HandlePointerEvent(ev); err != nil {
		logError("pointer %v: %v", ev.Kind, err)
	}
}

func (t *termEditor) nudgeSmoothness(d float64) {
	k := quantize(t.smooth.Smoothness() + d)
	k = math.Max(sliderMin, math.Min(sliderMax, k))
	t.smooth.Set(k)
	gs.Smoothness = k
	settingsDirty = true
}

func (t *termEditor) draw() {
	w, h := t.screen.Size()
	t.surf.reset(w, h-1)
	if err := t.ed.RenderFrame(t.surf); err != nil {
		logFrameError(err)
	}

	t.screen.Clear()
	t.surf.flush(t.screen)
	status := fmt.Sprintf(" k=%.2f  +/- adjust  drag with mouse  q quits", t.smooth.Smoothness())
	style := tcell.StyleDefault.Foreground(tcellColor(t.pal.Text))
	for i, r := range status {
		if i >= w {
			break
		}
		t.screen.SetContent(i, h-1, r, nil, style)
	}
	t.screen.Show()
}

// run drives the editor until ctx ends or the user quits. Input and frames
// are handled on this goroutine only.
func (t *termEditor) run(ctx context.Context) {
	ticker := time.NewTicker(tuiFrame)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-eventChan:
			if !t.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			t.draw()
		}
	}
}

func runTerminal(ctx context.Context, ed *editor.Editor, smooth *editor.Smoothness, pal palette) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	newTermEditor(screen, ed, smooth, pal).run(ctx)
	saveSettings()
	return nil
}
