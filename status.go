package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hako/durafmt"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.AmericanEnglish)

var shortUnits, _ = durafmt.DefaultUnitsCoder.Decode("y:yrs,wk:wks,d:d,h:h,m:m,s:s,ms:ms,us:us")

// frameStats is what the status overlay reports about the latest frame.
type frameStats struct {
	Points   int
	Vertices int
	Steps    int
	Smooth   float64
	Theme    string
	Dragging int // -1 when idle
	Session  time.Duration
	Eval     time.Duration
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return "0s"
	}
	return durafmt.Parse(d.Truncate(time.Second)).LimitFirstN(2).Format(shortUnits)
}

// statusLines renders the overlay text for st.
func statusLines(st frameStats) []string {
	lines := []string{
		fmt.Sprintf("%d points, %s vertices, %d steps, k=%.2f",
			st.Points, humanize.Comma(int64(st.Vertices)), st.Steps, st.Smooth),
		fmt.Sprintf("%s theme, session %s, eval %s", titleCaser.String(st.Theme), formatDuration(st.Session), st.Eval.Round(time.Microsecond)),
	}
	if st.Dragging >= 0 {
		lines = append(lines, fmt.Sprintf("dragging point %d", st.Dragging))
	} else {
		lines = append(lines, "drag a point to move it; S saves a PNG, H hides this")
	}
	return lines
}

func drawStatus(dst *ebiten.Image, st frameStats, pal palette) {
	if labelFace == nil {
		return
	}
	y := 10.0
	for _, line := range statusLines(st) {
		top := &text.DrawOptions{}
		top.GeoM.Translate(10, y)
		top.ColorScale.ScaleWithColor(pal.Text)
		text.Draw(dst, line, labelFace, top)
		y += labelFontSize + 4
	}
}
