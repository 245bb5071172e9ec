package main

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"

	"splinedit/editor"
	"splinedit/spline"
)

type Settings struct {
	Smoothness   float64 `json:"smoothness"`
	Steps        int     `json:"steps"`
	Points       int     `json:"points"`
	IncludeEnd   bool    `json:"includeEnd"`
	Theme        string  `json:"theme"`
	Vsync        bool    `json:"vsync"`
	WindowWidth  int     `json:"windowWidth"`
	WindowHeight int     `json:"windowHeight"`
	PointRadius  float64 `json:"pointRadius"`
	LineWidth    float64 `json:"lineWidth"`
	ShowStatus   bool    `json:"showStatus"`
}

var gsdef = Settings{
	Smoothness:   spline.DefaultSmoothness,
	Steps:        spline.DefaultSteps,
	Points:       editor.DefaultPointCount,
	Vsync:        true,
	WindowWidth:  720,
	WindowHeight: 450,
	PointRadius:  6,
	LineWidth:    1,
	ShowStatus:   true,
}

var (
	gs            = gsdef
	settingsDirty bool
)

const settingsFile = "settings.json"

func loadSettings() bool {
	path := filepath.Join(baseDir, settingsFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	s := gsdef
	if err := json.Unmarshal(data, &s); err != nil {
		log.Printf("load settings: %v", err)
		return false
	}
	gs = sanitizeSettings(s)
	return true
}

// sanitizeSettings replaces values that would leave the editor unusable
// with their defaults.
func sanitizeSettings(s Settings) Settings {
	if s.Steps < 1 {
		s.Steps = gsdef.Steps
	}
	if s.Points < 2 {
		s.Points = gsdef.Points
	}
	if s.WindowWidth <= 0 || s.WindowHeight <= 0 {
		s.WindowWidth, s.WindowHeight = gsdef.WindowWidth, gsdef.WindowHeight
	}
	if s.PointRadius <= 0 {
		s.PointRadius = gsdef.PointRadius
	}
	if s.LineWidth <= 0 {
		s.LineWidth = gsdef.LineWidth
	}
	if s.Smoothness < sliderMin {
		s.Smoothness = sliderMin
	}
	if s.Smoothness > sliderMax {
		s.Smoothness = sliderMax
	}
	return s
}

// overridePoints applies the -points flag under the same limits as the
// settings file. Zero leaves the setting alone.
func overridePoints(n int) {
	if n == 0 {
		return
	}
	gs.Points = n
	gs = sanitizeSettings(gs)
}

func applySettings() {
	ebiten.SetVsyncEnabled(gs.Vsync)
	ebiten.SetWindowSize(gs.WindowWidth, gs.WindowHeight)
}

func saveSettings() {
	data, err := json.MarshalIndent(gs, "", "  ")
	if err != nil {
		log.Printf("save settings: %v", err)
		return
	}
	path := filepath.Join(baseDir, settingsFile)
	if err := os.WriteFile(path, data, 0644); err != nil {
		log.Printf("save settings: %v", err)
	}
}

// splineOptions returns the sampling options described by the settings.
func splineOptions() spline.Options {
	return spline.Options{Steps: gs.Steps, IncludeEnd: gs.IncludeEnd}
}
