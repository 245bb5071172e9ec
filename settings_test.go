package main

import (
	"os"
	"path/filepath"
	"testing"
)

func withBaseDir(t *testing.T) {
	t.Helper()
	savedDir, savedGS := baseDir, gs
	baseDir = t.TempDir()
	t.Cleanup(func() { baseDir, gs = savedDir, savedGS })
}

func TestLoadSettingsMissingFile(t *testing.T) {
	withBaseDir(t)
	if loadSettings() {
		t.Fatal("loadSettings reported success without a file")
	}
	if gs != gsdef {
		t.Errorf("settings changed: %+v", gs)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	withBaseDir(t)
	gs.Smoothness = 0.8
	gs.Steps = 40
	gs.IncludeEnd = true
	gs.Theme = "dark"
	saveSettings()

	gs = gsdef
	if !loadSettings() {
		t.Fatal("loadSettings failed")
	}
	if gs.Smoothness != 0.8 || gs.Steps != 40 || !gs.IncludeEnd || gs.Theme != "dark" {
		t.Errorf("loaded %+v", gs)
	}
	opts := splineOptions()
	if opts.Steps != 40 || !opts.IncludeEnd {
		t.Errorf("options %+v", opts)
	}
}

func TestLoadSettingsSanitizes(t *testing.T) {
	withBaseDir(t)
	data := `{"smoothness": 4, "steps": 0, "points": 1, "pointRadius": -2}`
	if err := os.WriteFile(filepath.Join(baseDir, settingsFile), []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	if !loadSettings() {
		t.Fatal("loadSettings failed")
	}
	if gs.Smoothness != sliderMax || gs.Steps != gsdef.Steps || gs.Points != gsdef.Points || gs.PointRadius != gsdef.PointRadius {
		t.Errorf("got %+v", gs)
	}
	// keys missing from the file keep their defaults
	if gs.WindowWidth != gsdef.WindowWidth || !gs.Vsync {
		t.Errorf("defaults lost: %+v", gs)
	}
}

func TestLoadSettingsBadJSON(t *testing.T) {
	withBaseDir(t)
	if err := os.WriteFile(filepath.Join(baseDir, settingsFile), []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}
	if loadSettings() {
		t.Fatal("loadSettings accepted malformed JSON")
	}
}

func TestOverridePoints(t *testing.T) {
	tests := []struct {
		name string
		flag int
		want int
	}{
		{"unset", 0, 5},
		{"valid", 12, 12},
		{"too few", 1, gsdef.Points},
		{"negative", -1, gsdef.Points},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withBaseDir(t)
			gs.Points = 5
			overridePoints(tt.flag)
			if gs.Points != tt.want {
				t.Errorf("points = %d, want %d", gs.Points, tt.want)
			}
		})
	}
}
