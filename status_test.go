package main

import (
	"strings"
	"testing"
	"time"
)

func TestStatusLines(t *testing.T) {
	st := frameStats{
		Points:   8,
		Vertices: 1176,
		Steps:    168,
		Smooth:   0.5,
		Theme:    "dark",
		Dragging: -1,
		Session:  83 * time.Second,
		Eval:     1500 * time.Microsecond,
	}
	lines := statusLines(st)
	if len(lines) != 3 {
		t.Fatalf("got %d lines", len(lines))
	}
	if !strings.Contains(lines[0], "1,176 vertices") || !strings.Contains(lines[0], "k=0.50") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "Dark theme") || !strings.Contains(lines[1], "23") {
		t.Errorf("line 1 = %q", lines[1])
	}
	if !strings.Contains(lines[2], "drag a point") {
		t.Errorf("line 2 = %q", lines[2])
	}

	st.Dragging = 3
	if got := statusLines(st)[2]; got != "dragging point 3" {
		t.Errorf("dragging line = %q", got)
	}
}

func TestFormatDuration(t *testing.T) {
	if got := formatDuration(999 * time.Millisecond); got != "0s" {
		t.Errorf("sub-second: got %q", got)
	}
	cases := []struct {
		d       time.Duration
		want    []string
		notWant string
	}{
		{45 * time.Second, []string{"45"}, "m"},
		// only the two largest units are shown
		{time.Hour + 2*time.Minute + 3*time.Second, []string{"1", "2"}, "3"},
	}
	for _, tt := range cases {
		got := formatDuration(tt.d)
		for _, w := range tt.want {
			if !strings.Contains(got, w) {
				t.Errorf("%v: %q lacks %q", tt.d, got, w)
			}
		}
		if strings.Contains(got, tt.notWant) {
			t.Errorf("%v: %q contains %q", tt.d, got, tt.notWant)
		}
	}
}
