package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"splinedit/editor"
	"splinedit/spline"
)

func stubPointer(t *testing.T, samples ...pointerSample) {
	t.Helper()
	orig := samplePointerFn
	samplePointerFn = func() pointerSample {
		if len(samples) == 0 {
			t.Fatal("pointer sampled more often than expected")
		}
		s := samples[0]
		samples = samples[1:]
		return s
	}
	t.Cleanup(func() { samplePointerFn = orig })
}

func TestPollEventOrder(t *testing.T) {
	stubPointer(t,
		pointerSample{x: 10, y: 20, pressed: true},
		pointerSample{x: 10, y: 20},
		pointerSample{x: 15, y: 20, released: true},
	)
	var ps pointerState
	var got []editor.PointerEvent
	for i := 0; i < 3; i++ {
		got = ps.poll(got)
	}
	want := []editor.PointerEvent{
		{Kind: editor.PointerDown, Pos: spline.Pt(10, 20)},
		{Kind: editor.PointerMove, Pos: spline.Pt(10, 20)},
		{Kind: editor.PointerMove, Pos: spline.Pt(15, 20)},
		{Kind: editor.PointerUp, Pos: spline.Pt(15, 20)},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("events (-want +got):\n%s", d)
	}
}

func TestPollTouchReleaseKeepsPosition(t *testing.T) {
	stubPointer(t,
		pointerSample{x: 300, y: 200, touch: true, pressed: true},
		// the finger is gone; the cursor reads the origin on touch-only hosts
		pointerSample{x: 0, y: 0, released: true},
	)
	var ps pointerState
	got := ps.poll(nil)
	got = ps.poll(got[:0])
	want := []editor.PointerEvent{{Kind: editor.PointerUp, Pos: spline.Pt(300, 200)}}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("release events (-want +got):\n%s", d)
	}
}

func TestTouchReleaseLeavesDraggedPoint(t *testing.T) {
	stubPointer(t,
		pointerSample{x: 100, y: 100, touch: true, pressed: true},
		pointerSample{x: 300, y: 200, touch: true},
		pointerSample{x: 0, y: 0, released: true},
	)
	cs, err := spline.NewControlPointSet([]spline.Point{spline.Pt(100, 100), spline.Pt(400, 100)})
	if err != nil {
		t.Fatal(err)
	}
	ed := editor.New(cs, editor.NewSmoothness(0.5), spline.Options{}, editor.DefaultStyle)

	var ps pointerState
	for i := 0; i < 3; i++ {
		for _, ev := range ps.poll(nil) {
			if err := ed.HandlePointerEvent(ev); err != nil {
				t.Fatal(err)
			}
		}
	}
	if got := cs.Positions()[0]; got != spline.Pt(300, 200) {
		t.Errorf("dragged point ended at %v", got)
	}
	if _, ok := cs.Selected(); ok {
		t.Error("drag still active after the touch ended")
	}
}
