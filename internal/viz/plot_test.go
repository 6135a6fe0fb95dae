package viz

import (
	"strings"
	"testing"

	"github.com/san-kum/trajlab/internal/phys"
	"github.com/san-kum/trajlab/internal/scene"
)

func TestPlotViewport(t *testing.T) {
	pl := NewPlot(40, 12)
	vp := pl.Viewport()

	if vp.X != 0 || vp.Y != 0 || vp.W != 79 || vp.H != 47 {
		t.Errorf("viewport = %+v", vp)
	}
}

func TestRenderEmptySceneHasGroundLine(t *testing.T) {
	s := scene.New(phys.DefaultConfig())
	pl := NewPlot(40, 12)

	rows := pl.Render(s, s.Bounds())
	if len(rows) != 12 {
		t.Fatalf("got %d rows, want 12", len(rows))
	}

	bottom := []rune(rows[len(rows)-1])
	for i, r := range bottom {
		if r == 0x2800 {
			t.Errorf("ground line gap at column %d", i)
		}
	}
}

func TestRenderTrajectoryAddsDots(t *testing.T) {
	s := scene.New(phys.DefaultConfig())
	pl := NewPlot(40, 12)

	base := countDots(pl.canvas)
	pl.Render(s, s.Bounds())
	empty := countDots(pl.canvas)
	if empty <= base {
		t.Fatal("grid not drawn")
	}

	s.Spawn(phys.Params{AngleDeg: 45, Speed: 25, Mass: 1})
	for i := 0; i < 200; i++ {
		s.Tick()
	}
	pl.Render(s, s.Bounds())
	if countDots(pl.canvas) <= empty {
		t.Error("trajectory added no dots")
	}
}

func TestRenderClearsBetweenFrames(t *testing.T) {
	s := scene.New(phys.DefaultConfig())
	s.Spawn(phys.Params{AngleDeg: 45, Speed: 25, Mass: 1})
	for i := 0; i < 200; i++ {
		s.Tick()
	}

	pl := NewPlot(40, 12)
	b := s.Bounds()
	first := strings.Join(pl.Render(s, b), "\n")
	second := strings.Join(pl.Render(s, b), "\n")

	if first != second {
		t.Error("repeated render of a paused scene differs")
	}
}

func TestXTickRow(t *testing.T) {
	b := scene.Bounds{MaxX: 12.0, MaxY: 6.0}
	row := XTickRow(b, 60)

	if len(row) != 60 {
		t.Fatalf("got width %d, want 60", len(row))
	}
	if !strings.HasPrefix(row, "0.0") {
		t.Errorf("row starts %q", row[:8])
	}
	if !strings.Contains(row, "12.0") {
		t.Errorf("missing max tick: %q", row)
	}
}

func TestYTicks(t *testing.T) {
	b := scene.Bounds{MaxX: 12.0, MaxY: 6.0}
	ticks := YTicks(b)

	if len(ticks) != gridDivisions+1 {
		t.Fatalf("got %d ticks", len(ticks))
	}
	if ticks[0] != "6.0" || ticks[len(ticks)-1] != "0.0" {
		t.Errorf("ticks = %v", ticks)
	}
}
