package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/trajlab/internal/phys"
	"github.com/san-kum/trajlab/internal/scene"
)

const gridDivisions = 5

// Plot draws a scene into a reusable braille canvas. One instance is
// kept per session and cleared every frame.
type Plot struct {
	canvas *Canvas
}

func NewPlot(w, h int) *Plot {
	return &Plot{canvas: NewCanvas(w, h)}
}

func (pl *Plot) Width() int  { return pl.canvas.Width }
func (pl *Plot) Height() int { return pl.canvas.Height }

// Viewport is the sub-pixel rectangle trajectories map into. Mouse
// hit-testing must use the same viewport so screen distances line up
// with what is drawn.
func (pl *Plot) Viewport() scene.Viewport {
	return scene.Viewport{
		X: 0,
		Y: 0,
		W: float64(pl.canvas.SubW() - 1),
		H: float64(pl.canvas.SubH() - 1),
	}
}

// Render redraws the grid, every trajectory in insertion order, and the
// last-point markers, then returns one string per character row.
func (pl *Plot) Render(s *scene.Scene, b scene.Bounds) []string {
	pl.canvas.Clear()
	pl.drawGrid()

	vp := pl.Viewport()
	for _, p := range s.Projectiles() {
		pl.drawTrajectory(p, b, vp)
	}
	return pl.canvas.Rows()
}

// drawGrid dots the interior division lines and draws a solid ground
// line along the bottom edge.
func (pl *Plot) drawGrid() {
	sw, sh := pl.canvas.SubW(), pl.canvas.SubH()
	for i := 1; i < gridDivisions; i++ {
		gx := i * (sw - 1) / gridDivisions
		for y := 0; y < sh; y += 4 {
			pl.canvas.Set(gx, y)
		}
		gy := i * (sh - 1) / gridDivisions
		for x := 0; x < sw; x += 4 {
			pl.canvas.Set(x, gy)
		}
	}
	pl.canvas.DrawLine(0, sh-1, sw-1, sh-1)
}

func (pl *Plot) drawTrajectory(p *phys.Projectile, b scene.Bounds, vp scene.Viewport) {
	traj := p.Trajectory()
	if len(traj) == 0 {
		return
	}

	px, py := subPixel(traj[0], b, vp)
	for _, smp := range traj[1:] {
		x, y := subPixel(smp, b, vp)
		if x == px && y == py {
			continue
		}
		pl.canvas.DrawLine(px, py, x, y)
		px, py = x, y
	}

	if p.Landed() {
		pl.canvas.Ring(px, py)
	} else {
		pl.canvas.Dot(px, py)
	}
}

func subPixel(smp phys.Sample, b scene.Bounds, vp scene.Viewport) (int, int) {
	pt := scene.WorldToScreen(smp.X, smp.Y, b, vp)
	return int(math.Round(pt.X())), int(math.Round(pt.Y()))
}

// XTickRow lays the x-axis tick values out in a row exactly width
// characters wide, one label per grid division.
func XTickRow(b scene.Bounds, width int) string {
	row := []byte(strings.Repeat(" ", width))
	for i := 0; i <= gridDivisions; i++ {
		label := formatTick(float64(i) * b.MaxX / gridDivisions)
		pos := i * (width - 1) / gridDivisions
		if pos+len(label) > width {
			pos = width - len(label)
		}
		copy(row[pos:], label)
	}
	return string(row)
}

// YTicks returns the y-axis tick values top to bottom, one per grid
// division boundary.
func YTicks(b scene.Bounds) []string {
	ticks := make([]string, gridDivisions+1)
	for i := 0; i <= gridDivisions; i++ {
		ticks[i] = formatTick(b.MaxY * float64(gridDivisions-i) / gridDivisions)
	}
	return ticks
}

func formatTick(v float64) string {
	if math.Abs(v) >= 100 {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}
