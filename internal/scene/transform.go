package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// Minimum extents so an empty or tiny scene still renders a
	// sensible grid.
	defaultMaxX = 10.0
	defaultMaxY = 5.0

	padFactor = 1.2
	minExtent = 1e-3
)

// Bounds holds the padded maximum extents across all trajectories,
// used to derive the world-to-screen transform.
type Bounds struct {
	MaxX, MaxY float64
}

// Viewport is the screen-space rectangle trajectories are mapped into.
type Viewport struct {
	X, Y, W, H float64
}

// Bounds scans every sample of every trajectory (landed included) for
// the maximum x and y reached so far, then pads and floors the result.
// It is recomputed fresh every frame: trajectories grow while bodies
// are airborne, and a cached value would desync the transform from
// newly appended samples.
func (s *Scene) Bounds() Bounds {
	maxX, maxY := defaultMaxX, defaultMaxY
	for _, p := range s.projectiles {
		for _, smp := range p.Trajectory() {
			if smp.X > maxX {
				maxX = smp.X
			}
			if smp.Y > maxY {
				maxY = smp.Y
			}
		}
	}
	return Bounds{
		MaxX: math.Max(maxX*padFactor, minExtent),
		MaxY: math.Max(maxY*padFactor, minExtent),
	}
}

// WorldToScreen linearly maps a world point into the viewport, flipping
// the vertical axis so larger world y draws higher on screen. The
// transform is stateless given bounds and viewport.
func WorldToScreen(x, y float64, b Bounds, vp Viewport) mgl64.Vec2 {
	sx := vp.X + x/b.MaxX*vp.W
	sy := vp.Y + vp.H - y/b.MaxY*vp.H
	return mgl64.Vec2{sx, sy}
}

// HitTest maps every sample of every trajectory to screen space and
// returns the index of the projectile owning the sample nearest to pt,
// or -1 if none falls within radius. Ties go to the first sample found
// in insertion order of projectiles, then chronological order of
// samples.
//
// This is an O(total samples) scan per call. Trajectories grow without
// bound while a body is airborne, but clicks are human-triggered and
// rare, so no spatial index is kept.
func (s *Scene) HitTest(pt mgl64.Vec2, radius float64, b Bounds, vp Viewport) int {
	best := -1
	bestDist := radius
	for idx, p := range s.projectiles {
		for _, smp := range p.Trajectory() {
			d := pt.Sub(WorldToScreen(smp.X, smp.Y, b, vp)).Len()
			if d < bestDist {
				bestDist = d
				best = idx
			}
		}
	}
	return best
}
