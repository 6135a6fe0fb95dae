// Package scene coordinates the collection of live projectiles: it
// advances them each tick, assigns display colors, tracks selection,
// and derives the shared auto-fit coordinate transform from the union
// of all recorded trajectories.
package scene

import (
	"math/rand"
	"sync"

	"github.com/san-kum/trajlab/internal/phys"
)

// Palette of trajectory display colors; spawn picks one at random.
var Palette = []string{
	"#ff7878", "#78c8ff", "#a078ff",
	"#ffd278", "#78ffb4", "#f08cff",
}

// Above this many live projectiles Tick fans stepping out across
// goroutines. Each projectile's step depends only on its own prior
// state, so parallel stepping is observationally identical to the
// serial loop.
const parallelThreshold = 64

// Scene is an insertion-ordered collection of projectiles plus the
// play/pause flag and an optional selection. Not safe for concurrent
// use; the frame loop owns it.
type Scene struct {
	cfg         phys.Config
	projectiles []*phys.Projectile
	playing     bool
	selected    int
	rng         *rand.Rand
}

func New(cfg phys.Config) *Scene {
	return &Scene{
		cfg:      cfg,
		playing:  true,
		selected: -1,
		rng:      rand.New(rand.NewSource(rand.Int63())),
	}
}

// Spawn sanitizes the launch parameters, creates a projectile with a
// fresh palette color, appends it and selects it. Returns its index.
func (s *Scene) Spawn(params phys.Params) int {
	color := Palette[s.rng.Intn(len(Palette))]
	p := phys.NewProjectile(params.Sanitize(), s.cfg, color)
	s.projectiles = append(s.projectiles, p)
	s.selected = len(s.projectiles) - 1
	return s.selected
}

// Clear empties the collection and invalidates the selection.
func (s *Scene) Clear() {
	s.projectiles = nil
	s.selected = -1
}

// Tick steps every non-landed projectile exactly once when playing.
func (s *Scene) Tick() {
	if !s.playing {
		return
	}
	if len(s.projectiles) >= parallelThreshold {
		s.tickParallel()
		return
	}
	for _, p := range s.projectiles {
		p.Step()
	}
}

// tickParallel steps projectiles concurrently. The WaitGroup barrier
// guarantees every step of the tick completes before the caller reads
// trajectories for bounds computation or rendering.
func (s *Scene) tickParallel() {
	var wg sync.WaitGroup
	for _, p := range s.projectiles {
		if p.Landed() {
			continue
		}
		wg.Add(1)
		go func(p *phys.Projectile) {
			defer wg.Done()
			p.Step()
		}(p)
	}
	wg.Wait()
}

// Projectiles returns the collection in insertion order. Callers must
// not mutate the slice.
func (s *Scene) Projectiles() []*phys.Projectile { return s.projectiles }

func (s *Scene) Len() int { return len(s.projectiles) }

func (s *Scene) Playing() bool       { return s.playing }
func (s *Scene) SetPlaying(on bool)  { s.playing = on }
func (s *Scene) TogglePlaying() bool { s.playing = !s.playing; return s.playing }

// Selected returns the selected projectile index, or -1.
func (s *Scene) Selected() int { return s.selected }

// Select sets the selection; out-of-range indices clear it.
func (s *Scene) Select(i int) {
	if i < 0 || i >= len(s.projectiles) {
		s.selected = -1
		return
	}
	s.selected = i
}

// SelectedProjectile returns the selected projectile, or nil.
func (s *Scene) SelectedProjectile() *phys.Projectile {
	if s.selected < 0 || s.selected >= len(s.projectiles) {
		return nil
	}
	return s.projectiles[s.selected]
}
