package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/san-kum/trajlab/internal/phys"
	"github.com/san-kum/trajlab/internal/scene"
)

func TestSceneSVG(t *testing.T) {
	s := scene.New(phys.DefaultConfig())
	s.Spawn(phys.Params{AngleDeg: 45, Speed: 25, Mass: 1})
	s.Spawn(phys.Params{AngleDeg: 60, Speed: 20, Mass: 1, AirResistance: true})
	for i := 0; i < 300; i++ {
		s.Tick()
	}

	svg := SceneSVG(s, 800, 600)

	require.True(t, strings.HasPrefix(svg, `<?xml version="1.0"`))
	require.Contains(t, svg, `width="800" height="600"`)
	require.Equal(t, 2, strings.Count(svg, "<path "))
	for _, p := range s.Projectiles() {
		require.Contains(t, svg, p.Color())
	}
	require.True(t, strings.HasSuffix(svg, "</svg>"))
}

func TestSceneSVGMarkers(t *testing.T) {
	s := scene.New(phys.DefaultConfig())
	s.Spawn(phys.Params{AngleDeg: 80, Speed: 5, Mass: 1})
	for i := 0; i < 100_000; i++ {
		s.Tick()
	}
	require.True(t, s.Projectiles()[0].Landed())

	// Landed bodies get a ring, not a filled dot.
	svg := SceneSVG(s, 400, 300)
	require.Contains(t, svg, `r="4" fill="none" stroke="`+s.Projectiles()[0].Color())
	require.NotContains(t, svg, `r="4" fill="`+s.Projectiles()[0].Color())
}

func TestSceneSVGEmptyScene(t *testing.T) {
	s := scene.New(phys.DefaultConfig())
	svg := SceneSVG(s, 400, 300)

	// Still a valid document with the ground line at default bounds.
	require.Contains(t, svg, "<line ")
	require.NotContains(t, svg, "<path ")
}
