package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/san-kum/trajlab/internal/scene"
)

// SceneSVG renders every trajectory through the shared scene transform
// as a colored polyline, with the last point marked: a filled dot while
// flying, a ring once landed. Later projectiles draw over earlier ones.
func SceneSVG(s *scene.Scene, width, height int) string {
	const margin = 10.0

	b := s.Bounds()
	vp := scene.Viewport{
		X: margin,
		Y: margin,
		W: float64(width) - 2*margin,
		H: float64(height) - 2*margin,
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#12141a"/>
`, width, height, width, height))

	// Ground line at world y=0.
	ground := scene.WorldToScreen(0, 0, b, vp)
	sb.WriteString(fmt.Sprintf("<line x1=\"%.1f\" y1=\"%.1f\" x2=\"%.1f\" y2=\"%.1f\" stroke=\"#2d323c\" stroke-width=\"1\"/>\n",
		vp.X, ground.Y(), vp.X+vp.W, ground.Y()))

	for _, p := range s.Projectiles() {
		traj := p.Trajectory()
		if len(traj) >= 2 {
			sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, p.Color()))
			for i, smp := range traj {
				pt := scene.WorldToScreen(smp.X, smp.Y, b, vp)
				if i == 0 {
					sb.WriteString(fmt.Sprintf("%.1f,%.1f", pt.X(), pt.Y()))
				} else {
					sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", pt.X(), pt.Y()))
				}
			}
			sb.WriteString("\"/>\n")
		}

		last := traj[len(traj)-1]
		pt := scene.WorldToScreen(last.X, last.Y, b, vp)
		if p.Landed() {
			sb.WriteString(fmt.Sprintf("<circle cx=\"%.1f\" cy=\"%.1f\" r=\"4\" fill=\"none\" stroke=\"%s\" stroke-width=\"2\"/>\n",
				pt.X(), pt.Y(), p.Color()))
		} else {
			sb.WriteString(fmt.Sprintf("<circle cx=\"%.1f\" cy=\"%.1f\" r=\"4\" fill=\"%s\"/>\n",
				pt.X(), pt.Y(), p.Color()))
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

func ExportSVGFile(path string, s *scene.Scene, width, height int) error {
	return os.WriteFile(path, []byte(SceneSVG(s, width, height)), 0644)
}
