// Package tui is the interactive frontend: an input form, the shared
// trajectory plot, and a metrics panel for the selected projectile,
// driven by a fixed-rate frame loop.
package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/san-kum/trajlab/internal/config"
	"github.com/san-kum/trajlab/internal/export"
	"github.com/san-kum/trajlab/internal/phys"
	"github.com/san-kum/trajlab/internal/scene"
	"github.com/san-kum/trajlab/internal/viz"
)

const (
	plotW = 64
	plotH = 16

	// Screen offsets of the plot's top-left cell. Mouse hit-testing
	// depends on these matching the View layout exactly.
	gutterW = 7
	plotTop = 2

	hitRadius     = 12.0
	flashDuration = 3 * time.Second
)

type frameMsg time.Time

type model struct {
	cfg  *config.Config
	scn  *scene.Scene
	plot *viz.Plot

	fields [4]TextField
	focus  int
	air    bool

	flash      string
	flashErr   bool
	flashUntil time.Time

	width, height int
}

func newModel(cfg *config.Config) model {
	l := cfg.Launch
	return model{
		cfg:  cfg,
		scn:  scene.New(cfg.PhysConfig()),
		plot: viz.NewPlot(plotW, plotH),
		fields: [4]TextField{
			NewTextField("angle", "deg", formatValue(l.AngleDeg)),
			NewTextField("speed", "m/s", formatValue(l.Speed)),
			NewTextField("mass", "kg", formatValue(l.Mass)),
			NewTextField("height", "m", formatValue(l.Height)),
		},
		air:    l.AirResistance,
		width:  80,
		height: 24,
	}
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Run starts the interactive session and blocks until quit.
func Run(cfg *config.Config) error {
	p := tea.NewProgram(newModel(cfg), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

func (m model) frame() tea.Cmd {
	fps := m.cfg.FPS
	if fps < 1 {
		fps = config.DefaultFPS
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m model) Init() tea.Cmd { return m.frame() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case frameMsg:
		m.scn.Tick()
		if m.flash != "" && time.Now().After(m.flashUntil) {
			m.flash = ""
		}
		return m, m.frame()
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "tab":
		m.focus = (m.focus + 1) % len(m.fields)
	case "shift+tab":
		m.focus = (m.focus + len(m.fields) - 1) % len(m.fields)
	case "backspace":
		m.fields[m.focus].Backspace()
	case " ":
		m.scn.TogglePlaying()
	case "enter", "l":
		m.launch()
	case "a":
		m.air = !m.air
	case "c":
		m.scn.Clear()
	case "e":
		m.export("csv")
	case "j", "J":
		m.export("json")
	case "s":
		m.export("svg")
	default:
		if s := msg.String(); len(s) == 1 {
			m.fields[m.focus].Type(s[0])
		}
	}
	return m, nil
}

// handleMouse maps a click from terminal cells into the plot's
// sub-pixel space and selects the nearest trajectory, if any.
func (m *model) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}
	col := msg.X - gutterW
	row := msg.Y - plotTop
	if col < 0 || col >= plotW || row < 0 || row >= plotH {
		return
	}

	// Center of the clicked cell in dot coordinates.
	pt := mgl64.Vec2{float64(col*2 + 1), float64(row*4 + 2)}
	idx := m.scn.HitTest(pt, hitRadius, m.scn.Bounds(), m.plot.Viewport())
	m.scn.Select(idx)
}

func (m *model) launch() {
	m.scn.Spawn(phys.Params{
		AngleDeg:      m.fields[0].Value(0),
		Speed:         m.fields[1].Value(0),
		Mass:          m.fields[2].Value(0),
		Height:        m.fields[3].Value(0),
		AirResistance: m.air,
	})
}

func (m *model) export(kind string) {
	name := export.DefaultFilename(kind, time.Now())
	var err error
	switch kind {
	case "csv":
		err = export.ExportCSVFile(name, m.scn.Projectiles())
	case "json":
		err = export.ExportJSONFile(name, m.scn.Projectiles())
	case "svg":
		err = export.ExportSVGFile(name, m.scn, 800, 600)
	}
	if err != nil {
		m.setFlash("export failed: "+err.Error(), true)
		return
	}
	m.setFlash("saved "+name, false)
}

func (m *model) setFlash(text string, isErr bool) {
	m.flash = text
	m.flashErr = isErr
	m.flashUntil = time.Now().Add(flashDuration)
}

func (m model) View() string {
	var b strings.Builder

	status := viz.StatusPlaying.Render("PLAYING")
	if !m.scn.Playing() {
		status = viz.StatusPaused.Render("PAUSED")
	}
	header := viz.HeaderStyle.Inline(true).Render("TRAJLAB") + "  " + status
	if m.flash != "" {
		style := viz.FlashOK
		if m.flashErr {
			style = viz.FlashErr
		}
		header += "  " + style.Render(m.flash)
	}
	b.WriteString(header + "\n\n")

	bounds := m.scn.Bounds()
	rows := m.plot.Render(m.scn, bounds)
	gutter := yGutter(bounds)
	for i, row := range rows {
		b.WriteString(gutter[i] + row + "\n")
	}
	b.WriteString(strings.Repeat(" ", gutterW) + viz.SubtleStyle.Render(viz.XTickRow(bounds, plotW)) + "\n\n")

	panel := lipgloss.JoinHorizontal(lipgloss.Top, m.formView(), m.metricsView())
	b.WriteString(panel + "\n")
	b.WriteString(viz.HelpStyle.Render("tab:field  enter:launch  space:pause  a:air  c:clear  e/j/s:export  click:select  q:quit"))
	return b.String()
}

// yGutter builds one left-margin label per plot row, placing tick
// values on the grid division rows.
func yGutter(b scene.Bounds) []string {
	ticks := viz.YTicks(b)
	labels := make([]string, plotH)
	for i := range labels {
		labels[i] = strings.Repeat(" ", gutterW)
	}
	for i, tick := range ticks {
		row := i * (plotH - 1) / (len(ticks) - 1)
		labels[row] = fmt.Sprintf("%*s ", gutterW-1, tick)
	}
	return labels
}

func (m model) formView() string {
	var b strings.Builder
	b.WriteString("LAUNCH\n")
	for i, f := range m.fields {
		line := fmt.Sprintf("%-7s %-8s %s", f.Label, f.Text()+"_", f.Unit)
		if i == m.focus {
			b.WriteString(viz.ActiveFieldStyle.Render("▸ "+line) + "\n")
		} else {
			b.WriteString(viz.FieldStyle.Render("  "+line) + "\n")
		}
	}
	airState := "off"
	if m.air {
		airState = "on"
	}
	b.WriteString(viz.FieldStyle.Render(fmt.Sprintf("  %-7s %s", "air", airState)) + "\n")
	return lipgloss.NewStyle().Width(26).Render(b.String())
}

func (m model) metricsView() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("PROJECTILES %d\n", m.scn.Len()))

	p := m.scn.SelectedProjectile()
	if p == nil {
		b.WriteString(viz.SubtleStyle.Render("none selected") + "\n")
		return viz.PanelStyle.Render(strings.TrimRight(b.String(), "\n"))
	}

	b.WriteString(viz.Swatch(p.Color()) + fmt.Sprintf(" #%d  %.1f° at %.1f m/s", m.scn.Selected()+1, p.AngleDeg(), p.Speed()))
	if p.AirResistance() {
		b.WriteString("  (drag)")
	}
	b.WriteString("\n")

	writeMetric := func(label, value string) {
		b.WriteString(viz.LabelStyle.Render(label) + viz.ValueStyle.Render(value) + "\n")
	}
	writeMetric("Max height", fmt.Sprintf("%.2f m", p.MaxHeight()))
	if p.Landed() {
		writeMetric("Flight time", fmt.Sprintf("%.2f s", p.FlightTime()))
		writeMetric("Range", fmt.Sprintf("%.2f m", p.Range()))
		writeMetric("Final speed", fmt.Sprintf("%.2f m/s", p.FinalSpeed()))
	} else {
		writeMetric("Flight time", "—")
		writeMetric("Range", "—")
		writeMetric("Final speed", "—")
	}
	return viz.PanelStyle.Render(strings.TrimRight(b.String(), "\n"))
}
