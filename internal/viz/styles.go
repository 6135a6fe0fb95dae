package viz

import "github.com/charmbracelet/lipgloss"

// Dark theme shared by the TUI panels.
var (
	HeaderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	SubtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))

	PlotStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Padding(1, 2)
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2).
			Width(40)

	LabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	ValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	FieldStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	ActiveFieldStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)

	StatusPlaying = lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Bold(true)
	StatusPaused  = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)

	FlashOK  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	FlashErr = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)

	HelpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

// Swatch renders a colored marker for a trajectory legend entry.
func Swatch(hex string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("●")
}
