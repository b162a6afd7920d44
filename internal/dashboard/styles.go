package dashboard

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette using ANSI color codes for terminal compatibility.
const (
	ColorOK    lipgloss.Color = "2" // Green
	ColorWarn  lipgloss.Color = "3" // Yellow
	ColorBad   lipgloss.Color = "1" // Red
	ColorLabel lipgloss.Color = "6" // Cyan
	ColorMuted lipgloss.Color = "8" // Gray (bright black)
)

// Severity thresholds for bar coloring. A ratio equal to a threshold falls
// into the higher band: 0.33 is warn, 0.67 is bad.
const (
	WarnThreshold = 0.33
	BadThreshold  = 0.67
)

// Severity is the color band a ratio falls into.
type Severity int

const (
	SeverityOK Severity = iota
	SeverityWarn
	SeverityBad
)

// severityFor selects the band for a ratio.
func severityFor(ratio float64) Severity {
	switch {
	case ratio < WarnThreshold:
		return SeverityOK
	case ratio < BadThreshold:
		return SeverityWarn
	default:
		return SeverityBad
	}
}

// Base styles for the dashboard. Terminals without color support are
// handled by lipgloss's own profile detection; DisableColor covers the
// explicit opt-out.
var (
	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorLabel)

	// Brackets and value text stay bold even when color is disabled.
	BracketStyle = lipgloss.NewStyle().
			Bold(true)

	ValueStyle = lipgloss.NewStyle().
			Bold(true)

	// Scalar rows render their value with label emphasis.
	ScalarValueStyle = lipgloss.NewStyle().
				Foreground(ColorLabel).
				Bold(true)

	HeaderTitleStyle = lipgloss.NewStyle().
				Foreground(ColorLabel).
				Bold(true)

	HeaderInfoStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	bandStyles = [...]lipgloss.Style{
		SeverityOK:   lipgloss.NewStyle().Foreground(ColorOK),
		SeverityWarn: lipgloss.NewStyle().Foreground(ColorWarn),
		SeverityBad:  lipgloss.NewStyle().Foreground(ColorBad),
	}
)

// bandStyle returns the fill style for a ratio's severity band.
func bandStyle(ratio float64) lipgloss.Style {
	return bandStyles[severityFor(ratio)]
}

// DisableColor strips the foreground colors from every style while leaving
// bold emphasis in place, so --no-color output keeps its bracket and value
// weight in the terminal's default attributes.
func DisableColor() {
	LabelStyle = LabelStyle.UnsetForeground()
	ScalarValueStyle = ScalarValueStyle.UnsetForeground()
	HeaderTitleStyle = HeaderTitleStyle.UnsetForeground()
	HeaderInfoStyle = HeaderInfoStyle.UnsetForeground()
	FooterStyle = FooterStyle.UnsetForeground()
	for i := range bandStyles {
		bandStyles[i] = bandStyles[i].UnsetForeground()
	}
}
