package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Style holds the lipgloss styles used by the tracker.
type Style struct {
	Base      lipgloss.Style
	Title     lipgloss.Style
	Money     lipgloss.Style
	Main      lipgloss.Style
	Secondary lipgloss.Style
	Hint      lipgloss.Style
	Break     lipgloss.Style
	Error     lipgloss.Style
	Success   lipgloss.Style
	Dialog    lipgloss.Style
}

type palette struct {
	primary lipgloss.Color
	accent  lipgloss.Color
	good    lipgloss.Color
	warn    lipgloss.Color
	bad     lipgloss.Color
	muted   lipgloss.Color
	text    lipgloss.Color
}

var (
	darkPalette = palette{
		primary: lipgloss.Color("#12EAEA"),
		accent:  lipgloss.Color("#C492B1"),
		good:    lipgloss.Color("#B0DB43"),
		warn:    lipgloss.Color("214"),
		bad:     lipgloss.Color("196"),
		muted:   lipgloss.Color("244"),
		text:    lipgloss.Color("#FFFFFF"),
	}

	lightPalette = palette{
		primary: lipgloss.Color("#0B7A7A"),
		accent:  lipgloss.Color("#8A4F74"),
		good:    lipgloss.Color("#3F7D0F"),
		warn:    lipgloss.Color("166"),
		bad:     lipgloss.Color("124"),
		muted:   lipgloss.Color("240"),
		text:    lipgloss.Color("#000000"),
	}
)

// NewStyle returns the styles for the dark or light theme.
func NewStyle(dark bool) Style {
	p := lightPalette
	if dark {
		p = darkPalette
	}

	return Style{
		Base:      lipgloss.NewStyle().Padding(1, 1),
		Title:     lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		Money:     lipgloss.NewStyle().Bold(true).Foreground(p.good),
		Main:      lipgloss.NewStyle().Bold(true).Foreground(p.text),
		Secondary: lipgloss.NewStyle().Foreground(p.primary),
		Hint:      lipgloss.NewStyle().Foreground(p.muted),
		Break:     lipgloss.NewStyle().Bold(true).Foreground(p.warn),
		Error:     lipgloss.NewStyle().Foreground(p.bad),
		Success:   lipgloss.NewStyle().Foreground(p.good),
		Dialog: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.primary).
			Padding(1, 2),
	}
}

// ProgressColors returns the gradient for the goal progress bar.
func ProgressColors(dark bool) (from, to string) {
	if dark {
		return string(darkPalette.primary), string(darkPalette.good)
	}

	return string(lightPalette.primary), string(lightPalette.good)
}
