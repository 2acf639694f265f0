package render

import "charm.land/lipgloss/v2"

const (
	subtle    = "240"
	highlight = "#7D56F4"
	border    = "#3C3C3C"
)

var (
	boardTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(highlight)).
			MarginBottom(1)

	laneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(border)).
			Padding(0, 1)

	laneTitleStyle = lipgloss.NewStyle().Bold(true)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			PaddingLeft(1).
			MarginTop(1)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(subtle)).
			Italic(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(subtle))
)

// cardColors maps the color names stored on cards onto terminal colors.
// Anything else is handed to lipgloss as is, so hex values work too.
var cardColors = map[string]string{
	"white":  "#E4E4E4",
	"red":    "#FF5F5F",
	"orange": "#FFAF5F",
	"yellow": "#FFD75F",
	"green":  "#87D787",
	"blue":   "#5FAFFF",
	"purple": "#AF87FF",
	"pink":   "#FF87D7",
	"gray":   "#A8A8A8",
}

func cardAccent(name string) string {
	if hex, ok := cardColors[name]; ok {
		return hex
	}
	return name
}
