package debugger

import "github.com/charmbracelet/lipgloss"

type styles struct {
	gpu      lipgloss.Style
	mem      lipgloss.Style
	geometry lipgloss.Style
	err      lipgloss.Style
	debugger lipgloss.Style
}

// ANSI Color reference
// 0	Black
// 1	Red
// 2	Green
// 3	Yellow
// 4	Blue
// 5	Magenta
// 6	Cyan
// 7	White
// 8	Bright Black (Gray)
// 9	Bright Red
// 10	Bright Green
// 11	Bright Yellow
// 12	Bright Blue
// 13	Bright Magenta
// 14	Bright Cyan
// 15	Bright White

func newStyles() styles {
	return styles{
		gpu:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(6)),
		mem:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(5)),
		geometry: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(3)),
		err:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(1)),
		debugger: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(2)),
	}
}
