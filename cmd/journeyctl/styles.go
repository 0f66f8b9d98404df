package main

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent = lipgloss.Color("#E8B858")
	colorOK     = lipgloss.Color("#00E676")
	colorBad    = lipgloss.Color("#FF5252")
	colorMuted  = lipgloss.Color("#8C8C8C")
	colorInk    = lipgloss.Color("#EEEEEE")
	colorPanel  = lipgloss.Color("#2A3548")
)

var (
	styleTitle  = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	styleHeader = lipgloss.NewStyle().Foreground(colorMuted).Bold(true)
	styleCell   = lipgloss.NewStyle().Foreground(colorInk)
	styleOK     = lipgloss.NewStyle().Foreground(colorOK)
	styleBad    = lipgloss.NewStyle().Foreground(colorBad).Bold(true)
	styleMuted  = lipgloss.NewStyle().Foreground(colorMuted)

	stylePopup = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Background(colorPanel).
			Foreground(colorInk).
			Padding(0, 1)
)

// table renders rows as left aligned columns padded to the widest cell.
func table(header []string, rows [][]string) string {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = lipgloss.Width(h)
	}
	for _, r := range rows {
		for i := 0; i < len(r) && i < len(widths); i++ {
			if w := lipgloss.Width(r[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	line := func(cells []string, style lipgloss.Style) string {
		out := make([]string, len(widths))
		for i := range widths {
			var c string
			if i < len(cells) {
				c = cells[i]
			}
			out[i] = style.Width(widths[i] + 2).Render(c)
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, out...)
	}

	lines := []string{line(header, styleHeader)}
	for _, r := range rows {
		lines = append(lines, line(r, styleCell))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
