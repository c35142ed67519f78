package cli

import "github.com/charmbracelet/lipgloss"

// Theme holds the color scheme for the TUI surfaces.
type Theme struct {
	Accent  lipgloss.Color
	UserMsg lipgloss.Color
	SysMsg  lipgloss.Color
	Hint    lipgloss.Color
	Bar     lipgloss.Color
}

// defaultTheme provides default colors.
var defaultTheme = Theme{
	Accent:  lipgloss.Color("#F59E0B"), // amber, the terminal accent
	UserMsg: lipgloss.Color("#00D787"), // green outgoing bubble
	SysMsg:  lipgloss.Color("#5FAFD7"), // light blue incoming bubble
	Hint:    lipgloss.Color("#6C6C6C"), // dim gray
	Bar:     lipgloss.Color("#F59E0B"),
}

func (t Theme) accentStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
}

func (t Theme) hintStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Hint).Italic(true)
}

func (t Theme) userBubble() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.UserMsg).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.UserMsg).
		Padding(0, 1)
}

func (t Theme) systemBubble() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.SysMsg).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.SysMsg).
		Padding(0, 1)
}

func (t Theme) barStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Bar)
}
