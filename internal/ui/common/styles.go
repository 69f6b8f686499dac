package common

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Styles contains all the application styles
type Styles struct {
	// Layout
	Pane        lipgloss.Style
	FocusedPane lipgloss.Style

	// Text hierarchy
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style

	// Slides
	Slide         lipgloss.Style
	SelectedSlide lipgloss.Style
	SlideTitle    lipgloss.Style
	SlideBody     lipgloss.Style
	SlideBadge    lipgloss.Style

	// Navigation
	Dot       lipgloss.Style
	ActiveDot lipgloss.Style
	Arrow     lipgloss.Style

	// Help bar
	Help          lipgloss.Style
	HelpKey       lipgloss.Style
	HelpDesc      lipgloss.Style
	HelpSeparator lipgloss.Style

	// Status bar
	StatusBar   lipgloss.Style
	StatusBadge lipgloss.Style

	// Feedback
	Error   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	// Toast notifications
	ToastSuccess lipgloss.Style
	ToastError   lipgloss.Style
	ToastWarning lipgloss.Style
	ToastInfo    lipgloss.Style
}

// DefaultStyles returns the default application styles using the Tokyo Night palette
func DefaultStyles() Styles {
	return Styles{
		Pane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1),

		FocusedPane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorderFocused).
			Padding(0, 1),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary),

		Subtitle: lipgloss.NewStyle().
			Foreground(ColorForeground),

		Body: lipgloss.NewStyle().
			Foreground(ColorForeground),

		Muted: lipgloss.NewStyle().
			Foreground(ColorMuted),

		Slide: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1),

		SelectedSlide: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 1),

		SlideTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary),

		SlideBody: lipgloss.NewStyle().
			Foreground(ColorForeground),

		SlideBadge: lipgloss.NewStyle().
			Foreground(ColorMuted),

		Dot: lipgloss.NewStyle().
			Foreground(ColorMuted),

		ActiveDot: lipgloss.NewStyle().
			Foreground(ColorPrimary),

		Arrow: lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(ColorSecondary),

		Help: lipgloss.NewStyle().
			Foreground(ColorMuted),

		HelpKey: lipgloss.NewStyle().
			Foreground(ColorPrimary),

		HelpDesc: lipgloss.NewStyle().
			Foreground(ColorMuted),

		HelpSeparator: lipgloss.NewStyle().
			Foreground(ColorBorder),

		StatusBar: lipgloss.NewStyle().
			Foreground(ColorMuted),

		StatusBadge: lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(ColorBackground).
			Background(ColorPrimary),

		Error: lipgloss.NewStyle().
			Foreground(ColorError),

		Success: lipgloss.NewStyle().
			Foreground(ColorSuccess),

		Warning: lipgloss.NewStyle().
			Foreground(ColorWarning),

		Info: lipgloss.NewStyle().
			Foreground(ColorInfo),

		ToastSuccess: lipgloss.NewStyle().
			Padding(0, 1).
			Background(ColorSuccess).
			Foreground(ColorBackground),

		ToastError: lipgloss.NewStyle().
			Padding(0, 1).
			Background(ColorError).
			Foreground(ColorBackground),

		ToastWarning: lipgloss.NewStyle().
			Padding(0, 1).
			Background(ColorWarning).
			Foreground(ColorBackground),

		ToastInfo: lipgloss.NewStyle().
			Padding(0, 1).
			Background(ColorInfo).
			Foreground(ColorBackground),
	}
}

// RenderHelpBar renders a help bar with the given key-description pairs
func RenderHelpBar(s Styles, items []struct{ Key, Desc string }, width int) string {
	var parts []string
	for _, item := range items {
		key := s.HelpKey.Render(item.Key)
		desc := s.HelpDesc.Render(item.Desc)
		parts = append(parts, key+":"+desc)
	}

	sep := s.HelpSeparator.Render(" | ")
	joined := strings.Join(parts, sep)
	return s.Help.Width(width).Render(joined)
}
