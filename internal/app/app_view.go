package app

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/andyrewlee/marquee/internal/keymap"
	"github.com/andyrewlee/marquee/internal/perf"
	"github.com/andyrewlee/marquee/internal/ui/common"
)

// View renders the carousel with the status chrome underneath. The final
// frame passes through zone.Scan so marked click targets resolve.
func (a *App) View() tea.View {
	defer perf.Time("view")()
	view := tea.View{
		AltScreen:       true,
		MouseMode:       tea.MouseModeCellMotion,
		BackgroundColor: common.ColorBackground,
		ForegroundColor: common.ColorForeground,
	}

	if a.quitting {
		view.SetContent("Goodbye!\n")
		return view
	}
	if !a.ready {
		view.SetContent("Loading...")
		return view
	}

	sections := []string{
		a.carousel.View(),
		a.statusLine(),
	}
	if a.showHelp {
		sections = append(sections, a.helpLine())
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	if a.zone != nil {
		content = a.zone.Scan(content)
	}
	view.SetContent(content)
	return view
}

func (a *App) statusLine() string {
	if a.toast.Visible() {
		return a.toast.View()
	}

	d := a.carousel.Deck()
	parts := []string{
		fmt.Sprintf("slide %d/%d", a.carousel.Index()+1, d.Len()),
	}
	if d.Title != "" {
		parts = append(parts, d.Title)
	}
	if a.carousel.Looping() {
		parts = append(parts, "loop")
	}
	if a.carousel.AutoplayOn() {
		parts = append(parts, "autoplay")
	}

	line := a.styles.StatusBar.Render(strings.Join(parts, "  "))
	return lipgloss.PlaceHorizontal(a.width, lipgloss.Left, line)
}

func (a *App) helpLine() string {
	items := []struct{ Key, Desc string }{
		{keymap.PairHint(a.keymap.Prev, a.keymap.Next), "navigate"},
		{keymap.BindingHint(a.keymap.First), "first"},
		{keymap.BindingHint(a.keymap.Last), "last"},
		{keymap.BindingHint(a.keymap.ToggleLoop), "loop"},
		{keymap.BindingHint(a.keymap.ToggleAutoplay), "autoplay"},
		{keymap.BindingHint(a.keymap.ToggleDots), "dots"},
		{keymap.BindingHint(a.keymap.CopySlide), "copy"},
		{keymap.BindingHint(a.keymap.ReloadDeck), "reload"},
		{keymap.BindingHint(a.keymap.Help), "help"},
		{keymap.BindingHint(a.keymap.Quit), "quit"},
	}
	return common.RenderHelpBar(a.styles, items, a.width)
}
