package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/andyrewlee/marquee/internal/config"
	"github.com/andyrewlee/marquee/internal/deck"
	"github.com/andyrewlee/marquee/internal/messages"
)

func testApp(t *testing.T) *App {
	t.Helper()
	cfg, err := config.DefaultConfig()
	if err != nil {
		t.Fatalf("DefaultConfig: %v", err)
	}
	cfg.Paths.ConfigPath = t.TempDir() + "/config.json"

	a := New(cfg, deck.Demo(), "")
	model, _ := a.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return model.(*App)
}

func TestWindowSizeMakesAppReady(t *testing.T) {
	a := testApp(t)
	if !a.ready {
		t.Fatalf("expected app ready after window size")
	}
	if a.carousel.Index() != 0 {
		t.Fatalf("expected first slide selected, got %d", a.carousel.Index())
	}
}

func TestKeyForwardedToCarousel(t *testing.T) {
	a := testApp(t)
	model, _ := a.Update(tea.KeyPressMsg{Code: 'l', Text: "l"})
	a = model.(*App)
	if got := a.carousel.Index(); got != 1 {
		t.Fatalf("expected index 1, got %d", got)
	}
}

func TestHelpToggle(t *testing.T) {
	a := testApp(t)
	if !a.showHelp {
		t.Fatalf("expected help bar on by default")
	}
	model, _ := a.Update(tea.KeyPressMsg{Code: '?', Text: "?"})
	a = model.(*App)
	if a.showHelp {
		t.Fatalf("expected help bar off after toggle")
	}
}

func TestQuitKey(t *testing.T) {
	a := testApp(t)
	model, cmd := a.Update(tea.KeyPressMsg{Code: 'q', Text: "q"})
	a = model.(*App)
	if !a.quitting {
		t.Fatalf("expected quitting state")
	}
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
}

func TestDeckReloadedSwapsDeck(t *testing.T) {
	a := testApp(t)
	fresh := &deck.Deck{Title: "fresh", Slides: []deck.Slide{
		{Title: "a", Body: "one"},
		{Title: "b", Body: "two"},
	}}

	model, _ := a.Update(messages.DeckReloaded{Deck: fresh, Path: "deck.json"})
	a = model.(*App)
	if got := a.carousel.Deck().Title; got != "fresh" {
		t.Fatalf("expected fresh deck, got %q", got)
	}
	if !a.toast.Visible() {
		t.Fatalf("expected reload toast")
	}
}

func TestDeckLoadFailedKeepsDeck(t *testing.T) {
	a := testApp(t)
	before := a.carousel.Deck()

	model, _ := a.Update(messages.DeckLoadFailed{Path: "deck.json", Err: deck.ErrNoSlides})
	a = model.(*App)
	if a.carousel.Deck() != before {
		t.Fatalf("expected previous deck kept after failed reload")
	}
	if !a.toast.Visible() {
		t.Fatalf("expected failure toast")
	}
}

func TestViewRendersAfterReady(t *testing.T) {
	a := testApp(t)
	view := a.View()
	if view.Content == "" {
		t.Fatalf("expected view content")
	}
}

func TestReloadWithoutDeckPathShowsToast(t *testing.T) {
	a := testApp(t)
	model, _ := a.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	a = model.(*App)
	if !a.toast.Visible() {
		t.Fatalf("expected toast for built-in deck reload")
	}
}
