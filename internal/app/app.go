// Package app wires the carousel, configuration, deck watching, and status
// chrome into the root Bubbletea model.
package app

import (
	"context"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	zone "github.com/lrstanley/bubblezone"

	"github.com/andyrewlee/marquee/internal/config"
	"github.com/andyrewlee/marquee/internal/deck"
	"github.com/andyrewlee/marquee/internal/keymap"
	"github.com/andyrewlee/marquee/internal/logging"
	"github.com/andyrewlee/marquee/internal/messages"
	"github.com/andyrewlee/marquee/internal/perf"
	"github.com/andyrewlee/marquee/internal/safego"
	"github.com/andyrewlee/marquee/internal/ui/carousel"
	"github.com/andyrewlee/marquee/internal/ui/common"
)

// App is the root application model.
type App struct {
	config *config.Config
	keymap keymap.KeyMap
	styles common.Styles
	zone   *zone.Manager

	carousel *carousel.Model
	toast    *common.ToastModel

	deckPath    string
	deckWatcher *deck.Watcher
	deckCh      chan messages.DeckChanged
	watcherErr  error
	cancelWatch context.CancelFunc

	width    int
	height   int
	ready    bool
	showHelp bool
	quitting bool
}

// New builds the application around an already loaded deck. An empty deckPath
// means the built-in demo deck with no file watching.
func New(cfg *config.Config, d *deck.Deck, deckPath string) *App {
	km := keymap.New(cfg.KeyMap)
	z := zone.New()
	styles := common.DefaultStyles()

	c := carousel.New(d, cfg.Carousel, km)
	c.SetZone(z)
	c.SetStyles(styles)
	c.SetShowDots(cfg.UI.ShowDots)

	a := &App{
		config:   cfg,
		keymap:   km,
		styles:   styles,
		zone:     z,
		carousel: c,
		toast:    common.NewToastModel(),
		deckPath: deckPath,
		showHelp: cfg.UI.ShowHelpBar,
	}

	if deckPath != "" {
		a.deckCh = make(chan messages.DeckChanged, 10)
		watcher, err := deck.NewWatcher(deckPath, func() {
			select {
			case a.deckCh <- messages.DeckChanged{}:
			default:
				// Channel full, drop; the next change will catch up.
			}
		})
		if err != nil {
			logging.Warn("Deck watching disabled: %v", err)
			a.watcherErr = err
		} else {
			a.deckWatcher = watcher
			ctx, cancel := context.WithCancel(context.Background())
			a.cancelWatch = cancel
			safego.Go("deck-watcher", func() {
				_ = watcher.Run(ctx)
			})
		}
	}

	return a
}

// Init initializes the application.
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		a.carousel.Init(),
		a.startDeckWatcher(),
	}
	if a.watcherErr != nil {
		cmds = append(cmds, a.toast.ShowWarning("Deck watching disabled; reload with r"))
	}
	return common.SafeBatch(cmds...)
}

// startDeckWatcher re-arms the command that surfaces watcher events.
func (a *App) startDeckWatcher() tea.Cmd {
	if a.deckWatcher == nil || a.deckCh == nil {
		return nil
	}
	return func() tea.Msg {
		return <-a.deckCh
	}
}

// Update handles all messages.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	defer perf.Time("update")()
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		cmds = append(cmds, a.layoutCarousel())

	case tea.KeyPressMsg:
		return a.handleKey(msg)

	case tea.MouseClickMsg, tea.MouseMotionMsg, tea.MouseReleaseMsg, tea.MouseWheelMsg:
		newCarousel, cmd := a.carousel.Update(msg)
		a.carousel = newCarousel
		cmds = append(cmds, cmd)

	case messages.FrameTick, messages.AutoplayTick:
		newCarousel, cmd := a.carousel.Update(msg)
		a.carousel = newCarousel
		cmds = append(cmds, cmd)

	case messages.SlideScrolled:
		// Position changes redraw via the returned model; nothing to store.

	case messages.SlideSettled:
		logging.Debug("settled on slide %d", msg.Index)

	case messages.DeckChanged:
		cmds = append(cmds, a.reloadDeckCmd(), a.startDeckWatcher())

	case messages.DeckReloaded:
		cmds = append(cmds, a.carousel.SetDeck(msg.Deck))
		cmds = append(cmds, a.toast.ShowInfo("Deck reloaded"))

	case messages.DeckLoadFailed:
		logging.WithError(msg.Err, "loading deck "+msg.Path)
		cmds = append(cmds, a.toast.ShowError("Deck reload failed; keeping previous slides"))

	case messages.CopySlideResult:
		if msg.Err != nil {
			logging.WithError(msg.Err, "copying slide")
			cmds = append(cmds, a.toast.ShowError("Copy failed"))
		} else {
			cmds = append(cmds, a.toast.ShowSuccess("Slide copied"))
		}

	case messages.ShowToast:
		cmds = append(cmds, a.showToast(msg))

	case messages.ConfigSaved:
		if msg.Err != nil {
			logging.WithError(msg.Err, "saving config")
			cmds = append(cmds, a.toast.ShowError("Could not save settings"))
		}

	case messages.Error:
		if !msg.Logged {
			logging.WithError(msg.Err, msg.Context)
		}
		cmds = append(cmds, a.toast.ShowError(msg.Err.Error()))

	case common.ToastDismissed:
		newToast, cmd := a.toast.Update(msg)
		a.toast = newToast
		cmds = append(cmds, cmd)
	}

	return a, common.SafeBatch(cmds...)
}

func (a *App) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keymap.Quit):
		a.quitting = true
		a.shutdown()
		return a, tea.Quit

	case key.Matches(msg, a.keymap.Help):
		a.showHelp = !a.showHelp
		a.config.UI.ShowHelpBar = a.showHelp
		return a, common.SafeBatch(a.layoutCarousel(), a.saveUICmd())

	case key.Matches(msg, a.keymap.ReloadDeck):
		if a.deckPath == "" {
			return a, a.toast.ShowInfo("Built-in deck; nothing to reload")
		}
		return a, a.reloadDeckCmd()
	}

	newCarousel, cmd := a.carousel.Update(msg)
	a.carousel = newCarousel
	cmds := []tea.Cmd{cmd}

	// Persist the toggles the carousel just applied.
	switch {
	case key.Matches(msg, a.keymap.ToggleDots):
		a.config.UI.ShowDots = a.carousel.ShowDots()
		cmds = append(cmds, a.saveUICmd())
	case key.Matches(msg, a.keymap.ToggleLoop):
		a.config.Carousel.Loop = a.carousel.Looping()
		cmds = append(cmds, a.saveCarouselCmd())
	case key.Matches(msg, a.keymap.ToggleAutoplay):
		a.config.Carousel.Autoplay = a.carousel.AutoplayOn()
		cmds = append(cmds, a.saveCarouselCmd())
	}

	return a, common.SafeBatch(cmds...)
}

// layoutCarousel gives the carousel everything above the status chrome.
func (a *App) layoutCarousel() tea.Cmd {
	if !a.ready {
		return nil
	}
	chrome := 1 // status bar
	if a.showHelp {
		chrome++
	}
	height := a.height - chrome
	if height < 3 {
		height = 3
	}
	return a.carousel.SetSize(a.width, height)
}

func (a *App) reloadDeckCmd() tea.Cmd {
	path := a.deckPath
	return common.SafeCmd(func() tea.Msg {
		d, err := deck.Load(path)
		if err != nil {
			return messages.DeckLoadFailed{Path: path, Err: err}
		}
		return messages.DeckReloaded{Deck: d, Path: path}
	})
}

func (a *App) saveUICmd() tea.Cmd {
	cfg := a.config
	return common.SafeCmd(func() tea.Msg {
		return messages.ConfigSaved{Err: cfg.SaveUISettings()}
	})
}

func (a *App) saveCarouselCmd() tea.Cmd {
	cfg := a.config
	return common.SafeCmd(func() tea.Msg {
		return messages.ConfigSaved{Err: cfg.SaveCarousel()}
	})
}

func (a *App) showToast(msg messages.ShowToast) tea.Cmd {
	switch msg.Level {
	case messages.ToastSuccess:
		return a.toast.ShowSuccess(msg.Message)
	case messages.ToastWarning:
		return a.toast.ShowWarning(msg.Message)
	case messages.ToastError:
		return a.toast.ShowError(msg.Message)
	default:
		return a.toast.ShowInfo(msg.Message)
	}
}

// shutdown releases background resources before quit.
func (a *App) shutdown() {
	if a.cancelWatch != nil {
		a.cancelWatch()
	}
	if a.deckWatcher != nil {
		_ = a.deckWatcher.Close()
	}
	a.carousel.Engine().Destroy()
	perf.Flush("shutdown")
}
