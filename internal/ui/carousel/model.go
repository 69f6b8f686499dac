package carousel

import (
	"math"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	zone "github.com/lrstanley/bubblezone"

	"github.com/andyrewlee/marquee/internal/config"
	"github.com/andyrewlee/marquee/internal/deck"
	"github.com/andyrewlee/marquee/internal/engine"
	"github.com/andyrewlee/marquee/internal/keymap"
	"github.com/andyrewlee/marquee/internal/logging"
	"github.com/andyrewlee/marquee/internal/messages"
	"github.com/andyrewlee/marquee/internal/ui/common"
)

// frameInterval is the nominal animation frame driving in-flight momentum.
const frameInterval = 16 * time.Millisecond

// eventBuffer collects engine notifications raised synchronously during an
// Update call so they can be re-emitted as tea messages afterwards.
type eventBuffer struct {
	scrolled []int
	settled  []int
}

func (b *eventBuffer) Scrolled(index int) { b.scrolled = append(b.scrolled, index) }
func (b *eventBuffer) Settled(index int)  { b.settled = append(b.settled, index) }

// Model is the Bubbletea model for the carousel pane.
type Model struct {
	eng    *engine.Engine
	deck   *deck.Deck
	opts   config.CarouselConfig
	keymap keymap.KeyMap

	width  int
	height int

	focused  bool
	dragging bool
	looping  bool
	showDots bool

	// Generation counters invalidate stale tick chains after the motion
	// they belonged to was preempted.
	frameGen    uint64
	frameActive bool
	autoplayGen uint64
	autoplayOn  bool

	events *eventBuffer
	zone   *zone.Manager
	styles common.Styles

	// Track area recorded during View, in widget-local coordinates.
	trackRegion common.HitRegion
}

// New creates a carousel model for the given deck.
func New(d *deck.Deck, opts config.CarouselConfig, km keymap.KeyMap) *Model {
	eng := engine.New(engine.Options{
		Loop:        opts.Loop,
		MinVelocity: opts.MinVelocity,
		DragDecel:   opts.DragDecel,
		WheelDecel:  opts.WheelDecel,
	})
	buf := &eventBuffer{}
	eng.Subscribe(buf)

	return &Model{
		eng:        eng,
		deck:       d,
		opts:       opts,
		keymap:     km,
		focused:    true,
		looping:    opts.Loop,
		showDots:   true,
		autoplayOn: opts.Autoplay,
		events:     buf,
		styles:     common.DefaultStyles(),
	}
}

// Init starts autoplay when enabled.
func (m *Model) Init() tea.Cmd {
	if m.autoplayOn {
		return m.scheduleAutoplay()
	}
	return nil
}

// SetZone sets the shared zone manager for click targets.
func (m *Model) SetZone(z *zone.Manager) { m.zone = z }

// SetStyles sets the styles for the carousel.
func (m *Model) SetStyles(styles common.Styles) { m.styles = styles }

// SetShowDots controls whether the dot navigator is rendered.
func (m *Model) SetShowDots(show bool) { m.showDots = show }

// ShowDots reports whether the dot navigator is rendered.
func (m *Model) ShowDots() bool { return m.showDots }

// Focus sets focus.
func (m *Model) Focus() { m.focused = true }

// Blur removes focus.
func (m *Model) Blur() { m.focused = false }

// Focused returns focus state.
func (m *Model) Focused() bool { return m.focused }

// Index returns the currently selected slide index.
func (m *Model) Index() int { return m.eng.CurrentIndex() }

// Looping reports whether seamless looping is active.
func (m *Model) Looping() bool { return m.looping }

// AutoplayOn reports whether autoplay is active.
func (m *Model) AutoplayOn() bool { return m.autoplayOn }

// Deck returns the deck being presented.
func (m *Model) Deck() *deck.Deck { return m.deck }

// Engine exposes the interaction engine, for the harness.
func (m *Model) Engine() *engine.Engine { return m.eng }

// SetSize resizes the carousel and relayouts the track.
func (m *Model) SetSize(width, height int) tea.Cmd {
	m.width = width
	m.height = height
	return m.layout(false)
}

// SetDeck swaps in a new deck, keeping the selection when it still exists.
func (m *Model) SetDeck(d *deck.Deck) tea.Cmd {
	index := m.eng.CurrentIndex()
	m.deck = d
	if index >= d.Len() {
		index = 0
	}
	return m.layout(true, index)
}

// layout recomputes the track geometry from the widget size. With reseat the
// current slide is scrolled back under the view, which is needed when the
// loop mode or the deck changes; a plain resize keeps the raw position.
func (m *Model) layout(reseat bool, reseatIndex ...int) tea.Cmd {
	n := m.deck.Len()
	if n == 0 || m.width <= 0 {
		return nil
	}

	slideWidth, err := engine.SlideWidthFor(float64(m.width), m.opts.Gap, m.opts.SlidesPerView)
	if err != nil {
		logging.Warn("carousel layout rejected: width=%d slides_per_view=%d gap=%v", m.width, m.opts.SlidesPerView, m.opts.Gap)
		return m.toastCmd("window too narrow for this layout", messages.ToastWarning)
	}
	// Terminal cells are whole columns; the renderer and the engine must
	// agree on the pitch.
	slideWidth = math.Floor(slideWidth)
	gap := math.Floor(m.opts.Gap)
	if slideWidth < 3 {
		return m.toastCmd("window too narrow for this layout", messages.ToastWarning)
	}

	first := m.eng.Params().OriginalCount == 0
	index := m.eng.CurrentIndex()
	if len(reseatIndex) > 0 {
		index = reseatIndex[0]
	}

	params := engine.Params{SlideWidth: slideWidth, Gap: gap, OriginalCount: n}
	if err := m.eng.Reconfigure(params, m.looping); err != nil {
		logging.WithError(err, "carousel reconfigure")
		return m.toastCmd("invalid carousel geometry", messages.ToastError)
	}

	if first || reseat {
		m.cancelFrames()
		m.eng.ScrollTo(index, false)
	}
	return m.drainEvents()
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return m.handleKey(msg)
	case tea.MouseClickMsg:
		return m.handleMouseClick(msg)
	case tea.MouseMotionMsg:
		return m.handleMouseMotion(msg)
	case tea.MouseReleaseMsg:
		return m.handleMouseRelease(msg)
	case tea.MouseWheelMsg:
		return m.handleMouseWheel(msg)
	case messages.FrameTick:
		return m.handleFrameTick(msg)
	case messages.AutoplayTick:
		return m.handleAutoplayTick(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyPressMsg) (*Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keymap.Next):
		m.cancelFrames()
		m.eng.ScrollNext()
	case key.Matches(msg, m.keymap.Prev):
		m.cancelFrames()
		m.eng.ScrollPrev()
	case key.Matches(msg, m.keymap.First):
		m.cancelFrames()
		m.eng.ScrollTo(0, true)
	case key.Matches(msg, m.keymap.Last):
		m.cancelFrames()
		m.eng.ScrollTo(m.deck.Len()-1, true)
	case key.Matches(msg, m.keymap.ToggleLoop):
		return m, m.toggleLoop()
	case key.Matches(msg, m.keymap.ToggleAutoplay):
		return m, m.toggleAutoplay()
	case key.Matches(msg, m.keymap.ToggleDots):
		m.showDots = !m.showDots
	case key.Matches(msg, m.keymap.CopySlide):
		return m, m.copySlideCmd()
	default:
		return m, nil
	}
	return m, m.drainEvents()
}

func (m *Model) handleFrameTick(msg messages.FrameTick) (*Model, tea.Cmd) {
	if msg.Gen != m.frameGen || !m.frameActive {
		return m, nil
	}
	if m.eng.StepFrame() {
		return m, tea.Batch(m.frameCmd(msg.Gen), m.drainEvents())
	}
	m.frameActive = false
	return m, m.drainEvents()
}

func (m *Model) handleAutoplayTick(msg messages.AutoplayTick) (*Model, tea.Cmd) {
	if msg.Gen != m.autoplayGen || !m.autoplayOn {
		return m, nil
	}
	var cmds []tea.Cmd
	if !m.dragging && !m.eng.Moving() {
		m.eng.ScrollNext()
		cmds = append(cmds, m.drainEvents())
	}
	cmds = append(cmds, m.autoplayCmd(msg.Gen))
	return m, tea.Batch(cmds...)
}

// toggleLoop flips loop mode and reseats the current slide inside the new
// track coordinates.
func (m *Model) toggleLoop() tea.Cmd {
	m.looping = !m.looping
	return m.layout(true)
}

func (m *Model) toggleAutoplay() tea.Cmd {
	m.autoplayOn = !m.autoplayOn
	if m.autoplayOn {
		return m.scheduleAutoplay()
	}
	m.autoplayGen++
	return nil
}

// startFrames begins a fresh frame tick chain for in-flight momentum.
func (m *Model) startFrames() tea.Cmd {
	m.frameGen++
	m.frameActive = true
	return m.frameCmd(m.frameGen)
}

func (m *Model) frameCmd(gen uint64) tea.Cmd {
	return common.SafeTick(frameInterval, func(time.Time) tea.Msg {
		return messages.FrameTick{Gen: gen}
	})
}

// cancelFrames invalidates any pending frame tick.
func (m *Model) cancelFrames() {
	m.frameGen++
	m.frameActive = false
}

func (m *Model) scheduleAutoplay() tea.Cmd {
	m.autoplayGen++
	return m.autoplayCmd(m.autoplayGen)
}

func (m *Model) autoplayCmd(gen uint64) tea.Cmd {
	interval := time.Duration(m.opts.AutoplayMillis) * time.Millisecond
	return common.SafeTick(interval, func(time.Time) tea.Msg {
		return messages.AutoplayTick{Gen: gen}
	})
}

func (m *Model) copySlideCmd() tea.Cmd {
	index := m.eng.CurrentIndex()
	slide := m.deck.Slide(index)
	return common.SafeCmd(func() tea.Msg {
		err := common.CopyToClipboard(slide.Text())
		return messages.CopySlideResult{Index: index, Err: err}
	})
}

func (m *Model) toastCmd(message string, level messages.ToastLevel) tea.Cmd {
	return func() tea.Msg {
		return messages.ShowToast{Message: message, Level: level}
	}
}

// drainEvents re-emits buffered engine notifications as tea messages.
// Scroll notifications are coalesced to the latest; every settle is kept.
func (m *Model) drainEvents() tea.Cmd {
	var cmds []tea.Cmd
	if len(m.events.scrolled) > 0 {
		index := m.events.scrolled[len(m.events.scrolled)-1]
		cmds = append(cmds, func() tea.Msg { return messages.SlideScrolled{Index: index} })
	}
	for _, index := range m.events.settled {
		index := index
		cmds = append(cmds, func() tea.Msg { return messages.SlideSettled{Index: index} })
	}
	m.events.scrolled = nil
	m.events.settled = nil
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}
