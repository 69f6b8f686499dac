package messages

import "github.com/andyrewlee/marquee/internal/deck"

// SlideScrolled is sent on every scroll position change while the carousel
// is in motion (drag, fling, wheel, or programmatic scroll).
type SlideScrolled struct {
	Index int
}

// SlideSettled is sent once when motion stops at a discrete slide.
type SlideSettled struct {
	Index int
}

// DeckLoaded is sent when the initial deck has been read.
type DeckLoaded struct {
	Deck *deck.Deck
	Path string
}

// DeckChanged is sent when the watcher sees the deck file change on disk.
// The receiver is expected to reload the deck.
type DeckChanged struct{}

// DeckReloaded is sent when the watched deck file changed on disk.
type DeckReloaded struct {
	Deck *deck.Deck
	Path string
}

// DeckLoadFailed is sent when a deck file could not be read or parsed.
type DeckLoadFailed struct {
	Path string
	Err  error
}

// CopySlideResult reports the outcome of copying a slide to the clipboard.
type CopySlideResult struct {
	Index int
	Err   error
}

// ConfigSaved reports the outcome of persisting settings.
type ConfigSaved struct {
	Err error
}

// AutoplayTick drives the autoplay timer.
type AutoplayTick struct {
	Gen uint64
}

// FrameTick drives one animation frame of in-flight motion. Gen invalidates
// stale tick chains after the motion they belonged to was preempted.
type FrameTick struct {
	Gen uint64
}

// ToastLevel identifies toast severity for status reporting.
type ToastLevel string

const (
	ToastInfo    ToastLevel = "info"
	ToastSuccess ToastLevel = "success"
	ToastWarning ToastLevel = "warning"
	ToastError   ToastLevel = "error"
)

// ShowToast requests a transient status message.
type ShowToast struct {
	Message string
	Level   ToastLevel
}

// Error reports an error to the root model. Logged indicates the error was
// already written to the log at the point of origin.
type Error struct {
	Err     error
	Context string
	Logged  bool
}
