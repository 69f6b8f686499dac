package keymap

import (
	"strings"

	"charm.land/bubbles/v2/key"

	"github.com/andyrewlee/marquee/internal/config"
)

// Action identifies a configurable keybinding.
type Action string

const (
	ActionNext  Action = "next"
	ActionPrev  Action = "prev"
	ActionFirst Action = "first"
	ActionLast  Action = "last"

	ActionToggleLoop     Action = "toggle_loop"
	ActionToggleAutoplay Action = "toggle_autoplay"
	ActionToggleDots     Action = "toggle_dots"

	ActionCopySlide  Action = "copy_slide"
	ActionReloadDeck Action = "reload_deck"

	ActionHelp Action = "help"
	ActionQuit Action = "quit"
)

type bindingDef struct {
	action Action
	keys   []string
	desc   string
}

// KeyMap defines all keybindings for the application.
type KeyMap struct {
	Next  key.Binding
	Prev  key.Binding
	First key.Binding
	Last  key.Binding

	ToggleLoop     key.Binding
	ToggleAutoplay key.Binding
	ToggleDots     key.Binding

	CopySlide  key.Binding
	ReloadDeck key.Binding

	Help key.Binding
	Quit key.Binding
}

// New builds a keymap from defaults, applying any user overrides.
func New(cfg config.KeyMapConfig) KeyMap {
	return KeyMap{
		Next: bindingFromDef(cfg, bindingDef{
			action: ActionNext,
			keys:   []string{"l", "right"},
			desc:   "next slide",
		}),
		Prev: bindingFromDef(cfg, bindingDef{
			action: ActionPrev,
			keys:   []string{"h", "left"},
			desc:   "previous slide",
		}),
		First: bindingFromDef(cfg, bindingDef{
			action: ActionFirst,
			keys:   []string{"g", "home"},
			desc:   "first slide",
		}),
		Last: bindingFromDef(cfg, bindingDef{
			action: ActionLast,
			keys:   []string{"G", "end"},
			desc:   "last slide",
		}),

		ToggleLoop: bindingFromDef(cfg, bindingDef{
			action: ActionToggleLoop,
			keys:   []string{"o"},
			desc:   "toggle loop",
		}),
		ToggleAutoplay: bindingFromDef(cfg, bindingDef{
			action: ActionToggleAutoplay,
			keys:   []string{"p"},
			desc:   "toggle autoplay",
		}),
		ToggleDots: bindingFromDef(cfg, bindingDef{
			action: ActionToggleDots,
			keys:   []string{"d"},
			desc:   "toggle dots",
		}),

		CopySlide: bindingFromDef(cfg, bindingDef{
			action: ActionCopySlide,
			keys:   []string{"y"},
			desc:   "copy slide",
		}),
		ReloadDeck: bindingFromDef(cfg, bindingDef{
			action: ActionReloadDeck,
			keys:   []string{"r"},
			desc:   "reload deck",
		}),

		Help: bindingFromDef(cfg, bindingDef{
			action: ActionHelp,
			keys:   []string{"?"},
			desc:   "toggle help",
		}),
		Quit: bindingFromDef(cfg, bindingDef{
			action: ActionQuit,
			keys:   []string{"q", "ctrl+c"},
			desc:   "quit",
		}),
	}
}

func bindingFromDef(cfg config.KeyMapConfig, def bindingDef) key.Binding {
	keys, ok := cfg.BindingFor(string(def.action))
	if !ok {
		keys = def.keys
	}
	helpKey := strings.Join(keys, "/")
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(helpKey, def.desc),
	)
}

// PrimaryKey returns the first key in the binding, if present.
func PrimaryKey(binding key.Binding) string {
	keys := binding.Keys()
	if len(keys) == 0 {
		return ""
	}
	return keys[0]
}

// BindingHint returns a single key hint for a binding, falling back to help text.
func BindingHint(binding key.Binding) string {
	key := PrimaryKey(binding)
	if key == "" {
		return binding.Help().Key
	}
	return key
}

// PairHint joins two bindings with a slash using their primary keys.
func PairHint(a, b key.Binding) string {
	left := BindingHint(a)
	right := BindingHint(b)
	if left == "" {
		return right
	}
	if right == "" {
		return left
	}
	return left + "/" + right
}
