package keymap

import (
	"testing"

	"github.com/andyrewlee/marquee/internal/config"
)

func TestDefaultBindings(t *testing.T) {
	km := New(config.KeyMapConfig{})

	if got := PrimaryKey(km.Next); got != "l" {
		t.Fatalf("expected next bound to l, got %q", got)
	}
	if got := PrimaryKey(km.Prev); got != "h" {
		t.Fatalf("expected prev bound to h, got %q", got)
	}
	if got := PrimaryKey(km.Quit); got != "q" {
		t.Fatalf("expected quit bound to q, got %q", got)
	}
}

func TestUserOverrides(t *testing.T) {
	km := New(config.KeyMapConfig{
		Bindings: map[string][]string{
			"next": {"n", "tab"},
			"quit": {"esc"},
		},
	})

	if got := PrimaryKey(km.Next); got != "n" {
		t.Fatalf("expected next override n, got %q", got)
	}
	if got := PrimaryKey(km.Quit); got != "esc" {
		t.Fatalf("expected quit override esc, got %q", got)
	}
	// Untouched actions keep their defaults.
	if got := PrimaryKey(km.CopySlide); got != "y" {
		t.Fatalf("expected copy default y, got %q", got)
	}
}

func TestHints(t *testing.T) {
	km := New(config.KeyMapConfig{})
	if got := PairHint(km.Prev, km.Next); got != "h/l" {
		t.Fatalf("expected h/l hint, got %q", got)
	}
	if got := BindingHint(km.Help); got != "?" {
		t.Fatalf("expected ? hint, got %q", got)
	}
}
