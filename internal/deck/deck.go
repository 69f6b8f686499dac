// Package deck loads the slide decks the carousel presents. Deck files are
// JSON; parsing is tolerant about shape (a slide may be a bare string or an
// object) so hand-written decks stay forgiving.
package deck

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/gjson"
)

// ErrNoSlides is returned for a deck file without a usable slides array.
var ErrNoSlides = errors.New("deck has no slides")

// Slide is a single carousel entry.
type Slide struct {
	Title string
	Body  string
	Badge string
}

// Text returns the slide content as plain text, for clipboard copy.
func (s Slide) Text() string {
	parts := make([]string, 0, 2)
	if s.Title != "" {
		parts = append(parts, s.Title)
	}
	if s.Body != "" {
		parts = append(parts, s.Body)
	}
	return strings.Join(parts, "\n")
}

// Deck is an ordered set of slides.
type Deck struct {
	Title  string
	Slides []Slide
}

// Len returns the number of slides.
func (d *Deck) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Slides)
}

// Slide returns the slide at index, or a zero slide when out of range.
func (d *Deck) Slide(index int) Slide {
	if d == nil || index < 0 || index >= len(d.Slides) {
		return Slide{}
	}
	return d.Slides[index]
}

// Load reads and parses a deck file.
func Load(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Parse builds a deck from JSON. Each entry of "slides" may be a string
// (becomes the body) or an object with title/body/badge fields.
func Parse(data []byte) (*Deck, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("deck is not valid JSON")
	}
	root := gjson.ParseBytes(data)

	d := &Deck{Title: root.Get("title").String()}

	slides := root.Get("slides")
	if !slides.IsArray() {
		return nil, ErrNoSlides
	}
	slides.ForEach(func(_, v gjson.Result) bool {
		switch {
		case v.Type == gjson.String:
			d.Slides = append(d.Slides, Slide{Body: v.String()})
		case v.IsObject():
			d.Slides = append(d.Slides, Slide{
				Title: v.Get("title").String(),
				Body:  v.Get("body").String(),
				Badge: v.Get("badge").String(),
			})
		}
		return true
	})
	if len(d.Slides) == 0 {
		return nil, ErrNoSlides
	}
	return d, nil
}

// Demo returns the built-in deck used when no deck file is given.
func Demo() *Deck {
	return &Deck{
		Title: "marquee",
		Slides: []Slide{
			{Title: "Welcome", Body: "A carousel for your terminal.", Badge: "1/6"},
			{Title: "Drag", Body: "Click and drag the track, then let go for a fling.", Badge: "2/6"},
			{Title: "Wheel", Body: "Scroll the mouse wheel to glide between slides.", Badge: "3/6"},
			{Title: "Loop", Body: "Press o to toggle seamless looping.", Badge: "4/6"},
			{Title: "Decks", Body: "Point --deck at a JSON file; edits reload live.", Badge: "5/6"},
			{Title: "Keys", Body: "h/l or arrows page, g/G jump, y copies a slide.", Badge: "6/6"},
		},
	}
}
