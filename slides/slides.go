package slides

import (
	"fmt"
	"strings"
)

// CodeSnippet is a second, independent piece of code shown next to a slide's
// primary code.
type CodeSnippet struct {
	Title    string
	FileName string
	Code     string
}

// Slide is one navigable unit of a deck.
type Slide struct {
	// ID is unique within its deck. It carries no ordering; the position in
	// the deck decides navigation order.
	ID          int
	Title       string
	FileName    string
	Code        string
	Description string
	// SecondaryCode is nil when the slide only has primary code.
	SecondaryCode *CodeSnippet
}

// HasSecondary reports whether the slide carries a secondary snippet.
func (s Slide) HasSecondary() bool {
	return s.SecondaryCode != nil
}

// Label is the caption shown above the slide's primary code.
func (s Slide) Label() string {
	if s.FileName != "" {
		return s.FileName
	}
	return s.Title
}

// Deck is an ordered, non-empty sequence of slides.
type Deck []Slide

type namedDeck struct {
	name   string
	slides Deck
}

// catalog is filled once during package init and never mutated afterwards.
var catalog []namedDeck

// register adds a deck to the catalog. Decks are compiled-in constants, so a
// broken deck is a programming error and panics.
func register(name string, deck Deck) {
	if err := validate(name, deck); err != nil {
		panic(err)
	}
	catalog = append(catalog, namedDeck{name: name, slides: deck})
}

func validate(name string, deck Deck) error {
	if name == "" {
		return fmt.Errorf("deck name cannot be empty")
	}
	for _, d := range catalog {
		if d.name == name {
			return fmt.Errorf("deck %q registered twice", name)
		}
	}
	if len(deck) == 0 {
		return fmt.Errorf("deck %q has no slides", name)
	}
	seen := make(map[int]bool, len(deck))
	for _, s := range deck {
		if seen[s.ID] {
			return fmt.Errorf("deck %q: duplicate slide id %d", name, s.ID)
		}
		seen[s.ID] = true
	}
	return nil
}

// Names returns the deck names in registration order.
func Names() []string {
	names := make([]string, len(catalog))
	for i, d := range catalog {
		names[i] = d.name
	}
	return names
}

// Default returns the deck selected when nothing else was asked for.
func Default() string {
	return catalog[0].name
}

// Lookup returns the deck registered under name.
func Lookup(name string) (Deck, bool) {
	for _, d := range catalog {
		if d.name == name {
			return d.slides, true
		}
	}
	return nil, false
}

// MustLookup is Lookup for names that are known by construction, like the ones
// offered by the deck selector. An unknown name is a configuration error.
func MustLookup(name string) Deck {
	deck, ok := Lookup(name)
	if !ok {
		panic(fmt.Sprintf("slides: unknown deck %q", name))
	}
	return deck
}

// DisplayName capitalises a deck name for menus.
func DisplayName(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
