// Package decks holds the catalogue of decks the generator knows how to
// build: the two built-in decks and any loaded from YAML definitions.
package decks

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/tsawler/deckforge/model"
)

// ErrUnknownDeck is returned by Lookup for a name that is not registered.
var ErrUnknownDeck = errors.New("unknown deck")

// Entry describes one buildable deck.
type Entry struct {
	Name          string // Registry key, e.g. "tokens"
	Title         string
	Description   string
	DefaultOutput string // File name used when the caller does not pick one
	Build         func() *model.Deck
}

var (
	mu       sync.RWMutex
	registry = make(map[string]Entry)
)

func key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Register adds an entry to the catalogue. Names are case-insensitive and
// must be unique.
func Register(e Entry) error {
	k := key(e.Name)
	if k == "" {
		return errors.New("deck entry has no name")
	}
	if e.Build == nil {
		return fmt.Errorf("deck %q has no build function", e.Name)
	}
	if e.DefaultOutput == "" {
		e.DefaultOutput = k + ".pptx"
	}

	mu.Lock()
	defer mu.Unlock()
	if _, exists := registry[k]; exists {
		return fmt.Errorf("deck %q already registered", e.Name)
	}
	e.Name = k
	registry[k] = e
	return nil
}

// MustRegister is like Register but panics on error. It is meant for
// package init functions.
func MustRegister(e Entry) {
	if err := Register(e); err != nil {
		panic(err)
	}
}

// Lookup returns the entry registered under name.
func Lookup(name string) (Entry, error) {
	mu.RLock()
	defer mu.RUnlock()
	e, ok := registry[key(name)]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q (available: %s)", ErrUnknownDeck, name, strings.Join(namesLocked(), ", "))
	}
	return e, nil
}

// Names returns the registered deck names in sorted order.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	return namesLocked()
}

func namesLocked() []string {
	names := make([]string, 0, len(registry))
	for k := range registry {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// All returns every registered entry, sorted by name.
func All() []Entry {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]Entry, 0, len(registry))
	for _, k := range namesLocked() {
		out = append(out, registry[k])
	}
	return out
}
