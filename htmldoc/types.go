// Package htmldoc writes decks as HTML handouts and reads handouts back.
//
// A handout is a single self-contained page: a contents list linking to one
// <section> per slide, each holding the slide title as <h2> followed by the
// slide text in reading order. Bullet paragraphs become <ul> lists nested by
// indent level.
package htmldoc

import "github.com/tsawler/deckforge/layout"

// Options controls handout output.
type Options struct {
	// Title overrides the page title. Default: the deck title.
	Title string

	// Contents adds a <nav> list linking to every slide.
	// Default: true
	Contents bool

	// Style embeds a small stylesheet in the page head.
	// Default: true
	Style bool

	// ReadingOrder configures how slide text is ordered.
	ReadingOrder layout.ReadingOrderConfig
}

// DefaultOptions returns the default handout options.
func DefaultOptions() Options {
	return Options{
		Contents:     true,
		Style:        true,
		ReadingOrder: layout.DefaultReadingOrderConfig(),
	}
}

// BlockType identifies a block of slide text in a handout.
type BlockType int

const (
	BlockParagraph BlockType = iota
	BlockHeading             // Caption on a shape, e.g. a column header
	BlockSubtitle
	BlockCaption
	BlockList
)

func (t BlockType) String() string {
	switch t {
	case BlockHeading:
		return "heading"
	case BlockSubtitle:
		return "subtitle"
	case BlockCaption:
		return "caption"
	case BlockList:
		return "list"
	default:
		return "paragraph"
	}
}

// Block is one run of text within a section.
type Block struct {
	Type  BlockType
	Text  string     // Empty for lists
	Items []ListItem // Lists only
}

// ListItem is a bullet with its nesting depth (0 = top level).
type ListItem struct {
	Text  string
	Level int
}

// Section holds the content of one slide.
type Section struct {
	Number int // 1-indexed slide number
	ID     string
	Title  string
	Blocks []Block
}

// Items returns every list item of the section in order.
func (s Section) Items() []string {
	var out []string
	for _, b := range s.Blocks {
		for _, item := range b.Items {
			out = append(out, item.Text)
		}
	}
	return out
}

// Handout is a parsed handout page.
type Handout struct {
	Title    string
	Meta     map[string]string // <meta name=...> values
	Contents []string          // Entries of the contents list
	Sections []Section
}
