package htmldoc

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/tsawler/deckforge/layout"
	"github.com/tsawler/deckforge/model"
)

const stylesheet = `body{font-family:sans-serif;max-width:48em;margin:2em auto;line-height:1.4}
section{border-top:1px solid #ccc;padding-top:1em}
.subtitle{font-size:1.2em;color:#555}
.caption{font-style:italic;color:#444}`

// bulletGlyphs are stripped from the start of list items; the list itself
// supplies the marker.
var bulletGlyphs = []string{"•", "▪", "–", "-"}

// Write renders d as an HTML handout.
func Write(w io.Writer, d *model.Deck, opts Options) error {
	doc, err := Build(d, opts)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	if err := html.Render(bw, doc); err != nil {
		return fmt.Errorf("rendering handout: %w", err)
	}
	return bw.Flush()
}

// WriteFile writes the handout for d to path. The parent directory must
// exist.
func WriteFile(path string, d *model.Deck, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := Write(f, d, opts); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}

// Build returns the handout for d as an HTML document node.
func Build(d *model.Deck, opts Options) (*html.Node, error) {
	if d == nil {
		return nil, errors.New("nil deck")
	}
	if len(d.Slides) == 0 {
		return nil, errors.New("deck has no slides")
	}
	title := opts.Title
	if title == "" {
		title = d.Metadata.Title
	}
	if title == "" {
		title = d.Slides[0].Title()
	}

	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	root := element(atom.Html, "lang", "en")
	doc.AppendChild(root)

	head := element(atom.Head)
	root.AppendChild(head)
	head.AppendChild(element(atom.Meta, "charset", "utf-8"))
	head.AppendChild(textElement(atom.Title, title))
	meta := []struct{ name, content string }{
		{"author", d.Metadata.Author},
		{"description", d.Metadata.Subject},
		{"keywords", strings.Join(d.Metadata.Keywords, ", ")},
		{"generator", "deckforge"},
	}
	for _, m := range meta {
		if m.content != "" {
			head.AppendChild(element(atom.Meta, "name", m.name, "content", m.content))
		}
	}
	if opts.Style {
		head.AppendChild(textElement(atom.Style, stylesheet))
	}

	body := element(atom.Body)
	root.AppendChild(body)
	body.AppendChild(textElement(atom.H1, title))
	if opts.Contents {
		body.AppendChild(contents(d))
	}

	detector := layout.NewReadingOrderDetectorWithConfig(opts.ReadingOrder)
	for i, s := range d.Slides {
		body.AppendChild(section(i+1, s, detector))
	}
	return doc, nil
}

func sectionID(n int) string {
	return "slide-" + strconv.Itoa(n)
}

func slideTitle(n int, s *model.Slide) string {
	if t := s.Title(); t != "" {
		return t
	}
	return fmt.Sprintf("Slide %d", n)
}

func section(n int, s *model.Slide, detector *layout.ReadingOrderDetector) *html.Node {
	sec := element(atom.Section, "id", sectionID(n), "class", "slide")
	sec.AppendChild(textElement(atom.H2, slideTitle(n, s)))

	titleSeen := false
	for _, te := range detector.Order(s) {
		role := te.TextRole()
		if role == model.RoleTitle && !titleSeen {
			titleSeen = true
			continue
		}

		var list *listBuilder
		for _, p := range te.Frame().NonEmpty() {
			item, bullet := stripBullet(p.Text)
			if role == model.RoleBody || bullet || p.Level > 0 {
				if list == nil {
					list = newListBuilder()
					sec.AppendChild(list.root)
				}
				list.add(item, p.Level)
				continue
			}
			list = nil
			sec.AppendChild(block(te, p.Text))
		}
	}
	return sec
}

// block renders one non-list paragraph according to its element's role.
func block(te model.TextElement, text string) *html.Node {
	switch te.TextRole() {
	case model.RoleSubtitle:
		return textElement(atom.P, text, "class", "subtitle")
	case model.RoleCaption:
		if _, onShape := te.(*model.Shape); onShape {
			return textElement(atom.H3, text)
		}
		return textElement(atom.P, text, "class", "caption")
	default:
		return textElement(atom.P, text)
	}
}

func stripBullet(s string) (string, bool) {
	t := strings.TrimSpace(s)
	for _, g := range bulletGlyphs {
		if rest, ok := strings.CutPrefix(t, g+" "); ok {
			return strings.TrimSpace(rest), true
		}
	}
	return t, false
}

// listBuilder nests <ul> elements by paragraph level.
type listBuilder struct {
	root  *html.Node
	stack []*html.Node // Open lists, outermost first
}

func newListBuilder() *listBuilder {
	root := element(atom.Ul)
	return &listBuilder{root: root, stack: []*html.Node{root}}
}

func (lb *listBuilder) add(text string, level int) {
	for len(lb.stack) > level+1 {
		lb.stack = lb.stack[:len(lb.stack)-1]
	}
	for len(lb.stack) < level+1 {
		parent := lb.stack[len(lb.stack)-1]
		li := parent.LastChild
		if li == nil {
			li = element(atom.Li)
			parent.AppendChild(li)
		}
		ul := element(atom.Ul)
		li.AppendChild(ul)
		lb.stack = append(lb.stack, ul)
	}
	lb.stack[len(lb.stack)-1].AppendChild(textElement(atom.Li, text))
}

func contents(d *model.Deck) *html.Node {
	nav := element(atom.Nav, "class", "contents")
	ol := element(atom.Ol)
	nav.AppendChild(ol)
	for i, s := range d.Slides {
		li := element(atom.Li)
		a := textElement(atom.A, slideTitle(i+1, s), "href", "#"+sectionID(i+1))
		li.AppendChild(a)
		ol.AppendChild(li)
	}
	return nav
}

// element creates an element node; attrs alternate keys and values.
func element(a atom.Atom, attrs ...string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}
	return n
}

func textElement(a atom.Atom, text string, attrs ...string) *html.Node {
	n := element(a, attrs...)
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return n
}
