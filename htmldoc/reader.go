package htmldoc

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// Reader provides access to the content of a handout page.
type Reader struct {
	doc     *html.Node
	handout Handout
}

// Open opens a handout file for reading.
func Open(filename string) (*Reader, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return OpenReader(f)
}

// OpenReader parses a handout from an io.Reader. Pages that were not
// written by this package still parse: headings and lists outside any
// <section> are collected into a single unnumbered section.
func OpenReader(r io.Reader) (*Reader, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	reader := &Reader{
		doc:     doc,
		handout: Handout{Meta: make(map[string]string)},
	}
	reader.extractHead(doc)
	reader.extractBody(doc)
	return reader, nil
}

// Close releases resources associated with the Reader.
func (r *Reader) Close() error {
	// Nothing to close for HTML (no file handles kept)
	return nil
}

// Handout returns the parsed handout.
func (r *Reader) Handout() Handout {
	return r.handout
}

// SectionCount returns the number of slide sections.
func (r *Reader) SectionCount() int {
	return len(r.handout.Sections)
}

// Titles returns the section titles in order.
func (r *Reader) Titles() []string {
	titles := make([]string, len(r.handout.Sections))
	for i, s := range r.handout.Sections {
		titles[i] = s.Title
	}
	return titles
}

// extractHead extracts title and meta tags from the head element.
func (r *Reader) extractHead(n *html.Node) {
	if n.Type == html.ElementNode && n.Data == "head" {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			switch c.Data {
			case "title":
				r.handout.Title = getTextContent(c)
			case "meta":
				name, content := getAttr(c, "name"), getAttr(c, "content")
				if name != "" && content != "" {
					r.handout.Meta[name] = content
				}
			}
		}
		return
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		r.extractHead(c)
	}
}

// extractBody collects the contents list and slide sections.
func (r *Reader) extractBody(n *html.Node) {
	body := findElement(n, "body")
	if body == nil {
		body = n
	}

	var loose *Section
	for c := body.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "nav":
			for _, a := range findAll(c, "a") {
				r.handout.Contents = append(r.handout.Contents, getTextContent(a))
			}
		case "section":
			r.handout.Sections = append(r.handout.Sections, parseSection(c, len(r.handout.Sections)+1))
		case "h1":
			// Page heading repeats the title.
		default:
			if loose == nil {
				loose = &Section{}
			}
			parseBlocks(c, loose)
		}
	}
	if loose != nil && (loose.Title != "" || len(loose.Blocks) > 0) {
		r.handout.Sections = append(r.handout.Sections, *loose)
	}
}

func parseSection(n *html.Node, fallback int) Section {
	s := Section{ID: getAttr(n, "id"), Number: fallback}
	if num, ok := strings.CutPrefix(s.ID, "slide-"); ok {
		if v, err := strconv.Atoi(num); err == nil {
			s.Number = v
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		parseBlocks(c, &s)
	}
	return s
}

// parseBlocks adds the block at n, or the blocks beneath a container, to s.
func parseBlocks(n *html.Node, s *Section) {
	if n.Type != html.ElementNode || shouldSkipElement(n.Data) {
		return
	}
	switch n.Data {
	case "h2":
		if s.Title == "" {
			s.Title = getTextContent(n)
			return
		}
		s.Blocks = append(s.Blocks, Block{Type: BlockHeading, Text: getTextContent(n)})
	case "h3", "h4", "h5", "h6":
		s.Blocks = append(s.Blocks, Block{Type: BlockHeading, Text: getTextContent(n)})
	case "p":
		b := Block{Type: BlockParagraph, Text: getTextContent(n)}
		switch {
		case hasClass(n, "subtitle"):
			b.Type = BlockSubtitle
		case hasClass(n, "caption"):
			b.Type = BlockCaption
		}
		if b.Text != "" {
			s.Blocks = append(s.Blocks, b)
		}
	case "ul", "ol":
		var items []ListItem
		collectItems(n, 0, &items)
		if len(items) > 0 {
			s.Blocks = append(s.Blocks, Block{Type: BlockList, Items: items})
		}
	default:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			parseBlocks(c, s)
		}
	}
}

// collectItems flattens a possibly nested list, recording each item's
// depth.
func collectItems(list *html.Node, level int, items *[]ListItem) {
	for li := list.FirstChild; li != nil; li = li.NextSibling {
		if li.Type != html.ElementNode || li.Data != "li" {
			continue
		}
		if text := getDirectTextContent(li); text != "" {
			*items = append(*items, ListItem{Text: text, Level: level})
		}
		for c := li.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && (c.Data == "ul" || c.Data == "ol") {
				collectItems(c, level+1, items)
			}
		}
	}
}

// Text returns the handout as plain text: each section title followed by
// its blocks, with list items indented by level.
func (r *Reader) Text() string {
	var result strings.Builder
	for i, s := range r.handout.Sections {
		if i > 0 {
			result.WriteString("\n\n")
		}
		result.WriteString(s.Title)
		for _, b := range s.Blocks {
			if b.Type != BlockList {
				result.WriteString("\n")
				result.WriteString(b.Text)
				continue
			}
			for _, item := range b.Items {
				result.WriteString("\n")
				result.WriteString(strings.Repeat("  ", item.Level))
				result.WriteString("- ")
				result.WriteString(item.Text)
			}
		}
	}
	return result.String()
}

// shouldSkipElement returns true if the element carries no readable text.
func shouldSkipElement(tagName string) bool {
	switch tagName {
	case "script", "style", "noscript", "template", "svg", "math", "iframe", "object", "embed":
		return true
	}
	return false
}

// findElement finds the first element with the given tag name.
func findElement(n *html.Node, tagName string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tagName {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if result := findElement(c, tagName); result != nil {
			return result
		}
	}
	return nil
}

func findAll(n *html.Node, tagName string) []*html.Node {
	var out []*html.Node
	if n.Type == html.ElementNode && n.Data == tagName {
		out = append(out, n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, findAll(c, tagName)...)
	}
	return out
}

func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(getAttr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

// getTextContent extracts all text content from a node and its
// descendants, collapsing runs of white space.
func getTextContent(n *html.Node) string {
	var result strings.Builder
	getTextContentRecursive(n, &result)
	return strings.Join(strings.Fields(result.String()), " ")
}

func getTextContentRecursive(n *html.Node, result *strings.Builder) {
	if n.Type == html.TextNode {
		result.WriteString(n.Data)
	}
	if n.Type == html.ElementNode {
		if shouldSkipElement(n.Data) {
			return
		}
		if n.Data == "br" {
			result.WriteString("\n")
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		getTextContentRecursive(c, result)
	}
}

// getDirectTextContent gets text content from a node, excluding nested
// block elements.
func getDirectTextContent(n *html.Node) string {
	var result strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			result.WriteString(c.Data)
		} else if c.Type == html.ElementNode {
			switch c.Data {
			case "ul", "ol", "div", "p", "table", "blockquote":
			default:
				result.WriteString(getTextContent(c))
			}
		}
	}
	return strings.Join(strings.Fields(result.String()), " ")
}
