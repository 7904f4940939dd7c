// Package format names the file formats deckforge reads and writes.
package format

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Format represents a supported file format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// PPTX indicates a PowerPoint (.pptx) presentation.
	PPTX
	// HTML indicates an HTML handout.
	HTML
	// Markdown indicates a Markdown outline.
	Markdown
	// PNG indicates slide preview images.
	PNG
	// YAML indicates a deck definition or configuration file.
	YAML
)

// All lists the known formats in declaration order.
var All = []Format{PPTX, HTML, Markdown, PNG, YAML}

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case PPTX:
		return "PPTX"
	case HTML:
		return "HTML"
	case Markdown:
		return "Markdown"
	case PNG:
		return "PNG"
	case YAML:
		return "YAML"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case PPTX:
		return ".pptx"
	case HTML:
		return ".html"
	case Markdown:
		return ".md"
	case PNG:
		return ".png"
	case YAML:
		return ".yaml"
	default:
		return ""
	}
}

// IsOutput reports whether decks can be written in the format.
func (f Format) IsOutput() bool {
	switch f {
	case PPTX, HTML, Markdown, PNG:
		return true
	}
	return false
}

// Parse converts a format name or extension such as "pptx", "md" or
// ".html" to a Format. Matching is case-insensitive.
func Parse(name string) (Format, error) {
	s := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), "."))
	switch s {
	case "pptx":
		return PPTX, nil
	case "html", "htm":
		return HTML, nil
	case "md", "markdown":
		return Markdown, nil
	case "png":
		return PNG, nil
	case "yaml", "yml":
		return YAML, nil
	default:
		return Unknown, fmt.Errorf("unknown format %q", name)
	}
}

// ParseList parses a comma-separated list of formats, skipping empty
// entries and duplicates.
func ParseList(list string) ([]Format, error) {
	var out []Format
	seen := make(map[Format]bool)
	for _, part := range strings.Split(list, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		f, err := Parse(part)
		if err != nil {
			return nil, err
		}
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	return out, nil
}

// FromExtension maps an extension such as ".pptx" or "yml" to a Format.
func FromExtension(ext string) Format {
	if strings.TrimSpace(ext) == "" {
		return Unknown
	}
	f, err := Parse(ext)
	if err != nil {
		return Unknown
	}
	return f
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	return FromExtension(filepath.Ext(filename))
}

var (
	zipMagic = []byte("PK\x03\x04")
	pngMagic = []byte("\x89PNG\r\n\x1a\n")
)

// DetectFromMagic checks leading bytes to determine format.
// Returns Unknown for ZIP archives; use DetectFromReader to look inside
// them.
func DetectFromMagic(data []byte) Format {
	switch {
	case bytes.HasPrefix(data, pngMagic):
		return PNG
	case bytes.HasPrefix(data, zipMagic):
		return Unknown
	case detectHTMLMagic(data):
		return HTML
	}

	trimmed := bytes.TrimLeft(data, " \t\r\n")
	switch {
	case bytes.HasPrefix(trimmed, []byte("---")):
		return YAML
	case bytes.HasPrefix(trimmed, []byte("# ")):
		return Markdown
	}
	return Unknown
}

// detectHTMLMagic checks if the data looks like HTML content.
func detectHTMLMagic(data []byte) bool {
	data = bytes.TrimLeft(data, " \t\r\n")
	if len(data) == 0 {
		return false
	}

	// Check for common HTML signatures (case-insensitive for DOCTYPE)
	upper := strings.ToUpper(string(data))
	if strings.HasPrefix(upper, "<!DOCTYPE HTML") {
		return true
	}
	if strings.HasPrefix(upper, "<HTML") {
		return true
	}
	// XML declaration followed by html-like content could be XHTML
	if strings.HasPrefix(upper, "<?XML") && strings.Contains(upper[:min(500, len(upper))], "<HTML") {
		return true
	}

	return false
}

// DetectFromReader inspects the content to determine format. Unlike
// DetectFromMagic it opens ZIP archives to recognise presentations.
func DetectFromReader(r io.ReaderAt, size int64) (Format, error) {
	magic := make([]byte, 512)
	n, err := r.ReadAt(magic, 0)
	if err != nil && err != io.EOF {
		return Unknown, err
	}
	magic = magic[:n]

	if bytes.HasPrefix(magic, zipMagic) {
		return detectZIPFormat(r, size)
	}
	return DetectFromMagic(magic), nil
}

// detectZIPFormat reports PPTX for an Office Open XML package with a
// presentation part.
func detectZIPFormat(r io.ReaderAt, size int64) (Format, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return Unknown, err
	}

	var contentTypes, presentation bool
	for _, f := range zr.File {
		switch {
		case f.Name == "[Content_Types].xml":
			contentTypes = true
		case strings.HasPrefix(f.Name, "ppt/"):
			presentation = true
		}
	}
	if contentTypes && presentation {
		return PPTX, nil
	}
	return Unknown, nil
}
