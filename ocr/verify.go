package ocr

import (
	"bytes"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/deckforge/model"
	"github.com/tsawler/deckforge/render"
)

// Recognizer turns an encoded image into text. *Client satisfies it.
type Recognizer interface {
	RecognizeImage(imageData []byte) (string, error)
}

// TitleCheck is the outcome of reading one slide title back from its
// preview.
type TitleCheck struct {
	Slide      int // 1-indexed
	Title      string
	Recognized string
	Found      bool
}

// VerifyTitles renders every titled slide of d, recognises the preview and
// reports whether the title can be read back. Slides without a title are
// skipped.
func VerifyTitles(rec Recognizer, d *model.Deck, opts render.Options) ([]TitleCheck, error) {
	if d == nil {
		return nil, fmt.Errorf("nil deck")
	}
	var checks []TitleCheck
	var buf bytes.Buffer
	for i, s := range d.Slides {
		title := s.Title()
		if title == "" {
			continue
		}
		img, err := render.SlideToImage(d, i, opts)
		if err != nil {
			return checks, err
		}
		buf.Reset()
		if err := render.Encode(&buf, img); err != nil {
			return checks, fmt.Errorf("slide %d: %w", i+1, err)
		}
		got, err := rec.RecognizeImage(buf.Bytes())
		if err != nil {
			return checks, fmt.Errorf("slide %d: %w", i+1, err)
		}
		checks = append(checks, TitleCheck{
			Slide:      i + 1,
			Title:      title,
			Recognized: got,
			Found:      ContainsText(got, title),
		})
	}
	return checks, nil
}

// ContainsText reports whether recognized contains want, ignoring case,
// accents, punctuation and line breaks. OCR output rarely keeps those
// intact.
func ContainsText(recognized, want string) bool {
	w := fold(want)
	if w == "" {
		return true
	}
	return strings.Contains(fold(recognized), w)
}

// fold reduces s to lower-case letters and digits separated by single
// spaces.
func fold(s string) string {
	var b strings.Builder
	space := false
	for _, r := range norm.NFKD.String(s) {
		switch {
		case unicode.Is(unicode.Mn, r):
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if space && b.Len() > 0 {
				b.WriteByte(' ')
			}
			space = false
			b.WriteRune(unicode.ToLower(r))
		default:
			space = true
		}
	}
	return b.String()
}
