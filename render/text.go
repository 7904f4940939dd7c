package render

import (
	"image"
	"image/color"
	"math"
	"strings"
	"unicode"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/deckforge/model"
)

// Metrics of basicfont.Face7x13.
const (
	glyphW      = 7
	glyphH      = 13
	glyphAscent = 11
)

const (
	defaultFontSize = 18.0
	lineSpacing     = 1.2
)

var (
	insetX = model.Inches(0.1)
	insetY = model.Inches(0.05)
	indent = model.Inches(0.5)
)

// glyphFold maps punctuation the preview face lacks onto ASCII.
var glyphFold = strings.NewReplacer(
	"•", "*", "▪", "*", "◦", "o",
	"–", "-", "—", "-", "−", "-",
	"‘", "'", "’", "'", "“", `"`, "”", `"`,
	"…", "...", "→", "->", "←", "<-",
	"\u00a0", " ",
)

// foldText reduces s to characters basicfont can draw. Accents are stripped
// by decomposition; anything else outside ASCII becomes '?'.
func foldText(s string) string {
	s = norm.NFKD.String(glyphFold.Replace(s))
	var b strings.Builder
	for _, r := range s {
		switch {
		case unicode.Is(unicode.Mn, r):
		case r == '\t':
			b.WriteString("    ")
		case r < 0x20:
		case r < 0x7f:
			b.WriteRune(r)
		default:
			b.WriteByte('?')
		}
	}
	return b.String()
}

// wrapText breaks s into lines of at most limit characters, splitting long
// words when they do not fit on a line of their own.
func wrapText(s string, limit int) []string {
	if limit < 1 {
		limit = 1
	}
	var lines []string
	var cur string
	for _, word := range strings.Fields(s) {
		for len(word) > limit {
			if cur != "" {
				lines = append(lines, cur)
				cur = ""
			}
			lines = append(lines, word[:limit])
			word = word[limit:]
		}
		switch {
		case cur == "":
			cur = word
		case len(cur)+1+len(word) <= limit:
			cur += " " + word
		default:
			lines = append(lines, cur)
			cur = word
		}
	}
	if cur != "" || len(lines) == 0 {
		lines = append(lines, cur)
	}
	return lines
}

type textLine struct {
	text   string
	sizePx float64
	indent float64
	align  model.Alignment
	bold   bool
	color  color.RGBA
	space  float64 // Extra space above, in pixels
}

// renderText lays out a frame inside rect and draws it. Text on shapes is
// centred and white by default, while text boxes start at the top left in
// black.
func (r *renderer) renderText(rect model.Rect, tf *model.TextFrame, onShape bool) {
	if len(tf.NonEmpty()) == 0 {
		return
	}
	left := r.px(rect.X + insetX)
	top := r.px(rect.Y + insetY)
	innerW := r.px(rect.W - 2*insetX)
	innerH := r.px(rect.H - 2*insetY)

	wrap := onShape
	if tf.WordWrap != nil {
		wrap = *tf.WordWrap
	}

	var lines []textLine
	var total float64
	for _, p := range tf.Paragraphs {
		size := p.Font.Size
		if size <= 0 {
			size = defaultFontSize
		}
		sizePx := r.ptToPx(size)
		ind := r.px(indent) * float64(p.Level)

		c := defaultText
		if onShape {
			c = shapeText
		}
		if p.Font.Color != nil {
			c = p.Font.Color.RGBA()
		}
		align := p.Align
		if align == model.AlignInherit && onShape {
			align = model.AlignCenter
		}

		parts := []string{foldText(p.Text)}
		if wrap {
			advance := glyphW * sizePx / glyphH
			parts = wrapText(parts[0], int((innerW-ind)/advance))
		}
		for i, s := range parts {
			l := textLine{text: s, sizePx: sizePx, indent: ind, align: align, bold: p.Font.Bold, color: c}
			if i == 0 {
				l.space = r.ptToPx(p.SpaceBefore)
			}
			total += l.space + sizePx*lineSpacing
			lines = append(lines, l)
		}
		total += r.ptToPx(p.SpaceAfter)
	}

	anchor := tf.Anchor
	if anchor == model.AnchorInherit {
		anchor = model.AnchorTop
		if onShape {
			anchor = model.AnchorMiddle
		}
	}
	y := top
	switch anchor {
	case model.AnchorMiddle:
		y += (innerH - total) / 2
	case model.AnchorBottom:
		y += innerH - total
	}

	for _, l := range lines {
		y += l.space
		width := float64(len(l.text)) * glyphW * l.sizePx / glyphH
		x := left + l.indent
		switch l.align {
		case model.AlignCenter:
			x += (innerW - l.indent - width) / 2
		case model.AlignRight:
			x = left + innerW - width
		}
		// Centre the glyph cell within the line's leading.
		r.drawString(l, x, y+l.sizePx*(lineSpacing-1)/2)
		y += l.sizePx * lineSpacing
	}
}

// drawString draws one line with its top-left corner at (x, y). The line is
// drawn at the face's native size and scaled to the target height.
func (r *renderer) drawString(l textLine, x, y float64) {
	if strings.TrimSpace(l.text) == "" {
		return
	}
	src := image.NewRGBA(image.Rect(0, 0, len(l.text)*glyphW+1, glyphH))
	d := &font.Drawer{
		Dst:  src,
		Src:  image.NewUniform(l.color),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(0, glyphAscent),
	}
	d.DrawString(l.text)
	if l.bold {
		d.Dot = fixed.P(1, glyphAscent)
		d.DrawString(l.text)
	}

	f := l.sizePx / glyphH
	dst := image.Rect(
		int(math.Round(x)),
		int(math.Round(y)),
		int(math.Round(x+float64(src.Bounds().Dx())*f)),
		int(math.Round(y+l.sizePx)),
	)
	if dst.Empty() {
		return
	}
	xdraw.ApproxBiLinear.Scale(r.img, dst, src, src.Bounds(), xdraw.Over, nil)
}
