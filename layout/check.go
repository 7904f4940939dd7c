package layout

import (
	"fmt"
	"math"

	"github.com/tsawler/deckforge/model"
	"github.com/tsawler/deckforge/text"
)

// Severity ranks how likely an issue is to be visible in the rendered deck.
type Severity int

const (
	// SeverityInfo marks layout that is unusual but usually intended.
	SeverityInfo Severity = iota
	// SeverityWarning marks layout that will probably look wrong.
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "info"
}

// IssueKind identifies the check that produced an issue.
type IssueKind int

const (
	IssueOutOfBounds IssueKind = iota
	IssueOverflow
	IssueOverlap
)

func (k IssueKind) String() string {
	switch k {
	case IssueOutOfBounds:
		return "out-of-bounds"
	case IssueOverflow:
		return "overflow"
	case IssueOverlap:
		return "overlap"
	default:
		return "unknown"
	}
}

// Issue is one finding of the checker.
type Issue struct {
	Slide    int // 1-indexed
	Element  string
	Other    string // Second element of an overlap
	Kind     IssueKind
	Severity Severity
	Message  string
}

func (i Issue) String() string {
	return fmt.Sprintf("slide %d: %s: %s: %s", i.Slide, i.Severity, i.Kind, i.Message)
}

// CheckConfig holds configuration for layout checks
type CheckConfig struct {
	// DefaultFontSize is assumed for text without an explicit size, in
	// points. Default: 18 (the master body size)
	DefaultFontSize float64

	// InsetX and InsetY are the text frame insets on each side.
	// Defaults: 0.1in and 0.05in, the DrawingML body defaults
	InsetX model.EMU
	InsetY model.EMU

	// OverlapRatio is the fraction of the smaller text box that must be
	// covered before an overlap is reported.
	// Default: 0.1
	OverlapRatio float64
}

// DefaultCheckConfig returns sensible default configuration
func DefaultCheckConfig() CheckConfig {
	return CheckConfig{
		DefaultFontSize: 18,
		InsetX:          model.Inches(0.1),
		InsetY:          model.Inches(0.05),
		OverlapRatio:    0.1,
	}
}

// Checker finds layout problems in a deck
type Checker struct {
	config CheckConfig
}

// NewChecker creates a checker with default configuration
func NewChecker() *Checker {
	return &Checker{config: DefaultCheckConfig()}
}

// NewCheckerWithConfig creates a checker with custom configuration
func NewCheckerWithConfig(config CheckConfig) *Checker {
	return &Checker{config: config}
}

// Check runs every check on d with the default configuration.
func Check(d *model.Deck) []Issue {
	return NewChecker().Check(d)
}

// Check runs every check on d. Issues are ordered by slide, then by check.
func (c *Checker) Check(d *model.Deck) []Issue {
	var issues []Issue
	page := model.NewRect(0, 0, d.Width, d.Height)
	for i, s := range d.Slides {
		issues = append(issues, c.checkBounds(i+1, s, page)...)
		issues = append(issues, c.checkOverflow(i+1, s, page)...)
		issues = append(issues, c.checkOverlap(i+1, s)...)
	}
	return issues
}

func (c *Checker) checkBounds(n int, s *model.Slide, page model.Rect) []Issue {
	var issues []Issue
	for _, elem := range s.Elements {
		b := elem.Bounds()
		if sh, ok := elem.(*model.Shape); ok {
			b = RotatedBounds(b, sh.Rotation)
		}
		if page.ContainsRect(b) {
			continue
		}

		issue := Issue{Slide: n, Element: elem.Name(), Kind: IssueOutOfBounds, Severity: SeverityInfo}
		if firstLine(elem) != "" {
			issue.Severity = SeverityWarning
		}
		if page.Intersects(b) {
			issue.Message = fmt.Sprintf("%s extends past the slide edge", describe(elem))
		} else {
			issue.Message = fmt.Sprintf("%s lies entirely off the slide", describe(elem))
			issue.Severity = SeverityWarning
		}
		issues = append(issues, issue)
	}
	return issues
}

// checkOverflow estimates the space each text frame needs. Fixed frames
// overflow their own box; auto-fit text boxes grow, so they overflow only
// when the grown box leaves the slide.
func (c *Checker) checkOverflow(n int, s *model.Slide, page model.Rect) []Issue {
	var issues []Issue
	for _, te := range s.TextElements() {
		b := te.Bounds()
		_, autoFit := te.(*model.TextBox)
		tf := te.Frame()

		wrap := !autoFit
		if tf.WordWrap != nil {
			wrap = *tf.WordWrap
		}

		inner := b.W - 2*c.config.InsetX
		var width, height model.EMU
		for _, p := range tf.Paragraphs {
			size := p.Font.Size
			if size <= 0 {
				size = c.config.DefaultFontSize
			}
			mono := text.IsMonospace(p.Font.Name)
			lines := 1
			if wrap {
				lines = text.CountLines(p.Text, size, int64(inner), mono)
			} else if w := model.EMU(text.EstimateWidth(p.Text, size, mono)); w > width {
				width = w
			}
			height += model.Pt(float64(lines)*size*text.LineHeight + p.SpaceBefore + p.SpaceAfter)
		}
		height += 2 * c.config.InsetY
		width += 2 * c.config.InsetX

		var msg string
		switch {
		case autoFit && b.Top()+height > page.Bottom():
			msg = fmt.Sprintf("text needs %.2fin and runs past the bottom of the slide", height.Inches())
		case autoFit && !wrap && b.Left()+width > page.Right():
			msg = fmt.Sprintf("unwrapped text is %.2fin wide and runs past the right edge", width.Inches())
		case !autoFit && height > b.H:
			msg = fmt.Sprintf("text needs %.2fin but the box is %.2fin high", height.Inches(), b.H.Inches())
		case !autoFit && !wrap && width > b.W:
			msg = fmt.Sprintf("unwrapped text is %.2fin wide but the box is %.2fin", width.Inches(), b.W.Inches())
		default:
			continue
		}
		issues = append(issues, Issue{
			Slide:    n,
			Element:  te.Name(),
			Kind:     IssueOverflow,
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("%s: %s", describe(te), msg),
		})
	}
	return issues
}

// checkOverlap reports pairs of text boxes covering each other. Text on
// shapes is expected to sit over other artwork and is not compared.
func (c *Checker) checkOverlap(n int, s *model.Slide) []Issue {
	var boxes []*model.TextBox
	for _, elem := range s.Elements {
		if tb, ok := elem.(*model.TextBox); ok && len(tb.Text.NonEmpty()) > 0 {
			boxes = append(boxes, tb)
		}
	}

	var issues []Issue
	for i := 0; i < len(boxes); i++ {
		for j := i + 1; j < len(boxes); j++ {
			a, b := boxes[i].Rect, boxes[j].Rect
			overlap := a.Intersection(b).Area()
			if overlap == 0 {
				continue
			}
			smaller := math.Min(a.Area(), b.Area())
			if smaller == 0 || overlap/smaller < c.config.OverlapRatio {
				continue
			}
			issues = append(issues, Issue{
				Slide:    n,
				Element:  boxes[i].Name(),
				Other:    boxes[j].Name(),
				Kind:     IssueOverlap,
				Severity: SeverityWarning,
				Message: fmt.Sprintf("%s and %s overlap by %.0f%%",
					describe(boxes[i]), describe(boxes[j]), 100*overlap/smaller),
			})
		}
	}
	return issues
}

// RotatedBounds returns the axis-aligned bounding box of r rotated by deg
// degrees about its centre.
func RotatedBounds(r model.Rect, deg float64) model.Rect {
	if math.Mod(deg, 360) == 0 {
		return r
	}
	rad := deg * math.Pi / 180
	sin, cos := math.Abs(math.Sin(rad)), math.Abs(math.Cos(rad))
	w := float64(r.W)*cos + float64(r.H)*sin
	h := float64(r.W)*sin + float64(r.H)*cos
	c := r.Center()
	return model.NewRect(
		c.X-model.EMU(math.Round(w/2)),
		c.Y-model.EMU(math.Round(h/2)),
		model.EMU(math.Round(w)),
		model.EMU(math.Round(h)),
	)
}

// describe names an element for messages, quoting its first line of text.
func describe(elem model.Element) string {
	label := elem.Kind().String()
	if name := elem.Name(); name != "" {
		label += " " + name
	}
	if first := firstLine(elem); first != "" {
		if r := []rune(first); len(r) > 30 {
			first = string(r[:30]) + "..."
		}
		label += fmt.Sprintf(" %q", first)
	}
	return label
}

// firstLine returns the first non-empty paragraph of a text element.
// Shapes without a frame are left untouched.
func firstLine(elem model.Element) string {
	if sh, ok := elem.(*model.Shape); ok && sh.Text == nil {
		return ""
	}
	te, ok := elem.(model.TextElement)
	if !ok {
		return ""
	}
	if paras := te.Frame().NonEmpty(); len(paras) > 0 {
		return paras[0].Text
	}
	return ""
}
