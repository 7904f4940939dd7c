// Package render rasterises slides into PNG previews.
//
// Shapes are filled and stroked with golang.org/x/image/vector and text is
// drawn with the built-in basicfont face scaled to the run's point size, so
// previews need no system fonts. Previews show position, colour and
// wording; they are not a typographic match for a presentation program.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/vector"

	"github.com/tsawler/deckforge/model"
)

// DefaultWidth is the preview width used when Options.Width is unset.
const DefaultWidth = 960

// Options configures slide-to-image rendering.
type Options struct {
	// Width is the output image width in pixels. Height follows the
	// slide aspect ratio.
	// Default: 960
	Width int

	// Background overrides every slide background. Nil uses the slide
	// background, or white.
	Background *model.RGB

	// SkipText leaves text out, for layout-only previews.
	SkipText bool
}

// DefaultOptions returns default rendering options.
func DefaultOptions() Options {
	return Options{Width: DefaultWidth}
}

// Theme colours used when an element leaves fill or outline to its style.
var (
	defaultFill    = color.RGBA{R: 0x4F, G: 0x81, B: 0xBD, A: 0xFF}
	defaultOutline = color.RGBA{R: 0x38, G: 0x5D, B: 0x8A, A: 0xFF}
	defaultText    = color.RGBA{A: 0xFF}
	shapeText      = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	white          = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// defaultLineWidth matches the theme's thinnest line style.
const defaultLineWidth = model.EMU(9525)

// SlideToImage renders the slide at index (0-indexed) of d.
func SlideToImage(d *model.Deck, index int, opts Options) (*image.RGBA, error) {
	if d == nil {
		return nil, errors.New("nil deck")
	}
	if index < 0 || index >= len(d.Slides) {
		return nil, fmt.Errorf("slide index %d out of range (0-%d)", index, len(d.Slides)-1)
	}
	if d.Width <= 0 || d.Height <= 0 {
		return nil, fmt.Errorf("invalid slide size %dx%d", d.Width, d.Height)
	}
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}

	imgW := opts.Width
	imgH := int(math.Round(float64(imgW) * float64(d.Height) / float64(d.Width)))
	img := image.NewRGBA(image.Rect(0, 0, imgW, imgH))

	r := &renderer{
		img:   img,
		scale: float64(imgW) / float64(d.Width),
		z:     vector.NewRasterizer(imgW, imgH),
	}

	s := d.Slides[index]
	bg := white
	switch {
	case opts.Background != nil:
		bg = opts.Background.RGBA()
	case s.Background != nil:
		bg = s.Background.RGBA()
	}
	r.fillRect(img.Bounds(), bg)

	// Elements are stored back to front.
	for _, elem := range s.Elements {
		switch e := elem.(type) {
		case *model.Shape:
			r.renderShape(e)
			if e.Text != nil && !opts.SkipText {
				r.renderText(e.Rect, e.Text, true)
			}
		case *model.TextBox:
			if !opts.SkipText {
				r.renderText(e.Rect, &e.Text, false)
			}
		case *model.Connector:
			r.renderConnector(e)
		default:
			return nil, fmt.Errorf("slide %d: cannot render %T", index+1, elem)
		}
	}
	return img, nil
}

// SlidesToImages renders every slide of d.
func SlidesToImages(d *model.Deck, opts Options) ([]*image.RGBA, error) {
	if d == nil {
		return nil, errors.New("nil deck")
	}
	images := make([]*image.RGBA, len(d.Slides))
	for i := range d.Slides {
		img, err := SlideToImage(d, i, opts)
		if err != nil {
			return nil, err
		}
		images[i] = img
	}
	return images, nil
}

// Encode writes img as PNG.
func Encode(w io.Writer, img image.Image) error {
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	return enc.Encode(w, img)
}

// SaveSlideAsImage renders a slide and saves it as a PNG file. The parent
// directory must exist.
func SaveSlideAsImage(d *model.Deck, index int, path string, opts Options) error {
	img, err := SlideToImage(d, index, opts)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	encodeErr := Encode(f, img)
	closeErr := f.Close()
	if encodeErr != nil {
		os.Remove(path)
		return fmt.Errorf("encoding %s: %w", path, encodeErr)
	}
	return closeErr
}

// SaveSlidesAsImages renders every slide to files named by pattern, which
// takes the 1-based slide number (e.g. "deck_%02d.png"). It returns the
// paths written.
func SaveSlidesAsImages(d *model.Deck, pattern string, opts Options) ([]string, error) {
	if d == nil {
		return nil, errors.New("nil deck")
	}
	paths := make([]string, 0, len(d.Slides))
	for i := range d.Slides {
		path := fmt.Sprintf(pattern, i+1)
		if err := SaveSlideAsImage(d, i, path, opts); err != nil {
			return paths, fmt.Errorf("slide %d: %w", i+1, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// --- renderer core ---

type renderer struct {
	img   *image.RGBA
	scale float64 // Pixels per EMU
	z     *vector.Rasterizer
}

func (r *renderer) px(v model.EMU) float64 {
	return float64(v) * r.scale
}

// ptToPx converts a size in points to pixels at the preview scale.
func (r *renderer) ptToPx(pt float64) float64 {
	return pt * model.EMUPerPoint * r.scale
}

func (r *renderer) lineWidth(w model.EMU) float64 {
	if w <= 0 {
		w = defaultLineWidth
	}
	return math.Max(1, r.px(w))
}

func (r *renderer) fillRect(rect image.Rectangle, c color.RGBA) {
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			r.img.SetRGBA(x, y, c)
		}
	}
}

// fill rasterises closed polygons in one pass.
func (r *renderer) fill(polys [][]fpoint, c color.RGBA) {
	b := r.img.Bounds()
	r.z.Reset(b.Dx(), b.Dy())
	for _, poly := range polys {
		if len(poly) < 3 {
			continue
		}
		r.z.MoveTo(float32(poly[0].X), float32(poly[0].Y))
		for _, p := range poly[1:] {
			r.z.LineTo(float32(p.X), float32(p.Y))
		}
		r.z.ClosePath()
	}
	r.z.Draw(r.img, b, image.NewUniform(c), image.Point{})
}

func (r *renderer) stroke(lines []polyline, width float64, c color.RGBA) {
	var quads [][]fpoint
	for _, l := range lines {
		quads = append(quads, strokeQuads(l, width)...)
	}
	r.fill(quads, c)
}

func (r *renderer) renderShape(s *model.Shape) {
	x, y := r.px(s.Rect.X), r.px(s.Rect.Y)
	w, h := r.px(s.Rect.W), r.px(s.Rect.H)
	outline := rotate(geometryPath(s.Geometry, x, y, w, h), x+w/2, y+h/2, s.Rotation)

	switch s.Fill.Type {
	case model.FillSolid:
		r.fill(points(outline), s.Fill.Color.RGBA())
	case model.FillDefault:
		r.fill(points(outline), defaultFill)
	}

	if s.Line.Hidden {
		return
	}
	c := defaultOutline
	if s.Line.Color != nil {
		c = s.Line.Color.RGBA()
	}
	r.stroke(outline, r.lineWidth(s.Line.Width), c)
}

func (r *renderer) renderConnector(c *model.Connector) {
	if c.Line.Hidden {
		return
	}
	col := defaultFill
	if c.Line.Color != nil {
		col = c.Line.Color.RGBA()
	}
	line := polyline{pts: []fpoint{
		{r.px(c.Start.X), r.px(c.Start.Y)},
		{r.px(c.End.X), r.px(c.End.Y)},
	}}
	r.stroke([]polyline{line}, r.lineWidth(c.Line.Width), col)
}

func points(lines []polyline) [][]fpoint {
	out := make([][]fpoint, len(lines))
	for i, l := range lines {
		out[i] = l.pts
	}
	return out
}
