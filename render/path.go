package render

import (
	"math"

	"github.com/tsawler/deckforge/model"
)

type fpoint struct{ X, Y float64 }

// kappa places cubic control points for a quarter ellipse.
const kappa = 0.5522847498

// curveSteps is how many line segments approximate one cubic curve.
const curveSteps = 16

// polyline is a flattened outline in pixel space.
type polyline struct {
	pts    []fpoint
	closed bool
}

// pathBuilder flattens straight and cubic segments into polylines.
type pathBuilder struct {
	lines []polyline
}

func (b *pathBuilder) moveTo(x, y float64) {
	b.lines = append(b.lines, polyline{pts: []fpoint{{x, y}}})
}

func (b *pathBuilder) lineTo(x, y float64) {
	cur := &b.lines[len(b.lines)-1]
	cur.pts = append(cur.pts, fpoint{x, y})
}

func (b *pathBuilder) cubeTo(x1, y1, x2, y2, x3, y3 float64) {
	cur := &b.lines[len(b.lines)-1]
	p0 := cur.pts[len(cur.pts)-1]
	for i := 1; i <= curveSteps; i++ {
		t := float64(i) / curveSteps
		u := 1 - t
		a, bb, c, d := u*u*u, 3*u*u*t, 3*u*t*t, t*t*t
		cur.pts = append(cur.pts, fpoint{
			X: a*p0.X + bb*x1 + c*x2 + d*x3,
			Y: a*p0.Y + bb*y1 + c*y2 + d*y3,
		})
	}
}

func (b *pathBuilder) close() {
	b.lines[len(b.lines)-1].closed = true
}

// geometryPath returns the outline of a preset geometry filling the pixel
// box (x, y, w, h). Unknown presets fall back to a rectangle.
func geometryPath(geom model.Geometry, x, y, w, h float64) []polyline {
	var b pathBuilder
	switch geom {
	case model.GeomEllipse:
		rx, ry := w/2, h/2
		cx, cy := x+rx, y+ry
		b.moveTo(cx+rx, cy)
		b.cubeTo(cx+rx, cy+ry*kappa, cx+rx*kappa, cy+ry, cx, cy+ry)
		b.cubeTo(cx-rx*kappa, cy+ry, cx-rx, cy+ry*kappa, cx-rx, cy)
		b.cubeTo(cx-rx, cy-ry*kappa, cx-rx*kappa, cy-ry, cx, cy-ry)
		b.cubeTo(cx+rx*kappa, cy-ry, cx+rx, cy-ry*kappa, cx+rx, cy)
	case model.GeomRoundRect:
		// Corner radius follows the preset default of 16.667% of the
		// shorter side.
		r := math.Min(w, h) * 0.16667
		k := r * kappa
		b.moveTo(x+r, y)
		b.lineTo(x+w-r, y)
		b.cubeTo(x+w-r+k, y, x+w, y+r-k, x+w, y+r)
		b.lineTo(x+w, y+h-r)
		b.cubeTo(x+w, y+h-r+k, x+w-r+k, y+h, x+w-r, y+h)
		b.lineTo(x+r, y+h)
		b.cubeTo(x+r-k, y+h, x, y+h-r+k, x, y+h-r)
		b.lineTo(x, y+r)
		b.cubeTo(x, y+r-k, x+r-k, y, x+r, y)
	case model.GeomRightArrow:
		// Preset defaults: the shaft is half the height and the head is
		// half the shorter side long.
		shaft := h * 0.5
		head := math.Min(w, h) * 0.5
		top := y + (h-shaft)/2
		bot := top + shaft
		neck := x + w - head
		b.moveTo(x, top)
		b.lineTo(neck, top)
		b.lineTo(neck, y)
		b.lineTo(x+w, y+h/2)
		b.lineTo(neck, y+h)
		b.lineTo(neck, bot)
		b.lineTo(x, bot)
	default:
		b.moveTo(x, y)
		b.lineTo(x+w, y)
		b.lineTo(x+w, y+h)
		b.lineTo(x, y+h)
	}
	b.close()
	return b.lines
}

// rotate turns every point by deg degrees clockwise about (cx, cy). Y grows
// downward, so a positive angle is clockwise on screen.
func rotate(lines []polyline, cx, cy, deg float64) []polyline {
	if math.Mod(deg, 360) == 0 {
		return lines
	}
	sin, cos := math.Sincos(deg * math.Pi / 180)
	out := make([]polyline, len(lines))
	for i, l := range lines {
		pts := make([]fpoint, len(l.pts))
		for j, p := range l.pts {
			dx, dy := p.X-cx, p.Y-cy
			pts[j] = fpoint{X: cx + dx*cos - dy*sin, Y: cy + dx*sin + dy*cos}
		}
		out[i] = polyline{pts: pts, closed: l.closed}
	}
	return out
}

// strokeQuads returns one quadrilateral per segment, each wound the same
// way so overlapping segments add coverage instead of cancelling.
func strokeQuads(l polyline, width float64) [][]fpoint {
	half := width / 2
	pts := l.pts
	if l.closed && len(pts) > 1 {
		pts = append(append([]fpoint(nil), pts...), pts[0])
	}
	var quads [][]fpoint
	for i := 0; i+1 < len(pts); i++ {
		a, b := pts[i], pts[i+1]
		dx, dy := b.X-a.X, b.Y-a.Y
		length := math.Hypot(dx, dy)
		if length == 0 {
			continue
		}
		// Extend each segment by half the width so joints and caps close.
		ux, uy := dx/length, dy/length
		nx, ny := -uy*half, ux*half
		a = fpoint{a.X - ux*half, a.Y - uy*half}
		b = fpoint{b.X + ux*half, b.Y + uy*half}
		q := []fpoint{
			{a.X + nx, a.Y + ny},
			{b.X + nx, b.Y + ny},
			{b.X - nx, b.Y - ny},
			{a.X - nx, a.Y - ny},
		}
		if signedArea(q) < 0 {
			q[1], q[3] = q[3], q[1]
		}
		quads = append(quads, q)
	}
	return quads
}

func signedArea(pts []fpoint) float64 {
	var a float64
	for i := range pts {
		p, q := pts[i], pts[(i+1)%len(pts)]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}
