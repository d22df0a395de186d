package render

import "math"

// Layout constants, all in PDF points.
const (
	// boxPadding insets text from a box's left edge.
	boxPadding = 2.0
	// baselineInset drops the text baseline below a box's top edge so a
	// single line sits inside the box rather than above it.
	baselineInset = 12.0
	// List-mode layout: fixed top margin, per-line step and left margin.
	listTopMargin  = 20.0
	listLineHeight = 14.0
	listLeftMargin = 10.0
)

// Scale maps a field's bounding box from source pixel space (origin
// top-left, y-down) into page point space (origin bottom-left, y-up).
// It always returns a position; callers consult Valid before drawing.
func Scale(f Field, src, page Extent) DrawPosition {
	scaleX := page.Width / src.Width
	scaleY := page.Height / src.Height

	return DrawPosition{
		X:        f.BBox.X*scaleX + boxPadding,
		Y:        page.Height - f.BBox.Y*scaleY - baselineInset,
		MaxWidth: f.BBox.Width*scaleX - 2*boxPadding,
	}
}

// Valid reports whether the position can be drawn. A zero source extent or
// a non-numeric bbox coordinate propagates Inf/NaN through the scale math,
// which is the only signal of unusable geometry.
func (p DrawPosition) Valid() bool {
	return isFinite(p.X) && isFinite(p.Y)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
