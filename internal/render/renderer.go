package render

import (
	"fmt"

	"github.com/krishsharma1008/mcp-form-renderer/internal/render/canvas"
)

// Renderer draws field values onto a canvas. The mode decision is global
// per request: either at least one field has usable geometry and all valid
// fields are placed (invalid ones silently dropped), or none has and every
// field is listed from the top of the page instead. Partial placement plus
// partial listing is deliberately not a thing.
type Renderer struct{}

// NewRenderer creates a field renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render draws fields at their positions, falling back to the list layout
// when no position is valid. It returns the mode used and the number of
// text runs drawn.
func (r *Renderer) Render(c canvas.Canvas, fields []Field, positions []DrawPosition) (Mode, int, error) {
	if len(fields) != len(positions) {
		return "", 0, fmt.Errorf("fields/positions length mismatch: %d vs %d", len(fields), len(positions))
	}

	anyValid := false
	for _, p := range positions {
		if p.Valid() {
			anyValid = true
			break
		}
	}
	if !anyValid {
		return ModeList, len(fields), r.renderList(c, fields)
	}

	drawn := 0
	for i, f := range fields {
		if !positions[i].Valid() {
			continue
		}
		text := f.Value
		if text == "" {
			text = f.Label
		}
		if err := c.DrawText(positions[i].X, positions[i].Y, positions[i].MaxWidth, text); err != nil {
			return ModeFields, drawn, err
		}
		drawn++
	}
	return ModeFields, drawn, nil
}

// renderList ignores all bounding boxes and draws one "label: value" line
// per field in input order, stepping down from a fixed top margin.
func (r *Renderer) renderList(c canvas.Canvas, fields []Field) error {
	_, height := c.Extent()
	for i, f := range fields {
		y := height - listTopMargin - float64(i)*listLineHeight
		line := fmt.Sprintf("%s: %s", f.Label, f.Value)
		if err := c.DrawText(listLeftMargin, y, 0, line); err != nil {
			return err
		}
	}
	return nil
}
