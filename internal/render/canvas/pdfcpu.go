package canvas

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// firstPage selects page 1 for trim and stamp operations.
var firstPage = []string{"1"}

// DocumentCanvas draws onto the first page of an existing PDF by applying
// positioned text stamps. The document is held serialized between draws;
// each DrawText is a full read-stamp-write cycle, which keeps the canvas
// free of library state and is cheap at form-field counts.
type DocumentCanvas struct {
	data   []byte
	width  float64
	height float64
	conf   *model.Configuration
}

// NewDocumentCanvas parses an existing PDF, reads the first page's
// dimensions and trims the document down to that single page.
func NewDocumentCanvas(data []byte) (*DocumentCanvas, error) {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	ctx, err := api.ReadContext(bytes.NewReader(data), conf)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	if err := ctx.EnsurePageCount(); err != nil {
		return nil, fmt.Errorf("resolve page tree: %w", err)
	}
	if ctx.PageCount < 1 {
		return nil, errors.New("document has no pages")
	}

	dims, err := ctx.PageDims()
	if err != nil || len(dims) == 0 {
		return nil, fmt.Errorf("read page dimensions: %w", err)
	}

	out := data
	if ctx.PageCount > 1 {
		var buf bytes.Buffer
		if err := api.Trim(bytes.NewReader(data), &buf, firstPage, conf); err != nil {
			return nil, fmt.Errorf("trim to first page: %w", err)
		}
		out = buf.Bytes()
	}

	return &DocumentCanvas{
		data:   out,
		width:  dims[0].Width,
		height: dims[0].Height,
		conf:   conf,
	}, nil
}

func (c *DocumentCanvas) Extent() (float64, float64) {
	return c.width, c.height
}

// DrawText stamps a single line of text with its anchor at (x, y) points
// from the page's bottom-left corner. The stamp primitive does not wrap,
// so maxWidth is not enforced on this backend.
func (c *DocumentCanvas) DrawText(x, y, _ float64, text string) error {
	if text == "" {
		return nil
	}

	desc := fmt.Sprintf(
		"fontname:%s, points:%d, scalefactor:1 abs, position:bl, offset:%.2f %.2f, rotation:0, fillcolor:#000000, opacity:1",
		canvasFontFamily, int(canvasFontSize), x, y)

	wm, err := api.TextWatermark(text, desc, true, false, types.POINTS)
	if err != nil {
		return fmt.Errorf("build text stamp: %w", err)
	}

	var buf bytes.Buffer
	if err := api.AddWatermarks(bytes.NewReader(c.data), &buf, firstPage, wm, c.conf); err != nil {
		return fmt.Errorf("apply text stamp: %w", err)
	}
	c.data = buf.Bytes()
	return nil
}

func (c *DocumentCanvas) Bytes() ([]byte, error) {
	return c.data, nil
}

func (c *DocumentCanvas) Backend() Backend {
	return BackendPDFCPU
}
