package canvas

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

const (
	canvasFontFamily = "Helvetica"
	canvasFontSize   = 12.0
	// wrapLeading is the baseline step for continuation lines when text
	// wraps within a field's maxWidth.
	wrapLeading = 14.0

	templateImageName = "template"
)

// ImageCanvas wraps a freshly created single-page document whose page is
// sized to the template raster at one point per pixel, with the image
// drawn full-bleed at the origin.
type ImageCanvas struct {
	doc    *fpdf.Fpdf
	width  float64
	height float64
}

// NewImageCanvas builds a page around decoded JPEG or PNG bytes. format is
// the fpdf image type string ("JPEG" or "PNG"); width and height are the
// image's true pixel dimensions.
func NewImageCanvas(data []byte, format string, width, height float64) (*ImageCanvas, error) {
	doc := fpdf.NewCustom(&fpdf.InitType{
		UnitStr: "pt",
		Size:    fpdf.SizeType{Wd: width, Ht: height},
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()

	opts := fpdf.ImageOptions{ImageType: format, ReadDpi: false}
	doc.RegisterImageOptionsReader(templateImageName, opts, bytes.NewReader(data))
	if doc.Err() {
		return nil, fmt.Errorf("embed template image: %w", doc.Error())
	}
	doc.ImageOptions(templateImageName, 0, 0, width, height, false, opts, 0, "")

	doc.SetFont(canvasFontFamily, "", canvasFontSize)
	if doc.Err() {
		return nil, fmt.Errorf("prepare page: %w", doc.Error())
	}

	return &ImageCanvas{doc: doc, width: width, height: height}, nil
}

func (c *ImageCanvas) Extent() (float64, float64) {
	return c.width, c.height
}

// DrawText places the baseline at (x, y) in bottom-origin coordinates.
// fpdf's native origin is top-left, so y is flipped here and nowhere else.
func (c *ImageCanvas) DrawText(x, y, maxWidth float64, text string) error {
	if text == "" {
		return nil
	}

	top := c.height - y
	if maxWidth > 0 {
		for i, line := range c.doc.SplitText(text, maxWidth) {
			c.doc.Text(x, top+float64(i)*wrapLeading, line)
		}
	} else {
		c.doc.Text(x, top, text)
	}

	if c.doc.Err() {
		return fmt.Errorf("draw text: %w", c.doc.Error())
	}
	return nil
}

func (c *ImageCanvas) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := c.doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("serialize document: %w", err)
	}
	return buf.Bytes(), nil
}

func (c *ImageCanvas) Backend() Backend {
	return BackendFPDF
}
