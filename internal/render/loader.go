package render

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	"github.com/krishsharma1008/mcp-form-renderer/internal/render/canvas"
)

// pdfMarker is the ASCII magic at the start of every PDF document.
var pdfMarker = []byte("%PDF")

// imageProbe is one entry in the ordered decode attempt list. First
// successful probe wins; the order is fixed at JPEG then PNG.
type imageProbe struct {
	kind       TemplateKind
	fpdfFormat string
	decode     func(r *bytes.Reader) (image.Config, error)
}

var imageProbes = []imageProbe{
	{TemplateKindJPEG, "JPEG", func(r *bytes.Reader) (image.Config, error) { return jpeg.DecodeConfig(r) }},
	{TemplateKindPNG, "PNG", func(r *bytes.Reader) (image.Config, error) { return png.DecodeConfig(r) }},
}

// Loader classifies a template payload and produces a single-page canvas.
// It performs no disk or network I/O and holds no per-request state.
type Loader struct{}

// NewLoader creates a template loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load turns raw template bytes into a drawing canvas plus the effective
// source extent. A payload starting with %PDF (after leading whitespace)
// always takes the existing-document path, even if the rest is garbage;
// anything else must decode as JPEG or PNG. For images the decoded pixel
// size overrides the caller's claimed extent, because downstream bounding
// boxes are computed against the true pixel grid, not the claim. For
// documents the claimed extent passes through untouched.
func (l *Loader) Load(data []byte, claimed Extent) (canvas.Canvas, Extent, error) {
	if len(data) == 0 {
		return nil, Extent{}, &RequestError{Kind: KindBadTemplate, Op: "load", Err: fmt.Errorf("empty template payload")}
	}

	if IsPDFTemplate(data) {
		c, err := canvas.NewDocumentCanvas(data)
		if err != nil {
			return nil, Extent{}, &RequestError{Kind: KindBadTemplate, Op: "load", Err: err}
		}
		return c, claimed, nil
	}

	kind, cfg, err := probeImage(data)
	if err != nil {
		return nil, Extent{}, &RequestError{Kind: KindBadTemplate, Op: "load", Err: err}
	}

	src := Extent{Width: float64(cfg.Width), Height: float64(cfg.Height)}
	c, err := canvas.NewImageCanvas(data, fpdfFormat(kind), src.Width, src.Height)
	if err != nil {
		return nil, Extent{}, &RequestError{Kind: KindBadTemplate, Op: "load", Err: err}
	}
	return c, src, nil
}

// IsPDFTemplate reports whether the payload carries the PDF magic marker.
func IsPDFTemplate(data []byte) bool {
	return bytes.HasPrefix(bytes.TrimLeft(data, " \t\r\n\f"), pdfMarker)
}

// probeImage runs the ordered JPEG-then-PNG header probe, short-circuiting
// on the first decoder that accepts the payload.
func probeImage(data []byte) (TemplateKind, image.Config, error) {
	for _, p := range imageProbes {
		cfg, err := p.decode(bytes.NewReader(data))
		if err == nil {
			return p.kind, cfg, nil
		}
	}
	return "", image.Config{}, fmt.Errorf("template is neither a PDF nor a decodable JPEG/PNG image")
}

func fpdfFormat(kind TemplateKind) string {
	for _, p := range imageProbes {
		if p.kind == kind {
			return p.fpdfFormat
		}
	}
	return ""
}
