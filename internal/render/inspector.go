package render

import (
	"bytes"

	ledongthuc "github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Inspector classifies template payloads without rendering them. It is the
// cheap pre-flight the UI runs while the user is still dragging boxes.
type Inspector struct {
	maxRequestSize int64
}

// NewInspector creates a template inspector.
func NewInspector(maxRequestSize int64) *Inspector {
	return &Inspector{maxRequestSize: maxRequestSize}
}

// Inspect reports a payload's kind and dimensions. Classification mirrors
// the loader exactly: the %PDF marker routes to the document path, all
// else runs the JPEG-then-PNG probe. Unreadable payloads yield a result
// with Readable=false rather than an error, so the caller can show a
// verdict instead of a failure.
func (i *Inspector) Inspect(data []byte) (*TemplateInspectResult, error) {
	result := &TemplateInspectResult{SizeBytes: len(data)}

	if IsPDFTemplate(data) {
		i.inspectDocument(data, result)
		return result, nil
	}

	kind, cfg, err := probeImage(data)
	if err != nil {
		result.Kind = "unknown"
		result.Message = err.Error()
		return result, nil
	}

	result.Kind = string(kind)
	result.Readable = true
	result.ImageWidth = cfg.Width
	result.ImageHeight = cfg.Height
	// One point per pixel once a page is built around the image.
	result.PageCount = 1
	result.PageWidth = float64(cfg.Width)
	result.PageHeight = float64(cfg.Height)
	return result, nil
}

func (i *Inspector) inspectDocument(data []byte, result *TemplateInspectResult) {
	result.Kind = string(TemplateKindPDF)

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	ctx, err := api.ReadContext(bytes.NewReader(data), conf)
	if err != nil {
		result.Message = "document carries the PDF marker but does not parse"
		return
	}
	if err := ctx.EnsurePageCount(); err != nil || ctx.PageCount < 1 {
		result.Message = "document has no resolvable pages"
		return
	}

	result.PageCount = ctx.PageCount
	if dims, err := ctx.PageDims(); err == nil && len(dims) > 0 {
		result.PageWidth = dims[0].Width
		result.PageHeight = dims[0].Height
	}

	// Second opinion from a different parser; some documents parse under
	// pdfcpu's relaxed mode but trip up lighter readers.
	result.Readable = i.crossCheck(data)
	if !result.Readable {
		result.Message = "document parses but may not be broadly readable"
	}
}

func (i *Inspector) crossCheck(data []byte) bool {
	r, err := ledongthuc.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return false
	}
	return r.NumPage() >= 1
}
