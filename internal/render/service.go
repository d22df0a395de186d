package render

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Service orchestrates the loader, scaler and renderer for each request.
// Requests are independent; nothing is cached or shared between calls.
type Service struct {
	maxRequestSize int64
	loader         *Loader
	renderer       *Renderer
	inspector      *Inspector
}

// NewService creates a render service. maxRequestSize bounds the decoded
// template payload in bytes.
func NewService(maxRequestSize int64) *Service {
	return &Service{
		maxRequestSize: maxRequestSize,
		loader:         NewLoader(),
		renderer:       NewRenderer(),
		inspector:      NewInspector(maxRequestSize),
	}
}

// FormRender runs the full Loader -> Scaler -> Renderer pipeline and
// returns the finished single-page document base64-encoded.
func (s *Service) FormRender(req FormRenderRequest) (*FormRenderResult, error) {
	data, err := s.decodeTemplate(req.TemplateBase64)
	if err != nil {
		return nil, err
	}

	claimed := Extent{Width: req.ImageWidth, Height: req.ImageHeight}
	c, src, err := s.loader.Load(data, claimed)
	if err != nil {
		return nil, err
	}

	pageW, pageH := c.Extent()
	page := Extent{Width: pageW, Height: pageH}

	positions := make([]DrawPosition, len(req.Fields))
	for i, f := range req.Fields {
		positions[i] = Scale(f, src, page)
	}

	mode, drawn, err := s.renderer.Render(c, req.Fields, positions)
	if err != nil {
		return nil, &RequestError{Kind: KindInternal, Op: "render", Err: err}
	}

	out, err := c.Bytes()
	if err != nil {
		return nil, &RequestError{Kind: KindInternal, Op: "serialize", Err: err}
	}

	return &FormRenderResult{
		PDFBase64:   base64.StdEncoding.EncodeToString(out),
		Mode:        string(mode),
		FieldsDrawn: drawn,
		PageWidth:   pageW,
		PageHeight:  pageH,
	}, nil
}

// TemplateInspect classifies a template payload without rendering it.
func (s *Service) TemplateInspect(req TemplateInspectRequest) (*TemplateInspectResult, error) {
	data, err := s.decodeTemplate(req.TemplateBase64)
	if err != nil {
		return nil, err
	}
	return s.inspector.Inspect(data)
}

// GetMaxRequestSize returns the decoded payload size limit.
func (s *Service) GetMaxRequestSize() int64 {
	return s.maxRequestSize
}

// decodeTemplate decodes the base64 payload, tolerating a data-URL prefix
// the browser side sometimes leaves on, and enforces the size limit.
func (s *Service) decodeTemplate(encoded string) ([]byte, error) {
	if encoded == "" {
		return nil, &RequestError{Kind: KindEncoding, Op: "decode", Err: fmt.Errorf("template payload is empty")}
	}

	if strings.HasPrefix(encoded, "data:") {
		if idx := strings.IndexByte(encoded, ','); idx >= 0 {
			encoded = encoded[idx+1:]
		}
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, &RequestError{Kind: KindEncoding, Op: "decode", Err: err}
	}

	if s.maxRequestSize > 0 && int64(len(data)) > s.maxRequestSize {
		return nil, &RequestError{
			Kind: KindTooLarge,
			Op:   "decode",
			Err:  fmt.Errorf("template is %d bytes (max: %d bytes)", len(data), s.maxRequestSize),
		}
	}
	return data, nil
}
