package render

// Extent describes the dimensions of a coordinate space. Field bounding
// boxes live in the source (raster pixel) extent; draw positions live in
// the page (PDF point) extent. The scaler is the only code that crosses
// between the two.
type Extent struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// BBox is a field's bounding box in source pixel space, origin top-left,
// y growing downward.
type BBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Field is one detected fillable region together with the value to render.
// Fields are caller-supplied and never mutated; input order is preserved.
type Field struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	BBox  BBox   `json:"bbox"`
	Value string `json:"value"`
}

// DrawPosition is a field's computed position in page point space,
// origin bottom-left. It is derived per request, never stored.
type DrawPosition struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	MaxWidth float64 `json:"maxWidth"`
}

// Mode identifies which rendering path produced the output document.
type Mode string

const (
	// ModeFields places each valid field at its scaled position.
	ModeFields Mode = "fields"
	// ModeList is the fallback: one "label: value" line per field from
	// the top of the page, used only when no field position is usable.
	ModeList Mode = "list"
)

// TemplateKind classifies a template payload.
type TemplateKind string

const (
	TemplateKindPDF  TemplateKind = "pdf"
	TemplateKindJPEG TemplateKind = "jpeg"
	TemplateKindPNG  TemplateKind = "png"
)

// Request Types
//
// The json tags on the render request/result mirror the wire contract the
// field-detection and UI collaborators already speak, hence camelCase.

// FormRenderRequest asks for a template to be rendered with field values.
type FormRenderRequest struct {
	TemplateBase64 string  `json:"templateBase64"`
	ImageWidth     float64 `json:"imageWidth"`
	ImageHeight    float64 `json:"imageHeight"`
	Fields         []Field `json:"fields"`
}

// TemplateInspectRequest asks for a template payload to be classified.
type TemplateInspectRequest struct {
	TemplateBase64 string `json:"templateBase64"`
}

// ServerInfoRequest asks for server information and usage guidance.
type ServerInfoRequest struct {
	// No parameters needed for server info
}

// Response Types

// FormRenderResult is the finished document plus render metadata.
type FormRenderResult struct {
	PDFBase64   string  `json:"pdfBase64"`
	Mode        string  `json:"mode"`
	FieldsDrawn int     `json:"fieldsDrawn"`
	PageWidth   float64 `json:"pageWidth"`
	PageHeight  float64 `json:"pageHeight"`
}

// TemplateInspectResult describes a template payload without rendering it.
type TemplateInspectResult struct {
	Kind        string  `json:"kind"`
	Readable    bool    `json:"readable"`
	PageCount   int     `json:"pageCount,omitempty"`
	PageWidth   float64 `json:"pageWidth,omitempty"`
	PageHeight  float64 `json:"pageHeight,omitempty"`
	ImageWidth  int     `json:"imageWidth,omitempty"`
	ImageHeight int     `json:"imageHeight,omitempty"`
	SizeBytes   int     `json:"sizeBytes"`
	Message     string  `json:"message,omitempty"`
}

// ToolInfo describes an available tool for the server info response.
type ToolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Usage       string `json:"usage"`
	Parameters  string `json:"parameters"`
}

// ServerInfoResult carries server information and usage guidance.
type ServerInfoResult struct {
	ServerName     string     `json:"server_name"`
	Version        string     `json:"version"`
	MaxRequestSize int64      `json:"max_request_size"`
	AvailableTools []ToolInfo `json:"available_tools"`
	UsageGuidance  string     `json:"usage_guidance"`
}
