// Package canvas provides single-page drawing surfaces backed by different
// PDF libraries. Image templates get a page built from scratch with fpdf;
// existing documents are stamped in place with pdfcpu. Both speak the same
// bottom-left-origin point coordinates.
package canvas

// Backend identifies the PDF library behind a canvas.
type Backend string

const (
	BackendFPDF   Backend = "fpdf"
	BackendPDFCPU Backend = "pdfcpu"
)

// Canvas is a single-page drawing surface in PDF point space. The origin
// is the page's bottom-left corner; y grows upward. DrawText positions the
// text baseline at (x, y). A positive maxWidth bounds line width where the
// backend supports wrapping; zero or negative means draw unwrapped.
type Canvas interface {
	// Extent returns the page size in points.
	Extent() (width, height float64)
	// DrawText draws a left-aligned run of text at the given position.
	DrawText(x, y, maxWidth float64, text string) error
	// Bytes serializes the finished document. Call it once, after all
	// drawing is done.
	Bytes() ([]byte, error)
	// Backend identifies the library rendering this canvas.
	Backend() Backend
}
