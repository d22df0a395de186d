package canvas

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 240, G: 240, B: 240, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func newTestImageCanvas(t *testing.T, w, h int) *ImageCanvas {
	t.Helper()
	c, err := NewImageCanvas(encodePNG(t, w, h), "PNG", float64(w), float64(h))
	require.NoError(t, err)
	return c
}

func TestImageCanvas_Extent(t *testing.T) {
	c := newTestImageCanvas(t, 300, 200)

	w, h := c.Extent()
	assert.Equal(t, 300.0, w)
	assert.Equal(t, 200.0, h)
	assert.Equal(t, BackendFPDF, c.Backend())
}

func TestImageCanvas_BytesIsPDF(t *testing.T) {
	c := newTestImageCanvas(t, 100, 100)
	require.NoError(t, c.DrawText(10, 50, 80, "hello"))

	data, err := c.Bytes()
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestImageCanvas_DrawText(t *testing.T) {
	c := newTestImageCanvas(t, 200, 200)

	assert.NoError(t, c.DrawText(10, 100, 0, "unwrapped run"))
	assert.NoError(t, c.DrawText(10, 80, 40, "a longer run that must wrap onto several lines"))
	assert.NoError(t, c.DrawText(10, 60, 100, ""))

	_, err := c.Bytes()
	assert.NoError(t, err)
}

func TestImageCanvas_BadImageData(t *testing.T) {
	_, err := NewImageCanvas([]byte("not an image"), "PNG", 100, 100)
	assert.Error(t, err)
}

func TestDocumentCanvas_FromRenderedPage(t *testing.T) {
	src := newTestImageCanvas(t, 400, 300)
	data, err := src.Bytes()
	require.NoError(t, err)

	c, err := NewDocumentCanvas(data)
	require.NoError(t, err)

	w, h := c.Extent()
	assert.InDelta(t, 400, w, 1)
	assert.InDelta(t, 300, h, 1)
	assert.Equal(t, BackendPDFCPU, c.Backend())
}

func TestDocumentCanvas_StampAndSerialize(t *testing.T) {
	src := newTestImageCanvas(t, 612, 792)
	data, err := src.Bytes()
	require.NoError(t, err)

	c, err := NewDocumentCanvas(data)
	require.NoError(t, err)

	require.NoError(t, c.DrawText(102, 688, 296, "Rahul"))
	require.NoError(t, c.DrawText(102, 640, 296, "Pune"))
	require.NoError(t, c.DrawText(10, 600, 0, ""))

	out, err := c.Bytes()
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))

	// The stamped output must still parse as a one-page document.
	again, err := NewDocumentCanvas(out)
	require.NoError(t, err)
	w, h := again.Extent()
	assert.InDelta(t, 612, w, 1)
	assert.InDelta(t, 792, h, 1)
}

func TestDocumentCanvas_GarbageInput(t *testing.T) {
	_, err := NewDocumentCanvas([]byte("%PDF-1.4 truncated nonsense"))
	assert.Error(t, err)
}
