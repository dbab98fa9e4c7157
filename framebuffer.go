package canvas

import (
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
)

// FrameBuffer is the backing buffer a surface presents. Pixels are stored
// row-major from the top-left corner, BytesPerPixel bytes each, in the
// configured Format. Unlike a PixelSink, a FrameBuffer is owned storage and
// lives until it is resized.
type FrameBuffer struct {
	pix    []byte
	w, h   int
	format Format
}

// NewFrameBuffer allocates a zeroed buffer of the given size. Non-positive
// sizes produce an empty buffer.
func NewFrameBuffer(w, h int, format Format) *FrameBuffer {
	fb := &FrameBuffer{format: format}
	if w > 0 && h > 0 {
		fb.w, fb.h = w, h
		fb.pix = make([]byte, w*h*BytesPerPixel)
	}
	return fb
}

// Width returns the buffer width in pixels.
func (fb *FrameBuffer) Width() int {
	return fb.w
}

// Height returns the buffer height in pixels.
func (fb *FrameBuffer) Height() int {
	return fb.h
}

// Size returns the buffer width and height in pixels.
func (fb *FrameBuffer) Size() (width, height int) {
	return fb.w, fb.h
}

// Format returns the pixel storage format.
func (fb *FrameBuffer) Format() Format {
	return fb.format
}

// Buffer returns the live pixel bytes. The slice is invalidated by Resize.
func (fb *FrameBuffer) Buffer() []byte {
	return fb.pix
}

// Resize reallocates the buffer for the new size. Contents are cleared.
// Resizing to the current size keeps the buffer as is.
func (fb *FrameBuffer) Resize(w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, w, h)
	}
	if w == fb.w && h == fb.h {
		return nil
	}
	fb.w, fb.h = w, h
	fb.pix = make([]byte, w*h*BytesPerPixel)
	return nil
}

// Clear zeroes every pixel.
func (fb *FrameBuffer) Clear() {
	clear(fb.pix)
}

// Word returns the stored 32-bit word of the pixel at top-left coordinate
// (x, y). For PackedRGB this is (R<<16)|(G<<8)|B.
func (fb *FrameBuffer) Word(x, y int) uint32 {
	if x < 0 || x >= fb.w || y < 0 || y >= fb.h {
		return 0
	}
	return binary.LittleEndian.Uint32(fb.pix[(y*fb.w+x)*BytesPerPixel:])
}

// ColorModel implements image.Image.
func (fb *FrameBuffer) ColorModel() color.Model {
	return color.NRGBAModel
}

// Bounds implements image.Image.
func (fb *FrameBuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, fb.w, fb.h)
}

// At implements image.Image. PackedRGB pixels report full opacity since the
// format does not store alpha.
func (fb *FrameBuffer) At(x, y int) color.Color {
	if x < 0 || x >= fb.w || y < 0 || y >= fb.h {
		return color.NRGBA{}
	}
	i := (y*fb.w + x) * BytesPerPixel
	if fb.format == PlanarRGBA {
		return color.NRGBA{R: fb.pix[i], G: fb.pix[i+1], B: fb.pix[i+2], A: fb.pix[i+3]}
	}
	word := binary.LittleEndian.Uint32(fb.pix[i:])
	return color.NRGBA{R: uint8(word >> 16), G: uint8(word >> 8), B: uint8(word), A: 0xff}
}
