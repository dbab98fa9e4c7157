package canvas

import (
	"encoding/binary"
	"fmt"
)

// pixelWriter stores c at pixel index off of pix. off is already bounds
// checked by the caller.
type pixelWriter func(pix []byte, off int, c RGBA)

func writePacked(pix []byte, off int, c RGBA) {
	binary.LittleEndian.PutUint32(pix[off*BytesPerPixel:], c.Packed())
}

func writePlanar(pix []byte, off int, c RGBA) {
	i := off * BytesPerPixel
	p := pix[i : i+4 : i+4]
	p[0] = c.R
	p[1] = c.G
	p[2] = c.B
	p[3] = c.A
}

// writer returns the pixel writer for the format. Unknown formats fall back
// to PackedRGB.
func (f Format) writer() pixelWriter {
	if f == PlanarRGBA {
		return writePlanar
	}
	return writePacked
}

// Offset translates a centered coordinate (origin in the middle, +x right,
// +y up) into a linear pixel index of a top-left-origin, row-major buffer of
// the given size. ok is false when either axis lands outside the buffer.
//
// Division truncates toward zero, so on even sizes the centered range is
// [-width/2, width/2) horizontally and (-height/2, height/2] vertically.
func Offset(x, y, width, height int32) (offset int, ok bool) {
	w, h := int(width), int(height)
	bx := w/2 + int(x)
	by := h/2 - int(y)
	if bx < 0 || bx >= w || by < 0 || by >= h {
		return 0, false
	}
	return by*w + bx, true
}

// PixelSink is the per-frame view of the backing buffer handed to a
// FrameRenderer. It borrows the buffer for one RenderFrame call only: the
// Loop releases it when the call returns, after which every write is
// discarded. WritePixel is the only way to mutate the buffer through it.
//
// A PixelSink is not safe for concurrent use.
type PixelSink struct {
	pix    []byte
	width  int32
	height int32
	write  pixelWriter
	policy BoundsPolicy

	writes  int
	dropped int
}

func newPixelSink(pix []byte, width, height int32, write pixelWriter, policy BoundsPolicy) *PixelSink {
	return &PixelSink{
		pix:    pix,
		width:  width,
		height: height,
		write:  write,
		policy: policy,
	}
}

// Width returns the buffer width in pixels for this frame.
func (s *PixelSink) Width() int32 { return s.width }

// Height returns the buffer height in pixels for this frame.
func (s *PixelSink) Height() int32 { return s.height }

// Extent returns the inclusive range of centered coordinates that map into
// the buffer.
func (s *PixelSink) Extent() (minX, minY, maxX, maxY int32) {
	minX = -(s.width / 2)
	maxX = s.width - s.width/2 - 1
	maxY = s.height / 2
	minY = maxY - s.height + 1
	return minX, minY, maxX, maxY
}

// WritePixel stores c at the centered coordinate (x, y). Addresses outside
// the buffer are never written: they are dropped, and under ReportOutOfRange
// an error wrapping ErrOutOfRange is returned.
func (s *PixelSink) WritePixel(x, y int32, c RGBA) error {
	if s.pix == nil {
		s.dropped++
		if s.policy == ReportOutOfRange {
			return ErrSinkReleased
		}
		return nil
	}
	off, ok := Offset(x, y, s.width, s.height)
	if !ok {
		s.dropped++
		if s.policy == ReportOutOfRange {
			return fmt.Errorf("%w: (%d, %d) in %dx%d", ErrOutOfRange, x, y, s.width, s.height)
		}
		return nil
	}
	s.write(s.pix, off, c)
	s.writes++
	return nil
}

// Writes returns the number of pixels stored through this sink.
func (s *PixelSink) Writes() int { return s.writes }

// Dropped returns the number of writes discarded because they were out of
// range or arrived after release.
func (s *PixelSink) Dropped() int { return s.dropped }

// release detaches the sink from the backing buffer.
func (s *PixelSink) release() {
	s.pix = nil
}
