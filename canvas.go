package canvas

import (
	"errors"
	"fmt"
)

// BytesPerPixel is the storage size of one pixel in every supported Format.
const BytesPerPixel = 4

// RGBA is an 8-bit-per-channel color passed by value to PixelSink.WritePixel.
// Not premultiplied.
type RGBA struct {
	R, G, B, A uint8
}

// Packed returns the color as a single 32-bit word laid out as
// (unused, R, G, B). Alpha is discarded and the top byte is zero.
func (c RGBA) Packed() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Format selects how an RGBA value is stored in the backing buffer. It is
// chosen once per Loop and never inferred per pixel.
type Format uint8

const (
	PackedRGB  Format = iota // one 32-bit word (R<<16)|(G<<8)|B, alpha dropped
	PlanarRGBA               // four bytes R, G, B, A in order, alpha kept
)

var formatNames = [...]string{
	PackedRGB:  "packed-rgb",
	PlanarRGBA: "planar-rgba",
}

// String returns the configuration name of the format.
func (f Format) String() string {
	if int(f) < len(formatNames) {
		return formatNames[f]
	}
	return fmt.Sprintf("Format(%d)", uint8(f))
}

// MarshalText implements encoding.TextMarshaler.
func (f Format) MarshalText() ([]byte, error) {
	if int(f) >= len(formatNames) {
		return nil, fmt.Errorf("canvas: unknown format %d", uint8(f))
	}
	return []byte(formatNames[f]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Format) UnmarshalText(text []byte) error {
	for i, name := range formatNames {
		if name == string(text) {
			*f = Format(i)
			return nil
		}
	}
	return fmt.Errorf("canvas: unknown format %q", text)
}

// BoundsPolicy decides what PixelSink.WritePixel does with a coordinate that
// translates to a location outside the buffer. No policy ever writes there.
type BoundsPolicy uint8

const (
	DropOutOfRange   BoundsPolicy = iota // silently discard the write
	ReportOutOfRange                     // discard and return an ErrOutOfRange error
)

var policyNames = [...]string{
	DropOutOfRange:   "drop",
	ReportOutOfRange: "report",
}

// String returns the configuration name of the policy.
func (p BoundsPolicy) String() string {
	if int(p) < len(policyNames) {
		return policyNames[p]
	}
	return fmt.Sprintf("BoundsPolicy(%d)", uint8(p))
}

// MarshalText implements encoding.TextMarshaler.
func (p BoundsPolicy) MarshalText() ([]byte, error) {
	if int(p) >= len(policyNames) {
		return nil, fmt.Errorf("canvas: unknown bounds policy %d", uint8(p))
	}
	return []byte(policyNames[p]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *BoundsPolicy) UnmarshalText(text []byte) error {
	for i, name := range policyNames {
		if name == string(text) {
			*p = BoundsPolicy(i)
			return nil
		}
	}
	return fmt.Errorf("canvas: unknown bounds policy %q", text)
}

var (
	// ErrOutOfRange is returned by WritePixel under ReportOutOfRange when the
	// translated address falls outside the buffer.
	ErrOutOfRange = errors.New("canvas: pixel out of range")

	// ErrSinkReleased is returned by WritePixel under ReportOutOfRange when the
	// sink is used after its frame ended.
	ErrSinkReleased = errors.New("canvas: pixel sink used after frame")

	// ErrPresent wraps a failure to display the submitted buffer. Fatal.
	ErrPresent = errors.New("canvas: present failed")

	// ErrSurfaceInit wraps a failure to construct the window or surface. Fatal.
	ErrSurfaceInit = errors.New("canvas: surface init failed")

	// ErrBufferSize reports a surface buffer smaller than its declared size.
	ErrBufferSize = errors.New("canvas: buffer smaller than surface size")

	// ErrInvalidSize reports a non-positive width or height.
	ErrInvalidSize = errors.New("canvas: invalid size")
)
