package canvas

// Surface is the presentation collaborator a Loop draws into. It owns the
// backing buffer and turns it into visible pixels on Present.
type Surface interface {
	// Buffer returns the live backing buffer for the current size.
	Buffer() []byte
	// Size returns the current buffer size in pixels.
	Size() (width, height int)
	// Resize changes the buffer and the presentable area together.
	Resize(width, height int) error
	// Present displays the buffer. Any error is fatal to the Loop.
	Present() error
}

// MemorySurface is a headless Surface. Present copies the buffer so callers
// can inspect the last presented frame.
type MemorySurface struct {
	*FrameBuffer

	presents int
	last     []byte
	failNext error
}

// NewMemorySurface creates a headless surface of the given size and format.
func NewMemorySurface(w, h int, format Format) *MemorySurface {
	return &MemorySurface{FrameBuffer: NewFrameBuffer(w, h, format)}
}

// Present records a copy of the buffer. If FailPresent was called, the
// stored error is returned once instead.
func (s *MemorySurface) Present() error {
	if err := s.failNext; err != nil {
		s.failNext = nil
		return err
	}
	s.last = append(s.last[:0], s.pix...)
	s.presents++
	return nil
}

// FailPresent makes the next Present return err.
func (s *MemorySurface) FailPresent(err error) {
	s.failNext = err
}

// Presents returns the number of successful presents.
func (s *MemorySurface) Presents() int {
	return s.presents
}

// LastFrame returns the bytes of the last presented frame. The slice is
// reused by the next Present.
func (s *MemorySurface) LastFrame() []byte {
	return s.last
}
