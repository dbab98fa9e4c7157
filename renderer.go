package canvas

// FrameRenderer fills a frame. RenderFrame is called exactly once per
// presented frame and must not keep sink after it returns.
type FrameRenderer interface {
	RenderFrame(sink *PixelSink)
}

// RenderFunc adapts an ordinary function to FrameRenderer.
type RenderFunc func(sink *PixelSink)

// RenderFrame calls f(sink).
func (f RenderFunc) RenderFrame(sink *PixelSink) {
	f(sink)
}
