// Package canvas is a small frame buffer bridge for [Ebitengine].
//
// A presentation loop owns a pixel buffer, hands a per-frame [PixelSink] to a
// [FrameRenderer], then presents the buffer to a window. Renderers only see
// the sink: they address pixels in a centered coordinate system and call
// [PixelSink.WritePixel] for every pixel they want to set.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	renderer := canvas.RenderFunc(func(s *canvas.PixelSink) {
//		minX, minY, maxX, maxY := s.Extent()
//		for y := minY; y <= maxY; y++ {
//			for x := minX; x <= maxX; x++ {
//				s.WritePixel(x, y, canvas.RGBA{R: 255, A: 255})
//			}
//		}
//	})
//	cfg := canvas.DefaultRunConfig()
//	cfg.Title = "Red"
//	if err := canvas.Run(renderer, cfg); err != nil {
//		log.Fatal(err)
//	}
//
// For headless use, build a [Loop] over a [MemorySurface] and feed it events
// from an [EventQueue]:
//
//	surface := canvas.NewMemorySurface(512, 512, canvas.PlanarRGBA)
//	loop, err := canvas.NewLoop(surface, renderer, canvas.LoopConfig{Format: canvas.PlanarRGBA})
//	...
//	q := canvas.NewEventQueue()
//	q.PushRedraw(10)
//	err = loop.Run(ctx, q)
//
// # Coordinates
//
// (0, 0) is the middle of the buffer, +x is right and +y is up. A pixel at
// (x, y) lands at column width/2+x and row height/2-y of the row-major
// buffer, using Go's truncating integer division. [PixelSink.Extent]
// reports the exact coordinate range that maps into the buffer; see
// [Offset] for the translation itself.
//
// # Formats and bounds
//
// [PackedRGB] stores one 32-bit word (R<<16)|(G<<8)|B per pixel and drops
// alpha. [PlanarRGBA] stores the four bytes R, G, B, A. The format is fixed
// per loop.
//
// Writes that translate outside the buffer are never performed. Under
// [DropOutOfRange] they are silently discarded; under [ReportOutOfRange]
// WritePixel returns an error wrapping [ErrOutOfRange].
//
// # Lifetime
//
// A sink is valid only during the RenderFrame call it was passed to. After
// the call returns the loop detaches it from the buffer, so a renderer that
// keeps the sink cannot write into later frames.
//
// [Ebitengine]: https://ebitengine.org
package canvas
