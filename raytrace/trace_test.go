package raytrace

import (
	"math"
	"testing"

	"github.com/phanxgames/canvas"
)

func TestTraceRayBackground(t *testing.T) {
	s := NewDefaultScene()
	got := s.TraceRay(V3{-0.5, 0.5, 1}, 1, math.Inf(1))
	if got != s.Background {
		t.Errorf("TraceRay = %+v, want background %+v", got, s.Background)
	}
}

func TestTraceRayHitsSpheres(t *testing.T) {
	s := NewDefaultScene()
	tests := []struct {
		name    string
		d       V3
		r, g, b bool // which channels should be lit
	}{
		{"red sphere", V3{0, -0.5, 1}, true, false, false},
		{"green sphere", V3{-0.5, 0, 1}, false, true, false},
		{"blue sphere", V3{0.5, 0, 1}, false, false, true},
		{"yellow ground", V3{0.45, -0.45, 1}, true, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := s.TraceRay(tt.d, 1, math.Inf(1))
			if (c.R > 0) != tt.r || (c.G > 0) != tt.g || (c.B > 0) != tt.b {
				t.Errorf("TraceRay(%v) = %+v", tt.d, c)
			}
			if c.A != 255 {
				t.Errorf("alpha = %d, want 255", c.A)
			}
		})
	}
}

func TestIntersectRaySphere(t *testing.T) {
	sp := &Sphere{Center: V3{0, 0, 5}, Radius: 1}
	t1, t2, ok := intersectRaySphere(V3{}, V3{0, 0, 1}, sp)
	if !ok {
		t.Fatal("expected hit")
	}
	if math.Abs(t1-6) > 1e-9 || math.Abs(t2-4) > 1e-9 {
		t.Errorf("t1, t2 = %v, %v; want 6, 4", t1, t2)
	}
	if _, _, ok := intersectRaySphere(V3{}, V3{0, 1, 0}, sp); ok {
		t.Error("expected miss")
	}
}

func TestLightingAmbientOnly(t *testing.T) {
	s := &Scene{Lights: []Light{{Type: Ambient, Intensity: 0.25}}}
	if got := s.lighting(V3{}, V3{0, 1, 0}); got != 0.25 {
		t.Errorf("lighting = %v, want 0.25", got)
	}
}

func TestLightingFacingAway(t *testing.T) {
	s := &Scene{Lights: []Light{{Type: Directional, Intensity: 1, Direction: V3{0, -1, 0}}}}
	if got := s.lighting(V3{}, V3{0, 1, 0}); got != 0 {
		t.Errorf("lighting = %v, want 0 for a light behind the surface", got)
	}
}

func TestShadeClamps(t *testing.T) {
	c := shade(canvas.RGBA{R: 200, G: 100, B: 0, A: 7}, 2)
	want := canvas.RGBA{R: 255, G: 200, B: 0, A: 7}
	if c != want {
		t.Errorf("shade = %+v, want %+v", c, want)
	}
	if c := shade(canvas.RGBA{R: 200}, -1); c.R != 0 {
		t.Errorf("negative intensity R = %d, want 0", c.R)
	}
	if c := shade(canvas.RGBA{R: 200, A: 255}, 0.5); c.A != 255 || c.R != 100 {
		t.Errorf("dim shade = %+v, want R 100 with alpha 255", c)
	}
}

// countingScene counts sink writes while rendering the scene.
type countingScene struct {
	*Scene
	writes, dropped int
}

func (c *countingScene) RenderFrame(sink *canvas.PixelSink) {
	c.Scene.RenderFrame(sink)
	c.writes, c.dropped = sink.Writes(), sink.Dropped()
}

func TestRenderFrameCoversEveryPixel(t *testing.T) {
	sizes := [][2]int{{16, 16}, {15, 9}}
	for _, sz := range sizes {
		w, h := sz[0], sz[1]
		surface := canvas.NewMemorySurface(w, h, canvas.PlanarRGBA)
		cs := &countingScene{Scene: NewDefaultScene()}
		loop, err := canvas.NewLoop(surface, cs, canvas.LoopConfig{
			Format: canvas.PlanarRGBA,
			Policy: canvas.ReportOutOfRange,
		})
		if err != nil {
			t.Fatal(err)
		}
		if err := loop.HandleEvent(canvas.Event{Type: canvas.EventRedraw}); err != nil {
			t.Fatal(err)
		}
		if cs.writes != w*h || cs.dropped != 0 {
			t.Errorf("%dx%d: writes = %d, dropped = %d; want %d, 0", w, h, cs.writes, cs.dropped, w*h)
		}
		frame := surface.LastFrame()
		for i := 3; i < len(frame); i += 4 {
			if frame[i] != 255 {
				t.Fatalf("%dx%d: pixel %d alpha = %d, want 255", w, h, i/4, frame[i])
			}
		}
	}
}

func TestRenderFrameTopLeftIsBackground(t *testing.T) {
	surface := canvas.NewMemorySurface(16, 16, canvas.PackedRGB)
	loop, err := canvas.NewLoop(surface, NewDefaultScene(), canvas.LoopConfig{})
	if err != nil {
		t.Fatal(err)
	}
	if err := loop.HandleEvent(canvas.Event{Type: canvas.EventRedraw}); err != nil {
		t.Fatal(err)
	}
	if w := surface.Word(0, 0); w != 0xffffff {
		t.Errorf("top-left word = %#x, want 0xffffff", w)
	}
}
