// Package raytrace is a small sphere ray tracer that renders through a
// canvas.PixelSink. It exists to drive the canvas examples; the scene is
// described in Go, there is no file format.
package raytrace

import "github.com/phanxgames/canvas"

// LightType selects how a Light contributes to shading.
type LightType uint8

const (
	Ambient     LightType = iota // uniform contribution everywhere
	Point                        // radiates from Position
	Directional                  // arrives along Direction
)

// Light is a scene light source.
type Light struct {
	Type      LightType
	Intensity float64
	// Position is used by Point lights.
	Position V3
	// Direction points toward the light for Directional lights.
	Direction V3
}

// Sphere is a solid colored sphere.
type Sphere struct {
	Center V3
	Radius float64
	Color  canvas.RGBA
}

// Viewport is the projection plane, Width x Height units wide and Distance
// units in front of the camera.
type Viewport struct {
	Width, Height, Distance float64
}

// defaultFrameTime is the animation step per rendered frame (60 frames per
// second).
const defaultFrameTime = float32(1.0 / 60.0)

// Scene holds everything the tracer needs to render a frame.
type Scene struct {
	Viewport   Viewport
	Origin     V3
	Spheres    []Sphere
	Lights     []Light
	Background canvas.RGBA

	// FrameTime is how far animations advance per rendered frame, in
	// seconds. Zero means 1/60.
	FrameTime float32

	animations []*TweenGroup
}

// NewDefaultScene returns three colored spheres resting on a large yellow
// ground sphere, lit by ambient, point and directional lights against a
// white background.
func NewDefaultScene() *Scene {
	return &Scene{
		Viewport: Viewport{Width: 1, Height: 1, Distance: 1},
		Spheres: []Sphere{
			{Center: V3{0, -1, 3}, Radius: 1, Color: canvas.RGBA{R: 255, A: 255}},
			{Center: V3{2, 0, 4}, Radius: 1, Color: canvas.RGBA{B: 255, A: 255}},
			{Center: V3{-2, 0, 4}, Radius: 1, Color: canvas.RGBA{G: 255, A: 255}},
			{Center: V3{0, -5001, 0}, Radius: 5000, Color: canvas.RGBA{R: 255, G: 255, A: 255}},
		},
		Lights: []Light{
			{Type: Ambient, Intensity: 0.2},
			{Type: Point, Intensity: 0.6, Position: V3{2, 1, 0}},
			{Type: Directional, Intensity: 0.2, Direction: V3{1, 4, 4}},
		},
		Background: canvas.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
}

// Animate registers a tween group that advances by FrameTime before every
// rendered frame. Finished groups are dropped.
func (s *Scene) Animate(g *TweenGroup) {
	s.animations = append(s.animations, g)
}

// Animations returns the number of running tween groups.
func (s *Scene) Animations() int {
	return len(s.animations)
}

// advance steps every animation by one frame.
func (s *Scene) advance() {
	if len(s.animations) == 0 {
		return
	}
	dt := s.FrameTime
	if dt <= 0 {
		dt = defaultFrameTime
	}
	live := s.animations[:0]
	for _, g := range s.animations {
		g.Update(dt)
		if !g.Done {
			live = append(live, g)
		}
	}
	clear(s.animations[len(live):])
	s.animations = live
}
