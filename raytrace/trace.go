package raytrace

import (
	"math"

	"github.com/phanxgames/canvas"
)

// RenderFrame advances animations by one step and traces one ray per pixel
// of sink, covering its whole extent.
func (s *Scene) RenderFrame(sink *canvas.PixelSink) {
	s.advance()

	w, h := float64(sink.Width()), float64(sink.Height())
	minX, minY, maxX, maxY := sink.Extent()
	for y := maxY; y >= minY; y-- {
		for x := minX; x <= maxX; x++ {
			d := s.canvasToViewport(float64(x), float64(y), w, h)
			_ = sink.WritePixel(x, y, s.TraceRay(d, 1, math.Inf(1)))
		}
	}
}

// canvasToViewport maps a centered canvas coordinate onto the viewport plane.
func (s *Scene) canvasToViewport(cx, cy, w, h float64) V3 {
	return V3{
		X: cx * s.Viewport.Width / w,
		Y: cy * s.Viewport.Height / h,
		Z: s.Viewport.Distance,
	}
}

// TraceRay returns the color seen along direction d from the scene origin,
// considering hits with parameter t in [tMin, tMax].
func (s *Scene) TraceRay(d V3, tMin, tMax float64) canvas.RGBA {
	closest := math.Inf(1)
	var hit *Sphere
	for i := range s.Spheres {
		sp := &s.Spheres[i]
		t1, t2, ok := intersectRaySphere(s.Origin, d, sp)
		if !ok {
			continue
		}
		if t1 >= tMin && t1 <= tMax && t1 < closest {
			closest, hit = t1, sp
		}
		if t2 >= tMin && t2 <= tMax && t2 < closest {
			closest, hit = t2, sp
		}
	}
	if hit == nil {
		return s.Background
	}

	p := s.Origin.Add(d.Mul(closest))
	n := p.Sub(hit.Center).Normalize()
	return shade(hit.Color, s.lighting(p, n))
}

// intersectRaySphere solves |o + t*d - c| = r for t. ok is false when the
// ray misses.
func intersectRaySphere(o, d V3, sp *Sphere) (t1, t2 float64, ok bool) {
	co := o.Sub(sp.Center)
	a := d.Dot(d)
	b := 2 * co.Dot(d)
	c := co.Dot(co) - sp.Radius*sp.Radius

	disc := b*b - 4*a*c
	if disc < 0 || a == 0 {
		return 0, 0, false
	}
	sq := math.Sqrt(disc)
	return (-b + sq) / (2 * a), (-b - sq) / (2 * a), true
}

// lighting sums the diffuse contribution of every light at point p with
// surface normal n.
func (s *Scene) lighting(p, n V3) float64 {
	var total float64
	for _, l := range s.Lights {
		if l.Type == Ambient {
			total += l.Intensity
			continue
		}
		dir := l.Direction
		if l.Type == Point {
			dir = l.Position.Sub(p)
		}
		nDotL := n.Dot(dir)
		if nDotL > 0 {
			total += l.Intensity * nDotL / (n.Len() * dir.Len())
		}
	}
	return total
}

// shade scales the color channels by intensity, clamped to [0, 255]. Alpha
// is left alone so planar frames stay opaque in shadow.
func shade(c canvas.RGBA, intensity float64) canvas.RGBA {
	return canvas.RGBA{
		R: scaleChannel(c.R, intensity),
		G: scaleChannel(c.G, intensity),
		B: scaleChannel(c.B, intensity),
		A: c.A,
	}
}

func scaleChannel(v uint8, t float64) uint8 {
	f := float64(v) * t
	switch {
	case f <= 0 || math.IsNaN(f):
		return 0
	case f >= 255:
		return 255
	}
	return uint8(f)
}
