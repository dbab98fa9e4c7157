package raytrace

import "math"

// V3 is a 3D vector or point in camera space. +y is up, +z points into the
// screen.
type V3 struct {
	X, Y, Z float64
}

// Add returns a+b.
func (a V3) Add(b V3) V3 { return V3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }

// Sub returns a-b.
func (a V3) Sub(b V3) V3 { return V3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }

// Mul returns a scaled by t.
func (a V3) Mul(t float64) V3 { return V3{a.X * t, a.Y * t, a.Z * t} }

// Div returns a divided by t.
func (a V3) Div(t float64) V3 { return V3{a.X / t, a.Y / t, a.Z / t} }

// Dot returns the dot product of a and b.
func (a V3) Dot(b V3) float64 { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

// Len returns the Euclidean length of a.
func (a V3) Len() float64 { return math.Sqrt(a.Dot(a)) }

// Normalize returns a scaled to unit length. The zero vector is returned
// unchanged.
func (a V3) Normalize() V3 {
	l := a.Len()
	if l == 0 {
		return a
	}
	return a.Div(l)
}
