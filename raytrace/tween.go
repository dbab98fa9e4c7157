package raytrace

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 scene fields simultaneously. Create
// one via the convenience constructors (TweenLightPosition, TweenIntensity,
// TweenSphereCenter) and either register it with Scene.Animate or call
// Update(dt) yourself.
//
// With Yoyo set, a finished group reverses and plays back toward its start
// values forever instead of finishing.
type TweenGroup struct {
	tweens   [4]*gween.Tween
	count    int
	fields   [4]*float64
	from     [4]float32
	to       [4]float32
	duration float32
	fn       ease.TweenFunc

	Yoyo bool
	Done bool
}

func newTweenGroup(duration float32, fn ease.TweenFunc, fields []*float64, targets []float64) *TweenGroup {
	g := &TweenGroup{count: len(fields), duration: duration, fn: fn}
	for i, f := range fields {
		g.fields[i] = f
		g.from[i] = float32(*f)
		g.to[i] = float32(targets[i])
		g.tweens[i] = gween.New(g.from[i], g.to[i], duration, fn)
	}
	return g
}

// Update advances all tweens by dt seconds and writes the values to the
// target fields.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	if !allDone {
		return
	}
	if !g.Yoyo {
		g.Done = true
		return
	}
	for i := 0; i < g.count; i++ {
		g.from[i], g.to[i] = g.to[i], g.from[i]
		g.tweens[i] = gween.New(g.from[i], g.to[i], g.duration, g.fn)
	}
}

// TweenLightPosition animates a point light's position to the target.
func TweenLightPosition(l *Light, to V3, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(duration, fn,
		[]*float64{&l.Position.X, &l.Position.Y, &l.Position.Z},
		[]float64{to.X, to.Y, to.Z})
}

// TweenIntensity animates a light's intensity to the target.
func TweenIntensity(l *Light, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(duration, fn, []*float64{&l.Intensity}, []float64{to})
}

// TweenSphereCenter animates a sphere's center to the target.
func TweenSphereCenter(sp *Sphere, to V3, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(duration, fn,
		[]*float64{&sp.Center.X, &sp.Center.Y, &sp.Center.Z},
		[]float64{to.X, to.Y, to.Z})
}
