package overlap

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float32 fields on a [Sprite] simultaneously.
// Create one via the convenience constructors (TweenSpritePosition,
// TweenSpriteSize, TweenSpriteRotation) and call Update(dt) each frame.
//
// There is no global animation manager; callers drive Update themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	apply  [4]func(float32)
	count  int
	Done   bool
}

// Update advances all tweens by dt seconds and writes the values to their
// target fields. Once every tween has finished, Done is set and further
// calls are no-ops.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		g.apply[i](val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// TweenSpritePosition creates a TweenGroup that animates the sprite's X and
// Y to the given coordinates over the specified duration using the easing
// function.
func TweenSpritePosition(s *Sprite, toX, toY float32, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2}
	g.tweens[0] = gween.New(s.X, toX, duration, fn)
	g.tweens[1] = gween.New(s.Y, toY, duration, fn)
	g.apply[0] = func(v float32) { s.X = v }
	g.apply[1] = func(v float32) { s.Y = v }
	return g
}

// TweenSpriteSize creates a TweenGroup that animates the sprite's display
// width and height to the given values over the specified duration using
// the easing function. The collision footprint follows the display size.
func TweenSpriteSize(s *Sprite, toW, toH float32, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2}
	g.tweens[0] = gween.New(s.W, toW, duration, fn)
	g.tweens[1] = gween.New(s.H, toH, duration, fn)
	g.apply[0] = func(v float32) { s.W = v }
	g.apply[1] = func(v float32) { s.H = v }
	return g
}

// TweenSpriteRotation creates a TweenGroup that animates the sprite's
// rotation to the given angle over the specified duration using the easing
// function.
func TweenSpriteRotation(s *Sprite, to Angle, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1}
	g.tweens[0] = gween.New(float32(s.Angle), float32(to), duration, fn)
	g.apply[0] = func(v float32) { s.Angle = Angle(v) }
	return g
}
