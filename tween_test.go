package overlap

import (
	"image/color"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenSpritePosition(t *testing.T) {
	s := NewSolidSprite(10, 10, color.White)
	s.X, s.Y = 0, 0

	g := TweenSpritePosition(s, 100, 50, 1.0, ease.Linear)

	g.Update(0.5)
	assertNear(t, "X at midpoint", s.X, 50)
	assertNear(t, "Y at midpoint", s.Y, 25)
	if g.Done {
		t.Error("tween should not be done at the midpoint")
	}

	g.Update(0.5)
	assertNear(t, "X at end", s.X, 100)
	assertNear(t, "Y at end", s.Y, 50)
	if !g.Done {
		t.Error("tween should be done after the full duration")
	}
}

func TestTweenSpriteRotation(t *testing.T) {
	s := NewSolidSprite(10, 10, color.White)

	g := TweenSpriteRotation(s, 3.0, 2.0, ease.Linear)
	g.Update(1.0)
	assertNear(t, "angle at midpoint", float32(s.Angle), 1.5)
	g.Update(1.0)
	assertNear(t, "angle at end", float32(s.Angle), 3.0)
}

func TestTweenSpriteSize(t *testing.T) {
	s := NewSolidSprite(10, 10, color.White)

	g := TweenSpriteSize(s, 20, 40, 1.0, ease.Linear)
	g.Update(1.0)
	assertNear(t, "W at end", s.W, 20)
	assertNear(t, "H at end", s.H, 40)
}

func TestTweenGroupDoneIsIdempotent(t *testing.T) {
	s := NewSolidSprite(10, 10, color.White)

	g := TweenSpritePosition(s, 10, 10, 0.5, ease.Linear)
	g.Update(1.0)
	if !g.Done {
		t.Fatal("tween should be done")
	}

	s.X = 42
	g.Update(1.0)
	if s.X != 42 {
		t.Error("a finished group must stop writing to the sprite")
	}
}

func TestTweenOvershootClamped(t *testing.T) {
	s := NewSolidSprite(10, 10, color.White)

	g := TweenSpritePosition(s, 100, 0, 1.0, ease.Linear)
	g.Update(5.0)
	assertNear(t, "X after overshoot", s.X, 100)
	if !g.Done {
		t.Error("overshooting the duration should finish the tween")
	}
}
