package overlap

import (
	"image"
	"image/color"
	"testing"
)

// circleImage draws an opaque disc of the given radius on a transparent
// square canvas.
func circleImage(radius int) *image.NRGBA {
	d := radius * 2
	img := image.NewNRGBA(image.Rect(0, 0, d, d))
	for y := 0; y < d; y++ {
		for x := 0; x < d; x++ {
			dx := float64(x-radius) + 0.5
			dy := float64(y-radius) + 0.5
			if dx*dx+dy*dy <= float64(radius*radius) {
				img.SetNRGBA(x, y, color.NRGBA{R: 255, A: 255})
			}
		}
	}
	return img
}

func TestNewSpriteBuildsMaskFromAlpha(t *testing.T) {
	s := NewSprite(circleImage(8), 128)

	mask := s.OpacityMask()
	if mask == nil {
		t.Fatal("sprite from a transparent-edged image should have a mask")
	}
	if mask.Width() != 16 || mask.Height() != 16 {
		t.Fatalf("mask is %dx%d, want 16x16", mask.Width(), mask.Height())
	}
	if !mask.At(8, 8) {
		t.Error("disc center should be opaque")
	}
	if mask.At(0, 0) || mask.At(15, 15) {
		t.Error("disc corners should be transparent")
	}
}

func TestNewSpriteDefaultsToTextureSize(t *testing.T) {
	s := NewSprite(circleImage(8), 128)

	if s.W != 16 || s.H != 16 {
		t.Errorf("display size = %vx%v, want 16x16", s.W, s.H)
	}
	if got := s.TextureSize(); got.X != 16 || got.Y != 16 {
		t.Errorf("TextureSize = %v, want {16 16}", got)
	}
}

func TestSpriteCollidableAccessors(t *testing.T) {
	s := NewSprite(circleImage(4), 128)
	s.X, s.Y = 10, 20
	s.W, s.H = 32, 32
	s.Angle = 1.5

	assertVec(t, "Position", s.Position(), Vec2{X: 10, Y: 20})
	assertVec(t, "Size", s.Size(), Vec2{X: 32, Y: 32})
	if s.Rotation() != 1.5 {
		t.Errorf("Rotation = %v, want 1.5", s.Rotation())
	}
	assertVec(t, "Center", s.Center(), Vec2{X: 26, Y: 36})
}

func TestSolidSpriteHasNoMask(t *testing.T) {
	s := NewSolidSprite(40, 20, color.White)
	if s.OpacityMask() != nil {
		t.Error("solid sprite should have no mask")
	}
	if s.W != 40 || s.H != 20 {
		t.Errorf("size = %vx%v, want 40x20", s.W, s.H)
	}
}

func TestSetMaskOverride(t *testing.T) {
	s := NewSprite(circleImage(4), 128)
	s.SetMask(nil)
	if s.OpacityMask() != nil {
		t.Error("SetMask(nil) should make the sprite collide as a solid rect")
	}

	m := NewOpaqueMask(8, 8)
	s.SetMask(m)
	if s.OpacityMask() != m {
		t.Error("SetMask should replace the mask")
	}
}

func TestCircleSpritesCollideLikeDiscs(t *testing.T) {
	// Two 16-pixel discs: their square footprints always overlap here, but
	// the discs only collide when close enough.
	a := NewSprite(circleImage(8), 128)
	b := NewSprite(circleImage(8), 128)

	// Diagonal corners overlapping, discs apart.
	b.X, b.Y = 13, 13
	if CheckCollision(a, b, 1) {
		t.Error("corner-overlapping discs should not collide")
	}

	// Close enough for the discs themselves to touch.
	b.X, b.Y = 8, 8
	if !CheckCollision(a, b, 1) {
		t.Error("nearby discs should collide")
	}
}
