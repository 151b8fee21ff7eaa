package overlap

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite is a ready-made Collidable backed by an Ebitengine image. The
// opacity mask is built once from the source image's alpha channel at
// construction; position, display size, and rotation are plain fields the
// game mutates each frame.
//
// Sprite is a convenience for hosts that do not already have an entity
// type; anything implementing [Collidable] works with the engine equally
// well.
type Sprite struct {
	X, Y     float32 // top-left corner, world units
	W, H     float32 // display size, world units
	Angle    Angle   // rotation about the sprite's center
	Image    *ebiten.Image
	mask     *Mask
	texW     int
	texH     int
}

// NewSprite builds a sprite from a source image. Texels with alpha at or
// above threshold become opaque in the collision mask; a fully opaque image
// yields a fully set mask, so pass a solid image if rectangle semantics are
// fine. Display size defaults to the texture size.
func NewSprite(src image.Image, threshold uint8) *Sprite {
	bounds := src.Bounds()
	return &Sprite{
		W:     float32(bounds.Dx()),
		H:     float32(bounds.Dy()),
		Image: ebiten.NewImageFromImage(src),
		mask:  MaskFromImage(src, threshold),
		texW:  bounds.Dx(),
		texH:  bounds.Dy(),
	}
}

// NewSolidSprite builds a solid-colored rectangular sprite with no mask.
// The engine treats it as a plain (possibly rotated) rectangle.
func NewSolidSprite(w, h float32, c color.Color) *Sprite {
	img := ebiten.NewImage(1, 1)
	img.Fill(c)
	return &Sprite{W: w, H: h, Image: img, texW: 1, texH: 1}
}

// Position returns the sprite's top-left corner.
func (s *Sprite) Position() Vec2 { return Vec2{X: s.X, Y: s.Y} }

// Size returns the sprite's display size.
func (s *Sprite) Size() Vec2 { return Vec2{X: s.W, Y: s.H} }

// TextureSize returns the native pixel dimensions of the backing image.
func (s *Sprite) TextureSize() Vec2 {
	return Vec2{X: float32(s.texW), Y: float32(s.texH)}
}

// Rotation returns the sprite's rotation. Normalization is the engine's
// job; the raw value is returned as set.
func (s *Sprite) Rotation() Angle { return s.Angle }

// OpacityMask returns the sprite's collision mask, or nil for solid sprites.
func (s *Sprite) OpacityMask() *Mask { return s.mask }

// SetMask replaces the sprite's collision mask. Pass nil to make the sprite
// collide as a solid rectangle regardless of its texture's transparency.
func (s *Sprite) SetMask(m *Mask) { s.mask = m }

// Center returns the sprite's center point, the pivot of its rotation.
func (s *Sprite) Center() Vec2 {
	return Vec2{X: s.X + s.W/2, Y: s.Y + s.H/2}
}

// Draw renders the sprite: texture scaled to the display size, rotated
// about its center, translated into place.
func (s *Sprite) Draw(screen *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(s.W)/float64(s.texW), float64(s.H)/float64(s.texH))
	op.GeoM.Translate(-float64(s.W)/2, -float64(s.H)/2)
	if s.Angle != 0 {
		op.GeoM.Rotate(float64(s.Angle))
	}
	op.GeoM.Translate(float64(s.X)+float64(s.W)/2, float64(s.Y)+float64(s.H)/2)
	screen.DrawImage(s.Image, op)
}
