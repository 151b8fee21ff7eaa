package overlap

// Collidable is the capability contract the engine requires from host
// entities. Any concrete type with these five read-only accessors can be
// collision-tested; no common base type is needed. The engine never mutates
// a Collidable and reads each accessor once per check.
type Collidable interface {
	// Position returns the entity's top-left corner in world units.
	Position() Vec2

	// Size returns the entity's width and height in world units. Components
	// must be positive; degenerate sizes are clamped during coordinate
	// mapping rather than rejected.
	Size() Vec2

	// TextureSize returns the native pixel dimensions of the backing image.
	TextureSize() Vec2

	// Rotation returns the entity's rotation in radians, counter-clockwise
	// positive. Any real value is fine; the engine normalizes.
	Rotation() Angle

	// OpacityMask returns the entity's per-texel opacity mask, or nil for
	// entities that are solid rectangles.
	OpacityMask() *Mask
}

// Box is a minimal solid Collidable: a possibly rotated rectangle with no
// transparency. Handy for walls, paddles, and tests.
type Box struct {
	X, Y  float32
	W, H  float32
	Angle Angle
}

// Position returns the box's top-left corner.
func (b Box) Position() Vec2 { return Vec2{X: b.X, Y: b.Y} }

// Size returns the box's dimensions.
func (b Box) Size() Vec2 { return Vec2{X: b.W, Y: b.H} }

// TextureSize mirrors the box's world dimensions; with no mask there is no
// real texture to map into.
func (b Box) TextureSize() Vec2 { return Vec2{X: b.W, Y: b.H} }

// Rotation returns the box's rotation.
func (b Box) Rotation() Angle { return b.Angle }

// OpacityMask always returns nil: a Box is fully solid.
func (b Box) OpacityMask() *Mask { return nil }

// snapshot is one entity's state captured at the top of a check. The
// accessors are read exactly once per call; everything downstream works on
// the copy.
type snapshot struct {
	pos, size, tex Vec2
	angle          Angle
	mask           *Mask
	center         Vec2
}

func capture(c Collidable) snapshot {
	s := snapshot{
		pos:   c.Position(),
		size:  c.Size(),
		tex:   c.TextureSize(),
		angle: c.Rotation(),
		mask:  c.OpacityMask(),
	}
	s.center = Vec2{X: s.pos.X + s.size.X/2, Y: s.pos.Y + s.size.Y/2}
	return s
}

// rect returns the entity's unrotated rectangle in whatever frame pos/size
// are expressed in (world for unrotated entities, local otherwise).
func (s snapshot) rect() Rect {
	return Rect{X: s.pos.X, Y: s.pos.Y, Width: s.size.X, Height: s.size.Y}
}

// opaqueAt samples the entity's mask at the texel under point p, which must
// already be in the entity's unrotated frame. Out-of-range texel indices
// read as transparent.
func (s snapshot) opaqueAt(p Vec2) bool {
	tx, ty := texCoord(p, s.pos, s.size, s.tex)
	return s.mask.Bit(ty*int(s.tex.X) + tx)
}
