package overlap

import "github.com/chewxy/math32"

// RotatePoint rotates a point about an arbitrary center by the given angle.
// A zero angle returns the input unchanged, an exact identity rather than an
// approximate one. Non-zero angles are normalized into (-π, π] before the
// rotation is applied.
func RotatePoint(p, center Vec2, angle Angle) Vec2 {
	if angle == 0 {
		return p
	}

	t := p.Sub(center)

	sin, cos := math32.Sincos(float32(angle.Normalized()))

	// Standard 2D rotation. Positive angle is counter-clockwise.
	return Vec2{
		X: t.X*cos - t.Y*sin + center.X,
		Y: t.X*sin + t.Y*cos + center.Y,
	}
}

// RotatedBounds returns the axis-aligned bounding box of the rectangle
// (pos, size) rotated by angle about its center. For a zero angle the input
// rectangle is returned unchanged. Otherwise the box is the min/max extent
// of the four rotated corners, inflated by [BoundsMargin] of the original
// size per axis so that edge contacts are not missed to rounding.
func RotatedBounds(pos, size Vec2, angle Angle) Rect {
	if angle == 0 {
		return Rect{X: pos.X, Y: pos.Y, Width: size.X, Height: size.Y}
	}

	center := Vec2{X: pos.X + size.X/2, Y: pos.Y + size.Y/2}

	corners := [4]Vec2{
		RotatePoint(pos, center, angle),
		RotatePoint(Vec2{X: pos.X + size.X, Y: pos.Y}, center, angle),
		RotatePoint(Vec2{X: pos.X, Y: pos.Y + size.Y}, center, angle),
		RotatePoint(Vec2{X: pos.X + size.X, Y: pos.Y + size.Y}, center, angle),
	}

	minX, minY := corners[0].X, corners[0].Y
	maxX, maxY := minX, minY
	for _, c := range corners[1:] {
		minX = min(minX, c.X)
		minY = min(minY, c.Y)
		maxX = max(maxX, c.X)
		maxY = max(maxY, c.Y)
	}

	marginX := size.X * BoundsMargin
	marginY := size.Y * BoundsMargin

	return Rect{
		X:      minX - marginX,
		Y:      minY - marginY,
		Width:  maxX - minX + 2*marginX,
		Height: maxY - minY + 2*marginY,
	}
}

// texCoord maps a world point inside the rectangle (pos, size) to integer
// texel coordinates in [0, texSize). Size components below 0.001 are clamped
// to avoid division by zero; the normalized position is clamped to
// [0, 0.999] so a point exactly on the far edge still lands on the last
// texel row/column rather than one past it.
func texCoord(p, pos, size, texSize Vec2) (int, int) {
	safeW := max(size.X, 0.001)
	safeH := max(size.Y, 0.001)

	normX := (p.X - pos.X) / safeW
	normY := (p.Y - pos.Y) / safeH

	normX = min(max(normX, 0), 0.999)
	normY = min(max(normY, 0), 0.999)

	return int(normX * texSize.X), int(normY * texSize.Y)
}
