package overlap

import "github.com/chewxy/math32"

// Tuning constants for the collision engine. Both are empirical: changing
// either changes observable collision boundaries, so they are exported as
// named constants rather than buried in the code.
const (
	// SmallAngleThreshold is the rotation magnitude (radians, ~3 degrees)
	// below which the oriented-rectangle test falls back to a plain
	// axis-aligned overlap test.
	SmallAngleThreshold = 0.05

	// BoundsMargin is the fraction of an entity's size by which its rotated
	// bounding box is inflated per axis, guarding against rounding-induced
	// misses at rotated edges.
	BoundsMargin = 0.02
)

// Vec2 is a 2D vector used for positions, sizes, and directions throughout
// the API. Components are float32; all internal math is done in float32.
type Vec2 struct {
	X, Y float32
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	v.X += other.X
	v.Y += other.Y
	return v
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	v.X -= other.X
	v.Y -= other.Y
	return v
}

// Mul returns v scaled by factor.
func (v Vec2) Mul(factor float32) Vec2 {
	v.X *= factor
	v.Y *= factor
	return v
}

// Dot returns the dot product of v and other.
func (v Vec2) Dot(other Vec2) float32 {
	return v.X*other.X + v.Y*other.Y
}

// Length returns the Euclidean length of v.
func (v Vec2) Length() float32 {
	return math32.Hypot(v.X, v.Y)
}

// Perp returns the counter-clockwise perpendicular of v.
func (v Vec2) Perp() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// Angle is a rotation in radians. Positive values rotate counter-clockwise.
// Any real value is accepted; the engine normalizes before use.
type Angle float32

// Normalized reduces the angle into (-π, π] for numerical stability.
func (a Angle) Normalized() Angle {
	const twoPi = Angle(2 * math32.Pi)
	if a >= twoPi || a <= -twoPi {
		a = Angle(math32.Mod(float32(a), float32(twoPi)))
	}
	if a > Angle(math32.Pi) {
		a -= twoPi
	} else if a < -Angle(math32.Pi) {
		a += twoPi
	}
	return a
}

// Abs returns the magnitude of the angle.
func (a Angle) Abs() Angle {
	return Angle(math32.Abs(float32(a)))
}

// IsSmall reports whether the angle's magnitude is below
// [SmallAngleThreshold].
func (a Angle) IsSmall() bool {
	return a.Abs() < SmallAngleThreshold
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float32
}

// Contains reports whether the point lies inside the rectangle. The test is
// half-open: the top and left edges are inside, the bottom and right edges
// are not. This matches the texel-footprint semantics of the pixel scanners.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Center returns the rectangle's center point.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Pos returns the rectangle's top-left corner.
func (r Rect) Pos() Vec2 {
	return Vec2{X: r.X, Y: r.Y}
}

// Dim returns the rectangle's width and height as a vector.
func (r Rect) Dim() Vec2 {
	return Vec2{X: r.Width, Y: r.Height}
}

// Intersect returns the overlapping region of r and other. The second return
// is false when the rectangles do not strictly overlap (touching edges do
// not count); the returned Rect is meaningless in that case.
func (r Rect) Intersect(other Rect) (Rect, bool) {
	x := max(r.X, other.X)
	y := max(r.Y, other.Y)
	w := min(r.X+r.Width, other.X+other.Width) - x
	h := min(r.Y+r.Height, other.Y+other.Height) - y
	if w <= 0 || h <= 0 {
		return Rect{}, false
	}
	return Rect{X: x, Y: y, Width: w, Height: h}, true
}
