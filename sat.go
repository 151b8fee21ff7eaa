package overlap

// RotatedRectsOverlap reports whether two oriented rectangles overlap, using
// the separating axis theorem. Each rectangle is given as its unrotated
// top-left position and size plus a rotation about its own center.
//
// When both rotations are below [SmallAngleThreshold] the test degrades to a
// strict axis-aligned overlap check, which is what the vast majority of
// game entities need and is far cheaper than the projection loop.
func RotatedRectsOverlap(posA, sizeA Vec2, angleA Angle, posB, sizeB Vec2, angleB Angle) bool {
	if angleA.IsSmall() && angleB.IsSmall() {
		return posA.X < posB.X+sizeB.X &&
			posA.X+sizeA.X > posB.X &&
			posA.Y < posB.Y+sizeB.Y &&
			posA.Y+sizeA.Y > posB.Y
	}

	cornersA := rectCorners(posA, sizeA, angleA)
	cornersB := rectCorners(posB, sizeB, angleB)

	// Candidate separating axes: the outward normal of every edge of both
	// rectangles. A rectangle only has two independent normal directions,
	// but testing all four per rectangle keeps the loop uniform and the
	// redundant axes are cheap.
	axes := make([]Vec2, 0, 8)
	axes = appendEdgeNormals(axes, cornersA)
	axes = appendEdgeNormals(axes, cornersB)

	for _, axis := range axes {
		minA, maxA := projectCorners(cornersA, axis)
		minB, maxB := projectCorners(cornersB, axis)

		// A gap on any axis separates the rectangles.
		if minA > maxB || minB > maxA {
			return false
		}
	}

	return true
}

// rectCorners returns the world-space corners of a rectangle rotated about
// its center, in perimeter order.
func rectCorners(pos, size Vec2, angle Angle) [4]Vec2 {
	center := Vec2{X: pos.X + size.X/2, Y: pos.Y + size.Y/2}
	return [4]Vec2{
		RotatePoint(Vec2{X: pos.X, Y: pos.Y}, center, angle),
		RotatePoint(Vec2{X: pos.X + size.X, Y: pos.Y}, center, angle),
		RotatePoint(Vec2{X: pos.X + size.X, Y: pos.Y + size.Y}, center, angle),
		RotatePoint(Vec2{X: pos.X, Y: pos.Y + size.Y}, center, angle),
	}
}

// appendEdgeNormals appends the unit normal of each edge of the polygon to
// axes, skipping near-zero-length edges (degenerate rectangles).
func appendEdgeNormals(axes []Vec2, corners [4]Vec2) []Vec2 {
	for i := range corners {
		edge := corners[(i+1)%4].Sub(corners[i])
		perp := edge.Perp()
		length := perp.Length()
		if length > 0.0001 {
			axes = append(axes, perp.Mul(1/length))
		}
	}
	return axes
}

// projectCorners projects all four corners onto the axis and returns the
// interval they span.
func projectCorners(corners [4]Vec2, axis Vec2) (float32, float32) {
	lo := corners[0].Dot(axis)
	hi := lo
	for _, c := range corners[1:] {
		d := c.Dot(axis)
		lo = min(lo, d)
		hi = max(hi, d)
	}
	return lo, hi
}
