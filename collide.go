package overlap

// CheckCollision reports whether two entities overlap, at the precision
// their representations allow. skipPixels (>= 1) is the sampling stride of
// the pixel scanners: 1 is exhaustive, larger values sample sparsely and
// may miss thin features but never report an overlap that is not there.
//
// The decision cascade, cheapest test first:
//
//  1. If the entities' rotated bounding boxes do not overlap, they cannot
//     collide. Return false without touching masks or corners.
//  2. Neither entity has a mask: rotated entities get the oriented-rectangle
//     test, unrotated ones are settled by the bounding boxes alone.
//  3. Either entity is rotated: the rotation-aware scanners, chosen by how
//     many masks are present.
//  4. No rotation, at least one mask: the straight per-pixel scanners.
//
// CheckCollision is a pure function over two snapshots of world state: it
// signals no errors, never mutates its inputs, and holds no state between
// calls.
func CheckCollision(a, b Collidable, skipPixels int) bool {
	if skipPixels < 1 {
		skipPixels = 1
	}

	sa := capture(a)
	sb := capture(b)

	boundsA := RotatedBounds(sa.pos, sa.size, sa.angle)
	boundsB := RotatedBounds(sb.pos, sb.size, sb.angle)

	common, ok := boundsA.Intersect(boundsB)
	if !ok {
		return false
	}
	reg := region{x: common.X, y: common.Y, w: int(common.Width), h: int(common.Height)}

	rotated := sa.angle != 0 || sb.angle != 0

	if sa.mask == nil && sb.mask == nil {
		if rotated {
			return RotatedRectsOverlap(sa.pos, sa.size, sa.angle, sb.pos, sb.size, sb.angle)
		}
		// Bounding boxes overlapping is conclusive for solid unrotated
		// rectangles.
		return true
	}

	if rotated {
		switch {
		case sa.mask != nil && sb.mask != nil:
			return scanBothMaskedRotated(sa, sb, reg, skipPixels)
		case sa.mask != nil:
			return scanOneMaskedRotated(sa, sb, reg, skipPixels)
		default:
			return scanOneMaskedRotated(sb, sa, reg, skipPixels)
		}
	}

	switch {
	case sa.mask != nil && sb.mask != nil:
		return scanBothMasked(sa, sb, reg, skipPixels)
	case sa.mask != nil:
		return scanOneMasked(sa, sb, reg, skipPixels)
	default:
		return scanOneMasked(sb, sa, reg, skipPixels)
	}
}
