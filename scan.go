package overlap

// The pixel scanners iterate the integer overlap of the two entities'
// (rotated) bounding boxes, stepping by the caller's skipPixels stride, and
// report whether any sampled world point lands on solid parts of both
// entities. The dispatcher in collide.go guarantees the region is non-empty
// and picks the variant matching the entities' rotation and mask state.

// region is the integer sample grid: origin in world units, extent in whole
// pixels.
type region struct {
	x, y float32
	w, h int
}

// scanBothMasked handles two masked, unrotated entities: a sampled point
// collides when both masks are opaque at its texel.
func scanBothMasked(a, b snapshot, reg region, skip int) bool {
	return anyPoint(reg.w, reg.h, skip, func(x, y int) bool {
		p := Vec2{X: reg.x + float32(x), Y: reg.y + float32(y)}
		return a.opaqueAt(p) && b.opaqueAt(p)
	})
}

// scanOneMasked handles one masked and one solid entity, neither rotated: a
// sampled point collides when the mask is opaque there and the point lies
// inside the solid entity's rectangle.
func scanOneMasked(masked, solid snapshot, reg region, skip int) bool {
	solidRect := solid.rect()
	return anyPoint(reg.w, reg.h, skip, func(x, y int) bool {
		p := Vec2{X: reg.x + float32(x), Y: reg.y + float32(y)}
		return masked.opaqueAt(p) && solidRect.Contains(p)
	})
}

// scanOneMaskedRotated handles one masked and one solid entity where either
// may be rotated. Each sampled world point is rotated back into the owning
// entity's unrotated frame before any lookup. The masked entity's local
// containment test runs before its mask is sampled: the rotated bounding
// boxes over-approximate the true footprints, so points in the overlap
// region can fall entirely outside the mask's rectangle.
func scanOneMaskedRotated(masked, solid snapshot, reg region, skip int) bool {
	maskedRect := masked.rect()
	solidRect := solid.rect()
	return anyPoint(reg.w, reg.h, skip, func(x, y int) bool {
		p := Vec2{X: reg.x + float32(x), Y: reg.y + float32(y)}

		local := RotatePoint(p, masked.center, -masked.angle)
		if !maskedRect.Contains(local) {
			return false
		}
		if !masked.opaqueAt(local) {
			return false
		}

		localSolid := RotatePoint(p, solid.center, -solid.angle)
		return solidRect.Contains(localSolid)
	})
}

// scanBothMaskedRotated handles two masked entities where either may be
// rotated: both local containment tests must pass before either mask is
// sampled.
func scanBothMaskedRotated(a, b snapshot, reg region, skip int) bool {
	rectA := a.rect()
	rectB := b.rect()
	return anyPoint(reg.w, reg.h, skip, func(x, y int) bool {
		p := Vec2{X: reg.x + float32(x), Y: reg.y + float32(y)}

		localA := RotatePoint(p, a.center, -a.angle)
		localB := RotatePoint(p, b.center, -b.angle)
		if !rectA.Contains(localA) || !rectB.Contains(localB) {
			return false
		}

		return a.opaqueAt(localA) && b.opaqueAt(localB)
	})
}
