// Package overlap is a tiered 2D collision engine for [Ebitengine] games.
//
// Once per frame, for each pair that matters, a game asks one question: do
// these two things touch? Overlap answers it at the precision each entity's
// representation allows: coarse bounding-box overlap, an oriented-rectangle
// test (separating axis theorem) for solid rotated entities, or per-pixel
// opacity-mask scanning when one or both entities carry transparency.
//
// # Quick start
//
// Implement [Collidable] on your entity type (or use the bundled [Sprite]
// or [Box]) and call [CheckCollision] from your update loop:
//
//	if overlap.CheckCollision(ball, peg, 1) {
//		// bounce
//	}
//
// The third argument is the sampling stride of the pixel scanners: 1 checks
// every pixel in the overlap region, larger values sample sparsely. Sparse
// sampling can miss thin features but never reports a collision that is not
// there.
//
// To set the stride once per game instead of per call, wrap a [Config] in
// an [Engine]:
//
//	engine := overlap.NewEngine(overlap.Config{SkipPixels: 2, AlphaThreshold: 128})
//	hit := engine.Check(ball, peg)
//
// # The Collidable contract
//
// The engine depends only on five read-only accessors: top-left position and
// display size in world units, native texture dimensions, rotation in
// radians (counter-clockwise positive, any real value), and an optional
// [Mask]. A nil mask means the entity collides as a solid rectangle.
//
// Masks pack one bit per texel, row-major from the top-left, most
// significant bit first within each byte; a set bit is opaque. Build them
// from image alpha with [MaskFromImage], or hand the engine pre-packed bits
// with [MaskFromBytes]. A mask shorter than the texture reads as transparent
// past its end. The engine degrades rather than fails, so
// keeping mask and texture dimensions in agreement is the producer's job.
//
// # Execution model
//
// CheckCollision is synchronous and stateless. Internally the pixel
// scanners fan the sampled rows out across a worker pool and stop at the
// first hit; on single-threaded wasm builds the same search runs as a plain
// nested loop. Both forms return the same boolean for the same inputs.
//
// # Subpackages
//
// The ecs directory holds a [Donburi] adapter that pair-checks tagged
// entities and publishes collision events.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package overlap
