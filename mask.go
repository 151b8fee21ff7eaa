package overlap

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// Mask is a packed per-texel opacity record: one bit per texel, row-major
// from the top-left, most-significant bit first within each byte. A set bit
// marks an opaque texel. The bit order is part of the contract with mask
// producers, so Mask stores an explicit byte buffer rather than wrapping a
// language bitset.
type Mask struct {
	width, height int
	bits          []byte
}

// NewMask returns a fully transparent mask of the given texel dimensions.
func NewMask(width, height int) *Mask {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Mask{
		width:  width,
		height: height,
		bits:   make([]byte, (width*height+7)/8),
	}
}

// NewOpaqueMask returns a mask of the given dimensions with every bit set.
func NewOpaqueMask(width, height int) *Mask {
	m := NewMask(width, height)
	for i := range m.bits {
		m.bits[i] = 0xff
	}
	return m
}

// MaskFromBytes wraps caller-provided packed bits without copying. The
// buffer must hold width*height bits in row-major MSB-first order; a shorter
// buffer is accepted but every bit past its end reads as transparent, which
// shows up as systematic misses at the texture's tail.
func MaskFromBytes(width, height int, bits []byte) *Mask {
	return &Mask{width: width, height: height, bits: bits}
}

// MaskFromImage builds a mask from the alpha channel of an image. Texels
// whose alpha is at or above threshold are marked opaque. A threshold of 1
// treats any non-fully-transparent texel as solid; 255 keeps only fully
// opaque texels.
func MaskFromImage(img image.Image, threshold uint8) *Mask {
	bounds := img.Bounds()
	m := NewMask(bounds.Dx(), bounds.Dy())
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			_, _, _, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			if uint8(a>>8) >= threshold {
				m.Set(x, y, true)
			}
		}
	}
	return m
}

// MaskFromImageScaled resamples the image to width x height with a bilinear
// kernel before thresholding. Useful for building a reduced-resolution mask
// for a large texture, trading collision precision for memory and scan cost.
func MaskFromImageScaled(img image.Image, width, height int, threshold uint8) *Mask {
	if width <= 0 || height <= 0 {
		return NewMask(0, 0)
	}
	scaled := image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), img, img.Bounds(), xdraw.Over, nil)
	return MaskFromImage(scaled, threshold)
}

// Width returns the mask's texel width.
func (m *Mask) Width() int { return m.width }

// Height returns the mask's texel height.
func (m *Mask) Height() int { return m.height }

// Bit reports whether the texel at the given row-major bit index is opaque.
// Indices beyond the underlying buffer read as transparent rather than
// failing; callers never see an out-of-range error.
func (m *Mask) Bit(index int) bool {
	if index < 0 || index/8 >= len(m.bits) {
		return false
	}
	return (m.bits[index/8]>>(7-index%8))&1 == 1
}

// At reports whether the texel at (tx, ty) is opaque. Coordinates outside
// the mask's dimensions read as transparent.
func (m *Mask) At(tx, ty int) bool {
	if tx < 0 || tx >= m.width || ty < 0 || ty >= m.height {
		return false
	}
	return m.Bit(ty*m.width + tx)
}

// Set marks the texel at (tx, ty) opaque or transparent. Coordinates outside
// the mask's dimensions are ignored.
func (m *Mask) Set(tx, ty int, opaque bool) {
	if tx < 0 || tx >= m.width || ty < 0 || ty >= m.height {
		return
	}
	index := ty*m.width + tx
	if opaque {
		m.bits[index/8] |= 1 << (7 - index%8)
	} else {
		m.bits[index/8] &^= 1 << (7 - index%8)
	}
}

// Bytes returns the underlying packed buffer. The slice is shared, not
// copied.
func (m *Mask) Bytes() []byte { return m.bits }
