// Plinko drops chips through a grid of pegs using per-pixel collision
// between circular sprites. Click to drop a chip at the cursor. All art is
// procedural, so no external assets are required.
package main

import (
	"image"
	"image/color"
	"log"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween/ease"

	"github.com/tilegarden/overlap"
)

const (
	screenW = 1024
	screenH = 768

	pegRadius  = 10
	chipRadius = 14

	gravity     = 0.25
	restitution = 0.55
	maxChips    = 64

	// Pegs briefly swell when hit.
	flashScale    = 1.5
	flashDuration = 0.25
)

type chip struct {
	sprite *overlap.Sprite
	vx, vy float32
}

type game struct {
	engine  *overlap.Engine
	pegs    []*overlap.Sprite
	chips   []*chip
	tweens  []*overlap.TweenGroup
	chipImg *image.NRGBA
}

// discImage draws an opaque disc on a transparent canvas, so the sprite's
// collision mask is the disc rather than its bounding square.
func discImage(radius int, c color.NRGBA) *image.NRGBA {
	d := radius * 2
	img := image.NewNRGBA(image.Rect(0, 0, d, d))
	for y := 0; y < d; y++ {
		for x := 0; x < d; x++ {
			dx := float64(x-radius) + 0.5
			dy := float64(y-radius) + 0.5
			if dx*dx+dy*dy <= float64(radius*radius) {
				img.SetNRGBA(x, y, c)
			}
		}
	}
	return img
}

func newGame() *game {
	g := &game{
		engine:  overlap.NewEngine(overlap.DefaultConfig()),
		chipImg: discImage(chipRadius, color.NRGBA{R: 240, G: 200, B: 60, A: 255}),
	}
	threshold := g.engine.Config().AlphaThreshold

	pegImg := discImage(pegRadius, color.NRGBA{R: 200, G: 200, B: 220, A: 255})
	for row := 0; row < 10; row++ {
		y := 120 + float32(row)*60
		offset := float32(0)
		if row%2 == 0 {
			offset = 40
		}
		for col := 0; col < 12; col++ {
			peg := overlap.NewSprite(pegImg, threshold)
			peg.X = 60 + float32(col)*80 + offset - pegRadius
			peg.Y = y - pegRadius
			g.pegs = append(g.pegs, peg)
		}
	}
	return g
}

func (g *game) dropChip(x, y float32) {
	if len(g.chips) >= maxChips {
		return
	}
	s := overlap.NewSprite(g.chipImg, g.engine.Config().AlphaThreshold)
	s.X = x - chipRadius
	s.Y = y - chipRadius
	g.chips = append(g.chips, &chip{sprite: s, vx: rand.Float32()*2 - 1})
}

func (g *game) flashPeg(peg *overlap.Sprite) {
	const base = float32(pegRadius * 2)
	cx, cy := peg.Center().X, peg.Center().Y
	peg.W, peg.H = base*flashScale, base*flashScale
	peg.X, peg.Y = cx-peg.W/2, cy-peg.H/2
	g.tweens = append(g.tweens, overlap.TweenSpriteSize(peg, base, base, flashDuration, ease.OutQuad))
}

func (g *game) Update() error {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		g.dropChip(float32(mx), float32(my))
	}

	const dt = float32(1.0 / 60.0)
	live := g.tweens[:0]
	for _, tw := range g.tweens {
		tw.Update(dt)
		if !tw.Done {
			live = append(live, tw)
		}
	}
	g.tweens = live

	remaining := g.chips[:0]
	for _, c := range g.chips {
		c.vy += gravity
		c.sprite.X += c.vx
		c.sprite.Y += c.vy

		for _, peg := range g.pegs {
			if !g.engine.Check(c.sprite, peg) {
				continue
			}
			// Reflect away from the peg center; cheap but convincing.
			delta := c.sprite.Center().Sub(peg.Center())
			dist := delta.Length()
			if dist > 0.001 {
				n := delta.Mul(1 / dist)
				dot := c.vx*n.X + c.vy*n.Y
				c.vx -= (1 + restitution) * dot * n.X
				c.vy -= (1 + restitution) * dot * n.Y
				pen := chipRadius + pegRadius - dist
				c.sprite.X += n.X * pen
				c.sprite.Y += n.Y * pen
			}
			g.flashPeg(peg)
		}

		// Side walls.
		if c.sprite.X < 0 || c.sprite.X+c.sprite.W > screenW {
			c.vx = -c.vx * restitution
		}

		if c.sprite.Y < screenH {
			remaining = append(remaining, c)
		}
	}
	g.chips = remaining
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.NRGBA{R: 15, G: 15, B: 23, A: 255})
	for _, peg := range g.pegs {
		peg.Draw(screen)
	}
	for _, c := range g.chips {
		c.sprite.Draw(screen)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenW, screenH
}

func main() {
	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetWindowTitle("Overlap Plinko Demo")
	if err := ebiten.RunGame(newGame()); err != nil {
		log.Fatal(err)
	}
}
