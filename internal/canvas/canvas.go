// Package canvas implements a fixed-size RGB pixel buffer with simple
// filled-shape primitives.
//
// All drawing operations are total: coordinates outside the canvas are
// clipped silently and no operation ever returns an error or panics.
package canvas

import (
	"image"
	"image/color"
	"math"
)

// Color is an opaque 8-bit RGB triple.
type Color struct {
	R, G, B uint8
}

// RGBA implements color.Color. A Color is always fully opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	return r, g, b, 0xffff
}

// Canvas is a row-major RGB pixel buffer, 3 bytes per pixel.
// A Canvas is not safe for concurrent use.
type Canvas struct {
	width  int
	height int
	pixels []byte
}

// New creates a width×height canvas filled with bg.
// Non-positive dimensions are clamped to 1.
func New(width, height int, bg Color) *Canvas {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	c := &Canvas{
		width:  width,
		height: height,
		pixels: make([]byte, width*height*3),
	}
	c.Fill(bg)
	return c
}

// FromImage converts img into a new canvas. Alpha is discarded.
func FromImage(img image.Image) *Canvas {
	b := img.Bounds()
	c := New(b.Dx(), b.Dy(), Color{})
	if nrgba, ok := img.(*image.NRGBA); ok {
		for y := 0; y < c.height; y++ {
			src := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+c.width*4]
			dst := c.pixels[y*c.width*3 : (y+1)*c.width*3]
			for x := 0; x < c.width; x++ {
				dst[x*3] = src[x*4]
				dst[x*3+1] = src[x*4+1]
				dst[x*3+2] = src[x*4+2]
			}
		}
		return c
	}
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			nc := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			c.SetPixel(x, y, Color{nc.R, nc.G, nc.B})
		}
	}
	return c
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.height }

// Pixels returns the live pixel buffer (len = width*height*3).
func (c *Canvas) Pixels() []byte { return c.pixels }

// At returns the color at (x, y). ok is false outside the canvas.
func (c *Canvas) At(x, y int) (col Color, ok bool) {
	if !c.inBounds(x, y) {
		return Color{}, false
	}
	i := (y*c.width + x) * 3
	return Color{c.pixels[i], c.pixels[i+1], c.pixels[i+2]}, true
}

// Image returns an opaque NRGBA copy of the canvas.
func (c *Canvas) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, c.width, c.height))
	for i, j := 0, 0; i < len(c.pixels); i, j = i+3, j+4 {
		img.Pix[j] = c.pixels[i]
		img.Pix[j+1] = c.pixels[i+1]
		img.Pix[j+2] = c.pixels[i+2]
		img.Pix[j+3] = 0xff
	}
	return img
}

func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.width && y < c.height
}

// Fill overwrites every pixel with col.
func (c *Canvas) Fill(col Color) {
	if len(c.pixels) < 3 {
		return
	}
	c.pixels[0], c.pixels[1], c.pixels[2] = col.R, col.G, col.B
	// Doubling copy.
	for n := 3; n < len(c.pixels); n *= 2 {
		copy(c.pixels[n:], c.pixels[:n])
	}
}

// SetPixel overwrites the pixel at (x, y). Out-of-range coordinates are
// ignored.
func (c *Canvas) SetPixel(x, y int, col Color) {
	if !c.inBounds(x, y) {
		return
	}
	i := (y*c.width + x) * 3
	c.pixels[i] = col.R
	c.pixels[i+1] = col.G
	c.pixels[i+2] = col.B
}

// DrawRect fills the rectangle with top-left (x, y) and size (w, h).
// Both corners are truncated toward zero (not floored) and then clamped to
// the canvas; the resulting range is half-open.
func (c *Canvas) DrawRect(x, y, w, h float64, col Color) {
	x0 := truncClamp(x, c.width)
	y0 := truncClamp(y, c.height)
	x1 := truncClamp(x+w, c.width)
	y1 := truncClamp(y+h, c.height)
	for yy := y0; yy < y1; yy++ {
		i := (yy*c.width + x0) * 3
		for xx := x0; xx < x1; xx++ {
			c.pixels[i] = col.R
			c.pixels[i+1] = col.G
			c.pixels[i+2] = col.B
			i += 3
		}
	}
}

// DrawCircle fills the disk of radius r centred on (cx, cy): every pixel
// with (x-cx)²+(y-cy)² <= r². A zero radius sets only the centre pixel and a
// negative one sets nothing. Any int radius and centre are exact.
func (c *Canvas) DrawCircle(cx, cy, r int, col Color) {
	r2 := square(absDiff(r, 0))
	x0, x1 := clipSpan(satSub(cx, r), satAdd(cx, r), c.width)
	y0, y1 := clipSpan(satSub(cy, r), satAdd(cy, r), c.height)
	for y := y0; y <= y1; y++ {
		dy2 := square(absDiff(y, cy))
		for x := x0; x <= x1; x++ {
			if dy2.add(square(absDiff(x, cx))).lessEq(r2) {
				c.SetPixel(x, y, col)
			}
		}
	}
}

// DrawRing fills the annulus rInner² <= d² <= rOuter² around (cx, cy).
// Both bounds are inclusive, so the ring is about one pixel thicker than
// rOuter-rInner. Nothing is drawn when rInner > rOuter.
func (c *Canvas) DrawRing(cx, cy, rOuter, rInner int, col Color) {
	ro2 := square(absDiff(rOuter, 0))
	ri2 := square(absDiff(rInner, 0))
	x0, x1 := clipSpan(satSub(cx, rOuter), satAdd(cx, rOuter), c.width)
	y0, y1 := clipSpan(satSub(cy, rOuter), satAdd(cy, rOuter), c.height)
	for y := y0; y <= y1; y++ {
		dy2 := square(absDiff(y, cy))
		for x := x0; x <= x1; x++ {
			d2 := dy2.add(square(absDiff(x, cx)))
			if ri2.lessEq(d2) && d2.lessEq(ro2) {
				c.SetPixel(x, y, col)
			}
		}
	}
}

// DrawLine approximates a thick segment by stamping disks of radius
// floor(thickness/2) at max(|dx|,|dy|)+1 evenly spaced samples. Sample
// positions are rounded half to even.
func (c *Canvas) DrawLine(x0, y0, x1, y1, thickness int, col Color) {
	r := floorDiv(thickness, 2)
	dx := x1 - x0
	dy := y1 - y0
	steps := max(abs(dx), abs(dy))
	if steps == 0 {
		c.DrawCircle(x0, y0, r, col)
		return
	}
	for i := 0; i <= steps; i++ {
		x := float64(x0) + float64(dx*i)/float64(steps)
		y := float64(y0) + float64(dy*i)/float64(steps)
		c.DrawCircle(int(math.RoundToEven(x)), int(math.RoundToEven(y)), r, col)
	}
}

// clipSpan intersects the inclusive span [lo, hi] with [0, size-1].
// The result is empty (lo > hi) when they do not overlap.
func clipSpan(lo, hi, size int) (int, int) {
	if lo < 0 {
		lo = 0
	}
	if hi > size-1 {
		hi = size - 1
	}
	return lo, hi
}

// truncClamp truncates v toward zero and clamps it to [0, hi].
// Clamping happens in float space so huge or NaN inputs stay well defined.
func truncClamp(v float64, hi int) int {
	switch {
	case math.IsNaN(v), v <= 0:
		return 0
	case v >= float64(hi):
		return hi
	}
	return int(v)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
