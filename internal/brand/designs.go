package brand

import "github.com/sixtyxsix/brandgen/internal/canvas"

// Segment names of a seven-segment digit.
const (
	segTop = iota
	segUpperLeft
	segUpperRight
	segMiddle
	segLowerLeft
	segLowerRight
	segBottom
)

var digitSegments = map[rune][]int{
	'0': {segTop, segUpperLeft, segUpperRight, segLowerLeft, segLowerRight, segBottom},
	'6': {segTop, segUpperLeft, segMiddle, segLowerLeft, segLowerRight, segBottom},
}

// DrawSixMarker draws the vertical bar that turns a ring into a "6".
func DrawSixMarker(c *canvas.Canvas, cx, cy, rInner, stroke int, col canvas.Color) {
	barW := int(float64(stroke) * 0.7)
	barH := int(float64(rInner) * 1.1)
	barX := int(float64(cx) + float64(rInner)*0.35 - float64(barW)/2)
	barY := int(float64(cy) - float64(barH)*0.6)
	c.DrawRect(float64(barX), float64(barY), float64(barW), float64(barH), col)
}

// DrawSevenSegDigit draws digit in a w×h box at (x, y). Only 0 and 6 have
// segment tables; other digits draw nothing.
func DrawSevenSegDigit(c *canvas.Canvas, x, y, w, h, thickness int, digit rune, col canvas.Color) {
	segs, ok := digitSegments[digit]
	if !ok {
		return
	}
	t := thickness
	segH := max(1, int(float64(h-3*t)/2))
	rects := [7][4]int{
		segTop:        {x + t, y, w - 2*t, t},
		segUpperLeft:  {x, y + t, t, segH},
		segUpperRight: {x + w - t, y + t, t, segH},
		segMiddle:     {x + t, y + t + segH, w - 2*t, t},
		segLowerLeft:  {x, y + 2*t + segH, t, segH},
		segLowerRight: {x + w - t, y + 2*t + segH, t, segH},
		segBottom:     {x + t, y + 2*segH + 2*t, w - 2*t, t},
	}
	for _, s := range segs {
		r := rects[s]
		c.DrawRect(float64(r[0]), float64(r[1]), float64(r[2]), float64(r[3]), col)
	}
}

// drawOptionA: four rings, "six" markers on the left pair, divider line.
func drawOptionA(c *canvas.Canvas, accent canvas.Color) {
	const rOuter, stroke = 170, 60
	const rInner = rOuter - stroke
	for _, p := range [][2]int{{340, 340}, {684, 340}, {340, 684}, {684, 684}} {
		c.DrawRing(p[0], p[1], rOuter, rInner, accent)
	}
	DrawSixMarker(c, 340, 340, rInner, stroke, accent)
	DrawSixMarker(c, 340, 684, rInner, stroke, accent)
	c.DrawLine(200, 512, 824, 512, 18, accent)
}

// drawOptionB: two overlapping rings.
func drawOptionB(c *canvas.Canvas, accent canvas.Color) {
	const rOuter, stroke = 220, 70
	c.DrawRing(384, 512, rOuter, rOuter-stroke, accent)
	c.DrawRing(640, 512, rOuter, rOuter-stroke, accent)
}

// drawOptionC: seven-segment "60×60".
func drawOptionC(c *canvas.Canvas, accent canvas.Color) {
	digitW, digitH := 170, 320
	gap := 28
	xW := 120
	xH := int(float64(digitH) * 0.7)
	thickness := max(16, int(float64(digitW)*0.18))

	totalW := digitW*4 + xW + gap*4
	startX := int(float64(c.Width()-totalW) / 2)
	startY := int(float64(c.Height()-digitH) / 2)

	x0 := startX
	x1 := x0 + digitW + gap
	xMid := x1 + digitW + gap
	x2 := xMid + xW + gap
	x3 := x2 + digitW + gap

	DrawSevenSegDigit(c, x0, startY, digitW, digitH, thickness, '6', accent)
	DrawSevenSegDigit(c, x1, startY, digitW, digitH, thickness, '0', accent)

	xTop := startY + int(float64(digitH-xH)/2)
	xThickness := max(10, thickness-6)
	c.DrawLine(xMid, xTop, xMid+xW, xTop+xH, xThickness, accent)
	c.DrawLine(xMid, xTop+xH, xMid+xW, xTop, xThickness, accent)

	DrawSevenSegDigit(c, x2, startY, digitW, digitH, thickness, '6', accent)
	DrawSevenSegDigit(c, x3, startY, digitW, digitH, thickness, '0', accent)
}

// drawOptionD: ring with pause bars.
func drawOptionD(c *canvas.Canvas, accent canvas.Color) {
	const rOuter, stroke = 260, 70
	c.DrawRing(512, 512, rOuter, rOuter-stroke, accent)
	const barW, barH = 70, 280
	c.DrawRect(420, 512-barH/2, barW, barH, accent)
	c.DrawRect(534, 512-barH/2, barW, barH, accent)
}
