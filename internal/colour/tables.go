package colour

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB is an 8-bit colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// Distance is the Euclidean distance between a and b in RGB space.
func Distance(a, b RGB) float64 {
	return a.colorful().DistanceRgb(b.colorful())
}

// Nearest returns the index of the colour in set closest to c. Ties keep the
// earlier entry.
func Nearest(c RGB, set []RGB) int {
	best, bestDist := 0, -1.0
	for i, s := range set {
		if d := Distance(c, s); bestDist < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// Tables holds the reference colours of the xterm palette. Build it once
// with NewTables and treat it as read only.
type Tables struct {
	// Base are colours 0-7: black, red, green, yellow, blue, magenta, cyan, white.
	Base [8]RGB
	// Bright are colours 8-15 in the same order.
	Bright [8]RGB
	// CubeSteps are the channel levels of the 6x6x6 cube (colours 16-231).
	CubeSteps [6]uint8
	// Greys are the levels of the grey ramp (colours 232-255).
	Greys [24]uint8
}

func NewTables() *Tables {
	t := &Tables{
		Base: [8]RGB{
			{0, 0, 0}, {205, 0, 0}, {0, 205, 0}, {205, 205, 0},
			{0, 0, 238}, {205, 0, 205}, {0, 205, 205}, {229, 229, 229},
		},
		Bright: [8]RGB{
			{127, 127, 127}, {255, 0, 0}, {0, 255, 0}, {255, 255, 0},
			{92, 92, 255}, {255, 0, 255}, {0, 255, 255}, {255, 255, 255},
		},
		CubeSteps: [6]uint8{0, 95, 135, 175, 215, 255},
	}
	for i := range t.Greys {
		t.Greys[i] = uint8(8 + 10*i)
	}
	return t
}

// Colours16 returns the base colours followed by the bright ones.
func (t *Tables) Colours16() []RGB {
	return append(t.Base[:], t.Bright[:]...)
}

// Index256 returns the xterm-256 colour index approximating c. The closest
// cube colour and the closest grey are compared, the cube winning ties.
func (t *Tables) Index256(c RGB) int {
	ri, gi, bi := t.cubeStep(c.R), t.cubeStep(c.G), t.cubeStep(c.B)
	cube := RGB{t.CubeSteps[ri], t.CubeSteps[gi], t.CubeSteps[bi]}

	mean := (int(c.R) + int(c.G) + int(c.B)) / 3
	level := t.greyStep(mean)
	grey := RGB{t.Greys[level], t.Greys[level], t.Greys[level]}

	if Distance(c, grey) < Distance(c, cube) {
		return 232 + level
	}
	return 16 + 36*ri + 6*gi + bi
}

func (t *Tables) cubeStep(v uint8) int {
	best, bestDist := 0, 256
	for i, s := range t.CubeSteps {
		d := int(v) - int(s)
		if d < 0 {
			d = -d
		}
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

func (t *Tables) greyStep(v int) int {
	best, bestDist := 0, 256
	for i, g := range t.Greys {
		d := v - int(g)
		if d < 0 {
			d = -d
		}
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}
