package palette

import (
	"errors"
	"fmt"
	"math"

	"github.com/koki-develop/textinator/internal/util"
	"github.com/rivo/uniseg"
)

// Default goes from dark to bright.
const Default = "@%8#$VYx*=+:~-. "

var (
	ErrEmptyPalette = errors.New("palette is empty")
	// ErrOutOfRange is returned for a value outside the range it is mapped from.
	ErrOutOfRange = errors.New("value out of range")
	// ErrInvalidSample is returned for a sample that is neither a single
	// luminosity nor a well formed RGB triple.
	ErrInvalidSample = errors.New("invalid sample")
)

// Range is a half open interval [Lo, Hi).
type Range struct {
	Lo, Hi float64
}

// DefaultRange covers 8-bit channel values.
var DefaultRange = Range{Lo: 0, Hi: 256}

func (r Range) Contains(v float64) bool {
	return r.Lo <= v && v < r.Hi
}

// Palette is an ordered list of glyphs, darkest first. Each glyph is a
// single grapheme cluster.
type Palette []string

// New splits s into grapheme clusters.
func New(s string) (Palette, error) {
	var p Palette
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		p = append(p, g.Str())
	}
	if len(p) == 0 {
		return nil, ErrEmptyPalette
	}
	return p, nil
}

// Invert returns a reversed copy of p.
func (p Palette) Invert() Palette {
	inv := make(Palette, len(p))
	for i, c := range p {
		inv[len(p)-1-i] = c
	}
	return inv
}

func (p Palette) String() string {
	b := make([]byte, 0, len(p))
	for _, c := range p {
		b = append(b, c...)
	}
	return string(b)
}

// Index linearly scales v from r onto [0, len(p)) and truncates it.
func (p Palette) Index(v float64, r Range) (int, error) {
	if len(p) == 0 {
		return 0, ErrEmptyPalette
	}
	if math.IsNaN(v) || !r.Contains(v) {
		return 0, fmt.Errorf("%w: %v not in [%v, %v)", ErrOutOfRange, v, r.Lo, r.Hi)
	}

	i := int(util.Scale(v, r.Lo, r.Hi, 0, float64(len(p))))
	// floating point error must never push i past either end
	return util.Max(0, util.Min(i, len(p)-1)), nil
}

// Char returns the glyph for v over r.
func (p Palette) Char(v float64, r Range) (string, error) {
	i, err := p.Index(v, r)
	if err != nil {
		return "", err
	}
	return p[i], nil
}

// Map returns the glyph for a luminosity or RGB sample.
func (p Palette) Map(s Sample) (string, error) {
	lum, err := Luminosity(s)
	if err != nil {
		return "", err
	}
	return p.Char(lum, DefaultRange)
}
