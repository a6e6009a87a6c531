// Package render turns a pixel grid into lines of glyphs, one chixel per
// pixel.
package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/koki-develop/textinator/internal/colour"
	"github.com/koki-develop/textinator/internal/palette"
	"github.com/koki-develop/textinator/internal/size"
)

// Grid is a read only source of pixel samples.
type Grid interface {
	Size() size.Dimensions
	Sample(x, y int) palette.Sample
}

type Renderer struct {
	palette palette.Palette
	codec   colour.Codec
	policy  palette.Policy
}

type Option func(*Renderer)

// WithPolicy sets how bad samples are reported. The frame is rejected
// either way.
func WithPolicy(p palette.Policy) Option {
	return func(r *Renderer) {
		r.policy = p
	}
}

// New returns a renderer. A nil codec renders without colour.
func New(p palette.Palette, c colour.Codec, opts ...Option) *Renderer {
	if c == nil {
		c = colour.None
	}
	r := &Renderer{palette: p, codec: c, policy: palette.StopAtFirst}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render renders every row of g. If any cell fails no lines are returned.
func (r *Renderer) Render(g Grid) ([]string, error) {
	d := g.Size()
	if !d.Valid() {
		return nil, fmt.Errorf("%w: grid size %s", size.ErrInvalidImage, d)
	}

	lines := make([]string, 0, d.Height)
	var errs []error
	for y := 0; y < d.Height; y++ {
		line, err := r.line(g, y, d.Width)
		if err != nil {
			if r.policy == palette.StopAtFirst {
				return nil, err
			}
			errs = append(errs, err)
			continue
		}
		lines = append(lines, line)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return lines, nil
}

// Lines returns an iterator over the rows of g, top to bottom. Render is
// the materializing counterpart.
func (r *Renderer) Lines(g Grid) *Lines {
	return &Lines{r: r, g: g, d: g.Size()}
}

func (r *Renderer) line(g Grid, y, width int) (string, error) {
	samples := make([]palette.Sample, width)
	for x := range samples {
		samples[x] = g.Sample(x, y)
	}

	glyphs, err := r.palette.MapAll(samples, r.policy)
	if err != nil {
		return "", fmt.Errorf("row %d: %w", y, err)
	}

	b := new(strings.Builder)
	for x, glyph := range glyphs {
		if r.codec.Enabled() {
			glyph = r.codec.Wrap(rgb(samples[x]), glyph)
		}
		b.WriteString(glyph)
	}
	return b.String(), nil
}

// rgb converts an already validated sample. Greyscale becomes grey.
func rgb(s palette.Sample) colour.RGB {
	if !s.IsColour() {
		v := uint8(s[0])
		return colour.RGB{R: v, G: v, B: v}
	}
	return colour.RGB{R: uint8(s[0]), G: uint8(s[1]), B: uint8(s[2])}
}

// Lines walks a grid one row at a time. It cannot be rewound.
//
//	lines := r.Lines(grid)
//	for lines.Next() {
//		fmt.Println(lines.Text())
//	}
//	if err := lines.Err(); err != nil {
//		...
//	}
type Lines struct {
	r    *Renderer
	g    Grid
	d    size.Dimensions
	y    int
	text string
	err  error
	done bool
}

// Next renders the next row. It returns false once every row has been
// produced or a row failed.
func (l *Lines) Next() bool {
	if l.done {
		return false
	}
	if !l.d.Valid() {
		l.err = fmt.Errorf("%w: grid size %s", size.ErrInvalidImage, l.d)
	}
	if l.err != nil || l.y >= l.d.Height {
		l.done, l.text = true, ""
		return false
	}

	text, err := l.r.line(l.g, l.y, l.d.Width)
	if err != nil {
		l.err, l.done, l.text = err, true, ""
		return false
	}
	l.text = text
	l.y++
	return true
}

func (l *Lines) Text() string { return l.text }

func (l *Lines) Err() error { return l.err }
