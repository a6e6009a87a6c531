package colour

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
)

const (
	escape = "\x1b"

	extendedForeground color.Attribute = 38
	extendedBackground color.Attribute = 48
	extended256        color.Attribute = 5
	extendedRGB        color.Attribute = 2
)

var (
	foreground8 = [8]color.Attribute{
		color.FgBlack, color.FgRed, color.FgGreen, color.FgYellow,
		color.FgBlue, color.FgMagenta, color.FgCyan, color.FgWhite,
	}
	background8 = [8]color.Attribute{
		color.BgBlack, color.BgRed, color.BgGreen, color.BgYellow,
		color.BgBlue, color.BgMagenta, color.BgCyan, color.BgWhite,
	}
	foregroundBright8 = [8]color.Attribute{
		color.FgHiBlack, color.FgHiRed, color.FgHiGreen, color.FgHiYellow,
		color.FgHiBlue, color.FgHiMagenta, color.FgHiCyan, color.FgHiWhite,
	}
	backgroundBright8 = [8]color.Attribute{
		color.BgHiBlack, color.BgHiRed, color.BgHiGreen, color.BgHiYellow,
		color.BgHiBlue, color.BgHiMagenta, color.BgHiCyan, color.BgHiWhite,
	}
)

// None leaves glyphs uncoloured.
var None Codec = plain{}

// Codec wraps a glyph in the escape sequence for a colour.
type Codec interface {
	Wrap(c RGB, glyph string) string
	// Enabled is false when Wrap leaves glyphs untouched.
	Enabled() bool
}

// NewCodec returns the codec for m. Tables are only read.
func NewCodec(m Mode, t *Tables) (Codec, error) {
	if t == nil {
		t = NewTables()
	}

	switch m.Depth {
	case Off:
		return None, nil
	case Depth8:
		if m.Target == Background {
			return &named{colours: t.Base[:], codes: background8[:]}, nil
		}
		return &named{colours: t.Base[:], codes: foreground8[:]}, nil
	case Depth16:
		if m.Target == Background {
			return &named{colours: t.Colours16(), codes: append(background8[:], backgroundBright8[:]...)}, nil
		}
		return &named{colours: t.Colours16(), codes: append(foreground8[:], foregroundBright8[:]...)}, nil
	case Depth256:
		return &xterm256{introducer: introducer(m.Target), tables: t}, nil
	case DepthTrue:
		return &trueColour{introducer: introducer(m.Target)}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedMode, m)
}

func introducer(t Target) color.Attribute {
	if t == Background {
		return extendedBackground
	}
	return extendedForeground
}

// sgr wraps glyph between a select graphic rendition sequence and a reset.
func sgr(glyph string, params ...color.Attribute) string {
	b := make([]byte, 0, len(glyph)+24)
	b = append(b, escape+"["...)
	for i, p := range params {
		if i > 0 {
			b = append(b, ';')
		}
		b = strconv.AppendInt(b, int64(p), 10)
	}
	b = append(b, 'm')
	b = append(b, glyph...)
	b = append(b, escape+"["...)
	b = strconv.AppendInt(b, int64(color.Reset), 10)
	b = append(b, 'm')
	return string(b)
}

type plain struct{}

func (plain) Wrap(_ RGB, glyph string) string { return glyph }
func (plain) Enabled() bool                   { return false }

// named maps colours onto the 8 or 16 named terminal colours.
type named struct {
	colours []RGB
	codes   []color.Attribute
}

func (n *named) Wrap(c RGB, glyph string) string {
	return sgr(glyph, n.codes[Nearest(c, n.colours)])
}

func (n *named) Enabled() bool { return true }

type xterm256 struct {
	introducer color.Attribute
	tables     *Tables
}

func (x *xterm256) Wrap(c RGB, glyph string) string {
	return sgr(glyph, x.introducer, extended256, color.Attribute(x.tables.Index256(c)))
}

func (x *xterm256) Enabled() bool { return true }

type trueColour struct {
	introducer color.Attribute
}

func (t *trueColour) Wrap(c RGB, glyph string) string {
	return sgr(glyph, t.introducer, extendedRGB, color.Attribute(c.R), color.Attribute(c.G), color.Attribute(c.B))
}

func (t *trueColour) Enabled() bool { return true }
