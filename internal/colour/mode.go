package colour

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnsupportedMode = errors.New("unsupported colour mode")

// Depth is the number of colours the terminal is assumed to support.
type Depth int

const (
	Off Depth = iota
	Depth8
	Depth16
	Depth256
	DepthTrue
)

func (d Depth) String() string {
	switch d {
	case Off:
		return "off"
	case Depth8:
		return "8"
	case Depth16:
		return "16"
	case Depth256:
		return "256"
	case DepthTrue:
		return "24"
	}
	return fmt.Sprintf("Depth(%d)", int(d))
}

func ParseDepth(s string) (Depth, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "off", "none", "false":
		return Off, nil
	case "8":
		return Depth8, nil
	case "16":
		return Depth16, nil
	case "256", "true":
		return Depth256, nil
	case "24", "24bit", "truecolor", "truecolour":
		return DepthTrue, nil
	}
	return Off, fmt.Errorf("%w: %q", ErrUnsupportedMode, s)
}

// Target selects whether the glyph or the cell behind it is coloured.
type Target int

const (
	Foreground Target = iota
	Background
)

func (t Target) String() string {
	if t == Background {
		return "background"
	}
	return "foreground"
}

func ParseTarget(s string) (Target, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "foreground", "fg":
		return Foreground, nil
	case "background", "bg":
		return Background, nil
	}
	return Foreground, fmt.Errorf("%w: unknown colour target %q", ErrUnsupportedMode, s)
}

type Mode struct {
	Depth  Depth
	Target Target
}

func ParseMode(depth, target string) (Mode, error) {
	d, err := ParseDepth(depth)
	if err != nil {
		return Mode{}, err
	}
	t, err := ParseTarget(target)
	if err != nil {
		return Mode{}, err
	}
	return Mode{Depth: d, Target: t}, nil
}

func (m Mode) String() string {
	if m.Depth == Off {
		return m.Depth.String()
	}
	return m.Depth.String() + "/" + m.Target.String()
}
