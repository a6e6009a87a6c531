package size

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is returned when the sizing options are insufficient
	// or contradictory.
	ErrConfiguration = errors.New("invalid configuration")
	// ErrInvalidImage is returned for images that cannot be decoded or that
	// have no pixels.
	ErrInvalidImage = errors.New("invalid image")
)

// Dimensions is a character or pixel grid size.
type Dimensions struct {
	Width  int
	Height int
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}

// Valid reports whether both sides are positive.
func (d Dimensions) Valid() bool {
	return d.Width > 0 && d.Height > 0
}

// Request holds the user supplied constraints. A zero side is absent.
type Request struct {
	Width  int
	Height int
}

func (r Request) String() string {
	side := func(v int) string {
		if v == 0 {
			return "-"
		}
		return fmt.Sprint(v)
	}
	return side(r.Width) + "x" + side(r.Height)
}

// Calculate derives the output grid size from the original image size and
// the requested constraints. A missing side is scaled proportionally and
// truncated toward zero; when both sides are requested they are used as is.
func Calculate(original Dimensions, requested Request) (Dimensions, error) {
	if !original.Valid() {
		return Dimensions{}, fmt.Errorf("%w: image size %s", ErrInvalidImage, original)
	}
	if requested.Width < 0 || requested.Height < 0 {
		return Dimensions{}, fmt.Errorf("%w: negative size %s requested", ErrConfiguration, requested)
	}

	w, h := requested.Width, requested.Height
	switch {
	case w == 0 && h == 0:
		return Dimensions{}, fmt.Errorf("%w: width or height is required", ErrConfiguration)
	case h == 0:
		h = w * original.Height / original.Width
	case w == 0:
		w = h * original.Width / original.Height
	}

	return Dimensions{Width: atLeastOne(w), Height: atLeastOne(h)}, nil
}

// Correct halves the height to compensate for character cells being about
// twice as tall as they are wide.
func Correct(d Dimensions) Dimensions {
	return Dimensions{Width: d.Width, Height: atLeastOne(d.Height / 2)}
}

func atLeastOne(v int) int {
	if v < 1 {
		return 1
	}
	return v
}
