package terminal

import (
	"fmt"
	"os"

	"github.com/koki-develop/textinator/internal/size"
	"golang.org/x/term"
)

// Fallback is used when the output is not a terminal.
var Fallback = size.Dimensions{Width: 80, Height: 24}

// Size returns the character grid of the terminal attached to stdout.
func Size() (size.Dimensions, error) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return size.Dimensions{}, fmt.Errorf("failed to get terminal size: %w", err)
	}
	d := size.Dimensions{Width: w, Height: h}
	if !d.Valid() {
		return size.Dimensions{}, fmt.Errorf("terminal reported size %s", d)
	}
	return d, nil
}

func SizeOr(fallback size.Dimensions) size.Dimensions {
	d, err := Size()
	if err != nil {
		return fallback
	}
	return d
}
