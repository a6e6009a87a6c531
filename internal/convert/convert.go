package convert

import (
	"bufio"
	"fmt"
	"image"
	"io"

	"github.com/charmbracelet/log"
	"github.com/koki-develop/textinator/internal/colour"
	"github.com/koki-develop/textinator/internal/imageio"
	"github.com/koki-develop/textinator/internal/palette"
	"github.com/koki-develop/textinator/internal/render"
	"github.com/koki-develop/textinator/internal/resize"
	"github.com/koki-develop/textinator/internal/size"
	"github.com/koki-develop/textinator/internal/terminal"
)

type Option struct {
	Input io.Reader

	Width   int
	Height  int
	Fit     bool
	Correct bool
	Filter  string

	Palette      string
	Invert       bool
	Colour       string
	ColourTarget string

	// CollectErrors reports every bad pixel instead of the first one.
	CollectErrors bool

	Logger *log.Logger
	// TerminalSize is used when no size is requested. Defaults to the
	// terminal attached to stdout.
	TerminalSize func() size.Dimensions
}

// Converter holds the lookup tables shared by every conversion.
type Converter struct {
	resizer *resize.Resizer
	filters *resize.Filters
	tables  *colour.Tables
}

func NewConverter() *Converter {
	return &Converter{
		resizer: resize.NewResizer(),
		filters: resize.NewFilters(),
		tables:  colour.NewTables(),
	}
}

// Convert renders the whole image. Nothing is returned unless every line
// rendered.
func (c *Converter) Convert(opt *Option) ([]string, error) {
	logger := opt.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	termSize := opt.TerminalSize
	if termSize == nil {
		termSize = func() size.Dimensions { return terminal.SizeOr(terminal.Fallback) }
	}

	p, err := palette.New(opt.Palette)
	if err != nil {
		return nil, err
	}
	if opt.Invert {
		p = p.Invert()
	}

	filter := opt.Filter
	if filter == "" {
		filter = resize.DefaultFilter
	}
	interp, err := c.filters.Lookup(filter)
	if err != nil {
		return nil, err
	}

	mode, err := colour.ParseMode(opt.Colour, opt.ColourTarget)
	if err != nil {
		return nil, err
	}
	codec, err := colour.NewCodec(mode, c.tables)
	if err != nil {
		return nil, err
	}

	img, format, err := imageio.Decode(opt.Input)
	if err != nil {
		return nil, err
	}
	original := imageio.Dimensions(img)

	requested := size.Request{Width: opt.Width, Height: opt.Height}
	target, err := c.targetSize(img, requested, opt, termSize)
	if err != nil {
		return nil, err
	}

	resized := c.resizer.Resize(img, target, interp)
	if opt.Correct {
		resized = c.resizer.Resize(resized, size.Correct(target), interp)
	}

	logger.Debug("resized image",
		"format", format,
		"original", original,
		"requested", requested,
		"result", imageio.Dimensions(resized),
		"filter", filter,
		"colour", mode,
	)

	grid, err := imageio.NewGrid(resized)
	if err != nil {
		return nil, err
	}

	var opts []render.Option
	if opt.CollectErrors {
		opts = append(opts, render.WithPolicy(palette.CollectAll))
	}
	lines, err := render.New(p, codec, opts...).Render(grid)
	if err != nil {
		return nil, fmt.Errorf("failed to render image: %w", err)
	}
	return lines, nil
}

func (c *Converter) targetSize(img image.Image, requested size.Request, opt *Option, termSize func() size.Dimensions) (size.Dimensions, error) {
	if opt.Fit {
		if requested.Width != 0 || requested.Height != 0 {
			return size.Dimensions{}, fmt.Errorf("%w: fit cannot be combined with width or height", size.ErrConfiguration)
		}
		box := termSize()
		if opt.Correct {
			// correction halves the height again afterwards
			box.Height *= 2
		}
		return c.resizer.Fit(img, box)
	}

	if requested.Width == 0 && requested.Height == 0 {
		requested.Width = termSize().Width
	}
	return size.Calculate(imageio.Dimensions(img), requested)
}

// WriteLines writes every line followed by a newline.
func WriteLines(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// Run converts opt.Input and writes the result to w.
func Run(opt *Option, w io.Writer) error {
	lines, err := NewConverter().Convert(opt)
	if err != nil {
		return err
	}
	return WriteLines(w, lines)
}
