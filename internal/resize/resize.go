package resize

import (
	"fmt"
	"image"
	"sort"
	"strings"

	"github.com/koki-develop/textinator/internal/size"
	"github.com/koki-develop/textinator/internal/util"
	"github.com/nfnt/resize"
	"github.com/qeesung/image2ascii/convert"
)

// DefaultFilter is the filter used when none is requested.
const DefaultFilter = "antialias"

// Filters maps resample filter names onto interpolation functions.
type Filters struct {
	byName map[string]resize.InterpolationFunction
}

func NewFilters() *Filters {
	return &Filters{
		byName: map[string]resize.InterpolationFunction{
			"nearest":   resize.NearestNeighbor,
			"bilinear":  resize.Bilinear,
			"bicubic":   resize.Bicubic,
			"antialias": resize.Lanczos3,
		},
	}
}

func (f *Filters) Lookup(name string) (resize.InterpolationFunction, error) {
	interp, ok := f.byName[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("%w: unknown resample filter %q (want one of %s)", size.ErrConfiguration, name, strings.Join(f.Names(), ", "))
	}
	return interp, nil
}

func (f *Filters) Names() []string {
	names := make([]string, 0, len(f.byName))
	for name := range f.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type Resizer struct {
	resizeHandler *convert.ImageResizeHandler
}

func NewResizer() *Resizer {
	return &Resizer{
		resizeHandler: convert.NewResizeHandler().(*convert.ImageResizeHandler),
	}
}

// Resize scales img to exactly d. An image that already has that size is
// returned unchanged.
func (r *Resizer) Resize(img image.Image, d size.Dimensions, interp resize.InterpolationFunction) image.Image {
	b := img.Bounds()
	if b.Dx() == d.Width && b.Dy() == d.Height {
		return img
	}
	return resize.Resize(uint(d.Width), uint(d.Height), img, interp)
}

// Fit returns the largest size with the proportions of img that fits in box.
func (r *Resizer) Fit(img image.Image, box size.Dimensions) (size.Dimensions, error) {
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return size.Dimensions{}, fmt.Errorf("%w: image size %dx%d", size.ErrInvalidImage, b.Dx(), b.Dy())
	}
	if !box.Valid() {
		return size.Dimensions{}, fmt.Errorf("%w: cannot fit into %s", size.ErrConfiguration, box)
	}

	w, h := r.resizeHandler.CalcFitSize(float64(box.Width), float64(box.Height), float64(b.Dx()), float64(b.Dy()))
	return size.Dimensions{
		Width:  util.Max(1, util.Min(int(w), box.Width)),
		Height: util.Max(1, util.Min(int(h), box.Height)),
	}, nil
}
