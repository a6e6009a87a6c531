package imageio

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/koki-develop/textinator/internal/palette"
	"github.com/koki-develop/textinator/internal/size"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Decode reads an image in any registered format.
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("%w: failed to decode image: %v", size.ErrInvalidImage, err)
	}
	if !Dimensions(img).Valid() {
		return nil, "", fmt.Errorf("%w: %s image has no pixels", size.ErrInvalidImage, format)
	}
	return img, format, nil
}

func Dimensions(img image.Image) size.Dimensions {
	b := img.Bounds()
	return size.Dimensions{Width: b.Dx(), Height: b.Dy()}
}

// Grid exposes the pixels of an image as samples. Greyscale images yield
// single luminosity samples, every other image yields RGB triples.
type Grid struct {
	img  image.Image
	grey bool
}

func NewGrid(img image.Image) (*Grid, error) {
	if !Dimensions(img).Valid() {
		return nil, fmt.Errorf("%w: image has no pixels", size.ErrInvalidImage)
	}
	m := img.ColorModel()
	return &Grid{img: img, grey: m == color.GrayModel || m == color.Gray16Model}, nil
}

func (g *Grid) Size() size.Dimensions {
	return Dimensions(g.img)
}

// Sample returns the pixel at (x, y) relative to the image origin.
func (g *Grid) Sample(x, y int) palette.Sample {
	origin := g.img.Bounds().Min
	c := g.img.At(origin.X+x, origin.Y+y)
	if g.grey {
		grey := color.GrayModel.Convert(c).(color.Gray)
		return palette.Grey(float64(grey.Y))
	}
	rgba := color.NRGBAModel.Convert(c).(color.NRGBA)
	return palette.RGB(float64(rgba.R), float64(rgba.G), float64(rgba.B))
}
