package render

import (
	"bytes"
	"image"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/koki-develop/textinator/internal/colour"
	"github.com/koki-develop/textinator/internal/imageio"
	"github.com/koki-develop/textinator/internal/palette"
	"github.com/koki-develop/textinator/internal/size"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sliceGrid is a row major grid for tests.
type sliceGrid struct {
	width   int
	samples []palette.Sample
}

func (g sliceGrid) Size() size.Dimensions {
	return size.Dimensions{Width: g.width, Height: len(g.samples) / g.width}
}

func (g sliceGrid) Sample(x, y int) palette.Sample {
	return g.samples[y*g.width+x]
}

func greys(width int, values ...float64) sliceGrid {
	g := sliceGrid{width: width}
	for _, v := range values {
		g.samples = append(g.samples, palette.Grey(v))
	}
	return g
}

func mustPalette(t *testing.T, s string) palette.Palette {
	t.Helper()
	p, err := palette.New(s)
	require.NoError(t, err)
	return p
}

func TestRenderer_Render(t *testing.T) {
	r := New(mustPalette(t, "ab"), nil)

	lines, err := r.Render(greys(2, 0, 85, 170, 255))
	require.NoError(t, err)
	assert.Equal(t, []string{"aa", "bb"}, lines)
}

func TestRenderer_Render_RowOrder(t *testing.T) {
	r := New(mustPalette(t, "0123"), nil)

	lines, err := r.Render(greys(3, 0, 64, 128, 192, 255, 0))
	require.NoError(t, err)
	assert.Equal(t, []string{"012", "330"}, lines)
}

func TestRenderer_Render_Image(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 2, 2))
	copy(img.Pix, []uint8{0, 85, 170, 255})
	before := bytes.Clone(img.Pix)

	g, err := imageio.NewGrid(img)
	require.NoError(t, err)

	lines, err := New(mustPalette(t, "ab"), nil).Render(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"aa", "bb"}, lines)
	assert.Equal(t, before, img.Pix, "rendering must not touch the image")
}

func TestRenderer_Lines(t *testing.T) {
	lines := New(mustPalette(t, "ab"), nil).Lines(greys(2, 0, 85, 170, 255))

	require.True(t, lines.Next())
	assert.Equal(t, "aa", lines.Text())
	require.True(t, lines.Next())
	assert.Equal(t, "bb", lines.Text())
	assert.False(t, lines.Next())
	assert.False(t, lines.Next())
	assert.Empty(t, lines.Text())
	assert.NoError(t, lines.Err())
}

func TestRenderer_Lines_Error(t *testing.T) {
	g := greys(2, 0, 85, 170, 255)
	g.samples[2] = palette.Sample{1, 2}
	lines := New(mustPalette(t, "ab"), nil).Lines(g)

	require.True(t, lines.Next())
	assert.Equal(t, "aa", lines.Text())
	assert.False(t, lines.Next())
	assert.ErrorIs(t, lines.Err(), palette.ErrInvalidSample)
	assert.False(t, lines.Next())
}

func TestRenderer_Lines_EmptyGrid(t *testing.T) {
	lines := New(mustPalette(t, "ab"), nil).Lines(sliceGrid{width: 1})
	assert.False(t, lines.Next())
	assert.ErrorIs(t, lines.Err(), size.ErrInvalidImage)
}

func TestRenderer_Render_Errors(t *testing.T) {
	g := greys(2, 0, 300, 170, 255)
	g.samples[3] = palette.Sample{1, 2, 3, 4}

	t.Run("stop at first", func(t *testing.T) {
		lines, err := New(mustPalette(t, "ab"), nil).Render(g)
		assert.Nil(t, lines)
		assert.ErrorIs(t, err, palette.ErrOutOfRange)
		assert.NotErrorIs(t, err, palette.ErrInvalidSample)
	})

	t.Run("collect all", func(t *testing.T) {
		lines, err := New(mustPalette(t, "ab"), nil, WithPolicy(palette.CollectAll)).Render(g)
		assert.Nil(t, lines)
		assert.ErrorIs(t, err, palette.ErrOutOfRange)
		assert.ErrorIs(t, err, palette.ErrInvalidSample)
		assert.Contains(t, err.Error(), "row 0")
		assert.Contains(t, err.Error(), "row 1")
	})

	t.Run("empty grid", func(t *testing.T) {
		_, err := New(mustPalette(t, "ab"), nil).Render(sliceGrid{width: 3})
		assert.ErrorIs(t, err, size.ErrInvalidImage)
	})
}

func TestRenderer_Render_Colour(t *testing.T) {
	g := sliceGrid{width: 2, samples: []palette.Sample{
		palette.RGB(255, 0, 0), palette.RGB(0, 0, 0),
		palette.RGB(255, 255, 255), palette.Grey(128),
	}}
	p := mustPalette(t, "ab")

	plain, err := New(p, nil).Render(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"aa", "bb"}, plain)

	tables := colour.NewTables()
	for _, d := range []colour.Depth{colour.Depth8, colour.Depth16, colour.Depth256, colour.DepthTrue} {
		for _, target := range []colour.Target{colour.Foreground, colour.Background} {
			codec, err := colour.NewCodec(colour.Mode{Depth: d, Target: target}, tables)
			require.NoError(t, err)

			coloured, err := New(p, codec).Render(g)
			require.NoError(t, err)
			require.Len(t, coloured, len(plain))
			for i := range coloured {
				assert.NotEqual(t, plain[i], coloured[i])
				assert.Equal(t, plain[i], ansi.Strip(coloured[i]))
			}
		}
	}
}

func TestRenderer_Render_ColourSequences(t *testing.T) {
	g := sliceGrid{width: 2, samples: []palette.Sample{palette.RGB(255, 0, 0), palette.Grey(128)}}
	p := mustPalette(t, "ab")

	fg, err := colour.NewCodec(colour.Mode{Depth: colour.Depth256}, nil)
	require.NoError(t, err)
	lines, err := New(p, fg).Render(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"\x1b[38;5;196ma\x1b[0m\x1b[38;5;244mb\x1b[0m"}, lines)

	bg, err := colour.NewCodec(colour.Mode{Depth: colour.Depth256, Target: colour.Background}, nil)
	require.NoError(t, err)
	lines, err = New(p, bg).Render(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"\x1b[48;5;196ma\x1b[0m\x1b[48;5;244mb\x1b[0m"}, lines)
}
