package size

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name      string
		original  Dimensions
		requested Request
		want      Dimensions
	}{
		{"width only, landscape", Dimensions{1920, 1080}, Request{Width: 20}, Dimensions{20, 11}},
		{"width only, portrait", Dimensions{500, 1240}, Request{Width: 200}, Dimensions{200, 496}},
		{"height only truncates", Dimensions{1024, 768}, Request{Height: 413}, Dimensions{550, 413}},
		{"height only, narrow", Dimensions{10, 670}, Request{Height: 800}, Dimensions{11, 800}},
		{"both given", Dimensions{500, 600}, Request{Width: 42, Height: 612}, Dimensions{42, 612}},
		{"tiny result is raised to one", Dimensions{1920, 1080}, Request{Width: 1}, Dimensions{1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Calculate(tt.original, tt.requested)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalculate_Errors(t *testing.T) {
	tests := []struct {
		name      string
		original  Dimensions
		requested Request
		wantErr   error
	}{
		{"nothing requested", Dimensions{100, 100}, Request{}, ErrConfiguration},
		{"negative width", Dimensions{100, 100}, Request{Width: -3}, ErrConfiguration},
		{"negative height", Dimensions{100, 100}, Request{Width: 3, Height: -1}, ErrConfiguration},
		{"zero width image", Dimensions{0, 100}, Request{Width: 10}, ErrInvalidImage},
		{"zero height image", Dimensions{100, 0}, Request{Height: 10}, ErrInvalidImage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Calculate(tt.original, tt.requested)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCorrect(t *testing.T) {
	assert.Equal(t, Dimensions{20, 5}, Correct(Dimensions{20, 11}))
	assert.Equal(t, Dimensions{200, 248}, Correct(Dimensions{200, 496}))
	assert.Equal(t, Dimensions{7, 1}, Correct(Dimensions{7, 1}))
}

func TestRequestString(t *testing.T) {
	assert.Equal(t, "20x-", Request{Width: 20}.String())
	assert.Equal(t, "-x413", Request{Height: 413}.String())
	assert.Equal(t, "1920x1080", Dimensions{1920, 1080}.String())
}
