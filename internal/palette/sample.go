package palette

import (
	"errors"
	"fmt"
	"math"
)

// Luminosity weights for RGB samples.
const (
	RedWeight   = 0.20
	GreenWeight = 0.72
	BlueWeight  = 0.07
)

// Sample is either a single luminosity or an R, G, B triple, every
// component in [0, 256).
type Sample []float64

func Grey(v float64) Sample {
	return Sample{v}
}

func RGB(r, g, b float64) Sample {
	return Sample{r, g, b}
}

// IsColour reports whether s carries three components.
func (s Sample) IsColour() bool {
	return len(s) == 3
}

// Luminosity derives a brightness from s. A single component is returned as
// is so that range checks stay with the caller.
func Luminosity(s Sample) (float64, error) {
	switch len(s) {
	case 1:
		return s[0], nil
	case 3:
		for _, c := range s {
			if math.IsNaN(c) || !DefaultRange.Contains(c) {
				return 0, fmt.Errorf("%w: component %v not in [0, 256)", ErrInvalidSample, c)
			}
		}
		return RedWeight*s[0] + GreenWeight*s[1] + BlueWeight*s[2], nil
	default:
		return 0, fmt.Errorf("%w: expected 1 or 3 components, got %d", ErrInvalidSample, len(s))
	}
}

// Policy decides how bulk mapping reacts to a bad sample.
type Policy int

const (
	// StopAtFirst returns as soon as one sample fails.
	StopAtFirst Policy = iota
	// CollectAll maps every sample and reports all failures together.
	CollectAll
)

// SampleError records the position of a sample that could not be mapped.
type SampleError struct {
	Index int
	Err   error
}

func (e *SampleError) Error() string {
	return fmt.Sprintf("sample %d: %v", e.Index, e.Err)
}

func (e *SampleError) Unwrap() error {
	return e.Err
}

// MapAll maps every sample. On failure no glyphs are returned.
func (p Palette) MapAll(samples []Sample, policy Policy) ([]string, error) {
	chars := make([]string, len(samples))
	var errs []error
	for i, s := range samples {
		c, err := p.Map(s)
		if err != nil {
			err = &SampleError{Index: i, Err: err}
			if policy == StopAtFirst {
				return nil, err
			}
			errs = append(errs, err)
			continue
		}
		chars[i] = c
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return chars, nil
}
