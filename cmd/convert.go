package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/koki-develop/textinator/internal/convert"
	"github.com/koki-develop/textinator/internal/palette"
	"github.com/koki-develop/textinator/internal/resize"
	"github.com/spf13/cobra"
)

type convertFlags struct {
	width     int
	height    int
	correct   bool
	noCorrect bool
	fit       bool
	resample  string
	palette   string
	invert    bool
	colour    string
	target    string
	allErrors bool
	debug     bool
}

func newConvertCmd() *cobra.Command {
	f := &convertFlags{}

	cmd := &cobra.Command{
		Use:   "convert IMAGE [OUT]",
		Short: "Convert IMAGE to a text representation",
		Long: `Convert IMAGE to a text representation.
IMAGE may be - to read from standard input.
OUT is an optional file to save to; standard output is used by default.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := openInput(cmd, args[0])
			if err != nil {
				return err
			}
			defer in.Close()

			level := log.WarnLevel
			if f.debug {
				level = log.DebugLevel
			}
			logger := log.NewWithOptions(cmd.ErrOrStderr(), log.Options{Level: level, Prefix: "textinator"})

			lines, err := convert.NewConverter().Convert(&convert.Option{
				Input:         in,
				Width:         f.width,
				Height:        f.height,
				Fit:           f.fit,
				Correct:       f.correct && !f.noCorrect,
				Filter:        f.resample,
				Palette:       f.palette,
				Invert:        f.invert,
				Colour:        f.colour,
				ColourTarget:  f.target,
				CollectErrors: f.allErrors,
				Logger:        logger,
			})
			if err != nil {
				return err
			}

			if len(args) < 2 || args[1] == "-" {
				return convert.WriteLines(cmd.OutOrStdout(), lines)
			}
			return writeFile(args[1], lines)
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&f.width, "width", "w", 0, "Width of output. If height is not given, the image is scaled proportionally.")
	flags.IntVarP(&f.height, "height", "h", 0, "Height of output. If width is not given, the image is scaled proportionally. If neither is given, the terminal width is used.")
	flags.BoolVar(&f.correct, "correct", true, "Account for the proportions of monospaced characters.")
	flags.BoolVar(&f.noCorrect, "no-correct", false, "Disable --correct.")
	flags.BoolVar(&f.fit, "fit", false, "Fit the image inside the terminal.")
	flags.StringVarP(&f.resample, "resample", "r", resize.DefaultFilter, "Filter to use for resampling: "+strings.Join(resize.NewFilters().Names(), ", ")+".")
	flags.StringVarP(&f.palette, "palette", "p", palette.Default, "Palette for rendering images, from dark to bright.")
	flags.BoolVarP(&f.invert, "invert", "i", false, "Invert the palette.")
	flags.StringVarP(&f.colour, "colour", "c", "off", "Colour the characters: off, 8, 16, 256 or 24. The palette is still used.")
	flags.StringVar(&f.target, "colour-target", "foreground", "Colour the foreground or the background of characters.")
	flags.BoolVar(&f.allErrors, "all-errors", false, "Report every pixel that could not be rendered.")
	flags.BoolVar(&f.debug, "debug", false, "Log original, requested and result sizes.")
	// -h is taken by --height
	flags.Bool("help", false, "Help for convert.")

	return cmd
}

func openInput(cmd *cobra.Command, path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	return f, nil
}

func writeFile(path string, lines []string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()
	return convert.WriteLines(f, lines)
}
