package cmd

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "textinator",
		Short:         "Render images as text",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	cmd.AddCommand(newConvertCmd())
	return cmd
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		_, _ = color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
