package commands

import (
	"github.com/spf13/cobra"

	"github.com/fixturegen/fixturegen/pkg/fixture"
)

// NewBMPCommand creates the bmp command
func NewBMPCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bmp COUNT WIDTH HEIGHT",
		Short: "Generate 24-bit BMP images with random pixels",
		Long: `Generate COUNT valid 24-bit uncompressed BMP images of WIDTH x HEIGHT
pixels, each filled with random pixel data.

Files are named by their 1-based index with a ".bmp" extension. Rows are
written bottom-up and padded to a 4-byte boundary per the BMP format.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBMP(cmd, args)
		},
	}
	addGenerateFlags(cmd)
	return cmd
}

func runBMP(cmd *cobra.Command, args []string) error {
	count, err := parseIntArg("count", args[0])
	if err != nil {
		return err
	}
	width, err := parseIntArg("width", args[1])
	if err != nil {
		return err
	}
	height, err := parseIntArg("height", args[2])
	if err != nil {
		return err
	}

	req := fixture.Request{
		Mode:   fixture.ModeBMP,
		Count:  count,
		Width:  width,
		Height: height,
	}
	return runGenerate(cmd, req)
}
