package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fixturegen/fixturegen/pkg/fixture"
)

// NewRawCommand creates the raw command
func NewRawCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "raw COUNT SIZE",
		Short: "Generate raw files of random bytes",
		Long: `Generate COUNT files of exactly SIZE random bytes each.

Files are named by their 1-based index with a ".bin" extension, e.g.
"1.bin" or, with --pad 3, "001.bin". Bytes are written in bounded chunks
so memory use does not depend on SIZE.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRaw(cmd, args)
		},
	}
	addGenerateFlags(cmd)
	cmd.Flags().String("ext", "bin", "File extension (without dot)")
	cmd.Flags().Int("chunk-size", 0, "Write chunk size in bytes (default 1 MiB)")
	return cmd
}

func runRaw(cmd *cobra.Command, args []string) error {
	count, err := parseIntArg("count", args[0])
	if err != nil {
		return err
	}
	size, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid size %q: %w", args[1], err)
	}

	req := fixture.Request{
		Mode:  fixture.ModeRaw,
		Count: count,
		Size:  size,
	}
	req.Ext, _ = cmd.Flags().GetString("ext")

	return runGenerate(cmd, req)
}
