package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	cmdconfig "github.com/fixturegen/fixturegen/cmd/fixturegen/config"
	"github.com/fixturegen/fixturegen/pkg/fixture"
	"github.com/fixturegen/fixturegen/pkg/observability"
)

// addGenerateFlags registers the flags shared by the raw and bmp commands
func addGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("out", "C", "", "Output directory (default: current directory)")
	cmd.Flags().Int("pad", 0, "Zero-pad width for the file index (0 disables padding)")
	cmd.Flags().String("prefix", "", "Filename prefix")
	cmd.Flags().Bool("manifest", false, "Write manifest.json into the output directory")
	cmd.Flags().StringP("output", "o", "table", "Summary format (table, json, yaml)")
}

// runGenerate loads config, runs the generator, and prints the summary
func runGenerate(cmd *cobra.Command, req fixture.Request) error {
	cfg, err := cmdconfig.LoadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := observability.NewLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	req.OutDir = cfg.OutDir
	req.PadWidth = cfg.PadWidth
	req.Prefix = cfg.Prefix
	req.ChunkSize = cfg.ChunkSize

	generator := fixture.New(logger)
	result, err := generator.Generate(req)
	if err != nil {
		return err
	}

	if writeManifest, _ := cmd.Flags().GetBool("manifest"); writeManifest {
		path, err := fixture.WriteManifest(req, result)
		if err != nil {
			return err
		}
		logger.Info("Wrote manifest", zap.String("path", path))
	}

	format, _ := cmd.Flags().GetString("output")
	return cmdconfig.NewOutputter(format).PrintResult(result)
}

// parseIntArg parses a positional integer argument, keeping the parse
// error descriptive. Range validation belongs to the generator.
func parseIntArg(name, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, value, err)
	}
	return n, nil
}
