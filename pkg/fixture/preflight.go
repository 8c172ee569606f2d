package fixture

import (
	"fmt"

	"github.com/shirou/gopsutil/v3/disk"
	"go.uber.org/zap"
)

// checkDiskSpace verifies the output directory's filesystem has room for the
// whole run before any file is written. A failed usage lookup is not fatal.
func (g *Generator) checkDiskSpace(req Request) error {
	required := req.requiredBytes()
	if required == 0 {
		return nil
	}

	usage, err := disk.Usage(req.OutDir)
	if err != nil {
		g.logger.Warn("Failed to query disk usage, skipping preflight",
			zap.String("dir", req.OutDir),
			zap.Error(err),
		)
		return nil
	}

	if usage.Free < uint64(required) {
		return &IOError{
			Op:   "preflight",
			Path: req.OutDir,
			Err:  fmt.Errorf("run requires %d bytes, %d free", required, usage.Free),
		}
	}

	g.logger.Debug("Disk preflight passed",
		zap.Int64("required_bytes", required),
		zap.Uint64("free_bytes", usage.Free),
	)
	return nil
}
