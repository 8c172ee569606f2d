package fixture

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Generator writes fixture files per a Request
type Generator struct {
	logger *zap.Logger
}

// New creates a new generator
func New(logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{logger: logger}
}

// Generate produces the requested files sequentially, in index order.
// Each file is fully written and closed before the next begins; a failure
// mid-write removes the partial file and aborts the run. Files written by
// earlier indexes remain on disk.
func (g *Generator) Generate(req Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(req.OutDir, 0755); err != nil {
		return nil, &IOError{Op: "mkdir", Path: req.OutDir, Err: err}
	}

	if err := g.checkDiskSpace(req); err != nil {
		return nil, err
	}

	start := time.Now()
	result := &Result{
		RunID:     uuid.NewString(),
		Mode:      req.Mode,
		StartedAt: start.UTC(),
		Files:     make([]FileInfo, 0, req.Count),
	}

	for i := 1; i <= req.Count; i++ {
		name := req.FileName(i)
		path := filepath.Join(req.OutDir, name)

		var info FileInfo
		var err error
		switch req.Mode {
		case ModeBMP:
			info, err = g.writeBMPFile(path, req.Width, req.Height)
		default:
			info, err = g.writeRawFile(path, req.Size, req.chunkSize())
		}
		if err != nil {
			return nil, err
		}

		info.Name = name
		result.Files = append(result.Files, info)
		result.TotalBytes += info.Size

		g.logger.Info("Wrote fixture file",
			zap.String("path", path),
			zap.String("mode", string(req.Mode)),
			zap.Int64("bytes", info.Size),
			zap.Int("index", i),
			zap.Int("count", req.Count),
		)
	}

	result.Elapsed = Duration(time.Since(start))
	return result, nil
}

// writeRawFile writes size random bytes in bounded chunks so peak memory
// stays at chunkSize regardless of file size.
func (g *Generator) writeRawFile(path string, size int64, chunkSize int) (FileInfo, error) {
	f, err := os.Create(path)
	if err != nil {
		return FileInfo{}, &IOError{Op: "create", Path: path, Err: err}
	}

	hasher := sha256.New()
	buf := make([]byte, chunkSize)
	var written int64

	for written < size {
		n := chunkSize
		if remaining := size - written; remaining < int64(n) {
			n = int(remaining)
		}
		if _, err := rand.Read(buf[:n]); err != nil {
			return FileInfo{}, g.abortWrite(f, path, "randomize", err)
		}
		if _, err := f.Write(buf[:n]); err != nil {
			return FileInfo{}, g.abortWrite(f, path, "write", err)
		}
		hasher.Write(buf[:n])
		written += int64(n)
	}

	if err := f.Close(); err != nil {
		g.removePartial(path)
		return FileInfo{}, &IOError{Op: "close", Path: path, Err: err}
	}

	return FileInfo{
		Path:   path,
		Size:   written,
		SHA256: hex.EncodeToString(hasher.Sum(nil)),
	}, nil
}

// abortWrite closes and removes a partially written file, wrapping the
// original failure as an IOError.
func (g *Generator) abortWrite(f *os.File, path, op string, err error) error {
	f.Close()
	g.removePartial(path)
	return &IOError{Op: op, Path: path, Err: err}
}

func (g *Generator) removePartial(path string) {
	if err := os.Remove(path); err != nil {
		g.logger.Warn("Failed to remove partial file",
			zap.String("path", path),
			zap.Error(err),
		)
	}
}
