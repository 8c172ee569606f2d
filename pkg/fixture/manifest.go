package fixture

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ManifestName is the filename of the run manifest
const ManifestName = "manifest.json"

// Manifest records a completed run for downstream tooling. It is written
// into the output directory alongside the generated files.
type Manifest struct {
	RunID     string    `json:"run_id"`
	CreatedAt time.Time `json:"created_at"`
	Mode      Mode      `json:"mode"`
	Count     int       `json:"count"`

	SizeBytes int64 `json:"size_bytes,omitempty"` // raw mode
	Width     int   `json:"width,omitempty"`      // bmp mode
	Height    int   `json:"height,omitempty"`     // bmp mode
	PadWidth  int   `json:"pad_width,omitempty"`

	TotalBytes int64      `json:"total_bytes"`
	Files      []FileInfo `json:"files"`
}

// WriteManifest writes the run manifest into the request's output directory
// and returns the manifest path. Checksums come from the write path; files
// are never read back.
func WriteManifest(req Request, result *Result) (string, error) {
	manifest := Manifest{
		RunID:      result.RunID,
		CreatedAt:  result.StartedAt,
		Mode:       req.Mode,
		Count:      req.Count,
		PadWidth:   req.PadWidth,
		TotalBytes: result.TotalBytes,
		Files:      result.Files,
	}
	switch req.Mode {
	case ModeBMP:
		manifest.Width = req.Width
		manifest.Height = req.Height
	default:
		manifest.SizeBytes = req.Size
	}

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal manifest: %w", err)
	}

	path := filepath.Join(req.OutDir, ManifestName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", &IOError{Op: "write", Path: path, Err: err}
	}
	return path, nil
}
