package fixture

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Mode selects what kind of files a request produces
type Mode string

const (
	// ModeRaw writes files of random bytes with an exact size
	ModeRaw Mode = "raw"
	// ModeBMP writes 24-bit uncompressed BMP images with random pixels
	ModeBMP Mode = "bmp"
)

// DefaultChunkSize is the write buffer size for raw files (1 MiB)
const DefaultChunkSize = 1 << 20

// Request describes one generation run
type Request struct {
	Count int  // Number of files to create (1-based index naming)
	Mode  Mode // Exclusive: raw ignores Width/Height, bmp ignores Size

	// Raw mode
	Size      int64 // Bytes per file
	ChunkSize int   // Write chunk size; 0 uses DefaultChunkSize

	// BMP mode
	Width  int // Pixels
	Height int // Pixels

	// Naming and placement
	OutDir   string // Output directory, created if absent
	PadWidth int    // Zero-pad width for the index; 0 disables padding
	Prefix   string // Optional filename prefix ("p" -> "p_001.bin")
	Ext      string // Raw mode extension; empty means "bin", bmp is always "bmp"
}

// Validate checks the request against its constraints
func (r Request) Validate() error {
	switch r.Mode {
	case ModeRaw, ModeBMP:
	default:
		return &InvalidArgumentError{Field: "mode", Message: fmt.Sprintf("unknown mode %q", string(r.Mode))}
	}
	if r.Count < 1 {
		return &InvalidArgumentError{Field: "count", Message: fmt.Sprintf("must be >= 1, got %d", r.Count)}
	}
	if r.Mode == ModeRaw && r.Size < 0 {
		return &InvalidArgumentError{Field: "size", Message: fmt.Sprintf("must be >= 0, got %d", r.Size)}
	}
	if r.Mode == ModeBMP {
		if r.Width < 1 {
			return &InvalidArgumentError{Field: "width", Message: fmt.Sprintf("must be >= 1, got %d", r.Width)}
		}
		if r.Height < 1 {
			return &InvalidArgumentError{Field: "height", Message: fmt.Sprintf("must be >= 1, got %d", r.Height)}
		}
		// The BMP header stores the file size as uint32
		if size := BMPFileSize(r.Width, r.Height); size > math.MaxUint32 {
			return &InvalidArgumentError{
				Field:   "width/height",
				Message: fmt.Sprintf("%dx%d produces a %d-byte file, exceeding the BMP 4 GiB limit", r.Width, r.Height, size),
			}
		}
	}
	if r.PadWidth < 0 {
		return &InvalidArgumentError{Field: "pad", Message: fmt.Sprintf("must be >= 0, got %d", r.PadWidth)}
	}
	if r.ChunkSize < 0 {
		return &InvalidArgumentError{Field: "chunk-size", Message: fmt.Sprintf("must be >= 0, got %d", r.ChunkSize)}
	}
	return nil
}

// FileName returns the name for the file at the given 1-based index
func (r Request) FileName(index int) string {
	idx := strconv.Itoa(index)
	if r.PadWidth > 0 {
		idx = fmt.Sprintf("%0*d", r.PadWidth, index)
	}
	ext := "bin"
	if r.Mode == ModeBMP {
		ext = "bmp"
	} else if r.Ext != "" {
		ext = strings.TrimPrefix(r.Ext, ".")
	}
	if r.Prefix != "" {
		return r.Prefix + "_" + idx + "." + ext
	}
	return idx + "." + ext
}

// chunkSize returns the effective raw-mode write chunk size
func (r Request) chunkSize() int {
	if r.ChunkSize > 0 {
		return r.ChunkSize
	}
	return DefaultChunkSize
}

// requiredBytes returns the total bytes the request will write
func (r Request) requiredBytes() int64 {
	if r.Mode == ModeBMP {
		return int64(r.Count) * BMPFileSize(r.Width, r.Height)
	}
	return int64(r.Count) * r.Size
}

// FileInfo records one written file
type FileInfo struct {
	Name   string `json:"name" yaml:"name"`
	Path   string `json:"path" yaml:"path"`
	Size   int64  `json:"size" yaml:"size"`
	SHA256 string `json:"sha256" yaml:"sha256"`
}

// Duration serializes as a human-readable string ("42ms") instead of raw
// nanoseconds in JSON and YAML output
type Duration time.Duration

// String implements fmt.Stringer
func (d Duration) String() string {
	return time.Duration(d).String()
}

// MarshalJSON implements json.Marshaler
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON implements json.Unmarshaler
func (d *Duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler
func (d Duration) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}

// Result is the outcome of a completed Generate call
type Result struct {
	RunID      string     `json:"run_id" yaml:"run_id"`
	Mode       Mode       `json:"mode" yaml:"mode"`
	StartedAt  time.Time  `json:"started_at" yaml:"started_at"`
	Elapsed    Duration   `json:"elapsed" yaml:"elapsed"`
	TotalBytes int64      `json:"total_bytes" yaml:"total_bytes"`
	Files      []FileInfo `json:"files" yaml:"files"`
}

// Paths returns the written file paths in creation order
func (r *Result) Paths() []string {
	paths := make([]string, len(r.Files))
	for i, f := range r.Files {
		paths[i] = f.Path
	}
	return paths
}
