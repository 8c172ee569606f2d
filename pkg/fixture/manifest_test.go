package fixture

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteManifest_Raw(t *testing.T) {
	dir := t.TempDir()
	g := New(nil)

	req := Request{Mode: ModeRaw, Count: 3, Size: 64, PadWidth: 2, OutDir: dir}
	result, err := g.Generate(req)
	require.NoError(t, err)

	path, err := WriteManifest(req, result)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, ManifestName), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var m Manifest
	require.NoError(t, json.Unmarshal(data, &m))
	require.Equal(t, result.RunID, m.RunID)
	require.Equal(t, ModeRaw, m.Mode)
	require.Equal(t, 3, m.Count)
	require.Equal(t, int64(64), m.SizeBytes)
	require.Zero(t, m.Width)
	require.Equal(t, int64(3*64), m.TotalBytes)
	require.Len(t, m.Files, 3)

	for i, f := range m.Files {
		require.Equal(t, result.Files[i].Name, f.Name)
		require.Equal(t, int64(64), f.Size)
		require.Len(t, f.SHA256, 64) // hex-encoded sha256
	}
}

func TestWriteManifest_BMP(t *testing.T) {
	dir := t.TempDir()
	g := New(nil)

	req := Request{Mode: ModeBMP, Count: 1, Width: 6, Height: 4, OutDir: dir}
	result, err := g.Generate(req)
	require.NoError(t, err)

	path, err := WriteManifest(req, result)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var m Manifest
	require.NoError(t, json.Unmarshal(data, &m))
	require.Equal(t, ModeBMP, m.Mode)
	require.Equal(t, 6, m.Width)
	require.Equal(t, 4, m.Height)
	require.Zero(t, m.SizeBytes)
	require.Equal(t, BMPFileSize(6, 4), m.Files[0].Size)
}
