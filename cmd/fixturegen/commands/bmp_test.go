package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fixturegen/fixturegen/pkg/fixture"
)

func TestNewBMPCommand(t *testing.T) {
	cmd := NewBMPCommand()

	if cmd == nil {
		t.Fatal("NewBMPCommand returned nil")
	}
	if cmd.Use != "bmp COUNT WIDTH HEIGHT" {
		t.Errorf("Use = %q, want %q", cmd.Use, "bmp COUNT WIDTH HEIGHT")
	}
	if cmd.RunE == nil {
		t.Error("RunE function should not be nil")
	}
}

func TestBMPCommand_GeneratesImages(t *testing.T) {
	dir := t.TempDir()

	cmd := NewBMPCommand()
	cmd.SetArgs([]string{"2", "8", "6", "--out", dir})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	want := fixture.BMPFileSize(8, 6)
	for _, name := range []string{"1.bmp", "2.bmp"} {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("expected file %s: %v", name, err)
		}
		if int64(len(data)) != want {
			t.Errorf("%s size = %d, want %d", name, len(data), want)
		}
		if data[0] != 'B' || data[1] != 'M' {
			t.Errorf("%s missing BM magic, got %q", name, data[:2])
		}
	}
}

func TestBMPCommand_InvalidDimensions(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"zero width", []string{"1", "0", "10"}},
		{"zero height", []string{"1", "10", "0"}},
		{"zero count", []string{"0", "10", "10"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			cmd := NewBMPCommand()
			cmd.SilenceUsage = true
			cmd.SilenceErrors = true
			cmd.SetArgs(append(tt.args, "--out", dir))

			if err := cmd.Execute(); err == nil {
				t.Error("Execute() expected error, got nil")
			}

			entries, err := os.ReadDir(dir)
			if err != nil {
				t.Fatalf("ReadDir() error = %v", err)
			}
			if len(entries) != 0 {
				t.Errorf("expected no files written, found %d", len(entries))
			}
		})
	}
}
