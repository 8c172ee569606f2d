package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"github.com/fixturegen/fixturegen/pkg/fixture"
)

// OutputFormat represents the output format
type OutputFormat string

const (
	OutputTable OutputFormat = "table"
	OutputJSON  OutputFormat = "json"
	OutputYAML  OutputFormat = "yaml"
)

// Outputter handles formatted output
type Outputter struct {
	format OutputFormat
	writer io.Writer
}

// NewOutputter creates a new outputter writing to stdout
func NewOutputter(format string) *Outputter {
	return &Outputter{
		format: OutputFormat(format),
		writer: os.Stdout,
	}
}

// NewOutputterTo creates an outputter with an explicit writer (for tests)
func NewOutputterTo(format string, w io.Writer) *Outputter {
	return &Outputter{
		format: OutputFormat(format),
		writer: w,
	}
}

// PrintResult outputs a generation result in the configured format
func (o *Outputter) PrintResult(result *fixture.Result) error {
	switch o.format {
	case OutputJSON:
		return o.printJSON(result)
	case OutputYAML:
		return o.printYAML(result)
	case OutputTable:
		o.printResultTable(result)
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", o.format)
	}
}

// printResultTable prints the per-file table followed by a run summary line
func (o *Outputter) printResultTable(result *fixture.Result) {
	table := tablewriter.NewWriter(o.writer)
	table.Header("FILE", "SIZE", "SHA256")

	for _, f := range result.Files {
		table.Append([]string{f.Name, strconv.FormatInt(f.Size, 10), f.SHA256})
	}
	table.Render()

	fmt.Fprintf(o.writer, "Wrote %d file(s), %d bytes in %s\n",
		len(result.Files), result.TotalBytes, result.Elapsed)
}

// printJSON outputs data as JSON
func (o *Outputter) printJSON(data interface{}) error {
	encoder := json.NewEncoder(o.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// printYAML outputs data as YAML
func (o *Outputter) printYAML(data interface{}) error {
	encoder := yaml.NewEncoder(o.writer)
	encoder.SetIndent(2)
	defer encoder.Close()
	return encoder.Encode(data)
}

// GetFormat returns the output format
func (o *Outputter) GetFormat() OutputFormat {
	return o.format
}
