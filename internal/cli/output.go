// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//   - Format* functions return a formatted string without performing I/O.
//   - Write* functions write data to files on the filesystem.

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	apperrors "github.com/agbru/fibmodes/internal/errors"
	"github.com/agbru/fibmodes/internal/fibonacci"
	"github.com/agbru/fibmodes/internal/orchestration"
	"github.com/agbru/fibmodes/internal/ui"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the result (empty for no file output).
	OutputFile string
	// Quiet mode suppresses everything but the value.
	Quiet bool
}

// ResultDocument is the YAML form of a saved result.
type ResultDocument struct {
	TermCount uint64    `yaml:"term_count"`
	Mode      string    `yaml:"mode"`
	Value     int64     `yaml:"value"`
	Exact     bool      `yaml:"exact"`
	Duration  string    `yaml:"duration"`
	Generated time.Time `yaml:"generated"`
}

// NewResultDocument builds the document for result, stamped with now.
func NewResultDocument(result orchestration.Result, now time.Time) ResultDocument {
	return ResultDocument{
		TermCount: result.TermCount,
		Mode:      result.Mode.String(),
		Value:     result.Value,
		Exact:     fibonacci.Fits(result.TermCount),
		Duration:  result.Duration.String(),
		Generated: now.UTC().Truncate(time.Second),
	}
}

// isYAMLPath reports whether the file extension selects the YAML format.
func isYAMLPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// WriteResultToFile saves a successful result. A .yaml or .yml extension
// selects YAML; anything else gets the commented text format.
func WriteResultToFile(result orchestration.Result, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}

	dir := filepath.Dir(config.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return apperrors.WrapError(err, "failed to create directory")
		}
	}

	file, err := os.Create(config.OutputFile)
	if err != nil {
		return apperrors.WrapError(err, "failed to create output file %s", config.OutputFile)
	}
	defer file.Close()

	doc := NewResultDocument(result, time.Now())
	if isYAMLPath(config.OutputFile) {
		enc := yaml.NewEncoder(file)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return apperrors.WrapError(err, "failed to encode result")
		}
		if err := enc.Close(); err != nil {
			return apperrors.WrapError(err, "failed to encode result")
		}
		return file.Close()
	}

	if err := writeTextResult(file, doc); err != nil {
		return apperrors.WrapError(err, "failed to write result")
	}
	return file.Close()
}

func writeTextResult(w io.Writer, doc ResultDocument) error {
	_, err := fmt.Fprintf(w,
		"# Fibonacci Result\n# Generated: %s\n# Mode: %s\n# Duration: %s\n# N: %d\n# Exact: %t\n\nF(%d) = %d\n",
		doc.Generated.Format(time.RFC3339), doc.Mode, doc.Duration, doc.TermCount, doc.Exact, doc.TermCount, doc.Value)
	return err
}

// ReadResultFile loads a YAML result written by WriteResultToFile.
func ReadResultFile(path string) (ResultDocument, error) {
	var doc ResultDocument
	data, err := os.ReadFile(path)
	if err != nil {
		return doc, err
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return doc, apperrors.WrapError(err, "parsing %s", path)
	}
	return doc, nil
}

// FormatQuietResult formats a value for quiet mode output.
func FormatQuietResult(value int64) string {
	return strconv.FormatInt(value, 10)
}

// DisplayQuietResult outputs a value in quiet mode.
func DisplayQuietResult(out io.Writer, value int64) {
	fmt.Fprintln(out, FormatQuietResult(value))
}

// DisplayResultWithConfig prints the details of a successful dispatch whose
// value was already shown by the display sink, then saves it if requested.
func DisplayResultWithConfig(out io.Writer, result orchestration.Result, config OutputConfig) error {
	if !config.Quiet {
		DisplayResultDetails(result, out)
	}

	if config.OutputFile != "" {
		if err := WriteResultToFile(result, config); err != nil {
			return err
		}
		if !config.Quiet {
			fmt.Fprintf(out, "\n%sResult saved to: %s%s%s\n",
				ui.ColorGreen(), ui.ColorCyan(), config.OutputFile, ui.ColorReset())
		}
	}
	return nil
}
