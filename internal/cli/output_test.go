package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/agbru/fibmodes/internal/orchestration"
	"github.com/agbru/fibmodes/internal/ui"
)

func sampleResult() orchestration.Result {
	return orchestration.Result{
		Mode:      orchestration.ModeBackgroundWorker,
		TermCount: 50,
		Value:     12586269025,
		Duration:  1500 * time.Microsecond,
	}
}

func TestWriteResultToFile_YAML(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "nested", "result.yaml")
	if err := WriteResultToFile(sampleResult(), OutputConfig{OutputFile: path}); err != nil {
		t.Fatalf("WriteResultToFile() error = %v", err)
	}

	doc, err := ReadResultFile(path)
	if err != nil {
		t.Fatalf("ReadResultFile() error = %v", err)
	}
	if doc.TermCount != 50 || doc.Value != 12586269025 || doc.Mode != "background" || !doc.Exact {
		t.Errorf("unexpected document: %+v", doc)
	}
	if doc.Duration != "1.5ms" || doc.Generated.IsZero() {
		t.Errorf("unexpected metadata: %+v", doc)
	}

	raw, _ := os.ReadFile(path)
	if !strings.Contains(string(raw), "term_count: 50") {
		t.Errorf("YAML keys should be snake_case:\n%s", raw)
	}
}

func TestWriteResultToFile_Text(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "result.txt")
	res := sampleResult()
	res.TermCount = 100
	res.Value = 3736710778780434371
	if err := WriteResultToFile(res, OutputConfig{OutputFile: path}); err != nil {
		t.Fatalf("WriteResultToFile() error = %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"# Mode: background", "# N: 100", "# Exact: false", "F(100) = 3736710778780434371"} {
		if !strings.Contains(string(raw), want) {
			t.Errorf("text output should contain %q:\n%s", want, raw)
		}
	}
}

func TestWriteResultToFile_NoPath(t *testing.T) {
	t.Parallel()
	if err := WriteResultToFile(sampleResult(), OutputConfig{}); err != nil {
		t.Errorf("empty path should be a no-op, got %v", err)
	}
}

func TestWriteResultToFile_BadDirectory(t *testing.T) {
	t.Parallel()
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	err := WriteResultToFile(sampleResult(), OutputConfig{OutputFile: filepath.Join(blocker, "out.yaml")})
	if err == nil {
		t.Fatal("expected an error when the parent path is a file")
	}
	if !strings.HasPrefix(err.Error(), "failed to create directory: ") {
		t.Errorf("error = %q, want the directory context", err)
	}
	var pathErr *os.PathError
	if !errors.As(err, &pathErr) {
		t.Errorf("error should unwrap to *os.PathError, got %T", err)
	}
}

func TestIsYAMLPath(t *testing.T) {
	t.Parallel()
	tests := map[string]bool{"a.yaml": true, "b.YML": true, "c.txt": false, "noext": false}
	for in, want := range tests {
		if got := isYAMLPath(in); got != want {
			t.Errorf("isYAMLPath(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestDisplayResultWithConfig(t *testing.T) {
	ui.SetCurrentTheme(ui.NoColorTheme)
	path := filepath.Join(t.TempDir(), "r.yml")

	var buf bytes.Buffer
	if err := DisplayResultWithConfig(&buf, sampleResult(), OutputConfig{OutputFile: path}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "Result saved to: "+path) || !strings.Contains(buf.String(), "background") {
		t.Errorf("unexpected output: %q", buf.String())
	}

	buf.Reset()
	if err := DisplayResultWithConfig(&buf, sampleResult(), OutputConfig{OutputFile: path, Quiet: true}); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("quiet mode should print nothing extra, got %q", buf.String())
	}
}

func TestDisplayQuietResult(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	DisplayQuietResult(&buf, -1)
	if buf.String() != "-1\n" {
		t.Errorf("DisplayQuietResult = %q", buf.String())
	}
}
