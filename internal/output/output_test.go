package output_test

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/temirov/projsnap/internal/output"
	"github.com/temirov/projsnap/internal/types"
)

const (
	equalsRule = "========================================"
	dashRule   = "----------------------------------------"
)

func TestRenderReport(t *testing.T) {
	testCases := []struct {
		name      string
		treeLines []string
		files     []types.FileContent
		expected  string
	}{
		{
			name:     "empty tree",
			expected: "Project structure:\n\n\nFile contents:",
		},
		{
			name:      "single file",
			treeLines: []string{"└── a.txt"},
			files:     []types.FileContent{{RelativePath: "a.txt", Content: "alpha"}},
			expected: strings.Join([]string{
				"Project structure:",
				"└── a.txt",
				"",
				"File contents:",
				"",
				equalsRule,
				"File: a.txt",
				dashRule,
				"alpha",
				equalsRule,
			}, "\n"),
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			rendered := output.RenderReport(testCase.treeLines, testCase.files)
			if rendered != testCase.expected {
				t.Fatalf("unexpected report\nexpected: %q\nactual:   %q", testCase.expected, rendered)
			}
		})
	}
}

func TestWriteReportReplacesDestination(t *testing.T) {
	directory := t.TempDir()
	reportPath := filepath.Join(directory, "output.txt")
	if err := os.WriteFile(reportPath, []byte("stale"), 0o644); err != nil {
		t.Fatalf("write stale report: %v", err)
	}

	if err := output.WriteReport(reportPath, "fresh"); err != nil {
		t.Fatalf("WriteReport error: %v", err)
	}

	content, err := os.ReadFile(reportPath)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if string(content) != "fresh" {
		t.Fatalf("expected fresh content, got %q", string(content))
	}
	entries, err := os.ReadDir(directory)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("temporary files must not remain, found %d entries", len(entries))
	}
}

func TestWriteReportFileMode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permissions are not available on windows")
	}
	testCases := []struct {
		name         string
		existingMode os.FileMode
		expectedMode os.FileMode
	}{
		{name: "new report", expectedMode: 0o644},
		{name: "existing private report", existingMode: 0o600, expectedMode: 0o600},
		{name: "existing shared report", existingMode: 0o664, expectedMode: 0o664},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			reportPath := filepath.Join(t.TempDir(), "output.txt")
			if testCase.existingMode != 0 {
				if err := os.WriteFile(reportPath, []byte("stale"), 0o600); err != nil {
					t.Fatalf("write stale report: %v", err)
				}
				if err := os.Chmod(reportPath, testCase.existingMode); err != nil {
					t.Fatalf("chmod: %v", err)
				}
			}

			if err := output.WriteReport(reportPath, "fresh"); err != nil {
				t.Fatalf("WriteReport error: %v", err)
			}

			info, err := os.Stat(reportPath)
			if err != nil {
				t.Fatalf("stat report: %v", err)
			}
			if info.Mode().Perm() != testCase.expectedMode {
				t.Fatalf("expected mode %v, got %v", testCase.expectedMode, info.Mode().Perm())
			}
		})
	}
}

func TestWriteReportFailsForMissingDirectory(t *testing.T) {
	reportPath := filepath.Join(t.TempDir(), "missing", "output.txt")
	if err := output.WriteReport(reportPath, "text"); err == nil {
		t.Fatalf("expected error for missing directory")
	}
	if _, statErr := os.Stat(reportPath); !os.IsNotExist(statErr) {
		t.Fatalf("expected no report, stat returned %v", statErr)
	}
}
