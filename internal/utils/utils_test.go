package utils

import (
	"os"
	"path/filepath"
	"reflect"
	"runtime/debug"
	"testing"
)

func TestDeduplicatePatterns(t *testing.T) {
	testCases := []struct {
		name     string
		patterns []string
		expected []string
	}{
		{name: "removes duplicates", patterns: []string{"a", "b", "a"}, expected: []string{"a", "b"}},
		{name: "keeps unique", patterns: []string{"a", "b"}, expected: []string{"a", "b"}},
		{name: "drops blanks", patterns: []string{" ", "a", ""}, expected: []string{"a"}},
		{name: "trims values", patterns: []string{" vendor ", "vendor"}, expected: []string{"vendor"}},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			if result := DeduplicatePatterns(testCase.patterns); !reflect.DeepEqual(result, testCase.expected) {
				t.Fatalf("expected %q, got %q", testCase.expected, result)
			}
		})
	}
}

func TestContainsAnyName(t *testing.T) {
	nameSet := NewNameSet([]string{"node_modules", ".git"})
	testCases := []struct {
		name       string
		candidates []string
		expected   bool
	}{
		{name: "match", candidates: []string{"src", "node_modules"}, expected: true},
		{name: "no match", candidates: []string{"src", "lib"}, expected: false},
		{name: "empty candidates", candidates: nil, expected: false},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			if result := ContainsAnyName(nameSet, testCase.candidates); result != testCase.expected {
				t.Fatalf("expected %v, got %v", testCase.expected, result)
			}
		})
	}
	if ContainsAnyName(nil, []string{"src"}) {
		t.Fatalf("nil set must not match")
	}
}

func TestRelativePathOrSelf(t *testing.T) {
	root := t.TempDir()
	if relative := RelativePathOrSelf(root, root); relative != "." {
		t.Fatalf("expected '.', got %q", relative)
	}
	if relative := RelativePathOrSelf(filepath.Join(root, "sub", "b.txt"), root); relative != "sub/b.txt" {
		t.Fatalf("expected sub/b.txt, got %q", relative)
	}
}

func TestDirectorySegments(t *testing.T) {
	testCases := []struct {
		relativePath string
		expected     []string
	}{
		{relativePath: "a.txt", expected: nil},
		{relativePath: "sub/b.txt", expected: []string{"sub"}},
		{relativePath: "one/two/c.go", expected: []string{"one", "two"}},
	}
	for _, testCase := range testCases {
		t.Run(testCase.relativePath, func(t *testing.T) {
			if segments := DirectorySegments(testCase.relativePath); !reflect.DeepEqual(segments, testCase.expected) {
				t.Fatalf("expected %q, got %q", testCase.expected, segments)
			}
		})
	}
}

func TestResolvedPath(t *testing.T) {
	realDirectory := t.TempDir()
	realFile := filepath.Join(realDirectory, "output.txt")
	if err := os.WriteFile(realFile, []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	linkDirectory := filepath.Join(t.TempDir(), "linked")
	if err := os.Symlink(realDirectory, linkDirectory); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	if ResolvedPath(filepath.Join(linkDirectory, "output.txt")) != ResolvedPath(realFile) {
		t.Fatalf("paths through a symlink must resolve to the same file")
	}
	missingPath := filepath.Join(realDirectory, "missing", "..", "missing.txt")
	if resolved := ResolvedPath(missingPath); resolved != filepath.Clean(missingPath) {
		t.Fatalf("expected cleaned path for missing file, got %q", resolved)
	}
}

func TestVersionFromBuildInfo(t *testing.T) {
	testCases := []struct {
		name      string
		buildInfo *debug.BuildInfo
		expected  string
	}{
		{name: "nil", buildInfo: nil, expected: unknownVersion},
		{
			name:      "module version",
			buildInfo: &debug.BuildInfo{Main: debug.Module{Version: "v1.2.3"}},
			expected:  "v1.2.3",
		},
		{
			name: "clean revision",
			buildInfo: &debug.BuildInfo{
				Main:     debug.Module{Version: develVersion},
				Settings: []debug.BuildSetting{{Key: vcsRevisionSetting, Value: "0123456789abcdef0123"}},
			},
			expected: "0123456789ab",
		},
		{
			name: "dirty revision",
			buildInfo: &debug.BuildInfo{
				Main: debug.Module{Version: develVersion},
				Settings: []debug.BuildSetting{
					{Key: vcsRevisionSetting, Value: "abc123"},
					{Key: vcsModifiedSetting, Value: "true"},
				},
			},
			expected: "abc123-dirty",
		},
		{name: "no vcs", buildInfo: &debug.BuildInfo{Main: debug.Module{Version: develVersion}}, expected: unknownVersion},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			if version := versionFromBuildInfo(testCase.buildInfo); version != testCase.expected {
				t.Fatalf("expected %q, got %q", testCase.expected, version)
			}
		})
	}
}

func TestNewApplicationLoggerRejectsUnknownLevel(t *testing.T) {
	if _, err := NewApplicationLogger("chatty"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
	logger, err := NewApplicationLogger("debug")
	if err != nil || logger == nil {
		t.Fatalf("NewApplicationLogger(debug) = %v, %v", logger, err)
	}
	if LoggerOrNop(nil) == nil {
		t.Fatalf("LoggerOrNop must never return nil")
	}
}

func TestContainsString(t *testing.T) {
	if !ContainsString([]string{"alpha", "beta"}, "beta") {
		t.Errorf("expected beta to be found")
	}
	if ContainsString([]string{"alpha", "beta"}, "gamma") {
		t.Errorf("did not expect gamma to be found")
	}
}
