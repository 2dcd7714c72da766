package cli

import (
	"io"
	"reflect"
	"testing"

	"github.com/spf13/pflag"
)

func TestListFlagGroupFoldsTrailingNames(t *testing.T) {
	testCases := []struct {
		name           string
		arguments      []string
		expectFiles    []string
		expectDirs     []string
		expectLeftover []string
	}{
		{
			name:           "comma separated",
			arguments:      []string{"root", "--files", "a,b"},
			expectFiles:    []string{"a", "b"},
			expectLeftover: []string{"root"},
		},
		{
			name:           "space separated after each flag",
			arguments:      []string{"root", "--files", "a", "b", "--dirs", "x", "y,z"},
			expectFiles:    []string{"a", "b"},
			expectDirs:     []string{"x", "y", "z"},
			expectLeftover: []string{"root"},
		},
		{
			name:           "repeated flags",
			arguments:      []string{"root", "--files", "a", "--dirs", "x", "--files", "b", "c"},
			expectFiles:    []string{"a", "b", "c"},
			expectDirs:     []string{"x"},
			expectLeftover: []string{"root"},
		},
		{
			name:           "flag before root",
			arguments:      []string{"--dirs", "x", "root", "y"},
			expectDirs:     []string{"x", "y"},
			expectLeftover: []string{"root"},
		},
		{
			name:           "positionals without list flag",
			arguments:      []string{"root", "other"},
			expectLeftover: []string{"root", "other"},
		},
		{
			name:           "double dash stops folding",
			arguments:      []string{"root", "--files", "a", "--", "b"},
			expectFiles:    []string{"a"},
			expectLeftover: []string{"root", "b"},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
			flagSet.SetOutput(io.Discard)
			var files []string
			var dirs []string
			group := newListFlagGroup(flagSet)
			group.register(&files, "files", "file names")
			group.register(&dirs, "dirs", "directory names")

			if err := flagSet.Parse(testCase.arguments); err != nil {
				t.Fatalf("parse error: %v", err)
			}
			leftover := group.fold(flagSet.Args())

			if !reflect.DeepEqual(leftover, testCase.expectLeftover) {
				t.Errorf("expected positionals %q, got %q", testCase.expectLeftover, leftover)
			}
			if len(files) != 0 || len(testCase.expectFiles) != 0 {
				if !reflect.DeepEqual(files, testCase.expectFiles) {
					t.Errorf("expected files %q, got %q", testCase.expectFiles, files)
				}
			}
			if len(dirs) != 0 || len(testCase.expectDirs) != 0 {
				if !reflect.DeepEqual(dirs, testCase.expectDirs) {
					t.Errorf("expected dirs %q, got %q", testCase.expectDirs, dirs)
				}
			}
		})
	}
}

func TestListFlagMarksChanged(t *testing.T) {
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	var files []string
	newListFlagGroup(flagSet).register(&files, "files", "file names")

	if err := flagSet.Parse([]string{"--files="}); err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if !flagSet.Changed("files") {
		t.Fatalf("expected files flag to be marked changed")
	}
	if len(files) != 0 {
		t.Fatalf("expected no names, got %q", files)
	}
}
