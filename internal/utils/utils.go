// Package utils contains general helper functions used across projsnap.
package utils

import (
	"path/filepath"
	"strings"
)

// DeduplicatePatterns removes duplicate and blank values from a slice while preserving order.
// The first occurrence of each unique value is kept.
func DeduplicatePatterns(patterns []string) []string {
	encounteredPatterns := make(map[string]struct{})
	result := make([]string, 0, len(patterns))
	for _, pattern := range patterns {
		trimmedPattern := strings.TrimSpace(pattern)
		if trimmedPattern == "" {
			continue
		}
		if _, exists := encounteredPatterns[trimmedPattern]; !exists {
			encounteredPatterns[trimmedPattern] = struct{}{}
			result = append(result, trimmedPattern)
		}
	}
	return result
}

// ContainsString checks if a slice of strings contains a specific target string.
func ContainsString(stringSlice []string, targetString string) bool {
	for _, currentString := range stringSlice {
		if currentString == targetString {
			return true
		}
	}
	return false
}

// NewNameSet builds a lookup set from names. Blank names are dropped.
func NewNameSet(names []string) map[string]struct{} {
	nameSet := make(map[string]struct{}, len(names))
	for _, name := range DeduplicatePatterns(names) {
		nameSet[name] = struct{}{}
	}
	return nameSet
}

// ContainsAnyName reports whether any of the candidates is present in nameSet.
func ContainsAnyName(nameSet map[string]struct{}, candidates []string) bool {
	if len(nameSet) == 0 {
		return false
	}
	for _, candidate := range candidates {
		if _, found := nameSet[candidate]; found {
			return true
		}
	}
	return false
}

// RelativePathOrSelf calculates the relative path from root to fullPath in forward-slash form.
// Returns the cleaned fullPath if relative calculation fails.
// Returns "." if fullPath and root resolve to the same directory.
func RelativePathOrSelf(fullPath, root string) string {
	cleanPath := filepath.Clean(fullPath)
	absoluteRoot, err := filepath.Abs(root)
	if err != nil {
		return cleanPath
	}
	cleanAbsoluteRoot := filepath.Clean(absoluteRoot)

	if cleanPath == cleanAbsoluteRoot {
		return "."
	}

	relativePath, relErr := filepath.Rel(cleanAbsoluteRoot, cleanPath)
	if relErr != nil {
		return cleanPath
	}
	return filepath.ToSlash(relativePath)
}

// DirectorySegments returns the directory components of a forward-slash relative path.
// A file at the root has no directory components.
func DirectorySegments(relativePath string) []string {
	directoryPath := filepath.ToSlash(filepath.Dir(filepath.FromSlash(relativePath)))
	if directoryPath == "." || directoryPath == "" {
		return nil
	}
	return strings.Split(directoryPath, "/")
}

// ResolvedPath returns path with symbolic links resolved, or the cleaned path when it
// cannot be resolved.
func ResolvedPath(path string) string {
	resolvedPath, resolveError := filepath.EvalSymlinks(path)
	if resolveError != nil {
		return filepath.Clean(path)
	}
	return resolvedPath
}
