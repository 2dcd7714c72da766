// Package config loads projsnap configuration files and exclusion lists.
package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/temirov/projsnap/internal/utils"
)

const (
	// ExclusionFileName is the optional exclusion list read from the project root.
	ExclusionFileName = ".projsnapignore"

	filesSectionHeader = "[files]"
	dirsSectionHeader  = "[dirs]"
	commentPrefix      = "#"
	directorySuffix    = "/"
)

// LoadExclusionFile reads an exclusion list. Entries under a "[files]" header are file
// names, entries under "[dirs]" are directory names. Before any header, an entry ending in
// "/" names a directory and anything else names a file. A missing file is not an error.
//
// #nosec G304
func LoadExclusionFile(exclusionFilePath string) (ExclusionConfiguration, error) {
	fileHandle, openFileError := os.Open(exclusionFilePath)
	if openFileError != nil {
		if os.IsNotExist(openFileError) {
			return ExclusionConfiguration{}, nil
		}
		return ExclusionConfiguration{}, openFileError
	}
	defer func() {
		closeError := fileHandle.Close()
		if closeError != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to close %s: %v\n", exclusionFilePath, closeError)
		}
	}()

	var exclusions ExclusionConfiguration
	currentSectionHeader := ""
	scanner := bufio.NewScanner(fileHandle)
	for scanner.Scan() {
		trimmedLine := strings.TrimSpace(scanner.Text())
		if trimmedLine == "" || strings.HasPrefix(trimmedLine, commentPrefix) {
			continue
		}
		if strings.EqualFold(trimmedLine, filesSectionHeader) || strings.EqualFold(trimmedLine, dirsSectionHeader) {
			currentSectionHeader = strings.ToLower(trimmedLine)
			continue
		}
		switch {
		case currentSectionHeader == dirsSectionHeader:
			exclusions.Dirs = append(exclusions.Dirs, strings.TrimSuffix(trimmedLine, directorySuffix))
		case currentSectionHeader == filesSectionHeader:
			exclusions.Files = append(exclusions.Files, trimmedLine)
		case strings.HasSuffix(trimmedLine, directorySuffix):
			exclusions.Dirs = append(exclusions.Dirs, strings.TrimSuffix(trimmedLine, directorySuffix))
		default:
			exclusions.Files = append(exclusions.Files, trimmedLine)
		}
	}
	if scanError := scanner.Err(); scanError != nil {
		return ExclusionConfiguration{}, scanError
	}
	exclusions.Files = utils.DeduplicatePatterns(exclusions.Files)
	exclusions.Dirs = utils.DeduplicatePatterns(exclusions.Dirs)
	return exclusions, nil
}

// LoadCombinedExclusions merges the exclusion file found in rootDirectoryPath with the
// names given explicitly. Explicit names come last; duplicates are dropped.
func LoadCombinedExclusions(rootDirectoryPath string, explicit ExclusionConfiguration, useExclusionFile bool) (ExclusionConfiguration, error) {
	combined := ExclusionConfiguration{}
	if useExclusionFile {
		exclusionFilePath := filepath.Join(rootDirectoryPath, ExclusionFileName)
		fromFile, loadError := LoadExclusionFile(exclusionFilePath)
		if loadError != nil {
			return ExclusionConfiguration{}, fmt.Errorf("loading %s from %s: %w", ExclusionFileName, rootDirectoryPath, loadError)
		}
		combined = fromFile
	}
	combined.Files = utils.DeduplicatePatterns(append(combined.Files, explicit.Files...))
	combined.Dirs = utils.DeduplicatePatterns(append(combined.Dirs, explicit.Dirs...))
	return combined, nil
}
