// Package output renders and persists the project report.
package output

import (
	"strings"

	"github.com/temirov/projsnap/internal/types"
)

const (
	// ruleWidth is the width of every horizontal rule in the report.
	ruleWidth = 40

	projectStructureHeader = "Project structure:"
	fileContentsHeader     = "File contents:"
	fileLabel              = "File: "
	lineSeparator          = "\n"
	// ReadErrorFormat renders a file whose content could not be read.
	ReadErrorFormat = "Error reading file: %v"
)

var (
	sectionRule   = strings.Repeat("=", ruleWidth)
	separatorLine = strings.Repeat("-", ruleWidth)
)

// RenderReport joins the tree lines and the file sections into the report text.
//
//	Project structure:
//	<tree lines>
//
//	File contents:
//
//	========================================
//	File: <relative path>
//	----------------------------------------
//	<content>
//	========================================
func RenderReport(treeLines []string, files []types.FileContent) string {
	outputLines := make([]string, 0, 3+len(files)*5)
	outputLines = append(outputLines,
		projectStructureHeader,
		strings.Join(treeLines, lineSeparator),
		lineSeparator+fileContentsHeader,
	)
	for _, file := range files {
		outputLines = append(outputLines, RenderFileSection(file)...)
	}
	return strings.Join(outputLines, lineSeparator)
}

// RenderFileSection returns the lines of a single file section, the leading blank line included.
func RenderFileSection(file types.FileContent) []string {
	return []string{
		lineSeparator + sectionRule,
		fileLabel + file.RelativePath,
		separatorLine,
		file.Content,
		sectionRule,
	}
}
