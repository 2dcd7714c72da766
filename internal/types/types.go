// Package types defines every cross‑package data structure used by the projsnap CLI.
package types

import "golang.org/x/text/encoding"

const (
	// TreeBranchConnector precedes every entry that has a following sibling.
	TreeBranchConnector = "├── "
	// TreeLastConnector precedes the last entry of a directory listing.
	TreeLastConnector = "└── "
	// TreeBranchIndent extends the prefix below an entry that has following siblings.
	TreeBranchIndent = "│   "
	// TreeLastIndent extends the prefix below the last entry of a listing.
	TreeLastIndent = "    "
	// NoAccessMarker is the tree entry emitted for a directory that cannot be listed.
	NoAccessMarker = "[No access]"

	DefaultOutputPath = "output.txt"
	DefaultEncoding   = "utf-8"
)

// FileRecord is a file discovered during traversal.
type FileRecord struct {
	Path string
}

// TreeListing is the result of a single traversal: display lines and files in the same
// depth-first, name-sorted order.
type TreeListing struct {
	Lines []string
	Files []FileRecord
}

// FileContent is one file section of the report.
type FileContent struct {
	RelativePath string
	Content      string
}

// ReportOptions controls which files the report includes and how their content is decoded.
type ReportOptions struct {
	RootPath      string
	ExcludedFiles map[string]struct{}
	ExcludedDirs  map[string]struct{}
	// Decoder converts file bytes into UTF-8 text. Nil means permissive UTF-8.
	Decoder *encoding.Decoder
	// ReportPath is the absolute path of the report being produced; it is never embedded in itself.
	ReportPath string
}

// Report is the assembled report text with counters describing how it was built.
type Report struct {
	Text          string
	IncludedFiles int
	SkippedFiles  int
	ReadFailures  int
}

