package commands

import (
	"fmt"
	"path"

	"go.uber.org/zap"

	"github.com/temirov/projsnap/internal/output"
	"github.com/temirov/projsnap/internal/types"
	"github.com/temirov/projsnap/internal/utils"
)

const warningFileReadMessage = "unable to read file"

// ReportAssembler turns a tree listing into the final report text.
type ReportAssembler struct {
	Options types.ReportOptions
	Logger  *zap.Logger
}

// NewReportAssembler constructs a ReportAssembler for the given options.
func NewReportAssembler(options types.ReportOptions, logger *zap.Logger) *ReportAssembler {
	return &ReportAssembler{Options: options, Logger: logger}
}

// Assemble filters the listing's files, reads the survivors in traversal order and renders
// the report. A file that cannot be read is reported inline and never stops assembly.
func (assembler *ReportAssembler) Assemble(listing types.TreeListing) types.Report {
	logger := utils.LoggerOrNop(assembler.Logger)
	report := types.Report{}
	fileContents := make([]types.FileContent, 0, len(listing.Files))
	resolvedReportPath := ""
	if assembler.Options.ReportPath != "" {
		resolvedReportPath = utils.ResolvedPath(assembler.Options.ReportPath)
	}

	for _, fileRecord := range listing.Files {
		relativePath := utils.RelativePathOrSelf(fileRecord.Path, assembler.Options.RootPath)
		if assembler.isExcluded(fileRecord.Path, relativePath, resolvedReportPath) {
			report.SkippedFiles++
			continue
		}

		content, readError := readFileText(fileRecord.Path, assembler.Options.Decoder)
		if readError != nil {
			logger.Warn(warningFileReadMessage, zap.String("path", fileRecord.Path), zap.Error(readError))
			content = fmt.Sprintf(output.ReadErrorFormat, readError)
			report.ReadFailures++
		}
		fileContents = append(fileContents, types.FileContent{RelativePath: relativePath, Content: content})
		report.IncludedFiles++
	}

	report.Text = output.RenderReport(listing.Lines, fileContents)
	return report
}

// isExcluded reports whether a file is left out of the contents section: its basename is an
// excluded file name, one of its directories is an excluded directory name, or it is the
// report being written. Paths are compared after resolving symbolic links.
func (assembler *ReportAssembler) isExcluded(absolutePath string, relativePath string, resolvedReportPath string) bool {
	if resolvedReportPath != "" && utils.ResolvedPath(absolutePath) == resolvedReportPath {
		return true
	}
	if _, excludedFile := assembler.Options.ExcludedFiles[path.Base(relativePath)]; excludedFile {
		return true
	}
	return utils.ContainsAnyName(assembler.Options.ExcludedDirs, utils.DirectorySegments(relativePath))
}
