package output

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	reportFileMode         = 0o644
	temporaryFilePattern   = ".projsnap-*.tmp"
	errorCreateTempFormat  = "creating temporary report in %s: %w"
	errorWriteReportFormat = "writing report %s: %w"
	errorCloseReportFormat = "closing report %s: %w"
	errorRenameFormat      = "replacing report %s: %w"
)

// WriteReport stores text at reportPath in one step. The content is written to a
// temporary file beside the destination and renamed over it, so readers never observe
// a partially written report. An existing report keeps its permissions.
func WriteReport(reportPath string, text string) (err error) {
	destinationDirectory := filepath.Dir(reportPath)
	temporaryFile, createError := os.CreateTemp(destinationDirectory, temporaryFilePattern)
	if createError != nil {
		return fmt.Errorf(errorCreateTempFormat, destinationDirectory, createError)
	}
	temporaryPath := temporaryFile.Name()
	defer func() {
		if err != nil {
			_ = temporaryFile.Close()
			_ = os.Remove(temporaryPath)
		}
	}()

	if _, writeError := temporaryFile.WriteString(text); writeError != nil {
		return fmt.Errorf(errorWriteReportFormat, reportPath, writeError)
	}
	fileMode := os.FileMode(reportFileMode)
	if existingInfo, statError := os.Stat(reportPath); statError == nil {
		fileMode = existingInfo.Mode().Perm()
	}
	if chmodError := temporaryFile.Chmod(fileMode); chmodError != nil {
		return fmt.Errorf(errorWriteReportFormat, reportPath, chmodError)
	}
	if closeError := temporaryFile.Close(); closeError != nil {
		return fmt.Errorf(errorCloseReportFormat, reportPath, closeError)
	}
	if renameError := os.Rename(temporaryPath, reportPath); renameError != nil {
		return fmt.Errorf(errorRenameFormat, reportPath, renameError)
	}
	return nil
}
