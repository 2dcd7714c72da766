// Package commands contains the traversal and report assembly logic of projsnap.
package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/temirov/projsnap/internal/types"
	"github.com/temirov/projsnap/internal/utils"
)

const (
	// errorAbsolutePathFormat is used when the absolute path cannot be determined.
	errorAbsolutePathFormat = "getting absolute path for %s: %w"
	// errorBuildTreeFormat is used when building the tree fails.
	errorBuildTreeFormat = "building tree for %s: %w"
	// errorReadDirectoryFormat is used when a directory cannot be read.
	errorReadDirectoryFormat = "reading directory %s: %w"
	// errorInvalidRootFormat describes a root path that is not a directory.
	errorInvalidRootFormat = "%s is not a valid directory"

	warningNoAccessMessage    = "directory is not accessible"
	warningSymlinkLoopMessage = "skipping symlinked directory that loops back to an ancestor"
	warningResolveLinkMessage = "unable to resolve symlinked directory"
)

// ErrInvalidRoot reports a root path that is not a directory.
var ErrInvalidRoot = errors.New("not a valid directory")

// InvalidRootError names the root argument that is not a directory. It matches
// ErrInvalidRoot with errors.Is.
type InvalidRootError struct {
	Path string
}

func (invalidRootError InvalidRootError) Error() string {
	return fmt.Sprintf(errorInvalidRootFormat, invalidRootError.Path)
}

func (invalidRootError InvalidRootError) Is(target error) bool {
	return target == ErrInvalidRoot
}

// BuildTree walks rootDirectoryPath depth-first in name order and returns the tree lines
// together with every file found, both in traversal order. Directories that cannot be
// listed for lack of permission are rendered as a "[No access]" entry.
func (treeBuilder *TreeBuilder) BuildTree(rootDirectoryPath string) (types.TreeListing, error) {
	absoluteRootDirPath, absolutePathError := filepath.Abs(rootDirectoryPath)
	if absolutePathError != nil {
		return types.TreeListing{}, fmt.Errorf(errorAbsolutePathFormat, rootDirectoryPath, absolutePathError)
	}
	rootInfo, rootStatError := os.Stat(absoluteRootDirPath)
	if rootStatError != nil || !rootInfo.IsDir() {
		return types.TreeListing{}, InvalidRootError{Path: rootDirectoryPath}
	}

	resolvedRootPath, resolveError := filepath.EvalSymlinks(absoluteRootDirPath)
	if resolveError != nil {
		resolvedRootPath = absoluteRootDirPath
	}

	lines, files, buildError := treeBuilder.buildTreeLines(absoluteRootDirPath, "", []string{resolvedRootPath})
	if buildError != nil {
		return types.TreeListing{}, fmt.Errorf(errorBuildTreeFormat, rootDirectoryPath, buildError)
	}
	return types.TreeListing{Lines: lines, Files: files}, nil
}

// buildTreeLines renders the subtree of currentDirectoryPath. ancestorPaths holds the
// resolved paths of every directory on the way down, the current one included.
func (treeBuilder *TreeBuilder) buildTreeLines(currentDirectoryPath string, prefix string, ancestorPaths []string) ([]string, []types.FileRecord, error) {
	logger := utils.LoggerOrNop(treeBuilder.Logger)

	// os.ReadDir returns entries sorted by filename.
	directoryEntries, readDirectoryError := os.ReadDir(currentDirectoryPath)
	if readDirectoryError != nil {
		if errors.Is(readDirectoryError, fs.ErrPermission) {
			logger.Warn(warningNoAccessMessage, zap.String("path", currentDirectoryPath), zap.Error(readDirectoryError))
			return []string{prefix + types.TreeLastConnector + types.NoAccessMarker}, nil, nil
		}
		return nil, nil, fmt.Errorf(errorReadDirectoryFormat, currentDirectoryPath, readDirectoryError)
	}

	var treeLines []string
	var fileRecords []types.FileRecord
	currentResolvedPath := ancestorPaths[len(ancestorPaths)-1]

	for entryIndex, directoryEntry := range directoryEntries {
		isLastEntry := entryIndex == len(directoryEntries)-1
		connector := types.TreeBranchConnector
		childIndent := types.TreeBranchIndent
		if isLastEntry {
			connector = types.TreeLastConnector
			childIndent = types.TreeLastIndent
		}

		entryName := directoryEntry.Name()
		childPath := filepath.Join(currentDirectoryPath, entryName)
		treeLines = append(treeLines, prefix+connector+entryName)

		isSymlink := directoryEntry.Type()&fs.ModeSymlink != 0
		if !isDirectoryEntry(childPath, directoryEntry, isSymlink) {
			fileRecords = append(fileRecords, types.FileRecord{Path: childPath})
			continue
		}

		childResolvedPath := filepath.Join(currentResolvedPath, entryName)
		if isSymlink {
			resolvedLinkPath, resolveError := filepath.EvalSymlinks(childPath)
			if resolveError != nil {
				logger.Warn(warningResolveLinkMessage, zap.String("path", childPath), zap.Error(resolveError))
				continue
			}
			childResolvedPath = resolvedLinkPath
			if utils.ContainsString(ancestorPaths, childResolvedPath) {
				logger.Warn(warningSymlinkLoopMessage, zap.String("path", childPath), zap.String("target", childResolvedPath))
				continue
			}
		}

		childAncestorPaths := append(append([]string(nil), ancestorPaths...), childResolvedPath)
		childLines, childFiles, childError := treeBuilder.buildTreeLines(childPath, prefix+childIndent, childAncestorPaths)
		if childError != nil {
			return nil, nil, childError
		}
		treeLines = append(treeLines, childLines...)
		fileRecords = append(fileRecords, childFiles...)
	}

	return treeLines, fileRecords, nil
}

// isDirectoryEntry reports whether the entry is a directory, following symbolic links.
func isDirectoryEntry(entryPath string, directoryEntry fs.DirEntry, isSymlink bool) bool {
	if !isSymlink {
		return directoryEntry.IsDir()
	}
	targetInfo, statError := os.Stat(entryPath)
	if statError != nil {
		return false
	}
	return targetInfo.IsDir()
}
