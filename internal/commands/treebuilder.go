package commands

import "go.uber.org/zap"

// TreeBuilder renders a directory tree and collects the files it contains.
type TreeBuilder struct {
	Logger *zap.Logger
}

// NewTreeBuilder constructs a TreeBuilder that reports warnings through logger.
func NewTreeBuilder(logger *zap.Logger) *TreeBuilder {
	return &TreeBuilder{Logger: logger}
}
