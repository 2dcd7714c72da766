package cli

import (
	"github.com/spf13/cobra"

	"github.com/temirov/projsnap/internal/config"
)

// snapshotSettings are the effective values of one run: flags set on the command line win
// over the configuration files, which win over the flag defaults.
type snapshotSettings struct {
	outputPath    string
	excludedFiles []string
	excludedDirs  []string
	encodingName  string
	tokensEnabled bool
	tokenModel    string
	copyEnabled   bool
	logLevel      string
}

func resolveSettings(command *cobra.Command, options runOptions, configuration config.ApplicationConfiguration) snapshotSettings {
	flags := command.Flags()
	settings := snapshotSettings{
		outputPath:    options.outputPath,
		excludedFiles: options.excludedFiles,
		excludedDirs:  options.excludedDirs,
		encodingName:  options.encodingName,
		tokensEnabled: options.tokensEnabled,
		tokenModel:    options.tokenModel,
		copyEnabled:   options.copyEnabled,
		logLevel:      options.logLevel,
	}

	if !flags.Changed(outputFlagName) && configuration.Output != "" {
		settings.outputPath = configuration.Output
	}
	if !flags.Changed(excludeFilesFlagName) && len(configuration.Exclude.Files) > 0 {
		settings.excludedFiles = configuration.Exclude.Files
	}
	if !flags.Changed(excludeDirsFlagName) && len(configuration.Exclude.Dirs) > 0 {
		settings.excludedDirs = configuration.Exclude.Dirs
	}
	if !flags.Changed(encodingFlagName) && configuration.Encoding != "" {
		settings.encodingName = configuration.Encoding
	}
	if !flags.Changed(tokensFlagName) {
		settings.tokensEnabled = config.BoolValue(configuration.Tokens.Enabled, settings.tokensEnabled)
	}
	if !flags.Changed(modelFlagName) && configuration.Tokens.Model != "" {
		settings.tokenModel = configuration.Tokens.Model
	}
	if !flags.Changed(copyFlagName) {
		settings.copyEnabled = config.BoolValue(configuration.Copy, settings.copyEnabled)
	}
	if !flags.Changed(logLevelFlagName) && configuration.LogLevel != "" {
		settings.logLevel = configuration.LogLevel
	}
	return settings
}
