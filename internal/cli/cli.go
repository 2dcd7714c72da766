// Package cli provides the command line interface.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/projsnap/internal/commands"
	"github.com/temirov/projsnap/internal/config"
	"github.com/temirov/projsnap/internal/output"
	"github.com/temirov/projsnap/internal/services/clipboard"
	"github.com/temirov/projsnap/internal/tokenizer"
	"github.com/temirov/projsnap/internal/types"
	"github.com/temirov/projsnap/internal/utils"
)

const (
	outputFlagName           = "output"
	outputFlagShorthand      = "o"
	excludeFilesFlagName     = "exclude-files"
	excludeDirsFlagName      = "exclude-dirs"
	encodingFlagName         = "encoding"
	noExclusionFileFlagName  = "no-ignore"
	tokensFlagName           = "tokens"
	modelFlagName            = "model"
	copyFlagName             = "copy"
	configFlagName           = "config"
	logLevelFlagName         = "log-level"
	versionFlagName          = "version"
	initGlobalFlagName       = "global"
	initForceFlagName        = "force"
	versionTemplate          = "projsnap version: %s\n"
	resultSavedTemplate      = "Result saved to %s\n"
	configurationWrittenText = "Configuration written to %s\n"
	defaultTokenizerModel    = "gpt-4o"

	rootUse              = "projsnap <project_path>"
	rootShortDescription = "snapshot a project's tree and file contents into one text file"
	rootLongDescription  = `projsnap walks a directory, renders its structure as an ASCII tree and appends
the text of every file into a single report.
Use --exclude-files and --exclude-dirs to keep file contents out of the report; excluded
entries still appear in the tree. Names may be repeated, comma separated or listed after the
flag separated by spaces; the project path comes first.
Defaults can be stored in .projsnap.yaml or in the global configuration created by
"projsnap init --global". A project directory named "init" must be given as ./init.`
	rootUsageExample = `  # Snapshot the current project into output.txt
  projsnap .

  # Write to a custom file and skip dependencies
  projsnap ./service -o review.txt --exclude-dirs vendor node_modules --exclude-files go.sum`

	initUse              = "init"
	initShortDescription = "write a default configuration file"

	outputFlagDescription          = "output file path"
	excludeFilesFlagDescription    = "file names whose content is left out (space or comma separated, repeatable)"
	excludeDirsFlagDescription     = "directory names whose files are left out (space or comma separated, repeatable)"
	encodingFlagDescription        = "text encoding of the project files, e.g. utf-8 or windows-1251"
	noExclusionFileFlagDescription = "do not read " + config.ExclusionFileName + " from the project root"
	tokensFlagDescription          = "estimate the report size in tokens"
	modelFlagDescription           = "tokenizer model used with --tokens"
	copyFlagDescription            = "copy the report to the clipboard"
	configFlagDescription          = "configuration file to use instead of " + utils.ConfigFileName
	logLevelFlagDescription        = "log level: debug, info, warn or error"
	versionFlagDescription         = "display application version"
	initGlobalFlagDescription      = "write the configuration to the user configuration directory"
	initForceFlagDescription       = "overwrite an existing configuration file"

	// errorAbsolutePathFormat reports failure to resolve an absolute path.
	errorAbsolutePathFormat     = "abs failed for '%s': %w"
	workingDirectoryErrorFormat = "unable to determine working directory: %w"

	warningTokenCountMessage = "unable to estimate tokens"
	warningClipboardMessage  = "unable to copy report to clipboard"
	reportWrittenMessage     = "report written"
)

// Dependencies carries the collaborators of the command tree. Zero values are replaced with
// the production implementations.
type Dependencies struct {
	Logger                *zap.Logger
	Stdout                io.Writer
	Copier                clipboard.Copier
	NewTokenCounter       func(tokenizer.Config) (tokenizer.Counter, string, error)
	WorkingDirectory      string
	GlobalConfigDirectory string
}

func (dependencies Dependencies) withDefaults() Dependencies {
	if dependencies.Stdout == nil {
		dependencies.Stdout = os.Stdout
	}
	if dependencies.Copier == nil {
		dependencies.Copier = clipboard.NewService()
	}
	if dependencies.NewTokenCounter == nil {
		dependencies.NewTokenCounter = tokenizer.NewCounter
	}
	dependencies.Logger = utils.LoggerOrNop(dependencies.Logger)
	return dependencies
}

// Execute runs the projsnap application with the process arguments.
func Execute(logger *zap.Logger) error {
	return NewRootCommand(Dependencies{Logger: logger}).Execute()
}

// runOptions stores the values of the root command flags.
type runOptions struct {
	outputPath      string
	excludedFiles   []string
	excludedDirs    []string
	encodingName    string
	noExclusionFile bool
	tokensEnabled   bool
	tokenModel      string
	copyEnabled     bool
	configPath      string
	logLevel        string
	showVersion     bool
}

// NewRootCommand builds the root Cobra command.
func NewRootCommand(dependencies Dependencies) *cobra.Command {
	dependencies = dependencies.withDefaults()
	options := runOptions{}
	var listFlags *listFlagGroup

	rootCommand := &cobra.Command{
		Use:           rootUse,
		Short:         rootShortDescription,
		Long:          rootLongDescription,
		Example:       rootUsageExample,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			positionals, positionalsError := listFlags.foldedArgs(command, arguments)
			if positionalsError != nil {
				return positionalsError
			}
			if options.showVersion {
				fmt.Fprintf(dependencies.Stdout, versionTemplate, utils.ApplicationVersion())
				return nil
			}
			if len(positionals) == 0 {
				return command.Help()
			}
			return runSnapshot(command, positionals[0], options, dependencies)
		},
	}
	rootCommand.SetOut(dependencies.Stdout)

	flags := rootCommand.Flags()
	flags.StringVarP(&options.outputPath, outputFlagName, outputFlagShorthand, types.DefaultOutputPath, outputFlagDescription)
	listFlags = newListFlagGroup(flags)
	listFlags.register(&options.excludedFiles, excludeFilesFlagName, excludeFilesFlagDescription)
	listFlags.register(&options.excludedDirs, excludeDirsFlagName, excludeDirsFlagDescription)
	flags.StringVar(&options.encodingName, encodingFlagName, types.DefaultEncoding, encodingFlagDescription)
	flags.BoolVar(&options.noExclusionFile, noExclusionFileFlagName, false, noExclusionFileFlagDescription)
	registerBooleanFlag(flags, &options.tokensEnabled, tokensFlagName, tokensFlagDescription)
	flags.StringVar(&options.tokenModel, modelFlagName, defaultTokenizerModel, modelFlagDescription)
	registerBooleanFlag(flags, &options.copyEnabled, copyFlagName, copyFlagDescription)
	flags.StringVar(&options.configPath, configFlagName, "", configFlagDescription)
	flags.StringVar(&options.logLevel, logLevelFlagName, "", logLevelFlagDescription)
	flags.BoolVar(&options.showVersion, versionFlagName, false, versionFlagDescription)

	rootCommand.AddCommand(createInitCommand(dependencies))
	rootCommand.InitDefaultCompletionCmd()
	return rootCommand
}

// createInitCommand returns the init subcommand.
func createInitCommand(dependencies Dependencies) *cobra.Command {
	var global bool
	var force bool
	initCommand := &cobra.Command{
		Use:   initUse,
		Short: initShortDescription,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			target := config.InitTargetLocal
			if global {
				target = config.InitTargetGlobal
			}
			writtenPath, initError := config.InitializeConfiguration(config.InitOptions{
				Target:                target,
				Force:                 force,
				WorkingDirectory:      dependencies.WorkingDirectory,
				GlobalConfigDirectory: dependencies.GlobalConfigDirectory,
			})
			if initError != nil {
				return initError
			}
			fmt.Fprintf(dependencies.Stdout, configurationWrittenText, writtenPath)
			return nil
		},
	}
	initCommand.Flags().BoolVar(&global, initGlobalFlagName, false, initGlobalFlagDescription)
	initCommand.Flags().BoolVar(&force, initForceFlagName, false, initForceFlagDescription)
	return initCommand
}

// runSnapshot builds the tree, assembles the report and writes it.
func runSnapshot(command *cobra.Command, rootArgument string, options runOptions, dependencies Dependencies) error {
	workingDirectory := dependencies.WorkingDirectory
	if workingDirectory == "" {
		currentDirectory, workingDirectoryError := os.Getwd()
		if workingDirectoryError != nil {
			return fmt.Errorf(workingDirectoryErrorFormat, workingDirectoryError)
		}
		workingDirectory = currentDirectory
	}

	rootPath, rootError := resolveAndValidateRoot(rootArgument, workingDirectory)
	if rootError != nil {
		return rootError
	}

	applicationConfiguration, configurationError := config.LoadApplicationConfiguration(config.LoadOptions{
		WorkingDirectory:      workingDirectory,
		ExplicitFilePath:      options.configPath,
		GlobalConfigDirectory: dependencies.GlobalConfigDirectory,
	})
	if configurationError != nil {
		return configurationError
	}
	settings := resolveSettings(command, options, applicationConfiguration)

	logger := dependencies.Logger
	if settings.logLevel != "" {
		leveledLogger, loggerError := utils.NewApplicationLogger(settings.logLevel)
		if loggerError != nil {
			return loggerError
		}
		logger = leveledLogger
		defer func() { _ = leveledLogger.Sync() }()
	}

	decoder, decoderError := utils.NewTextDecoder(settings.encodingName)
	if decoderError != nil {
		return decoderError
	}
	exclusions, exclusionError := config.LoadCombinedExclusions(rootPath, config.ExclusionConfiguration{
		Files: settings.excludedFiles,
		Dirs:  settings.excludedDirs,
	}, !options.noExclusionFile)
	if exclusionError != nil {
		return exclusionError
	}

	reportPath := settings.outputPath
	if !filepath.IsAbs(reportPath) {
		reportPath = filepath.Join(workingDirectory, reportPath)
	}
	reportPath = filepath.Clean(reportPath)

	listing, treeError := commands.NewTreeBuilder(logger).BuildTree(rootPath)
	if treeError != nil {
		return treeError
	}
	report := commands.NewReportAssembler(types.ReportOptions{
		RootPath:      rootPath,
		ExcludedFiles: utils.NewNameSet(exclusions.Files),
		ExcludedDirs:  utils.NewNameSet(exclusions.Dirs),
		Decoder:       decoder,
		ReportPath:    reportPath,
	}, logger).Assemble(listing)

	if writeError := output.WriteReport(reportPath, report.Text); writeError != nil {
		return writeError
	}
	fmt.Fprintf(dependencies.Stdout, resultSavedTemplate, settings.outputPath)

	summaryFields := []zap.Field{
		zap.String("path", reportPath),
		zap.Int("files", report.IncludedFiles),
		zap.Int("skipped", report.SkippedFiles),
		zap.Int("unreadable", report.ReadFailures),
		zap.String("size", humanize.Bytes(uint64(len(report.Text)))),
	}
	if settings.tokensEnabled {
		summaryFields = append(summaryFields, countReportTokens(report.Text, settings.tokenModel, dependencies, logger)...)
	}
	if settings.copyEnabled {
		if copyError := dependencies.Copier.Copy(report.Text); copyError != nil {
			logger.Warn(warningClipboardMessage, zap.Error(copyError))
		}
	}
	logger.Info(reportWrittenMessage, summaryFields...)
	return nil
}

// countReportTokens estimates the report's token count. Failures are logged and yield no fields.
func countReportTokens(text string, model string, dependencies Dependencies, logger *zap.Logger) []zap.Field {
	counter, resolvedModel, counterError := dependencies.NewTokenCounter(tokenizer.Config{Model: model})
	if counterError != nil {
		logger.Warn(warningTokenCountMessage, zap.Error(counterError))
		return nil
	}
	countResult, countError := tokenizer.CountText(counter, text)
	if countError != nil {
		logger.Warn(warningTokenCountMessage, zap.Error(countError))
		return nil
	}
	return []zap.Field{zap.Int("tokens", countResult.Tokens), zap.String("model", resolvedModel)}
}

// resolveAndValidateRoot converts the root argument to an absolute path and requires a directory.
func resolveAndValidateRoot(rootArgument string, workingDirectory string) (string, error) {
	absolutePath := rootArgument
	if !filepath.IsAbs(absolutePath) {
		absolutePath = filepath.Join(workingDirectory, absolutePath)
	}
	absolutePath, absolutePathError := filepath.Abs(absolutePath)
	if absolutePathError != nil {
		return "", fmt.Errorf(errorAbsolutePathFormat, rootArgument, absolutePathError)
	}
	info, statError := os.Stat(absolutePath)
	if statError != nil || !info.IsDir() {
		return "", commands.InvalidRootError{Path: rootArgument}
	}
	return filepath.Clean(absolutePath), nil
}
