package utils

const (
	// ApplicationName is the command name and the configuration directory name.
	ApplicationName = "projsnap"
	// ConfigFileName is the name of the local configuration file.
	ConfigFileName = ".projsnap.yaml"
	// GlobalConfigFileName is the name of the configuration file inside the XDG config directory.
	GlobalConfigFileName = "config.yaml"

	// LoggerInitializationFailedMessageFormat reports a logger that could not be built.
	LoggerInitializationFailedMessageFormat = "failed to initialize logger: %w"
	// ApplicationExecutionFailedMessage prefixes fatal execution errors.
	ApplicationExecutionFailedMessage = "application execution failed"

	invalidLogLevelFormat = "invalid log level %q: %w"
)
