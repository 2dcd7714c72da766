package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"

	"github.com/temirov/projsnap/internal/utils"
)

// LoadOptions controls how application configuration is discovered.
type LoadOptions struct {
	WorkingDirectory string
	ExplicitFilePath string
	// GlobalConfigDirectory overrides the XDG configuration home.
	GlobalConfigDirectory string
}

// ApplicationConfiguration holds the defaults applied before command line flags.
type ApplicationConfiguration struct {
	Output   string                 `mapstructure:"output" yaml:"output"`
	Encoding string                 `mapstructure:"encoding" yaml:"encoding"`
	Copy     *bool                  `mapstructure:"copy" yaml:"copy"`
	LogLevel string                 `mapstructure:"log_level" yaml:"log_level"`
	Exclude  ExclusionConfiguration `mapstructure:"exclude" yaml:"exclude"`
	Tokens   TokenConfiguration     `mapstructure:"tokens" yaml:"tokens"`
}

// ExclusionConfiguration lists names whose content is left out of the report.
type ExclusionConfiguration struct {
	Files []string `mapstructure:"files" yaml:"files"`
	Dirs  []string `mapstructure:"dirs" yaml:"dirs"`
}

// TokenConfiguration controls token counting defaults.
type TokenConfiguration struct {
	Enabled *bool  `mapstructure:"enabled" yaml:"enabled"`
	Model   string `mapstructure:"model" yaml:"model"`
}

// GlobalConfigurationPath returns the configuration file inside configDirectory, or inside
// the XDG configuration home when configDirectory is empty.
func GlobalConfigurationPath(configDirectory string) string {
	if configDirectory == "" {
		configDirectory = xdg.ConfigHome
	}
	return filepath.Join(configDirectory, utils.ApplicationName, utils.GlobalConfigFileName)
}

// LoadApplicationConfiguration loads configuration from the global and local files.
// Values from the local file override global ones.
func LoadApplicationConfiguration(options LoadOptions) (ApplicationConfiguration, error) {
	workingDirectory := options.WorkingDirectory
	if workingDirectory == "" {
		currentDirectory, err := os.Getwd()
		if err != nil {
			return ApplicationConfiguration{}, fmt.Errorf("determine working directory: %w", err)
		}
		workingDirectory = currentDirectory
	}

	var merged ApplicationConfiguration

	globalConfig, loadErr := loadConfigurationFromPath(GlobalConfigurationPath(options.GlobalConfigDirectory), false)
	if loadErr != nil {
		return ApplicationConfiguration{}, loadErr
	}
	merged = merged.Merge(globalConfig)

	localPath := resolveLocalConfigPath(workingDirectory, options.ExplicitFilePath)
	localConfig, loadErr := loadConfigurationFromPath(localPath, options.ExplicitFilePath != "")
	if loadErr != nil {
		return ApplicationConfiguration{}, loadErr
	}
	merged = merged.Merge(localConfig)

	merged.Exclude.Files = utils.DeduplicatePatterns(merged.Exclude.Files)
	merged.Exclude.Dirs = utils.DeduplicatePatterns(merged.Exclude.Dirs)

	return merged, nil
}

func resolveLocalConfigPath(workingDirectory, explicitPath string) string {
	if explicitPath != "" {
		if filepath.IsAbs(explicitPath) {
			return explicitPath
		}
		return filepath.Join(workingDirectory, explicitPath)
	}
	return filepath.Join(workingDirectory, utils.ConfigFileName)
}

// loadConfigurationFromPath reads one YAML file. A missing file yields an empty configuration
// unless required is set.
func loadConfigurationFromPath(path string, required bool) (ApplicationConfiguration, error) {
	info, statErr := os.Stat(path)
	if statErr != nil {
		if errors.Is(statErr, os.ErrNotExist) && !required {
			return ApplicationConfiguration{}, nil
		}
		return ApplicationConfiguration{}, fmt.Errorf("stat configuration %s: %w", path, statErr)
	}
	if info.IsDir() {
		return ApplicationConfiguration{}, fmt.Errorf("configuration path %s is a directory", path)
	}

	reader := viper.New()
	reader.SetConfigFile(path)
	reader.SetConfigType("yaml")
	if readErr := reader.ReadInConfig(); readErr != nil {
		return ApplicationConfiguration{}, fmt.Errorf("read configuration from %s: %w", path, readErr)
	}
	var config ApplicationConfiguration
	if decodeErr := reader.Unmarshal(&config); decodeErr != nil {
		return ApplicationConfiguration{}, fmt.Errorf("decode configuration from %s: %w", path, decodeErr)
	}
	return config, nil
}

// Merge overlays override onto the receiver returning the combined configuration.
func (config ApplicationConfiguration) Merge(override ApplicationConfiguration) ApplicationConfiguration {
	result := config
	if override.Output != "" {
		result.Output = override.Output
	}
	if override.Encoding != "" {
		result.Encoding = override.Encoding
	}
	if override.Copy != nil {
		result.Copy = cloneBool(override.Copy)
	}
	if override.LogLevel != "" {
		result.LogLevel = override.LogLevel
	}
	result.Exclude = result.Exclude.merge(override.Exclude)
	result.Tokens = result.Tokens.merge(override.Tokens)
	return result
}

func (config ExclusionConfiguration) merge(override ExclusionConfiguration) ExclusionConfiguration {
	result := config
	if len(override.Files) > 0 {
		result.Files = append([]string{}, utils.DeduplicatePatterns(override.Files)...)
	}
	if len(override.Dirs) > 0 {
		result.Dirs = append([]string{}, utils.DeduplicatePatterns(override.Dirs)...)
	}
	return result
}

func (config TokenConfiguration) merge(override TokenConfiguration) TokenConfiguration {
	result := config
	if override.Enabled != nil {
		result.Enabled = cloneBool(override.Enabled)
	}
	if override.Model != "" {
		result.Model = override.Model
	}
	return result
}

// BoolValue dereferences value, returning fallback when it is unset.
func BoolValue(value *bool, fallback bool) bool {
	if value == nil {
		return fallback
	}
	return *value
}

func cloneBool(value *bool) *bool {
	if value == nil {
		return nil
	}
	cloned := *value
	return &cloned
}
