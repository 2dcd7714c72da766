package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/temirov/projsnap/internal/types"
	"github.com/temirov/projsnap/internal/utils"
)

// InitTarget identifies where configuration should be initialized.
type InitTarget string

const (
	// InitTargetLocal writes configuration into the working directory.
	InitTargetLocal InitTarget = "local"
	// InitTargetGlobal writes configuration into the XDG configuration directory.
	InitTargetGlobal InitTarget = "global"

	defaultTokenModel = "gpt-4o"
	defaultLogLevel   = "info"
	yamlIndent        = 2
)

// InitOptions controls how configuration initialization behaves.
type InitOptions struct {
	Target                InitTarget
	Force                 bool
	WorkingDirectory      string
	GlobalConfigDirectory string
}

// DefaultApplicationConfiguration returns the built-in defaults written by init.
func DefaultApplicationConfiguration() ApplicationConfiguration {
	disabled := false
	tokensDisabled := false
	return ApplicationConfiguration{
		Output:   types.DefaultOutputPath,
		Encoding: types.DefaultEncoding,
		Copy:     &disabled,
		LogLevel: defaultLogLevel,
		Exclude: ExclusionConfiguration{
			Files: []string{},
			Dirs:  []string{},
		},
		Tokens: TokenConfiguration{
			Enabled: &tokensDisabled,
			Model:   defaultTokenModel,
		},
	}
}

// RenderConfiguration encodes configuration as YAML.
func RenderConfiguration(configuration ApplicationConfiguration) ([]byte, error) {
	var buffer bytes.Buffer
	encoder := yaml.NewEncoder(&buffer)
	encoder.SetIndent(yamlIndent)
	if err := encoder.Encode(configuration); err != nil {
		return nil, fmt.Errorf("encode configuration: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("encode configuration: %w", err)
	}
	return buffer.Bytes(), nil
}

// InitializeConfiguration writes the default configuration to the requested target and
// returns the path written.
func InitializeConfiguration(options InitOptions) (string, error) {
	target := options.Target
	if target == "" {
		target = InitTargetLocal
	}
	var destinationPath string
	switch target {
	case InitTargetLocal:
		workingDirectory := options.WorkingDirectory
		if workingDirectory == "" {
			current, err := os.Getwd()
			if err != nil {
				return "", fmt.Errorf("determine working directory for configuration: %w", err)
			}
			workingDirectory = current
		}
		destinationPath = filepath.Join(workingDirectory, utils.ConfigFileName)
	case InitTargetGlobal:
		destinationPath = GlobalConfigurationPath(options.GlobalConfigDirectory)
		configurationDirectory := filepath.Dir(destinationPath)
		if err := os.MkdirAll(configurationDirectory, 0o755); err != nil {
			return "", fmt.Errorf("create configuration directory %s: %w", configurationDirectory, err)
		}
	default:
		return "", fmt.Errorf("unsupported init target %q", target)
	}

	if _, err := os.Stat(destinationPath); err == nil {
		if !options.Force {
			return "", fmt.Errorf("configuration file already exists at %s", destinationPath)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("inspect configuration path %s: %w", destinationPath, err)
	}

	rendered, renderErr := RenderConfiguration(DefaultApplicationConfiguration())
	if renderErr != nil {
		return "", renderErr
	}
	if err := os.WriteFile(destinationPath, rendered, 0o600); err != nil {
		return "", fmt.Errorf("write configuration to %s: %w", destinationPath, err)
	}

	return destinationPath, nil
}
