// Package tokenizer estimates how many model tokens a report occupies.
package tokenizer

import (
	"fmt"
	"strings"

	"github.com/pkoukk/tiktoken-go"
)

// Counter estimates token counts for text content.
type Counter interface {
	Name() string
	CountString(input string) (int, error)
}

// Config captures tokenizer selection parameters provided by the CLI.
type Config struct {
	Model string
}

const (
	defaultModel        = "gpt-4o"
	defaultEncodingName = "cl100k_base"
)

// encodingLoader resolves tiktoken encodings; replaced in tests to avoid downloading BPE ranks.
type encodingLoader struct {
	forModel func(model string) (*tiktoken.Tiktoken, error)
	byName   func(encodingName string) (*tiktoken.Tiktoken, error)
}

var defaultEncodingLoader = encodingLoader{
	forModel: tiktoken.EncodingForModel,
	byName:   tiktoken.GetEncoding,
}

// NewCounter returns a tiktoken Counter for the requested model and the name it resolved to.
// Models tiktoken does not know are counted with the cl100k_base encoding.
func NewCounter(cfg Config) (Counter, string, error) {
	return newCounter(cfg, defaultEncodingLoader)
}

func newCounter(cfg Config, loader encodingLoader) (Counter, string, error) {
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = defaultModel
	}
	lowerModel := strings.ToLower(model)

	encoding, err := loader.forModel(lowerModel)
	if err == nil && encoding != nil {
		return tiktokenCounter{encoding: encoding, name: lowerModel}, model, nil
	}
	fallback, fallbackErr := loader.byName(defaultEncodingName)
	if fallbackErr != nil {
		return nil, "", fmt.Errorf("initialize fallback tokenizer: %w", fallbackErr)
	}
	return tiktokenCounter{encoding: fallback, name: defaultEncodingName}, defaultEncodingName, nil
}
