package commands

import (
	"fmt"
	"os"

	"golang.org/x/text/encoding"

	"github.com/temirov/projsnap/internal/utils"
)

const (
	errorReadFileFormat   = "reading %s: %w"
	errorDecodeFileFormat = "decoding %s: %w"
)

// readFileText reads the whole file at path and decodes it with decoder. Invalid byte
// sequences are replaced rather than reported; only open, read or decoder failures
// produce an error.
//
// #nosec G304
func readFileText(path string, decoder *encoding.Decoder) (string, error) {
	fileBytes, readError := os.ReadFile(path)
	if readError != nil {
		return "", fmt.Errorf(errorReadFileFormat, path, readError)
	}
	decodedText, decodeError := utils.DecodeText(decoder, fileBytes)
	if decodeError != nil {
		return "", fmt.Errorf(errorDecodeFileFormat, path, decodeError)
	}
	return decodedText, nil
}
