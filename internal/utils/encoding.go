package utils

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
)

// NewTextDecoder returns a decoder for the named encoding. Names follow the WHATWG
// encoding labels ("utf-8", "windows-1251", "latin1", ...). Bytes that are invalid in
// the selected encoding decode to U+FFFD instead of failing.
func NewTextDecoder(encodingName string) (*encoding.Decoder, error) {
	trimmedName := strings.TrimSpace(encodingName)
	if trimmedName == "" {
		return unicode.UTF8.NewDecoder(), nil
	}
	selectedEncoding, lookupError := htmlindex.Get(trimmedName)
	if lookupError != nil {
		return nil, fmt.Errorf("unsupported encoding %q: %w", encodingName, lookupError)
	}
	return selectedEncoding.NewDecoder(), nil
}

// DecodeText converts data into UTF-8 text with the provided decoder.
// A nil decoder decodes permissive UTF-8.
func DecodeText(decoder *encoding.Decoder, data []byte) (string, error) {
	if decoder == nil {
		decoder = unicode.UTF8.NewDecoder()
	}
	decodedBytes, decodeError := decoder.Bytes(data)
	if decodeError != nil {
		return "", decodeError
	}
	return string(decodedBytes), nil
}
