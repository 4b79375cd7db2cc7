// Package image turns base64 image payloads into stored objects and hands
// out download links for them.
package image

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidInput is returned for an empty payload or an unsupported data URL.
var ErrInvalidInput = errors.New("invalid image data")

// ErrDecode is returned when the payload is not valid standard base64.
var ErrDecode = errors.New("decode image data")

const (
	dataURLScheme    = "data:"
	defaultExtension = "jpg"
)

// prefixExtensions maps every accepted data URL prefix to the object extension.
var prefixExtensions = map[string]string{
	"data:image/png;base64,":  "png",
	"data:image/jpeg;base64,": "jpg",
	"data:image/jpg;base64,":  "jpg",
	"data:image/gif;base64,":  "gif",
}

// Payload is a decoded image ready for upload.
type Payload struct {
	Data      []byte
	Extension string
}

// ContentType is derived from the extension alone; the bytes are never sniffed.
func (p Payload) ContentType() string {
	return "image/" + p.Extension
}

// ParsePayload strips a recognized data URL prefix and decodes the rest.
// A payload without a prefix is treated as a JPEG.
func ParsePayload(raw string) (Payload, error) {
	if raw == "" {
		return Payload{}, fmt.Errorf("%w: image data must be a non-empty string", ErrInvalidInput)
	}

	encoded, ext, err := splitPrefix(raw)
	if err != nil {
		return Payload{}, err
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return Payload{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return Payload{Data: data, Extension: ext}, nil
}

func splitPrefix(raw string) (encoded, ext string, err error) {
	if !strings.HasPrefix(raw, dataURLScheme) {
		return raw, defaultExtension, nil
	}
	for prefix, ext := range prefixExtensions {
		if strings.HasPrefix(raw, prefix) {
			return raw[len(prefix):], ext, nil
		}
	}
	head, _, _ := strings.Cut(raw, ",")
	return "", "", fmt.Errorf("%w: unsupported data URL prefix %q", ErrInvalidInput, head)
}
