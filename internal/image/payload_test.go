package image

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	pngBytes  = []byte("\x89PNG\r\n\x1a\n fake png")
	jpegBytes = []byte("\xff\xd8\xff\xe0 fake jpeg")
)

func TestParsePayload(t *testing.T) {
	pngB64 := base64.StdEncoding.EncodeToString(pngBytes)
	jpegB64 := base64.StdEncoding.EncodeToString(jpegBytes)

	tests := []struct {
		name        string
		in          string
		wantExt     string
		wantType    string
		wantPayload []byte
	}{
		{"png prefix", "data:image/png;base64," + pngB64, "png", "image/png", pngBytes},
		{"jpeg prefix maps to jpg", "data:image/jpeg;base64," + jpegB64, "jpg", "image/jpg", jpegBytes},
		{"jpg prefix", "data:image/jpg;base64," + jpegB64, "jpg", "image/jpg", jpegBytes},
		{"gif prefix", "data:image/gif;base64,R0lGODlh", "gif", "image/gif", []byte("GIF89a")},
		{"bare base64 defaults to jpg", pngB64, "jpg", "image/jpg", pngBytes},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParsePayload(tt.in)

			require.NoError(t, err)
			assert.Equal(t, tt.wantExt, p.Extension)
			assert.Equal(t, tt.wantType, p.ContentType())
			assert.Equal(t, tt.wantPayload, p.Data)
		})
	}
}

func TestParsePayload_Empty(t *testing.T) {
	_, err := ParsePayload("")

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestParsePayload_UnsupportedPrefix(t *testing.T) {
	tests := []string{
		"data:image/webp;base64,UklGRg==",
		"data:image/PNG;base64,iVBORw0KGgo=",
		"data:text/plain;base64,aGVsbG8=",
		"data:image/png,raw",
	}

	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			_, err := ParsePayload(in)

			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.NotErrorIs(t, err, ErrDecode)
		})
	}
}

func TestParsePayload_InvalidBase64(t *testing.T) {
	tests := []string{
		"not base64 at all!",
		"data:image/png;base64,%%%%",
		"iVBORw0KGgo", // missing padding
	}

	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			_, err := ParsePayload(in)

			assert.ErrorIs(t, err, ErrDecode)
			assert.NotErrorIs(t, err, ErrInvalidInput)
		})
	}
}

// The prefix only selects the extension; the decoded bytes are not checked
// against it. Whether that leniency is wanted is still unverified.
func TestParsePayload_PrefixNotVerifiedAgainstBytes(t *testing.T) {
	in := "data:image/png;base64," + base64.StdEncoding.EncodeToString(jpegBytes)

	p, err := ParsePayload(in)

	require.NoError(t, err)
	assert.Equal(t, "png", p.Extension)
	assert.Equal(t, jpegBytes, p.Data)
}

func TestParsePayload_PrefixOnlyYieldsEmptyImage(t *testing.T) {
	p, err := ParsePayload("data:image/gif;base64,")

	require.NoError(t, err)
	assert.Equal(t, "gif", p.Extension)
	assert.Empty(t, p.Data)
}
