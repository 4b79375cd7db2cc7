package image

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var keyPattern = regexp.MustCompile(`^images/(\d+)-[a-z0-9]{8}\.(png|jpg|gif)$`)

func TestNewKey_Format(t *testing.T) {
	now := time.UnixMilli(1746776743123)

	key, err := NewKey(now, "png")

	require.NoError(t, err)
	m := keyPattern.FindStringSubmatch(key)
	require.NotNil(t, m, "unexpected key %q", key)
	assert.Equal(t, "1746776743123", m[1])
	assert.Equal(t, "png", m[2])
}

func TestNewKey_SameInstantDiffers(t *testing.T) {
	now := time.Now()
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		key, err := NewKey(now, "jpg")
		require.NoError(t, err)
		assert.False(t, seen[key], "duplicate key %q", key)
		seen[key] = true
	}
}
