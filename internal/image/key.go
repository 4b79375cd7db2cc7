package image

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

const (
	keyPrefix      = "images/"
	suffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	suffixLength   = 8
)

// NewKey builds "images/<unix-millis>-<8 random [a-z0-9]>.<ext>".
// Uniqueness rests on the timestamp plus the random suffix.
func NewKey(now time.Time, ext string) (string, error) {
	suffix, err := randomSuffix()
	if err != nil {
		return "", fmt.Errorf("generate key suffix: %w", err)
	}
	return fmt.Sprintf("%s%d-%s.%s", keyPrefix, now.UnixMilli(), suffix, ext), nil
}

func randomSuffix() (string, error) {
	n := big.NewInt(int64(len(suffixAlphabet)))
	b := make([]byte, suffixLength)
	for i := range b {
		idx, err := rand.Int(rand.Reader, n)
		if err != nil {
			return "", err
		}
		b[i] = suffixAlphabet[idx.Int64()]
	}
	return string(b), nil
}
