package idgen

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

const idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// GenerateSecureID returns an identifier of the form "<prefix>_<random>",
// where the random part is drawn from [a-z0-9] with crypto/rand.
func GenerateSecureID(prefix string, length int) (string, error) {
	if prefix == "" {
		return "", errors.New("prefix cannot be empty")
	}
	if length <= 0 {
		return "", errors.New("length must be positive")
	}

	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	for i, b := range buf {
		buf[i] = idAlphabet[int(b)%len(idAlphabet)]
	}

	return fmt.Sprintf("%s_%s", prefix, string(buf)), nil
}

// ValidateIDFormat reports whether id is "<expectedPrefix>_<suffix>" with a
// non-empty [a-z0-9] suffix.
func ValidateIDFormat(id, expectedPrefix string) bool {
	want := expectedPrefix + "_"
	if !strings.HasPrefix(id, want) {
		return false
	}
	suffix := id[len(want):]
	if suffix == "" {
		return false
	}
	for _, char := range suffix {
		if !((char >= 'a' && char <= 'z') || (char >= '0' && char <= '9')) {
			return false
		}
	}
	return true
}

// HashKey256 returns the hex-encoded HMAC-SHA256 of key under secret.
func HashKey256(key string, secret []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(key))
	return hex.EncodeToString(mac.Sum(nil))
}
