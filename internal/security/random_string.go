// Package security holds small crypto helpers. RandomString backs the
// wizard session identifiers and generated temporary passwords.
package security

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strings"
)

// RandomString draws length characters uniformly from alphabet using
// crypto/rand. rand.Int keeps the draw unbiased for alphabets whose size
// is not a power of two.
func RandomString(length int, alphabet string) (string, error) {
	switch {
	case length < 0:
		return "", errors.New("length must be non-negative")
	case length == 0:
		return "", nil
	case alphabet == "":
		return "", errors.New("alphabet must not be empty")
	}

	limit := big.NewInt(int64(len(alphabet)))
	var builder strings.Builder
	builder.Grow(length)
	for i := 0; i < length; i++ {
		position, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		builder.WriteByte(alphabet[position.Int64()])
	}
	return builder.String(), nil
}
