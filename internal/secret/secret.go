package secret

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// Size is the number of random bytes in a secret.
const Size = 32

var (
	ErrEntropySource = errors.New("entropy source unavailable")
	ErrMalformed     = errors.New("malformed secret")
)

var encoding = base64.URLEncoding

// Secret is a URL-safe, padded base64 encoding of Size random bytes.
type Secret string

// Generate reads Size bytes from r and encodes them.
// A nil reader uses crypto/rand.
func Generate(r io.Reader) (Secret, error) {
	if r == nil {
		r = rand.Reader
	}
	buf := make([]byte, Size)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", fmt.Errorf("%w: read random bytes: %w", ErrEntropySource, err)
	}
	return Secret(encoding.EncodeToString(buf)), nil
}

// Parse validates a stored secret.
func Parse(text string) (Secret, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("%w: empty", ErrMalformed)
	}
	raw, err := encoding.DecodeString(text)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if len(raw) != Size {
		return "", fmt.Errorf("%w: decodes to %d bytes, want %d", ErrMalformed, len(raw), Size)
	}
	return Secret(text), nil
}

// Bytes returns the decoded random bytes.
func (s Secret) Bytes() ([]byte, error) {
	raw, err := encoding.DecodeString(string(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return raw, nil
}

// Fingerprint returns a short digest that identifies the secret without revealing it.
func (s Secret) Fingerprint() string {
	sum := blake2b.Sum256([]byte(s))
	return hex.EncodeToString(sum[:8])
}

func (s Secret) String() string {
	return string(s)
}
