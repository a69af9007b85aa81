package helpers

import (
	"crypto"
	_ "crypto/sha256" // registers crypto.SHA256
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// DigestEncoding selects how a password digest is rendered as text.
type DigestEncoding string

const (
	// DigestFixed renders every byte as two hex digits.
	DigestFixed DigestEncoding = "fixed"
	// DigestLegacy renders the digest as an unsigned integer in hex,
	// left-padded with zeros to at least 32 characters.
	DigestLegacy DigestEncoding = "legacy"

	legacyMinLen = 32
)

// ErrHashUnavailable is returned when the requested hash is not linked into the binary.
var ErrHashUnavailable = errors.New("hash algorithm unavailable")

// ParseDigestEncoding maps a config value to a DigestEncoding. Empty means fixed.
func ParseDigestEncoding(s string) (DigestEncoding, error) {
	switch DigestEncoding(strings.ToLower(strings.TrimSpace(s))) {
	case "", DigestFixed:
		return DigestFixed, nil
	case DigestLegacy:
		return DigestLegacy, nil
	default:
		return "", fmt.Errorf("unknown password encoding %q", s)
	}
}

// HashPassword digests the raw bytes of plain with alg and renders the sum with enc.
func HashPassword(alg crypto.Hash, plain string, enc DigestEncoding) (string, error) {
	if !alg.Available() {
		return "", fmt.Errorf("%w: %v", ErrHashUnavailable, alg)
	}
	h := alg.New()
	h.Write([]byte(plain))
	sum := h.Sum(nil)
	if enc == DigestLegacy {
		return legacyHex(sum), nil
	}
	return hex.EncodeToString(sum), nil
}

func legacyHex(sum []byte) string {
	s := new(big.Int).SetBytes(sum).Text(16)
	if len(s) < legacyMinLen {
		s = strings.Repeat("0", legacyMinLen-len(s)) + s
	}
	return s
}
