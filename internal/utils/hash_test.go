package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSHA256Hex_Deterministic(t *testing.T) {
	first := SHA256Hex("https://client.example", "id1")
	second := SHA256Hex("https://client.example", "id1")

	assert.Equal(t, first, second)
	assert.Len(t, first, 64)
}

func TestSHA256Hex_ConcatenatesParts(t *testing.T) {
	joined := SHA256Hex("abc", "def")
	single := SHA256Hex("abcdef")

	assert.Equal(t, single, joined)
}

func TestSHA256Hex_MatchesStdlib(t *testing.T) {
	sum := sha256.Sum256([]byte("secret-private-key"))

	assert.Equal(t, hex.EncodeToString(sum[:]), SHA256Hex("secret-private-key"))
}

func TestSHA256Hex_EmptyInput(t *testing.T) {
	sum := sha256.Sum256(nil)

	assert.Equal(t, hex.EncodeToString(sum[:]), SHA256Hex())
}
