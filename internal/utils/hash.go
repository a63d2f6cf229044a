package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// SHA256Hex computes the SHA-256 digest over the concatenation of parts and
// returns it as a lowercase hex string.
//
// This is the single hashing primitive of the redemption protocol: the
// Bearer token is SHA256Hex(privateKey), the X-TL-TOKEN header is
// SHA256Hex(publicKey, privateKey), and the login endpoint is
// SHA256Hex(siteURL, identifier). The function is pure — identical inputs
// always yield identical output.
func SHA256Hex(parts ...string) string {
	h := sha256.New()
	for _, part := range parts {
		h.Write([]byte(part))
	}
	return hex.EncodeToString(h.Sum(nil))
}
