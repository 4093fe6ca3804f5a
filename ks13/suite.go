package ks13

import (
	"crypto"
	_ "crypto/sha256"
	_ "crypto/sha512"
	"fmt"
)

// Suite identifies a TLS 1.3 cipher suite (RFC 8446 appendix B.4).
type Suite uint16

const (
	TLS_AES_128_GCM_SHA256       Suite = 0x1301
	TLS_AES_256_GCM_SHA384       Suite = 0x1302
	TLS_CHACHA20_POLY1305_SHA256 Suite = 0x1303
)

// Hash returns the digest the suite uses for its transcript and HKDF
// invocations, or 0 for an unknown suite.
func (s Suite) Hash() crypto.Hash {
	switch s {
	case TLS_AES_128_GCM_SHA256, TLS_CHACHA20_POLY1305_SHA256:
		return crypto.SHA256
	case TLS_AES_256_GCM_SHA384:
		return crypto.SHA384
	}
	return 0
}

// KeyLen returns the suite's AEAD key length in bytes, or 0 for an unknown
// suite.
func (s Suite) KeyLen() int {
	switch s {
	case TLS_AES_128_GCM_SHA256:
		return 16
	case TLS_AES_256_GCM_SHA384, TLS_CHACHA20_POLY1305_SHA256:
		return 32
	}
	return 0
}

func (s Suite) String() string {
	switch s {
	case TLS_AES_128_GCM_SHA256:
		return "TLS_AES_128_GCM_SHA256"
	case TLS_AES_256_GCM_SHA384:
		return "TLS_AES_256_GCM_SHA384"
	case TLS_CHACHA20_POLY1305_SHA256:
		return "TLS_CHACHA20_POLY1305_SHA256"
	}
	return fmt.Sprintf("Suite(0x%04x)", uint16(s))
}
