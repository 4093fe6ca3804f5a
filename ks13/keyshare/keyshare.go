package keyshare

import (
	"crypto/ecdh"
	"crypto/rand"
	"errors"
	"fmt"

	"golang.org/x/crypto/curve25519"
)

// Group identifies a TLS 1.3 supported group (RFC 8446 section 4.2.7).
type Group uint16

const (
	P256   Group = 0x0017
	P384   Group = 0x0018
	X25519 Group = 0x001d
)

var (
	ErrUnsupportedGroup = errors.New("keyshare: unsupported group")
	ErrInvalidPeerShare = errors.New("keyshare: invalid peer key share")
)

func (g Group) String() string {
	switch g {
	case P256:
		return "secp256r1"
	case P384:
		return "secp384r1"
	case X25519:
		return "x25519"
	}
	return fmt.Sprintf("Group(0x%04x)", uint16(g))
}

// KeyShare holds one side's ephemeral (EC)DHE share for a TLS 1.3 handshake.
// Its shared secret is the input keying material for the handshake phase of
// the key schedule.
type KeyShare struct {
	group       Group
	x25519Priv  []byte
	x25519Pub   []byte
	nistPrivate *ecdh.PrivateKey
}

// Generate creates a fresh ephemeral key share for group.
func Generate(group Group) (*KeyShare, error) {
	switch group {
	case X25519:
		priv := make([]byte, curve25519.ScalarSize)
		if _, err := rand.Read(priv); err != nil {
			return nil, err
		}
		return NewX25519(priv)
	case P256, P384:
		key, err := nistCurve(group).GenerateKey(rand.Reader)
		if err != nil {
			return nil, err
		}
		return &KeyShare{group: group, nistPrivate: key}, nil
	}
	return nil, ErrUnsupportedGroup
}

// NewX25519 builds an X25519 share from a fixed 32-byte private scalar.
// Intended for tests that replay published handshakes; use Generate
// otherwise.
func NewX25519(priv []byte) (*KeyShare, error) {
	if len(priv) != curve25519.ScalarSize {
		return nil, errors.New("keyshare: x25519 private key must be 32 bytes")
	}
	pub, err := curve25519.X25519(priv, curve25519.Basepoint)
	if err != nil {
		return nil, err
	}
	k := &KeyShare{
		group:      X25519,
		x25519Priv: append([]byte(nil), priv...),
		x25519Pub:  pub,
	}
	return k, nil
}

func nistCurve(group Group) ecdh.Curve {
	if group == P384 {
		return ecdh.P384()
	}
	return ecdh.P256()
}

// Group returns the share's named group.
func (k *KeyShare) Group() Group {
	return k.group
}

// PublicBytes returns the wire encoding of the public share, as carried in a
// key_share extension entry.
func (k *KeyShare) PublicBytes() []byte {
	if k.group == X25519 {
		return append([]byte(nil), k.x25519Pub...)
	}
	return k.nistPrivate.PublicKey().Bytes()
}

// SharedSecret computes the (EC)DHE shared secret with the peer's public
// share. All-zero and malformed peer shares are rejected.
func (k *KeyShare) SharedSecret(peer []byte) ([]byte, error) {
	switch k.group {
	case X25519:
		if len(peer) != curve25519.PointSize {
			return nil, ErrInvalidPeerShare
		}
		allZero := byte(0)
		for _, b := range peer {
			allZero |= b
		}
		if allZero == 0 {
			return nil, ErrInvalidPeerShare
		}
		shared, err := curve25519.X25519(k.x25519Priv, peer)
		if err != nil {
			return nil, ErrInvalidPeerShare
		}
		return shared, nil
	case P256, P384:
		pub, err := nistCurve(k.group).NewPublicKey(peer)
		if err != nil {
			return nil, ErrInvalidPeerShare
		}
		shared, err := k.nistPrivate.ECDH(pub)
		if err != nil {
			return nil, ErrInvalidPeerShare
		}
		return shared, nil
	}
	return nil, ErrUnsupportedGroup
}
