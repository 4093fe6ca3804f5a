package record

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/tlswork/ks13/ks13"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex constant: %v", err)
	}
	return b
}

// RFC 8448 section 3: the server handshake write key and IV derived from the
// server handshake traffic secret under TLS_AES_128_GCM_SHA256.
func TestDeriveTrafficKeysRFC8448(t *testing.T) {
	trafficSecret := mustHex(t, "b67b7d690cc16c4e75e54213cb2d37b4e9c912bcded9105d42befd59d391ad38")

	keys, err := DeriveTrafficKeys(ks13.TLS_AES_128_GCM_SHA256, trafficSecret)
	if err != nil {
		t.Fatalf("DeriveTrafficKeys: %v", err)
	}
	if !bytes.Equal(keys.Key, mustHex(t, "3fce516009c21727d0f2e4e86ee403bc")) {
		t.Fatalf("write key mismatch: got %x", keys.Key)
	}
	if !bytes.Equal(keys.IV, mustHex(t, "5d313eb2671276ee13000b30")) {
		t.Fatalf("write IV mismatch: got %x", keys.IV)
	}
}

func TestNewAEADPerSuite(t *testing.T) {
	trafficSecret := bytes.Repeat([]byte{0x77}, 48)

	for _, suite := range []ks13.Suite{
		ks13.TLS_AES_128_GCM_SHA256,
		ks13.TLS_AES_256_GCM_SHA384,
		ks13.TLS_CHACHA20_POLY1305_SHA256,
	} {
		aead, keys, err := NewAEAD(suite, trafficSecret[:suite.Hash().Size()])
		if err != nil {
			t.Fatalf("NewAEAD(%v): %v", suite, err)
		}
		if len(keys.Key) != suite.KeyLen() {
			t.Fatalf("%v key length = %d, want %d", suite, len(keys.Key), suite.KeyLen())
		}
		if len(keys.IV) != IVLen {
			t.Fatalf("%v IV length = %d, want %d", suite, len(keys.IV), IVLen)
		}
		if aead.NonceSize() != IVLen {
			t.Fatalf("%v AEAD nonce size = %d, want %d", suite, aead.NonceSize(), IVLen)
		}
	}
}

func TestDistinctDirections(t *testing.T) {
	client := bytes.Repeat([]byte{0x01}, 32)
	server := bytes.Repeat([]byte{0x02}, 32)

	ck, err := DeriveTrafficKeys(ks13.TLS_AES_128_GCM_SHA256, client)
	if err != nil {
		t.Fatalf("DeriveTrafficKeys: %v", err)
	}
	sk, err := DeriveTrafficKeys(ks13.TLS_AES_128_GCM_SHA256, server)
	if err != nil {
		t.Fatalf("DeriveTrafficKeys: %v", err)
	}
	if bytes.Equal(ck.Key, sk.Key) || bytes.Equal(ck.IV, sk.IV) {
		t.Fatalf("distinct traffic secrets must yield distinct key material")
	}
}

func TestUnknownSuite(t *testing.T) {
	if _, err := DeriveTrafficKeys(ks13.Suite(0x1399), make([]byte, 32)); !errors.Is(err, ErrUnknownSuite) {
		t.Fatalf("DeriveTrafficKeys unknown suite = %v, want ErrUnknownSuite", err)
	}
	if _, _, err := NewAEAD(ks13.Suite(0x1399), make([]byte, 32)); !errors.Is(err, ErrUnknownSuite) {
		t.Fatalf("NewAEAD unknown suite = %v, want ErrUnknownSuite", err)
	}
}
