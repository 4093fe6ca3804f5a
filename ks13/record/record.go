package record

import (
	"crypto/aes"
	"crypto/cipher"
	"errors"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/tlswork/ks13/ks13"
	"github.com/tlswork/ks13/ks13/schedule"
)

// All TLS 1.3 AEADs use a 12-byte per-record nonce (RFC 8446 section 5.3).
const IVLen = 12

var (
	ErrUnknownSuite = errors.New("record: unknown cipher suite")
)

// TrafficKeys holds the record-protection key material derived from one
// traffic secret for one direction of one epoch.
type TrafficKeys struct {
	Key []byte
	IV  []byte
}

// DeriveTrafficKeys derives the write key and IV from a traffic secret
// (RFC 8446 section 7.3). A new epoch's traffic secret yields fresh keys;
// the caller re-derives after every traffic-secret update.
func DeriveTrafficKeys(suite ks13.Suite, trafficSecret []byte) (TrafficKeys, error) {
	digest := suite.Hash()
	if digest == 0 {
		return TrafficKeys{}, ErrUnknownSuite
	}
	key, err := schedule.ExpandLabel(digest, trafficSecret, "key", nil, suite.KeyLen())
	if err != nil {
		return TrafficKeys{}, err
	}
	iv, err := schedule.ExpandLabel(digest, trafficSecret, "iv", nil, IVLen)
	if err != nil {
		return TrafficKeys{}, err
	}
	return TrafficKeys{Key: key, IV: iv}, nil
}

// NewAEAD derives key material from trafficSecret and constructs the suite's
// AEAD. Sealing and opening records is the record layer's job; this prepares
// the cipher and IV only.
func NewAEAD(suite ks13.Suite, trafficSecret []byte) (cipher.AEAD, TrafficKeys, error) {
	keys, err := DeriveTrafficKeys(suite, trafficSecret)
	if err != nil {
		return nil, TrafficKeys{}, err
	}

	switch suite {
	case ks13.TLS_CHACHA20_POLY1305_SHA256:
		aead, err := chacha20poly1305.New(keys.Key)
		if err != nil {
			return nil, TrafficKeys{}, err
		}
		return aead, keys, nil
	case ks13.TLS_AES_128_GCM_SHA256, ks13.TLS_AES_256_GCM_SHA384:
		block, err := aes.NewCipher(keys.Key)
		if err != nil {
			return nil, TrafficKeys{}, err
		}
		aead, err := cipher.NewGCM(block)
		if err != nil {
			return nil, TrafficKeys{}, err
		}
		return aead, keys, nil
	}
	return nil, TrafficKeys{}, ErrUnknownSuite
}
