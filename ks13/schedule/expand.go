package schedule

import (
	"crypto"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/hkdf"
)

// labelPrefix is prepended to every expansion label on the wire.
const labelPrefix = "tls13 "

var (
	// ErrLengthMismatch reports an HKDF-Extract or digest output whose
	// length disagrees with the digest's declared size, indicating an
	// inconsistent digest implementation.
	ErrLengthMismatch = errors.New("schedule: digest length mismatch")
)

// hkdfLabelInfo builds the HkdfLabel structure from RFC 8446 section 7.1:
//
//	uint16 length
//	opaque label<7..255>   = "tls13 " || label
//	opaque context<0..255>
//
// The byte layout is a wire-compatibility requirement and must match the RFC
// bit for bit.
func hkdfLabelInfo(length int, label, context []byte) ([]byte, error) {
	var b cryptobyte.Builder
	b.AddUint16(uint16(length))
	b.AddUint8LengthPrefixed(func(b *cryptobyte.Builder) {
		b.AddBytes([]byte(labelPrefix))
		b.AddBytes(label)
	})
	b.AddUint8LengthPrefixed(func(b *cryptobyte.Builder) {
		b.AddBytes(context)
	})
	return b.Bytes()
}

// expandLabel is HKDF-Expand-Label. When a claim hook is present and a
// context was supplied, the hook observes the transcript classification
// before the expansion runs; the expansion output does not depend on it.
func expandLabel(digest crypto.Hash, secret, label, context []byte, length int, claim ClaimFunc) ([]byte, error) {
	if claim != nil && context != nil {
		transcript := make([]byte, len(context))
		copy(transcript, context)
		claim(classifyLabel(label), transcript)
	}

	info, err := hkdfLabelInfo(length, label, context)
	if err != nil {
		return nil, fmt.Errorf("schedule: hkdf label: %w", err)
	}
	out := make([]byte, length)
	if _, err := io.ReadFull(hkdf.Expand(digest.New, secret, info), out); err != nil {
		return nil, fmt.Errorf("schedule: hkdf expand: %w", err)
	}
	return out, nil
}

// ExpandLabel implements HKDF-Expand-Label over digest: it expands secret
// under "tls13 " || label and context to length bytes. A nil context is
// equivalent to a zero-length one.
func ExpandLabel(digest crypto.Hash, secret []byte, label string, context []byte, length int) ([]byte, error) {
	return expandLabel(digest, secret, []byte(label), context, length, nil)
}

// expand runs a labelled expansion with the container's claim hook attached.
func (s *Secrets) expand(secret []byte, label string, context []byte, length int) ([]byte, error) {
	return expandLabel(s.digest, secret, []byte(label), context, length, s.claim)
}

// DeriveSecret is RFC 8446's Derive-Secret: a labelled expansion whose output
// length is fixed to the digest length. The context is normally a transcript
// hash.
func (s *Secrets) DeriveSecret(secret []byte, label string, context []byte) ([]byte, error) {
	return s.expand(secret, label, context, s.hashLen)
}

// DeriveSecretRaw is DeriveSecret with a caller-supplied raw byte label, for
// harnesses that replay labels which are not text.
func (s *Secrets) DeriveSecretRaw(secret, label, context []byte) ([]byte, error) {
	return expandLabel(s.digest, secret, label, context, s.hashLen, s.claim)
}

// extract runs HKDF-Extract with the container's digest and checks the
// pseudorandom key length against the digest length.
func (s *Secrets) extract(ikm, salt []byte) ([]byte, error) {
	prk := hkdf.Extract(s.digest.New, ikm, salt)
	if len(prk) != s.hashLen {
		return nil, ErrLengthMismatch
	}
	return prk, nil
}
