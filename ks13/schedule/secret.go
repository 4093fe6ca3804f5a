package schedule

import (
	"errors"

	"github.com/awnumar/memguard"
)

var (
	ErrSecretInitialized = errors.New("schedule: secret already initialized")
)

// Secret is an owned, fixed-length byte buffer holding one key-schedule value.
// It is allocated once, mutated in place, and wiped before release.
type Secret struct {
	data []byte
}

// init allocates a zero-filled buffer of n bytes. A Secret may be initialized
// only once; a second init reports ErrSecretInitialized and leaves the
// existing buffer untouched.
func (s *Secret) init(n int) error {
	if s.data != nil {
		return ErrSecretInitialized
	}
	s.data = make([]byte, n)
	return nil
}

// cleanup wipes the buffer and releases it. A no-op on an uninitialized
// Secret, so it is safe on every exit path.
func (s *Secret) cleanup() {
	if s.data == nil {
		return
	}
	memguard.WipeBytes(s.data)
	s.data = nil
}

// wipe overwrites the buffer with zeros, keeping it allocated.
func (s *Secret) wipe() {
	memguard.WipeBytes(s.data)
}

// set copies b into the buffer.
func (s *Secret) set(b []byte) {
	copy(s.data, b)
}

// Bytes returns the backing buffer. The slice aliases the Secret's storage
// and is valid only until the owning container is destroyed.
func (s *Secret) Bytes() []byte {
	return s.data
}

// Len returns the buffer length, zero when uninitialized.
func (s *Secret) Len() int {
	return len(s.data)
}
