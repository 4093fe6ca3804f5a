package schedule

import (
	"crypto"
	"errors"
	"fmt"
)

var (
	// ErrPhaseOrder reports a derivation invoked before its predecessor
	// phase completed.
	ErrPhaseOrder = errors.New("schedule: phase out of order")

	// ErrPhaseComplete reports a derivation phase invoked a second time.
	ErrPhaseComplete = errors.New("schedule: phase already complete")
)

// Config carries the optional knobs for a Secrets container.
type Config struct {
	// Resumption selects the "res binder" binder-key label instead of
	// "ext binder".
	Resumption bool

	// Insecure keeps the intermediate extraction secrets in the container
	// instead of wiping them at their RFC 8446 expiry points, so that
	// test-vector harnesses can read them back. Never enable it outside
	// tests.
	Insecure bool

	// Claim, when set, observes every labelled expansion that carries a
	// transcript context. Nil means no observation.
	Claim ClaimFunc
}

// Secrets holds every named secret of one connection's key schedule together
// with the phase flags that enforce derivation order. It is exclusively owned
// by the handshake that created it; derivation calls must be serialized by
// the caller.
type Secrets struct {
	digest     crypto.Hash
	hashLen    int
	resumption bool
	insecure   bool
	claim      ClaimFunc

	initDone      bool
	earlyDone     bool
	handshakeDone bool
	scheduleDone  bool

	zeros     Secret
	emptyHash Secret

	extractedEarly           Secret
	binderKey                Secret
	clientEarlyTraffic       Secret
	earlyExporterMaster      Secret
	derivedEarly             Secret
	extractedHandshake       Secret
	clientHandshakeTraffic   Secret
	serverHandshakeTraffic   Secret
	derivedHandshake         Secret
	extractedMaster          Secret
	clientApplicationTraffic Secret
	serverApplicationTraffic Secret
	exporterMaster           Secret
	resumptionMaster         Secret
}

// NewSecrets allocates a container with every named secret pre-sized to the
// digest length (RFC 8446 section 7.1 hash_length) and computes the hash of
// the empty string used by the "derived" steps. Any failure unwinds
// completely; no partial container is returned.
func NewSecrets(digest crypto.Hash, cfg Config) (*Secrets, error) {
	if !digest.Available() {
		return nil, fmt.Errorf("schedule: digest %v not available", digest)
	}

	s := &Secrets{
		digest:     digest,
		hashLen:    digest.Size(),
		resumption: cfg.Resumption,
		insecure:   cfg.Insecure,
		claim:      cfg.Claim,
	}
	for _, sec := range s.all() {
		if err := sec.init(s.hashLen); err != nil {
			s.Destroy()
			return nil, err
		}
	}

	sum := digest.New().Sum(nil)
	if len(sum) != s.hashLen {
		s.Destroy()
		return nil, ErrLengthMismatch
	}
	s.emptyHash.set(sum)

	s.initDone = true
	return s, nil
}

// all lists the named secrets in schedule order.
func (s *Secrets) all() []*Secret {
	return []*Secret{
		&s.zeros,
		&s.emptyHash,
		&s.extractedEarly,
		&s.binderKey,
		&s.clientEarlyTraffic,
		&s.earlyExporterMaster,
		&s.derivedEarly,
		&s.extractedHandshake,
		&s.clientHandshakeTraffic,
		&s.serverHandshakeTraffic,
		&s.derivedHandshake,
		&s.extractedMaster,
		&s.clientApplicationTraffic,
		&s.serverApplicationTraffic,
		&s.exporterMaster,
		&s.resumptionMaster,
	}
}

// Destroy wipes and releases every secret the container owns, regardless of
// how far the schedule progressed. Idempotent and safe on a nil container.
func (s *Secrets) Destroy() {
	if s == nil {
		return
	}
	for _, sec := range s.all() {
		sec.cleanup()
	}
}

// Digest returns the container's digest algorithm.
func (s *Secrets) Digest() crypto.Hash {
	return s.digest
}

// HashLen returns the digest output length all secrets are sized to.
func (s *Secrets) HashLen() int {
	return s.hashLen
}

// The traffic-secret accessors return slices aliasing the container's
// buffers: valid until Destroy, overwritten in place by later schedule steps
// (the application traffic secrets by UpdateClientTrafficSecret and
// UpdateServerTrafficSecret).

// BinderKey returns the PSK binder key. Valid after DeriveEarlySecrets.
func (s *Secrets) BinderKey() []byte {
	return s.binderKey.Bytes()
}

// ClientEarlyTraffic returns the client early traffic secret. Valid after
// DeriveEarlySecrets.
func (s *Secrets) ClientEarlyTraffic() []byte {
	return s.clientEarlyTraffic.Bytes()
}

// EarlyExporterMaster returns the early exporter master secret. Valid after
// DeriveEarlySecrets.
func (s *Secrets) EarlyExporterMaster() []byte {
	return s.earlyExporterMaster.Bytes()
}

// ClientHandshakeTraffic returns the client handshake traffic secret. Valid
// after DeriveHandshakeSecrets.
func (s *Secrets) ClientHandshakeTraffic() []byte {
	return s.clientHandshakeTraffic.Bytes()
}

// ServerHandshakeTraffic returns the server handshake traffic secret. Valid
// after DeriveHandshakeSecrets.
func (s *Secrets) ServerHandshakeTraffic() []byte {
	return s.serverHandshakeTraffic.Bytes()
}

// ClientApplicationTraffic returns the current client application traffic
// secret. Valid after DeriveApplicationSecrets.
func (s *Secrets) ClientApplicationTraffic() []byte {
	return s.clientApplicationTraffic.Bytes()
}

// ServerApplicationTraffic returns the current server application traffic
// secret. Valid after DeriveApplicationSecrets.
func (s *Secrets) ServerApplicationTraffic() []byte {
	return s.serverApplicationTraffic.Bytes()
}

// ExporterMaster returns the exporter master secret. Valid after
// DeriveApplicationSecrets.
func (s *Secrets) ExporterMaster() []byte {
	return s.exporterMaster.Bytes()
}

// ResumptionMaster returns the resumption master secret. Valid after
// DeriveApplicationSecrets.
func (s *Secrets) ResumptionMaster() []byte {
	return s.resumptionMaster.Bytes()
}
