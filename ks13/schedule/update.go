package schedule

import (
	"crypto"
	"crypto/hmac"

	"github.com/awnumar/memguard"
)

// UpdateClientTrafficSecret ratchets the client application traffic secret
// with the "traffic upd" expansion (RFC 8446 section 7.2). The previous
// secret is overwritten in place and cannot be recovered. It may be called
// any number of times once the schedule has completed.
func (s *Secrets) UpdateClientTrafficSecret() error {
	return s.updateTrafficSecret(&s.clientApplicationTraffic)
}

// UpdateServerTrafficSecret is UpdateClientTrafficSecret for the server
// direction. Both directions ratchet independently.
func (s *Secrets) UpdateServerTrafficSecret() error {
	return s.updateTrafficSecret(&s.serverApplicationTraffic)
}

func (s *Secrets) updateTrafficSecret(secret *Secret) error {
	if !s.initDone || !s.earlyDone || !s.handshakeDone || !s.scheduleDone {
		return ErrPhaseOrder
	}

	next, err := s.expand(secret.data, labelTrafficUpdate, []byte{}, s.hashLen)
	if err != nil {
		return err
	}
	secret.set(next)
	memguard.WipeBytes(next)
	return nil
}

// Exporter implements the RFC 8446 section 7.5 exporter interface over the
// exporter master secret. Available once the schedule has completed.
func (s *Secrets) Exporter(label string, context []byte, length int) ([]byte, error) {
	if !s.scheduleDone {
		return nil, ErrPhaseOrder
	}

	secret, err := s.DeriveSecret(s.exporterMaster.data, label, s.emptyHash.data)
	if err != nil {
		return nil, err
	}
	defer memguard.WipeBytes(secret)

	h := s.digest.New()
	h.Write(context)
	return s.expand(secret, labelExporter, h.Sum(nil), length)
}

// ResumptionPSK computes the pre-shared key associated with a
// NewSessionTicket carrying the given ticket nonce (RFC 8446 section 4.6.1).
// Available once the schedule has completed.
func (s *Secrets) ResumptionPSK(nonce []byte) ([]byte, error) {
	if !s.scheduleDone {
		return nil, ErrPhaseOrder
	}
	return s.expand(s.resumptionMaster.data, labelResumption, nonce, s.hashLen)
}

// FinishedHash computes the Finished verify_data for baseKey over
// transcriptHash (RFC 8446 section 4.4.4). baseKey is a handshake traffic
// secret, or a binder key when computing a PSK binder.
func FinishedHash(digest crypto.Hash, baseKey, transcriptHash []byte) ([]byte, error) {
	key, err := ExpandLabel(digest, baseKey, labelFinished, nil, digest.Size())
	if err != nil {
		return nil, err
	}
	defer memguard.WipeBytes(key)

	mac := hmac.New(digest.New, key)
	mac.Write(transcriptHash)
	return mac.Sum(nil), nil
}
