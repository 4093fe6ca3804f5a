package schedule

import (
	"github.com/awnumar/memguard"
)

// DeriveEarlySecrets runs the early phase of the schedule. psk is the
// negotiated pre-shared key, or the all-zero digest-length string when none
// was negotiated; transcript is the running transcript hash, normally through
// ClientHello. It derives the binder key, the client early traffic secret,
// the early exporter master secret, and the "derived" salt consumed by the
// handshake phase.
//
// Every derivation is staged locally and committed only once the whole phase
// succeeded: on failure the container is byte-identical to its pre-call
// state. The early extraction secret is wiped before returning unless the
// container is in insecure mode.
func (s *Secrets) DeriveEarlySecrets(psk, transcript []byte) error {
	if !s.initDone {
		return ErrPhaseOrder
	}
	if s.earlyDone {
		return ErrPhaseComplete
	}

	extracted, err := s.extract(psk, s.zeros.data)
	if err != nil {
		return err
	}
	defer memguard.WipeBytes(extracted)

	binderLabel := labelExtBinder
	if s.resumption {
		binderLabel = labelResBinder
	}
	binder, err := s.DeriveSecret(extracted, binderLabel, s.emptyHash.data)
	if err != nil {
		return err
	}
	defer memguard.WipeBytes(binder)

	earlyTraffic, err := s.DeriveSecret(extracted, labelClientEarlyTraffic, transcript)
	if err != nil {
		return err
	}
	defer memguard.WipeBytes(earlyTraffic)

	earlyExporter, err := s.DeriveSecret(extracted, labelEarlyExporterMaster, transcript)
	if err != nil {
		return err
	}
	defer memguard.WipeBytes(earlyExporter)

	derived, err := s.DeriveSecret(extracted, labelDerived, s.emptyHash.data)
	if err != nil {
		return err
	}
	defer memguard.WipeBytes(derived)

	if s.insecure {
		s.extractedEarly.set(extracted)
	}
	s.binderKey.set(binder)
	s.clientEarlyTraffic.set(earlyTraffic)
	s.earlyExporterMaster.set(earlyExporter)
	s.derivedEarly.set(derived)

	s.earlyDone = true
	return nil
}

// DeriveHandshakeSecrets runs the handshake phase. sharedSecret is the raw
// (EC)DHE shared secret; transcript is the transcript hash through
// ServerHello. It derives the client and server handshake traffic secrets
// and the "derived" salt consumed by the application phase, then wipes the
// early-phase salt and the handshake extraction secret (unless insecure).
func (s *Secrets) DeriveHandshakeSecrets(sharedSecret, transcript []byte) error {
	if !s.initDone || !s.earlyDone {
		return ErrPhaseOrder
	}
	if s.handshakeDone {
		return ErrPhaseComplete
	}

	extracted, err := s.extract(sharedSecret, s.derivedEarly.data)
	if err != nil {
		return err
	}
	defer memguard.WipeBytes(extracted)

	clientTraffic, err := s.DeriveSecret(extracted, labelClientHandshakeTraffic, transcript)
	if err != nil {
		return err
	}
	defer memguard.WipeBytes(clientTraffic)

	serverTraffic, err := s.DeriveSecret(extracted, labelServerHandshakeTraffic, transcript)
	if err != nil {
		return err
	}
	defer memguard.WipeBytes(serverTraffic)

	derived, err := s.DeriveSecret(extracted, labelDerived, s.emptyHash.data)
	if err != nil {
		return err
	}
	defer memguard.WipeBytes(derived)

	if s.insecure {
		s.extractedHandshake.set(extracted)
	} else {
		// The early-phase salt has served its purpose (RFC 8446
		// section 7.1 security guidance).
		s.derivedEarly.wipe()
	}
	s.clientHandshakeTraffic.set(clientTraffic)
	s.serverHandshakeTraffic.set(serverTraffic)
	s.derivedHandshake.set(derived)

	s.handshakeDone = true
	return nil
}

// DeriveApplicationSecrets runs the final phase of the schedule. transcript
// is the transcript hash through the server Finished message; the caller is
// responsible for passing the transcript RFC 8446 prescribes for the
// resumption master secret at the time of the call. It derives both
// application traffic secrets, the exporter master secret and the resumption
// master secret, then wipes the handshake-phase salt and the master
// extraction secret (unless insecure).
func (s *Secrets) DeriveApplicationSecrets(transcript []byte) error {
	if !s.initDone || !s.earlyDone || !s.handshakeDone {
		return ErrPhaseOrder
	}
	if s.scheduleDone {
		return ErrPhaseComplete
	}

	extracted, err := s.extract(s.zeros.data, s.derivedHandshake.data)
	if err != nil {
		return err
	}
	defer memguard.WipeBytes(extracted)

	clientTraffic, err := s.DeriveSecret(extracted, labelClientApplicationTraffic, transcript)
	if err != nil {
		return err
	}
	defer memguard.WipeBytes(clientTraffic)

	serverTraffic, err := s.DeriveSecret(extracted, labelServerApplicationTraffic, transcript)
	if err != nil {
		return err
	}
	defer memguard.WipeBytes(serverTraffic)

	exporter, err := s.DeriveSecret(extracted, labelExporterMaster, transcript)
	if err != nil {
		return err
	}
	defer memguard.WipeBytes(exporter)

	resumption, err := s.DeriveSecret(extracted, labelResumptionMaster, transcript)
	if err != nil {
		return err
	}
	defer memguard.WipeBytes(resumption)

	if s.insecure {
		s.extractedMaster.set(extracted)
	} else {
		s.derivedHandshake.wipe()
	}
	s.clientApplicationTraffic.set(clientTraffic)
	s.serverApplicationTraffic.set(serverTraffic)
	s.exporterMaster.set(exporter)
	s.resumptionMaster.set(resumption)

	s.scheduleDone = true
	return nil
}
