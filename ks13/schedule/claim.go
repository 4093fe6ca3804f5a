package schedule

// ClaimTranscript classifies the handshake transcript a labelled expansion is
// understood to bind its output to. Verification and fuzzing harnesses use
// the classification to check derived secrets against an independently
// observed transcript.
type ClaimTranscript int

const (
	// ClaimTranscriptUnknown marks expansions whose label is not one of the
	// fixed RFC 8446 schedule labels (for example "derived" or
	// "traffic upd").
	ClaimTranscriptUnknown ClaimTranscript = iota

	// ClaimTranscriptClientHelloToServerHello covers the binder, early
	// traffic and handshake traffic secrets.
	ClaimTranscriptClientHelloToServerHello

	// ClaimTranscriptClientHelloToServerFinished covers the application
	// traffic and exporter master secrets.
	ClaimTranscriptClientHelloToServerFinished

	// ClaimTranscriptClientHelloToClientFinished covers the resumption
	// master secret.
	ClaimTranscriptClientHelloToClientFinished
)

func (c ClaimTranscript) String() string {
	switch c {
	case ClaimTranscriptClientHelloToServerHello:
		return "CH..SH"
	case ClaimTranscriptClientHelloToServerFinished:
		return "CH..ServerFinished"
	case ClaimTranscriptClientHelloToClientFinished:
		return "CH..ClientFinished"
	}
	return "unknown"
}

// ClaimFunc observes one labelled expansion. It is invoked synchronously,
// immediately before the expansion, with the transcript classification and a
// copy of the transcript bytes passed as context. It is observation only:
// it has no return value and cannot alter the derivation.
type ClaimFunc func(typ ClaimTranscript, transcript []byte)
