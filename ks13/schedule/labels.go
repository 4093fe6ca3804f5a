package schedule

// RFC 8446 section 7.1 schedule labels.
const (
	labelExtBinder                = "ext binder"
	labelResBinder                = "res binder"
	labelClientEarlyTraffic       = "c e traffic"
	labelEarlyExporterMaster      = "e exp master"
	labelDerived                  = "derived"
	labelClientHandshakeTraffic   = "c hs traffic"
	labelServerHandshakeTraffic   = "s hs traffic"
	labelClientApplicationTraffic = "c ap traffic"
	labelServerApplicationTraffic = "s ap traffic"
	labelExporterMaster           = "exp master"
	labelResumptionMaster         = "res master"
	labelTrafficUpdate            = "traffic upd"
	labelFinished                 = "finished"
	labelExporter                 = "exporter"
	labelResumption               = "resumption"
)

// claimLabels maps each fixed schedule label to the transcript it binds, for
// claim-hook classification. The binder/early group and the handshake-traffic
// group share a tag; harnesses that need the RFC-exact per-label binding must
// switch on the label itself.
var claimLabels = map[string]ClaimTranscript{
	labelExtBinder:                ClaimTranscriptClientHelloToServerHello,
	labelResBinder:                ClaimTranscriptClientHelloToServerHello,
	labelClientEarlyTraffic:       ClaimTranscriptClientHelloToServerHello,
	labelEarlyExporterMaster:      ClaimTranscriptClientHelloToServerHello,
	labelClientHandshakeTraffic:   ClaimTranscriptClientHelloToServerHello,
	labelServerHandshakeTraffic:   ClaimTranscriptClientHelloToServerHello,
	labelClientApplicationTraffic: ClaimTranscriptClientHelloToServerFinished,
	labelServerApplicationTraffic: ClaimTranscriptClientHelloToServerFinished,
	labelExporterMaster:           ClaimTranscriptClientHelloToServerFinished,
	labelResumptionMaster:         ClaimTranscriptClientHelloToClientFinished,
}

func classifyLabel(label []byte) ClaimTranscript {
	typ, ok := claimLabels[string(label)]
	if !ok {
		return ClaimTranscriptUnknown
	}
	return typ
}
