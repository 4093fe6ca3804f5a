package schedule

import (
	"bytes"
	"crypto"
	"encoding/hex"
	"testing"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex constant: %v", err)
	}
	return b
}

// RFC 8448 section 3, simple 1-RTT handshake with TLS_AES_128_GCM_SHA256 and
// an X25519 key share. The container runs in insecure mode so the
// intermediate extraction secrets stay readable.
func TestRFC8448SimpleHandshake(t *testing.T) {
	sharedSecret := mustHex(t, "8bd4054fb55b9d63fdfbacf9f04b9f0d35e6d63f537563efd46272900f89492d")
	helloHash := mustHex(t, "860c06edc07858ee8e78f0e7428c58edd6b43f2ca3e6e95f02ed063cf0e1cad8")
	serverFinishedHash := mustHex(t, "9608102a0f1ccc6db6250b7b7e417b1a000eaada3daae4777a7686c9ff83df13")

	s, err := NewSecrets(crypto.SHA256, Config{Insecure: true})
	if err != nil {
		t.Fatalf("NewSecrets: %v", err)
	}
	defer s.Destroy()

	// No PSK: the all-zero digest-length string.
	if err := s.DeriveEarlySecrets(make([]byte, 32), helloHash); err != nil {
		t.Fatalf("DeriveEarlySecrets: %v", err)
	}
	if err := s.DeriveHandshakeSecrets(sharedSecret, helloHash); err != nil {
		t.Fatalf("DeriveHandshakeSecrets: %v", err)
	}
	if err := s.DeriveApplicationSecrets(serverFinishedHash); err != nil {
		t.Fatalf("DeriveApplicationSecrets: %v", err)
	}

	vectors := []struct {
		name string
		got  []byte
		want string
	}{
		{"early secret", s.extractedEarly.Bytes(),
			"33ad0a1c607ec03b09e6cd9893680ce210adf300aa1f2660e1b22e10f170f92a"},
		{"derived (early)", s.derivedEarly.Bytes(),
			"6f2615a108c702c5678f54fc9dbab69716c076189c48250cebeac3576c3611ba"},
		{"handshake secret", s.extractedHandshake.Bytes(),
			"1dc826e93606aa6fdc0aadc12f741b01046aa6b99f691ed221a9f0ca043fbeac"},
		{"client handshake traffic", s.ClientHandshakeTraffic(),
			"b3eddb126e067f35a780b3abf45e2d8f3b1a950738f52e9600746a0e27a55a21"},
		{"server handshake traffic", s.ServerHandshakeTraffic(),
			"b67b7d690cc16c4e75e54213cb2d37b4e9c912bcded9105d42befd59d391ad38"},
		{"derived (handshake)", s.derivedHandshake.Bytes(),
			"43de77e0c77713859a944db9db2590b53190a65b3ee2e4f12dd7a0bb7ce254b4"},
		{"master secret", s.extractedMaster.Bytes(),
			"18df06843d13a08bf2a449844c5f8a478001bc4d4c627984d5a41da8d0402919"},
		{"client application traffic", s.ClientApplicationTraffic(),
			"9e40646ce79a7f9dc05af8889bce6552875afa0b06df0087f792ebb7c17504a5"},
		{"server application traffic", s.ServerApplicationTraffic(),
			"a11af9f05531f856ad47116b45a950328204b4f44bfb6b3a4b4f1f3fcb631643"},
		{"exporter master", s.ExporterMaster(),
			"fe22f881176eda18eb8f44529e6792c50c9a3f89452f68d8ae311b4309d3cf50"},
	}
	for _, v := range vectors {
		if !bytes.Equal(v.got, mustHex(t, v.want)) {
			t.Errorf("%s:\n got %x\nwant %s", v.name, v.got, v.want)
		}
	}
}
