// Package ks13 provides the shared cipher-suite table for the KS13 library,
// a standalone implementation of the TLS 1.3 key schedule (RFC 8446).
//
// The library is split into focused subpackages:
//   - schedule: the key schedule itself — secret lifecycle, HKDF-Expand-Label,
//     the three derivation phases, and post-handshake traffic-secret updates
//   - keyshare: ephemeral (EC)DHE key shares feeding the handshake phase
//   - record: traffic key/IV derivation and AEAD construction from a traffic
//     secret (record protection itself belongs to the caller)
package ks13
