// Package schedule implements the TLS 1.3 key schedule from RFC 8446
// section 7.1: the ordered chain of HKDF-Extract/HKDF-Expand-Label operations
// that turns a pre-shared key and/or (EC)DHE shared secret into every traffic,
// exporter, binder, and resumption secret a connection needs.
//
// A Secrets container is created once per connection, driven through its three
// derivation phases in order (early, handshake, application), and destroyed
// exactly once. Intermediate extraction secrets are wiped the moment RFC 8446
// says they are no longer needed; Destroy wipes everything that remains. The
// container is exclusively owned by one handshake and is not safe for
// concurrent use.
package schedule
