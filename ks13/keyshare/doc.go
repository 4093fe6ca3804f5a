// Package keyshare generates the ephemeral (EC)DHE key shares whose shared
// secret feeds the handshake phase of the TLS 1.3 key schedule.
package keyshare
