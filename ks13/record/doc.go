// Package record derives record-protection key material (write key and IV)
// from TLS 1.3 traffic secrets and constructs the matching AEAD. It stops at
// material preparation: sealing and opening records belongs to the record
// layer consuming it.
package record
