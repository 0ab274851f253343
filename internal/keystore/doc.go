// Package keystore holds the service's private signing key in process
// memory for the lifetime of one invocation.
//
// The Store type deliberately has no encode or serialize operation, so
// leaking the key to disk is a compile-time impossibility, not a
// runtime discipline. The network layer receives the key only as a
// crypto.Signer.
package keystore
