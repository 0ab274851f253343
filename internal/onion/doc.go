// Package onion derives version-3 onion service addresses from Ed25519
// signing keys. Derivation is pure and bit-exact per the rend-spec-v3
// address construction, so independently built servers and clients
// agree on the address for a given key.
package onion
