package onion

import (
	"crypto/ed25519"
	"encoding/base32"
	"strings"

	"golang.org/x/crypto/sha3"

	"garner/internal/domain"
)

// Suffix terminates every onion service hostname.
const Suffix = ".onion"

const (
	version        = 0x03
	checksumPrefix = ".onion checksum"
)

var b32 = base32.StdEncoding.WithPadding(base32.NoPadding)

// PublicKey reduces an Ed25519 seed to its public half.
func PublicKey(priv domain.SigningPrivateKey) domain.SigningPublicKey {
	var pub domain.SigningPublicKey
	copy(pub[:], ed25519.NewKeyFromSeed(priv[:]).Public().(ed25519.PublicKey))
	return pub
}

// FromPublic derives the onion hostname for a public signing key:
// base32(pubkey || checksum[:2] || version) + ".onion", where checksum
// is SHA3-256(".onion checksum" || pubkey || version).
func FromPublic(pub domain.SigningPublicKey) domain.ServiceAddress {
	h := sha3.New256()
	h.Write([]byte(checksumPrefix))
	h.Write(pub[:])
	h.Write([]byte{version})
	sum := h.Sum(nil)

	raw := make([]byte, 0, ed25519.PublicKeySize+3)
	raw = append(raw, pub[:]...)
	raw = append(raw, sum[0], sum[1], version)
	return domain.ServiceAddress(strings.ToLower(b32.EncodeToString(raw)) + Suffix)
}

// FromPrivate derives the onion hostname for the public half of priv.
func FromPrivate(priv domain.SigningPrivateKey) domain.ServiceAddress {
	return FromPublic(PublicKey(priv))
}

// FromCanonical derives the onion hostname from either half of a
// decoded key.
func FromCanonical(key domain.CanonicalKey) domain.ServiceAddress {
	switch k := key.(type) {
	case domain.SigningPrivateKey:
		return FromPrivate(k)
	case domain.SigningPublicKey:
		return FromPublic(k)
	}
	return ""
}
