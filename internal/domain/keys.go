package domain

// SigningPrivateKey is a 32-byte Ed25519 seed that proves control of a
// service address.
type SigningPrivateKey [32]byte

// Slice returns the key as a []byte.
func (k SigningPrivateKey) Slice() []byte { return k[:] }

// SigningPublicKey is a 32-byte Ed25519 public key.
type SigningPublicKey [32]byte

// Slice returns the key as a []byte.
func (p SigningPublicKey) Slice() []byte { return p[:] }

// CanonicalKey is the normalized output of the key codec: exactly one
// signing key half, private or public, never a bundle. Consumers
// type-switch on the two concrete types.
type CanonicalKey interface {
	canonicalKey()
}

func (SigningPrivateKey) canonicalKey() {}
func (SigningPublicKey) canonicalKey()  {}
