package keystore

import (
	"crypto"
	"crypto/ed25519"
	"crypto/rand"
	"crypto/subtle"
	"errors"

	"garner/internal/domain"
	"garner/internal/onion"
)

// Store holds at most one private signing key, in memory only.
type Store struct {
	priv   ed25519.PrivateKey
	pub    domain.SigningPublicKey
	closed bool
}

// New builds a store around an operator-supplied key (deterministic
// address mode).
func New(seed domain.SigningPrivateKey) *Store {
	priv := ed25519.NewKeyFromSeed(seed.Slice())
	var pub domain.SigningPublicKey
	copy(pub[:], priv.Public().(ed25519.PublicKey))
	return &Store{priv: priv, pub: pub}
}

// Generate builds a store with a fresh random key (ephemeral address
// mode): a new address each run, never repeated.
func Generate() (*Store, error) {
	var seed domain.SigningPrivateKey
	if _, err := rand.Read(seed[:]); err != nil {
		return nil, err
	}
	s := New(seed)
	wipe(seed[:])
	return s, nil
}

// Signer exposes the identity as a signing capability for the network
// layer. The raw key bytes never leave the process.
func (s *Store) Signer() (crypto.Signer, error) {
	if s.closed {
		return nil, errors.New("keystore: closed")
	}
	return s.priv, nil
}

// PublicKey returns the public half of the stored identity.
func (s *Store) PublicKey() domain.SigningPublicKey { return s.pub }

// Address returns the service address of the stored identity.
func (s *Store) Address() domain.ServiceAddress { return onion.FromPublic(s.pub) }

// Close wipes the private key. The store is unusable afterwards.
func (s *Store) Close() {
	if s.closed {
		return
	}
	s.closed = true
	wipe(s.priv)
	s.priv = nil
}

// wipe overwrites b with zeros in a constant-time friendly way.
func wipe(b []byte) {
	if len(b) == 0 {
		return
	}
	subtle.ConstantTimeCopy(1, b, make([]byte, len(b)))
}
