package keystore_test

import (
	"crypto/ed25519"
	"crypto/rand"
	"testing"

	"garner/internal/domain"
	"garner/internal/keystore"
	"garner/internal/onion"
)

func TestNew_DeterministicIdentity(t *testing.T) {
	var seed domain.SigningPrivateKey
	if _, err := rand.Read(seed[:]); err != nil {
		t.Fatal(err)
	}

	a := keystore.New(seed)
	b := keystore.New(seed)
	if a.PublicKey() != b.PublicKey() {
		t.Fatal("same seed must yield the same identity")
	}
	if a.Address() != onion.FromPrivate(seed) {
		t.Fatalf("address mismatch: %s vs %s", a.Address(), onion.FromPrivate(seed))
	}
}

func TestGenerate_FreshIdentities(t *testing.T) {
	a, err := keystore.Generate()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	b, err := keystore.Generate()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if a.Address() == b.Address() {
		t.Fatalf("ephemeral runs must not repeat addresses: %s", a.Address())
	}
}

func TestSigner_ProducesVerifiableSignatures(t *testing.T) {
	s, err := keystore.Generate()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	signer, err := s.Signer()
	if err != nil {
		t.Fatalf("signer: %v", err)
	}
	msg := []byte("descriptor to sign")
	sig, err := signer.Sign(rand.Reader, msg, &ed25519.Options{})
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	pub := s.PublicKey()
	if !ed25519.Verify(ed25519.PublicKey(pub.Slice()), msg, sig) {
		t.Fatal("signature does not verify against store public key")
	}
}

func TestClose_RevokesSigner(t *testing.T) {
	s, err := keystore.Generate()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	s.Close()
	if _, err := s.Signer(); err == nil {
		t.Fatal("signer must be unavailable after close")
	}
	s.Close() // second close is a no-op
}
