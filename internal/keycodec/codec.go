package keycodec

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"garner/internal/domain"
)

// Recognized container types.
const (
	typeSigningPrivate = "signing-private-key"
	typeSigningPublic  = "signing-public-key"
	typeBundlePrivate  = "crypto-prvkeys"
	typeBundlePublic   = "crypto-pubkeys"
)

// schemeEd25519 tags the signature scheme inside a signing-key payload.
// It is the only scheme this program understands.
const schemeEd25519 = 1

// signingKeyPayload is the CBOR body of a single-signing-key container
// and of the signing sub-key inside a bundle.
type signingKeyPayload struct {
	_      struct{} `cbor:",toarray"`
	Scheme uint64
	Key    []byte
}

// bundlePayload is the CBOR body of a key bundle. The encapsulation
// sub-key is kept as raw CBOR: preserved if re-encoded, never decoded.
type bundlePayload struct {
	_             struct{} `cbor:",toarray"`
	Signing       signingKeyPayload
	Encapsulation cbor.RawMessage
}

// encMode uses core deterministic encoding so the same key always
// produces the same text.
var encMode cbor.EncMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("keycodec: CBOR encoder initialization failed: " + err.Error())
	}
}

// Decode parses a UR key container into a canonical signing key.
// Failures are domain.ErrMalformedKey or domain.ErrUnsupportedKeyFormat.
func Decode(text string) (domain.CanonicalKey, error) {
	urType, payload, err := splitUR(text)
	if err != nil {
		return nil, err
	}

	var private bool
	var bundle bool
	switch urType {
	case typeSigningPrivate:
		private = true
	case typeSigningPublic:
	case typeBundlePrivate:
		private, bundle = true, true
	case typeBundlePublic:
		bundle = true
	default:
		return nil, fmt.Errorf("%w: ur:%s", domain.ErrUnsupportedKeyFormat, urType)
	}

	body, err := decodeBody(payload)
	if err != nil {
		return nil, err
	}

	var signing signingKeyPayload
	if bundle {
		var b bundlePayload
		if err := cbor.Unmarshal(body, &b); err != nil {
			return nil, fmt.Errorf("%w: bundle structure: %v", domain.ErrMalformedKey, err)
		}
		signing = b.Signing
	} else {
		if err := cbor.Unmarshal(body, &signing); err != nil {
			return nil, fmt.Errorf("%w: key structure: %v", domain.ErrMalformedKey, err)
		}
	}

	if signing.Scheme != schemeEd25519 {
		return nil, fmt.Errorf("%w: unknown signature scheme tag %d", domain.ErrMalformedKey, signing.Scheme)
	}
	if len(signing.Key) != 32 {
		return nil, fmt.Errorf("%w: signing key is %d bytes, want 32", domain.ErrMalformedKey, len(signing.Key))
	}

	if private {
		var k domain.SigningPrivateKey
		copy(k[:], signing.Key)
		return k, nil
	}
	var k domain.SigningPublicKey
	copy(k[:], signing.Key)
	return k, nil
}

// EncodePrivate renders a private signing key as ur:signing-private-key.
func EncodePrivate(key domain.SigningPrivateKey) string {
	return composeUR(typeSigningPrivate, mustMarshal(signingKeyPayload{Scheme: schemeEd25519, Key: key.Slice()}))
}

// EncodePublic renders a public signing key as ur:signing-public-key.
func EncodePublic(key domain.SigningPublicKey) string {
	return composeUR(typeSigningPublic, mustMarshal(signingKeyPayload{Scheme: schemeEd25519, Key: key.Slice()}))
}

func mustMarshal(v any) []byte {
	b, err := encMode.Marshal(v)
	if err != nil {
		panic("keycodec: marshal fixed-shape payload: " + err.Error())
	}
	return b
}
