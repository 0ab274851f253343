// Package keycodec translates between the textual UR key containers and
// canonical signing keys.
//
// Two container shapes are recognized:
//
//   - ur:signing-private-key / ur:signing-public-key — a single signing
//     key. Whether the 32 bytes are the private or the public half is
//     declared by the container type, never guessed from length.
//   - ur:crypto-prvkeys / ur:crypto-pubkeys — a key bundle carrying a
//     signing sub-key plus an encapsulation (encryption) sub-key. Only
//     the signing sub-key is extracted; the encapsulation sub-key is
//     discarded without validation.
//
// The payload after the type component is CBOR followed by a CRC-32 of
// the CBOR bytes, encoded in bytewords minimal style. Decoding is pure:
// the same input always yields the same key or the same error.
package keycodec
