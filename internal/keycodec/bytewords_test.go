package keycodec

import (
	"bytes"
	"testing"
)

func TestBytewords_RoundTrip(t *testing.T) {
	data := []byte{0x00, 0x01, 0x7f, 0x80, 0xfe, 0xff, 0x42}
	got, err := decodeMinimal(encodeMinimal(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Fatalf("round trip mismatch: %x vs %x", got, data)
	}
}

func TestBytewords_AllValues(t *testing.T) {
	data := make([]byte, 256)
	for i := range data {
		data[i] = byte(i)
	}
	got, err := decodeMinimal(encodeMinimal(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Fatal("round trip mismatch over full byte range")
	}
}

func TestBytewords_OddLength(t *testing.T) {
	if _, err := decodeMinimal("aea"); err == nil {
		t.Fatal("odd-length input must not decode")
	}
}

func TestBytewords_UnknownPair(t *testing.T) {
	if _, err := decodeMinimal("qq"); err == nil {
		t.Fatal("letter pair outside the table must not decode")
	}
}

func TestBytewords_TableShape(t *testing.T) {
	seen := make(map[[2]byte]bool, 256)
	for _, w := range words {
		if len(w) != 4 {
			t.Fatalf("word %q is not four letters", w)
		}
		pair := [2]byte{w[0], w[3]}
		if seen[pair] {
			t.Fatalf("duplicate minimal pair %q", pair)
		}
		seen[pair] = true
	}
}
