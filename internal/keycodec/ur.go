package keycodec

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"strings"

	"garner/internal/domain"
)

const urScheme = "ur:"

// splitUR breaks "ur:<type>/<payload>" into its type and payload
// components. The scheme and type are case-insensitive.
func splitUR(s string) (urType, payload string, err error) {
	lower := strings.ToLower(strings.TrimSpace(s))
	if !strings.HasPrefix(lower, urScheme) {
		return "", "", fmt.Errorf("%w: missing %q scheme", domain.ErrMalformedKey, urScheme)
	}
	rest := lower[len(urScheme):]
	slash := strings.IndexByte(rest, '/')
	if slash <= 0 || slash == len(rest)-1 {
		return "", "", fmt.Errorf("%w: missing type or payload", domain.ErrMalformedKey)
	}
	return rest[:slash], rest[slash+1:], nil
}

// encodeBody frames cborBytes with a trailing CRC-32 and encodes the
// whole as bytewords.
func encodeBody(cborBytes []byte) string {
	framed := make([]byte, 0, len(cborBytes)+crc32.Size)
	framed = append(framed, cborBytes...)
	framed = binary.BigEndian.AppendUint32(framed, crc32.ChecksumIEEE(cborBytes))
	return encodeMinimal(framed)
}

// decodeBody reverses encodeBody, verifying the checksum.
func decodeBody(payload string) ([]byte, error) {
	framed, err := decodeMinimal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedKey, err)
	}
	if len(framed) < crc32.Size+1 {
		return nil, fmt.Errorf("%w: payload too short", domain.ErrMalformedKey)
	}
	body := framed[:len(framed)-crc32.Size]
	want := binary.BigEndian.Uint32(framed[len(framed)-crc32.Size:])
	if crc32.ChecksumIEEE(body) != want {
		return nil, fmt.Errorf("%w: checksum mismatch", domain.ErrMalformedKey)
	}
	return body, nil
}

func composeUR(urType string, cborBytes []byte) string {
	return urScheme + urType + "/" + encodeBody(cborBytes)
}
