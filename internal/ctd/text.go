package ctd

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// VersionWide marks containers whose text is UTF-16LE with wrapping
// offsets. Every other version stores single-byte Windows-1252 text.
const VersionWide = 503

// VersionV1 containers carry the 24-byte LayoutV1 records.
const VersionV1 = 1

func textEncoding(version uint32) encoding.Encoding {
	if version == VersionWide {
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	}
	return charmap.Windows1252
}

func unitSize(version uint32) int {
	if version == VersionWide {
		return 2
	}
	return 1
}

// readText reads one null-terminated string at the current position of r.
func readText(r io.Reader, version uint32) (string, error) {
	br := bufio.NewReader(r)
	unit := make([]byte, unitSize(version))

	var raw []byte
	for {
		if _, err := io.ReadFull(br, unit); err != nil {
			return "", err
		}
		if isNull(unit) {
			break
		}
		raw = append(raw, unit...)
	}

	s, err := textEncoding(version).NewDecoder().Bytes(raw)
	if err != nil {
		return "", err
	}
	return string(s), nil
}

// encodeText returns s in the container's encoding, null terminated.
func encodeText(s string, version uint32) ([]byte, error) {
	raw, err := textEncoding(version).NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("encode %q: %w", s, err)
	}
	return append(raw, make([]byte, unitSize(version))...), nil
}

func isNull(unit []byte) bool {
	if len(unit) == 2 {
		return binary.LittleEndian.Uint16(unit) == 0
	}
	return unit[0] == 0
}
