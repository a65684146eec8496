package binfmt

import (
	"encoding/hex"
	"strings"
)

const (
	HeaderEntrySize     = 0x20
	AssetHeaderSize     = 0x10
	RemasteredEntrySize = 0x30
)

// Stored-length sentinels of an asset envelope.
const (
	StoredEncrypted = -1 // encrypted, not compressed
	StoredRaw       = -2 // neither encrypted nor compressed
)

// HeaderEntry is one 32-byte record of a .hed file.
type HeaderEntry struct {
	Hash         [16]byte
	Offset       uint64
	StoredLength uint32
	ActualLength uint32
}

func (e HeaderEntry) HexHash() string {
	return hex.EncodeToString(e.Hash[:])
}

// AssetHeader is the 16-byte envelope in front of every asset in a .pkg.
type AssetHeader struct {
	DecompressedLength   uint32
	RemasteredAssetCount uint32
	StoredLength         int32
	CreationDate         uint32
}

func (h AssetHeader) Encrypted() bool  { return h.StoredLength > StoredRaw }
func (h AssetHeader) Compressed() bool { return h.StoredLength > StoredEncrypted }

// DataLength is the number of payload bytes following the envelope.
func (h AssetHeader) DataLength() int64 {
	return payloadLength(h.StoredLength, h.DecompressedLength)
}

// RemasteredEntry describes one remastered payload bundled behind an asset.
type RemasteredEntry struct {
	Name                string `binary:"[32]byte"`
	Offset              uint32
	OriginalAssetOffset uint32
	DecompressedLength  uint32
	StoredLength        int32
}

func (e RemasteredEntry) CleanName() string {
	return strings.TrimRight(e.Name, "\x00")
}

func (e RemasteredEntry) Encrypted() bool  { return e.StoredLength > StoredRaw }
func (e RemasteredEntry) Compressed() bool { return e.StoredLength > StoredEncrypted }

func (e RemasteredEntry) DataLength() int64 {
	return payloadLength(e.StoredLength, e.DecompressedLength)
}

func payloadLength(stored int32, decompressed uint32) int64 {
	if stored >= 0 {
		return int64(stored)
	}
	return int64(decompressed)
}
