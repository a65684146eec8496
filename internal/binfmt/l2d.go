package binfmt

const (
	L2DSignature  = "L2D@"
	SQ2PSignature = "SQ2P"
	L2DHeaderSize = 0x40
	SQ2PSize      = 0x40
)

// L2DHeader is the 64-byte header of a layered-image container.
type L2DHeader struct {
	Signature  string `binary:"[4]byte"`
	Version    string `binary:"[4]byte"`
	Date       string `binary:"[8]byte"`
	Name       string `binary:"[4]byte"`
	Unknown1   uint32
	Unknown2   uint64
	SQ2PCount  uint32
	SQ2POffset uint32
	LY2Offset  uint32
	FileSize   uint32
	Unknown3   [16]byte
}

// SQ2PHeader opens one sub-block; the offsets are relative to its start.
type SQ2PHeader struct {
	Signature string `binary:"[4]byte"`
	Version   string `binary:"[4]byte"`
	Unknown1  uint64
	SP2Offset uint32
	SQ2Offset uint32
	TM2Offset uint32
	Unknown2  [36]byte
}
