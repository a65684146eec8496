package binfmt

const (
	TIM2Signature       = "TIM2"
	TIM2FileHeaderSize  = 0x10
	TIM2ImageHeaderSize = 0x30
)

// TIM2FileHeader opens every texture container.
type TIM2FileHeader struct {
	Signature  [4]byte
	Version    uint16
	ImageCount uint16
	Reserved   [8]byte
}

// TIM2ImageHeader precedes each picture. HeaderLength may exceed the 48
// bytes of fields; the rest is padding before the pixel data.
type TIM2ImageHeader struct {
	TotalImageLength uint32
	PaletteLength    uint32
	ImageDataLength  uint32
	HeaderLength     uint16
	ColorEntries     uint16
	ImageFormat      uint8
	MipmapCount      uint8
	ClutFormat       uint8
	BitsPerPixel     uint8
	ImageWidth       uint16
	ImageHeight      uint16
	GsTEX0           uint64
	GsTEX1           uint64
	GsRegs           uint32
	GsTexClut        uint32
}
