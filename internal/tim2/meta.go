package tim2

import (
	"encoding/json"
	"fmt"
	"image"
	"os"

	"khtools/internal/binfmt"
)

// Meta is the editable JSON description of one picture: every header field
// plus the version of the container it came from. Reserved, HeaderPadding
// and Palette carry the bytes around the pixels and are omitted when they
// are all zero.
type Meta struct {
	Version          uint16 `json:"version"`
	TotalImageLength uint32 `json:"totalImageLength"`
	PaletteLength    uint32 `json:"paletteLength"`
	ImageDataLength  uint32 `json:"imageDataLength"`
	HeaderLength     uint16 `json:"headerLength"`
	ColorEntries     uint16 `json:"colorEntries"`
	ImageFormat      uint8  `json:"imageFormat"`
	MipmapCount      uint8  `json:"mipmapCount"`
	ClutFormat       uint8  `json:"clutFormat"`
	BitsPerPixel     uint8  `json:"bitsPerPixel"`
	ImageWidth       uint16 `json:"imageWidth"`
	ImageHeight      uint16 `json:"imageHeight"`
	GsTEX0           uint64 `json:"gsTEX0"`
	GsTEX1           uint64 `json:"gsTEX1"`
	GsRegs           uint32 `json:"gsRegs"`
	GsTexClut        uint32 `json:"gsTexClut"`
	Reserved         []byte `json:"reserved,omitempty"`
	HeaderPadding    []byte `json:"headerPadding,omitempty"`
	Palette          []byte `json:"palette,omitempty"`
}

// Meta describes picture i of t.
func (t *Texture) Meta(i int) Meta {
	h := t.Images[i].Header
	return Meta{
		Version:          t.Version,
		TotalImageLength: h.TotalImageLength,
		PaletteLength:    h.PaletteLength,
		ImageDataLength:  h.ImageDataLength,
		HeaderLength:     h.HeaderLength,
		ColorEntries:     h.ColorEntries,
		ImageFormat:      h.ImageFormat,
		MipmapCount:      h.MipmapCount,
		ClutFormat:       h.ClutFormat,
		BitsPerPixel:     h.BitsPerPixel,
		ImageWidth:       h.ImageWidth,
		ImageHeight:      h.ImageHeight,
		GsTEX0:           h.GsTEX0,
		GsTEX1:           h.GsTEX1,
		GsRegs:           h.GsRegs,
		GsTexClut:        h.GsTexClut,
		Reserved:         nonZero(t.Reserved[:]),
		HeaderPadding:    nonZero(t.Images[i].Slack),
		Palette:          nonZero(t.Images[i].Palette),
	}
}

func nonZero(b []byte) []byte {
	for _, c := range b {
		if c != 0 {
			return append([]byte(nil), b...)
		}
	}
	return nil
}

// ReservedBytes returns the container's reserved header bytes.
func (m Meta) ReservedBytes() [8]byte {
	var r [8]byte
	copy(r[:], m.Reserved)
	return r
}

// Header rebuilds the picture header the metadata describes.
func (m Meta) Header() binfmt.TIM2ImageHeader {
	return binfmt.TIM2ImageHeader{
		TotalImageLength: m.TotalImageLength,
		PaletteLength:    m.PaletteLength,
		ImageDataLength:  m.ImageDataLength,
		HeaderLength:     m.HeaderLength,
		ColorEntries:     m.ColorEntries,
		ImageFormat:      m.ImageFormat,
		MipmapCount:      m.MipmapCount,
		ClutFormat:       m.ClutFormat,
		BitsPerPixel:     m.BitsPerPixel,
		ImageWidth:       m.ImageWidth,
		ImageHeight:      m.ImageHeight,
		GsTEX0:           m.GsTEX0,
		GsTEX1:           m.GsTEX1,
		GsRegs:           m.GsRegs,
		GsTexClut:        m.GsTexClut,
	}
}

// NewImage builds a picture from its metadata and pixels.
func (m Meta) NewImage(src image.Image) (*Image, error) {
	img := &Image{Header: m.Header(), Slack: m.HeaderPadding, Palette: m.Palette}
	if err := img.Encode(src); err != nil {
		return nil, err
	}
	return img, nil
}

// SaveMeta writes m as JSON to path.
func SaveMeta(path string, m Meta) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("JSON serialization error: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// LoadMeta reads picture metadata from path.
func LoadMeta(path string) (Meta, error) {
	var m Meta
	data, err := os.ReadFile(path)
	if err != nil {
		return m, err
	}
	if err := json.Unmarshal(data, &m); err != nil {
		return m, fmt.Errorf("JSON parsing error in %s: %w", path, err)
	}
	return m, nil
}
