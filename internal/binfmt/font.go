package binfmt

const (
	FontInfoSize = 8
	GlyphSize    = 8
)

// FontInfo is the .inf record of a bitmap font. On disk it is followed by
// eight filler bytes.
type FontInfo struct {
	CharCount     uint16
	TextureWidth  uint16
	TextureHeight uint16
	CharWidth     uint8
	CharHeight    uint8
}

// Glyph is one 8-byte .cod record.
type Glyph struct {
	Char  uint16 // UTF-16 code unit
	X     uint16
	Y     uint16
	Alpha uint8
	Width uint8
}
