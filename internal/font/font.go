// Package font splits a bitmap font (.inf, .cod and .tm2 sharing a stem)
// into one PNG per glyph and builds it back.
package font

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf16"

	"golang.org/x/text/encoding/unicode"

	"khtools/internal/binfmt"
	"khtools/internal/tim2"
)

const metaName = "font.json"

// Meta is font.json: the atlas geometry and the texture header it is
// rebuilt with.
type Meta struct {
	TextureWidth  uint16    `json:"texture_width"`
	TextureHeight uint16    `json:"texture_height"`
	CharWidth     uint8     `json:"char_width"`
	CharHeight    uint8     `json:"char_height"`
	Texture       tim2.Meta `json:"texture"`
}

// GlyphMeta is the <i>.json written next to each glyph image.
type GlyphMeta struct {
	Char  string `json:"char"`
	Alpha uint8  `json:"alpha"`
}

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

func decodeChar(unit uint16) (string, error) {
	if utf16.IsSurrogate(rune(unit)) {
		return "", fmt.Errorf("character code 0x%04X is a lone surrogate", unit)
	}
	var raw [2]byte
	binary.LittleEndian.PutUint16(raw[:], unit)
	s, err := utf16le.NewDecoder().Bytes(raw[:])
	if err != nil {
		return "", err
	}
	return string(s), nil
}

func encodeChar(s string) (uint16, error) {
	raw, err := utf16le.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return 0, err
	}
	if len(raw) != 2 {
		return 0, fmt.Errorf("character %q is not a single UTF-16 code unit", s)
	}
	return binary.LittleEndian.Uint16(raw), nil
}

func stem(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path))
}

func readInfo(path string) (binfmt.FontInfo, error) {
	var info binfmt.FontInfo
	data, err := os.ReadFile(path)
	if err != nil {
		return info, err
	}
	if err := binfmt.Read(bytes.NewReader(data), &info); err != nil {
		return info, fmt.Errorf("read font info %s: %w", path, err)
	}
	return info, nil
}

func readGlyphs(path string, count int) ([]binfmt.Glyph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	glyphs := make([]binfmt.Glyph, count)
	if err := binfmt.Read(bytes.NewReader(data), glyphs); err != nil {
		return nil, fmt.Errorf("read %d glyphs from %s: %w", count, path, err)
	}
	return glyphs, nil
}

func saveJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("JSON serialization error: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

func loadJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("JSON parsing error in %s: %w", path, err)
	}
	return nil
}
