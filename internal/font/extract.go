package font

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/apex/log"

	"khtools/internal/imageio"
	"khtools/internal/tim2"
)

// Extract reads the font whose files share the stem of path and writes
// font.json plus <i>.png and <i>.json per glyph into a folder named after
// the stem.
func Extract(path string) error {
	base := stem(path)

	info, err := readInfo(base + ".inf")
	if err != nil {
		return err
	}
	glyphs, err := readGlyphs(base+".cod", int(info.CharCount))
	if err != nil {
		return err
	}
	tex, err := tim2.ReadFile(base + ".tm2")
	if err != nil {
		return err
	}
	if len(tex.Images) == 0 {
		return fmt.Errorf("%s.tm2 holds no picture", base)
	}
	atlas, err := tex.Images[0].Decode()
	if err != nil {
		return fmt.Errorf("%s.tm2: %w", base, err)
	}

	if err := os.MkdirAll(base, 0755); err != nil {
		return err
	}
	meta := Meta{
		TextureWidth:  info.TextureWidth,
		TextureHeight: info.TextureHeight,
		CharWidth:     info.CharWidth,
		CharHeight:    info.CharHeight,
		Texture:       tex.Meta(0),
	}
	if err := saveJSON(filepath.Join(base, metaName), meta); err != nil {
		return err
	}

	for i, g := range glyphs {
		char, err := decodeChar(g.Char)
		if err != nil {
			return fmt.Errorf("glyph %d: %w", i, err)
		}

		tile := imageio.Crop(atlas, int(g.X), int(g.Y), int(g.Width), int(info.CharHeight))
		name := filepath.Join(base, strconv.Itoa(i))
		if err := imageio.Save(name+".png", tile); err != nil {
			return err
		}
		if err := saveJSON(name+".json", GlyphMeta{Char: char, Alpha: g.Alpha}); err != nil {
			return err
		}
	}

	log.WithFields(log.Fields{"font": base, "glyphs": len(glyphs)}).Info("font extracted")
	return nil
}
