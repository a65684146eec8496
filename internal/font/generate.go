package font

import (
	"bytes"
	"fmt"
	"image"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"

	"khtools/internal/binfmt"
	"khtools/internal/imageio"
	"khtools/internal/tim2"
)

// Generate rebuilds a font from a folder written by Extract. Glyph images
// are taken in natural order and laid out row-major in cells of
// char_width x char_height, starting a new row when the next cell would
// cross texture_width. The result goes to <dir>/out/<name>.inf, .cod and
// .tm2, where name is the folder's base name.
func Generate(dir string) error {
	var meta Meta
	if err := loadJSON(filepath.Join(dir, metaName), &meta); err != nil {
		return err
	}

	images, err := filepath.Glob(filepath.Join(dir, "*.png"))
	if err != nil {
		return err
	}
	imageio.NaturalSort(images)

	atlas := image.NewNRGBA(image.Rect(0, 0, int(meta.TextureWidth), int(meta.TextureHeight)))
	glyphs := make([]binfmt.Glyph, 0, len(images))

	x, y := 0, 0
	for _, path := range images {
		var gm GlyphMeta
		if err := loadJSON(strings.TrimSuffix(path, ".png")+".json", &gm); err != nil {
			return err
		}
		char, err := encodeChar(gm.Char)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		tile, err := imageio.Load(path)
		if err != nil {
			return err
		}
		width := tile.Bounds().Dx()
		if width > math.MaxUint8 {
			return fmt.Errorf("%s: glyph is %d pixels wide, at most %d fit", path, width, math.MaxUint8)
		}

		glyphs = append(glyphs, binfmt.Glyph{
			Char:  char,
			X:     uint16(x),
			Y:     uint16(y),
			Alpha: gm.Alpha,
			Width: uint8(width),
		})
		imageio.Paste(atlas, tile, x, y)

		x += int(meta.CharWidth)
		if x+int(meta.CharWidth) > int(meta.TextureWidth) {
			x = 0
			y += int(meta.CharHeight)
		}
	}

	img, err := meta.Texture.NewImage(atlas)
	if err != nil {
		return fmt.Errorf("font texture: %w", err)
	}
	tex := &tim2.Texture{
		Version:  meta.Texture.Version,
		Reserved: meta.Texture.ReservedBytes(),
		Images:   []*tim2.Image{img},
	}

	outDir := filepath.Join(dir, "out")
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}
	name := filepath.Join(outDir, filepath.Base(filepath.Clean(dir)))

	var inf bytes.Buffer
	info := binfmt.FontInfo{
		CharCount:     uint16(len(glyphs)),
		TextureWidth:  meta.TextureWidth,
		TextureHeight: meta.TextureHeight,
		CharWidth:     meta.CharWidth,
		CharHeight:    meta.CharHeight,
	}
	if err := binfmt.Write(&inf, &info); err != nil {
		return err
	}
	inf.Write(binfmt.Repeat(binfmt.Filler, binfmt.FontInfoSize))
	if err := os.WriteFile(name+".inf", inf.Bytes(), 0644); err != nil {
		return err
	}

	var cod bytes.Buffer
	if err := binfmt.Write(&cod, glyphs); err != nil {
		return err
	}
	if err := os.WriteFile(name+".cod", cod.Bytes(), 0644); err != nil {
		return err
	}

	if err := tex.WriteFile(name + ".tm2"); err != nil {
		return err
	}

	log.WithFields(log.Fields{"font": name, "glyphs": len(glyphs)}).Info("font generated")
	return nil
}
