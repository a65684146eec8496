package l2d

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"

	"khtools/internal/imageio"
	"khtools/internal/tim2"
)

// Convert writes every picture of every SQ2P texture in the container at
// path as <group>_<index>.png with a matching .json into a folder named
// after the file's stem.
func Convert(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	h, regions, err := scan(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	outDir := strings.TrimSuffix(path, filepath.Ext(path))
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}

	count := 0
	for g, reg := range regions {
		for i, img := range reg.texture.Images {
			pic, err := img.Decode()
			if err != nil {
				return fmt.Errorf("group %d image %d: %w", g, i, err)
			}
			name := filepath.Join(outDir, tileName(g, i))
			if err := imageio.Save(name+".png", pic); err != nil {
				return err
			}
			if err := tim2.SaveMeta(name+".json", reg.texture.Meta(i)); err != nil {
				return err
			}
			count++
		}
	}

	log.WithFields(log.Fields{
		"file":   path,
		"name":   strings.TrimRight(h.Name, "\x00"),
		"groups": len(regions),
		"images": count,
	}).Info("converted")
	return nil
}
