package l2d

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/apex/log"

	"khtools/internal/binfmt"
	"khtools/internal/imageio"
	"khtools/internal/tim2"
)

type patch struct {
	group  int
	offset int64
	data   []byte
}

// Build patches the textures of the container at original with the
// <group>_<index>.png/.json pairs found in dir. Only texture bytes are
// written; groups without images are left alone. Every replacement must
// serialize to exactly the size of the texture it replaces, and all of
// them are checked before the first write.
func Build(dir, original string) error {
	groups, err := collect(dir)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(original, os.O_RDWR, 0)
	if err != nil {
		return err
	}
	defer f.Close()

	_, regions, err := scan(f)
	if err != nil {
		return fmt.Errorf("%s: %w", original, err)
	}

	var patches []patch
	for g, indexes := range groups {
		if g >= len(regions) {
			return fmt.Errorf("group %d: container has %d groups", g, len(regions))
		}
		data, err := buildTexture(dir, g, indexes)
		if err != nil {
			return fmt.Errorf("group %d: %w", g, err)
		}
		if int64(len(data)) != regions[g].length {
			return fmt.Errorf("group %d: %w: %d bytes, original texture at 0x%X is %d",
				g, binfmt.ErrRegionSizeMismatch, len(data), regions[g].offset, regions[g].length)
		}
		patches = append(patches, patch{group: g, offset: regions[g].offset, data: data})
	}
	sort.Slice(patches, func(i, j int) bool { return patches[i].group < patches[j].group })

	for _, p := range patches {
		if _, err := f.WriteAt(p.data, p.offset); err != nil {
			return fmt.Errorf("write group %d at 0x%X: %w", p.group, p.offset, err)
		}
		log.WithFields(log.Fields{"group": p.group, "offset": p.offset, "size": len(p.data)}).Info("texture replaced")
	}
	return nil
}

// collect finds the <group>_<index>.png files of dir.
func collect(dir string) (map[int][]int, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.png"))
	if err != nil {
		return nil, err
	}

	groups := make(map[int][]int)
	for _, path := range files {
		g, i, ok := parseTileName(strings.TrimSuffix(filepath.Base(path), ".png"))
		if !ok {
			log.WithField("file", path).Debug("skipping image without group_index name")
			continue
		}
		groups[g] = append(groups[g], i)
	}
	for _, indexes := range groups {
		sort.Ints(indexes)
	}
	return groups, nil
}

func parseTileName(name string) (group, index int, ok bool) {
	gs, is, found := strings.Cut(name, "_")
	if !found {
		return 0, 0, false
	}
	g, err := strconv.Atoi(gs)
	if err != nil {
		return 0, 0, false
	}
	i, err := strconv.Atoi(is)
	if err != nil {
		return 0, 0, false
	}
	return g, i, true
}

func buildTexture(dir string, group int, indexes []int) ([]byte, error) {
	tex := &tim2.Texture{}
	for _, i := range indexes {
		name := filepath.Join(dir, tileName(group, i))
		meta, err := tim2.LoadMeta(name + ".json")
		if err != nil {
			return nil, err
		}
		pic, err := imageio.Load(name + ".png")
		if err != nil {
			return nil, err
		}
		img, err := meta.NewImage(pic)
		if err != nil {
			return nil, fmt.Errorf("image %d: %w", i, err)
		}
		tex.Version = meta.Version
		tex.Reserved = meta.ReservedBytes()
		tex.Images = append(tex.Images, img)
	}
	return tex.Bytes()
}
