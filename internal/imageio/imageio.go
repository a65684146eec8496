// Package imageio is the PNG boundary of the texture tools.
package imageio

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"

	"github.com/anthonynsimon/bild/imgio"
)

// Load decodes the image at path.
func Load(path string) (image.Image, error) {
	img, err := imgio.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image %s: %w", path, err)
	}
	return img, nil
}

// Save encodes img as PNG, creating the parent directory when needed.
func Save(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	if err := imgio.Save(path, img, imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("save image %s: %w", path, err)
	}
	return nil
}

// Crop copies the w x h area of src at (x, y) into a new image. Pixels
// outside src come out transparent. Colours are copied unpremultiplied so
// semi-transparent texels survive unchanged.
func Crop(src image.Image, x, y, w, h int) *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	b := src.Bounds()
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			p := image.Pt(b.Min.X+x+dx, b.Min.Y+y+dy)
			if !p.In(b) {
				continue
			}
			out.SetNRGBA(dx, dy, color.NRGBAModel.Convert(src.At(p.X, p.Y)).(color.NRGBA))
		}
	}
	return out
}

// Paste writes src into dst with its top-left corner at (x, y), replacing
// the pixels underneath.
func Paste(dst *image.NRGBA, src image.Image, x, y int) {
	b := src.Bounds()
	for sy := b.Min.Y; sy < b.Max.Y; sy++ {
		for sx := b.Min.X; sx < b.Max.X; sx++ {
			p := image.Pt(x+sx-b.Min.X, y+sy-b.Min.Y)
			if !p.In(dst.Rect) {
				continue
			}
			dst.SetNRGBA(p.X, p.Y, color.NRGBAModel.Convert(src.At(sx, sy)).(color.NRGBA))
		}
	}
}

var chunks = regexp.MustCompile(`[0-9]+|[^0-9]+`)

// NaturalSort orders paths so that "2.png" sorts before "10.png".
func NaturalSort(paths []string) {
	sort.SliceStable(paths, func(i, j int) bool {
		return naturalLess(paths[i], paths[j])
	})
}

func naturalLess(a, b string) bool {
	ca := chunks.FindAllString(a, -1)
	cb := chunks.FindAllString(b, -1)

	for i := 0; i < len(ca) && i < len(cb); i++ {
		if ca[i] == cb[i] {
			continue
		}
		na, errA := strconv.Atoi(ca[i])
		nb, errB := strconv.Atoi(cb[i])
		if errA == nil && errB == nil {
			if na != nb {
				return na < nb
			}
			continue
		}
		return ca[i] < cb[i]
	}
	return len(ca) < len(cb)
}
