package imageio

import (
	"image"
	"image/color"
	"path/filepath"
	"reflect"
	"testing"
)

func TestNaturalSort(t *testing.T) {
	paths := []string{"font/10.png", "font/2.png", "font/1.png", "font/0.png", "font/21.png", "font/3.png"}
	NaturalSort(paths)

	want := []string{"font/0.png", "font/1.png", "font/2.png", "font/3.png", "font/10.png", "font/21.png"}
	if !reflect.DeepEqual(paths, want) {
		t.Fatalf("NaturalSort = %v, want %v", paths, want)
	}
}

func TestSaveLoadKeepsPixels(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 0xFF, G: 0x10, B: 0x20, A: 0x80})
	img.SetNRGBA(2, 1, color.NRGBA{R: 0x01, G: 0x02, B: 0x03, A: 0xFF})

	path := filepath.Join(t.TempDir(), "sub", "tile.png")
	if err := Save(path, img); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if got.Bounds() != img.Bounds() {
		t.Fatalf("bounds = %v, want %v", got.Bounds(), img.Bounds())
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			want := img.NRGBAAt(x, y)
			have := color.NRGBAModel.Convert(got.At(x, y)).(color.NRGBA)
			if have != want {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, have, want)
			}
		}
	}
}

func TestCropPaste(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for i := range src.Pix {
		src.Pix[i] = byte(i * 7)
	}

	tile := Crop(src, 2, 1, 3, 2)
	if tile.Bounds() != image.Rect(0, 0, 3, 2) {
		t.Fatalf("bounds = %v", tile.Bounds())
	}
	if got, want := tile.NRGBAAt(1, 1), src.NRGBAAt(3, 2); got != want {
		t.Fatalf("tile (1,1) = %v, want %v", got, want)
	}
	if got := tile.NRGBAAt(2, 0); got != (color.NRGBA{}) {
		t.Fatalf("pixel outside the source = %v", got)
	}

	dst := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	Paste(dst, tile, 1, 2)
	if got, want := dst.NRGBAAt(1, 2), src.NRGBAAt(2, 1); got != want {
		t.Fatalf("pasted (1,2) = %v, want %v", got, want)
	}
	if got := dst.NRGBAAt(0, 0); got != (color.NRGBA{}) {
		t.Fatalf("untouched pixel = %v", got)
	}
}
