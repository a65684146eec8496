package tim2

import (
	"bytes"
	"encoding/binary"
	"errors"
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"khtools/internal/binfmt"
)

func newImage(bpp uint8, w, h int, headerLength uint16) *Image {
	ch := 3
	if bpp == 3 {
		ch = 4
	}
	pixels := make([]byte, w*h*ch)
	for i := range pixels {
		pixels[i] = byte(i*31 + 7)
	}
	return &Image{
		Header: binfmt.TIM2ImageHeader{
			TotalImageLength: uint32(int(headerLength) + len(pixels)),
			ImageDataLength:  uint32(len(pixels)),
			HeaderLength:     headerLength,
			ImageFormat:      0,
			MipmapCount:      1,
			BitsPerPixel:     bpp,
			ImageWidth:       uint16(w),
			ImageHeight:      uint16(h),
			GsTEX0:           0x0000000A_2D0C8000,
			GsTEX1:           0x60,
			GsRegs:           0xDEADBEEF,
			GsTexClut:        0x12345678,
		},
		Pixels: pixels,
	}
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		images []*Image
	}{
		{"rgb", []*Image{newImage(2, 4, 3, 0x30)}},
		{"rgba", []*Image{newImage(3, 5, 2, 0x30)}},
		{"header slack", []*Image{newImage(3, 2, 2, 0x80)}},
		{"mixed", []*Image{newImage(2, 3, 3, 0x40), newImage(3, 4, 1, 0x30), newImage(3, 1, 1, 0x50)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &Texture{Version: 4, Images: tt.images}
			data, err := src.Bytes()
			if err != nil {
				t.Fatal(err)
			}

			want := binfmt.TIM2FileHeaderSize
			for _, img := range tt.images {
				want += int(img.Header.HeaderLength) + len(img.Pixels)
			}
			if len(data) != want {
				t.Fatalf("serialized %d bytes, want %d", len(data), want)
			}

			parsed, err := Parse(bytes.NewReader(data))
			if err != nil {
				t.Fatal(err)
			}
			if parsed.Version != 4 || len(parsed.Images) != len(tt.images) {
				t.Fatalf("parsed version %d with %d images", parsed.Version, len(parsed.Images))
			}
			for i, img := range parsed.Images {
				if img.Header != tt.images[i].Header {
					t.Errorf("image %d header = %+v, want %+v", i, img.Header, tt.images[i].Header)
				}
			}

			again, err := parsed.Bytes()
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(again, data) {
				t.Fatal("serialize(parse(data)) differs from data")
			}
		})
	}
}

func TestPaddingIsZeroFilled(t *testing.T) {
	img := newImage(2, 1, 1, 0x40)
	data, err := (&Texture{Version: 4, Images: []*Image{img}}).Bytes()
	if err != nil {
		t.Fatal(err)
	}

	pad := data[binfmt.TIM2FileHeaderSize+binfmt.TIM2ImageHeaderSize : binfmt.TIM2FileHeaderSize+0x40]
	if !bytes.Equal(pad, make([]byte, 0x10)) {
		t.Fatalf("padding = % X", pad)
	}
	if !bytes.Equal(data[binfmt.TIM2FileHeaderSize+0x40:], img.Pixels) {
		t.Fatal("pixels do not start at headerLength")
	}
}

func TestShortHeaderLengthSeeksBack(t *testing.T) {
	img := newImage(3, 2, 2, 0x28)
	data, err := (&Texture{Version: 4, Images: []*Image{img}}).Bytes()
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != binfmt.TIM2FileHeaderSize+0x28+len(img.Pixels) {
		t.Fatalf("serialized %d bytes", len(data))
	}

	parsed, err := Parse(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(parsed.Images[0].Pixels, img.Pixels) {
		t.Fatal("pixels not read from start+headerLength")
	}
	// the trailing header fields share their bytes with the first pixels
	if got := parsed.Images[0].Header.GsRegs; got != binary.LittleEndian.Uint32(img.Pixels[:4]) {
		t.Fatalf("GsRegs = %#x", got)
	}

	again, err := parsed.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(again, data) {
		t.Fatal("serialize(parse(data)) differs from data")
	}
}

func TestParseErrors(t *testing.T) {
	good, err := (&Texture{Version: 4, Images: []*Image{newImage(3, 1, 1, 0x30)}}).Bytes()
	if err != nil {
		t.Fatal(err)
	}

	badMagic := append([]byte(nil), good...)
	copy(badMagic, "TIM3")

	badFormat := append([]byte(nil), good...)
	badFormat[binfmt.TIM2FileHeaderSize+0x13] = 1

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"signature", badMagic, binfmt.ErrInvalidSignature},
		{"pixel format", badFormat, binfmt.ErrUnsupportedPixelFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(bytes.NewReader(tt.data))
			if !errors.Is(err, tt.want) {
				t.Fatalf("Parse error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDecodeEncode(t *testing.T) {
	t.Run("rgb", func(t *testing.T) {
		img := newImage(2, 2, 1, 0x30)
		decoded, err := img.Decode()
		if err != nil {
			t.Fatal(err)
		}
		want := color.NRGBA{R: img.Pixels[3], G: img.Pixels[4], B: img.Pixels[5], A: 0xFF}
		if got := decoded.(*image.NRGBA).NRGBAAt(1, 0); got != want {
			t.Fatalf("pixel = %v, want %v", got, want)
		}

		orig := append([]byte(nil), img.Pixels...)
		if err := img.Encode(decoded); err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(img.Pixels, orig) {
			t.Fatal("encode(decode(pixels)) differs")
		}
	})

	t.Run("rgba keeps alpha", func(t *testing.T) {
		img := newImage(3, 2, 2, 0x30)
		src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
		src.SetNRGBA(1, 1, color.NRGBA{R: 1, G: 2, B: 3, A: 0x40})
		if err := img.Encode(src); err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(img.Pixels[12:16], []byte{1, 2, 3, 0x40}) {
			t.Fatalf("pixel bytes = % X", img.Pixels[12:16])
		}
	})

	t.Run("size mismatch", func(t *testing.T) {
		img := newImage(3, 2, 2, 0x30)
		if err := img.Encode(image.NewNRGBA(image.Rect(0, 0, 3, 2))); err == nil {
			t.Fatal("expected dimension error")
		}
	})
}

func TestMetaRoundTrip(t *testing.T) {
	tex := &Texture{Version: 4, Images: []*Image{newImage(3, 2, 2, 0x40)}}
	path := filepath.Join(t.TempDir(), "0_0.json")

	if err := SaveMeta(path, tex.Meta(0)); err != nil {
		t.Fatal(err)
	}
	m, err := LoadMeta(path)
	if err != nil {
		t.Fatal(err)
	}
	if m.Version != 4 || m.Header() != tex.Images[0].Header {
		t.Fatalf("meta = %+v", m)
	}

	decoded, err := tex.Images[0].Decode()
	if err != nil {
		t.Fatal(err)
	}
	img, err := m.NewImage(decoded)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(img.Pixels, tex.Images[0].Pixels) {
		t.Fatal("rebuilt pixels differ")
	}
}

func TestMetaKeepsSurroundingBytes(t *testing.T) {
	img := newImage(3, 2, 1, 0x40)
	img.Slack = bytes.Repeat([]byte{0x77}, 0x10)
	img.Header.PaletteLength = 4
	img.Palette = []byte{9, 8, 7, 6}
	tex := &Texture{Version: 4, Reserved: [8]byte{1, 0, 0, 0, 0, 0, 0, 2}, Images: []*Image{img}}

	data, err := tex.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	parsed, err := Parse(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "0.json")
	if err := SaveMeta(path, parsed.Meta(0)); err != nil {
		t.Fatal(err)
	}
	m, err := LoadMeta(path)
	if err != nil {
		t.Fatal(err)
	}
	decoded, err := parsed.Images[0].Decode()
	if err != nil {
		t.Fatal(err)
	}
	rebuilt, err := m.NewImage(decoded)
	if err != nil {
		t.Fatal(err)
	}

	again, err := (&Texture{Version: m.Version, Reserved: m.ReservedBytes(), Images: []*Image{rebuilt}}).Bytes()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(again, data) {
		t.Fatal("reserved, padding or palette bytes lost through metadata")
	}
}

func TestMetaOmitsZeroSurroundings(t *testing.T) {
	tex := &Texture{Version: 4, Images: []*Image{newImage(2, 1, 1, 0x40)}}
	m := tex.Meta(0)
	if m.Reserved != nil || m.HeaderPadding != nil || m.Palette != nil {
		t.Fatalf("meta = %+v", m)
	}
}
