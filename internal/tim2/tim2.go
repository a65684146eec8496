// Package tim2 reads and writes TIM2 texture containers holding direct
// colour (24 and 32 bit) pictures.
//
// TIM2 document: https://openkh.dev/common/tm2.html
package tim2

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"khtools/internal/binfmt"
)

// Texture is one TIM2 container.
type Texture struct {
	Version  uint16
	Reserved [8]byte
	Images   []*Image
}

// Image is one picture: its header, the bytes between the header fields and
// HeaderLength, the raw pixel blob and any palette bytes stored after it.
type Image struct {
	Header  binfmt.TIM2ImageHeader
	Slack   []byte
	Pixels  []byte
	Palette []byte
}

// Parse reads a texture starting at the current position of r. On return
// r is positioned right after the last picture.
func Parse(r io.ReadSeeker) (*Texture, error) {
	base, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, err
	}

	var fh binfmt.TIM2FileHeader
	if err := binfmt.Read(r, &fh); err != nil {
		return nil, fmt.Errorf("read TIM2 header at 0x%X: %w", base, err)
	}
	if string(fh.Signature[:]) != binfmt.TIM2Signature {
		return nil, fmt.Errorf("%w: TIM2 at 0x%X has magic %q", binfmt.ErrInvalidSignature, base, fh.Signature[:])
	}

	t := &Texture{Version: fh.Version, Reserved: fh.Reserved}
	for i := 0; i < int(fh.ImageCount); i++ {
		img, err := parseImage(r)
		if err != nil {
			return nil, fmt.Errorf("image %d: %w", i, err)
		}
		t.Images = append(t.Images, img)
	}

	return t, nil
}

func parseImage(r io.ReadSeeker) (*Image, error) {
	start, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, err
	}

	img := &Image{}
	if err := binfmt.Read(r, &img.Header); err != nil {
		return nil, fmt.Errorf("read header at 0x%X: %w", start, err)
	}
	if _, err := img.Channels(); err != nil {
		return nil, err
	}

	// the header may declare padding beyond its fields, or less than them
	if slack := int(img.Header.HeaderLength) - binfmt.TIM2ImageHeaderSize; slack > 0 {
		img.Slack = make([]byte, slack)
		if _, err := io.ReadFull(r, img.Slack); err != nil {
			return nil, fmt.Errorf("read %d header padding bytes at 0x%X: %w", slack, start, err)
		}
	} else if _, err := r.Seek(start+int64(img.Header.HeaderLength), io.SeekStart); err != nil {
		return nil, err
	}

	img.Pixels = make([]byte, img.Header.ImageDataLength)
	if _, err := io.ReadFull(r, img.Pixels); err != nil {
		return nil, fmt.Errorf("read %d pixel bytes at 0x%X: %w", len(img.Pixels), start+int64(img.Header.HeaderLength), err)
	}
	if img.Header.PaletteLength > 0 {
		img.Palette = make([]byte, img.Header.PaletteLength)
		if _, err := io.ReadFull(r, img.Palette); err != nil {
			return nil, fmt.Errorf("read %d palette bytes: %w", len(img.Palette), err)
		}
	}

	return img, nil
}

// ReadFile parses the texture stored in the file at path.
func ReadFile(path string) (*Texture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	t, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Bytes serializes the texture. Each picture is written as its 48 header
// bytes, HeaderLength-48 bytes of padding (Slack, or zeros when Slack does
// not fit), the pixels and the palette. A HeaderLength shorter than the
// fields moves the cursor back instead.
func (t *Texture) Bytes() ([]byte, error) {
	w := &cursor{}

	fh := binfmt.TIM2FileHeader{
		Version:    t.Version,
		ImageCount: uint16(len(t.Images)),
		Reserved:   t.Reserved,
	}
	copy(fh.Signature[:], binfmt.TIM2Signature)
	if err := binfmt.Write(w, &fh); err != nil {
		return nil, err
	}

	for i, img := range t.Images {
		if _, err := img.Channels(); err != nil {
			return nil, fmt.Errorf("image %d: %w", i, err)
		}
		if len(img.Pixels) != int(img.Header.ImageDataLength) {
			return nil, fmt.Errorf("image %d: %w: %d pixel bytes, header declares %d",
				i, binfmt.ErrLengthMismatch, len(img.Pixels), img.Header.ImageDataLength)
		}

		start := w.pos
		if err := binfmt.Write(w, &img.Header); err != nil {
			return nil, err
		}

		padding := int(img.Header.HeaderLength) - (w.pos - start)
		switch {
		case padding >= 0 && len(img.Slack) == padding:
			w.Write(img.Slack)
		case padding >= 0:
			w.Write(make([]byte, padding))
		default:
			w.seek(padding)
		}

		w.Write(img.Pixels)
		if len(img.Palette) == int(img.Header.PaletteLength) {
			w.Write(img.Palette)
		} else {
			w.Write(make([]byte, img.Header.PaletteLength))
		}
	}

	return w.buf, nil
}

// WriteFile serializes the texture to path.
func (t *Texture) WriteFile(path string) error {
	data, err := t.Bytes()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// cursor is an in-memory writer that can move backwards and overwrite.
type cursor struct {
	buf []byte
	pos int
}

func (c *cursor) Write(p []byte) (int, error) {
	end := c.pos + len(p)
	if end > len(c.buf) {
		c.buf = append(c.buf, make([]byte, end-len(c.buf))...)
	}
	copy(c.buf[c.pos:], p)
	c.pos = end
	return len(p), nil
}

func (c *cursor) seek(delta int) {
	c.pos += delta
	if c.pos < 0 {
		c.pos = 0
	}
}
