package tim2

import (
	"fmt"
	"image"
	"image/color"

	"khtools/internal/binfmt"
)

// Channels maps the header's bits-per-pixel code to bytes per pixel:
// 2 is 24-bit RGB, 3 is 32-bit RGBA.
func (img *Image) Channels() (int, error) {
	switch img.Header.BitsPerPixel {
	case 2:
		return 3, nil
	case 3:
		return 4, nil
	}
	return 0, fmt.Errorf("%w: bits per pixel code %d", binfmt.ErrUnsupportedPixelFormat, img.Header.BitsPerPixel)
}

// Decode unpacks the raw pixels into an image.
func (img *Image) Decode() (image.Image, error) {
	ch, err := img.Channels()
	if err != nil {
		return nil, err
	}
	n := int(img.Header.ImageWidth) * int(img.Header.ImageHeight) * ch
	if n > len(img.Pixels) {
		return nil, fmt.Errorf("%w: %dx%d needs %d pixel bytes, have %d", binfmt.ErrLengthMismatch,
			img.Header.ImageWidth, img.Header.ImageHeight, n, len(img.Pixels))
	}

	w, h := int(img.Header.ImageWidth), int(img.Header.ImageHeight)
	out := image.NewNRGBA(image.Rect(0, 0, w, h))

	if img.Header.BitsPerPixel == 3 {
		copy(out.Pix, img.Pixels[:n])
		return out, nil
	}

	for i, j := 0, 0; i < n; i, j = i+3, j+4 {
		out.Pix[j] = img.Pixels[i]
		out.Pix[j+1] = img.Pixels[i+1]
		out.Pix[j+2] = img.Pixels[i+2]
		out.Pix[j+3] = 0xFF
	}
	return out, nil
}

// Encode packs src into the pixel blob using the format the header
// declares. src must have the header's dimensions. Bytes past the packed
// pixels keep their previous value so ImageDataLength is preserved.
func (img *Image) Encode(src image.Image) error {
	ch, err := img.Channels()
	if err != nil {
		return err
	}

	w, h := int(img.Header.ImageWidth), int(img.Header.ImageHeight)
	b := src.Bounds()
	if b.Dx() != w || b.Dy() != h {
		return fmt.Errorf("image is %dx%d, header declares %dx%d", b.Dx(), b.Dy(), w, h)
	}

	n := w * h * ch
	if n > int(img.Header.ImageDataLength) {
		return fmt.Errorf("%w: %d pixel bytes do not fit ImageDataLength %d",
			binfmt.ErrLengthMismatch, n, img.Header.ImageDataLength)
	}

	pixels := make([]byte, img.Header.ImageDataLength)
	copy(pixels, img.Pixels)

	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
			pixels[i] = c.R
			pixels[i+1] = c.G
			pixels[i+2] = c.B
			if ch == 4 {
				pixels[i+3] = c.A
			}
			i += ch
		}
	}

	img.Pixels = pixels
	return nil
}
