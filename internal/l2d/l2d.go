// Package l2d converts the textures embedded in L2D layered images to PNG
// and patches edited PNGs back into the original container.
//
// An L2D file starts with a 64-byte header. Its SQ2P blocks follow one
// another from sq2pOffset+16; each block points at a TIM2 texture relative
// to its own start, and the next block begins right after that texture.
package l2d

import (
	"fmt"
	"io"

	"khtools/internal/binfmt"
	"khtools/internal/tim2"
)

// region is the span of one group's texture inside the container.
type region struct {
	offset  int64
	length  int64
	texture *tim2.Texture
}

func scan(r io.ReadSeeker) (*binfmt.L2DHeader, []region, error) {
	var h binfmt.L2DHeader
	if err := binfmt.ReadTagged(r, &h); err != nil {
		return nil, nil, fmt.Errorf("read L2D header: %w", err)
	}
	if h.Signature != binfmt.L2DSignature {
		return nil, nil, fmt.Errorf("%w: got %q, want %q", binfmt.ErrInvalidSignature, h.Signature, binfmt.L2DSignature)
	}

	if _, err := r.Seek(int64(h.SQ2POffset)+16, io.SeekStart); err != nil {
		return nil, nil, err
	}

	regions := make([]region, 0, h.SQ2PCount)
	for i := 0; i < int(h.SQ2PCount); i++ {
		block, err := r.Seek(0, io.SeekCurrent)
		if err != nil {
			return nil, nil, err
		}

		var sq binfmt.SQ2PHeader
		if err := binfmt.ReadTagged(r, &sq); err != nil {
			return nil, nil, fmt.Errorf("read SQ2P %d at 0x%X: %w", i, block, err)
		}
		if sq.Signature != binfmt.SQ2PSignature {
			return nil, nil, fmt.Errorf("%w: SQ2P %d at 0x%X has magic %q", binfmt.ErrInvalidSignature, i, block, sq.Signature)
		}

		start := block + int64(sq.TM2Offset)
		if _, err := r.Seek(start, io.SeekStart); err != nil {
			return nil, nil, err
		}
		tex, err := tim2.Parse(r)
		if err != nil {
			return nil, nil, fmt.Errorf("SQ2P %d texture at 0x%X: %w", i, start, err)
		}
		end, err := r.Seek(0, io.SeekCurrent)
		if err != nil {
			return nil, nil, err
		}

		regions = append(regions, region{offset: start, length: end - start, texture: tex})
	}

	return &h, regions, nil
}

func tileName(group, index int) string {
	return fmt.Sprintf("%d_%d", group, index)
}
