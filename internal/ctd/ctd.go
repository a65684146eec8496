// Package ctd decodes and rebuilds .ctd dialogue containers.
//
// A container is a 32-byte header followed by a message table, a layout
// table and the text block. Version 1 files carry the longer LayoutV1
// records; version 503 files store UTF-16LE text.
package ctd

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"khtools/internal/binfmt"
)

// File is a decoded container. Texts[i] belongs to Messages[i] and is kept
// escaped (see Escape). Messages hold the layout index divided by 16.
type File struct {
	Version  uint32
	Unknown1 uint16
	Unknown2 uint16
	Unknown3 uint32

	Messages []binfmt.MessageHeader
	Layouts  []binfmt.Layout
	Texts    []string
}

// Decode reads a container from r, starting at offset 0.
func Decode(r io.ReadSeeker) (*File, error) {
	var h binfmt.CTDHeader
	if err := binfmt.ReadTagged(r, &h); err != nil {
		return nil, fmt.Errorf("read CTD header: %w", err)
	}
	if h.Signature != binfmt.CTDSignature {
		return nil, fmt.Errorf("%w: got %q, want %q", binfmt.ErrInvalidSignature, h.Signature, binfmt.CTDSignature)
	}

	pos, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, err
	}
	if int64(h.MessageOffset) != pos {
		return nil, fmt.Errorf("%w: expected 0x%X, got 0x%X", binfmt.ErrInvalidMessageOffset, h.MessageOffset, pos)
	}

	f := &File{
		Version:  h.Version,
		Unknown1: h.Unknown1,
		Unknown2: h.Unknown2,
		Unknown3: h.Unknown3,
		Messages: make([]binfmt.MessageHeader, h.MessageCount),
	}

	for i := range f.Messages {
		if err := binfmt.Read(r, &f.Messages[i]); err != nil {
			return nil, fmt.Errorf("read message %d: %w", i, err)
		}
		f.Messages[i].LayoutIndex /= 0x10
	}

	if _, err := r.Seek(int64(h.LayoutOffset), io.SeekStart); err != nil {
		return nil, err
	}
	for i := 0; i < int(h.LayoutCount); i++ {
		l := newLayout(f.Version)
		if err := binfmt.Read(r, l); err != nil {
			return nil, fmt.Errorf("read layout %d at 0x%X: %w", i, h.LayoutOffset, err)
		}
		f.Layouts = append(f.Layouts, l)
	}

	tracker := newOffsetTracker()
	for i, m := range f.Messages {
		offset := int64(m.Offset)
		if f.Version == VersionWide {
			offset = tracker.next(m.Offset)
		}
		if _, err := r.Seek(offset, io.SeekStart); err != nil {
			return nil, err
		}
		text, err := readText(r, f.Version)
		if err != nil {
			return nil, fmt.Errorf("read text of message %d at 0x%X: %w", i, offset, err)
		}
		f.Texts = append(f.Texts, Escape(text))
	}

	return f, nil
}

func newLayout(version uint32) binfmt.Layout {
	if version == VersionV1 {
		return &binfmt.LayoutV1{}
	}
	return &binfmt.LayoutGeneric{}
}

func layoutSize(version uint32) int {
	return binary.Size(newLayout(version))
}

// Encode lays the container out again: header, message table padded to 16
// bytes, layouts, texts in message order, and 0xCD up to the next 16-byte
// boundary.
func (f *File) Encode() ([]byte, error) {
	if len(f.Texts) != len(f.Messages) {
		return nil, fmt.Errorf("%d texts for %d messages", len(f.Texts), len(f.Messages))
	}

	messageOffset := int64(binfmt.CTDHeaderSize)
	layoutOffset := binfmt.Align16(messageOffset + int64(len(f.Messages)*binfmt.MessageSize))
	textOffset := layoutOffset + int64(len(f.Layouts)*layoutSize(f.Version))

	var layouts bytes.Buffer
	for i, l := range f.Layouts {
		if binary.Size(l) != layoutSize(f.Version) {
			return nil, fmt.Errorf("layout %d is a %T, version %d needs %T", i, l, f.Version, newLayout(f.Version))
		}
		if err := binfmt.Write(&layouts, l); err != nil {
			return nil, err
		}
	}

	var texts bytes.Buffer
	messages := make([]binfmt.MessageHeader, len(f.Messages))
	for i, m := range f.Messages {
		raw, err := encodeText(Unescape(f.Texts[i]), f.Version)
		if err != nil {
			return nil, fmt.Errorf("message %d: %w", i, err)
		}
		m.Offset = uint16(textOffset + int64(texts.Len()))
		m.LayoutIndex *= 0x10
		messages[i] = m
		texts.Write(raw)
	}

	h := binfmt.CTDHeader{
		Signature:     binfmt.CTDSignature,
		Version:       f.Version,
		Unknown1:      f.Unknown1,
		Unknown2:      f.Unknown2,
		LayoutCount:   uint16(len(f.Layouts)),
		MessageCount:  uint16(len(f.Messages)),
		MessageOffset: uint32(messageOffset),
		LayoutOffset:  uint32(layoutOffset),
		TextOffset:    uint32(textOffset),
		Unknown3:      f.Unknown3,
	}

	var out bytes.Buffer
	if err := binfmt.WriteTagged(&out, &h); err != nil {
		return nil, err
	}
	for i := range messages {
		if err := binfmt.Write(&out, &messages[i]); err != nil {
			return nil, err
		}
	}
	out.Write(make([]byte, layoutOffset-int64(out.Len())))
	out.Write(layouts.Bytes())
	out.Write(texts.Bytes())

	return binfmt.Pad16(out.Bytes(), binfmt.Filler), nil
}
