package binfmt

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestAlign(t *testing.T) {
	tests := []struct {
		n, aligned, pad int64
	}{
		{0, 0, 0},
		{1, 16, 15},
		{15, 16, 1},
		{16, 16, 0},
		{0x54, 0x60, 12},
	}
	for _, tt := range tests {
		if got := Align16(tt.n); got != tt.aligned {
			t.Errorf("Align16(%d) = %d, want %d", tt.n, got, tt.aligned)
		}
		if got := PadLen(tt.n); got != tt.pad {
			t.Errorf("PadLen(%d) = %d, want %d", tt.n, got, tt.pad)
		}
	}

	got := Pad16([]byte{1, 2, 3}, Filler)
	want := append([]byte{1, 2, 3}, bytes.Repeat([]byte{Filler}, 13)...)
	if !bytes.Equal(got, want) {
		t.Fatalf("Pad16 = % X", got)
	}
}

func TestRecordSizes(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want int
	}{
		{"header entry", HeaderEntry{}, HeaderEntrySize},
		{"asset header", AssetHeader{}, AssetHeaderSize},
		{"message", MessageHeader{}, MessageSize},
		{"layout v1", LayoutV1{}, LayoutV1Size},
		{"layout generic", LayoutGeneric{}, LayoutGenericSize},
		{"tim2 file header", TIM2FileHeader{}, TIM2FileHeaderSize},
		{"tim2 image header", TIM2ImageHeader{}, TIM2ImageHeaderSize},
		{"font info", FontInfo{}, FontInfoSize},
		{"glyph", Glyph{}, GlyphSize},
	}
	for _, tt := range tests {
		if got := binary.Size(tt.v); got != tt.want {
			t.Errorf("%s: %d bytes, want %d", tt.name, got, tt.want)
		}
	}
}

func TestTaggedRecordSizes(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want int
	}{
		{"ctd header", &CTDHeader{Signature: CTDSignature}, CTDHeaderSize},
		{"remastered entry", &RemasteredEntry{Name: "-0.dds"}, RemasteredEntrySize},
		{"l2d header", &L2DHeader{Signature: L2DSignature}, L2DHeaderSize},
		{"sq2p header", &SQ2PHeader{Signature: SQ2PSignature}, SQ2PSize},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		if err := WriteTagged(&buf, tt.v); err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		if buf.Len() != tt.want {
			t.Errorf("%s: %d bytes, want %d", tt.name, buf.Len(), tt.want)
		}
	}
}

func TestStoredLengthSentinels(t *testing.T) {
	tests := []struct {
		stored              int32
		encrypted, compress bool
		length              int64
	}{
		{StoredRaw, false, false, 100},
		{StoredEncrypted, true, false, 100},
		{0, true, true, 0},
		{48, true, true, 48},
	}
	for _, tt := range tests {
		h := AssetHeader{DecompressedLength: 100, StoredLength: tt.stored}
		if h.Encrypted() != tt.encrypted || h.Compressed() != tt.compress || h.DataLength() != tt.length {
			t.Errorf("stored %d: encrypted=%v compressed=%v length=%d", tt.stored, h.Encrypted(), h.Compressed(), h.DataLength())
		}
	}
}

func TestRemasteredEntryName(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTagged(&buf, &RemasteredEntry{Name: "-1.dds", StoredLength: StoredRaw}); err != nil {
		t.Fatal(err)
	}
	var e RemasteredEntry
	if err := ReadTagged(&buf, &e); err != nil {
		t.Fatal(err)
	}
	if e.CleanName() != "-1.dds" || e.StoredLength != StoredRaw {
		t.Fatalf("entry = %+v", e)
	}
}
