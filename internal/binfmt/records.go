package binfmt

import (
	"encoding/binary"
	"io"

	bst "github.com/mixcode/binarystruct"
)

// Records carrying fixed-width ASCII fields go through binarystruct so the
// strings come out as Go strings; purely numeric records use encoding/binary.
var marshaller = new(bst.Marshaller)

// Read decodes a little-endian numeric record.
func Read(r io.Reader, v any) error {
	return binary.Read(r, binary.LittleEndian, v)
}

// Write encodes a little-endian numeric record.
func Write(w io.Writer, v any) error {
	return binary.Write(w, binary.LittleEndian, v)
}

// ReadTagged decodes a record described with binarystruct tags.
func ReadTagged(r io.Reader, v any) error {
	_, err := marshaller.Read(r, bst.LittleEndian, v)
	return err
}

// WriteTagged encodes a record described with binarystruct tags.
func WriteTagged(w io.Writer, v any) error {
	_, err := marshaller.Write(w, bst.LittleEndian, v)
	return err
}
