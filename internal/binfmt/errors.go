package binfmt

import "errors"

// Error taxonomy shared by every codec. Callers wrap these with offsets and
// expected/actual values and match them with errors.Is.
var (
	ErrInvalidSignature       = errors.New("invalid signature")
	ErrHeaderLengthMismatch   = errors.New("header length mismatch")
	ErrInvalidMessageOffset   = errors.New("invalid message offset")
	ErrUnsupportedPixelFormat = errors.New("unsupported pixel format")
	ErrUnsupportedFeature     = errors.New("not supported")
	ErrLengthMismatch         = errors.New("length mismatch")
	ErrRegionSizeMismatch     = errors.New("replacement does not fit original region")
	ErrUnsafePath             = errors.New("path escapes output folder")
)
