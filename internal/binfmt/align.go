package binfmt

// Filler is the byte the game uses to pad asset payloads and file tails.
const Filler = 0xCD

// Align16 rounds n up to the next multiple of 16.
func Align16(n int64) int64 {
	return (n + 15) &^ 15
}

// PadLen returns how many bytes are needed to bring n to a 16-byte boundary.
func PadLen(n int64) int64 {
	return Align16(n) - n
}

// Pad16 appends fill bytes to data until its length is a multiple of 16.
func Pad16(data []byte, fill byte) []byte {
	n := PadLen(int64(len(data)))
	for i := int64(0); i < n; i++ {
		data = append(data, fill)
	}
	return data
}

// Repeat returns n copies of b.
func Repeat(b byte, n int) []byte {
	out := make([]byte, n)
	if b != 0 {
		for i := range out {
			out[i] = b
		}
	}
	return out
}
