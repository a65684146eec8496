// Package egs implements the asset cipher of the PC re-release packages.
//
// The key schedule is expanded from the first 16 bytes of an asset envelope
// and the cipher only ever touches the first 256 bytes of a payload.
package egs

const (
	passCount    = 10
	SeedSize     = 0x10
	ScheduleSize = SeedSize * (passCount + 1)

	// EncryptedSpan is how much of a payload is ciphered; the rest is plain.
	EncryptedSpan = 0x100
)

// Schedule is the expanded 176-byte key of one asset.
type Schedule [ScheduleSize]byte

// DeriveSchedule expands a 16-byte seed. Zero seed bytes are replaced by
// their own index.
func DeriveSchedule(seed [SeedSize]byte) Schedule {
	var key Schedule

	for i, b := range seed {
		if b == 0 {
			b = byte(i)
		}
		key[i] = b
	}

	for i := 0; i < passCount*4; i++ {
		var frame [4]byte
		copy(frame[:], key[0x0C+i*4:0x10+i*4])

		if i%4 == 0 {
			frame = [4]byte{
				sbox[frame[1]] ^ rcon[i/4],
				sbox[frame[2]],
				sbox[frame[3]],
				sbox[frame[0]],
			}
		}

		for j := 0; j < 4; j++ {
			key[0x10+i*4+j] = key[i*4+j] ^ frame[j]
		}
	}

	return key
}

// DecryptChunk deciphers up to 16 bytes of data starting at index, in place.
// The transform is a pure XOR, so applying it twice restores the input.
func (k *Schedule) DecryptChunk(data []byte, index int) {
	if index < 0 || index >= len(data) {
		return
	}
	n := len(data) - index
	if n > SeedSize {
		n = SeedSize
	}

	for pass := passCount; pass >= 0; pass-- {
		round := k[SeedSize*pass : SeedSize*(pass+1)]
		for j := 0; j < n; j++ {
			data[index+j] ^= round[j]
		}
	}
}

// DecryptPayload deciphers the leading 256 bytes of an asset payload chunk
// by chunk. Bytes past that span are stored in the clear.
func (k *Schedule) DecryptPayload(data []byte) {
	end := len(data)
	if end > EncryptedSpan {
		end = EncryptedSpan
	}
	for i := 0; i < end; i += SeedSize {
		k.DecryptChunk(data, i)
	}
}
