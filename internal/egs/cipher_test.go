package egs

import (
	"bytes"
	"testing"
)

func TestDeriveScheduleDeterministic(t *testing.T) {
	seed := [SeedSize]byte{0x10, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xFE, 0xFF, 0xFF, 0xFF, 0x5A, 0x3C, 0x21, 0x63}

	a := DeriveSchedule(seed)
	b := DeriveSchedule(seed)
	if a != b {
		t.Fatal("schedule differs between runs for the same seed")
	}

	seed[15]++
	if c := DeriveSchedule(seed); c == a {
		t.Fatal("different seeds produced the same schedule")
	}
}

func TestDeriveScheduleZeroSeed(t *testing.T) {
	key := DeriveSchedule([SeedSize]byte{})

	for i := 0; i < SeedSize; i++ {
		if key[i] != byte(i) {
			t.Fatalf("key[%d] = %#x, want %#x", i, key[i], i)
		}
	}

	// First expanded word: seed word 0 XOR the substituted, rotated word 3.
	want := [4]byte{
		0x00 ^ sbox[0x0D] ^ 0x01,
		0x01 ^ sbox[0x0E],
		0x02 ^ sbox[0x0F],
		0x03 ^ sbox[0x0C],
	}
	if !bytes.Equal(key[0x10:0x14], want[:]) {
		t.Fatalf("first expanded word = % X, want % X", key[0x10:0x14], want)
	}

	// Words that are not on a substitution round are a plain XOR chain.
	for j := 0; j < 4; j++ {
		if got, want := key[0x14+j], key[0x04+j]^key[0x10+j]; got != want {
			t.Fatalf("key[%#x] = %#x, want %#x", 0x14+j, got, want)
		}
	}
}

func TestDecryptChunkIsInvolution(t *testing.T) {
	key := DeriveSchedule([SeedSize]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16})

	plain := make([]byte, 48)
	for i := range plain {
		plain[i] = byte(i * 7)
	}
	data := append([]byte(nil), plain...)

	key.DecryptChunk(data, 16)
	if bytes.Equal(data[16:32], plain[16:32]) {
		t.Fatal("chunk was not transformed")
	}
	if !bytes.Equal(data[:16], plain[:16]) || !bytes.Equal(data[32:], plain[32:]) {
		t.Fatal("bytes outside the chunk were modified")
	}

	key.DecryptChunk(data, 16)
	if !bytes.Equal(data, plain) {
		t.Fatal("applying the chunk transform twice did not restore the input")
	}
}

func TestDecryptChunkShortTail(t *testing.T) {
	key := DeriveSchedule([SeedSize]byte{0xAA})
	data := []byte{1, 2, 3, 4, 5, 6}

	key.DecryptChunk(data, 2)
	if data[0] != 1 || data[1] != 2 {
		t.Fatal("bytes before index were modified")
	}
	key.DecryptChunk(data, 2)
	if !bytes.Equal(data, []byte{1, 2, 3, 4, 5, 6}) {
		t.Fatal("short tail did not round-trip")
	}
}

func TestDecryptPayloadLeavesTailUntouched(t *testing.T) {
	key := DeriveSchedule([SeedSize]byte{0x42, 0x13})

	tests := []struct {
		name string
		size int
	}{
		{"shorter than span", 0x40},
		{"exactly span", EncryptedSpan},
		{"longer than span", 0x400},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plain := make([]byte, tt.size)
			for i := range plain {
				plain[i] = byte(i)
			}
			data := append([]byte(nil), plain...)

			key.DecryptPayload(data)

			head := tt.size
			if head > EncryptedSpan {
				head = EncryptedSpan
			}
			if bytes.Equal(data[:head], plain[:head]) {
				t.Fatal("leading span was not transformed")
			}
			if !bytes.Equal(data[head:], plain[head:]) {
				t.Fatal("bytes at offsets >= 256 were modified")
			}

			key.DecryptPayload(data)
			if !bytes.Equal(data, plain) {
				t.Fatal("payload did not round-trip")
			}
		})
	}
}
