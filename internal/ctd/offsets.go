package ctd

// Version 503 containers can exceed 64 KiB of text while message offsets
// stay 16 bits wide. Texts are stored in message order, so an offset lower
// than the previous one means the counter wrapped.

const offsetWindow = 0x10000

type offsetTracker struct {
	last       int64
	multiplier int64
}

func newOffsetTracker() *offsetTracker {
	return &offsetTracker{last: -1}
}

// next turns a raw on-disk offset into an absolute file offset.
func (t *offsetTracker) next(raw uint16) int64 {
	abs := int64(raw) + t.multiplier*offsetWindow
	if abs < t.last {
		t.multiplier++
		abs += offsetWindow
	}
	t.last = abs
	return abs
}

// CorrectOffsets recovers absolute offsets from a sequence of raw ones.
func CorrectOffsets(raw []uint16) []int64 {
	t := newOffsetTracker()
	out := make([]int64, len(raw))
	for i, r := range raw {
		out[i] = t.next(r)
	}
	return out
}
