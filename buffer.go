package bitstream

import (
	"fmt"

	"github.com/pkg/errors"
)

// Mode is a construction-time capability bitmask for a BitBuffer, playing
// the same role the teacher's *Options played for its Reader: a small,
// optional configuration value passed once at construction.
type Mode uint8

const (
	Readable Mode = 1 << iota
	Writable

	ReadWrite = Readable | Writable
)

func (m Mode) has(f Mode) bool { return m&f != 0 }

// Whence selects the reference point of a seek, mirroring io.SeekStart,
// io.SeekCurrent and io.SeekEnd.
type Whence int

const (
	SeekBegin Whence = iota
	SeekCurrent
	SeekEnd
)

// maxWidth is the widest field a single GetBits/PutBits call can move.
const maxWidth = 64

// BitBuffer turns a borrowed byte slice into a bit-addressable sequence with
// independent get and put cursors, each bounded by its own [begin, end)
// range measured in bits. It never allocates the byte slice it operates on
// and never grows it: the caller owns storage for the buffer's lifetime.
//
// BitBuffer never sets any sticky error state; every method here reports
// success or failure for that one call only. StreamState, layered on top by
// InputStream/OutputStream, is what turns a failed call into a sticky flag.
type BitBuffer struct {
	buf  []byte
	mode Mode

	gBegin, g, gEnd int // bit positions, get cursor
	pBegin, p, pEnd int // bit positions, put cursor
}

// NewBitBuffer wraps buf for bit-level access. A zero Mode defaults to
// ReadWrite, mirroring the teacher's GetBufferSize()'s default-on-zero
// convention for *Options.
func NewBitBuffer(buf []byte, mode Mode) *BitBuffer {
	if mode == 0 {
		mode = ReadWrite
	}
	bb := &BitBuffer{}
	bb.Rebind(buf, len(buf)*8, mode)
	return bb
}

// Rebind replaces the referenced slice, truncates or extends the accessible
// range to sizeBits (which must be <= len(buf)*8), and resets both cursors
// to their respective begins. A negative sizeBits means "use the full
// slice".
func (b *BitBuffer) Rebind(buf []byte, sizeBits int, mode Mode) {
	if sizeBits < 0 {
		sizeBits = len(buf) * 8
	}
	if mode != 0 {
		b.mode = mode
	}
	b.buf = buf
	b.gBegin, b.g, b.gEnd = 0, 0, sizeBits
	b.pBegin, b.p, b.pEnd = 0, 0, sizeBits
}

// AvailableGet returns the number of bits still readable before the get
// cursor's upper bound.
func (b *BitBuffer) AvailableGet() int { return b.gEnd - b.g }

// AvailablePut returns the number of bits still writable before the put
// cursor's upper bound.
func (b *BitBuffer) AvailablePut() int { return b.pEnd - b.p }

// GetPos and PutPos report the current bit position of each cursor.
func (b *BitBuffer) GetPos() int { return b.g }
func (b *BitBuffer) PutPos() int { return b.p }

func checkWidth(width int) {
	if width < 0 || width > maxWidth {
		panic(errors.Wrapf(ErrWidthOutOfRange, "width %d not in [0, %d]", width, maxWidth))
	}
}

// getBitsAt reads width bits (0 < width <= 64) starting at the bit position
// pos and returns them right-justified. It never touches the get or put
// cursor; callers advance the appropriate cursor themselves.
//
// This is the generalized, arbitrary-width descendant of the teacher's
// mustReadNBitsInCurrentByte/ReadNBitsAsUintNN ladder: instead of a
// hand-unrolled chain for 8/16/32/64-bit destinations, one loop consumes as
// many bits as remain in the current byte on each iteration.
func (b *BitBuffer) getBitsAt(pos, width int) uint64 {
	var v uint64
	remaining := width
	p := pos
	for remaining > 0 {
		byteIndex := p / 8
		bitOffset := p % 8 // bits already consumed in this byte, MSB-first
		avail := 8 - bitOffset
		take := remaining
		if take > avail {
			take = avail
		}
		shiftRight := avail - take
		mask := byte(1<<uint(take) - 1)
		chunk := (b.buf[byteIndex] >> uint(shiftRight)) & mask
		v = v<<uint(take) | uint64(chunk)
		p += take
		remaining -= take
	}
	return v
}

// putBitsAt is the mirror image of getBitsAt: it writes the low width bits
// of value into the width bits starting at pos, preserving every bit
// outside that range.
func (b *BitBuffer) putBitsAt(pos, width int, value uint64) {
	remaining := width
	p := pos
	for remaining > 0 {
		byteIndex := p / 8
		bitOffset := p % 8
		avail := 8 - bitOffset
		take := remaining
		if take > avail {
			take = avail
		}
		shiftRight := avail - take
		chunkShift := remaining - take
		chunk := byte((value >> uint(chunkShift)) & (1<<uint(take) - 1))
		mask := byte((1<<uint(take) - 1) << uint(shiftRight))
		b.buf[byteIndex] = b.buf[byteIndex]&^mask | chunk<<uint(shiftRight)
		p += take
		remaining -= take
	}
}

// GetBits reads width bits (0 <= width <= 64) starting at the get cursor and
// advances it by width on success. On underrun it returns (0, 0) and leaves
// the cursor and buffer untouched: a failed read never partially advances.
func (b *BitBuffer) GetBits(width int) (value uint64, bitsRead int) {
	if !b.mode.has(Readable) {
		panic(ErrNotReadable)
	}
	checkWidth(width)
	if width == 0 {
		return 0, 0
	}
	if width > b.AvailableGet() {
		return 0, 0
	}
	value = b.getBitsAt(b.g, width)
	b.g += width
	return value, width
}

// PeekBit reads the bit at the get cursor without advancing it. ok is false
// if the cursor is already at its upper bound.
func (b *BitBuffer) PeekBit() (bit uint8, ok bool) {
	if !b.mode.has(Readable) {
		panic(ErrNotReadable)
	}
	if b.AvailableGet() < 1 {
		return 0, false
	}
	return uint8(b.getBitsAt(b.g, 1)), true
}

// PutBits writes the low width bits of value starting at the put cursor and
// advances it by width on success. On overrun it returns 0 and writes
// nothing, matching GetBits's atomic-failure behavior.
func (b *BitBuffer) PutBits(width int, value uint64) (bitsWritten int) {
	if !b.mode.has(Writable) {
		panic(ErrNotWritable)
	}
	checkWidth(width)
	if width == 0 {
		return 0
	}
	if width > b.AvailablePut() {
		return 0
	}
	if width < 64 {
		value &= 1<<uint(width) - 1
	}
	b.putBitsAt(b.p, width, value)
	b.p += width
	return width
}

// PutBit writes a single bit (the value's LSB) at the put cursor.
func (b *BitBuffer) PutBit(bit uint8) (ok bool) {
	return b.PutBits(1, uint64(bit&1)) == 1
}

// SeekGet repositions the get cursor relative to whence and returns the new
// absolute position. Out-of-range results leave the cursor untouched.
func (b *BitBuffer) SeekGet(offset int, whence Whence) (int, error) {
	pos, err := b.resolveSeek(b.gBegin, b.g, b.gEnd, offset, whence)
	if err != nil {
		return 0, err
	}
	b.g = pos
	return pos, nil
}

// SeekPut is SeekGet's mirror for the put cursor.
func (b *BitBuffer) SeekPut(offset int, whence Whence) (int, error) {
	pos, err := b.resolveSeek(b.pBegin, b.p, b.pEnd, offset, whence)
	if err != nil {
		return 0, err
	}
	b.p = pos
	return pos, nil
}

func (b *BitBuffer) resolveSeek(begin, cur, end, offset int, whence Whence) (int, error) {
	var base int
	switch whence {
	case SeekBegin:
		base = begin
	case SeekCurrent:
		base = cur
	case SeekEnd:
		base = end
	default:
		return 0, errors.Errorf("bitstream: invalid whence %d", whence)
	}
	pos := base + offset
	if pos < begin || pos > end {
		return 0, errors.Wrapf(ErrSeekOutOfRange, "position %d not in [%d, %d]", pos, begin, end)
	}
	return pos, nil
}

// Putback moves the get cursor back one bit if, and only if, the bit at the
// resulting position equals expectedBit. It fails without moving the
// cursor otherwise.
func (b *BitBuffer) Putback(expectedBit uint8) error {
	if b.g <= b.gBegin {
		return ErrPutbackAtBegin
	}
	actual := uint8(b.getBitsAt(b.g-1, 1))
	if actual != expectedBit&1 {
		return ErrPutbackMismatch
	}
	b.g--
	return nil
}

// Sync always fails: there is no backing device to synchronize with,
// matching the teacher's own sync()-always-errors design in spirit ("we do
// not currently have an I/O device").
func (b *BitBuffer) Sync() error {
	return ErrNoSyncDevice
}

func (b *BitBuffer) dump() string {
	return fmt.Sprintf(
		"g=%d [%d,%d) p=%d [%d,%d) len=%dB mode=%02b",
		b.g, b.gBegin, b.gEnd, b.p, b.pBegin, b.pEnd, len(b.buf), b.mode,
	)
}
