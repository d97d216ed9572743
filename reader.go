package bitstream

// InputStream is the field-level, get-side façade over a BitBuffer. It is
// the generalized, cursor-based descendant of the teacher's io.Reader-backed
// Reader: instead of buffering chunks read from an io.Reader, it borrows a
// BitBuffer that already addresses the whole in-memory region, and instead
// of returning a Go error from every call it accumulates sticky flags on
// its embedded StreamState.
type InputStream struct {
	StreamState

	buf    *BitBuffer
	gcount int
	gvalue uint64
	repeat int
}

// NewInputStream creates an InputStream over buf. buf must have been opened
// with the Readable capability.
func NewInputStream(buf *BitBuffer) *InputStream {
	return &InputStream{buf: buf}
}

// Buffer exposes the underlying BitBuffer, e.g. for a caller that wants to
// inspect AvailableGet() directly instead of going through GCount.
func (in *InputStream) Buffer() *BitBuffer { return in.buf }

// GCount returns the number of bits actually read by the last Read/ReadSome
// call. It is only meaningful when greater than zero.
func (in *InputStream) GCount() int { return in.gcount }

// GValue returns the value read by the last successful Read/ReadSome call.
func (in *InputStream) GValue() uint64 { return in.gvalue }

// Read reads exactly width bits (0 <= width <= 64). On success it updates
// GValue/GCount and returns the right-justified value. On underrun it sets
// fail and eof, zeroes GValue, sets GCount to 0, and returns 0.
func (in *InputStream) Read(width int) uint64 {
	if width == 0 {
		in.gcount = 0
		return 0
	}
	v, n := in.buf.GetBits(width)
	if n == 0 {
		in.gvalue = 0
		in.gcount = 0
		in.setFail()
		in.setEOF()
		return 0
	}
	in.gvalue = v
	in.gcount = n
	if in.buf.AvailableGet() == 0 {
		// exact-fit read: eof without fail.
		in.setEOF()
	}
	return v
}

// ReadSome is documented by the original C++ source (ibitstream::readsome)
// to behave identically to Read for an in-memory, non-device-backed buffer;
// this module keeps that equivalence rather than reintroducing a distinct
// short-read mode.
func (in *InputStream) ReadSome(width int) uint64 { return in.Read(width) }

// Get is a convenience for Read(1).
func (in *InputStream) Get() uint8 { return uint8(in.Read(1)) }

// Ignore advances the get cursor by n bits without touching GValue. On
// underrun it advances as far as possible and sets eof, rather than failing
// atomically like Read: Ignore has no value to preserve, so a partial skip
// is more useful to a caller than none at all.
func (in *InputStream) Ignore(n int) {
	if n <= 0 {
		in.gcount = 0
		return
	}
	avail := in.buf.AvailableGet()
	if n >= avail {
		in.buf.SeekGet(avail, SeekCurrent)
		in.setEOF()
	} else {
		in.buf.SeekGet(n, SeekCurrent)
	}
	in.gcount = 0
}

// Align advances the get cursor to the next multiple of m bits. It is a
// no-op when the stream is not Good() or when m is 0, and it always resets
// GCount to 0.
func (in *InputStream) Align(m int) {
	in.gcount = 0
	if m == 0 || !in.Good() {
		return
	}
	pos := in.buf.GetPos()
	if rem := pos % m; rem != 0 {
		in.Ignore(m - rem)
	}
}

// Aligned reports whether the get cursor sits on a multiple of m bits. Every
// position is considered aligned to 0, matching Align's own m == 0 no-op.
func (in *InputStream) Aligned(m int) bool {
	if m == 0 {
		return true
	}
	return in.buf.GetPos()%m == 0
}

// Peek reads the next bit without advancing the cursor. It sets eof on
// underrun.
func (in *InputStream) Peek() uint8 {
	bit, ok := in.buf.PeekBit()
	if !ok {
		in.setEOF()
		return 0
	}
	return bit
}

// Unget moves the get cursor back one bit. It sets fail if the cursor is
// already at the beginning of its accessible range.
func (in *InputStream) Unget() {
	if _, err := in.buf.SeekGet(-1, SeekCurrent); err != nil {
		in.setFail()
	}
}

// Putback is like Unget, but additionally asserts that the bit at the new
// position equals bit; a mismatch sets bad instead of moving the cursor
// back.
func (in *InputStream) Putback(bit uint8) {
	switch in.buf.Putback(bit) {
	case nil:
	case ErrPutbackAtBegin:
		in.setFail()
	case ErrPutbackMismatch:
		in.setBad()
	}
}

// Tell returns the current bit position of the get cursor.
func (in *InputStream) Tell() int { return in.buf.GetPos() }

// Seek moves the get cursor to an absolute bit position.
func (in *InputStream) Seek(position int) (int, error) {
	return in.buf.SeekGet(position, SeekBegin)
}

// SeekWhence moves the get cursor by offset bits relative to whence.
func (in *InputStream) SeekWhence(offset int, whence Whence) (int, error) {
	return in.buf.SeekGet(offset, whence)
}

// Repeat stores the repeat count consulted by the next container
// extraction; it does not touch the cursor. Applying it twice in a row
// simply overwrites the earlier value.
func (in *InputStream) Repeat(count int) { in.repeat = count }

// --- Extraction operator family --------------------------------------------

// ReadBool reads a single bit and reports whether it is nonzero.
func (in *InputStream) ReadBool() bool {
	return in.Read(1) != 0
}

// ExpectBool reads a single bit and sets fail if it differs from want.
func (in *InputStream) ExpectBool(want bool) {
	got := in.ReadBool()
	if in.gcount == 0 {
		return
	}
	if got != want {
		in.setFail()
	}
}

// ReadBitSet reads width bits into a fixed-width BitSet.
func (in *InputStream) ReadBitSet(width int) BitSet {
	v := in.Read(width)
	return BitSet{Value: v, Width: width}
}

// ExpectBitSet reads want.Width bits and sets fail if they do not equal
// want.
func (in *InputStream) ExpectBitSet(want BitSet) {
	got := in.ReadBitSet(want.Width)
	if in.gcount == 0 {
		return
	}
	if !got.Equal(want) {
		in.setFail()
	}
}

// Unsigned is the type constraint accepted by ReadUint/ExpectUint: any
// unsigned integer type may serve as the destination of a fixed-width field
// extraction.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// ReadUint reads width bits (0 < width <= 64, and width must not exceed T's
// own bit width) and right-justifies them into T. Sign extension, if any,
// is the caller's responsibility.
func ReadUint[T Unsigned](in *InputStream, width int) T {
	return T(in.Read(width))
}

// ExpectUint reads width bits into T and sets fail if the value differs
// from want.
func ExpectUint[T Unsigned](in *InputStream, width int, want T) {
	got := ReadUint[T](in, width)
	if in.gcount == 0 {
		return
	}
	if got != want {
		in.setFail()
	}
}
