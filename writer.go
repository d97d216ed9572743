package bitstream

// OutputStream is the field-level, put-side façade over a BitBuffer,
// symmetric to InputStream. It is the generalized descendant of the
// teacher's io.Writer-backed Writer, restructured over a borrowed,
// in-memory BitBuffer instead of a chunk-at-a-time io.Writer.
type OutputStream struct {
	StreamState

	buf    *BitBuffer
	repeat int
}

// NewOutputStream creates an OutputStream over buf. buf must have been
// opened with the Writable capability.
func NewOutputStream(buf *BitBuffer) *OutputStream {
	return &OutputStream{buf: buf}
}

// Buffer exposes the underlying BitBuffer.
func (out *OutputStream) Buffer() *BitBuffer { return out.buf }

// Write writes exactly width bits of value. On overrun it sets fail and
// writes nothing, matching BitBuffer.PutBits's atomic-failure contract.
func (out *OutputStream) Write(value uint64, width int) {
	if width == 0 {
		return
	}
	if n := out.buf.PutBits(width, value); n == 0 {
		out.setFail()
	}
}

// Put writes a single bit (the value's LSB).
func (out *OutputStream) Put(bit uint8) { out.Write(uint64(bit&1), 1) }

// Align advances the put cursor to the next multiple of m bits by writing
// zero bits, mirroring InputStream.Align's skip. It is a no-op when the
// stream is not Good() or m is 0.
func (out *OutputStream) Align(m int) {
	if m == 0 || !out.Good() {
		return
	}
	pos := out.buf.PutPos()
	if rem := pos % m; rem != 0 {
		need := m - rem
		for need > 0 {
			chunk := need
			if chunk > maxWidth {
				chunk = maxWidth
			}
			if n := out.buf.PutBits(chunk, 0); n == 0 {
				out.setFail()
				return
			}
			need -= chunk
		}
	}
}

// Aligned reports whether the put cursor sits on a multiple of m bits.
func (out *OutputStream) Aligned(m int) bool {
	if m == 0 {
		return true
	}
	return out.buf.PutPos()%m == 0
}

// Seek moves the put cursor to an absolute bit position.
func (out *OutputStream) Seek(position int) (int, error) {
	return out.buf.SeekPut(position, SeekBegin)
}

// SeekWhence moves the put cursor by offset bits relative to whence.
func (out *OutputStream) SeekWhence(offset int, whence Whence) (int, error) {
	return out.buf.SeekPut(offset, whence)
}

// Tell returns the current bit position of the put cursor.
func (out *OutputStream) Tell() int { return out.buf.PutPos() }

// Repeat stores the repeat count. Container insertion always writes exactly
// len(src) elements regardless of Repeat; Repeat exists on OutputStream
// purely for API symmetry with InputStream and for manipulator chains
// shared between read and write call sites.
func (out *OutputStream) Repeat(count int) { out.repeat = count }

// Flush is a no-op, present for compositional symmetry with InputStream and
// with the original C++ source's ostream::flush: there is no backing device
// to flush to.
func (out *OutputStream) Flush() error { return nil }

// --- Insertion operator family ----------------------------------------------

// WriteBool writes a single bit: 1 if v, 0 otherwise.
func (out *OutputStream) WriteBool(v bool) {
	var b uint64
	if v {
		b = 1
	}
	out.Write(b, 1)
}

// WriteExpectedBool mirrors InputStream.ExpectBool's extraction kind. On
// the producing side there is nothing to compare against, so it writes
// exactly what ReadBool would need to see; it exists for API symmetry, not
// because it differs from WriteBool.
func (out *OutputStream) WriteExpectedBool(v bool) { out.WriteBool(v) }

// WriteBitSet writes bs.Width bits of bs.Value.
func (out *OutputStream) WriteBitSet(bs BitSet) {
	out.Write(bs.Value, bs.Width)
}

// WriteExpectedBitSet mirrors ExpectBitSet; see WriteExpectedBool.
func (out *OutputStream) WriteExpectedBitSet(bs BitSet) { out.WriteBitSet(bs) }

// WriteUint writes the low width bits of v.
func WriteUint[T Unsigned](out *OutputStream, v T, width int) {
	out.Write(uint64(v), width)
}

// WriteExpectedUint mirrors ExpectUint; see WriteExpectedBool.
func WriteExpectedUint[T Unsigned](out *OutputStream, v T, width int) {
	WriteUint(out, v, width)
}
