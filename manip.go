package bitstream

// InputManipulator carries a stream-mutating instruction that can be
// applied to an InputStream mid-expression, the Go analog of the original
// C++ source's setrepeat/ignore/aligng manipulator classes
// (original_source/bitstream/bstream.h), each a value type holding one
// parameter and an operator() that mutates the stream. Go has no operator>>
// overload to hang the call off of, so InputStream.Apply plays that role.
type InputManipulator interface {
	applyIn(*InputStream)
}

// OutputManipulator is InputManipulator's write-side counterpart.
type OutputManipulator interface {
	applyOut(*OutputStream)
}

// SetRepeat sets the stream's repeat count for the next container
// extraction; container insertion does not consult it. Applying it twice back-to-back is idempotent — the
// second application simply overwrites the count the first one set, and
// either way only the next container read consumes it.
type SetRepeat int

func (m SetRepeat) applyIn(in *InputStream)    { in.Repeat(int(m)) }
func (m SetRepeat) applyOut(out *OutputStream) { out.Repeat(int(m)) }

// IgnoreBits skips n bits on the input side. Ignore's write-side meaning is
// left undefined, so it implements only InputManipulator.
type IgnoreBits int

func (m IgnoreBits) applyIn(in *InputStream) { in.Ignore(int(m)) }

// AlignTo advances the cursor to the next multiple of m bits.
type AlignTo int

func (m AlignTo) applyIn(in *InputStream)    { in.Align(int(m)) }
func (m AlignTo) applyOut(out *OutputStream) { out.Align(int(m)) }

// Apply runs an InputManipulator against in and returns in, so calls chain
// the way the original's operator>> chaining did:
//
//	ReadContainer(in.Apply(SetRepeat(4)), &dst, decode)
func (in *InputStream) Apply(m InputManipulator) *InputStream {
	m.applyIn(in)
	return in
}

// Apply runs an OutputManipulator against out and returns out.
func (out *OutputStream) Apply(m OutputManipulator) *OutputStream {
	m.applyOut(out)
	return out
}
