package bitstream

import "testing"

func TestReadBasicFields(t *testing.T) {
	buf := []byte{0xB7, 0x40} // 1011 0111 0100 0000
	in := NewInputStream(NewBitBuffer(buf, Readable))

	if got := ReadUint[uint8](in, 4); got != 0b1011 {
		t.Fatalf("first nibble = %#b, want 0b1011", got)
	}
	if in.GCount() != 4 {
		t.Fatalf("GCount() = %d, want 4", in.GCount())
	}
	if got := ReadUint[uint8](in, 4); got != 0b0111 {
		t.Fatalf("second nibble = %#b, want 0b0111", got)
	}
	if !in.Good() {
		t.Fatalf("stream should still be good, state=%v", in.RDState())
	}
}

func TestReadZeroWidthIsNoOp(t *testing.T) {
	buf := []byte{0xFF}
	in := NewInputStream(NewBitBuffer(buf, Readable))
	got := in.Read(0)
	if got != 0 || in.GCount() != 0 {
		t.Fatalf("Read(0) = (%d, gcount=%d), want (0, 0)", got, in.GCount())
	}
	if in.Tell() != 0 {
		t.Fatalf("Tell() = %d, want 0 (zero-width read must not advance)", in.Tell())
	}
}

func TestReadExactFitSetsEOFNotFail(t *testing.T) {
	buf := []byte{0xFF}
	in := NewInputStream(NewBitBuffer(buf, Readable))
	in.Read(8)
	if !in.EOF() {
		t.Fatalf("expected eof after exact-fit read")
	}
	if in.Fail() {
		t.Fatalf("exact-fit read must not set fail")
	}
}

func TestReadOverrunSetsEOFAndFailAtomically(t *testing.T) {
	buf := []byte{0xFF}
	in := NewInputStream(NewBitBuffer(buf, Readable))
	before := in.Tell()
	got := in.Read(16)
	if got != 0 {
		t.Fatalf("Read overrun returned %#x, want 0", got)
	}
	if !in.EOF() || !in.Fail() {
		t.Fatalf("expected both eof and fail set on overrun")
	}
	if in.Tell() != before {
		t.Fatalf("Tell() = %d after failed read, want unchanged %d", in.Tell(), before)
	}
}

func TestReadBoolAndExpectBool(t *testing.T) {
	buf := []byte{0b10000000}
	in := NewInputStream(NewBitBuffer(buf, Readable))
	if !in.ReadBool() {
		t.Fatalf("expected true from leading 1 bit")
	}

	buf2 := []byte{0b01000000}
	in2 := NewInputStream(NewBitBuffer(buf2, Readable))
	in2.ExpectBool(true) // actual leading bit is 0
	if !in2.Fail() {
		t.Fatalf("expected fail on ExpectBool mismatch")
	}
	if in2.Tell() != 1 {
		t.Fatalf("Tell() = %d, want 1 (cursor still advances on mismatch)", in2.Tell())
	}
}

func TestExpectUintMismatch(t *testing.T) {
	buf := []byte{0b01000000} // leading 2 bits = 01
	in := NewInputStream(NewBitBuffer(buf, Readable))
	ExpectUint[uint8](in, 2, 0b10)
	if !in.Fail() {
		t.Fatalf("expected fail on ExpectUint mismatch")
	}
	if in.Bad() {
		t.Fatalf("value mismatch should set fail, not bad")
	}
	if in.Tell() != 2 {
		t.Fatalf("Tell() = %d, want 2", in.Tell())
	}
}

func TestIgnorePartialAdvanceOnUnderrun(t *testing.T) {
	buf := []byte{0xFF}
	in := NewInputStream(NewBitBuffer(buf, Readable))
	in.Ignore(20)
	if in.Tell() != 8 {
		t.Fatalf("Tell() = %d, want 8 (ignore should advance as far as possible)", in.Tell())
	}
	if !in.EOF() {
		t.Fatalf("expected eof after ignore overrun")
	}
	if in.Fail() {
		t.Fatalf("ignore overrun should not set fail")
	}
}

func TestAlignAdvancesToNextMultiple(t *testing.T) {
	buf := []byte{0xFF, 0xFF, 0xFF}
	in := NewInputStream(NewBitBuffer(buf, Readable))
	in.Read(3)
	in.Align(8)
	if in.Tell() != 8 {
		t.Fatalf("Tell() = %d, want 8", in.Tell())
	}
	in.Align(8) // already aligned: no-op
	if in.Tell() != 8 {
		t.Fatalf("Tell() = %d after no-op align, want unchanged 8", in.Tell())
	}
}

func TestAlignedPredicate(t *testing.T) {
	buf := []byte{0xFF, 0xFF}
	in := NewInputStream(NewBitBuffer(buf, Readable))
	if !in.Aligned(8) {
		t.Fatalf("fresh stream should be aligned to 8")
	}
	in.Read(3)
	if in.Aligned(8) {
		t.Fatalf("stream at bit 3 should not be aligned to 8")
	}
	if !in.Aligned(0) {
		t.Fatalf("Aligned(0) should always be true")
	}
}

func TestUngetAndPutback(t *testing.T) {
	buf := []byte{0x80}
	in := NewInputStream(NewBitBuffer(buf, Readable))
	bit := in.Get()
	if bit != 1 {
		t.Fatalf("Get() = %d, want 1", bit)
	}
	in.Unget()
	if in.Tell() != 0 {
		t.Fatalf("Tell() = %d after Unget, want 0", in.Tell())
	}

	in.Get()
	in.Putback(0) // wrong bit: should set bad, not move cursor
	if !in.Bad() {
		t.Fatalf("expected bad after putback mismatch")
	}
	if in.Tell() != 1 {
		t.Fatalf("Tell() = %d after mismatched putback, want unchanged 1", in.Tell())
	}
}

func TestSeekAndTell(t *testing.T) {
	buf := []byte{0xFF, 0xFF}
	in := NewInputStream(NewBitBuffer(buf, Readable))
	if _, err := in.Seek(5); err != nil {
		t.Fatalf("Seek(5) failed: %v", err)
	}
	if in.Tell() != 5 {
		t.Fatalf("Tell() = %d, want 5", in.Tell())
	}
	if _, err := in.SeekWhence(2, SeekCurrent); err != nil {
		t.Fatalf("SeekWhence failed: %v", err)
	}
	if in.Tell() != 7 {
		t.Fatalf("Tell() = %d, want 7", in.Tell())
	}
}
