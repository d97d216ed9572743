package bitstream

import "testing"

func TestWriteBasicFields(t *testing.T) {
	buf := make([]byte, 2)
	out := NewOutputStream(NewBitBuffer(buf, Writable))

	WriteUint(out, uint8(0b1011), 4)
	WriteUint(out, uint8(0b0111), 4)
	if !out.Good() {
		t.Fatalf("expected good stream, state=%v", out.RDState())
	}
	if buf[0] != 0xB7 {
		t.Fatalf("buf[0] = %#x, want 0xB7", buf[0])
	}
}

func TestWriteOverrunSetsFail(t *testing.T) {
	buf := make([]byte, 1)
	out := NewOutputStream(NewBitBuffer(buf, Writable))
	out.Write(0xFF, 16)
	if !out.Fail() {
		t.Fatalf("expected fail on write overrun")
	}
}

func TestWriteExactFitDoesNotSetEOF(t *testing.T) {
	buf := make([]byte, 1)
	out := NewOutputStream(NewBitBuffer(buf, Writable))
	out.Write(0xFF, 8)
	if out.EOF() {
		t.Fatalf("write side should not set eof on exact fit (only the read side does)")
	}
	if !out.Good() {
		t.Fatalf("expected good after exact-fit write")
	}
}

func TestWriteBoolAndBitSet(t *testing.T) {
	buf := make([]byte, 1)
	out := NewOutputStream(NewBitBuffer(buf, Writable))
	out.WriteBool(true)
	out.WriteBitSet(NewBitSet(3, 0b101))
	out.WriteBool(false)
	if buf[0] != 0b11010000 {
		t.Fatalf("buf[0] = %08b, want 11010000", buf[0])
	}
}

func TestOutputAlignWritesZeroBits(t *testing.T) {
	buf := []byte{0xFF, 0xFF}
	out := NewOutputStream(NewBitBuffer(buf, Writable))
	out.Write(0b101, 3)
	out.Align(8)
	if out.Tell() != 8 {
		t.Fatalf("Tell() = %d, want 8", out.Tell())
	}
	if buf[0] != 0b10100000 {
		t.Fatalf("buf[0] = %08b, want 10100000", buf[0])
	}
}

func TestOutputAlignedPredicate(t *testing.T) {
	buf := make([]byte, 2)
	out := NewOutputStream(NewBitBuffer(buf, Writable))
	if !out.Aligned(8) {
		t.Fatalf("fresh output stream should be aligned to 8")
	}
	out.Write(0, 3)
	if out.Aligned(8) {
		t.Fatalf("stream at bit 3 should not be aligned to 8")
	}
}

func TestOutputSeekAndTell(t *testing.T) {
	buf := make([]byte, 2)
	out := NewOutputStream(NewBitBuffer(buf, Writable))
	if _, err := out.Seek(4); err != nil {
		t.Fatalf("Seek(4) failed: %v", err)
	}
	if out.Tell() != 4 {
		t.Fatalf("Tell() = %d, want 4", out.Tell())
	}
}

func TestFlushIsNoOp(t *testing.T) {
	buf := make([]byte, 1)
	out := NewOutputStream(NewBitBuffer(buf, Writable))
	if err := out.Flush(); err != nil {
		t.Fatalf("Flush() = %v, want nil", err)
	}
}
