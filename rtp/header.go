// Package rtp is an example consumer of github.com/dplong/bitstream: it
// decodes and encodes an RTP header, including the CSRC list and the
// optional extension header sketched in the original C++ source's own
// doc comment (original_source/bitstream/bstream.h's RtpHeader/
// ParseRtpHeader example). It plays the same "runnable documentation"
// role the teacher's doc_test.go plays for bearmini-bitstream-go, just
// promoted to its own package since the RTP header is a large enough
// worked example to want its own tests.
package rtp

import "github.com/dplong/bitstream"

// Version is the current RTP version number. Decode does not check the
// decoded version field against it.
const Version = 2

// ExtensionHeader is RTP's optional profile-specific extension: a 16-bit
// profile identifier followed by a length-prefixed list of 32-bit words.
type ExtensionHeader struct {
	Profile uint16
	Data    []uint32
}

// Header is a parsed RTP fixed header plus its variable-length CSRC list
// and optional extension.
type Header struct {
	Version        uint8
	Padding        bool
	HasExtension   bool
	Marker         bool
	PayloadType    uint8
	SequenceNumber uint16
	Timestamp      uint32
	SSRC           uint32
	CSRC           []uint32
	Extension      *ExtensionHeader
}

func decodeUint32(in *bitstream.InputStream) uint32 {
	return bitstream.ReadUint[uint32](in, 32)
}

func encodeUint32(out *bitstream.OutputStream, v uint32) {
	bitstream.WriteUint(out, v, 32)
}

// Decode parses an RTP header from buf's leading bits and returns both the
// parsed header and the InputStream used, so a caller can inspect
// in.Ok()/in.Fail() with a single check to decide whether the whole message
// decoded cleanly.
func Decode(buf []byte) (*Header, *bitstream.InputStream) {
	bb := bitstream.NewBitBuffer(buf, bitstream.Readable)
	in := bitstream.NewInputStream(bb)
	h := &Header{}

	h.Version = bitstream.ReadUint[uint8](in, 2)
	h.Padding = in.ReadBool()
	h.HasExtension = in.ReadBool()
	csrcCount := bitstream.ReadUint[uint8](in, 4)
	h.Marker = in.ReadBool()
	h.PayloadType = bitstream.ReadUint[uint8](in, 7)
	h.SequenceNumber = bitstream.ReadUint[uint16](in, 16)
	h.Timestamp = bitstream.ReadUint[uint32](in, 32)
	h.SSRC = bitstream.ReadUint[uint32](in, 32)

	in.Apply(bitstream.SetRepeat(int(csrcCount)))
	bitstream.ReadContainer(in, &h.CSRC, decodeUint32)

	if h.HasExtension {
		ext := &ExtensionHeader{}
		ext.Profile = bitstream.ReadUint[uint16](in, 16)
		length := bitstream.ReadUint[uint16](in, 16)
		in.Apply(bitstream.SetRepeat(int(length)))
		bitstream.ReadContainer(in, &ext.Data, decodeUint32)
		h.Extension = ext
	}

	return h, in
}

// EncodedSize returns the number of bytes Encode needs to serialize h.
func EncodedSize(h *Header) int {
	bits := 2 + 1 + 1 + 4 + 1 + 7 + 16 + 32 + 32 + 32*len(h.CSRC)
	if h.HasExtension && h.Extension != nil {
		bits += 16 + 16 + 32*len(h.Extension.Data)
	}
	return (bits + 7) / 8
}

// Encode serializes h into buf, which must be at least EncodedSize(h)
// bytes long, and returns the OutputStream used so the caller can check
// Ok()/Fail().
func Encode(h *Header, buf []byte) *bitstream.OutputStream {
	bb := bitstream.NewBitBuffer(buf, bitstream.Writable)
	out := bitstream.NewOutputStream(bb)

	bitstream.WriteUint(out, h.Version, 2)
	out.WriteBool(h.Padding)
	out.WriteBool(h.HasExtension)
	bitstream.WriteUint(out, uint8(len(h.CSRC)), 4)
	out.WriteBool(h.Marker)
	bitstream.WriteUint(out, h.PayloadType, 7)
	bitstream.WriteUint(out, h.SequenceNumber, 16)
	bitstream.WriteUint(out, h.Timestamp, 32)
	bitstream.WriteUint(out, h.SSRC, 32)

	bitstream.WriteContainer(out, h.CSRC, encodeUint32)

	if h.HasExtension && h.Extension != nil {
		bitstream.WriteUint(out, h.Extension.Profile, 16)
		bitstream.WriteUint(out, uint16(len(h.Extension.Data)), 16)
		bitstream.WriteContainer(out, h.Extension.Data, encodeUint32)
	}

	return out
}
