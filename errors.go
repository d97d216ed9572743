package bitstream

import "github.com/pkg/errors"

// Sentinel errors returned (or panicked with) by BitBuffer's per-operation
// calls. Field-level stream operations inspect them and convert them into a
// sticky state flag (see state.go); InputStream/OutputStream's Seek and
// SeekWhence pass the seek error through to their caller unchanged.
var (
	// ErrWidthOutOfRange is the value checkWidth panics with (wrapped via
	// errors.Wrapf) when a requested field width is negative or exceeds the
	// machine bit-field width (64).
	ErrWidthOutOfRange = errors.New("bitstream: width out of range")

	// ErrSeekOutOfRange is returned by SeekGet/SeekPut when the computed
	// position falls outside [begin, end].
	ErrSeekOutOfRange = errors.New("bitstream: seek out of range")

	// ErrNoSyncDevice is always returned by Sync: there is no backing
	// device to synchronize with.
	ErrNoSyncDevice = errors.New("bitstream: no backing device to sync")

	// ErrPutbackMismatch is returned by BitBuffer.Putback when the bit at
	// the position being backed over does not match the expected bit.
	ErrPutbackMismatch = errors.New("bitstream: putback bit mismatch")

	// ErrPutbackAtBegin is returned by BitBuffer.Putback when the get
	// cursor is already at its lower bound.
	ErrPutbackAtBegin = errors.New("bitstream: cannot putback at beginning of range")

	// ErrNotReadable/ErrNotWritable are the values BitBuffer panics with
	// when a get or put operation is attempted on a BitBuffer opened
	// without that capability.
	ErrNotReadable = errors.New("bitstream: buffer is not readable")
	ErrNotWritable = errors.New("bitstream: buffer is not writable")
)
