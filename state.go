package bitstream

// State is the sticky three-flag error mask shared by InputStream and
// OutputStream, the Go analog of the original C++ source's
// std::ios_base::iostate (see original_source/bitstream/bstream.h's
// ibitstream::rdstate/setstate/clear).
type State uint8

const (
	// StateGood is the zero value: no flag set.
	StateGood State = 0

	// StateEOF marks that the last operation reached the end of the
	// accessible sequence.
	StateEOF State = 1 << 0

	// StateFail marks that the last operation could not complete as
	// requested (underrun, overrun, or an expected-value mismatch).
	StateFail State = 1 << 1

	// StateBad marks that integrity was lost (e.g. a putback saw an
	// unexpected bit).
	StateBad State = 1 << 2
)

// StreamState is the sticky error-flag base embedded by InputStream and
// OutputStream. Flags combine by set union and are never cleared except by
// an explicit Clear call.
type StreamState struct {
	state State
}

// Good reports whether no flag is set.
func (s *StreamState) Good() bool { return s.state == StateGood }

// Fail reports whether StateFail or StateBad is set: fail encompasses bad.
func (s *StreamState) Fail() bool { return s.state&(StateFail|StateBad) != 0 }

// Bad reports whether StateBad is set.
func (s *StreamState) Bad() bool { return s.state&StateBad != 0 }

// EOF reports whether StateEOF is set.
func (s *StreamState) EOF() bool { return s.state&StateEOF != 0 }

// Ok reports the stream's boolean-cast/negation contract: true exactly when
// Fail() is false. Named Ok rather than overloading a bool conversion, since
// Go has no implicit boolean coercion of struct values.
func (s *StreamState) Ok() bool { return !s.Fail() }

// RDState returns the raw flag mask, mirroring the original's rdstate().
func (s *StreamState) RDState() State { return s.state }

// SetState additively merges flags into the current state; existing flags
// are never cleared by this call.
func (s *StreamState) SetState(flags State) { s.state |= flags }

// Clear resets the state to flags (StateGood by default), the only way any
// sticky flag is ever unset.
func (s *StreamState) Clear(flags ...State) {
	var f State
	for _, x := range flags {
		f |= x
	}
	s.state = f
}

func (s *StreamState) setFail() { s.SetState(StateFail) }
func (s *StreamState) setBad()  { s.SetState(StateBad) }
func (s *StreamState) setEOF()  { s.SetState(StateEOF) }
