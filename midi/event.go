package midi

// MIDI message types
const (
	NoteOn  uint8 = 0x90
	NoteOff uint8 = 0x80
	CC      uint8 = 0xB0
)

// EventKind says what a controller gesture means for a harmonic
type EventKind int

const (
	KnobTurn   EventKind = iota // set the target amplitude
	KnobTouch                   // start highlighting
	KnobRelease                 // stop highlighting
)

// Event is a controller gesture already mapped onto a harmonic
type Event struct {
	Kind     EventKind
	Harmonic int
	Value    float64 // target in [-1,1], KnobTurn only
	Source   string  // controller ID
}

// Mapping assigns CC numbers and notes to harmonics. Harmonic i listens
// on CC BaseCC+i and note BaseNote+i.
type Mapping struct {
	Channel  int // 0-15, or -1 for any channel
	BaseCC   uint8
	BaseNote uint8
	Count    int
}

// DefaultMapping covers the general purpose controllers CC 20-31
func DefaultMapping(count int) Mapping {
	return Mapping{Channel: -1, BaseCC: 20, BaseNote: 36, Count: count}
}

// CCValue maps a 7-bit controller value onto [-1,1]
func CCValue(v uint8) float64 {
	if v > 127 {
		v = 127
	}
	return float64(v)/127*2 - 1
}

func (m Mapping) channelOK(ch uint8) bool {
	return m.Channel < 0 || int(ch) == m.Channel
}

// ControlChange maps a CC message to a knob turn
func (m Mapping) ControlChange(ch, cc, value uint8) (Event, bool) {
	if !m.channelOK(ch) || cc < m.BaseCC {
		return Event{}, false
	}
	idx := int(cc - m.BaseCC)
	if idx >= m.Count {
		return Event{}, false
	}
	return Event{Kind: KnobTurn, Harmonic: idx, Value: CCValue(value)}, true
}

// Note maps note on/off to touch/release. A note on with velocity 0 is a
// release, as running-status senders use it.
func (m Mapping) Note(ch, note, velocity uint8, on bool) (Event, bool) {
	if !m.channelOK(ch) || note < m.BaseNote {
		return Event{}, false
	}
	idx := int(note - m.BaseNote)
	if idx >= m.Count {
		return Event{}, false
	}
	kind := KnobRelease
	if on && velocity > 0 {
		kind = KnobTouch
	}
	return Event{Kind: kind, Harmonic: idx}, true
}
