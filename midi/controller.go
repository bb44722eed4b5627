package midi

import (
	"fmt"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"

	"wave-playground/debug"
)

// Controller is a MIDI input whose knobs drive harmonics
type Controller interface {
	ID() string
	Events() <-chan Event
	Close() error
}

// KnobController listens to one input port and maps its messages
type KnobController struct {
	id       string
	inPort   drivers.In
	mapping  Mapping
	stopFunc func()
	events   chan Event
}

// NewKnobController opens inPort and starts translating messages
func NewKnobController(id string, inPort drivers.In, mapping Mapping) (*KnobController, error) {
	kc := &KnobController{
		id:      id,
		inPort:  inPort,
		mapping: mapping,
		events:  make(chan Event, 64),
	}

	if inPort != nil {
		stop, err := gomidi.ListenTo(inPort, func(msg gomidi.Message, timestampms int32) {
			if ev, ok := kc.translate(msg); ok {
				kc.emit(ev)
			}
		})
		if err != nil {
			return nil, fmt.Errorf("open input %s: %w", id, err)
		}
		kc.stopFunc = stop
	}

	return kc, nil
}

func (kc *KnobController) translate(msg gomidi.Message) (Event, bool) {
	var channel, key, velocity, cc, value uint8
	switch {
	case msg.GetControlChange(&channel, &cc, &value):
		return kc.mapping.ControlChange(channel, cc, value)
	case msg.GetNoteOn(&channel, &key, &velocity):
		return kc.mapping.Note(channel, key, velocity, true)
	case msg.GetNoteOff(&channel, &key, &velocity):
		return kc.mapping.Note(channel, key, velocity, false)
	}
	return Event{}, false
}

// emit drops events when the UI falls behind; knob positions are absolute
// so the next turn catches up.
func (kc *KnobController) emit(ev Event) {
	ev.Source = kc.id
	select {
	case kc.events <- ev:
	default:
		debug.LogEvery(16, "midi", "dropped event from %s", kc.id)
	}
}

func (kc *KnobController) ID() string {
	return kc.id
}

func (kc *KnobController) Events() <-chan Event {
	return kc.events
}

func (kc *KnobController) Close() error {
	if kc.stopFunc != nil {
		kc.stopFunc()
	}
	close(kc.events)
	return nil
}
