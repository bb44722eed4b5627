package midi

import (
	"context"
	"strings"
	"sync"
	"time"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"

	"wave-playground/debug"
)

// DeviceEvent is emitted when controllers connect/disconnect
type DeviceEvent struct {
	Type DeviceEventType
	ID   string
}

type DeviceEventType int

const (
	DeviceConnected DeviceEventType = iota
	DeviceDisconnected
)

// DeviceManager handles hot-plug detection of knob controllers and merges
// their events into one stream.
type DeviceManager struct {
	controllers map[string]Controller
	mu          sync.RWMutex
	events      chan DeviceEvent
	controls    chan Event
	pollRate    time.Duration
	mapping     Mapping
	filter      string

	// listPorts is swapped out in tests
	listPorts func() []drivers.In
	open      func(id string, in drivers.In, m Mapping) (Controller, error)
}

// NewDeviceManager creates a manager for ports whose name contains filter
// (case-insensitive, empty matches every port).
func NewDeviceManager(mapping Mapping, filter string) *DeviceManager {
	return &DeviceManager{
		controllers: make(map[string]Controller),
		events:      make(chan DeviceEvent, 16),
		controls:    make(chan Event, 128),
		pollRate:    time.Second,
		mapping:     mapping,
		filter:      strings.ToLower(filter),
		listPorts:   func() []drivers.In { return gomidi.GetInPorts() },
		open: func(id string, in drivers.In, m Mapping) (Controller, error) {
			return NewKnobController(id, in, m)
		},
	}
}

// Events returns a channel of device connect/disconnect events
func (dm *DeviceManager) Events() <-chan DeviceEvent {
	return dm.events
}

// Controls returns the merged knob events of every connected controller
func (dm *DeviceManager) Controls() <-chan Event {
	return dm.controls
}

// Controllers returns the IDs of connected controllers
func (dm *DeviceManager) Controllers() []string {
	dm.mu.RLock()
	defer dm.mu.RUnlock()
	ids := make([]string, 0, len(dm.controllers))
	for id := range dm.controllers {
		ids = append(ids, id)
	}
	return ids
}

// Run starts the polling loop (blocking - run in goroutine)
func (dm *DeviceManager) Run(ctx context.Context) {
	ticker := time.NewTicker(dm.pollRate)
	defer ticker.Stop()

	// Initial scan
	dm.scan()

	for {
		select {
		case <-ctx.Done():
			dm.closeAll()
			close(dm.events)
			return
		case <-ticker.C:
			dm.scan()
		}
	}
}

func (dm *DeviceManager) scan() {
	// Port listing can hang on some backends, so bound it
	ch := make(chan []drivers.In, 1)
	go func() {
		ch <- dm.listPorts()
	}()

	var inPorts []drivers.In
	select {
	case inPorts = <-ch:
	case <-time.After(3 * time.Second):
		debug.Log("midi", "port scan timed out")
		return
	}

	seenIDs := make(map[string]bool)
	for _, inPort := range inPorts {
		id := inPort.String()
		if !dm.Matches(id) {
			continue
		}
		seenIDs[id] = true

		dm.mu.RLock()
		_, exists := dm.controllers[id]
		dm.mu.RUnlock()
		if exists {
			continue
		}

		ctrl, err := dm.open(id, inPort, dm.mapping)
		if err != nil {
			debug.Log("midi", "skipping %s: %v", id, err)
			continue
		}

		dm.mu.Lock()
		dm.controllers[id] = ctrl
		dm.mu.Unlock()
		go dm.forward(ctrl)

		debug.Log("midi", "connected %s", id)
		dm.events <- DeviceEvent{Type: DeviceConnected, ID: id}
	}

	// Check for disconnects
	dm.mu.Lock()
	var toRemove []string
	for id := range dm.controllers {
		if !seenIDs[id] {
			toRemove = append(toRemove, id)
		}
	}
	for _, id := range toRemove {
		dm.controllers[id].Close()
		delete(dm.controllers, id)
		debug.Log("midi", "disconnected %s", id)
		dm.events <- DeviceEvent{Type: DeviceDisconnected, ID: id}
	}
	dm.mu.Unlock()
}

// forward copies one controller's events into the merged stream until the
// controller closes.
func (dm *DeviceManager) forward(c Controller) {
	for ev := range c.Events() {
		select {
		case dm.controls <- ev:
		default:
		}
	}
}

func (dm *DeviceManager) closeAll() {
	dm.mu.Lock()
	defer dm.mu.Unlock()
	for _, c := range dm.controllers {
		c.Close()
	}
	dm.controllers = make(map[string]Controller)
}

// Matches reports whether a port name passes the filter. Loopback ports
// are skipped unless the filter names them.
func (dm *DeviceManager) Matches(name string) bool {
	name = strings.ToLower(name)
	if dm.filter != "" {
		return strings.Contains(name, dm.filter)
	}
	return !strings.Contains(name, "through")
}
