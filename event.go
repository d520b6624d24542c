// Copyright 2021 The dispatch Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package dispatch

// An Event identifies a point in the dispatch pipeline at which plugins
// are notified.
type Event int

const (
	// RequestSent identifies the event that occurs after the descriptor
	// has been translated into a transport call, immediately before the
	// transport engine is invoked.
	//
	// RequestSent fires whether or not the engine call subsequently
	// succeeds. It never fires if translation fails.
	RequestSent Event = iota
	// ResponseReceived identifies the event that occurs after the
	// transport engine produced a payload, and before any validator
	// runs.
	//
	// ResponseReceived never fires if the engine call failed. Plugins
	// see the raw payload, not the processed one.
	ResponseReceived
	// eventSentinel provides the total number of events typed as an
	// Event.
	eventSentinel

	// numEvents provides the total number of events types as an int.
	numEvents = int(eventSentinel)
)

var eventNames = []string{
	"RequestSent",
	"ResponseReceived",
}

// Events returns a slice containing all events which can occur during
// one dispatch, in the order in which they would occur.
func Events() []Event {
	return []Event{
		RequestSent,
		ResponseReceived,
	}
}

// Name returns the name of the event.
func (evt Event) Name() string {
	return eventNames[int(evt)]
}

// String returns the name of the event.
func (evt Event) String() string {
	return evt.Name()
}
