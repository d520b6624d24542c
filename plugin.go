// Copyright 2021 The dispatch Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package dispatch

import (
	"github.com/gogama/dispatch/request"
)

// A Plugin observes network activity. Install plugins on a Client, on
// a request (see PluginProvider), or on a single call (see WithPlugins)
// to extend the pipeline with custom functionality such as logging or
// metrics.
//
// Plugins are notified synchronously in merge order and cannot alter
// the flow of a dispatch. A panicking plugin is not recovered.
type Plugin interface {
	// RequestSent is called immediately before the transport engine is
	// invoked.
	RequestSent(d request.Descriptor)
	// ResponseReceived is called with the raw payload after the engine
	// returned successfully.
	ResponseReceived(payload interface{}, d request.Descriptor)
}

// NopPlugin implements Plugin by doing nothing. Embed it in a type
// which is only interested in one of the two hooks.
type NopPlugin struct{}

// RequestSent does nothing.
func (NopPlugin) RequestSent(_ request.Descriptor) {}

// ResponseReceived does nothing.
func (NopPlugin) ResponseReceived(_ interface{}, _ request.Descriptor) {}

// PluginFuncs adapts a pair of ordinary functions to the Plugin
// interface. A nil function is a no-op.
type PluginFuncs struct {
	OnRequestSent      func(d request.Descriptor)
	OnResponseReceived func(payload interface{}, d request.Descriptor)
}

// RequestSent calls p.OnRequestSent(d), if set.
func (p PluginFuncs) RequestSent(d request.Descriptor) {
	if p.OnRequestSent != nil {
		p.OnRequestSent(d)
	}
}

// ResponseReceived calls p.OnResponseReceived(payload, d), if set.
func (p PluginFuncs) ResponseReceived(payload interface{}, d request.Descriptor) {
	if p.OnResponseReceived != nil {
		p.OnResponseReceived(payload, d)
	}
}

// The HookFunc type is an adapter to allow the use of an ordinary
// function as a plugin which handles both events. If f is a function
// with appropriate signature, then HookFunc(f) is a Plugin that calls
// f. The payload is nil for RequestSent.
type HookFunc func(evt Event, payload interface{}, d request.Descriptor)

// RequestSent calls f(RequestSent, nil, d).
func (f HookFunc) RequestSent(d request.Descriptor) {
	f(RequestSent, nil, d)
}

// ResponseReceived calls f(ResponseReceived, payload, d).
func (f HookFunc) ResponseReceived(payload interface{}, d request.Descriptor) {
	f(ResponseReceived, payload, d)
}

func run(chain []Plugin, evt Event, payload interface{}, d request.Descriptor) {
	for _, p := range chain {
		switch evt {
		case RequestSent:
			p.RequestSent(d)
		case ResponseReceived:
			p.ResponseReceived(payload, d)
		}
	}
}
