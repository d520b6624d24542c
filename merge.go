// Copyright 2021 The dispatch Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package dispatch

import (
	"github.com/gogama/dispatch/request"
)

// Collaborators groups the three ordered collaborator sequences which
// take part in one dispatch.
type Collaborators struct {
	Plugins    []Plugin
	Validators []Validator
	Processors []Processor
}

// Merge combines call-scoped, request-scoped and client-scoped
// collaborators into the set used by one dispatch. In each of the three
// sequences the call-scoped entries come first, then the request-scoped
// ones, then the client-scoped ones, each keeping its relative order.
//
// Merge is pure. The returned slices never alias the inputs.
//
// Merge panics if any entry is nil.
func Merge(call, req, client Collaborators) Collaborators {
	return Collaborators{
		Plugins:    concat("plugin", call.Plugins, req.Plugins, client.Plugins),
		Validators: concat("validator", call.Validators, req.Validators, client.Validators),
		Processors: concat("processor", call.Processors, req.Processors, client.Processors),
	}
}

func concat[E comparable](what string, call, req, client []E) []E {
	out := make([]E, 0, len(call)+len(req)+len(client))
	for _, scope := range [][]E{call, req, client} {
		for _, e := range scope {
			var zero E
			if e == zero {
				panic("dispatch: nil " + what)
			}
			out = append(out, e)
		}
	}
	return out
}

// A PluginProvider is a request descriptor carrying request-scoped
// plugins.
type PluginProvider interface {
	Plugins() []Plugin
}

// A ValidatorProvider is a request descriptor carrying request-scoped
// validators.
type ValidatorProvider interface {
	Validators() []Validator
}

// A ProcessorProvider is a request descriptor carrying request-scoped
// processors.
type ProcessorProvider interface {
	Processors() []Processor
}

func requestScoped(d request.Descriptor) Collaborators {
	var c Collaborators
	if p, ok := d.(PluginProvider); ok {
		c.Plugins = p.Plugins()
	}
	if v, ok := d.(ValidatorProvider); ok {
		c.Validators = v.Validators()
	}
	if p, ok := d.(ProcessorProvider); ok {
		c.Processors = p.Processors()
	}
	return c
}
