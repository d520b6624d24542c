// Copyright 2021 The dispatch Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package dispatch

import (
	"github.com/gogama/dispatch/request"
)

// Request is a ready-made request descriptor which carries its own
// request-scoped collaborators. It is the simplest way to attach a
// validator or processor to a particular endpoint:
//
//	r := &dispatch.Request{
//		Endpoint:          request.New(request.GET, "https://api.test/todos/1"),
//		RequestValidators: []dispatch.Validator{dispatch.RequireKeys("id")},
//	}
//
// Application request kinds may equally be independent types which
// implement request.Descriptor plus any of PluginProvider,
// ValidatorProvider and ProcessorProvider.
type Request struct {
	*request.Endpoint
	RequestPlugins    []Plugin
	RequestValidators []Validator
	RequestProcessors []Processor
}

// NewRequest returns a Request for the given method and target, with no
// parameters, headers or collaborators.
func NewRequest(method request.Method, target string) *Request {
	return &Request{Endpoint: request.New(method, target)}
}

// Plugins returns the request-scoped plugins.
func (r *Request) Plugins() []Plugin { return r.RequestPlugins }

// Validators returns the request-scoped validators.
func (r *Request) Validators() []Validator { return r.RequestValidators }

// Processors returns the request-scoped processors.
func (r *Request) Processors() []Processor { return r.RequestProcessors }
