// Copyright 2021 The dispatch Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

// A Descriptor declares one outbound request.
//
// A Descriptor is constructed per call site and discarded after
// dispatch. It owns no resources, and implementations should treat it
// as immutable once dispatched, since plugins receive it and may read
// it from another goroutine.
type Descriptor interface {
	// Target returns the endpoint address, absolute or relative.
	Target() string
	// Method returns the HTTP method. The empty method means GET.
	Method() Method
	// Parameters returns the request parameters, or nil if there are
	// none. For GET they form the query string; for other methods the
	// JSON body.
	Parameters() *Params
	// Headers returns the request headers, or nil if there are none.
	Headers() map[string]string
}

// An Endpoint is a plain Descriptor value.
//
// Endpoint is immutable by convention: the With methods return a
// modified copy and leave the receiver untouched.
type Endpoint struct {
	method  Method
	target  string
	params  *Params
	headers map[string]string
}

// New returns an Endpoint with the given method and target and no
// parameters or headers.
func New(method Method, target string) *Endpoint {
	return &Endpoint{method: method, target: target}
}

// Target returns the endpoint target.
func (e *Endpoint) Target() string { return e.target }

// Method returns the endpoint method.
func (e *Endpoint) Method() Method { return e.method }

// Parameters returns the endpoint parameters, which may be nil.
func (e *Endpoint) Parameters() *Params { return e.params }

// Headers returns the endpoint headers, which may be nil.
func (e *Endpoint) Headers() map[string]string { return e.headers }

// WithParams returns a copy of e whose parameters are p.
func (e *Endpoint) WithParams(p *Params) *Endpoint {
	e2 := new(Endpoint)
	*e2 = *e
	e2.params = p
	return e2
}

// WithHeader returns a copy of e with the header key set to value.
func (e *Endpoint) WithHeader(key, value string) *Endpoint {
	e2 := new(Endpoint)
	*e2 = *e
	e2.headers = make(map[string]string, len(e.headers)+1)
	for k, v := range e.headers {
		e2.headers[k] = v
	}
	e2.headers[key] = value
	return e2
}
