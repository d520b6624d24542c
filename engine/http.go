// Copyright 2021 The dispatch Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package engine

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/gogama/dispatch/failure"
	"github.com/gogama/dispatch/request"
	"github.com/gogama/dispatch/timeout"
)

// An HTTPDoer implements a Do method in the same manner as the GoLang
// standard library http.Client from the net/http package.
type HTTPDoer interface {
	// Do sends an HTTP request and returns an HTTP response following
	// policy (such as redirects, cookies, auth) configured on the
	// HTTPDoer.
	//
	// The Do method must follow the contract documented on the GoLang
	// standard library http.Client from the net/http package.
	Do(r *http.Request) (*http.Response, error)
}

// Default is the process-wide default engine. It sends requests with
// http.DefaultClient and applies timeout.DefaultPolicy.
//
// Default should only be reached from the outermost composition point,
// for example when a dispatch.Client has no engine configured.
var Default = &HTTP{}

// HTTP is a transport engine which sends each plan as one HTTP request.
// Its zero value is a valid configuration.
//
// HTTP is safe for concurrent use by multiple goroutines provided its
// fields are not modified while calls are in flight.
type HTTP struct {
	// Doer specifies the mechanics of sending HTTP requests and
	// receiving responses.
	//
	// If Doer is nil, http.DefaultClient from the standard net/http
	// package is used.
	Doer HTTPDoer
	// BaseURL, if not nil, is the URL against which relative plan URLs
	// are resolved, following RFC 3986 reference resolution.
	BaseURL *url.URL
	// TimeoutPolicy sets the timeout of each call.
	//
	// If TimeoutPolicy is nil, timeout.DefaultPolicy is used. A
	// non-positive timeout means the call has no timeout beyond the
	// deadline of the context passed to Dispatch.
	TimeoutPolicy timeout.Policy
	// Header contains default header fields. Each is sent unless the
	// plan already has a value for the same key.
	Header http.Header
}

// Dispatch executes the plan and returns the execution state.
//
// On success the returned error is nil and the execution's Payload
// holds the decoded body. Otherwise the error is a *failure.Error,
// which is also stored in the execution's Err field. The returned
// Execution is never nil.
//
// Cancelling ctx aborts the call on a best-effort basis. If the
// response has already been received, cancellation has no effect.
func (h *HTTP) Dispatch(ctx context.Context, p *request.Plan) (*request.Execution, error) {
	if ctx == nil {
		panic("dispatch/engine: nil context")
	}

	p = h.resolve(p)
	e := &request.Execution{
		Plan:  p,
		Start: time.Now(),
	}
	defer func() {
		e.End = time.Now()
	}()

	if d := h.timeoutPolicy().Timeout(p); d > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d)
		defer cancel()
	}

	r := p.ToRequest(ctx)
	r.Header = mergeHeader(p.Header, h.Header)
	resp, err := h.doer().Do(r)
	if err != nil {
		e.Err = TransportError(p, err)
		return e, e.Err
	}

	e.Response = resp
	e.Body, err = readBody(resp)
	if err != nil {
		e.Body = nil
		e.Err = TransportError(p, err)
		return e, e.Err
	}

	e.Payload, e.Err = DecodeBody(p, resp.StatusCode, e.Body)
	return e, e.Err
}

func (h *HTTP) resolve(p *request.Plan) *request.Plan {
	if h.BaseURL == nil || p.URL.IsAbs() {
		return p
	}
	return p.WithURL(h.BaseURL.ResolveReference(p.URL))
}

func (h *HTTP) doer() HTTPDoer {
	if h.Doer == nil {
		return http.DefaultClient
	}

	return h.Doer
}

func (h *HTTP) timeoutPolicy() timeout.Policy {
	if h.TimeoutPolicy == nil {
		return timeout.DefaultPolicy
	}

	return h.TimeoutPolicy
}

func readBody(resp *http.Response) ([]byte, error) {
	defer func() {
		_ = resp.Body.Close()
	}()
	return io.ReadAll(resp.Body)
}

func mergeHeader(h, defaults http.Header) http.Header {
	if len(defaults) == 0 {
		return h
	}
	merged := h.Clone()
	if merged == nil {
		merged = make(http.Header, len(defaults))
	}
	for k, vs := range defaults {
		if _, ok := merged[k]; !ok {
			merged[k] = append([]string(nil), vs...)
		}
	}
	return merged
}

// TransportError returns a failure.WrongResponse error for a transport
// failure which occurred while executing p. The cause is wrapped in a
// *url.Error unless it already is one.
func TransportError(p *request.Plan, err error) *failure.Error {
	return failure.New(failure.WrongResponse, p.Method, p.URL.String(), urlErrorWrap(p, err))
}

func urlErrorWrap(p *request.Plan, err error) error {
	if _, ok := err.(*url.Error); ok {
		return err
	}

	return &url.Error{
		Op:  failure.Op(p.Method),
		URL: p.URL.String(),
		Err: err,
	}
}
