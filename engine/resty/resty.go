// Copyright 2021 The dispatch Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package resty provides a transport engine built on the go-resty HTTP
// client, as an alternative to the net/http based engine.HTTP.
//
// The resty client sits on the pooled transport of a
// hashicorp/go-retryablehttp client. Retries stay disabled at both
// layers: each plan is sent exactly once.
package resty

import (
	"context"
	"time"

	restyclient "github.com/go-resty/resty/v2"
	"github.com/gogama/dispatch/engine"
	"github.com/gogama/dispatch/request"
	"github.com/gogama/dispatch/timeout"
	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
)

// Options configures New.
type Options struct {
	// BaseURL is prepended to relative plan URLs. Unlike engine.HTTP,
	// which resolves references, resty concatenates the two.
	BaseURL string
	// UserAgent, if not empty, is sent with every request which does not
	// set its own.
	UserAgent string
	// TimeoutPolicy sets the timeout of each call. If nil,
	// timeout.DefaultPolicy is used.
	TimeoutPolicy timeout.Policy
	// Logger receives resty's own diagnostics. If nil, they are
	// discarded.
	Logger *zap.Logger
}

// Engine is a transport engine which sends each plan with a resty
// client. Create one with New.
type Engine struct {
	client        *restyclient.Client
	timeoutPolicy timeout.Policy
}

// New returns a resty engine configured by o.
func New(o Options) *Engine {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil

	logger := o.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	c := restyclient.New().
		SetRetryCount(0).
		SetTransport(retryClient.HTTPClient.Transport).
		SetLogger(logger.Sugar())
	if o.BaseURL != "" {
		c.SetBaseURL(o.BaseURL)
	}
	if o.UserAgent != "" {
		c.SetHeader("User-Agent", o.UserAgent)
	}

	tp := o.TimeoutPolicy
	if tp == nil {
		tp = timeout.DefaultPolicy
	}

	return &Engine{
		client:        c,
		timeoutPolicy: tp,
	}
}

// Client returns the underlying resty client, for further
// configuration. It must not be modified while calls are in flight.
func (e *Engine) Client() *restyclient.Client {
	return e.client
}

// Dispatch executes the plan with the resty client. Its contract is the
// same as engine.HTTP's: the returned Execution is never nil, and the
// error, if any, is a *failure.Error mapped by engine.TransportError
// and engine.DecodeBody.
func (e *Engine) Dispatch(ctx context.Context, p *request.Plan) (*request.Execution, error) {
	if ctx == nil {
		panic("dispatch/engine/resty: nil context")
	}

	x := &request.Execution{
		Plan:  p,
		Start: time.Now(),
	}
	defer func() {
		x.End = time.Now()
	}()

	if d := e.timeoutPolicy.Timeout(p); d > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d)
		defer cancel()
	}

	r := e.client.R().
		SetContext(ctx).
		SetHeaderMultiValues(p.Header)
	if len(p.Body) > 0 {
		r.SetBody(p.Body)
	}
	resp, err := r.Execute(p.Method, p.URL.String())
	if err != nil {
		x.Err = engine.TransportError(p, err)
		return x, x.Err
	}

	x.Response = resp.RawResponse
	x.Body = resp.Body()
	x.Payload, x.Err = engine.DecodeBody(p, resp.StatusCode(), x.Body)
	return x, x.Err
}
