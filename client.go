// Copyright 2021 The dispatch Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package dispatch

import (
	"context"
	"errors"
	"time"

	"github.com/gogama/dispatch/engine"
	"github.com/gogama/dispatch/failure"
	"github.com/gogama/dispatch/request"
	"go.uber.org/zap"
)

// An Engine executes the transport call described by a plan and
// returns the decoded payload in the execution. The default Engine is
// engine.Default.
//
// Engines perform no validation, run no plugins and apply no
// processing. Errors should be *failure.Error values; any other error
// is reported to the caller as failure.WrongResponse.
//
// Cancelling ctx must abort the call on a best-effort basis.
type Engine interface {
	Dispatch(ctx context.Context, p *request.Plan) (*request.Execution, error)
}

// A Client is a configurable request dispatcher. Its zero value is a
// valid configuration which sends requests with engine.Default and has
// no client-scoped collaborators.
//
// Client holds no per-dispatch state. It is safe for concurrent use by
// multiple goroutines as long as its fields are not modified while
// dispatches are in flight. The client-scoped slices are copied at the
// start of each dispatch.
//
// Every dispatch follows the same fixed sequence:
//
// • the call-scoped, request-scoped and client-scoped collaborators are
// merged, in that order (see Merge);
//
// • the descriptor is translated into a request.Plan. If translation
// fails, the failure.InvalidURL or failure.InvalidParameters error is
// returned and nothing else happens;
//
// • every plugin's RequestSent hook runs;
//
// • the engine is called. If it fails, its error is returned and no
// further hook, validator or processor runs;
//
// • every plugin's ResponseReceived hook runs with the raw payload;
//
// • the validators run in order. The first error is returned unchanged
// and the remaining validators are skipped; and
//
// • the processors are applied as a left fold, and the result is
// returned.
type Client struct {
	// Engine executes transport calls.
	//
	// If Engine is nil, engine.Default is used.
	Engine Engine
	// Plugins are the client-scoped plugins. They run after call-scoped
	// and request-scoped plugins.
	Plugins []Plugin
	// Validators are the client-scoped validators. They run after
	// call-scoped and request-scoped validators.
	Validators []Validator
	// Processors are the client-scoped processors. They run after
	// call-scoped and request-scoped processors.
	Processors []Processor
	// QueryEncoding selects how GET parameters are written into the
	// query string. The zero value, request.Raw, does no escaping.
	QueryEncoding request.Encoding
	// Logger receives debug traces of each dispatch. Errors are
	// returned, not logged.
	//
	// If Logger is nil, nothing is logged.
	Logger *zap.Logger
}

// Dispatch sends the request described by d and returns the resulting
// payload after validation and processing. The options add call-scoped
// collaborators.
//
// The payload is a JSON-compatible value: map[string]interface{},
// []interface{}, string, float64, bool or nil, unless a processor
// produced something else.
//
// If the returned error came from the pipeline or the engine, it is a
// *failure.Error whose kind can be tested with errors.Is against the
// sentinels in package failure. If it came from a validator, it is the
// validator's error, unwrapped.
//
// Dispatch blocks until the engine call completes or ctx is done.
func (c *Client) Dispatch(ctx context.Context, d request.Descriptor, opts ...Option) (interface{}, error) {
	if ctx == nil {
		panic("dispatch: nil context")
	}
	if d == nil {
		panic("dispatch: nil descriptor")
	}

	m := Merge(callScoped(opts), requestScoped(d), c.collaborators())
	logger := c.logger()

	p, err := request.NewPlan(d, c.QueryEncoding)
	if err != nil {
		return nil, err
	}

	run(m.Plugins, RequestSent, nil, d)
	start := time.Now()
	x, err := c.engine().Dispatch(ctx, p)
	if err != nil {
		return nil, asFailure(p, err)
	}
	var payload interface{}
	if x != nil {
		payload = x.Payload
	}
	logger.Debug("response received",
		zap.String("method", p.Method),
		zap.String("url", p.URL.String()),
		zap.Duration("duration", time.Since(start)))

	run(m.Plugins, ResponseReceived, payload, d)
	if err = validate(m.Validators, payload); err != nil {
		return nil, err
	}
	payload = process(m.Processors, payload)

	logger.Debug("dispatch complete",
		zap.String("method", p.Method),
		zap.String("url", p.URL.String()),
		zap.Int("plugins", len(m.Plugins)),
		zap.Int("validators", len(m.Validators)),
		zap.Int("processors", len(m.Processors)))
	return payload, nil
}

// Call returns a Call which dispatches d with this client. Use it with
// Async, Callback or Stream.
func (c *Client) Call(d request.Descriptor, opts ...Option) Call[interface{}] {
	return func(ctx context.Context) (interface{}, error) {
		return c.Dispatch(ctx, d, opts...)
	}
}

func (c *Client) collaborators() Collaborators {
	return Collaborators{
		Plugins:    c.Plugins,
		Validators: c.Validators,
		Processors: c.Processors,
	}
}

func (c *Client) engine() Engine {
	if c.Engine == nil {
		return engine.Default
	}

	return c.Engine
}

func (c *Client) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}

	return c.Logger
}

func asFailure(p *request.Plan, err error) error {
	var f *failure.Error
	if errors.As(err, &f) {
		return err
	}

	return engine.TransportError(p, err)
}
