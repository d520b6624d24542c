// Copyright 2021 The dispatch Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package request contains the core types Descriptor (declares a request),
Plan (the transport-level call a Descriptor translates into) and
Execution (the state of one transport call).

A Descriptor declares what to send: a target, a method, optional
parameters and optional headers. Endpoint is a ready-made Descriptor
value, but any type implementing the four Descriptor methods may be
dispatched:

	d := request.New(request.GET, "https://api.test/items").
		WithParams(request.NewParams().Set("q", "a").Set("limit", 5))

NewPlan translates a Descriptor into a Plan without touching the
network. For GET requests the parameters are appended to the target as
a query string, in insertion order; for every other method they become
a JSON request body:

	p, err := request.NewPlan(d, request.Raw)
	...
	r := p.ToRequest(ctx)

Translation fails with a failure.InvalidURL error if the resulting
address does not parse, and with a failure.InvalidParameters error if
the parameters cannot be serialized.

The Raw query encoding performs no percent-encoding of keys or values.
This keeps the wire format of existing callers stable; keys and values
containing reserved characters must be pre-escaped, or the Escaped
encoding used instead.

Execution is the output type of transport engines. It records the plan
that was executed, the HTTP response, the buffered body and the decoded
payload.
*/
package request
