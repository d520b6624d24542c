// Copyright 2021 The dispatch Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package engine provides the default transport engine of the dispatch
pipeline, HTTP, which executes a request.Plan with a net/http style
HTTPDoer and decodes the response body into a JSON-compatible payload.

The engine performs no validation, runs no plugins and applies no
processing: those belong to the dispatch pipeline. Its whole job is:

• send the plan, resolving relative URLs against BaseURL and applying
the timeout policy;

• map a transport error, or a non-2XX status code, to a
failure.WrongResponse error wrapping the cause;

• map an empty body to failure.EmptyResponse; and

• decode the body as JSON, mapping a decode failure to
failure.InvalidResponseBody.

To send HTTP/2 requests with a dedicated connection pool, build the
HTTPDoer with NewHTTPClient:

	cl, err := engine.NewHTTPClient(engine.ClientOptions{HTTP2: true})
	...
	e := &engine.HTTP{Doer: cl, TimeoutPolicy: timeout.Fixed(10 * time.Second)}
*/
package engine
