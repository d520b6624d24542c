// Copyright 2021 The dispatch Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package dispatch provides a configurable HTTP request dispatcher which
runs declarative request descriptions through an ordered chain of
plugins, validators and response processors, then decodes the resulting
JSON payload into typed values.

Create a Client to begin making requests.

	client := &dispatch.Client{}
	payload, err := client.Dispatch(ctx,
		request.New(request.GET, "https://api.test/items").
			WithParams(request.NewParams().Set("q", "a").Set("limit", 5)))

To decode into an application type, implement decode.Decodable and use
DispatchOne or DispatchMany:

	todo, err := dispatch.DispatchOne[Todo](ctx, client, d)
	todos, err := dispatch.DispatchMany[Todo](ctx, client, d)

DispatchMany silently drops array elements which fail to decode.

Collaborators come from three scopes: the call (WithPlugins,
WithValidators, WithProcessors), the request (a descriptor implementing
PluginProvider, ValidatorProvider or ProcessorProvider, such as Request)
and the client. They run in that order:

	client := &dispatch.Client{
		Plugins:    []dispatch.Plugin{plugins.NewLogger(logger)},
		Validators: []dispatch.Validator{dispatch.RequireKeys("data")},
		Processors: []dispatch.Processor{dispatch.Unwrap("data")},
	}

For control over how requests are sent, set a transport engine. For
example, the default engine with a dedicated HTTP/2 client and a custom
timeout policy:

	doer, err := engine.NewHTTPClient(engine.ClientOptions{HTTP2: true})
	...
	client := &dispatch.Client{
		Engine: &engine.HTTP{
			Doer:          doer,
			TimeoutPolicy: timeout.Fixed(10 * time.Second),
		},
	}

or compose everything from the environment with package config:

	cfg, err := config.Load("MYAPP")
	...
	client, err := dispatch.NewClient(cfg)

Errors raised by the pipeline or the engine are *failure.Error values
from a closed taxonomy; test them with errors.Is against the sentinels in
package failure. Errors raised by validators are returned unchanged.

Dispatch blocks. To deliver the outcome asynchronously, wrap the
dispatch in a Call and use Async (a future), Callback or Stream:

	f := dispatch.Async(ctx, dispatch.One[Todo](client, d))
	...
	todo, err := f.Wait(ctx)
*/
package dispatch
