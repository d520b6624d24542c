// Copyright 2021 The dispatch Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package failure defines the closed set of error kinds produced while
dispatching a request: building the transport call, executing it, and
decoding the resulting payload.

Every error originating inside the dispatch library has the type
*Error, whose Kind field identifies one of the following kinds:

• InvalidURL: the descriptor's target and parameters do not form a
parseable address;

• InvalidParameters: the parameters cannot be serialized to a request
body;

• WrongResponse: the transport failed, or answered with a non-2XX
status code (the underlying cause is always wrapped);

• EmptyResponse: the transport succeeded but the body was empty;

• InvalidResponseBody: the body is not decodable as JSON; and

• InvalidParsing: the payload does not have the shape required to
produce a typed value, or the decoder rejected it.

Errors raised by response validators are returned to the caller
verbatim and are not represented here. KindOf reports Other for them.

Use errors.Is with the sentinel values to test for a kind:

	_, err := client.Dispatch(ctx, req)
	if errors.Is(err, failure.ErrEmptyResponse) {
		...
	}

Transience categorizes the cause of a WrongResponse error to help
callers who implement their own retry policy.
*/
package failure
