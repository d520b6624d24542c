// Copyright 2021 The dispatch Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package dispatch

import (
	"context"

	"github.com/gogama/dispatch/decode"
	"github.com/gogama/dispatch/failure"
	"github.com/gogama/dispatch/request"
)

// Dispatcher is the interface that wraps the basic Dispatch method.
//
// Dispatch sends a request and returns the processed payload (and
// error, if any). Client implements the Dispatcher interface, and any
// other Dispatcher implementation must behave substantially the same as
// Client.Dispatch.
//
// Any Dispatcher can be used with the typed helpers DispatchOne,
// DispatchMany, One and Many.
type Dispatcher interface {
	Dispatch(ctx context.Context, d request.Descriptor, opts ...Option) (interface{}, error)
}

// A Call is one deferred dispatch. Calls are consumed by the delivery
// adapters Async, Callback and Stream, and may also be invoked
// directly.
type Call[T any] func(ctx context.Context) (T, error)

// DispatchOne uses the specified Dispatcher to send d and decodes the
// payload, which must be a JSON object, into a T.
//
// If the payload is not an object, or T's DecodeJSON method rejects it,
// the error is a failure.InvalidParsing error wrapping the cause.
func DispatchOne[T any, PT decode.Decodable[T]](ctx context.Context, disp Dispatcher, d request.Descriptor, opts ...Option) (T, error) {
	return DispatchOneFunc(ctx, disp, d, decode.Of[T, PT](), opts...)
}

// DispatchOneFunc is like DispatchOne but decodes with f, which allows
// decoding types that cannot implement decode.Decodable, for example
// with decode.Struct.
func DispatchOneFunc[T any](ctx context.Context, disp Dispatcher, d request.Descriptor, f decode.Func[T], opts ...Option) (T, error) {
	payload, err := disp.Dispatch(ctx, d, opts...)
	if err != nil {
		var zero T
		return zero, err
	}
	v, err := decode.OneFunc(payload, f)
	if err != nil {
		var zero T
		return zero, parsingError(d, err)
	}
	return v, nil
}

// DispatchMany uses the specified Dispatcher to send d and decodes the
// payload, which must be a JSON array of objects, into a []T.
//
// Elements that T's DecodeJSON method rejects are silently dropped, so
// the result may be shorter than the array, or empty, but it is never
// nil when the error is nil. If the payload is not an array, or any
// element is not an object, the error is a failure.InvalidParsing
// error.
func DispatchMany[T any, PT decode.Decodable[T]](ctx context.Context, disp Dispatcher, d request.Descriptor, opts ...Option) ([]T, error) {
	return DispatchManyFunc(ctx, disp, d, decode.Of[T, PT](), opts...)
}

// DispatchManyFunc is like DispatchMany but decodes each element with
// f.
func DispatchManyFunc[T any](ctx context.Context, disp Dispatcher, d request.Descriptor, f decode.Func[T], opts ...Option) ([]T, error) {
	payload, err := disp.Dispatch(ctx, d, opts...)
	if err != nil {
		return nil, err
	}
	vs, err := decode.ManyFunc(payload, f)
	if err != nil {
		return nil, parsingError(d, err)
	}
	return vs, nil
}

// One returns a Call which runs DispatchOne.
func One[T any, PT decode.Decodable[T]](disp Dispatcher, d request.Descriptor, opts ...Option) Call[T] {
	return func(ctx context.Context) (T, error) {
		return DispatchOne[T, PT](ctx, disp, d, opts...)
	}
}

// Many returns a Call which runs DispatchMany.
func Many[T any, PT decode.Decodable[T]](disp Dispatcher, d request.Descriptor, opts ...Option) Call[[]T] {
	return func(ctx context.Context) ([]T, error) {
		return DispatchMany[T, PT](ctx, disp, d, opts...)
	}
}

func parsingError(d request.Descriptor, err error) error {
	return failure.New(failure.InvalidParsing, d.Method().String(), d.Target(), err)
}
