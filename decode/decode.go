// Copyright 2021 The dispatch Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package decode turns JSON-compatible payloads into typed values.
//
// A type opts in by implementing Decodable on its pointer receiver:
//
//	type Todo struct {
//		ID    int
//		Title string
//	}
//
//	func (t *Todo) DecodeJSON(obj map[string]interface{}) error {
//		...
//	}
//
// after which One[Todo] and Many[Todo] decode it. Types the caller does
// not own are decoded with a Func, for example Struct, via OneFunc and
// ManyFunc.
package decode

import (
	"fmt"

	"github.com/bytedance/sonic"
)

// Decodable is the constraint satisfied by *T when T can construct
// itself from a JSON object. DecodeJSON returns an error if obj does not
// describe a valid T.
type Decodable[T any] interface {
	*T
	DecodeJSON(obj map[string]interface{}) error
}

// A Func constructs a T from a JSON object, or fails.
type Func[T any] func(obj map[string]interface{}) (T, error)

// Of returns the Func which decodes a T using its DecodeJSON method.
func Of[T any, PT Decodable[T]]() Func[T] {
	return func(obj map[string]interface{}) (T, error) {
		var v T
		err := PT(&v).DecodeJSON(obj)
		return v, err
	}
}

// One decodes payload, which must be a JSON object, into a T.
func One[T any, PT Decodable[T]](payload interface{}) (T, error) {
	return OneFunc(payload, Of[T, PT]())
}

// Many decodes payload, which must be a JSON array of objects, into a
// slice of T. Elements which fail to decode are dropped.
func Many[T any, PT Decodable[T]](payload interface{}) ([]T, error) {
	return ManyFunc(payload, Of[T, PT]())
}

// OneFunc decodes payload, which must be a JSON object, with f. If
// payload is not an object, the error is a *ShapeError and f is not
// called.
func OneFunc[T any](payload interface{}, f Func[T]) (T, error) {
	obj, ok := payload.(map[string]interface{})
	if !ok {
		var zero T
		return zero, &ShapeError{Want: "object", Got: payload, Index: -1}
	}
	return f(obj)
}

// ManyFunc decodes payload with f, element by element. The payload must
// be a JSON array whose elements are all objects, otherwise the error
// is a *ShapeError and f is never called.
//
// Elements for which f fails are silently dropped. The result is never
// nil, though it may be empty, and preserves the order of the elements
// which decoded.
func ManyFunc[T any](payload interface{}, f Func[T]) ([]T, error) {
	arr, ok := payload.([]interface{})
	if !ok {
		return nil, &ShapeError{Want: "array", Got: payload, Index: -1}
	}
	objs := make([]map[string]interface{}, len(arr))
	for i := range arr {
		obj, ok := arr[i].(map[string]interface{})
		if !ok {
			return nil, &ShapeError{Want: "object", Got: arr[i], Index: i}
		}
		objs[i] = obj
	}
	out := make([]T, 0, len(objs))
	for _, obj := range objs {
		if v, err := f(obj); err == nil {
			out = append(out, v)
		}
	}
	return out, nil
}

// Struct is a Func which decodes obj into T by re-encoding it as JSON
// and unmarshalling the result with sonic, honouring the usual json
// struct tags. Missing members leave zero values; members of the wrong
// type are an error.
func Struct[T any](obj map[string]interface{}) (T, error) {
	var v T
	b, err := sonic.ConfigStd.Marshal(obj)
	if err != nil {
		return v, err
	}
	err = sonic.ConfigStd.Unmarshal(b, &v)
	return v, err
}

// A ShapeError reports a payload whose JSON shape does not match what a
// decoder needs.
type ShapeError struct {
	// Want is the expected shape, "object" or "array".
	Want string
	// Got is the offending value.
	Got interface{}
	// Index is the position of the offending element within an array,
	// or -1 if the payload itself has the wrong shape.
	Index int
}

func (e *ShapeError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("decode: expected %s, got %s", e.Want, shapeOf(e.Got))
	}
	return fmt.Sprintf("decode: element %d: expected %s, got %s", e.Index, e.Want, shapeOf(e.Got))
}

func shapeOf(v interface{}) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]interface{}:
		return "object"
	case []interface{}:
		return "array"
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	default:
		return fmt.Sprintf("%T", v)
	}
}
