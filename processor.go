// Copyright 2021 The dispatch Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package dispatch

// A Processor transforms a validated payload. Processors are applied
// as a left fold in merge order: the output of each is the input of the
// next. They may change the payload's shape.
type Processor interface {
	Process(payload interface{}) interface{}
}

// The ProcessorFunc type is an adapter to allow the use of ordinary
// functions as processors.
type ProcessorFunc func(payload interface{}) interface{}

// Process calls f(payload).
func (f ProcessorFunc) Process(payload interface{}) interface{} {
	return f(payload)
}

// Unwrap returns a Processor which replaces an object payload by its
// member named key, for APIs that wrap results in an envelope such as
// {"data": ...}. Payloads which are not objects, or which lack the key,
// pass through unchanged.
func Unwrap(key string) Processor {
	return ProcessorFunc(func(payload interface{}) interface{} {
		if obj, ok := payload.(map[string]interface{}); ok {
			if v, ok := obj[key]; ok {
				return v
			}
		}
		return payload
	})
}

func process(chain []Processor, payload interface{}) interface{} {
	for _, p := range chain {
		payload = p.Process(payload)
	}
	return payload
}
