// Copyright 2021 The dispatch Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"net/http"
	"time"

	"github.com/gogama/dispatch/failure"
)

// An Execution represents the state of a single transport call made for
// a Plan.
//
// Transport engines create an Execution for each call, fill it in as
// the call progresses, and return it. The dispatch pipeline reads the
// Payload field of a successful execution and ignores the rest, which
// is available for logging and diagnostics.
type Execution struct {
	// Plan specifies the plan being executed. It is never nil.
	Plan *Plan

	// Start is the time the transport call started.
	Start time.Time

	// End is the time the transport call ended. It contains the zero
	// value until the call ends.
	End time.Time

	// Response is the HTTP response, if one was received. It is nil if
	// the call failed before a response arrived. Its body has already
	// been read and closed.
	Response *http.Response

	// Body is the complete response body. It is nil if no response was
	// received or reading the body failed.
	Body []byte

	// Payload is the body decoded as a JSON-compatible tree:
	// map[string]interface{}, []interface{}, string, float64, bool or
	// nil. It is only meaningful when Err is nil.
	Payload interface{}

	// Err is the error which ended the call, or nil. When non-nil it is
	// a *failure.Error.
	Err error
}

// StatusCode returns the status code of the HTTP response, or 0 if
// there is no response.
func (e *Execution) StatusCode() int {
	if e.Response == nil {
		return 0
	}

	return e.Response.StatusCode
}

// Header returns the HTTP response headers, or the nil header if there
// is no response. A nil header is safe for read-only operations.
func (e *Execution) Header() http.Header {
	if e.Response == nil {
		var nilHeader http.Header
		return nilHeader
	}

	return e.Response.Header
}

// Duration returns the duration of the execution.
//
// If the execution has not yet started, the duration is zero. If it
// has ended, the duration is End minus Start. Otherwise, it is the
// current time minus Start.
func (e *Execution) Duration() time.Duration {
	if !e.Started() {
		return time.Duration(0)
	} else if !e.Ended() {
		return time.Since(e.Start)
	}

	return e.End.Sub(e.Start)
}

// Started indicates whether the execution has started.
func (e *Execution) Started() bool {
	return e.Start != (time.Time{})
}

// Ended indicates whether the execution has ended.
func (e *Execution) Ended() bool {
	return e.End != (time.Time{})
}

// Timeout indicates whether Err is a timeout.
func (e *Execution) Timeout() bool {
	return failure.Transience(e.Err) == failure.Timeout
}
