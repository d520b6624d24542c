// Copyright 2021 The dispatch Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package failure

import (
	"context"
	"errors"
	"syscall"
)

// A Category is the transience category of the cause of a transport
// failure, as reported by Transience.
//
// The dispatch pipeline never retries. Category exists so that callers
// who want retries can tell failures worth retrying from permanent
// ones.
type Category int

const (
	// Not indicates any non-transient error, including nil.
	Not Category = iota
	// Timeout indicates a client-side timeout, including an expired
	// context deadline.
	Timeout
	// ConnRefused indicates the remote host refused the connection
	// (ECONNREFUSED). This often happens while a service restarts.
	ConnRefused
	// ConnReset indicates the remote host reset a previously active
	// connection (ECONNRESET).
	ConnReset
	// Throttled indicates the server answered with 429, 502, 503 or
	// 504.
	Throttled
)

var categoryNames = []string{
	"Not",
	"Timeout",
	"ConnRefused",
	"ConnReset",
	"Throttled",
}

// String returns the name of the category.
func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "Category(?)"
	}
	return categoryNames[c]
}

// Transience returns the transience category of err. Wrapped causes
// are examined, not just err itself. The Temporary method is never
// consulted, as its semantics are unclear.
func Transience(err error) Category {
	if err == nil {
		return Not
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return Timeout
	}

	var hasTimeout hasTimeout
	if errors.As(err, &hasTimeout) && hasTimeout.Timeout() {
		return Timeout
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		if errno == syscall.ECONNRESET {
			return ConnReset
		} else if errno == syscall.ECONNREFUSED {
			return ConnRefused
		}
	}

	var status *StatusError
	if errors.As(err, &status) {
		switch status.StatusCode {
		case 429, 502, 503, 504:
			return Throttled
		}
	}

	return Not
}

type hasTimeout interface {
	Timeout() bool
}
