// Copyright 2021 The dispatch Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package timeout

import (
	"time"

	"github.com/gogama/dispatch/request"
)

// A Policy defines a timeout policy which may be plugged into a
// transport engine to set the timeout of each transport call.
//
// Implementations of Policy must be safe for concurrent use by multiple
// goroutines.
type Policy interface {
	// Timeout returns the timeout to set on the transport call which
	// will execute plan p.
	Timeout(p *request.Plan) time.Duration
}

// DefaultPolicy is the default timeout policy. It sets a fixed timeout
// of 5 seconds on each call.
var DefaultPolicy Policy = Fixed(5 * time.Second)

// Infinite is a built-in timeout policy which never times out.
var Infinite Policy = Fixed(1<<63 - 1)

// Fixed constructs a timeout policy that uses the same value for every
// call.
func Fixed(d time.Duration) Policy {
	return fixed(d)
}

// ByMethod constructs a timeout policy that varies the timeout by HTTP
// method.
//
// Parameter usual is the timeout for any method not present in
// overrides. For example, the following policy allows 30 seconds for
// POST and PUT but 2 seconds for everything else:
//
//	p := ByMethod(2*time.Second, map[request.Method]time.Duration{
//		request.POST: 30 * time.Second,
//		request.PUT:  30 * time.Second,
//	})
func ByMethod(usual time.Duration, overrides map[request.Method]time.Duration) Policy {
	m := make(byMethod, len(overrides)+1)
	for k, v := range overrides {
		m[k.String()] = v
	}
	m[""] = usual
	return m
}

type fixed time.Duration

func (f fixed) Timeout(_ *request.Plan) time.Duration {
	return time.Duration(f)
}

type byMethod map[string]time.Duration

func (m byMethod) Timeout(p *request.Plan) time.Duration {
	if d, ok := m[p.Method]; ok {
		return d
	}
	return m[""]
}
