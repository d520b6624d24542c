// Copyright 2021 The dispatch Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package engine

import (
	"github.com/bytedance/sonic"
	"github.com/gogama/dispatch/failure"
	"github.com/gogama/dispatch/request"
)

// DecodeBody maps an HTTP status code and a fully-read response body
// to a payload, or to an error:
//
// • a status code outside 200-299 yields a failure.WrongResponse error
// wrapping a *failure.StatusError;
//
// • an empty body yields a failure.EmptyResponse error;
//
// • a body which is not valid JSON yields a failure.InvalidResponseBody
// error; and
//
// • otherwise the decoded JSON value is returned. Top-level scalars are
// allowed.
//
// Engines other than HTTP may use DecodeBody to stay consistent with
// the default engine.
func DecodeBody(p *request.Plan, statusCode int, body []byte) (interface{}, error) {
	if statusCode < 200 || statusCode > 299 {
		return nil, failure.New(failure.WrongResponse, p.Method, p.URL.String(), &failure.StatusError{
			StatusCode: statusCode,
			Body:       body,
		})
	}
	if len(body) == 0 {
		return nil, failure.New(failure.EmptyResponse, p.Method, p.URL.String(), nil)
	}
	var payload interface{}
	if err := sonic.ConfigStd.Unmarshal(body, &payload); err != nil {
		return nil, failure.New(failure.InvalidResponseBody, p.Method, p.URL.String(), err)
	}
	return payload, nil
}
