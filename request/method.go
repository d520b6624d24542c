// Copyright 2021 The dispatch Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

// A Method is the HTTP method used to dispatch a request. The empty
// Method means GET.
type Method string

// Methods supported by the dispatch pipeline.
const (
	GET    Method = "GET"
	POST   Method = "POST"
	PUT    Method = "PUT"
	PATCH  Method = "PATCH"
	DELETE Method = "DELETE"
)

// Methods returns every supported method.
func Methods() []Method {
	return []Method{GET, POST, PUT, PATCH, DELETE}
}

// String returns the method name, mapping the empty method to "GET".
func (m Method) String() string {
	if m == "" {
		return string(GET)
	}
	return string(m)
}

// IsGet reports whether m means GET.
func (m Method) IsGet() bool {
	return m == "" || m == GET
}
