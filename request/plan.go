// Copyright 2021 The dispatch Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	urlpkg "net/url"
	"strings"

	"github.com/gogama/dispatch/failure"
)

var (
	template, _ = http.NewRequest("GET", "", nil)
)

const (
	nilDescriptorMsg = "dispatch/request: nil descriptor"
)

// An Encoding selects how GET parameters are written into the query
// string.
type Encoding int

const (
	// Raw writes keys and values using their natural string form
	// (fmt.Sprint) with no percent-encoding. It is the default.
	Raw Encoding = iota
	// Escaped percent-encodes keys and values with url.QueryEscape.
	Escaped
)

func (enc Encoding) escape(s string) string {
	if enc == Escaped {
		return urlpkg.QueryEscape(s)
	}
	return s
}

// A Plan is the transport-level call that a Descriptor translates into.
//
// Plans are produced by NewPlan and consumed by transport engines. The
// field structure mirrors the subset of http.Request that a client
// needs.
type Plan struct {
	// Descriptor is the descriptor the plan was built from. It is never
	// nil for a plan returned by NewPlan.
	Descriptor Descriptor

	// Method specifies the HTTP method (GET, POST, PUT, etc.).
	Method string

	// URL specifies the final address, including any query string
	// built from GET parameters. It may be relative; engines resolve
	// relative URLs against their base URL, if any.
	URL *urlpkg.URL

	// Header contains the request header fields to be sent.
	Header http.Header

	// Body is the pre-buffered JSON request body. It is nil when the
	// descriptor has no parameters, and always nil for GET.
	Body []byte

	// Host optionally overrides the Host header to send. If empty, the
	// value of URL.Host will be sent.
	Host string
}

// NewPlan translates a Descriptor into a Plan. It is a pure function:
// nothing is sent and d is not modified.
//
// The address is built by Address. If it does not parse as a URL, the
// returned error is a *failure.Error of kind InvalidURL. The body is
// built by Body; if the parameters cannot be serialized, the returned
// error is a *failure.Error of kind InvalidParameters.
//
// The header holds the descriptor headers. If there is a body and no
// Content-Type header, Content-Type is set to application/json.
func NewPlan(d Descriptor, enc Encoding) (*Plan, error) {
	if d == nil {
		panic(nilDescriptorMsg)
	}
	method := d.Method().String()
	address := Address(d, enc)
	u, err := urlpkg.Parse(address)
	if err == nil {
		err = checkAddress(address)
	}
	if err != nil {
		return nil, failure.New(failure.InvalidURL, method, address, err)
	}
	u.Host = removeEmptyPort(u.Host)
	b, err := Body(d)
	if err != nil {
		return nil, failure.New(failure.InvalidParameters, method, address, err)
	}
	h := make(http.Header, len(d.Headers())+1)
	for k, v := range d.Headers() {
		h.Set(k, v)
	}
	if b != nil && h.Get("Content-Type") == "" {
		h.Set("Content-Type", "application/json")
	}
	return &Plan{
		Descriptor: d,
		Method:     method,
		URL:        u,
		Header:     h,
		Body:       b,
		Host:       u.Host,
	}, nil
}

// Address returns the address for d. For a GET descriptor with at least
// one parameter, the result is the target followed by "?" (or "&" if
// the target already has a query) and the "&"-joined key=value pairs in
// parameter insertion order. If the target has a fragment, the pairs are
// inserted before the "#". Otherwise the result is the target.
//
// Values are formatted with fmt.Sprint. Keys and values are escaped
// according to enc.
func Address(d Descriptor, enc Encoding) string {
	target := d.Target()
	params := d.Parameters()
	if !d.Method().IsGet() || params.Len() == 0 {
		return target
	}

	var fragment string
	if i := strings.IndexByte(target, '#'); i >= 0 {
		target, fragment = target[:i], target[i:]
	}

	var b strings.Builder
	b.WriteString(target)
	connector := "?"
	if strings.Contains(target, "?") {
		connector = "&"
	}
	params.Range(func(k string, v interface{}) bool {
		b.WriteString(connector)
		b.WriteString(enc.escape(k))
		b.WriteByte('=')
		b.WriteString(enc.escape(fmt.Sprint(v)))
		connector = "&"
		return true
	})
	b.WriteString(fragment)
	return b.String()
}

// checkAddress rejects addresses holding bytes a URL cannot carry
// unescaped. url.Parse accepts most of them in the query.
func checkAddress(address string) error {
	for i := 0; i < len(address); i++ {
		c := address[i]
		if !urlByte(c) {
			return fmt.Errorf("invalid character %q in URL", c)
		}
		if c == '%' && (i+2 >= len(address) || !isHex(address[i+1]) || !isHex(address[i+2])) {
			return fmt.Errorf("invalid escape %q in URL", address[i:min(i+3, len(address))])
		}
	}
	return nil
}

// urlByte reports whether c is an RFC 3986 unreserved, reserved or
// percent character.
func urlByte(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("-._~:/?#[]@!$&'()*+,;=%", c) >= 0
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

// Body returns the request body for d: nil if d is a GET or has no
// parameters, and otherwise the parameters encoded as a JSON object.
func Body(d Descriptor) ([]byte, error) {
	params := d.Parameters()
	if params == nil || d.Method().IsGet() {
		return nil, nil
	}
	return params.MarshalJSON()
}

// ToRequest creates an HTTP request corresponding to the given request
// plan. The context of the new request is set to ctx, which may not be
// nil.
func (p *Plan) ToRequest(ctx context.Context) *http.Request {
	r := template.WithContext(ctx)
	r.Method = p.Method
	r.URL = p.URL
	r.Header = p.Header
	if len(p.Body) > 0 {
		r.Body = io.NopCloser(bytes.NewReader(p.Body))
		r.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(p.Body)), nil
		}
		r.ContentLength = int64(len(p.Body))
	}
	r.Host = p.Host
	return r
}

// WithURL returns a shallow copy of p whose URL is u. Engines use it to
// resolve a relative plan against a base URL.
func (p *Plan) WithURL(u *urlpkg.URL) *Plan {
	p2 := new(Plan)
	*p2 = *p
	p2.URL = u
	p2.Host = u.Host
	return p2
}

// hasPort is lifted verbatim from net/http/http.go
//
// Given a string of the form "host", "host:port", or "[ipv6::address]:port",
// return true if the string includes a port.
func hasPort(s string) bool { return strings.LastIndex(s, ":") > strings.LastIndex(s, "]") }

// removeEmptyPort is lifted verbatim from net/http/http.go
//
// removeEmptyPort strips the empty port in ":port" to ""
// as mandated by RFC 3986 Section 6.2.3.
func removeEmptyPort(host string) string {
	if hasPort(host) {
		return strings.TrimSuffix(host, ":")
	}
	return host
}
