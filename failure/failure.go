// Copyright 2021 The dispatch Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package failure

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// A Kind identifies one member of the closed dispatch error taxonomy.
type Kind int

const (
	// Other is reported by KindOf for a nil error and for any error
	// which is not an *Error, such as an error raised by a response
	// validator.
	Other Kind = iota
	// InvalidURL indicates that the request target, after parameters
	// were appended to it, could not be parsed as a URL. No network
	// activity takes place.
	InvalidURL
	// InvalidParameters indicates that the request parameters could not
	// be serialized into a JSON request body. No network activity takes
	// place.
	InvalidParameters
	// WrongResponse indicates a transport-level failure: DNS, connection
	// reset, timeout, cancellation, or a non-2XX status code. The cause
	// is available via errors.Unwrap.
	WrongResponse
	// EmptyResponse indicates a successful transport call that returned
	// no body.
	EmptyResponse
	// InvalidResponseBody indicates a response body which is not valid
	// JSON.
	InvalidResponseBody
	// InvalidParsing indicates the payload could not be decoded into the
	// requested type, either because its shape was wrong or because the
	// decoder rejected it.
	InvalidParsing
	// kindSentinel provides the total number of kinds.
	kindSentinel
)

var kindNames = []string{
	"Other",
	"InvalidURL",
	"InvalidParameters",
	"WrongResponse",
	"EmptyResponse",
	"InvalidResponseBody",
	"InvalidParsing",
}

// Kinds returns every kind produced by the dispatch library, excluding
// Other.
func Kinds() []Kind {
	return []Kind{
		InvalidURL,
		InvalidParameters,
		WrongResponse,
		EmptyResponse,
		InvalidResponseBody,
		InvalidParsing,
	}
}

// String returns the name of the kind.
func (k Kind) String() string {
	if k < 0 || k >= kindSentinel {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Sentinel errors, one per kind, for use with errors.Is.
var (
	ErrInvalidURL          = &Error{Kind: InvalidURL}
	ErrInvalidParameters   = &Error{Kind: InvalidParameters}
	ErrWrongResponse       = &Error{Kind: WrongResponse}
	ErrEmptyResponse       = &Error{Kind: EmptyResponse}
	ErrInvalidResponseBody = &Error{Kind: InvalidResponseBody}
	ErrInvalidParsing      = &Error{Kind: InvalidParsing}
)

// An Error is an error produced by the dispatch library.
type Error struct {
	// Kind is the member of the error taxonomy this error belongs to.
	Kind Kind
	// Op is the HTTP method of the request, in the same format used by
	// url.Error ("Get", "Post", ...). It may be empty.
	Op string
	// URL is the request address. It may be empty if the address could
	// not be constructed.
	URL string
	// Err is the underlying cause, if any. It is always non-nil for
	// WrongResponse.
	Err error
}

// New constructs an *Error of the given kind wrapping err.
func New(kind Kind, method, url string, err error) *Error {
	return &Error{
		Kind: kind,
		Op:   Op(method),
		URL:  url,
		Err:  err,
	}
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("dispatch: ")
	b.WriteString(e.Kind.String())
	if e.Op != "" || e.URL != "" {
		b.WriteString(" (")
		b.WriteString(strings.TrimSpace(e.Op + " " + quoteURL(e.URL)))
		b.WriteString(")")
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind. It makes the
// package sentinels work with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Timeout reports whether the underlying cause is a timeout.
func (e *Error) Timeout() bool {
	return Transience(e.Err) == Timeout
}

// KindOf returns the kind of the first *Error in err's chain, or Other
// if there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Other
}

// A StatusError is the cause of a WrongResponse error when the server
// answered with a non-2XX status code.
type StatusError struct {
	StatusCode int
	// Body is the response body received with the status code, which
	// may be empty.
	Body []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// Op formats an HTTP method the way net/http formats url.Error.Op.
func Op(method string) string {
	if method == "" {
		return "Get"
	}
	return method[:1] + strings.ToLower(method[1:])
}

func quoteURL(u string) string {
	if u == "" {
		return ""
	}
	return fmt.Sprintf("%q", u)
}
