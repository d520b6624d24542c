// Copyright 2021 The dispatch Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package engine

import (
	"crypto/tls"
	"net"
	"net/http"
	"time"

	"golang.org/x/net/http2"
)

// ClientOptions configures NewHTTPClient.
type ClientOptions struct {
	// HTTP2 enables HTTP/2 over TLS via golang.org/x/net/http2.
	HTTP2 bool
	// Timeout is the overall http.Client timeout. Zero means none;
	// per-call timeouts are normally set by the engine's TimeoutPolicy.
	Timeout time.Duration
	// TLSConfig is the TLS configuration to use. It is cloned. If nil,
	// the default configuration is used.
	TLSConfig *tls.Config
}

// NewHTTPClient returns an *http.Client with its own transport, for use
// as an HTTPDoer. The transport settings mirror http.DefaultTransport.
func NewHTTPClient(o ClientOptions) (*http.Client, error) {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
	if o.TLSConfig != nil {
		t.TLSClientConfig = o.TLSConfig.Clone()
	}
	if o.HTTP2 {
		if err := http2.ConfigureTransport(t); err != nil {
			return nil, err
		}
	}
	return &http.Client{
		Transport: t,
		Timeout:   o.Timeout,
	}, nil
}
