// Copyright 2021 The dispatch Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package config provides dispatch client configuration loaded from
// environment variables.
package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/gogama/dispatch/internal/logging"
	"github.com/kelseyhightower/envconfig"
)

const errPrefix = "config:Validate"

// Supported values of Config.Transport.
const (
	TransportNetHTTP = "net/http"
	TransportResty   = "resty"
)

// Config holds dispatch client configuration. With prefix "APP", the
// variable for BaseURL is APP_BASE_URL, and so on.
type Config struct {
	// BaseURL is the URL relative request targets are resolved against.
	BaseURL string `envconfig:"BASE_URL"`
	// Timeout bounds each transport call. Zero means no timeout.
	Timeout time.Duration `envconfig:"TIMEOUT" default:"5s"`
	// HTTP2 enables HTTP/2 for the net/http transport.
	HTTP2 bool `envconfig:"HTTP2" default:"true"`
	// EscapeQuery percent-encodes GET query parameters.
	EscapeQuery bool `envconfig:"ESCAPE_QUERY" default:"false"`
	// Transport selects the transport engine, "net/http" or "resty".
	Transport string `envconfig:"TRANSPORT" default:"net/http"`
	// UserAgent, if set, is sent with requests which do not set one.
	UserAgent string `envconfig:"USER_AGENT"`

	// Logging
	LogLevel       string `envconfig:"LOG_LEVEL" default:"info"`
	LogDevelopment bool   `envconfig:"LOG_DEVELOPMENT" default:"false"`
	// LogTraffic installs the network-activity logger plugin.
	LogTraffic bool `envconfig:"LOG_TRAFFIC" default:"false"`

	// MetricsNamespace, if set, installs the metrics plugin with
	// counters in this namespace.
	MetricsNamespace string `envconfig:"METRICS_NAMESPACE"`
}

// Load loads configuration from environment variables named with the
// given prefix. The configuration is not validated.
func Load(prefix string) (*Config, error) {
	var c Config
	if err := envconfig.Process(prefix, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks that every setting holds a usable value.
func (c *Config) Validate() error {
	if c.BaseURL != "" {
		u, err := url.Parse(c.BaseURL)
		if err != nil || !u.IsAbs() {
			return fmt.Errorf("%s - BASE_URL must be an absolute URL, got %q", errPrefix, c.BaseURL)
		}
	}
	if c.Timeout < 0 {
		return fmt.Errorf("%s - TIMEOUT must not be negative", errPrefix)
	}
	if c.Transport != TransportNetHTTP && c.Transport != TransportResty {
		return fmt.Errorf("%s - TRANSPORT must be %q or %q, got %q", errPrefix, TransportNetHTTP, TransportResty, c.Transport)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%s - LOG_LEVEL: %w", errPrefix, err)
	}
	if c.MetricsNamespace != "" && !validMetricName(c.MetricsNamespace) {
		return fmt.Errorf("%s - METRICS_NAMESPACE %q is not a valid metric name", errPrefix, c.MetricsNamespace)
	}
	return nil
}

func validMetricName(s string) bool {
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
