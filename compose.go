// Copyright 2021 The dispatch Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package dispatch

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/gogama/dispatch/config"
	"github.com/gogama/dispatch/engine"
	restyengine "github.com/gogama/dispatch/engine/resty"
	"github.com/gogama/dispatch/internal/logging"
	"github.com/gogama/dispatch/plugins"
	"github.com/gogama/dispatch/request"
	"github.com/gogama/dispatch/timeout"
	"github.com/prometheus/client_golang/prometheus"
)

// NewClient composes a Client from cfg: the transport engine and its
// timeout policy, the query encoding, the logger, and the optional
// traffic-logger and metrics plugins. Metrics are registered with
// prometheus.DefaultRegisterer.
//
// NewClient panics if cfg is nil. It returns an error if cfg does not
// validate.
func NewClient(cfg *config.Config) (*Client, error) {
	if cfg == nil {
		panic("dispatch: nil config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := logging.NewOrNop(logging.Config{
		Level:       cfg.LogLevel,
		Development: cfg.LogDevelopment,
	})

	tp := timeout.Infinite
	if cfg.Timeout > 0 {
		tp = timeout.Fixed(cfg.Timeout)
	}

	c := &Client{
		Logger: logger,
	}
	if cfg.EscapeQuery {
		c.QueryEncoding = request.Escaped
	}

	switch cfg.Transport {
	case config.TransportResty:
		c.Engine = restyengine.New(restyengine.Options{
			BaseURL:       cfg.BaseURL,
			UserAgent:     cfg.UserAgent,
			TimeoutPolicy: tp,
			Logger:        logger,
		})
	default:
		e, err := newHTTPEngine(cfg, tp)
		if err != nil {
			return nil, err
		}
		c.Engine = e
	}

	if cfg.LogTraffic {
		c.Plugins = append(c.Plugins, plugins.NewLogger(logger))
	}
	if cfg.MetricsNamespace != "" {
		m, err := plugins.NewMetrics(prometheus.DefaultRegisterer, cfg.MetricsNamespace)
		if err != nil {
			return nil, fmt.Errorf("dispatch: metrics: %w", err)
		}
		c.Plugins = append(c.Plugins, m)
	}

	return c, nil
}

func newHTTPEngine(cfg *config.Config, tp timeout.Policy) (*engine.HTTP, error) {
	doer, err := engine.NewHTTPClient(engine.ClientOptions{HTTP2: cfg.HTTP2})
	if err != nil {
		return nil, fmt.Errorf("dispatch: http client: %w", err)
	}
	e := &engine.HTTP{
		Doer:          doer,
		TimeoutPolicy: tp,
	}
	if cfg.BaseURL != "" {
		e.BaseURL, err = url.Parse(cfg.BaseURL)
		if err != nil {
			return nil, err
		}
	}
	if cfg.UserAgent != "" {
		e.Header = http.Header{"User-Agent": []string{cfg.UserAgent}}
	}
	return e, nil
}
