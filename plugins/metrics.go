// Copyright 2021 The dispatch Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package plugins

import (
	"errors"

	"github.com/gogama/dispatch/request"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics is a plugin which counts network activity.
type Metrics struct {
	sent     *prometheus.CounterVec
	received *prometheus.CounterVec
}

// NewMetrics returns a Metrics plugin whose counters are registered
// with reg under namespace:
//
//	<namespace>_requests_sent_total{method}
//	<namespace>_responses_received_total{method}
//
// If equivalent counters are already registered, for example by an
// earlier call with the same arguments, they are shared.
func NewMetrics(reg prometheus.Registerer, namespace string) (*Metrics, error) {
	sent, err := register(reg, prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_sent_total",
			Help:      "Total number of requests handed to the transport engine",
		},
		[]string{"method"},
	))
	if err != nil {
		return nil, err
	}

	received, err := register(reg, prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "responses_received_total",
			Help:      "Total number of payloads received from the transport engine",
		},
		[]string{"method"},
	))
	if err != nil {
		return nil, err
	}

	return &Metrics{sent: sent, received: received}, nil
}

// RequestSent increments the requests-sent counter for d's method.
func (m *Metrics) RequestSent(d request.Descriptor) {
	m.sent.WithLabelValues(d.Method().String()).Inc()
}

// ResponseReceived increments the responses-received counter for d's
// method.
func (m *Metrics) ResponseReceived(_ interface{}, d request.Descriptor) {
	m.received.WithLabelValues(d.Method().String()).Inc()
}

func register(reg prometheus.Registerer, c *prometheus.CounterVec) (*prometheus.CounterVec, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
		}
		return nil, err
	}
	return c, nil
}
