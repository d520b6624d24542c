// Copyright 2021 The dispatch Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package plugins

import (
	"testing"

	"github.com/gogama/dispatch/request"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger(t *testing.T) {
	params := request.NewParams().Set("title", "x")
	d := request.New(request.POST, "https://api.test/items").
		WithParams(params).
		WithHeader("authorization", "Bearer secret").
		WithHeader("X-Trace", "t1")

	t.Run("RequestSent", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		p := NewLogger(zap.New(core))

		p.RequestSent(d)

		require.Equal(t, 1, logs.Len())
		entry := logs.All()[0]
		assert.Equal(t, "request sent", entry.Message)
		assert.Equal(t, zapcore.InfoLevel, entry.Level)
		fields := entry.ContextMap()
		assert.Equal(t, "POST", fields["method"])
		assert.Equal(t, "https://api.test/items", fields["target"])
		assert.Same(t, params, fields["params"])
		assert.Equal(t, map[string]string{
			"authorization": redacted,
			"X-Trace":       "t1",
		}, fields["headers"])
	})
	t.Run("ResponseReceived", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		p := NewLogger(zap.New(core))
		payload := map[string]interface{}{"id": float64(1)}

		p.ResponseReceived(payload, d)

		require.Equal(t, 1, logs.Len())
		entry := logs.All()[0]
		assert.Equal(t, "response received", entry.Message)
		assert.Equal(t, payload, entry.ContextMap()["payload"])
	})
	t.Run("AtLevel", func(t *testing.T) {
		core, logs := observer.New(zapcore.InfoLevel)
		base := NewLogger(zap.New(core))
		p := base.AtLevel(zapcore.DebugLevel)

		p.RequestSent(d)
		p.ResponseReceived(nil, d)

		assert.Equal(t, 0, logs.Len())
		assert.Equal(t, zapcore.InfoLevel, base.level)
	})
	t.Run("nil logger", func(t *testing.T) {
		p := NewLogger(nil)
		assert.NotPanics(t, func() {
			p.RequestSent(request.New(request.GET, "x"))
			p.ResponseReceived(nil, request.New(request.GET, "x"))
		})
	})
}

func TestScrub(t *testing.T) {
	assert.Nil(t, scrub(nil))
	in := map[string]string{"Authorization": "a", "Accept": "b"}
	out := scrub(in)
	assert.Equal(t, map[string]string{"Authorization": redacted, "Accept": "b"}, out)
	assert.Equal(t, "a", in["Authorization"])
}
