// Copyright 2021 The dispatch Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package plugins

import (
	"net/http"

	"github.com/gogama/dispatch/request"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const redacted = "<redacted>"

// Logger is a plugin which logs network activity.
type Logger struct {
	logger *zap.Logger
	level  zapcore.Level
}

// NewLogger returns a Logger plugin writing to l at info level. If l is
// nil, nothing is logged.
func NewLogger(l *zap.Logger) *Logger {
	if l == nil {
		l = zap.NewNop()
	}
	return &Logger{logger: l, level: zapcore.InfoLevel}
}

// AtLevel returns a copy of p which logs at level.
func (p *Logger) AtLevel(level zapcore.Level) *Logger {
	p2 := *p
	p2.level = level
	return &p2
}

// RequestSent logs the method, target, parameters and headers of d.
// The Authorization header value is never logged.
func (p *Logger) RequestSent(d request.Descriptor) {
	if ce := p.logger.Check(p.level, "request sent"); ce != nil {
		ce.Write(
			zap.Stringer("method", d.Method()),
			zap.String("target", d.Target()),
			zap.Any("params", d.Parameters()),
			zap.Any("headers", scrub(d.Headers())),
		)
	}
}

// ResponseReceived logs the method and target of d with the raw
// payload.
func (p *Logger) ResponseReceived(payload interface{}, d request.Descriptor) {
	if ce := p.logger.Check(p.level, "response received"); ce != nil {
		ce.Write(
			zap.Stringer("method", d.Method()),
			zap.String("target", d.Target()),
			zap.Any("payload", payload),
		)
	}
}

func scrub(headers map[string]string) map[string]string {
	if len(headers) == 0 {
		return headers
	}
	out := make(map[string]string, len(headers))
	for k, v := range headers {
		if http.CanonicalHeaderKey(k) == "Authorization" {
			v = redacted
		}
		out[k] = v
	}
	return out
}
