// Copyright 2021 The dispatch Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package dispatch

import (
	"math/rand"
	"testing"

	"github.com/gogama/dispatch/request"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge(t *testing.T) {
	t.Run("order", func(t *testing.T) {
		rnd := rand.New(rand.NewSource(1))
		for trial := 0; trial < 100; trial++ {
			call, req, client := randomScope(rnd, "call"), randomScope(rnd, "request"), randomScope(rnd, "client")

			m := Merge(call, req, client)

			var expected []Plugin
			expected = append(expected, call.Plugins...)
			expected = append(expected, req.Plugins...)
			expected = append(expected, client.Plugins...)
			require.Len(t, m.Plugins, len(expected))
			for i := range expected {
				assert.Same(t, expected[i], m.Plugins[i], "trial %d, index %d", trial, i)
			}
			assert.Len(t, m.Validators, len(call.Validators)+len(req.Validators)+len(client.Validators))
			assert.Len(t, m.Processors, len(call.Processors)+len(req.Processors)+len(client.Processors))
		}
	})
	t.Run("empty", func(t *testing.T) {
		m := Merge(Collaborators{}, Collaborators{}, Collaborators{})
		assert.NotNil(t, m.Plugins)
		assert.Empty(t, m.Plugins)
		assert.Empty(t, m.Validators)
		assert.Empty(t, m.Processors)
	})
	t.Run("no aliasing", func(t *testing.T) {
		p1, p2 := &recorder{name: "1"}, &recorder{name: "2"}
		client := Collaborators{Plugins: make([]Plugin, 1, 10)}
		client.Plugins[0] = p1

		m := Merge(Collaborators{}, Collaborators{}, client)
		m.Plugins[0] = p2
		_ = append(m.Plugins, p2)

		assert.Same(t, p1, client.Plugins[0])
		assert.Len(t, client.Plugins, 1)
		assert.Nil(t, client.Plugins[:2][1])
	})
	t.Run("nil entries", func(t *testing.T) {
		assert.PanicsWithValue(t, "dispatch: nil plugin", func() {
			Merge(Collaborators{Plugins: []Plugin{nil}}, Collaborators{}, Collaborators{})
		})
		assert.PanicsWithValue(t, "dispatch: nil validator", func() {
			Merge(Collaborators{}, Collaborators{Validators: []Validator{nil}}, Collaborators{})
		})
		assert.PanicsWithValue(t, "dispatch: nil processor", func() {
			Merge(Collaborators{}, Collaborators{}, Collaborators{Processors: []Processor{nil}})
		})
	})
	t.Run("uncomparable entries", func(t *testing.T) {
		assert.NotPanics(t, func() {
			Merge(Collaborators{Plugins: []Plugin{PluginFuncs{}}}, Collaborators{}, Collaborators{})
		})
	})
}

func randomScope(rnd *rand.Rand, name string) Collaborators {
	var c Collaborators
	for i := rnd.Intn(5); i > 0; i-- {
		c.Plugins = append(c.Plugins, &recorder{name: name})
	}
	for i := rnd.Intn(5); i > 0; i-- {
		c.Validators = append(c.Validators, RequireKeys(name))
	}
	for i := rnd.Intn(5); i > 0; i-- {
		c.Processors = append(c.Processors, Unwrap(name))
	}
	return c
}

func TestRequestScoped(t *testing.T) {
	t.Run("plain descriptor", func(t *testing.T) {
		c := requestScoped(request.New(request.GET, "x"))
		assert.Equal(t, Collaborators{}, c)
	})
	t.Run("Request", func(t *testing.T) {
		p := &NopPlugin{}
		v := RequireKeys("a")
		r := NewRequest(request.POST, "x")
		r.RequestPlugins = []Plugin{p}
		r.RequestValidators = []Validator{v}

		c := requestScoped(r)

		require.Len(t, c.Plugins, 1)
		assert.Same(t, p, c.Plugins[0])
		assert.Len(t, c.Validators, 1)
		assert.Empty(t, c.Processors)
	})
	t.Run("partial provider", func(t *testing.T) {
		c := requestScoped(processorsOnly{Endpoint: request.New(request.GET, "x")})
		assert.Empty(t, c.Plugins)
		assert.Empty(t, c.Validators)
		assert.Len(t, c.Processors, 1)
	})
}

type processorsOnly struct {
	*request.Endpoint
}

func (processorsOnly) Processors() []Processor {
	return []Processor{Unwrap("data")}
}

func TestOptions(t *testing.T) {
	p := &NopPlugin{}
	v := RequireKeys("a")
	pr := Unwrap("b")

	c := callScoped([]Option{
		WithPlugins(p),
		WithValidators(v),
		WithProcessors(pr),
		WithPlugins(p, p),
	})

	assert.Len(t, c.Plugins, 3)
	assert.Len(t, c.Validators, 1)
	assert.Len(t, c.Processors, 1)
	assert.Equal(t, Collaborators{}, callScoped(nil))
}
