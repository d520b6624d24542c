// Copyright 2021 The dispatch Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"bytes"
	"sort"

	"github.com/bytedance/sonic"
)

// Params is an insertion-ordered mapping from string keys to
// JSON-compatible values.
//
// Insertion order is significant: it is the order in which parameters
// appear in a GET query string and in a JSON request body.
//
// A nil *Params is valid and means "no parameters". All read methods
// may be called on a nil *Params.
type Params struct {
	keys   []string
	values map[string]interface{}
}

// NewParams returns an empty parameter set.
func NewParams() *Params {
	return &Params{values: make(map[string]interface{})}
}

// FromMap returns a parameter set holding the entries of m. Because Go
// map iteration is random, keys are inserted in lexical order.
func FromMap(m map[string]interface{}) *Params {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	p := NewParams()
	for _, k := range keys {
		p.Set(k, m[k])
	}
	return p
}

// Set associates value with key and returns p. Setting an existing key
// replaces its value without changing its position.
func (p *Params) Set(key string, value interface{}) *Params {
	if p.values == nil {
		p.values = make(map[string]interface{})
	}
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
	return p
}

// Get returns the value associated with key.
func (p *Params) Get(key string) (interface{}, bool) {
	if p == nil {
		return nil, false
	}
	v, ok := p.values[key]
	return v, ok
}

// Delete removes key, if present.
func (p *Params) Delete(key string) {
	if p == nil {
		return
	}
	if _, ok := p.values[key]; !ok {
		return
	}
	delete(p.values, key)
	for i, k := range p.keys {
		if k == key {
			p.keys = append(p.keys[:i:i], p.keys[i+1:]...)
			break
		}
	}
}

// Len returns the number of parameters.
func (p *Params) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// Keys returns the keys in insertion order.
func (p *Params) Keys() []string {
	if p == nil {
		return nil
	}
	keys := make([]string, len(p.keys))
	copy(keys, p.keys)
	return keys
}

// Range calls f for each parameter in insertion order, stopping early
// if f returns false.
func (p *Params) Range(f func(key string, value interface{}) bool) {
	if p == nil {
		return
	}
	for _, k := range p.keys {
		if !f(k, p.values[k]) {
			return
		}
	}
}

// Map returns a copy of the parameters as an unordered map.
func (p *Params) Map() map[string]interface{} {
	m := make(map[string]interface{}, p.Len())
	p.Range(func(k string, v interface{}) bool {
		m[k] = v
		return true
	})
	return m
}

// Clone returns a copy of p. Values are copied shallowly.
func (p *Params) Clone() *Params {
	if p == nil {
		return nil
	}
	q := NewParams()
	p.Range(func(k string, v interface{}) bool {
		q.Set(k, v)
		return true
	})
	return q
}

// MarshalJSON encodes the parameters as a JSON object whose members
// appear in insertion order.
func (p *Params) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	var err error
	p.Range(func(k string, v interface{}) bool {
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		var b []byte
		if b, err = sonic.ConfigStd.Marshal(k); err != nil {
			return false
		}
		buf.Write(b)
		buf.WriteByte(':')
		if b, err = sonic.ConfigStd.Marshal(v); err != nil {
			return false
		}
		buf.Write(b)
		return true
	})
	if err != nil {
		return nil, err
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
