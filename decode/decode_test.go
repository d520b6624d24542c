// Copyright 2021 The dispatch Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package decode

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type todo struct {
	ID    int
	Title string
}

func (t *todo) DecodeJSON(obj map[string]interface{}) error {
	id, ok := obj["id"].(float64)
	if !ok {
		return errors.New("missing id")
	}
	title, ok := obj["title"].(string)
	if !ok {
		return errors.New("missing title")
	}
	t.ID, t.Title = int(id), title
	return nil
}

type post struct {
	ID     int      `json:"id"`
	Title  string   `json:"title"`
	Tags   []string `json:"tags"`
	Hidden bool     `json:"-"`
}

func TestOne(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		v, err := One[todo](map[string]interface{}{"id": float64(1), "title": "x"})
		require.NoError(t, err)
		assert.Equal(t, todo{ID: 1, Title: "x"}, v)
	})
	t.Run("decoder error", func(t *testing.T) {
		_, err := One[todo](map[string]interface{}{"id": float64(1)})
		assert.EqualError(t, err, "missing title")
	})
	t.Run("wrong shape", func(t *testing.T) {
		for _, payload := range []interface{}{nil, "s", float64(1), true, []interface{}{}} {
			_, err := One[todo](payload)
			var shape *ShapeError
			require.ErrorAs(t, err, &shape)
			assert.Equal(t, "object", shape.Want)
			assert.Equal(t, -1, shape.Index)
		}
	})
}

func TestMany(t *testing.T) {
	t.Run("drops failures", func(t *testing.T) {
		payload := []interface{}{
			map[string]interface{}{"id": float64(1), "title": "a"},
			map[string]interface{}{"id": float64(2)},
			map[string]interface{}{"id": float64(3), "title": "c"},
		}

		vs, err := Many[todo](payload)

		require.NoError(t, err)
		assert.Equal(t, []todo{{ID: 1, Title: "a"}, {ID: 3, Title: "c"}}, vs)
	})
	t.Run("all fail", func(t *testing.T) {
		vs, err := Many[todo]([]interface{}{map[string]interface{}{}})
		require.NoError(t, err)
		assert.NotNil(t, vs)
		assert.Empty(t, vs)
	})
	t.Run("empty array", func(t *testing.T) {
		vs, err := Many[todo]([]interface{}{})
		require.NoError(t, err)
		assert.NotNil(t, vs)
		assert.Empty(t, vs)
	})
	t.Run("not an array", func(t *testing.T) {
		vs, err := Many[todo](map[string]interface{}{"id": float64(1), "title": "a"})
		assert.Nil(t, vs)
		assert.EqualError(t, err, "decode: expected array, got object")
	})
	t.Run("non-object element", func(t *testing.T) {
		calls := 0
		f := func(obj map[string]interface{}) (todo, error) {
			calls++
			return todo{}, nil
		}

		_, err := ManyFunc([]interface{}{map[string]interface{}{}, "x"}, f)

		var shape *ShapeError
		require.ErrorAs(t, err, &shape)
		assert.Equal(t, 1, shape.Index)
		assert.EqualError(t, err, "decode: element 1: expected object, got string")
		assert.Equal(t, 0, calls)
	})
}

func TestStruct(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		v, err := Struct[post](map[string]interface{}{
			"id":     float64(7),
			"title":  "hello",
			"tags":   []interface{}{"a", "b"},
			"Hidden": true,
			"extra":  "ignored",
		})
		require.NoError(t, err)
		assert.Equal(t, post{ID: 7, Title: "hello", Tags: []string{"a", "b"}}, v)
	})
	t.Run("missing members", func(t *testing.T) {
		v, err := Struct[post](map[string]interface{}{"id": float64(7)})
		require.NoError(t, err)
		assert.Equal(t, post{ID: 7}, v)
	})
	t.Run("wrong type", func(t *testing.T) {
		_, err := Struct[post](map[string]interface{}{"title": float64(7)})
		assert.Error(t, err)
	})
	t.Run("via OneFunc", func(t *testing.T) {
		v, err := OneFunc(map[string]interface{}{"id": float64(1)}, Struct[post])
		require.NoError(t, err)
		assert.Equal(t, 1, v.ID)
	})
	t.Run("via ManyFunc", func(t *testing.T) {
		vs, err := ManyFunc([]interface{}{
			map[string]interface{}{"id": float64(1)},
			map[string]interface{}{"id": "bad"},
			map[string]interface{}{"id": float64(3)},
		}, Struct[post])
		require.NoError(t, err)
		assert.Equal(t, []post{{ID: 1}, {ID: 3}}, vs)
	})
}

func TestShapeError(t *testing.T) {
	testCases := []struct {
		got  interface{}
		want string
	}{
		{nil, "decode: expected object, got null"},
		{"s", "decode: expected object, got string"},
		{float64(1), "decode: expected object, got number"},
		{false, "decode: expected object, got boolean"},
		{[]interface{}{}, "decode: expected object, got array"},
		{42, "decode: expected object, got int"},
	}
	for _, testCase := range testCases {
		t.Run(testCase.want, func(t *testing.T) {
			err := &ShapeError{Want: "object", Got: testCase.got, Index: -1}
			assert.EqualError(t, err, testCase.want)
		})
	}
}
