// Copyright 2021 The dispatch Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package dispatch_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/gogama/dispatch"
	"github.com/gogama/dispatch/failure"
	"github.com/gogama/dispatch/request"
)

// Post is an application type which decodes itself.
type Post struct {
	ID    int
	Title string
}

func (p *Post) DecodeJSON(obj map[string]interface{}) error {
	id, ok := obj["id"].(float64)
	if !ok {
		return errors.New("post: bad id")
	}
	title, ok := obj["title"].(string)
	if !ok {
		return errors.New("post: bad title")
	}
	p.ID, p.Title = int(id), title
	return nil
}

// getPost is a request kind: an independent struct implementing
// request.Descriptor, plus ValidatorProvider for its own validation.
type getPost struct {
	base string
	id   int
}

func (r getPost) Target() string { return fmt.Sprintf("%s/posts/%d", r.base, r.id) }
func (r getPost) Method() request.Method { return request.GET }
func (r getPost) Parameters() *request.Params { return nil }
func (r getPost) Headers() map[string]string { return map[string]string{"Accept": "application/json"} }
func (r getPost) Validators() []dispatch.Validator { return []dispatch.Validator{dispatch.RequireKeys("id")} }

// searchPosts is another request kind, unrelated to getPost by any type
// hierarchy.
type searchPosts struct {
	base  string
	query string
}

func (r searchPosts) Target() string { return r.base + "/posts" }
func (r searchPosts) Method() request.Method { return request.GET }
func (r searchPosts) Parameters() *request.Params {
	return request.NewParams().Set("q", r.query).Set("limit", 2)
}
func (r searchPosts) Headers() map[string]string { return nil }

func newExampleServer() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/posts/1":
			_, _ = io.WriteString(w, `{"id":1,"title":"hello"}`)
		case r.URL.Path == "/posts" && strings.HasPrefix(r.URL.RawQuery, "q=go&limit=2"):
			_, _ = io.WriteString(w, `[{"id":1,"title":"hello"},{"title":"no id"},{"id":3,"title":"again"}]`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func ExampleDispatchOne() {
	server := newExampleServer()
	defer server.Close()
	client := &dispatch.Client{}

	post, err := dispatch.DispatchOne[Post](context.Background(), client, getPost{base: server.URL, id: 1})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(post.ID, post.Title)
	// Output: 1 hello
}

func ExampleDispatchMany() {
	server := newExampleServer()
	defer server.Close()
	client := &dispatch.Client{}

	posts, err := dispatch.DispatchMany[Post](context.Background(), client, searchPosts{base: server.URL, query: "go"})
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, p := range posts {
		fmt.Println(p.ID, p.Title)
	}
	// Output:
	// 1 hello
	// 3 again
}

func ExampleAsync() {
	server := newExampleServer()
	defer server.Close()
	client := &dispatch.Client{
		Plugins: []dispatch.Plugin{dispatch.PluginFuncs{
			OnRequestSent: func(d request.Descriptor) {
				fmt.Println("sending", d.Method())
			},
		}},
	}

	f := dispatch.Async(context.Background(), dispatch.One[Post](client, getPost{base: server.URL, id: 1}))
	post, err := f.Wait(context.Background())
	fmt.Println(post.Title, err)
	// Output:
	// sending GET
	// hello <nil>
}

func ExampleStream() {
	server := newExampleServer()
	defer server.Close()
	client := &dispatch.Client{}

	for r := range dispatch.Stream(context.Background(), client.Call(getPost{base: server.URL, id: 2})) {
		var status *failure.StatusError
		if errors.As(r.Err, &status) {
			fmt.Println(r.Value, failure.KindOf(r.Err), status.StatusCode)
		}
	}
	// Output: <nil> WrongResponse 404
}
