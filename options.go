// Copyright 2021 The dispatch Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package dispatch

// An Option adds call-scoped collaborators to one dispatch. Call-scoped
// collaborators run before request-scoped and client-scoped ones.
type Option func(*Collaborators)

// WithPlugins adds call-scoped plugins.
func WithPlugins(plugins ...Plugin) Option {
	return func(c *Collaborators) {
		c.Plugins = append(c.Plugins, plugins...)
	}
}

// WithValidators adds call-scoped validators.
func WithValidators(validators ...Validator) Option {
	return func(c *Collaborators) {
		c.Validators = append(c.Validators, validators...)
	}
}

// WithProcessors adds call-scoped processors.
func WithProcessors(processors ...Processor) Option {
	return func(c *Collaborators) {
		c.Processors = append(c.Processors, processors...)
	}
}

func callScoped(opts []Option) Collaborators {
	var c Collaborators
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
