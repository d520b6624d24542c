// Copyright 2021 The dispatch Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package dispatch

import (
	"context"
	"sync"
)

// A Result is the outcome of one Call.
type Result[T any] struct {
	Value T
	Err   error
}

// A Future is the pending outcome of a Call started by Async. It is
// completed exactly once.
type Future[T any] struct {
	ch     chan struct{}
	cancel context.CancelFunc
	result Result[T]

	once sync.Once
	mu   sync.Mutex
}

// Async runs call on a new goroutine and returns a Future for its
// outcome. The call's context is derived from ctx and is cancelled by
// Future.Cancel, or once the call has completed.
func Async[T any](ctx context.Context, call Call[T]) *Future[T] {
	if ctx == nil {
		panic("dispatch: nil context")
	}
	ctx, cancel := context.WithCancel(ctx)
	f := &Future[T]{
		ch:     make(chan struct{}),
		cancel: cancel,
	}
	go func() {
		defer cancel()
		v, err := call(ctx)
		f.complete(Result[T]{Value: v, Err: err})
	}()
	return f
}

func (f *Future[T]) complete(r Result[T]) {
	f.once.Do(func() {
		f.mu.Lock()
		f.result = r
		f.mu.Unlock()
		close(f.ch)
	})
}

// Done returns a channel that is closed when the outcome is ready.
func (f *Future[T]) Done() <-chan struct{} {
	return f.ch
}

// Wait blocks until the future is completed or ctx is done. If ctx is
// done first, the error is ctx.Err() and the call keeps running.
func (f *Future[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-f.ch:
		r := f.get()
		return r.Value, r.Err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Result returns the outcome and true if the future is completed, or
// the zero Result and false if it is not.
func (f *Future[T]) Result() (Result[T], bool) {
	select {
	case <-f.ch:
		return f.get(), true
	default:
		return Result[T]{}, false
	}
}

// OnDone registers cb to run on its own goroutine once the future is
// completed. If the future is already completed, cb runs promptly.
func (f *Future[T]) OnDone(cb func(Result[T])) {
	go func() {
		<-f.ch
		cb(f.get())
	}()
}

// Cancel cancels the call's context. The future is still completed,
// normally with a failure.WrongResponse error wrapping
// context.Canceled, unless the call had already finished.
func (f *Future[T]) Cancel() {
	f.cancel()
}

func (f *Future[T]) get() Result[T] {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.result
}

// Callback runs call on a new goroutine and delivers the outcome to
// exactly one of onSuccess and onError, exactly once. Either callback
// may be nil. The returned function cancels the call.
func Callback[T any](ctx context.Context, call Call[T], onSuccess func(T), onError func(error)) (cancel func()) {
	f := Async(ctx, call)
	f.OnDone(func(r Result[T]) {
		if r.Err != nil {
			if onError != nil {
				onError(r.Err)
			}
		} else if onSuccess != nil {
			onSuccess(r.Value)
		}
	})
	return f.Cancel
}

// Stream runs call on a new goroutine and returns a channel which
// receives the single outcome and is then closed. The channel is
// buffered, so the goroutine never blocks if nobody receives.
func Stream[T any](ctx context.Context, call Call[T]) <-chan Result[T] {
	if ctx == nil {
		panic("dispatch: nil context")
	}
	ch := make(chan Result[T], 1)
	go func() {
		defer close(ch)
		v, err := call(ctx)
		ch <- Result[T]{Value: v, Err: err}
	}()
	return ch
}
