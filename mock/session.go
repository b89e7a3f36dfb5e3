// Package mock provides function-field test doubles for fluentdoc
// interfaces.
package mock

import (
	"context"

	"github.com/fwojciec/fluentdoc"
)

var _ fluentdoc.Session = (*Session)(nil)

// Session is a mock implementation of fluentdoc.Session.
type Session struct {
	NavigateFn func(ctx context.Context, url string) error
	ClickFn    func(ctx context.Context, selector string) error
	FramesFn   func(ctx context.Context) ([]fluentdoc.Frame, error)
	CloseFn    func() error
}

func (s *Session) Navigate(ctx context.Context, url string) error {
	return s.NavigateFn(ctx, url)
}

func (s *Session) Click(ctx context.Context, selector string) error {
	if s.ClickFn == nil {
		return nil
	}
	return s.ClickFn(ctx, selector)
}

func (s *Session) Frames(ctx context.Context) ([]fluentdoc.Frame, error) {
	return s.FramesFn(ctx)
}

func (s *Session) Close() error {
	if s.CloseFn == nil {
		return nil
	}
	return s.CloseFn()
}

var _ fluentdoc.Frame = (*Frame)(nil)

// Frame is a mock implementation of fluentdoc.Frame.
type Frame struct {
	NavigateFn  func(ctx context.Context, url string) error
	InnerTextFn func(ctx context.Context, selector string) (string, error)
	HTMLFn      func(ctx context.Context) (string, error)
	EvalFn      func(ctx context.Context, js string) (string, error)
	URLFn       func(ctx context.Context) (string, error)
}

func (f *Frame) Navigate(ctx context.Context, url string) error {
	return f.NavigateFn(ctx, url)
}

func (f *Frame) InnerText(ctx context.Context, selector string) (string, error) {
	return f.InnerTextFn(ctx, selector)
}

func (f *Frame) HTML(ctx context.Context) (string, error) {
	if f.HTMLFn == nil {
		return "", nil
	}
	return f.HTMLFn(ctx)
}

func (f *Frame) Eval(ctx context.Context, js string) (string, error) {
	if f.EvalFn == nil {
		return `"complete"`, nil
	}
	return f.EvalFn(ctx, js)
}

func (f *Frame) URL(ctx context.Context) (string, error) {
	if f.URLFn == nil {
		return "", nil
	}
	return f.URLFn(ctx)
}
