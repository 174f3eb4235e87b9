// Package transport gates outbound HTTP calls through a gate.Gate, so a
// stock http.Client pointed at an OpenAI-compatible endpoint honors the
// configured concurrency limit without changes at each call site.
package transport

import (
	"errors"
	"io"
	"net/http"

	gferrors "github.com/vnykmshr/llmgate/pkg/common/errors"
	"github.com/vnykmshr/llmgate/pkg/gate"
)

// Transport is an http.RoundTripper that holds a gate slot for each request
// until its response body is fully read or closed.
type Transport struct {
	// Base performs the request. nil means http.DefaultTransport.
	Base http.RoundTripper
	// Gate bounds concurrency. nil means gate.Default().
	Gate *gate.Gate
}

// NewClient returns an http.Client whose requests pass through g.
func NewClient(g *gate.Gate, base http.RoundTripper) *http.Client {
	return &http.Client{Transport: &Transport{Base: base, Gate: g}}
}

// RoundTrip implements http.RoundTripper. Waiting for a slot honors the
// request context.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	permit, err := t.gate().Acquire(req.Context())
	if err != nil {
		// RoundTrip must close the request body even when it fails.
		if req.Body != nil {
			req.Body.Close()
		}
		return nil, gferrors.NewOperationError("transport", "RoundTrip", err).
			WithContext("waiting for gate slot")
	}

	resp, err := t.base().RoundTrip(req)
	if err != nil {
		permit.Release()
		return nil, err
	}
	if resp.Body == nil {
		permit.Release()
		return resp, nil
	}

	resp.Body = &gatedBody{ReadCloser: resp.Body, release: permit.Release}
	return resp, nil
}

func (t *Transport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}

func (t *Transport) gate() *gate.Gate {
	if t.Gate != nil {
		return t.Gate
	}
	return gate.Default()
}

// gatedBody releases the slot at EOF or Close, whichever comes first.
type gatedBody struct {
	io.ReadCloser
	release func()
}

func (b *gatedBody) Read(p []byte) (int, error) {
	n, err := b.ReadCloser.Read(p)
	if errors.Is(err, io.EOF) {
		b.release()
	}
	return n, err
}

func (b *gatedBody) Close() error {
	err := b.ReadCloser.Close()
	b.release()
	return err
}
