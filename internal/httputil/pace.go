// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"net/http"

	"golang.org/x/time/rate"
)

// pacedTransport blocks each outgoing request on a rate limiter. Scraped
// sites get paced requests so one fan-out burst cannot hammer them.
type pacedTransport struct {
	base    http.RoundTripper
	limiter *rate.Limiter
}

// RoundTrip waits for limiter permission, honoring request cancellation.
func (t *pacedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := t.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}
	return t.base.RoundTrip(req)
}

// NewPacedClient returns an HTTP client derived from base whose requests are
// limited to reqPerSec with a burst of one. A nil base uses defaults;
// reqPerSec <= 0 defaults to 1.
func NewPacedClient(base *http.Client, reqPerSec float64) *http.Client {
	if reqPerSec <= 0 {
		reqPerSec = 1
	}

	c := &http.Client{}
	rt := http.DefaultTransport
	if base != nil {
		c.Timeout = base.Timeout
		c.Jar = base.Jar
		if base.Transport != nil {
			rt = base.Transport
		}
	}

	c.Transport = &pacedTransport{
		base:    rt,
		limiter: rate.NewLimiter(rate.Limit(reqPerSec), 1),
	}
	return c
}
