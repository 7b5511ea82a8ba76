package adapter

import (
	"errors"
	"fmt"
)

// ErrUpstream is the root of every remote inference failure. Callers recover
// from it locally and never surface it to clients.
var ErrUpstream = errors.New("upstream inference error")

var (
	ErrAdapterDisabled     = fmt.Errorf("%w: adapter disabled", ErrUpstream)
	ErrUpstreamUnavailable = fmt.Errorf("%w: service unavailable", ErrUpstream)
	ErrUpstreamStatus      = fmt.Errorf("%w: unexpected status", ErrUpstream)
	ErrUpstreamPayload     = fmt.Errorf("%w: malformed payload", ErrUpstream)
	ErrUnauthorized        = fmt.Errorf("%w: api token rejected", ErrUpstream)
	ErrRateLimited         = fmt.Errorf("%w: rate limited", ErrUpstream)
)
