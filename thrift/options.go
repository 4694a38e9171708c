package thrift

import (
	"log/slog"
	"time"
)

const defaultBufferSize = 8192

type options struct {
	connectTimeout time.Duration
	socketTimeout  time.Duration
	bufferSize     int
	registry       *Registry
	logger         *slog.Logger
}

func defaultOptions() options {
	return options{
		connectTimeout: 10 * time.Second,
		socketTimeout:  60 * time.Second,
		bufferSize:     defaultBufferSize,
		registry:       DefaultRegistry,
		logger:         slog.Default(),
	}
}

// Option configures a Conn created by Dial.
type Option func(*options)

// WithConnectTimeout sets the TCP connect timeout. Zero disables it.
func WithConnectTimeout(d time.Duration) Option {
	return func(o *options) { o.connectTimeout = d }
}

// WithSocketTimeout sets the per-IO socket timeout. Zero disables it.
func WithSocketTimeout(d time.Duration) Option {
	return func(o *options) { o.socketTimeout = d }
}

// WithBufferSize sets the buffered-transport size in bytes.
func WithBufferSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.bufferSize = n
		}
	}
}

// WithRegistry dispatches calls through a private method registry instead of
// DefaultRegistry.
func WithRegistry(r *Registry) Option {
	return func(o *options) {
		if r != nil {
			o.registry = r
		}
	}
}

// WithLogger sets the connection's logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
