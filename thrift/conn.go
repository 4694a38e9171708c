// Package thrift provides the connection plumbing between the metastore
// facade and a Hive-compatible service speaking the thrift binary protocol.
//
// The package owns transport setup only: socket, buffering, protocol framing
// and connection lifecycle. Serialization of the individual service methods
// stays with thrift-generated bindings, which plug into a Registry of method
// handlers. A Conn implements the facade's Invoker interface by dispatching
// the canonical argument tuple to the registered handler.
package thrift

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	athrift "github.com/apache/thrift/lib/go/thrift"
)

// Standard errors returned by the thrift package.
var (
	// ErrUnknownMethod indicates no handler is registered for the invoked
	// method name.
	ErrUnknownMethod = errors.New("unknown metastore method")

	// ErrAlreadyRegistered indicates a handler was registered twice for
	// the same method name.
	ErrAlreadyRegistered = errors.New("method already registered")

	// ErrNotOpen indicates the connection was used before Open (or after
	// Close).
	ErrNotOpen = errors.New("connection is not open")
)

// Conn is a single connection to a metastore service. It is NOT safe for
// concurrent use: the thrift binary protocol interleaves request and
// response on one stream. Share a Client across goroutines only behind a
// pool or a serializing Invoker wrapper.
type Conn struct {
	transport athrift.TTransport
	client    athrift.TClient
	registry  *Registry
	log       *slog.Logger
	addr      string
}

// Dial creates a connection to the metastore at uri and opens its transport.
// Accepted forms are "thrift://host:port" and plain "host:port".
//
// The transport stack mirrors the canonical metastore client: TCP socket,
// buffered transport, binary protocol.
func Dial(uri string, opts ...Option) (*Conn, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	addr, err := parseAddr(uri)
	if err != nil {
		return nil, err
	}

	conf := &athrift.TConfiguration{
		ConnectTimeout: o.connectTimeout,
		SocketTimeout:  o.socketTimeout,
	}
	socket := athrift.NewTSocketConf(addr, conf)
	transport := athrift.NewTBufferedTransport(socket, o.bufferSize)
	protocol := athrift.NewTBinaryProtocolConf(transport, conf)

	c := &Conn{
		transport: transport,
		client:    athrift.NewTStandardClient(protocol, protocol),
		registry:  o.registry,
		log:       o.logger,
		addr:      addr,
	}
	if err := c.Open(); err != nil {
		return nil, fmt.Errorf("open metastore transport %s: %w", addr, err)
	}
	c.log.Debug("metastore connection opened", "addr", addr)
	return c, nil
}

// Open opens the underlying transport. Opening an open connection is a no-op.
func (c *Conn) Open() error {
	if c.transport.IsOpen() {
		return nil
	}
	return c.transport.Open()
}

// Close closes the underlying transport.
func (c *Conn) Close() error {
	if !c.transport.IsOpen() {
		return nil
	}
	return c.transport.Close()
}

// Client exposes the raw thrift client for generated bindings.
func (c *Conn) Client() athrift.TClient {
	return c.client
}

// Invoke dispatches a canonical call to the handler registered for method.
// It implements the metastore facade's Invoker interface. Remote and
// serialization failures are returned unchanged; the connection never
// retries.
func (c *Conn) Invoke(ctx context.Context, method string, args []any) (any, error) {
	if !c.transport.IsOpen() {
		return nil, fmt.Errorf("%w: %s", ErrNotOpen, c.addr)
	}
	handler, ok := c.registry.Lookup(method)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}
	return handler(ctx, c.client, args)
}

// parseAddr extracts host:port from a metastore URI.
func parseAddr(uri string) (string, error) {
	if !strings.Contains(uri, "//") {
		uri = "thrift://" + uri
	}
	u, err := url.Parse(uri)
	if err != nil {
		return "", fmt.Errorf("parse metastore uri %q: %w", uri, err)
	}
	if u.Scheme != "thrift" {
		return "", fmt.Errorf("unsupported metastore uri scheme %q", u.Scheme)
	}
	if u.Hostname() == "" || u.Port() == "" {
		return "", fmt.Errorf("metastore uri %q must carry host and port", uri)
	}
	return u.Host, nil
}
