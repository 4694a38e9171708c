package metastore

import (
	"context"
	"fmt"
	"log/slog"
)

// Client is the scope-normalizing facade over a Hive-compatible metastore.
//
// Every operation resolves its arguments into the canonical catalog-first
// tuple and hands it to the configured Invoker. Clients hold no mutable
// per-call state and may be shared between goroutines as long as the Invoker
// allows it.
type Client struct {
	inv Invoker
	log *slog.Logger

	defaultCatalog  string
	defaultDatabase string

	specs specTable
}

// New creates a metastore Client.
// Returns ErrInvalidConfig if config is invalid (e.g. nil Invoker).
func New(cfg Config) (*Client, error) {
	if cfg.Invoker == nil {
		return nil, fmt.Errorf("%w: invoker is required", ErrInvalidConfig)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	catalog := cfg.DefaultCatalog
	if catalog == "" {
		catalog = DefaultCatalogName
	}
	database := cfg.DefaultDatabase
	if database == "" {
		database = DefaultDatabaseName
	}

	c := &Client{
		inv:             cfg.Invoker,
		log:             logger,
		defaultCatalog:  catalog,
		defaultDatabase: database,
	}
	c.specs = newSpecTable(catalog, database)
	return c, nil
}

// DefaultCatalog returns the catalog name injected when a call omits it.
func (c *Client) DefaultCatalog() string {
	return c.defaultCatalog
}

// DefaultDatabase returns the database name injected when a call omits it.
func (c *Client) DefaultDatabase() string {
	return c.defaultDatabase
}

// SetMetaConf overrides a metastore configuration key for this session.
func (c *Client) SetMetaConf(ctx context.Context, key, value string) error {
	_, err := c.invoke(ctx, "set_meta_conf", key, value)
	return err
}

// GetMetaConf reads a metastore configuration key.
func (c *Client) GetMetaConf(ctx context.Context, key string) (string, error) {
	res, err := c.invoke(ctx, "get_meta_conf", key)
	return as[string]("get_meta_conf", res, err)
}

// resolveCall runs spec resolution over the narrow-to-wide positional values
// and named overrides, then performs the remote call with the canonical
// tuple. All resolution errors surface before the Invoker is touched.
func (c *Client) resolveCall(ctx context.Context, spec *OpSpec, positional []any, overrides []Override) (any, error) {
	args, err := spec.Resolve(positional, overrideValues(overrides))
	if err != nil {
		return nil, err
	}
	c.log.Debug("invoking metastore method", "method", spec.Method, "args", len(args))
	return c.inv.Invoke(ctx, spec.Method, args)
}

// invoke passes a call through without scope resolution. Used by operations
// whose arguments carry no scoped identifiers to normalize.
func (c *Client) invoke(ctx context.Context, method string, args ...any) (any, error) {
	c.log.Debug("invoking metastore method", "method", method, "args", len(args))
	return c.inv.Invoke(ctx, method, args)
}

// as narrows an Invoker response to the operation's result type.
// A nil response stays the zero value so "object not found as nil" responses
// pass through untouched.
func as[T any](method string, res any, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	if res == nil {
		return zero, nil
	}
	v, ok := res.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %s returned %T", ErrUnexpectedResult, method, res)
	}
	return v, nil
}
