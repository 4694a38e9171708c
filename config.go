package metastore

import (
	"context"
	"errors"
	"log/slog"
)

// Well-known names of the metastore's built-in catalog and database.
const (
	DefaultCatalogName    = "hive"
	DefaultCatalogComment = "Default catalog, for Hive"

	DefaultDatabaseName    = "default"
	DefaultDatabaseComment = "Default Hive database"

	DefaultSerializationFormat = "1"
	DatabaseWarehouseSuffix    = ".db"
)

// Invoker is the remote collaborator boundary. It serializes the canonical
// argument tuple per the service's existing wire contract, performs the call
// and deserializes the response into the domain objects from the hive package.
//
// Args are ordered catalog, database, table, then narrower identifiers and
// payload objects. Implementations MUST be safe for concurrent use if the
// Client is shared between goroutines.
type Invoker interface {
	Invoke(ctx context.Context, method string, args []any) (any, error)
}

// Config contains configuration for a metastore Client.
type Config struct {
	// Invoker performs the remote calls.
	// REQUIRED: MUST NOT be nil.
	Invoker Invoker

	// DefaultCatalog is injected when an operation omits the catalog name.
	// OPTIONAL: Uses DefaultCatalogName ("hive") if empty.
	DefaultCatalog string

	// DefaultDatabase is injected when an operation omits the database name.
	// OPTIONAL: Uses DefaultDatabaseName ("default") if empty.
	DefaultDatabase string

	// Logger for internal logging.
	// OPTIONAL: Uses slog.Default() if nil.
	Logger *slog.Logger
}

// Standard errors returned by the metastore package.
//
// The first three are caller errors detected during scope resolution, before
// any network interaction occurs. Remote failures are returned unchanged from
// the Invoker and never wrapped into these.
var (
	// ErrMissingParameter indicates a required value had no positional,
	// named, or default source.
	ErrMissingParameter = errors.New("missing required parameter")

	// ErrUnknownParameter indicates a named override does not match any
	// declared parameter of the operation.
	ErrUnknownParameter = errors.New("unknown parameter")

	// ErrTooManyArguments indicates more positional values were supplied
	// than the operation declares.
	ErrTooManyArguments = errors.New("too many arguments")

	// ErrInvalidConfig indicates Config validation failed.
	ErrInvalidConfig = errors.New("invalid client config")

	// ErrUnexpectedResult indicates the Invoker returned a response of a
	// type the operation does not produce.
	ErrUnexpectedResult = errors.New("unexpected result type")
)
