package metastore

import (
	"context"
	"errors"

	"github.com/hugr-lab/metastore-go/hive"
)

// DropDatabaseOptions control DropDatabase.
type DropDatabaseOptions struct {
	// DeleteData removes the database's data from the warehouse along with
	// its metadata. Note this inverts the canonical Hive client, which
	// deletes data unless told otherwise; here removal is opt-in, so a zero
	// options value leaves the warehouse files in place.
	DeleteData bool

	// IgnoreUnknown suppresses the error when the database does not exist.
	IgnoreUnknown bool

	// Cascade drops contained tables first instead of failing on a
	// non-empty database.
	Cascade bool
}

// CreateDatabase registers a new database. An unset catalog name on the
// database object defaults to the client's configured catalog.
func (c *Client) CreateDatabase(ctx context.Context, database *hive.Database) error {
	database.DefaultToCatalog(c.defaultCatalog)
	_, err := c.invoke(ctx, "create_database", database)
	return err
}

// AlterDatabase replaces the database named databaseName with newDatabase.
func (c *Client) AlterDatabase(ctx context.Context, databaseName string, newDatabase *hive.Database, overrides ...Override) error {
	_, err := c.resolveCall(ctx, c.specs.alterDatabase,
		[]any{databaseName, newDatabase}, overrides)
	return err
}

// GetDatabase fetches a database by name.
func (c *Client) GetDatabase(ctx context.Context, databaseName string, overrides ...Override) (*hive.Database, error) {
	res, err := c.resolveCall(ctx, c.specs.getDatabase, []any{databaseName}, overrides)
	return as[*hive.Database](c.specs.getDatabase.Method, res, err)
}

// ListDatabases returns the names of databases matching pattern. An empty
// pattern matches every database in the catalog.
func (c *Client) ListDatabases(ctx context.Context, pattern string, overrides ...Override) ([]string, error) {
	res, err := c.resolveCall(ctx, c.specs.listDatabases, []any{pattern}, overrides)
	return as[[]string](c.specs.listDatabases.Method, res, err)
}

// DropDatabase removes a database. The database is probed first so a missing
// one can be ignored without a service-side error when opts.IgnoreUnknown is
// set. A nil opts drops metadata only.
func (c *Client) DropDatabase(ctx context.Context, databaseName string, opts *DropDatabaseOptions, overrides ...Override) error {
	if opts == nil {
		opts = &DropDatabaseOptions{}
	}

	if _, err := c.GetDatabase(ctx, databaseName, identifierOverrides(overrides)...); err != nil {
		var missing *hive.NoSuchObjectError
		if errors.As(err, &missing) && opts.IgnoreUnknown {
			return nil
		}
		return err
	}

	_, err := c.resolveCall(ctx, c.specs.dropDatabase,
		[]any{databaseName, opts.DeleteData, opts.Cascade}, overrides)
	return err
}
