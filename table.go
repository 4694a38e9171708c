package metastore

import (
	"context"
	"errors"

	"github.com/hugr-lab/metastore-go/hive"
)

// CreateTableOptions attach SQL constraints to CreateTable. Nil slices mean
// no constraints of that kind.
type CreateTableOptions struct {
	PrimaryKeys        []*hive.SQLPrimaryKey
	ForeignKeys        []*hive.SQLForeignKey
	UniqueConstraints  []*hive.SQLUniqueConstraint
	NotNullConstraints []*hive.SQLNotNullConstraint
	DefaultConstraints []*hive.SQLDefaultConstraint
	CheckConstraints   []*hive.SQLCheckConstraint
}

// AlterTableOptions control AlterTable.
type AlterTableOptions struct {
	// Cascade propagates column changes to the table's partitions.
	Cascade bool

	// EnvContext carries extra per-call properties. Cascade is merged into
	// it when set.
	EnvContext *hive.EnvironmentContext
}

// DropTableOptions control DropTable.
type DropTableOptions struct {
	// DeleteData removes the table's data along with its metadata. Note
	// this inverts the canonical Hive client, which deletes data unless
	// told otherwise; here removal is opt-in, so a zero options value
	// leaves the warehouse files in place.
	DeleteData bool

	// IgnoreUnknown suppresses the error when the table does not exist.
	IgnoreUnknown bool

	// Purge skips the trash when deleting data.
	Purge bool
}

// ListTablesOptions filter ListTables.
type ListTablesOptions struct {
	// Pattern restricts the listing to matching table names. Empty matches
	// every table.
	Pattern string

	// Type restricts the listing to one table type. Empty lists all types.
	Type hive.TableType
}

// CreateTable registers a new table together with its constraints. An unset
// catalog name on the table or any constraint defaults to the client's
// configured catalog.
func (c *Client) CreateTable(ctx context.Context, table *hive.Table, opts *CreateTableOptions) error {
	if opts == nil {
		opts = &CreateTableOptions{}
	}

	table.DefaultToCatalog(c.defaultCatalog)
	for _, k := range opts.PrimaryKeys {
		k.DefaultToCatalog(c.defaultCatalog)
	}
	for _, k := range opts.ForeignKeys {
		k.DefaultToCatalog(c.defaultCatalog)
	}
	for _, k := range opts.UniqueConstraints {
		k.DefaultToCatalog(c.defaultCatalog)
	}
	for _, k := range opts.NotNullConstraints {
		k.DefaultToCatalog(c.defaultCatalog)
	}
	for _, k := range opts.DefaultConstraints {
		k.DefaultToCatalog(c.defaultCatalog)
	}
	for _, k := range opts.CheckConstraints {
		k.DefaultToCatalog(c.defaultCatalog)
	}

	_, err := c.invoke(ctx, "create_table_with_constraints",
		table,
		opts.PrimaryKeys, opts.ForeignKeys,
		opts.UniqueConstraints, opts.NotNullConstraints,
		opts.DefaultConstraints, opts.CheckConstraints,
	)
	return err
}

// AlterTable replaces the table named tableName with newTable.
func (c *Client) AlterTable(ctx context.Context, tableName string, newTable *hive.Table, opts *AlterTableOptions, overrides ...Override) error {
	if opts == nil {
		opts = &AlterTableOptions{}
	}

	envCtx := opts.EnvContext
	if opts.Cascade {
		if envCtx == nil {
			envCtx = &hive.EnvironmentContext{}
		}
		if envCtx.Properties == nil {
			envCtx.Properties = make(map[string]string)
		}
		envCtx.Properties["CASCADE"] = "true"
	}

	_, err := c.resolveCall(ctx, c.specs.alterTable,
		[]any{tableName, newTable, envCtx}, overrides)
	return err
}

// DropTable removes a table. The table is probed first so a missing one can
// be ignored without a service-side error when opts.IgnoreUnknown is set.
// A nil opts drops metadata only.
func (c *Client) DropTable(ctx context.Context, tableName string, opts *DropTableOptions, overrides ...Override) error {
	if opts == nil {
		opts = &DropTableOptions{}
	}

	if _, err := c.GetTable(ctx, tableName, identifierOverrides(overrides)...); err != nil {
		var missing *hive.NoSuchObjectError
		if errors.As(err, &missing) && opts.IgnoreUnknown {
			return nil
		}
		return err
	}

	var envCtx *hive.EnvironmentContext
	if opts.Purge {
		envCtx = &hive.EnvironmentContext{Properties: map[string]string{"ifPurge": "TRUE"}}
	}

	_, err := c.resolveCall(ctx, c.specs.dropTable,
		[]any{tableName, opts.DeleteData, envCtx}, overrides)
	return err
}

// TruncateTable removes all rows from a table, or from the named partitions
// only when partitionNames is non-empty.
func (c *Client) TruncateTable(ctx context.Context, partitionNames []string, tableName string, overrides ...Override) error {
	_, err := c.resolveCall(ctx, c.specs.truncateTable,
		[]any{partitionNames, tableName}, overrides)
	return err
}

// GetTable fetches a table by name.
func (c *Client) GetTable(ctx context.Context, tableName string, overrides ...Override) (*hive.Table, error) {
	res, err := c.resolveCall(ctx, c.specs.getTable, []any{tableName}, overrides)
	return as[*hive.Table](c.specs.getTable.Method, res, err)
}

// GetTables fetches several tables of one database by name.
func (c *Client) GetTables(ctx context.Context, tableNames []string, overrides ...Override) ([]*hive.Table, error) {
	res, err := c.resolveCall(ctx, c.specs.getTables, []any{tableNames}, overrides)
	return as[[]*hive.Table](c.specs.getTables.Method, res, err)
}

// ListTables returns the names of tables in a database, optionally filtered
// by name pattern and table type. A nil opts lists everything.
func (c *Client) ListTables(ctx context.Context, opts *ListTablesOptions, overrides ...Override) ([]string, error) {
	if opts == nil {
		opts = &ListTablesOptions{}
	}

	if opts.Type != "" {
		res, err := c.resolveCall(ctx, c.specs.listTablesByType,
			[]any{opts.Pattern, string(opts.Type)}, overrides)
		return as[[]string](c.specs.listTablesByType.Method, res, err)
	}
	res, err := c.resolveCall(ctx, c.specs.listTables, []any{opts.Pattern}, overrides)
	return as[[]string](c.specs.listTables.Method, res, err)
}

// GetPartitions returns up to maxParts partitions of a table. A negative
// maxParts returns all of them.
func (c *Client) GetPartitions(ctx context.Context, tableName string, maxParts int16, overrides ...Override) ([]*hive.Partition, error) {
	res, err := c.resolveCall(ctx, c.specs.getPartitions,
		[]any{tableName, maxParts}, overrides)
	return as[[]*hive.Partition](c.specs.getPartitions.Method, res, err)
}
