package metastore

import (
	"context"

	"github.com/hugr-lab/metastore-go/hive"
)

// AddPrimaryKey attaches a primary-key constraint to an existing table.
// Unset catalog names on the key columns default to the configured catalog.
func (c *Client) AddPrimaryKey(ctx context.Context, primaryKeys []*hive.SQLPrimaryKey) error {
	for _, k := range primaryKeys {
		k.DefaultToCatalog(c.defaultCatalog)
	}
	_, err := c.invoke(ctx, "add_primary_key", primaryKeys)
	return err
}

// GetPrimaryKeys returns the primary-key columns of a table.
func (c *Client) GetPrimaryKeys(ctx context.Context, tableName string, overrides ...Override) ([]*hive.SQLPrimaryKey, error) {
	res, err := c.resolveCall(ctx, c.specs.getPrimaryKeys, []any{tableName}, overrides)
	return as[[]*hive.SQLPrimaryKey](c.specs.getPrimaryKeys.Method, res, err)
}

// AddForeignKey attaches a foreign-key constraint to an existing table.
func (c *Client) AddForeignKey(ctx context.Context, foreignKeys []*hive.SQLForeignKey) error {
	for _, k := range foreignKeys {
		k.DefaultToCatalog(c.defaultCatalog)
	}
	_, err := c.invoke(ctx, "add_foreign_key", foreignKeys)
	return err
}

// GetForeignKeys returns the foreign-key columns between a parent and a
// foreign table. The parent and foreign databases default independently and
// can be overridden by name (parent_database_name, foreign_database_name).
func (c *Client) GetForeignKeys(ctx context.Context, parentTableName, foreignTableName string, overrides ...Override) ([]*hive.SQLForeignKey, error) {
	res, err := c.resolveCall(ctx, c.specs.getForeignKeys,
		[]any{parentTableName, foreignTableName}, overrides)
	return as[[]*hive.SQLForeignKey](c.specs.getForeignKeys.Method, res, err)
}

// AddUniqueConstraint attaches a unique constraint to an existing table.
func (c *Client) AddUniqueConstraint(ctx context.Context, constraints []*hive.SQLUniqueConstraint) error {
	for _, k := range constraints {
		k.DefaultToCatalog(c.defaultCatalog)
	}
	_, err := c.invoke(ctx, "add_unique_constraint", constraints)
	return err
}

// GetUniqueConstraints returns the unique constraints of a table.
func (c *Client) GetUniqueConstraints(ctx context.Context, tableName string, overrides ...Override) ([]*hive.SQLUniqueConstraint, error) {
	res, err := c.resolveCall(ctx, c.specs.getUniqueConstraints, []any{tableName}, overrides)
	return as[[]*hive.SQLUniqueConstraint](c.specs.getUniqueConstraints.Method, res, err)
}

// AddNotNullConstraint attaches a not-null constraint to an existing table.
func (c *Client) AddNotNullConstraint(ctx context.Context, constraints []*hive.SQLNotNullConstraint) error {
	for _, k := range constraints {
		k.DefaultToCatalog(c.defaultCatalog)
	}
	_, err := c.invoke(ctx, "add_not_null_constraint", constraints)
	return err
}

// GetNotNullConstraints returns the not-null constraints of a table.
func (c *Client) GetNotNullConstraints(ctx context.Context, tableName string, overrides ...Override) ([]*hive.SQLNotNullConstraint, error) {
	res, err := c.resolveCall(ctx, c.specs.getNotNullConstraints, []any{tableName}, overrides)
	return as[[]*hive.SQLNotNullConstraint](c.specs.getNotNullConstraints.Method, res, err)
}

// AddDefaultConstraint attaches a default-value constraint to an existing table.
func (c *Client) AddDefaultConstraint(ctx context.Context, constraints []*hive.SQLDefaultConstraint) error {
	for _, k := range constraints {
		k.DefaultToCatalog(c.defaultCatalog)
	}
	_, err := c.invoke(ctx, "add_default_constraint", constraints)
	return err
}

// GetDefaultConstraints returns the default-value constraints of a table.
func (c *Client) GetDefaultConstraints(ctx context.Context, tableName string, overrides ...Override) ([]*hive.SQLDefaultConstraint, error) {
	res, err := c.resolveCall(ctx, c.specs.getDefaultConstraints, []any{tableName}, overrides)
	return as[[]*hive.SQLDefaultConstraint](c.specs.getDefaultConstraints.Method, res, err)
}

// AddCheckConstraint attaches a check constraint to an existing table.
func (c *Client) AddCheckConstraint(ctx context.Context, constraints []*hive.SQLCheckConstraint) error {
	for _, k := range constraints {
		k.DefaultToCatalog(c.defaultCatalog)
	}
	_, err := c.invoke(ctx, "add_check_constraint", constraints)
	return err
}

// GetCheckConstraints returns the check constraints of a table.
func (c *Client) GetCheckConstraints(ctx context.Context, tableName string, overrides ...Override) ([]*hive.SQLCheckConstraint, error) {
	res, err := c.resolveCall(ctx, c.specs.getCheckConstraints, []any{tableName}, overrides)
	return as[[]*hive.SQLCheckConstraint](c.specs.getCheckConstraints.Method, res, err)
}

// DropConstraint removes a named constraint from a table.
func (c *Client) DropConstraint(ctx context.Context, constraintName, tableName string, overrides ...Override) error {
	_, err := c.resolveCall(ctx, c.specs.dropConstraint,
		[]any{constraintName, tableName}, overrides)
	return err
}
