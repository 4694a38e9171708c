package metastore

import (
	"context"

	"github.com/hugr-lab/metastore-go/hive"
)

// CreateType registers a user-defined type. The result reports whether the
// type was created.
func (c *Client) CreateType(ctx context.Context, t *hive.Type) (bool, error) {
	res, err := c.invoke(ctx, "create_type", t)
	return as[bool]("create_type", res, err)
}

// GetType fetches a user-defined type by name.
func (c *Client) GetType(ctx context.Context, typeName string) (*hive.Type, error) {
	res, err := c.invoke(ctx, "get_type", typeName)
	return as[*hive.Type]("get_type", res, err)
}

// GetTypes returns all types matching typeName, keyed by name.
func (c *Client) GetTypes(ctx context.Context, typeName string) (map[string]*hive.Type, error) {
	res, err := c.invoke(ctx, "get_type_all", typeName)
	return as[map[string]*hive.Type]("get_type_all", res, err)
}

// DropType removes a user-defined type. The result reports whether the type
// was dropped.
func (c *Client) DropType(ctx context.Context, typeName string) (bool, error) {
	res, err := c.invoke(ctx, "drop_type", typeName)
	return as[bool]("drop_type", res, err)
}

// GetFields returns the columns of a table, without its partition keys.
func (c *Client) GetFields(ctx context.Context, tableName string, overrides ...Override) ([]*hive.FieldSchema, error) {
	res, err := c.resolveCall(ctx, c.specs.getFields, []any{tableName}, overrides)
	return as[[]*hive.FieldSchema](c.specs.getFields.Method, res, err)
}

// GetSchema returns the full column set of a table, partition keys included.
func (c *Client) GetSchema(ctx context.Context, tableName string, overrides ...Override) ([]*hive.FieldSchema, error) {
	res, err := c.resolveCall(ctx, c.specs.getSchema, []any{tableName}, overrides)
	return as[[]*hive.FieldSchema](c.specs.getSchema.Method, res, err)
}

// AddSchemaVersion registers a new version of a schema. An unset catalog
// name on the schema identifier defaults to the configured catalog.
func (c *Client) AddSchemaVersion(ctx context.Context, version *hive.SchemaVersion) error {
	if version.Schema != nil {
		version.Schema.DefaultToCatalog(c.defaultCatalog)
	}
	_, err := c.invoke(ctx, "add_schema_version", version)
	return err
}

// GetSchemaVersion fetches one version of a registered schema.
func (c *Client) GetSchemaVersion(ctx context.Context, version int32, schemaName string, overrides ...Override) (*hive.SchemaVersion, error) {
	res, err := c.resolveCall(ctx, c.specs.getSchemaVersion,
		[]any{version, schemaName}, overrides)
	return as[*hive.SchemaVersion](c.specs.getSchemaVersion.Method, res, err)
}

// GetSchemaVersionLatest fetches the latest version of a registered schema.
func (c *Client) GetSchemaVersionLatest(ctx context.Context, schemaName string, overrides ...Override) (*hive.SchemaVersion, error) {
	res, err := c.resolveCall(ctx, c.specs.getSchemaLatest, []any{schemaName}, overrides)
	return as[*hive.SchemaVersion](c.specs.getSchemaLatest.Method, res, err)
}

// GetSchemaVersions fetches every version of a registered schema.
func (c *Client) GetSchemaVersions(ctx context.Context, schemaName string, overrides ...Override) ([]*hive.SchemaVersion, error) {
	res, err := c.resolveCall(ctx, c.specs.getSchemaAllVersions, []any{schemaName}, overrides)
	return as[[]*hive.SchemaVersion](c.specs.getSchemaAllVersions.Method, res, err)
}

// DropSchemaVersion removes one version of a registered schema.
func (c *Client) DropSchemaVersion(ctx context.Context, version int32, schemaName string, overrides ...Override) error {
	_, err := c.resolveCall(ctx, c.specs.dropSchemaVersion,
		[]any{version, schemaName}, overrides)
	return err
}
