package metastore

import (
	"context"

	"github.com/hugr-lab/metastore-go/hive"
)

// CreateCatalog registers a new catalog.
func (c *Client) CreateCatalog(ctx context.Context, catalog *hive.Catalog) error {
	_, err := c.invoke(ctx, "create_catalog", catalog)
	return err
}

// AlterCatalog replaces the catalog named catalogName with newCatalog.
func (c *Client) AlterCatalog(ctx context.Context, catalogName string, newCatalog *hive.Catalog) error {
	_, err := c.invoke(ctx, "alter_catalog", catalogName, newCatalog)
	return err
}

// GetCatalog fetches a catalog by name.
func (c *Client) GetCatalog(ctx context.Context, catalogName string) (*hive.Catalog, error) {
	res, err := c.invoke(ctx, "get_catalog", catalogName)
	return as[*hive.Catalog]("get_catalog", res, err)
}

// ListCatalogs returns the names of all catalogs.
func (c *Client) ListCatalogs(ctx context.Context) ([]string, error) {
	res, err := c.invoke(ctx, "get_catalogs")
	return as[[]string]("get_catalogs", res, err)
}

// DropCatalog removes a catalog. The catalog must be empty.
func (c *Client) DropCatalog(ctx context.Context, catalogName string) error {
	_, err := c.invoke(ctx, "drop_catalog", catalogName)
	return err
}
