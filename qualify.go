package metastore

// Markers of the catalog-qualified database-name encoding understood by
// pre-catalog wire methods.
const (
	catalogNameMarker   = "@"
	catalogSeparator    = "#"
	emptyDatabaseMarker = "!"
)

// QualifyDatabase encodes a catalog name into the database-name slot of wire
// methods that predate catalog support: "@" + catalog + "#" + database.
// An empty database name is spelled with the "!" marker so the service can
// tell it apart from an omitted one.
//
// Service bindings use this when mapping the canonical catalog-first tuple
// onto the older two-part methods; the facade itself never reorders through
// this encoding.
func QualifyDatabase(catalogName, databaseName string) string {
	if catalogName == "" {
		catalogName = DefaultCatalogName
	}
	if databaseName == "" {
		databaseName = emptyDatabaseMarker
	}
	return catalogNameMarker + catalogName + catalogSeparator + databaseName
}

// QualifyPattern is QualifyDatabase for database-name patterns, where an
// absent pattern stays absent (no "!" marker) and matches every database in
// the catalog.
func QualifyPattern(catalogName, pattern string) string {
	if catalogName == "" {
		catalogName = DefaultCatalogName
	}
	return catalogNameMarker + catalogName + catalogSeparator + pattern
}
