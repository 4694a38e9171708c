// Package hive holds the metadata objects carried between the metastore
// facade and the service bindings: catalogs, databases, tables, partitions,
// columns, SQL constraints and schema versions.
//
// The structs mirror the Hive metastore thrift model field for field; their
// wire serialization stays with the service bindings, not here.
package hive

// TableType classifies a table in the metastore.
type TableType string

const (
	ManagedTable     TableType = "MANAGED_TABLE"
	ExternalTable    TableType = "EXTERNAL_TABLE"
	VirtualView      TableType = "VIRTUAL_VIEW"
	MaterializedView TableType = "MATERIALIZED_VIEW"
)

// CatalogScoped is implemented by metadata objects that record the catalog
// owning them. DefaultToCatalog sets the catalog name only when unset, so an
// explicitly chosen catalog is never overwritten.
type CatalogScoped interface {
	DefaultToCatalog(name string)
}

// Catalog is a top-level metadata container.
type Catalog struct {
	Name        string
	Description string
	LocationURI string
	CreateTime  int32
}

// Database is a namespace of tables within a catalog.
type Database struct {
	Name        string
	Description string
	LocationURI string
	Parameters  map[string]string
	OwnerName   string
	OwnerType   string
	CatalogName string
	CreateTime  int32
}

func (d *Database) DefaultToCatalog(name string) {
	if d.CatalogName == "" {
		d.CatalogName = name
	}
}

// FieldSchema describes one column: its name, Hive type string and comment.
type FieldSchema struct {
	Name    string
	Type    string
	Comment string
}

// Order describes a sort column of a storage descriptor.
type Order struct {
	Col   string
	Order int32
}

// SerDeInfo names the serialization library of a storage descriptor.
type SerDeInfo struct {
	Name             string
	SerializationLib string
	Parameters       map[string]string
}

// SkewedInfo records skewed column statistics of a storage descriptor.
type SkewedInfo struct {
	SkewedColNames             []string
	SkewedColValues            [][]string
	SkewedColValueLocationMaps map[string]string
}

// StorageDescriptor describes the physical layout of a table or partition.
type StorageDescriptor struct {
	Cols                   []*FieldSchema
	Location               string
	InputFormat            string
	OutputFormat           string
	Compressed             bool
	NumBuckets             int32
	SerdeInfo              *SerDeInfo
	BucketCols             []string
	SortCols               []*Order
	Parameters             map[string]string
	SkewedInfo             *SkewedInfo
	StoredAsSubDirectories bool
}

// Table is the central metadata object of the metastore.
type Table struct {
	TableName        string
	DbName           string
	CatName          string
	Owner            string
	CreateTime       int32
	LastAccessTime   int32
	Retention        int32
	Sd               *StorageDescriptor
	PartitionKeys    []*FieldSchema
	Parameters       map[string]string
	ViewOriginalText string
	ViewExpandedText string
	TableType        TableType
	Temporary        bool
	RewriteEnabled   bool
}

func (t *Table) DefaultToCatalog(name string) {
	if t.CatName == "" {
		t.CatName = name
	}
}

// Partition is one partition of a partitioned table. Values align with the
// table's PartitionKeys.
type Partition struct {
	Values         []string
	CatName        string
	DbName         string
	TableName      string
	CreateTime     int32
	LastAccessTime int32
	Sd             *StorageDescriptor
	Parameters     map[string]string
}

func (p *Partition) DefaultToCatalog(name string) {
	if p.CatName == "" {
		p.CatName = name
	}
}

// EnvironmentContext carries per-call properties understood by the service,
// such as CASCADE or ifPurge.
type EnvironmentContext struct {
	Properties map[string]string
}

// Type is a user-defined type registered in the metastore.
type Type struct {
	Name   string
	Type1  string
	Type2  string
	Fields []*FieldSchema
}

// SQLPrimaryKey is one column of a primary-key constraint.
type SQLPrimaryKey struct {
	TableDb      string
	TableName    string
	ColumnName   string
	KeySeq       int32
	PkName       string
	EnableCstr   bool
	ValidateCstr bool
	RelyCstr     bool
	CatName      string
}

func (k *SQLPrimaryKey) DefaultToCatalog(name string) {
	if k.CatName == "" {
		k.CatName = name
	}
}

// SQLForeignKey is one column pair of a foreign-key constraint.
type SQLForeignKey struct {
	PkTableDb     string
	PkTableName   string
	PkColumnName  string
	FkTableDb     string
	FkTableName   string
	FkColumnName  string
	KeySeq        int32
	UpdateRule    int32
	DeleteRule    int32
	FkName        string
	PkName        string
	EnableCstr    bool
	ValidateCstr  bool
	RelyCstr      bool
	CatName       string
}

func (k *SQLForeignKey) DefaultToCatalog(name string) {
	if k.CatName == "" {
		k.CatName = name
	}
}

// SQLUniqueConstraint is one column of a unique constraint.
type SQLUniqueConstraint struct {
	CatName      string
	TableDb      string
	TableName    string
	ColumnName   string
	KeySeq       int32
	UkName       string
	EnableCstr   bool
	ValidateCstr bool
	RelyCstr     bool
}

func (c *SQLUniqueConstraint) DefaultToCatalog(name string) {
	if c.CatName == "" {
		c.CatName = name
	}
}

// SQLNotNullConstraint marks one column as not-null.
type SQLNotNullConstraint struct {
	CatName      string
	TableDb      string
	TableName    string
	ColumnName   string
	NnName       string
	EnableCstr   bool
	ValidateCstr bool
	RelyCstr     bool
}

func (c *SQLNotNullConstraint) DefaultToCatalog(name string) {
	if c.CatName == "" {
		c.CatName = name
	}
}

// SQLDefaultConstraint attaches a default value to one column.
type SQLDefaultConstraint struct {
	CatName      string
	TableDb      string
	TableName    string
	ColumnName   string
	DefaultValue string
	DcName       string
	EnableCstr   bool
	ValidateCstr bool
	RelyCstr     bool
}

func (c *SQLDefaultConstraint) DefaultToCatalog(name string) {
	if c.CatName == "" {
		c.CatName = name
	}
}

// SQLCheckConstraint attaches a check expression to one column.
type SQLCheckConstraint struct {
	CatName         string
	TableDb         string
	TableName       string
	ColumnName      string
	CheckExpression string
	DcName          string
	EnableCstr      bool
	ValidateCstr    bool
	RelyCstr        bool
}

func (c *SQLCheckConstraint) DefaultToCatalog(name string) {
	if c.CatName == "" {
		c.CatName = name
	}
}

// ISchemaName identifies a registered schema by catalog, database and name.
type ISchemaName struct {
	CatName    string
	DbName     string
	SchemaName string
}

func (n *ISchemaName) DefaultToCatalog(name string) {
	if n.CatName == "" {
		n.CatName = name
	}
}

// SchemaVersion is one version of a registered schema.
type SchemaVersion struct {
	Schema      *ISchemaName
	Version     int32
	CreatedAt   int64
	Cols        []*FieldSchema
	State       int32
	Description string
	SchemaText  string
	Fingerprint string
	Name        string
}

// SchemaVersionDescriptor addresses one version of a registered schema.
// Version zero addresses the latest version.
type SchemaVersionDescriptor struct {
	SchemaName *ISchemaName
	Version    int32
}
