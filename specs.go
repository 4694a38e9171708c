package metastore

// specTable holds one OpSpec per resolved operation. It is built once in New
// with the client's configured defaults baked into the outer-scope parameters
// and never mutated afterwards.
type specTable struct {
	alterDatabase *OpSpec
	getDatabase   *OpSpec
	listDatabases *OpSpec
	dropDatabase  *OpSpec

	alterTable       *OpSpec
	dropTable        *OpSpec
	truncateTable    *OpSpec
	getTable         *OpSpec
	getTables        *OpSpec
	listTables       *OpSpec
	listTablesByType *OpSpec
	getPartitions    *OpSpec

	getPrimaryKeys        *OpSpec
	getForeignKeys        *OpSpec
	getUniqueConstraints  *OpSpec
	getNotNullConstraints *OpSpec
	getDefaultConstraints *OpSpec
	getCheckConstraints   *OpSpec
	dropConstraint        *OpSpec

	getFields *OpSpec
	getSchema *OpSpec

	getSchemaVersion     *OpSpec
	getSchemaLatest      *OpSpec
	getSchemaAllVersions *OpSpec
	dropSchemaVersion    *OpSpec
}

// constantDefault provides a fixed value for an omitted parameter.
func constantDefault(v string) DefaultFunc {
	return func(Values) (any, error) { return v, nil }
}

func newSpecTable(defaultCatalog, defaultDatabase string) specTable {
	catalogParam := Param{
		Name:    "catalog_name",
		Scope:   ScopeCatalog,
		Canon:   0,
		Default: constantDefault(defaultCatalog),
	}
	databaseParam := func(canon int) Param {
		return Param{
			Name:    "database_name",
			Scope:   ScopeDatabase,
			Canon:   canon,
			Default: constantDefault(defaultDatabase),
		}
	}

	// Operations addressing a single table share the same shape: the table
	// name is the narrow subject, database and catalog default outward.
	tableScoped := func(method string) *OpSpec {
		return &OpSpec{
			Method: method,
			Params: []Param{
				{Name: "table_name", Scope: ScopeTable, Canon: 2},
				databaseParam(1),
				catalogParam,
			},
		}
	}

	return specTable{
		alterDatabase: &OpSpec{
			Method: "alter_database",
			Params: []Param{
				{Name: "database_name", Scope: ScopeDatabase, Canon: 1},
				{Name: "new_database", Scope: ScopeDatabase, Canon: 2},
				catalogParam,
			},
		},
		getDatabase: &OpSpec{
			Method: "get_database",
			Params: []Param{
				{Name: "database_name", Scope: ScopeDatabase, Canon: 1},
				catalogParam,
			},
		},
		listDatabases: &OpSpec{
			Method: "get_databases",
			Params: []Param{
				{Name: "pattern", Scope: ScopeDatabase, Canon: 1},
				catalogParam,
			},
		},
		dropDatabase: &OpSpec{
			Method: "drop_database",
			Params: []Param{
				{Name: "database_name", Scope: ScopeDatabase, Canon: 1},
				{Name: "delete_data", Scope: ScopeDatabase, Canon: 2},
				{Name: "cascade", Scope: ScopeDatabase, Canon: 3},
				catalogParam,
			},
		},

		alterTable: &OpSpec{
			Method: "alter_table_with_environment_context",
			Params: []Param{
				{Name: "table_name", Scope: ScopeTable, Canon: 2},
				{Name: "new_table", Scope: ScopeTable, Canon: 3},
				{Name: "environment_context", Scope: ScopeTable, Canon: 4},
				databaseParam(1),
				catalogParam,
			},
		},
		dropTable: &OpSpec{
			Method: "drop_table_with_environment_context",
			Params: []Param{
				{Name: "table_name", Scope: ScopeTable, Canon: 2},
				{Name: "delete_data", Scope: ScopeTable, Canon: 3},
				{Name: "environment_context", Scope: ScopeTable, Canon: 4},
				databaseParam(1),
				catalogParam,
			},
		},
		truncateTable: &OpSpec{
			Method: "truncate_table",
			Params: []Param{
				{Name: "partition_names", Scope: ScopeColumn, Canon: 3},
				{Name: "table_name", Scope: ScopeTable, Canon: 2},
				databaseParam(1),
				catalogParam,
			},
		},
		getTable: tableScoped("get_table"),
		getTables: &OpSpec{
			Method: "get_table_objects_by_name_req",
			Params: []Param{
				{Name: "table_names", Scope: ScopeTable, Canon: 2},
				databaseParam(1),
				catalogParam,
			},
		},
		listTables: &OpSpec{
			Method: "get_tables",
			Params: []Param{
				{Name: "pattern", Scope: ScopeTable, Canon: 2},
				databaseParam(1),
				catalogParam,
			},
		},
		listTablesByType: &OpSpec{
			Method: "get_tables_by_type",
			Params: []Param{
				{Name: "pattern", Scope: ScopeTable, Canon: 2},
				{Name: "table_type", Scope: ScopeTable, Canon: 3},
				databaseParam(1),
				catalogParam,
			},
		},
		getPartitions: &OpSpec{
			Method: "get_partitions",
			Params: []Param{
				{Name: "table_name", Scope: ScopeTable, Canon: 2},
				{Name: "max_parts", Scope: ScopeTable, Canon: 3},
				databaseParam(1),
				catalogParam,
			},
		},

		getPrimaryKeys: tableScoped("get_primary_keys"),
		getForeignKeys: &OpSpec{
			Method: "get_foreign_keys",
			Params: []Param{
				{Name: "parent_table_name", Scope: ScopeTable, Canon: 2},
				{Name: "foreign_table_name", Scope: ScopeTable, Canon: 4},
				{
					Name:    "parent_database_name",
					Scope:   ScopeDatabase,
					Canon:   1,
					Default: constantDefault(defaultDatabase),
				},
				{
					Name:    "foreign_database_name",
					Scope:   ScopeDatabase,
					Canon:   3,
					Default: constantDefault(defaultDatabase),
				},
				catalogParam,
			},
		},
		getUniqueConstraints:  tableScoped("get_unique_constraints"),
		getNotNullConstraints: tableScoped("get_not_null_constraints"),
		getDefaultConstraints: tableScoped("get_default_constraints"),
		getCheckConstraints:   tableScoped("get_check_constraints"),
		dropConstraint: &OpSpec{
			Method: "drop_constraint",
			Params: []Param{
				{Name: "constraint_name", Scope: ScopeColumn, Canon: 3},
				{Name: "table_name", Scope: ScopeTable, Canon: 2},
				databaseParam(1),
				catalogParam,
			},
		},

		getFields: tableScoped("get_fields"),
		getSchema: tableScoped("get_schema"),

		getSchemaVersion: &OpSpec{
			Method: "get_schema_version",
			Params: []Param{
				{Name: "version", Scope: ScopeColumn, Canon: 3},
				{Name: "schema_name", Scope: ScopeTable, Canon: 2},
				databaseParam(1),
				catalogParam,
			},
		},
		getSchemaLatest:      tableScopedSchema("get_schema_latest_version", databaseParam(1), catalogParam),
		getSchemaAllVersions: tableScopedSchema("get_schema_all_versions", databaseParam(1), catalogParam),
		dropSchemaVersion: &OpSpec{
			Method: "drop_schema_version",
			Params: []Param{
				{Name: "version", Scope: ScopeColumn, Canon: 3},
				{Name: "schema_name", Scope: ScopeTable, Canon: 2},
				databaseParam(1),
				catalogParam,
			},
		},
	}
}

// tableScopedSchema is the tableScoped shape with the subject renamed to
// schema_name for registered-schema operations.
func tableScopedSchema(method string, database, catalog Param) *OpSpec {
	return &OpSpec{
		Method: method,
		Params: []Param{
			{Name: "schema_name", Scope: ScopeTable, Canon: 2},
			database,
			catalog,
		},
	}
}
