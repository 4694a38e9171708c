// Package metastore provides a thin Go client binding for Hive-compatible
// metastore services.
//
// The package does two things:
//   - Exposes one typed operation per logical metastore method (GetTable,
//     ListDatabases, AddPrimaryKey, ...), each accepting its identifiers
//     ordered from the narrowest scope outward and filling in configured
//     defaults for the catalog and database when they are omitted.
//   - Normalizes every call into the canonical catalog-first argument tuple
//     the service contract expects before handing it to a pluggable Invoker.
//
// The wire protocol itself is not implemented here. The Invoker interface is
// the boundary: the thrift subpackage provides connection plumbing and a
// method registry for thrift-generated service bindings, and tests can
// substitute an in-memory fake.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "context"
//	    "log"
//
//	    "github.com/hugr-lab/metastore-go"
//	    "github.com/hugr-lab/metastore-go/thrift"
//	)
//
//	func main() {
//	    conn, err := thrift.Dial("thrift://localhost:9083")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    defer conn.Close()
//
//	    client, err := metastore.New(metastore.Config{Invoker: conn})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    // Database and catalog fall back to the configured defaults.
//	    table, err := client.GetTable(context.Background(), "events")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    log.Printf("table %s stored at %s", table.TableName, table.Sd.Location)
//	}
//
// # Scope Resolution
//
// Public operations order their identifiers narrow to wide: column or
// constraint first, then table, database, catalog. Any parameter can be
// supplied by name instead, and named values win over positional ones:
//
//	client.GetTable(ctx, "events",
//	    metastore.InDatabase("analytics"),
//	    metastore.InCatalog("spark"),
//	)
//
// Resolution is pure and fail-fast: a missing required value, an unknown
// override name, or surplus positional values surface as an error before any
// network traffic happens. The resolved tuple handed to the Invoker is always
// ordered catalog, database, table, then narrower identifiers and payloads,
// matching the pre-existing service RPC contract.
//
// # Concurrency
//
// Clients hold no mutable per-call state; any number of goroutines may share
// one Client as long as the underlying Invoker is safe for concurrent use.
//
// # Logging
//
// The package logs through log/slog. Pass a configured *slog.Logger in
// Config, or the package falls back to slog.Default().
package metastore
