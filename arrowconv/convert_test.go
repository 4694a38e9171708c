package arrowconv

import (
	"testing"

	"github.com/apache/arrow-go/v18/arrow"

	"github.com/hugr-lab/metastore-go/hive"
)

func TestParseType(t *testing.T) {
	tests := []struct {
		name     string
		hiveType string
		want     arrow.DataType
	}{
		{"string", "STRING", arrow.BinaryTypes.String},
		{"lowercase", "string", arrow.BinaryTypes.String},
		{"varchar drops length", "VARCHAR(255)", arrow.BinaryTypes.String},
		{"char drops length", "CHAR(10)", arrow.BinaryTypes.String},
		{"binary", "BINARY", arrow.BinaryTypes.Binary},
		{"boolean", "BOOLEAN", arrow.FixedWidthTypes.Boolean},
		{"tinyint", "TINYINT", arrow.PrimitiveTypes.Int8},
		{"smallint", "SMALLINT", arrow.PrimitiveTypes.Int16},
		{"int", "INT", arrow.PrimitiveTypes.Int32},
		{"integer", "INTEGER", arrow.PrimitiveTypes.Int32},
		{"bigint", "BIGINT", arrow.PrimitiveTypes.Int64},
		{"float", "FLOAT", arrow.PrimitiveTypes.Float32},
		{"double", "DOUBLE", arrow.PrimitiveTypes.Float64},
		{"date", "DATE", arrow.FixedWidthTypes.Date32},
		{"timestamp", "TIMESTAMP", &arrow.TimestampType{Unit: arrow.Microsecond}},
		{"interval", "INTERVAL", &arrow.DurationType{Unit: arrow.Second}},
		{"decimal default", "DECIMAL", &arrow.Decimal128Type{Precision: 10, Scale: 0}},
		{"decimal precision", "DECIMAL<20>", &arrow.Decimal128Type{Precision: 20, Scale: 0}},
		{"decimal precision and scale", "DECIMAL<20,4>", &arrow.Decimal128Type{Precision: 20, Scale: 4}},
		{"numeric", "NUMERIC<12,2>", &arrow.Decimal128Type{Precision: 12, Scale: 2}},
		{"array", "ARRAY<INT>", arrow.ListOf(arrow.PrimitiveTypes.Int32)},
		{"nested array", "ARRAY<ARRAY<STRING>>",
			arrow.ListOf(arrow.ListOf(arrow.BinaryTypes.String))},
		{"map", "MAP<STRING,INT>", arrow.MapOf(arrow.BinaryTypes.String, arrow.PrimitiveTypes.Int32)},
		{"map of array", "MAP<STRING,ARRAY<INT>>",
			arrow.MapOf(arrow.BinaryTypes.String, arrow.ListOf(arrow.PrimitiveTypes.Int32))},
		{"struct", "STRUCT<a:INT,b:STRING>",
			arrow.StructOf(
				arrow.Field{Name: "a", Type: arrow.PrimitiveTypes.Int32, Nullable: true},
				arrow.Field{Name: "b", Type: arrow.BinaryTypes.String, Nullable: true},
			)},
		{"struct space separated", "STRUCT<a INT, b STRING>",
			arrow.StructOf(
				arrow.Field{Name: "a", Type: arrow.PrimitiveTypes.Int32, Nullable: true},
				arrow.Field{Name: "b", Type: arrow.BinaryTypes.String, Nullable: true},
			)},
		{"struct quoted name", `STRUCT<"a b":INT>`,
			arrow.StructOf(
				arrow.Field{Name: "a b", Type: arrow.PrimitiveTypes.Int32, Nullable: true},
			)},
		{"struct of map", "STRUCT<tags:MAP<STRING,STRING>>",
			arrow.StructOf(
				arrow.Field{
					Name:     "tags",
					Type:     arrow.MapOf(arrow.BinaryTypes.String, arrow.BinaryTypes.String),
					Nullable: true,
				},
			)},
		{"unknown degrades to null", "GEOGRAPHY", arrow.Null},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseType(tt.hiveType)
			if err != nil {
				t.Fatalf("ParseType(%q) failed: %v", tt.hiveType, err)
			}
			if !arrow.TypeEqual(got, tt.want) {
				t.Errorf("ParseType(%q) = %v, want %v", tt.hiveType, got, tt.want)
			}
		})
	}
}

func TestParseTypeErrors(t *testing.T) {
	tests := []struct {
		name     string
		hiveType string
	}{
		{"malformed map", "MAP<STRING>"},
		{"malformed struct attribute", "STRUCT<justaname>"},
		{"bad decimal precision", "DECIMAL<x>"},
		{"bad decimal scale", "DECIMAL<10,x>"},
		{"too many decimal options", "DECIMAL<10,2,1>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseType(tt.hiveType); err == nil {
				t.Errorf("ParseType(%q) did not fail", tt.hiveType)
			}
		})
	}
}

func TestConvertField(t *testing.T) {
	f, err := ConvertField(&hive.FieldSchema{Name: "id", Type: "BIGINT", Comment: "row id"})
	if err != nil {
		t.Fatalf("ConvertField() failed: %v", err)
	}
	if f.Name != "id" || !arrow.TypeEqual(f.Type, arrow.PrimitiveTypes.Int64) || !f.Nullable {
		t.Errorf("ConvertField() = %v", f)
	}
	comment, ok := f.Metadata.GetValue("comment")
	if !ok || comment != "row id" {
		t.Errorf("comment metadata = %q, %v", comment, ok)
	}

	f, err = ConvertField(&hive.FieldSchema{Name: "name", Type: "STRING"})
	if err != nil {
		t.Fatalf("ConvertField() failed: %v", err)
	}
	if f.Metadata.Len() != 0 {
		t.Errorf("field without comment carries metadata %v", f.Metadata)
	}
}

func TestConvertSchemaPartitionKeysLast(t *testing.T) {
	cols := []*hive.FieldSchema{
		{Name: "id", Type: "BIGINT"},
		{Name: "payload", Type: "STRING"},
	}
	keys := []*hive.FieldSchema{
		{Name: "ds", Type: "DATE"},
	}

	schema, err := ConvertSchema(cols, keys)
	if err != nil {
		t.Fatalf("ConvertSchema() failed: %v", err)
	}
	if schema.NumFields() != 3 {
		t.Fatalf("NumFields() = %d, want 3", schema.NumFields())
	}
	wantOrder := []string{"id", "payload", "ds"}
	for i, name := range wantOrder {
		if got := schema.Field(i).Name; got != name {
			t.Errorf("field %d = %q, want %q", i, got, name)
		}
	}
	if !arrow.TypeEqual(schema.Field(2).Type, arrow.FixedWidthTypes.Date32) {
		t.Errorf("partition key type = %v", schema.Field(2).Type)
	}
}
