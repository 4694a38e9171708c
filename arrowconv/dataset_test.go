package arrowconv

import (
	"errors"
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
)

func TestParseS3Location(t *testing.T) {
	tests := []struct {
		name       string
		location   string
		wantBucket string
		wantPrefix string
		wantErr    bool
	}{
		{"plain", "s3://warehouse/db/events", "warehouse", "db/events/", false},
		{"trailing slash", "s3://warehouse/db/events/", "warehouse", "db/events/", false},
		{"bucket only", "s3://warehouse", "warehouse", "", false},
		{"s3a scheme", "s3a://warehouse/db/events", "warehouse", "db/events/", false},
		{"s3n scheme", "s3n://warehouse/db/events", "warehouse", "db/events/", false},
		{"hdfs rejected", "hdfs://namenode/db/events", "", "", true},
		{"no bucket", "s3:///db/events", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bucket, prefix, err := parseS3Location(tt.location)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseS3Location(%q) error = %v, wantErr %v", tt.location, err, tt.wantErr)
			}
			if bucket != tt.wantBucket || prefix != tt.wantPrefix {
				t.Errorf("parseS3Location(%q) = %q, %q, want %q, %q",
					tt.location, bucket, prefix, tt.wantBucket, tt.wantPrefix)
			}
		})
	}
}

func TestSkipObject(t *testing.T) {
	tests := []struct {
		name string
		key  string
		size int64
		want bool
	}{
		{"data file", "db/events/part-00000.parquet", 1024, false},
		{"zero length", "db/events/part-00000.parquet", 0, true},
		{"directory marker", "db/events/", 0, true},
		{"success marker", "db/events/_SUCCESS", 8, true},
		{"hidden file", "db/events/.crc", 12, true},
		{"underscore dir is kept by base name only", "db/_tmp/part-00000.parquet", 1024, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := skipObject(tt.key, tt.size); got != tt.want {
				t.Errorf("skipObject(%q, %d) = %v, want %v", tt.key, tt.size, got, tt.want)
			}
		})
	}
}

func buildRecord(mem memory.Allocator, schema *arrow.Schema, fill func(*array.RecordBuilder)) arrow.Record {
	builder := array.NewRecordBuilder(mem, schema)
	defer builder.Release()
	fill(builder)
	return builder.NewRecord()
}

func TestConformRecord(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.DefaultAllocator)
	defer mem.AssertSize(t, 0)
	r := &DatasetReader{mem: mem}

	tableSchema := arrow.NewSchema([]arrow.Field{
		{Name: "id", Type: arrow.PrimitiveTypes.Int64, Nullable: true},
		{Name: "payload", Type: arrow.BinaryTypes.String, Nullable: true},
	}, nil)

	t.Run("missing column null-filled", func(t *testing.T) {
		// A file written before "payload" was added to the table.
		oldSchema := arrow.NewSchema([]arrow.Field{
			{Name: "id", Type: arrow.PrimitiveTypes.Int64, Nullable: true},
		}, nil)
		rec := buildRecord(mem, oldSchema, func(b *array.RecordBuilder) {
			b.Field(0).(*array.Int64Builder).AppendValues([]int64{1, 2}, nil)
		})
		defer rec.Release()

		got, err := r.conformRecord(tableSchema, rec)
		if err != nil {
			t.Fatalf("conformRecord() failed: %v", err)
		}
		defer got.Release()

		if !got.Schema().Equal(tableSchema) {
			t.Fatalf("schema = %v, want the table schema", got.Schema())
		}
		if got.NumRows() != 2 {
			t.Fatalf("NumRows() = %d, want 2", got.NumRows())
		}
		payload := got.Column(1)
		if payload.NullN() != 2 {
			t.Errorf("missing column has %d nulls, want 2", payload.NullN())
		}
		if got.Column(0).(*array.Int64).Value(0) != 1 {
			t.Error("kept column lost its values")
		}
	})

	t.Run("surplus column dropped", func(t *testing.T) {
		wideSchema := arrow.NewSchema([]arrow.Field{
			{Name: "id", Type: arrow.PrimitiveTypes.Int64, Nullable: true},
			{Name: "payload", Type: arrow.BinaryTypes.String, Nullable: true},
			{Name: "legacy", Type: arrow.BinaryTypes.String, Nullable: true},
		}, nil)
		rec := buildRecord(mem, wideSchema, func(b *array.RecordBuilder) {
			b.Field(0).(*array.Int64Builder).Append(1)
			b.Field(1).(*array.StringBuilder).Append("x")
			b.Field(2).(*array.StringBuilder).Append("dropped")
		})
		defer rec.Release()

		got, err := r.conformRecord(tableSchema, rec)
		if err != nil {
			t.Fatalf("conformRecord() failed: %v", err)
		}
		defer got.Release()

		if got.NumCols() != 2 || !got.Schema().Equal(tableSchema) {
			t.Errorf("schema = %v, want the table schema without the surplus column", got.Schema())
		}
	})

	t.Run("columns matched by name not position", func(t *testing.T) {
		swapped := arrow.NewSchema([]arrow.Field{
			{Name: "payload", Type: arrow.BinaryTypes.String, Nullable: true},
			{Name: "id", Type: arrow.PrimitiveTypes.Int64, Nullable: true},
		}, nil)
		rec := buildRecord(mem, swapped, func(b *array.RecordBuilder) {
			b.Field(0).(*array.StringBuilder).Append("x")
			b.Field(1).(*array.Int64Builder).Append(7)
		})
		defer rec.Release()

		got, err := r.conformRecord(tableSchema, rec)
		if err != nil {
			t.Fatalf("conformRecord() failed: %v", err)
		}
		defer got.Release()

		if got.Column(0).(*array.Int64).Value(0) != 7 {
			t.Error("id column not matched by name")
		}
		if got.Column(1).(*array.String).Value(0) != "x" {
			t.Error("payload column not matched by name")
		}
	})

	t.Run("type mismatch surfaces", func(t *testing.T) {
		badSchema := arrow.NewSchema([]arrow.Field{
			{Name: "id", Type: arrow.BinaryTypes.String, Nullable: true},
			{Name: "payload", Type: arrow.BinaryTypes.String, Nullable: true},
		}, nil)
		rec := buildRecord(mem, badSchema, func(b *array.RecordBuilder) {
			b.Field(0).(*array.StringBuilder).Append("1")
			b.Field(1).(*array.StringBuilder).Append("x")
		})
		defer rec.Release()

		if _, err := r.conformRecord(tableSchema, rec); !errors.Is(err, ErrSchemaMismatch) {
			t.Fatalf("conformRecord() error = %v, want ErrSchemaMismatch", err)
		}
	})

	t.Run("matching record passes through", func(t *testing.T) {
		rec := buildRecord(mem, tableSchema, func(b *array.RecordBuilder) {
			b.Field(0).(*array.Int64Builder).Append(1)
			b.Field(1).(*array.StringBuilder).Append("x")
		})
		defer rec.Release()

		got, err := r.conformRecord(tableSchema, rec)
		if err != nil {
			t.Fatalf("conformRecord() failed: %v", err)
		}
		defer got.Release()

		if got.Column(0).(*array.Int64).Value(0) != 1 {
			t.Error("pass-through record lost its values")
		}
	})
}

func TestPartitionColumn(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.DefaultAllocator)
	defer mem.AssertSize(t, 0)

	tests := []struct {
		name  string
		field arrow.Field
		value string
		check func(t *testing.T, arr arrow.Array)
	}{
		{
			"string",
			arrow.Field{Name: "ds", Type: arrow.BinaryTypes.String},
			"2024-01-01",
			func(t *testing.T, arr arrow.Array) {
				if got := arr.(*array.String).Value(0); got != "2024-01-01" {
					t.Errorf("value = %q", got)
				}
			},
		},
		{
			"int32",
			arrow.Field{Name: "year", Type: arrow.PrimitiveTypes.Int32},
			"2024",
			func(t *testing.T, arr arrow.Array) {
				if got := arr.(*array.Int32).Value(0); got != 2024 {
					t.Errorf("value = %d", got)
				}
			},
		},
		{
			"int64",
			arrow.Field{Name: "bucket", Type: arrow.PrimitiveTypes.Int64},
			"7",
			func(t *testing.T, arr arrow.Array) {
				if got := arr.(*array.Int64).Value(0); got != 7 {
					t.Errorf("value = %d", got)
				}
			},
		},
		{
			"float64",
			arrow.Field{Name: "rate", Type: arrow.PrimitiveTypes.Float64},
			"0.5",
			func(t *testing.T, arr arrow.Array) {
				if got := arr.(*array.Float64).Value(0); got != 0.5 {
					t.Errorf("value = %v", got)
				}
			},
		},
		{
			"boolean",
			arrow.Field{Name: "active", Type: arrow.FixedWidthTypes.Boolean},
			"true",
			func(t *testing.T, arr arrow.Array) {
				if !arr.(*array.Boolean).Value(0) {
					t.Error("value = false")
				}
			},
		},
		{
			"date32",
			arrow.Field{Name: "ds", Type: arrow.FixedWidthTypes.Date32},
			"2024-01-01",
			func(t *testing.T, arr arrow.Array) {
				if got := arr.(*array.Date32).Value(0).FormattedString(); got != "2024-01-01" {
					t.Errorf("value = %q", got)
				}
			},
		},
		{
			"null marker",
			arrow.Field{Name: "ds", Type: arrow.BinaryTypes.String},
			hiveDefaultPartition,
			func(t *testing.T, arr arrow.Array) {
				if !arr.IsNull(0) {
					t.Error("null-partition marker did not produce nulls")
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			arr, err := partitionColumn(mem, tt.field, tt.value, 3)
			if err != nil {
				t.Fatalf("partitionColumn() failed: %v", err)
			}
			defer arr.Release()
			if arr.Len() != 3 {
				t.Fatalf("Len() = %d, want 3", arr.Len())
			}
			tt.check(t, arr)
		})
	}
}

func TestPartitionColumnErrors(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.DefaultAllocator)
	defer mem.AssertSize(t, 0)

	tests := []struct {
		name  string
		field arrow.Field
		value string
	}{
		{"non-numeric int", arrow.Field{Name: "year", Type: arrow.PrimitiveTypes.Int32}, "twenty"},
		{"bad date", arrow.Field{Name: "ds", Type: arrow.FixedWidthTypes.Date32}, "Jan 1"},
		{"unsupported key type", arrow.Field{Name: "tags", Type: arrow.MapOf(arrow.BinaryTypes.String, arrow.BinaryTypes.String)}, "x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := partitionColumn(mem, tt.field, tt.value, 1); err == nil {
				t.Errorf("partitionColumn(%q) did not fail", tt.value)
			}
		})
	}
}
