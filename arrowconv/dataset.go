package arrowconv

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/hugr-lab/metastore-go"
	"github.com/hugr-lab/metastore-go/hive"
)

// hiveDefaultPartition is the marker Hive writes for a null partition value.
const hiveDefaultPartition = "__HIVE_DEFAULT_PARTITION__"

// ErrSchemaMismatch indicates a data file whose physical type for a column
// disagrees with the type the metastore declares for it.
var ErrSchemaMismatch = errors.New("arrowconv: data file schema mismatch")

// PartitionLister is the slice of the metastore client the dataset reader
// needs: partition discovery for partitioned tables.
type PartitionLister interface {
	GetPartitions(ctx context.Context, tableName string, maxParts int16, overrides ...metastore.Override) ([]*hive.Partition, error)
}

// S3Config configures object-storage access for the dataset reader. It works
// against AWS as well as S3-compatible emulators when Endpoint is set.
type S3Config struct {
	// Endpoint overrides the S3 endpoint, e.g. "http://localhost:9000".
	// OPTIONAL: Empty uses the AWS default resolution.
	Endpoint string

	// Region for request signing.
	// OPTIONAL: Uses "aws-global" if empty.
	Region string

	// AccessKey and SecretKey select static credentials.
	// OPTIONAL: Empty AccessKey falls back to the SDK's default chain.
	AccessKey string
	SecretKey string

	// UsePathStyle addresses buckets by path instead of virtual host.
	// Required by most emulators.
	UsePathStyle bool
}

// DatasetReader materializes metastore tables from S3-backed warehouses into
// Arrow tables. Only parquet-format tables can be read; ORC metadata is
// understood (see FormatOf) but Arrow carries no ORC reader.
type DatasetReader struct {
	s3  *s3.Client
	mem memory.Allocator
	log *slog.Logger
}

// NewDatasetReader creates a reader over the configured object storage.
// A nil allocator uses memory.DefaultAllocator, a nil logger slog.Default().
func NewDatasetReader(cfg S3Config, mem memory.Allocator, logger *slog.Logger) *DatasetReader {
	if mem == nil {
		mem = memory.DefaultAllocator
	}
	if logger == nil {
		logger = slog.Default()
	}

	opts := s3.Options{
		Region:       cfg.Region,
		UsePathStyle: cfg.UsePathStyle,
	}
	if opts.Region == "" {
		opts.Region = "aws-global"
	}
	if cfg.AccessKey != "" {
		opts.Credentials = credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
	}

	return &DatasetReader{s3: s3.New(opts), mem: mem, log: logger}
}

// ReadTable reads a table's data files into one Arrow table. For partitioned
// tables every partition location is read and the partition key columns are
// appended from the partition values.
//
// The result always carries the schema derived from the table's metadata
// (ConvertSchema, partition keys last), not the physical schema of any one
// data file: columns a file lacks are null-filled, columns the metastore
// does not know are dropped, and a column whose physical type disagrees with
// the declared one fails with ErrSchemaMismatch. Schema-evolved warehouses
// mix file generations freely, so no file's layout can be trusted as the
// table's.
func (r *DatasetReader) ReadTable(ctx context.Context, client PartitionLister, table *hive.Table) (arrow.Table, error) {
	format, err := FormatOf(table.Sd)
	if err != nil {
		return nil, err
	}
	if format != FormatParquet {
		return nil, fmt.Errorf("%w: cannot read %s data", ErrUnsupportedFormat, format)
	}

	schema, err := ConvertSchema(table.Sd.Cols, table.PartitionKeys)
	if err != nil {
		return nil, err
	}

	// NewTableFromRecords retains what it needs, so the local references
	// are dropped in every path.
	var recs []arrow.Record
	defer func() { releaseAll(recs) }()

	if len(table.PartitionKeys) == 0 {
		recs, err = r.readLocation(ctx, table.Sd.Location)
		if err != nil {
			return nil, err
		}
	} else {
		parts, err := r.listPartitions(ctx, client, table)
		if err != nil {
			return nil, err
		}
		for _, part := range parts {
			partRecs, err := r.readPartition(ctx, table, part)
			if err != nil {
				releaseAll(partRecs)
				return nil, err
			}
			recs = append(recs, partRecs...)
		}
	}

	if len(recs) == 0 {
		builder := array.NewRecordBuilder(r.mem, schema)
		defer builder.Release()
		empty := builder.NewRecord()
		defer empty.Release()
		return array.NewTableFromRecords(schema, []arrow.Record{empty}), nil
	}

	for i, rec := range recs {
		conformed, err := r.conformRecord(schema, rec)
		if err != nil {
			return nil, err
		}
		rec.Release()
		recs[i] = conformed
	}
	return array.NewTableFromRecords(schema, recs), nil
}

// conformRecord reshapes one data-file record to the table schema: columns
// are matched by name, missing ones are null-filled, surplus ones dropped.
// A name that matches with a different physical type is ErrSchemaMismatch.
func (r *DatasetReader) conformRecord(schema *arrow.Schema, rec arrow.Record) (arrow.Record, error) {
	if rec.Schema().Equal(schema) {
		rec.Retain()
		return rec, nil
	}

	var filled []arrow.Array
	defer func() {
		for _, arr := range filled {
			arr.Release()
		}
	}()

	n := int(rec.NumRows())
	cols := make([]arrow.Array, 0, schema.NumFields())
	for _, field := range schema.Fields() {
		indices := rec.Schema().FieldIndices(field.Name)
		if len(indices) == 0 {
			builder := array.NewBuilder(r.mem, field.Type)
			builder.AppendNulls(n)
			arr := builder.NewArray()
			builder.Release()
			filled = append(filled, arr)
			cols = append(cols, arr)
			continue
		}
		col := rec.Column(indices[0])
		if !arrow.TypeEqual(col.DataType(), field.Type) {
			return nil, fmt.Errorf("%w: column %q is %s in the data file, %s in the metastore",
				ErrSchemaMismatch, field.Name, col.DataType(), field.Type)
		}
		cols = append(cols, col)
	}
	return array.NewRecord(schema, cols, rec.NumRows()), nil
}

// listPartitions fetches the table's partitions with the table's own scope
// as overrides, so default catalog/database injection stays consistent.
func (r *DatasetReader) listPartitions(ctx context.Context, client PartitionLister, table *hive.Table) ([]*hive.Partition, error) {
	var overrides []metastore.Override
	if table.DbName != "" {
		overrides = append(overrides, metastore.InDatabase(table.DbName))
	}
	if table.CatName != "" {
		overrides = append(overrides, metastore.InCatalog(table.CatName))
	}
	parts, err := client.GetPartitions(ctx, table.TableName, -1, overrides...)
	if err != nil {
		return nil, fmt.Errorf("list partitions of %s: %w", table.TableName, err)
	}
	return parts, nil
}

// readPartition reads one partition's files and appends its key columns.
func (r *DatasetReader) readPartition(ctx context.Context, table *hive.Table, part *hive.Partition) ([]arrow.Record, error) {
	if part.Sd == nil || part.Sd.Location == "" {
		return nil, fmt.Errorf("partition %v of %s has no location", part.Values, table.TableName)
	}
	if len(part.Values) != len(table.PartitionKeys) {
		return nil, fmt.Errorf("partition %v of %s does not match its %d partition keys",
			part.Values, table.TableName, len(table.PartitionKeys))
	}

	recs, err := r.readLocation(ctx, part.Sd.Location)
	if err != nil {
		return nil, err
	}
	out := make([]arrow.Record, 0, len(recs))
	for _, rec := range recs {
		expanded, err := r.appendPartitionColumns(rec, table.PartitionKeys, part.Values)
		rec.Release()
		if err != nil {
			releaseAll(out)
			return nil, err
		}
		out = append(out, expanded)
	}
	return out, nil
}

// readLocation lists an s3:// location and reads every data file in it.
// Zero-length objects and Hadoop marker files (underscore or dot prefixed)
// are skipped, matching what dataset scanners do with hive layouts.
func (r *DatasetReader) readLocation(ctx context.Context, location string) ([]arrow.Record, error) {
	bucket, prefix, err := parseS3Location(location)
	if err != nil {
		return nil, err
	}

	var recs []arrow.Record
	paginator := s3.NewListObjectsV2Paginator(r.s3, &s3.ListObjectsV2Input{
		Bucket: aws.String(bucket),
		Prefix: aws.String(prefix),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			releaseAll(recs)
			return nil, fmt.Errorf("list %s: %w", location, err)
		}
		for _, obj := range page.Contents {
			key := aws.ToString(obj.Key)
			if skipObject(key, aws.ToInt64(obj.Size)) {
				continue
			}
			fileRecs, err := r.readParquetObject(ctx, bucket, key)
			if err != nil {
				releaseAll(recs)
				return nil, err
			}
			recs = append(recs, fileRecs...)
		}
	}
	return recs, nil
}

// readParquetObject fetches one object and decodes it as parquet.
func (r *DatasetReader) readParquetObject(ctx context.Context, bucket, key string) ([]arrow.Record, error) {
	out, err := r.s3.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("get s3://%s/%s: %w", bucket, key, err)
	}
	defer out.Body.Close()

	buf, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("read s3://%s/%s: %w", bucket, key, err)
	}

	tbl, err := pqarrow.ReadTable(ctx, bytes.NewReader(buf),
		parquet.NewReaderProperties(r.mem), pqarrow.ArrowReadProperties{}, r.mem)
	if err != nil {
		return nil, fmt.Errorf("decode parquet s3://%s/%s: %w", bucket, key, err)
	}
	defer tbl.Release()

	r.log.Debug("read parquet object", "bucket", bucket, "key", key, "rows", tbl.NumRows())

	var recs []arrow.Record
	reader := array.NewTableReader(tbl, -1)
	defer reader.Release()
	for reader.Next() {
		rec := reader.Record()
		rec.Retain()
		recs = append(recs, rec)
	}
	return recs, nil
}

// appendPartitionColumns widens a record with constant columns built from
// the partition's key values.
func (r *DatasetReader) appendPartitionColumns(rec arrow.Record, keys []*hive.FieldSchema, values []string) (arrow.Record, error) {
	fields := make([]arrow.Field, 0, rec.Schema().NumFields()+len(keys))
	fields = append(fields, rec.Schema().Fields()...)
	cols := make([]arrow.Array, 0, len(fields))
	cols = append(cols, rec.Columns()...)

	built := make([]arrow.Array, 0, len(keys))
	defer func() {
		for _, arr := range built {
			arr.Release()
		}
	}()

	for i, key := range keys {
		field, err := ConvertField(key)
		if err != nil {
			return nil, err
		}
		arr, err := partitionColumn(r.mem, field, values[i], int(rec.NumRows()))
		if err != nil {
			return nil, err
		}
		built = append(built, arr)
		fields = append(fields, field)
		cols = append(cols, arr)
	}

	schema := arrow.NewSchema(fields, nil)
	return array.NewRecord(schema, cols, rec.NumRows()), nil
}

// partitionColumn builds a length-n constant column from a partition value.
// Hive serializes partition values as path strings, so numeric and temporal
// key types are parsed back here. The null-partition marker becomes nulls.
func partitionColumn(mem memory.Allocator, field arrow.Field, value string, n int) (arrow.Array, error) {
	builder := array.NewBuilder(mem, field.Type)
	defer builder.Release()

	if value == hiveDefaultPartition {
		for i := 0; i < n; i++ {
			builder.AppendNull()
		}
		return builder.NewArray(), nil
	}

	switch b := builder.(type) {
	case *array.StringBuilder:
		for i := 0; i < n; i++ {
			b.Append(value)
		}
	case *array.Int8Builder:
		v, err := strconv.ParseInt(value, 10, 8)
		if err != nil {
			return nil, partitionValueError(field, value, err)
		}
		for i := 0; i < n; i++ {
			b.Append(int8(v))
		}
	case *array.Int16Builder:
		v, err := strconv.ParseInt(value, 10, 16)
		if err != nil {
			return nil, partitionValueError(field, value, err)
		}
		for i := 0; i < n; i++ {
			b.Append(int16(v))
		}
	case *array.Int32Builder:
		v, err := strconv.ParseInt(value, 10, 32)
		if err != nil {
			return nil, partitionValueError(field, value, err)
		}
		for i := 0; i < n; i++ {
			b.Append(int32(v))
		}
	case *array.Int64Builder:
		v, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, partitionValueError(field, value, err)
		}
		for i := 0; i < n; i++ {
			b.Append(v)
		}
	case *array.Float32Builder:
		v, err := strconv.ParseFloat(value, 32)
		if err != nil {
			return nil, partitionValueError(field, value, err)
		}
		for i := 0; i < n; i++ {
			b.Append(float32(v))
		}
	case *array.Float64Builder:
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, partitionValueError(field, value, err)
		}
		for i := 0; i < n; i++ {
			b.Append(v)
		}
	case *array.BooleanBuilder:
		v, err := strconv.ParseBool(value)
		if err != nil {
			return nil, partitionValueError(field, value, err)
		}
		for i := 0; i < n; i++ {
			b.Append(v)
		}
	case *array.Date32Builder:
		t, err := time.Parse("2006-01-02", value)
		if err != nil {
			return nil, partitionValueError(field, value, err)
		}
		for i := 0; i < n; i++ {
			b.Append(arrow.Date32FromTime(t))
		}
	default:
		return nil, fmt.Errorf("arrowconv: unsupported partition key type %s for %q", field.Type, field.Name)
	}
	return builder.NewArray(), nil
}

func partitionValueError(field arrow.Field, value string, err error) error {
	return fmt.Errorf("arrowconv: partition value %q for %q: %w", value, field.Name, err)
}

// parseS3Location splits an s3://bucket/prefix location into bucket and
// prefix. The s3a and s3n scheme spellings are accepted too.
func parseS3Location(location string) (bucket, prefix string, err error) {
	u, err := url.Parse(location)
	if err != nil {
		return "", "", fmt.Errorf("parse location %q: %w", location, err)
	}
	switch u.Scheme {
	case "s3", "s3a", "s3n":
	default:
		return "", "", fmt.Errorf("unsupported location scheme %q in %q", u.Scheme, location)
	}
	if u.Host == "" {
		return "", "", fmt.Errorf("location %q has no bucket", location)
	}
	prefix = strings.TrimPrefix(u.Path, "/")
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return u.Host, prefix, nil
}

// skipObject filters out directory markers, zero-length objects and Hadoop
// bookkeeping files such as _SUCCESS.
func skipObject(key string, size int64) bool {
	if size == 0 || strings.HasSuffix(key, "/") {
		return true
	}
	base := key
	if i := strings.LastIndexByte(key, '/'); i >= 0 {
		base = key[i+1:]
	}
	return strings.HasPrefix(base, "_") || strings.HasPrefix(base, ".")
}

// releaseAll releases records accumulated before a failure.
func releaseAll(recs []arrow.Record) {
	for _, rec := range recs {
		rec.Release()
	}
}
