// Package arrowconv maps Hive metastore schemas onto Apache Arrow and reads
// table data from object storage into Arrow records.
//
// Type conversion follows the Hive language manual's type names; unsupported
// types degrade to the Arrow null type with a logged warning rather than
// failing a whole schema.
package arrowconv

import (
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/apache/arrow-go/v18/arrow"

	"github.com/hugr-lab/metastore-go/hive"
)

// typePattern splits a Hive type string into its keyword and the optional
// angle-bracketed options, e.g. "MAP<STRING,INT>" -> "MAP", "STRING,INT".
var typePattern = regexp.MustCompile(`^(\w+)\s*(?:<(.*)>)?`)

// ParseType converts a Hive type string into an Arrow data type.
//
// Structural types (ARRAY, MAP, STRUCT) recurse into their options. VARCHAR
// and CHAR lengths are dropped: Arrow strings carry no length limit.
// Unknown type names map to arrow.Null with a warning; malformed options
// (e.g. a non-numeric DECIMAL precision) are an error.
func ParseType(hiveType string) (arrow.DataType, error) {
	s := strings.TrimSpace(hiveType)
	m := typePattern.FindStringSubmatch(s)
	if m == nil || m[1] == "" {
		slog.Warn("could not parse hive type", "type", hiveType)
		return arrow.Null, nil
	}
	keyword := strings.ToUpper(m[1])
	opts := m[2]

	switch keyword {
	case "ARRAY":
		item, err := ParseType(opts)
		if err != nil {
			return nil, err
		}
		return arrow.ListOf(item), nil

	case "MAP":
		kv := splitAware(opts, ',', -1)
		if len(kv) != 2 {
			return nil, fmt.Errorf("arrowconv: malformed MAP type %q", hiveType)
		}
		key, err := ParseType(kv[0])
		if err != nil {
			return nil, err
		}
		value, err := ParseType(kv[1])
		if err != nil {
			return nil, err
		}
		return arrow.MapOf(key, value), nil

	case "STRUCT":
		attrs := splitAware(opts, ',', -1)
		fields := make([]arrow.Field, 0, len(attrs))
		for _, attr := range attrs {
			name, typeStr, err := splitStructAttr(strings.TrimSpace(attr))
			if err != nil {
				return nil, fmt.Errorf("arrowconv: %w in STRUCT type %q", err, hiveType)
			}
			attrType, err := ParseType(typeStr)
			if err != nil {
				return nil, err
			}
			fields = append(fields, arrow.Field{
				Name:     Unquote(name),
				Type:     attrType,
				Nullable: true,
			})
		}
		return arrow.StructOf(fields...), nil

	case "DATE":
		return arrow.FixedWidthTypes.Date32, nil
	case "TIMESTAMP":
		// Hive timestamps carry no zone.
		return &arrow.TimestampType{Unit: arrow.Microsecond}, nil
	case "INTERVAL":
		return &arrow.DurationType{Unit: arrow.Second}, nil

	case "STRING", "VARCHAR", "CHAR":
		return arrow.BinaryTypes.String, nil
	case "BINARY":
		return arrow.BinaryTypes.Binary, nil

	case "DECIMAL", "NUMERIC":
		precision, scale := int32(10), int32(0)
		if opts != "" {
			ps := splitAware(opts, ',', -1)
			if len(ps) > 2 {
				return nil, fmt.Errorf("arrowconv: malformed DECIMAL type %q", hiveType)
			}
			p, err := strconv.ParseInt(strings.TrimSpace(ps[0]), 10, 32)
			if err != nil {
				return nil, fmt.Errorf("arrowconv: malformed DECIMAL precision in %q: %w", hiveType, err)
			}
			precision = int32(p)
			if len(ps) == 2 {
				sc, err := strconv.ParseInt(strings.TrimSpace(ps[1]), 10, 32)
				if err != nil {
					return nil, fmt.Errorf("arrowconv: malformed DECIMAL scale in %q: %w", hiveType, err)
				}
				scale = int32(sc)
			}
		}
		return &arrow.Decimal128Type{Precision: precision, Scale: scale}, nil

	case "FLOAT":
		return arrow.PrimitiveTypes.Float32, nil
	case "DOUBLE":
		return arrow.PrimitiveTypes.Float64, nil

	case "TINYINT":
		return arrow.PrimitiveTypes.Int8, nil
	case "SMALLINT":
		return arrow.PrimitiveTypes.Int16, nil
	case "INT", "INTEGER":
		return arrow.PrimitiveTypes.Int32, nil
	case "BIGINT":
		return arrow.PrimitiveTypes.Int64, nil

	case "BOOLEAN":
		return arrow.FixedWidthTypes.Boolean, nil

	default:
		slog.Warn("unsupported hive type", "type", hiveType)
		return arrow.Null, nil
	}
}

// splitStructAttr separates a struct attribute into name and type. Hive
// spells attributes "name:type"; older dumps use "name type".
func splitStructAttr(attr string) (name, typeStr string, err error) {
	parts := splitAware(attr, ':', 1)
	if len(parts) != 2 {
		parts = splitAware(attr, ' ', 1)
	}
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("malformed attribute %q", attr)
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), nil
}

// ConvertField converts one metastore column into an Arrow field.
// Column comments travel as field metadata under the "comment" key.
func ConvertField(col *hive.FieldSchema) (arrow.Field, error) {
	dt, err := ParseType(col.Type)
	if err != nil {
		return arrow.Field{}, err
	}
	field := arrow.Field{Name: col.Name, Type: dt, Nullable: true}
	if col.Comment != "" {
		field.Metadata = arrow.NewMetadata([]string{"comment"}, []string{col.Comment})
	}
	return field, nil
}

// ConvertSchema converts a table's columns and partition keys into an Arrow
// schema, partition keys last, matching the column order of materialized
// partitioned data.
func ConvertSchema(cols, partitionKeys []*hive.FieldSchema) (*arrow.Schema, error) {
	fields := make([]arrow.Field, 0, len(cols)+len(partitionKeys))
	for _, col := range cols {
		f, err := ConvertField(col)
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	for _, key := range partitionKeys {
		f, err := ConvertField(key)
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	return arrow.NewSchema(fields, nil), nil
}
