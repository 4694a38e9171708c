package arrowconv

import (
	"errors"
	"fmt"

	"github.com/hugr-lab/metastore-go/hive"
)

// Storage formats with a known SerDe mapping.
const (
	FormatParquet = "parquet"
	FormatORC     = "orc"
)

// ErrUnsupportedFormat indicates a storage descriptor whose input format has
// no known SerDe mapping.
var ErrUnsupportedFormat = errors.New("arrowconv: unsupported storage format")

// SerDe names the Hadoop input/output formats and serialization library of
// one storage format.
type SerDe struct {
	InputFormat      string
	OutputFormat     string
	SerializationLib string
}

// serdes mirrors Spark's HiveSerDe table for the formats this package knows.
// Avro is absent: Arrow has no Avro reader yet.
var serdes = map[string]SerDe{
	FormatParquet: {
		InputFormat:      "org.apache.hadoop.hive.ql.io.parquet.MapredParquetInputFormat",
		OutputFormat:     "org.apache.hadoop.hive.ql.io.parquet.MapredParquetOutputFormat",
		SerializationLib: "org.apache.hadoop.hive.ql.io.parquet.serde.ParquetHiveSerDe",
	},
	FormatORC: {
		InputFormat:      "org.apache.hadoop.hive.ql.io.orc.OrcInputFormat",
		OutputFormat:     "org.apache.hadoop.hive.ql.io.orc.OrcOutputFormat",
		SerializationLib: "org.apache.hadoop.hive.ql.io.orc.OrcSerde",
	},
}

// SerDeFor returns the SerDe mapping of a storage format name.
func SerDeFor(format string) (SerDe, bool) {
	sd, ok := serdes[format]
	return sd, ok
}

// FormatOf detects the storage format of a table or partition from its
// storage descriptor's input format class.
func FormatOf(sd *hive.StorageDescriptor) (string, error) {
	if sd == nil {
		return "", fmt.Errorf("%w: nil storage descriptor", ErrUnsupportedFormat)
	}
	for format, serde := range serdes {
		if serde.InputFormat == sd.InputFormat {
			return format, nil
		}
	}
	return "", fmt.Errorf("%w: input format %q", ErrUnsupportedFormat, sd.InputFormat)
}

// StorageFor fills a storage descriptor's format fields for a named storage
// format, keeping the rest of the descriptor untouched.
func StorageFor(format string, sd *hive.StorageDescriptor) error {
	serde, ok := serdes[format]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	sd.InputFormat = serde.InputFormat
	sd.OutputFormat = serde.OutputFormat
	if sd.SerdeInfo == nil {
		sd.SerdeInfo = &hive.SerDeInfo{}
	}
	sd.SerdeInfo.SerializationLib = serde.SerializationLib
	return nil
}
