// Package metadata records training-run metadata (flags, environment,
// dataset shape, chosen generator library) in an external database, so runs
// stay auditable after the local files are gone. The store is optional: the
// service works without any database configured.
package metadata

import (
	"fmt"
)

// Predefined kinds of metadata. The kind groups entries by their common
// characteristics: TypeFlags for the flag-based configuration of the run,
// TypeEnviron for environment variables, TypeTraining for dataset and model
// facts recorded by the trainer. A kind is just a string; callers can define
// their own.
const (
	TypeEmpty    = ""
	TypeFlags    = "flags"
	TypeEnviron  = "environ"
	TypeTraining = "training"
)

// Metadata defines the methods a metadata store backend must support.
type Metadata interface {
	// Record stores a key and value and associates them with the run id.
	Record(key string, value string, kind string) error
	// RecordMap stores a key/value map and associates it with the run id.
	RecordMap(metadata map[string]string, kind string) error
	// GetByKind retrieves a single metadata kind from the database.
	GetByKind(kind string) (map[string]string, error)
	// Clear deletes all metadata entries associated with the current run id.
	Clear() error
}

// NewDefault initializes the metadata store selected by the metadata_db flag.
func NewDefault(runID string) (Metadata, error) {
	switch MetadataDB.Value() {
	case "cassandra":
		return NewCassandra(runID, DefaultCassandraConfig())
	case "influxdb":
		return NewInfluxDB(runID, DefaultInfluxDBConfig())
	}

	return nil, fmt.Errorf("unsupported database for metadata: %s", MetadataDB.Value())
}
