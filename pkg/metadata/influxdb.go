package metadata

import (
	"fmt"
	"strings"
	"time"

	"github.com/influxdata/influxdb/client/v2"
	"github.com/pkg/errors"
)

const influxMetadata = "training_metadata"

// InfluxDBConfig holds configuration for InfluxDB.
type InfluxDBConfig struct {
	httpConfig client.HTTPConfig
	dbName     string
}

// InfluxDB is a helper struct which keeps the InfluxDB session alive,
// holds the active configuration and the run id to tag the metadata with.
type InfluxDB struct {
	runID   string
	session client.Client
	config  InfluxDBConfig
}

// DefaultInfluxDBConfig applies the InfluxDB settings from the command line
// flags and environment variables.
func DefaultInfluxDBConfig() InfluxDBConfig {
	return InfluxDBConfig{
		dbName: InfluxDBName.Value(),
		httpConfig: client.HTTPConfig{
			Addr:               fmt.Sprintf("http://%s:%d", InfluxDBAddress.Value(), InfluxDBPort.Value()),
			Password:           InfluxDBPassword.Value(),
			Username:           InfluxDBUsername.Value(),
			InsecureSkipVerify: InfluxDBInsecureSkipVerify.Value(),
		},
	}
}

// NewInfluxDB returns the Metadata helper from a run id and configuration.
func NewInfluxDB(runID string, config InfluxDBConfig) (Metadata, error) {
	var err error

	metadata := &InfluxDB{
		runID:  runID,
		config: config,
	}

	metadata.session, err = client.NewHTTPClient(metadata.config.httpConfig)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot create influx client for run %s", runID)
	}

	if InfluxDBCreateDatabase.Value() {
		response, err := metadata.session.Query(client.Query{
			Command:  fmt.Sprintf("CREATE DATABASE %s", config.dbName),
			Database: ""})
		if err != nil {
			return nil, errors.Wrapf(err, "cannot create influx database for run %s", runID)
		}
		if response.Error() != nil {
			return nil, errors.Wrapf(response.Error(), "response contains error for run %s", runID)
		}
	}

	return metadata, nil
}

// influxDBStoreMap writes metadata to the database with tags attached to it.
// It writes values row by row; no aggregation is done.
func influxDBStoreMap(m *InfluxDB, metadata map[string]string, kind string) error {
	batchPoints, err := client.NewBatchPoints(client.BatchPointsConfig{Database: m.config.dbName})
	if err != nil {
		return errors.Wrapf(err, "creation of batch points for InfluxDB failed for metadata kind %q", kind)
	}

	tags := map[string]string{"kind": kind, "run_id": m.runID}

	fields := make(map[string]interface{})
	for key := range metadata {
		fields[key] = metadata[key]
	}
	point, err := client.NewPoint(influxMetadata, tags, fields, time.Now())
	if err != nil {
		return errors.Wrapf(err, "cannot create new point, kind %q", kind)
	}

	batchPoints.AddPoint(point)

	if err := m.session.Write(batchPoints); err != nil {
		return errors.Wrapf(err, "cannot publish metadata of kind %q", kind)
	}
	return nil
}

// Record stores a key and value and associates them with the run id.
func (m *InfluxDB) Record(key, value, kind string) error {
	metadata := map[string]string{}
	metadata[key] = value
	return influxDBStoreMap(m, metadata, kind)
}

// RecordMap stores a key/value map and associates it with the run id.
func (m *InfluxDB) RecordMap(metadata map[string]string, kind string) error {
	return influxDBStoreMap(m, metadata, kind)
}

// GetByKind retrieves a single kind from the database. If duplicates are
// found then the last one is returned.
func (m *InfluxDB) GetByKind(kind string) (map[string]string, error) {
	var metadata = make(map[string]string)
	// There are two tags and the query gets rid of them by grouping.
	cmd := fmt.Sprintf("SELECT last(*) FROM %s WHERE run_id='%s' AND kind='%s' GROUP BY run_id,kind", influxMetadata, m.runID, kind)

	query := client.Query{
		Command:  cmd,
		Database: m.config.dbName,
	}

	response, err := m.session.Query(query)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to query influxdb for run %s", m.runID)
	}
	if response.Error() != nil {
		return nil, errors.Wrapf(response.Error(), "response from influxdb contained error for run %s", m.runID)
	}

	for _, result := range response.Results {
		for _, row := range result.Series {
			for _, value := range row.Values {
				for idx, cell := range value {
					// Index 0 is the timestamp, which is not part of the
					// metadata. Results may be sparse, so skip empty cells.
					if cell != nil && idx != 0 {
						column := strings.Replace(row.Columns[idx], "last_", "", 1)
						metadata[column] = cell.(string)
					}
				}
			}
		}
	}

	return metadata, nil
}

// Clear deletes all metadata entries associated with the current run id.
func (m *InfluxDB) Clear() error {
	cmd := fmt.Sprintf("DROP SERIES FROM %s WHERE run_id ='%s'", influxMetadata, m.runID)

	query := client.Query{
		Command:  cmd,
		Database: m.config.dbName,
	}

	response, err := m.session.Query(query)
	if err != nil {
		return errors.Wrapf(err, "failed to query influxdb for run %s", m.runID)
	}
	if response.Error() != nil {
		return errors.Wrapf(response.Error(), "response from influxdb contained error for run %s", m.runID)
	}
	return nil
}
