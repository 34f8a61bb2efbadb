package metadata

import (
	"time"

	"github.com/srikesh3005/SynthoML/pkg/conf"
)

// Flags configuring the metadata store backends.
var (
	// MetadataDB selects the backend used by NewDefault.
	MetadataDB = conf.NewStringFlag("metadata_db", "Database for storing training-run metadata: cassandra or influxdb", "cassandra")

	// CassandraAddress represents the Cassandra address flag.
	CassandraAddress           = conf.NewStringFlag("cassandra_addr", "Address of the Cassandra DB endpoint", "127.0.0.1")
	CassandraPort              = conf.NewIntFlag("cassandra_port", "Port of the Cassandra DB endpoint", 9042)
	CassandraUsername          = conf.NewStringFlag("cassandra_username", "The user name which will be presented when connecting to the cluster", "")
	CassandraPassword          = conf.NewStringFlag("cassandra_password", "The password which will be presented when connecting to the cluster", "")
	CassandraConnectionTimeout = conf.NewDurationFlag("cassandra_timeout", "Timeout of connection to Cassandra", 5*time.Second)
	CassandraCreateKeyspace    = conf.NewBoolFlag("cassandra_create_keyspace", "Create the keyspace when it does not exist", true)
	CassandraKeyspaceName      = conf.NewStringFlag("cassandra_keyspace", "Keyspace holding training-run metadata", "synthoml")
	CassandraSslEnabled        = conf.NewBoolFlag("cassandra_ssl", "Enable SSL for the Cassandra connection", false)
	CassandraSslHostValidation = conf.NewBoolFlag("cassandra_ssl_host_validation", "Enable host verification for SSL connections", false)
	CassandraSslCAPath         = conf.NewStringFlag("cassandra_ssl_ca_path", "Path of the CA certificate", "")
	CassandraSslCertPath       = conf.NewStringFlag("cassandra_ssl_cert_path", "Path of the client certificate", "")
	CassandraSslKeyPath        = conf.NewStringFlag("cassandra_ssl_key_path", "Path of the client key", "")

	// InfluxDBAddress represents the InfluxDB address flag.
	InfluxDBAddress            = conf.NewStringFlag("influxdb_addr", "Address of the InfluxDB endpoint", "127.0.0.1")
	InfluxDBPort               = conf.NewIntFlag("influxdb_port", "Port of the InfluxDB endpoint", 8086)
	InfluxDBUsername           = conf.NewStringFlag("influxdb_username", "The user name which will be presented when connecting to InfluxDB", "")
	InfluxDBPassword           = conf.NewStringFlag("influxdb_password", "The password which will be presented when connecting to InfluxDB", "")
	InfluxDBName               = conf.NewStringFlag("influxdb_name", "Database holding training-run metadata", "synthoml")
	InfluxDBCreateDatabase     = conf.NewBoolFlag("influxdb_create_database", "Create the database when it does not exist", true)
	InfluxDBInsecureSkipVerify = conf.NewBoolFlag("influxdb_insecure_skip_verify", "Skip TLS verification for InfluxDB connections", false)
)
