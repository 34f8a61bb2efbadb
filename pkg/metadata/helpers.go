package metadata

import (
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/srikesh3005/SynthoML/pkg/conf"
)

// RecordRuntimeEnv stores the runtime environment of a training run: the
// resolved flag configuration, SYNTHOML_ environment variables, and the host
// and start time.
func RecordRuntimeEnv(metadata Metadata, trainingStart time.Time) error {
	// Store configuration.
	err := recordFlags(metadata)
	if err != nil {
		return err
	}

	// Store SYNTHOML_ environment configuration.
	err = recordEnv(metadata, conf.EnvironmentPrefix)
	if err != nil {
		return err
	}

	hostname, err := os.Hostname()
	if err != nil {
		return errors.Wrap(err, "cannot retrieve hostname")
	}
	// Store hostname and start time.
	err = metadata.RecordMap(map[string]string{"time": trainingStart.Format(time.RFC822Z), "host": hostname}, TypeEmpty)
	if err != nil {
		return err
	}

	return nil
}

// recordFlags saves the whole flag based configuration in the metadata
// information.
func recordFlags(metadata Metadata) error {
	flags := conf.GetFlags()
	return metadata.RecordMap(flags, TypeFlags)
}

// recordEnv adds all OS environment variables that start with prefix
// to the metadata information.
func recordEnv(metadata Metadata, prefix string) error {
	envMetadata := map[string]string{}
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, prefix) {
			fields := strings.SplitN(env, "=", 2)
			envMetadata[fields[0]] = fields[1]
		}
	}
	return metadata.RecordMap(envMetadata, TypeEnviron)
}
