package model

import (
	"encoding/gob"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/srikesh3005/SynthoML/pkg/errs"
)

// formatVersion guards against loading containers written by an
// incompatible build. The payload is a Go-native gob blob; no cross-language
// or cross-version compatibility is promised, only exact in-version
// round-tripping.
const formatVersion = 1

type envelope struct {
	FormatVersion int
	Container     Container
}

// Save persists the container. The file is written to a temporary sibling
// and renamed into place so concurrent loaders never observe a partial
// write when retraining replaces a model.
func Save(c *Container, path string) error {
	if err := c.Validate(); err != nil {
		return errors.Wrap(err, "refusing to save invalid container")
	}

	dir := filepath.Dir(path)
	tmp, err := ioutil.TempFile(dir, filepath.Base(path)+".tmp")
	if err != nil {
		return errors.Wrapf(err, "creating temporary model file in %q", dir)
	}
	defer os.Remove(tmp.Name())

	if err := gob.NewEncoder(tmp).Encode(envelope{FormatVersion: formatVersion, Container: *c}); err != nil {
		tmp.Close()
		return errors.Wrap(err, "encoding model container")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "closing temporary model file")
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return errors.Wrapf(err, "replacing model file %q", path)
	}

	log.Infof("model saved to %s (library: %s, %d columns)", path, c.Library, len(c.Columns))
	return nil
}

// Load reads a persisted container. A missing file is a NotFoundError; an
// undecodable, version-incompatible or invariant-violating payload is a
// CorruptModelError.
func Load(path string) (*Container, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errs.NewNotFound("model file %q not found", path)
		}
		return nil, errors.Wrapf(err, "opening model file %q", path)
	}
	defer f.Close()

	var env envelope
	if err := gob.NewDecoder(f).Decode(&env); err != nil {
		return nil, errs.NewCorruptModel("decoding model file %q: %v", path, err)
	}
	if env.FormatVersion != formatVersion {
		return nil, errs.NewCorruptModel("model file %q has format version %d, want %d",
			path, env.FormatVersion, formatVersion)
	}
	if err := env.Container.Validate(); err != nil {
		return nil, errors.Wrapf(err, "model file %q", path)
	}

	return &env.Container, nil
}
