// Package inference is the single entry point external callers use to obtain
// synthetic rows: it loads persisted model containers, caches them for the
// process lifetime, and dispatches sampling to the generator family each
// container's library tag names.
package inference

import (
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/srikesh3005/SynthoML/pkg/generator"
	"github.com/srikesh3005/SynthoML/pkg/model"
	"github.com/srikesh3005/SynthoML/pkg/table"
)

// ModelInfo describes a loaded model without exposing its parameters.
type ModelInfo struct {
	Library            string   `json:"library"`
	Columns            []string `json:"columns"`
	CategoricalColumns []string `json:"categorical_columns"`
}

// Cache holds loaded model containers keyed by file path. The first
// successful load of a path is retained until Invalidate or process exit.
// Reads are concurrent; Invalidate is the single-writer operation triggered
// by training completion. Containers are never mutated after loading — an
// in-flight sampling call always finishes with the snapshot it started with,
// a reload only swaps which container the cache exposes.
type Cache struct {
	mu     sync.RWMutex
	models map[string]*model.Container
}

// NewCache returns an empty model cache.
func NewCache() *Cache {
	return &Cache{models: map[string]*model.Container{}}
}

// container returns the cached container for the path, loading it on first use.
func (c *Cache) container(path string) (*model.Container, error) {
	c.mu.RLock()
	cached, ok := c.models[path]
	c.mu.RUnlock()
	if ok {
		return cached, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if cached, ok := c.models[path]; ok {
		return cached, nil
	}

	log.Infof("loading model from %s", path)
	loaded, err := model.Load(path)
	if err != nil {
		return nil, err
	}
	log.Infof("model loaded (library: %s)", loaded.Library)
	c.models[path] = loaded
	return loaded, nil
}

// Generate samples n synthetic rows from the model persisted at modelPath,
// loading and caching the container on first use. Errors from loading and
// sampling pass through untouched for the caller to map.
func (c *Cache) Generate(n int, seed *int64, modelPath string) (*table.Table, error) {
	container, err := c.container(modelPath)
	if err != nil {
		return nil, err
	}
	gen, err := generator.Lookup(container.Library)
	if err != nil {
		return nil, err
	}
	return gen.Sample(container, n, seed)
}

// Info returns the metadata of the model persisted at modelPath.
func (c *Cache) Info(modelPath string) (ModelInfo, error) {
	container, err := c.container(modelPath)
	if err != nil {
		return ModelInfo{}, err
	}
	return ModelInfo{
		Library:            container.Library,
		Columns:            container.Columns,
		CategoricalColumns: container.Categorical,
	}, nil
}

// Invalidate drops the cached container for the path, forcing the next call
// to reload from disk. It is the training-completion hook; there is no other
// teardown.
func (c *Cache) Invalidate(modelPath string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.models[modelPath]; ok {
		log.Infof("invalidating cached model %s", modelPath)
		delete(c.models, modelPath)
	}
}
