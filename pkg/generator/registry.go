package generator

import (
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/srikesh3005/SynthoML/pkg/errs"
)

// DefaultPreference orders generator families for training: deep-generative
// families first, the statistical fallback last. Training picks the first
// registered family, so a build without deep-generative support trains
// statistically without any import-probing fallback logic.
var DefaultPreference = []string{LibrarySDV, LibraryCTGAN, LibraryStatistical}

// Library tags recorded in model containers. A container made by one family
// can only be sampled by the same family.
const (
	// LibrarySDV and LibraryCTGAN name deep-generative families that may be
	// registered by other builds; this build only knows their tags.
	LibrarySDV   = "sdv"
	LibraryCTGAN = "ctgan"
	// LibraryStatistical is the self-contained per-column marginal sampler.
	LibraryStatistical = "simple-statistical"
)

var (
	registryMu sync.RWMutex
	registry   = map[string]Generator{}
)

// Register makes a generator family available for training and sampling.
// Registering the same library tag twice is a programmer error.
func Register(g Generator) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, ok := registry[g.Library()]; ok {
		panic("generator library " + g.Library() + " registered twice")
	}
	registry[g.Library()] = g
	log.Debugf("registered generator library %q", g.Library())
}

// Lookup returns the generator family a container's library tag names.
// A tag with no registered implementation means the model file cannot be
// served by this build.
func Lookup(library string) (Generator, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	g, ok := registry[library]
	if !ok {
		return nil, errs.NewCorruptModel("model requires generator library %q, which is not available in this build", library)
	}
	return g, nil
}

// ForTraining returns the first registered family from the preference order.
func ForTraining(preference []string) (Generator, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, library := range preference {
		if g, ok := registry[library]; ok {
			return g, nil
		}
	}
	return nil, errs.NewInvalidArgument("no generator library available; tried %v", preference)
}

// Registered returns the library tags available in this build.
func Registered() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	libraries := make([]string, 0, len(registry))
	for library := range registry {
		libraries = append(libraries, library)
	}
	return libraries
}
