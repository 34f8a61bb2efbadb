package training

import (
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"

	"github.com/srikesh3005/SynthoML/pkg/errs"
	"github.com/srikesh3005/SynthoML/pkg/generator"
	"github.com/srikesh3005/SynthoML/pkg/model"
	"github.com/srikesh3005/SynthoML/pkg/table"
)

// minTrainingRows is the smallest dataset a model can be trained on.
const minTrainingRows = 5

// Config describes a single training run.
type Config struct {
	// DataPath is the CSV file with the training data.
	DataPath string
	// OutputPath is where the fitted model container is saved.
	OutputPath string
	// Epochs is the training budget for deep-generative families. The
	// statistical family ignores it.
	Epochs int
	// PreviewSamples is the number of synthetic rows sampled after training
	// as a preview. Zero disables the preview.
	PreviewSamples int
	// PreviewPath is the CSV file the preview is written to.
	PreviewPath string
	// Categorical optionally forces the categorical column set. When empty,
	// columns are auto-detected.
	Categorical []string
}

// Report summarizes a finished training run.
type Report struct {
	RunID       string
	Library     string
	Rows        int
	Columns     []string
	Categorical []string
	Duration    time.Duration
}

// Train fits a model on a CSV dataset and persists it. The generator family
// is the first available one from the preference order.
func Train(config Config) (*Report, error) {
	start := time.Now()
	runID := uuid.NewV4().String()

	log.Infof("loading training data from %q", config.DataPath)
	data, err := table.ReadFile(config.DataPath)
	if err != nil {
		return nil, err
	}
	if data.NumRows() < minTrainingRows {
		return nil, errs.NewInvalidArgument("dataset must have at least %d rows, got %d", minTrainingRows, data.NumRows())
	}
	log.Infof("loaded %d rows, %d columns", data.NumRows(), data.NumColumns())

	categorical := config.Categorical
	if len(categorical) == 0 {
		categorical = table.DetectCategorical(data)
	}
	log.Infof("categorical columns: %v", categorical)

	gen, err := generator.ForTraining(generator.DefaultPreference)
	if err != nil {
		return nil, err
	}
	log.Infof("training with generator library %q", gen.Library())

	container, err := gen.Fit(data, categorical, generator.FitOptions{Epochs: config.Epochs})
	if err != nil {
		return nil, errors.Wrap(err, "model fitting failed")
	}

	if err := model.Save(container, config.OutputPath); err != nil {
		return nil, errors.Wrapf(err, "cannot save model to %q", config.OutputPath)
	}
	log.Infof("model saved to %q", config.OutputPath)

	if config.PreviewSamples > 0 && config.PreviewPath != "" {
		if err := writePreview(gen, container, config); err != nil {
			// Preview is best effort; the model itself is already saved.
			log.Warnf("could not generate preview: %v", err)
		}
	}

	return &Report{
		RunID:       runID,
		Library:     container.Library,
		Rows:        data.NumRows(),
		Columns:     container.Columns,
		Categorical: container.Categorical,
		Duration:    time.Since(start),
	}, nil
}

func writePreview(gen generator.Generator, container *model.Container, config Config) error {
	preview, err := gen.Sample(container, config.PreviewSamples, nil)
	if err != nil {
		return err
	}
	if err := preview.WriteFile(config.PreviewPath); err != nil {
		return err
	}
	log.Infof("preview of %d rows saved to %q", config.PreviewSamples, config.PreviewPath)
	return nil
}

// Fields renders a report as key/value metadata, ready for a metadata store.
func (r *Report) Fields() map[string]string {
	return map[string]string{
		"run_id":      r.RunID,
		"library":     r.Library,
		"rows":        fmt.Sprint(r.Rows),
		"columns":     strings.Join(r.Columns, ","),
		"categorical": strings.Join(r.Categorical, ","),
		"duration":    r.Duration.String(),
	}
}
