package main

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/srikesh3005/SynthoML/pkg/conf"
	_ "github.com/srikesh3005/SynthoML/pkg/generator/statistical"
	"github.com/srikesh3005/SynthoML/pkg/metadata"
	"github.com/srikesh3005/SynthoML/pkg/training"
	"github.com/srikesh3005/SynthoML/pkg/utils/errutil"
)

var (
	dataFlag           = conf.NewStringFlag("data", "Path to the training CSV file", "toy_medical.csv")
	epochsFlag         = conf.NewIntFlag("epochs", "Number of training epochs (deep-generative families only)", 100)
	outputFlag         = conf.NewStringFlag("output", "Path to save the trained model", "synthoml_model.bin")
	previewSamplesFlag = conf.NewIntFlag("preview_samples", "Number of synthetic samples generated as a preview", 20)
	previewPathFlag    = conf.NewStringFlag("preview_path", "Path of the preview CSV", "sample_synthetic_preview.csv")
	recordMetadataFlag = conf.NewBoolFlag("record_metadata", "Record the training run in the metadata database", false)
)

func main() {
	conf.SetAppName("synthoml-train")
	conf.SetHelp(`Trains a synthetic data model on a CSV dataset and saves it for serving.`)

	errutil.Check(conf.ParseFlags())
	logrus.SetLevel(conf.LogLevel())

	start := time.Now()
	report, err := training.Train(training.Config{
		DataPath:       dataFlag.Value(),
		OutputPath:     outputFlag.Value(),
		Epochs:         epochsFlag.Value(),
		PreviewSamples: previewSamplesFlag.Value(),
		PreviewPath:    previewPathFlag.Value(),
	})
	errutil.Check(err)

	if recordMetadataFlag.Value() {
		store, err := metadata.NewDefault(report.RunID)
		errutil.Check(err)
		errutil.Check(metadata.RecordRuntimeEnv(store, start))
		errutil.Check(store.RecordMap(report.Fields(), metadata.TypeTraining))
	}

	logrus.Infof("training complete: run %s, library %s, %d rows, took %s",
		report.RunID, report.Library, report.Rows, report.Duration)
}
