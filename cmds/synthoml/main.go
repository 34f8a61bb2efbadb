package main

import (
	"github.com/sirupsen/logrus"

	"github.com/srikesh3005/SynthoML/pkg/api"
	"github.com/srikesh3005/SynthoML/pkg/conf"
	"github.com/srikesh3005/SynthoML/pkg/executor"
	_ "github.com/srikesh3005/SynthoML/pkg/generator/statistical"
	"github.com/srikesh3005/SynthoML/pkg/inference"
	"github.com/srikesh3005/SynthoML/pkg/training"
	"github.com/srikesh3005/SynthoML/pkg/utils/errutil"
)

func main() {
	conf.SetAppName("synthoml")
	conf.SetHelp(`SynthoML API server. Serves synthetic data generation from a trained model
and accepts CSV uploads for background training.`)

	errutil.Check(conf.ParseFlags())
	logrus.SetLevel(conf.LogLevel())

	cache := inference.NewCache()
	tracker := training.NewStatusTracker()
	runner := training.NewRunner(
		executor.NewLocal(api.UploadDirFlag.Value()),
		tracker,
		cache,
		api.TrainPathFlag.Value(),
	)

	server := api.NewServer(api.DefaultConfig(), cache, tracker, runner)
	errutil.Check(server.ListenAndServe(api.ListenAddrFlag.Value()))
}
