package api

import "github.com/srikesh3005/SynthoML/pkg/conf"

// Flags configuring the HTTP API server.
var (
	ListenAddrFlag = conf.NewStringFlag("listen_addr", "Address the API server listens on", "127.0.0.1:8000")
	ModelPathFlag  = conf.NewStringFlag("model_path", "Path of the model container served by the API", "synthoml_model.bin")
	UploadDirFlag  = conf.NewStringFlag("upload_dir", "Directory where uploaded training data is stored", ".")
	TrainPathFlag  = conf.NewStringFlag("train_binary", "Path of the training binary launched for background training", "synthoml-train")

	// AllowedOriginsFlag defaults to the local frontend dev servers.
	AllowedOriginsFlag = conf.NewSliceFlag("cors_origins", "Comma-separated list of allowed CORS origins",
		"http://localhost:5173", "http://localhost:5174", "http://localhost:3000",
		"http://127.0.0.1:5173", "http://127.0.0.1:5174", "http://127.0.0.1:3000")
)
