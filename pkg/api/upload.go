package api

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"net/http"
	"path"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/srikesh3005/SynthoML/pkg/errs"
	"github.com/srikesh3005/SynthoML/pkg/table"
)

// maxUploadBytes bounds the in-memory part of a multipart upload.
const maxUploadBytes = 64 << 20

// uploadedDataFile is the fixed name the cleaned dataset is saved under.
const uploadedDataFile = "uploaded_data.csv"

func (s *Server) handleUploadTrain(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if s.runner == nil {
		writeError(w, errs.NewInvalidArgument("training is not enabled on this server"))
		return
	}
	if s.tracker.InProgress() {
		writeError(w, errs.NewInvalidArgument("training already in progress, wait for it to complete"))
		return
	}

	epochs := defaultEpochs
	if raw := r.URL.Query().Get("epochs"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < minEpochs || parsed > maxEpochs {
			writeError(w, errs.NewInvalidArgument("epochs must be in [%d, %d]", minEpochs, maxEpochs))
			return
		}
		epochs = parsed
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, errs.NewInvalidArgument("invalid multipart request: %s", err))
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, errs.NewInvalidArgument("missing file upload: %s", err))
		return
	}
	defer file.Close()

	if !strings.HasSuffix(strings.ToLower(header.Filename), ".csv") {
		writeError(w, errs.NewInvalidArgument("only CSV files are supported"))
		return
	}

	contents, err := ioutil.ReadAll(file)
	if err != nil {
		writeError(w, err)
		return
	}

	data, err := table.Read(bytes.NewReader(table.DecodeToUTF8(contents)))
	if err != nil {
		writeError(w, err)
		return
	}
	if data.NumRows() < 5 {
		writeError(w, errs.NewInvalidArgument("dataset must have at least 5 rows"))
		return
	}

	// Cleans string columns in place for Windows compatibility.
	table.CleanStrings(data)

	uploadPath := path.Join(s.config.UploadDir, uploadedDataFile)
	if err := data.WriteFile(uploadPath); err != nil {
		writeError(w, err)
		return
	}
	log.Infof("uploaded dataset saved to %q (%d rows, %d columns)", uploadPath, data.NumRows(), data.NumColumns())

	if err := s.runner.Start(uploadPath, epochs, s.config.ModelPath); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": fmt.Sprintf("Training started with %d rows, %d columns", data.NumRows(), data.NumColumns()),
		"rows":    data.NumRows(),
		"columns": data.ColumnNames(),
		"epochs":  epochs,
	})
}
