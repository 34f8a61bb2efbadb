package api

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/srikesh3005/SynthoML/pkg/executor"
	"github.com/srikesh3005/SynthoML/pkg/generator"
	_ "github.com/srikesh3005/SynthoML/pkg/generator/statistical"
	"github.com/srikesh3005/SynthoML/pkg/inference"
	"github.com/srikesh3005/SynthoML/pkg/model"
	"github.com/srikesh3005/SynthoML/pkg/table"
	"github.com/srikesh3005/SynthoML/pkg/training"
)

func fitTestModel(t *testing.T, modelPath string) {
	ages := table.Column{Name: "age", Kind: table.KindNumeric, Floats: []float64{20, 30, 40, 50, 60}}
	sexes := table.Column{Name: "sex", Kind: table.KindString, Strings: []string{"M", "M", "M", "F", "F"}}
	data, err := table.New([]table.Column{ages, sexes})
	if err != nil {
		t.Fatal(err)
	}

	gen, err := generator.Lookup(generator.LibraryStatistical)
	if err != nil {
		t.Fatal(err)
	}
	container, err := gen.Fit(data, []string{"sex"}, generator.FitOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if err := model.Save(container, modelPath); err != nil {
		t.Fatal(err)
	}
}

func decodeJSON(body []byte) map[string]interface{} {
	payload := map[string]interface{}{}
	if err := json.Unmarshal(body, &payload); err != nil {
		panic(err)
	}
	return payload
}

func multipartCSV(filename, content string) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		panic(err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		panic(err)
	}
	if err := writer.Close(); err != nil {
		panic(err)
	}
	return body, writer.FormDataContentType()
}

func TestServer(t *testing.T) {
	Convey("While serving the synthetic data API", t, func() {
		dir, err := ioutil.TempDir("", "api")
		So(err, ShouldBeNil)
		defer os.RemoveAll(dir)

		modelPath := path.Join(dir, "model.bin")
		fitTestModel(t, modelPath)

		cache := inference.NewCache()
		tracker := training.NewStatusTracker()
		runner := training.NewRunner(executor.NewLocal(dir), tracker, cache, "true")
		server := NewServer(Config{ModelPath: modelPath, UploadDir: dir}, cache, tracker, runner)
		handler := server.Handler()

		get := func(target string) *httptest.ResponseRecorder {
			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, target, nil))
			return recorder
		}
		post := func(target string) *httptest.ResponseRecorder {
			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, target, nil))
			return recorder
		}

		Convey("the root endpoint describes the API", func() {
			response := get("/")
			So(response.Code, ShouldEqual, http.StatusOK)
			So(decodeJSON(response.Body.Bytes())["message"], ShouldEqual, "SynthoML Synthetic Data API")
		})

		Convey("health reports a loaded model", func() {
			response := get("/health")
			So(response.Code, ShouldEqual, http.StatusOK)
			payload := decodeJSON(response.Body.Bytes())
			So(payload["status"], ShouldEqual, "healthy")
			So(payload["model_loaded"], ShouldBeTrue)
			So(payload["library"], ShouldEqual, generator.LibraryStatistical)
		})

		Convey("health reports unhealthy when the model file is absent", func() {
			broken := NewServer(Config{ModelPath: path.Join(dir, "nope.bin")}, inference.NewCache(), tracker, nil)
			recorder := httptest.NewRecorder()
			broken.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))
			payload := decodeJSON(recorder.Body.Bytes())
			So(payload["status"], ShouldEqual, "unhealthy")
			So(payload["model_loaded"], ShouldBeFalse)
		})

		Convey("model-info returns the container description", func() {
			response := get("/model-info")
			So(response.Code, ShouldEqual, http.StatusOK)
			payload := decodeJSON(response.Body.Bytes())
			So(payload["success"], ShouldBeTrue)
			data := payload["data"].(map[string]interface{})
			So(data["library"], ShouldEqual, generator.LibraryStatistical)
		})

		Convey("generate streams a CSV attachment", func() {
			response := post("/generate?n=10&seed=42")
			So(response.Code, ShouldEqual, http.StatusOK)
			So(response.Header().Get("Content-Disposition"), ShouldContainSubstring, "attachment; filename=synthetic_data_10rows_")
			So(response.Body.String(), ShouldContainSubstring, "age,sex")

			Convey("and the same seed reproduces the same rows", func() {
				second := post("/generate?n=10&seed=42")
				So(second.Body.String(), ShouldEqual, response.Body.String())
			})
		})

		Convey("generate validates the sample count", func() {
			So(post("/generate?n=0").Code, ShouldEqual, http.StatusBadRequest)
			So(post("/generate?n=100001").Code, ShouldEqual, http.StatusBadRequest)
			So(post("/generate?n=abc").Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("generate rejects non-POST requests", func() {
			So(get("/generate").Code, ShouldEqual, http.StatusMethodNotAllowed)
		})

		Convey("generate returns 404 for a missing model", func() {
			broken := NewServer(Config{ModelPath: path.Join(dir, "nope.bin")}, inference.NewCache(), tracker, nil)
			recorder := httptest.NewRecorder()
			broken.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/generate", nil))
			So(recorder.Code, ShouldEqual, http.StatusNotFound)
		})

		Convey("training-status exposes the tracker snapshot", func() {
			response := get("/training-status")
			So(response.Code, ShouldEqual, http.StatusOK)
			payload := decodeJSON(response.Body.Bytes())
			So(payload["is_training"], ShouldBeFalse)
			So(payload["message"], ShouldEqual, "No training in progress")
		})

		Convey("upload-train accepts a CSV and starts training", func() {
			body, contentType := multipartCSV("data.csv", "age,sex\n20,M\n30,M\n40,M\n50,F\n60,F\n")
			request := httptest.NewRequest(http.MethodPost, "/upload-train", body)
			request.Header.Set("Content-Type", contentType)
			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)

			So(recorder.Code, ShouldEqual, http.StatusOK)
			payload := decodeJSON(recorder.Body.Bytes())
			So(payload["success"], ShouldBeTrue)
			So(payload["rows"], ShouldEqual, 5)

			_, err := os.Stat(path.Join(dir, uploadedDataFile))
			So(err, ShouldBeNil)
		})

		Convey("upload-train rejects non-CSV files", func() {
			body, contentType := multipartCSV("data.txt", "age\n20\n30\n40\n50\n60\n")
			request := httptest.NewRequest(http.MethodPost, "/upload-train", body)
			request.Header.Set("Content-Type", contentType)
			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)
			So(recorder.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("upload-train rejects datasets below five rows", func() {
			body, contentType := multipartCSV("data.csv", "age\n20\n30\n")
			request := httptest.NewRequest(http.MethodPost, "/upload-train", body)
			request.Header.Set("Content-Type", contentType)
			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)
			So(recorder.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("upload-train rejects out-of-range epochs", func() {
			body, contentType := multipartCSV("data.csv", "age\n20\n30\n40\n50\n60\n")
			request := httptest.NewRequest(http.MethodPost, "/upload-train?epochs=5", body)
			request.Header.Set("Content-Type", contentType)
			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)
			So(recorder.Code, ShouldEqual, http.StatusBadRequest)
		})
	})
}
