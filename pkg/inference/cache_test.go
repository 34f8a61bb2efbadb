package inference

import (
	"io/ioutil"
	"os"
	"path"
	"sync"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/srikesh3005/SynthoML/pkg/errs"
	"github.com/srikesh3005/SynthoML/pkg/generator"
	_ "github.com/srikesh3005/SynthoML/pkg/generator/statistical"
	"github.com/srikesh3005/SynthoML/pkg/model"
)

func saveModel(t *testing.T, modelPath, library string) {
	container := &model.Container{
		Library:     library,
		Columns:     []string{"age", "sex"},
		Categorical: []string{"sex"},
		Summaries: map[string]model.ColumnSummary{
			"age": {Kind: model.Numerical, Mean: 40, StdDev: 15, Min: 20, Max: 60},
			"sex": {Kind: model.Categorical, Values: []string{"M", "F"}, Probabilities: []float64{0.6, 0.4}},
		},
	}
	if err := model.Save(container, modelPath); err != nil {
		t.Fatal(err)
	}
}

func TestCache(t *testing.T) {
	Convey("While serving models from the cache", t, func() {
		dir, err := ioutil.TempDir("", "cache")
		So(err, ShouldBeNil)
		defer os.RemoveAll(dir)

		modelPath := path.Join(dir, "model.bin")
		saveModel(t, modelPath, generator.LibraryStatistical)
		cache := NewCache()
		seed := int64(1)

		Convey("Generate samples from the persisted model", func() {
			out, err := cache.Generate(25, &seed, modelPath)
			So(err, ShouldBeNil)
			So(out.NumRows(), ShouldEqual, 25)
			So(out.ColumnNames(), ShouldResemble, []string{"age", "sex"})
		})

		Convey("the container is retained after the file disappears", func() {
			_, err := cache.Generate(5, &seed, modelPath)
			So(err, ShouldBeNil)

			So(os.Remove(modelPath), ShouldBeNil)
			_, err = cache.Generate(5, &seed, modelPath)
			So(err, ShouldBeNil)

			Convey("until Invalidate forces a reload", func() {
				cache.Invalidate(modelPath)
				_, err := cache.Generate(5, &seed, modelPath)
				So(errs.IsNotFound(err), ShouldBeTrue)
			})
		})

		Convey("Info describes the loaded model", func() {
			info, err := cache.Info(modelPath)
			So(err, ShouldBeNil)
			So(info.Library, ShouldEqual, generator.LibraryStatistical)
			So(info.Columns, ShouldResemble, []string{"age", "sex"})
			So(info.CategoricalColumns, ShouldResemble, []string{"sex"})
		})

		Convey("a missing model file is a not-found error", func() {
			_, err := cache.Generate(5, &seed, path.Join(dir, "absent.bin"))
			So(errs.IsNotFound(err), ShouldBeTrue)
		})

		Convey("a model with an unavailable library tag cannot be served", func() {
			otherPath := path.Join(dir, "deep.bin")
			saveModel(t, otherPath, "ctgan")

			_, err := cache.Generate(5, &seed, otherPath)
			So(errs.IsCorruptModel(err), ShouldBeTrue)
		})

		Convey("concurrent readers share one load", func() {
			var group sync.WaitGroup
			failures := make(chan error, 50)
			for i := 0; i < 50; i++ {
				group.Add(1)
				go func() {
					defer group.Done()
					if _, err := cache.Generate(10, &seed, modelPath); err != nil {
						failures <- err
					}
				}()
			}
			group.Wait()
			close(failures)
			So(<-failures, ShouldBeNil)
		})
	})
}
