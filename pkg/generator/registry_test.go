package generator

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/srikesh3005/SynthoML/pkg/errs"
	"github.com/srikesh3005/SynthoML/pkg/model"
	"github.com/srikesh3005/SynthoML/pkg/table"
)

type fakeGenerator struct {
	library string
}

func (f *fakeGenerator) Library() string { return f.library }

func (f *fakeGenerator) Fit(t *table.Table, categorical []string, opts FitOptions) (*model.Container, error) {
	return &model.Container{Library: f.library}, nil
}

func (f *fakeGenerator) Sample(c *model.Container, n int, seed *int64) (*table.Table, error) {
	return nil, nil
}

func TestRegistry(t *testing.T) {
	Convey("While using the generator registry", t, func() {
		fake := &fakeGenerator{library: "fake-family"}
		Register(fake)
		defer func() {
			registryMu.Lock()
			delete(registry, fake.library)
			registryMu.Unlock()
		}()

		Convey("Lookup finds a registered family", func() {
			found, err := Lookup("fake-family")
			So(err, ShouldBeNil)
			So(found, ShouldEqual, fake)
		})

		Convey("Lookup treats an unknown library tag as a corrupt model", func() {
			_, err := Lookup("no-such-family")
			So(err, ShouldNotBeNil)
			So(errs.IsCorruptModel(err), ShouldBeTrue)
		})

		Convey("Registering the same tag twice panics", func() {
			So(func() { Register(&fakeGenerator{library: "fake-family"}) }, ShouldPanic)
		})

		Convey("ForTraining picks the first available family in preference order", func() {
			found, err := ForTraining([]string{"missing-family", "fake-family"})
			So(err, ShouldBeNil)
			So(found.Library(), ShouldEqual, "fake-family")
		})

		Convey("ForTraining fails when no preferred family is registered", func() {
			_, err := ForTraining([]string{"missing-family"})
			So(err, ShouldNotBeNil)
			So(errs.IsInvalidArgument(err), ShouldBeTrue)
		})

		Convey("Registered lists the available library tags", func() {
			So(Registered(), ShouldContain, "fake-family")
		})
	})
}
