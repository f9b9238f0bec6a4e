package model_test

import (
	"testing"

	"github.com/sleiderink/skifinder/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestPriceRange(t *testing.T) {
	Convey("Given a closed price range", t, func() {
		r := model.PriceRange{Min: 500, Max: 800}

		Convey("Then both bounds are inside", func() {
			So(r.Contains(500), ShouldBeTrue)
			So(r.Contains(800), ShouldBeTrue)
			So(r.Contains(650), ShouldBeTrue)
		})

		Convey("And values outside are not", func() {
			So(r.Contains(499.99), ShouldBeFalse)
			So(r.Contains(800.01), ShouldBeFalse)
		})
	})
}

func TestValidHeight(t *testing.T) {
	Convey("Given the rider height bounds", t, func() {
		Convey("Then the inclusive range is accepted", func() {
			So(model.ValidHeight(100), ShouldBeTrue)
			So(model.ValidHeight(180), ShouldBeTrue)
			So(model.ValidHeight(220), ShouldBeTrue)
		})

		Convey("And anything outside is rejected", func() {
			So(model.ValidHeight(99), ShouldBeFalse)
			So(model.ValidHeight(221), ShouldBeFalse)
			So(model.ValidHeight(0), ShouldBeFalse)
			So(model.ValidHeight(-180), ShouldBeFalse)
		})
	})
}
