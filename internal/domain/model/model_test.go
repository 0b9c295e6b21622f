package model_test

import (
	"testing"

	"github.com/okian/recordops/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRowFormats(t *testing.T) {
	Convey("Given one record of each type", t, func() {
		Convey("Employee rows pad the name and fix two decimals", func() {
			e := model.Employee{Name: "Alice", Age: 28, Salary: 55000}
			So(e.String(), ShouldEqual, "Alice      | Age: 28 | Salary: 55000.00")
		})

		Convey("Single digit ages are right aligned", func() {
			e := model.Employee{Name: "Kid", Age: 7, Salary: 0.5}
			So(e.String(), ShouldEqual, "Kid        | Age:  7 | Salary: 0.50")
		})

		Convey("Student rows fix two decimals", func() {
			s := model.Student{Name: "Riya", Marks: 82.5}
			So(s.String(), ShouldEqual, "Riya       | Marks: 82.50")
		})

		Convey("Product rows never truncate long categories", func() {
			p := model.Product{Name: "Laptop", Price: 75000, Category: "Electronics"}
			So(p.String(), ShouldEqual, "Laptop     | Category: Electronics | Price: 75000.00")
		})

		Convey("Product rows pad short categories", func() {
			p := model.Product{Name: "Sofa", Price: 25000, Category: "Home"}
			So(p.String(), ShouldEqual, "Sofa       | Category: Home       | Price: 25000.00")
		})
	})
}
