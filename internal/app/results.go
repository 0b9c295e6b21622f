package app

import (
	"github.com/okian/recordops/internal/domain/collection"
	"github.com/okian/recordops/internal/domain/model"
)

// EmployeeReport holds the employee list and its successive orderings.
type EmployeeReport struct {
	Original     []model.Employee
	ByName       []model.Employee
	ByAge        []model.Employee
	BySalaryDesc []model.Employee
}

// StudentReport holds the student list and the qualifying projection.
type StudentReport struct {
	All       []model.Student
	PassMark  float64
	Qualified []model.Student // marks > PassMark, ascending by marks
	Lines     []string        // Qualified projected to "<name> (<marks>%)"
}

// CategoryMax is the most expensive product of a category.
type CategoryMax struct {
	Category string
	Product  model.Product
}

// ProductReport holds the product list and its aggregates.
type ProductReport struct {
	All           []model.Product
	Groups        *collection.Groups[string, model.Product]
	MaxByCategory []CategoryMax // same category order as Groups
	Average       float64
}

// Report is the full output of one run.
type Report struct {
	RunID     string
	Employees EmployeeReport
	Students  StudentReport
	Products  ProductReport
}
