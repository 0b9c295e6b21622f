// Package model contains the record types the pipelines operate on.
// Records are plain values; transformations never write into them.
package model

import "fmt"

// Employee is a staff record sorted in the employee pipeline.
type Employee struct {
	Name   string  `koanf:"name"   validate:"required"`
	Age    int     `koanf:"age"    validate:"gte=0"`
	Salary float64 `koanf:"salary" validate:"gte=0"`
}

// String renders the employee as a table row.
func (e Employee) String() string {
	return fmt.Sprintf("%-10s | Age: %2d | Salary: %.2f", e.Name, e.Age, e.Salary)
}

// Student is a graded student record; Marks is a percentage.
type Student struct {
	Name  string  `koanf:"name"  validate:"required"`
	Marks float64 `koanf:"marks" validate:"gte=0,lte=100"`
}

// String renders the student as a table row.
func (s Student) String() string {
	return fmt.Sprintf("%-10s | Marks: %.2f", s.Name, s.Marks)
}

// Product is a catalogue entry belonging to exactly one category.
type Product struct {
	Name     string  `koanf:"name"     validate:"required"`
	Price    float64 `koanf:"price"    validate:"gte=0"`
	Category string  `koanf:"category" validate:"required"`
}

// String renders the product as a table row. Long names and categories are
// not truncated.
func (p Product) String() string {
	return fmt.Sprintf("%-10s | Category: %-10s | Price: %.2f", p.Name, p.Category, p.Price)
}
