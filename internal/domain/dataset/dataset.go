// Package dataset provides the record sets fed to the pipelines.
package dataset

import (
	"context"
	"fmt"
	"slices"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/okian/recordops/internal/domain/model"
)

// Dataset bundles the three independent record sets.
type Dataset struct {
	Employees []model.Employee `koanf:"employees" validate:"dive"`
	Students  []model.Student  `koanf:"students"  validate:"dive"`
	Products  []model.Product  `koanf:"products"  validate:"dive"`
}

// Default returns the built-in literal records. Each call returns fresh slices.
func Default() Dataset {
	return Dataset{
		Employees: []model.Employee{
			{Name: "Alice", Age: 28, Salary: 55000},
			{Name: "Bob", Age: 35, Salary: 72000},
			{Name: "Charlie", Age: 22, Salary: 48000},
			{Name: "David", Age: 30, Salary: 64000},
		},
		Students: []model.Student{
			{Name: "Riya", Marks: 82.5},
			{Name: "Karan", Marks: 67.0},
			{Name: "Neha", Marks: 91.2},
			{Name: "Amit", Marks: 74.5},
			{Name: "Simran", Marks: 88.0},
		},
		Products: []model.Product{
			{Name: "Laptop", Price: 75000, Category: "Electronics"},
			{Name: "Phone", Price: 55000, Category: "Electronics"},
			{Name: "Shirt", Price: 1500, Category: "Clothing"},
			{Name: "Pants", Price: 2000, Category: "Clothing"},
			{Name: "TV", Price: 40000, Category: "Electronics"},
			{Name: "Blender", Price: 3500, Category: "Home"},
			{Name: "Sofa", Price: 25000, Category: "Home"},
		},
	}
}

// Clone returns a deep copy of d.
func (d Dataset) Clone() Dataset {
	return Dataset{
		Employees: slices.Clone(d.Employees),
		Students:  slices.Clone(d.Students),
		Products:  slices.Clone(d.Products),
	}
}

// Validate checks every record against its validate tags.
func (d Dataset) Validate() error {
	if err := validator.New().Struct(d); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDataset, err)
	}
	return nil
}

// LoadFile reads a YAML document with optional employees, students and
// products sections. Sections that are absent keep the default records.
func LoadFile(_ context.Context, path string) (Dataset, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return Dataset{}, fmt.Errorf("%w: %s: %v", ErrLoadDataset, path, err)
	}

	ds := Default()
	loaded := Dataset{}
	if err := k.UnmarshalWithConf("", &loaded, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return Dataset{}, fmt.Errorf("%w: %s: %v", ErrLoadDataset, path, err)
	}

	if k.Exists("employees") {
		ds.Employees = loaded.Employees
	}
	if k.Exists("students") {
		ds.Students = loaded.Students
	}
	if k.Exists("products") {
		ds.Products = loaded.Products
	}

	if err := ds.Validate(); err != nil {
		return Dataset{}, err
	}
	return ds, nil
}
