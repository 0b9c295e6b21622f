// Package report renders pipeline results as the human-readable console report.
package report

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	app "github.com/okian/recordops/internal/app"
	"github.com/okian/recordops/internal/domain/collection"
	"github.com/okian/recordops/internal/domain/model"
	"github.com/okian/recordops/pkg/format"
)

const rule = "===================================="

// Section titles. The trailing space is part of the layout.
const (
	titleEmployees = " PART A: Sorting Employee Objects "
	titleStudents  = " PART B: Filtering & Sorting Students "
	titleProducts  = " PART C: Stream Operations on Products "
)

// Reporter writes a Report to an output stream.
type Reporter struct {
	w   *bufio.Writer
	err error
}

// New returns a Reporter writing to w.
func New(w io.Writer) *Reporter {
	return &Reporter{w: bufio.NewWriter(w)}
}

// Write renders rep in the fixed section order and flushes the output.
func (r *Reporter) Write(rep app.Report) error {
	r.header(titleEmployees, false)
	r.employees(rep.Employees)

	r.header(titleStudents, true)
	r.students(rep.Students)

	r.header(titleProducts, true)
	r.products(rep.Products)

	if r.err != nil {
		return fmt.Errorf("write report: %w", r.err)
	}
	if err := r.w.Flush(); err != nil {
		return fmt.Errorf("flush report: %w", err)
	}
	return nil
}

func (r *Reporter) header(title string, leadingBlank bool) {
	if leadingBlank {
		r.line("")
	}
	r.line(rule)
	r.line(title)
	r.line(rule)
}

func (r *Reporter) employees(rep app.EmployeeReport) {
	block(r, "Original List:", rep.Original)
	block(r, "Sorted by Name:", rep.ByName)
	block(r, "Sorted by Age:", rep.ByAge)
	block(r, "Sorted by Salary (Descending):", rep.BySalaryDesc)
}

func (r *Reporter) students(rep app.StudentReport) {
	block(r, "All Students:", rep.All)
	r.line("")
	r.line(fmt.Sprintf("Students Scoring > %s%% (Sorted by Marks):", passMark(rep.PassMark)))
	for _, l := range rep.Lines {
		r.line(l)
	}
}

func (r *Reporter) products(rep app.ProductReport) {
	block(r, "All Products:", rep.All)

	r.line("")
	r.line("Products Grouped by Category:")
	rep.Groups.Each(func(category string, members []model.Product) {
		r.line(category + ": " + collection.JoinBy(members, ", ", func(p model.Product) string { return p.Name }))
	})

	r.line("")
	r.line("Most Expensive Product in Each Category:")
	for _, m := range rep.MaxByCategory {
		r.line(m.Category + " -> " + m.Product.Name + " (" + format.Real(m.Product.Price) + ")")
	}

	r.line("")
	r.line("Average Price of All Products: " + format.Real(rep.Average))
}

// block prints a blank line, a caption and one row per item.
func block[T fmt.Stringer](r *Reporter, caption string, items []T) {
	r.line("")
	r.line(caption)
	for _, it := range items {
		r.line(it.String())
	}
}

func (r *Reporter) line(s string) {
	if r.err != nil {
		return
	}
	if _, err := r.w.WriteString(s); err != nil {
		r.err = err
		return
	}
	r.err = r.w.WriteByte('\n')
}

// passMark renders whole marks without a fraction, as in "> 75%".
func passMark(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
