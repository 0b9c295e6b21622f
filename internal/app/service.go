// Package app wires the record pipelines together.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/uuid"

	"github.com/okian/recordops/internal/domain/collection"
	"github.com/okian/recordops/internal/domain/dataset"
	"github.com/okian/recordops/internal/domain/model"
	"github.com/okian/recordops/pkg/format"
	"github.com/okian/recordops/pkg/logger"
	"github.com/okian/recordops/pkg/metrics"
)

// Stage labels used in logs and metrics.
const (
	StageEmployeeSort  = "employee_sort"
	StageStudentFilter = "student_filter"
	StageProductGroup  = "product_group"
	StageProductMax    = "product_max"
	StageProductAvg    = "product_average"
)

const defaultPassMark = 75.0

// Service runs the employee, student and product pipelines.
type Service struct {
	passMark float64
	logger   logger.Logger
	metrics  *metrics.Manager
	newRunID func() string
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithPassMark sets the exclusive lower bound on student marks.
func WithPassMark(mark float64) Option {
	return func(s *Service) {
		if mark >= 0 && mark <= 100 {
			s.passMark = mark
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics sets the metrics manager.
func WithMetrics(m *metrics.Manager) Option {
	return func(s *Service) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithRunIDGenerator overrides how run ids are produced.
func WithRunIDGenerator(fn func() string) Option {
	return func(s *Service) {
		if fn != nil {
			s.newRunID = fn
		}
	}
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		passMark: defaultPassMark,
		logger:   logger.Nop(),
		metrics:  metrics.Default(),
		newRunID: func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run executes all three pipelines over ds. The dataset is not modified.
func (s *Service) Run(ctx context.Context, ds dataset.Dataset) (Report, error) {
	runID := s.newRunID()
	log := s.logger.With(logger.String("run_id", runID))
	log.Info(ctx, "pipeline run started",
		logger.Int("employees", len(ds.Employees)),
		logger.Int("students", len(ds.Students)),
		logger.Int("products", len(ds.Products)))

	rep := Report{RunID: runID}

	if err := ctx.Err(); err != nil {
		return Report{}, fmt.Errorf("employee pipeline: %w", err)
	}
	rep.Employees = s.SortEmployees(ctx, ds.Employees)

	if err := ctx.Err(); err != nil {
		return Report{}, fmt.Errorf("student pipeline: %w", err)
	}
	rep.Students = s.RankStudents(ctx, ds.Students)

	if err := ctx.Err(); err != nil {
		return Report{}, fmt.Errorf("product pipeline: %w", err)
	}
	rep.Products = s.SummarizeProducts(ctx, ds.Products)

	log.Info(ctx, "pipeline run finished",
		logger.Int("qualified_students", len(rep.Students.Qualified)),
		logger.Int("categories", rep.Products.Groups.Len()))
	return rep, nil
}

// SortEmployees orders the employees by name, then age, then salary
// descending. Each ordering is a stable sort of the previous one.
func (s *Service) SortEmployees(ctx context.Context, employees []model.Employee) EmployeeReport {
	defer s.metrics.ObserveStage(StageEmployeeSort, time.Now())
	s.metrics.RecordRecordsIn("employees", len(employees))

	byName := collection.SortStable(employees, collection.Ascending(func(e model.Employee) string { return e.Name }))
	byAge := collection.SortStable(byName, collection.Ascending(func(e model.Employee) int { return e.Age }))
	bySalary := collection.SortStable(byAge, collection.Descending(func(e model.Employee) float64 { return e.Salary }))

	s.metrics.RecordRecordsOut(StageEmployeeSort, len(bySalary))
	s.logger.Debug(ctx, "employees sorted", logger.Int("count", len(employees)))

	return EmployeeReport{
		Original:     slices.Clone(employees),
		ByName:       byName,
		ByAge:        byAge,
		BySalaryDesc: bySalary,
	}
}

// RankStudents keeps students scoring strictly above the pass mark, orders
// them by marks ascending and projects each to "<name> (<marks>%)".
func (s *Service) RankStudents(ctx context.Context, students []model.Student) StudentReport {
	defer s.metrics.ObserveStage(StageStudentFilter, time.Now())
	s.metrics.RecordRecordsIn("students", len(students))

	passed := collection.Filter(students, func(st model.Student) bool { return st.Marks > s.passMark })
	ranked := collection.SortStable(passed, collection.Ascending(func(st model.Student) float64 { return st.Marks }))
	lines := collection.Map(ranked, func(st model.Student) string {
		return st.Name + " (" + format.Real(st.Marks) + "%)"
	})

	s.metrics.RecordRecordsOut(StageStudentFilter, len(ranked))
	s.logger.Debug(ctx, "students ranked",
		logger.Float64("pass_mark", s.passMark),
		logger.Int("qualified", len(ranked)))

	return StudentReport{
		All:       slices.Clone(students),
		PassMark:  s.passMark,
		Qualified: ranked,
		Lines:     lines,
	}
}

// SummarizeProducts groups products by category in first-seen order, picks
// the most expensive product of each category and averages all prices.
//
// When two products of a category share the maximum price the first one in
// input order is reported; any maximal element would be equally valid.
func (s *Service) SummarizeProducts(ctx context.Context, products []model.Product) ProductReport {
	s.metrics.RecordRecordsIn("products", len(products))

	start := time.Now()
	groups := collection.GroupBy(products, func(p model.Product) string { return p.Category })
	s.metrics.ObserveStage(StageProductGroup, start)
	s.metrics.RecordGroups(groups.Len())

	start = time.Now()
	price := func(p model.Product) float64 { return p.Price }
	maxes := make([]CategoryMax, 0, groups.Len())
	groups.Each(func(category string, members []model.Product) {
		// Groups never hold an empty member list, so ok is always true here.
		best, ok := collection.MaxBy(members, price)
		if !ok {
			s.logger.Warn(ctx, "empty category skipped", logger.String("category", category))
			return
		}
		maxes = append(maxes, CategoryMax{Category: category, Product: best})
	})
	s.metrics.ObserveStage(StageProductMax, start)
	s.metrics.RecordRecordsOut(StageProductMax, len(maxes))

	start = time.Now()
	avg := collection.Average(products, price)
	s.metrics.ObserveStage(StageProductAvg, start)

	if s.logger.Enabled(ctx, slog.LevelDebug) {
		s.logger.Debug(ctx, "products grouped",
			logger.String("groups", spew.Sdump(groupNames(groups))),
			logger.Float64("average", avg))
	}

	return ProductReport{
		All:           slices.Clone(products),
		Groups:        groups,
		MaxByCategory: maxes,
		Average:       avg,
	}
}

func groupNames(groups *collection.Groups[string, model.Product]) map[string][]string {
	out := make(map[string][]string, groups.Len())
	groups.Each(func(k string, members []model.Product) {
		out[k] = collection.Map(members, func(p model.Product) string { return p.Name })
	})
	return out
}
