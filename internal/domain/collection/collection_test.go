package collection_test

import (
	"strings"
	"testing"

	"github.com/okian/recordops/internal/domain/collection"
	. "github.com/smartystreets/goconvey/convey"
)

type item struct {
	name  string
	score int
	kind  string
}

func names(items []item) []string {
	return collection.Map(items, func(it item) string { return it.name })
}

func TestSortStable(t *testing.T) {
	Convey("Given items with duplicate keys", t, func() {
		items := []item{
			{"d", 2, "x"},
			{"a", 1, "y"},
			{"c", 2, "x"},
			{"b", 1, "z"},
		}

		Convey("When sorting ascending by score", func() {
			out := collection.SortStable(items, collection.Ascending(func(it item) int { return it.score }))

			Convey("Then equal keys keep their input order", func() {
				So(names(out), ShouldResemble, []string{"a", "b", "d", "c"})
			})

			Convey("And the input is left untouched", func() {
				So(names(items), ShouldResemble, []string{"d", "a", "c", "b"})
			})
		})

		Convey("When sorting descending by score", func() {
			out := collection.SortStable(items, collection.Descending(func(it item) int { return it.score }))

			Convey("Then larger keys come first and ties stay stable", func() {
				So(names(out), ShouldResemble, []string{"d", "c", "a", "b"})
			})
		})

		Convey("When sorting an empty slice", func() {
			out := collection.SortStable([]item(nil), collection.Ascending(func(it item) string { return it.name }))

			Convey("Then the result is empty but not nil", func() {
				So(out, ShouldNotBeNil)
				So(out, ShouldBeEmpty)
			})
		})
	})
}

func TestFilterMapJoin(t *testing.T) {
	Convey("Given a slice of items", t, func() {
		items := []item{{"a", 10, "x"}, {"b", 80, "x"}, {"c", 76, "y"}}

		Convey("Filter keeps only matching items in order", func() {
			out := collection.Filter(items, func(it item) bool { return it.score > 75 })
			So(names(out), ShouldResemble, []string{"b", "c"})
		})

		Convey("Filter returns an empty slice when nothing matches", func() {
			out := collection.Filter(items, func(item) bool { return false })
			So(out, ShouldNotBeNil)
			So(out, ShouldBeEmpty)
		})

		Convey("JoinBy renders and joins", func() {
			So(collection.JoinBy(items, ", ", func(it item) string { return strings.ToUpper(it.name) }), ShouldEqual, "A, B, C")
			So(collection.JoinBy([]item{}, ", ", func(it item) string { return it.name }), ShouldEqual, "")
		})
	})
}

func TestGroupBy(t *testing.T) {
	Convey("Given items spread over interleaved kinds", t, func() {
		items := []item{
			{"p1", 1, "beta"},
			{"p2", 2, "alpha"},
			{"p3", 3, "beta"},
			{"p4", 4, "gamma"},
			{"p5", 5, "alpha"},
		}
		groups := collection.GroupBy(items, func(it item) string { return it.kind })

		Convey("Then keys follow first-seen order", func() {
			So(groups.Keys(), ShouldResemble, []string{"beta", "alpha", "gamma"})
			So(groups.Len(), ShouldEqual, 3)
		})

		Convey("Then members keep their input order", func() {
			beta, ok := groups.Get("beta")
			So(ok, ShouldBeTrue)
			So(names(beta), ShouldResemble, []string{"p1", "p3"})
		})

		Convey("Then the groups form a partition", func() {
			total := 0
			seen := map[string]int{}
			groups.Each(func(_ string, members []item) {
				total += len(members)
				for _, m := range members {
					seen[m.name]++
				}
			})
			So(total, ShouldEqual, len(items))
			for _, it := range items {
				So(seen[it.name], ShouldEqual, 1)
			}
		})

		Convey("Then unknown keys are reported as missing", func() {
			_, ok := groups.Get("delta")
			So(ok, ShouldBeFalse)
		})

		Convey("Then mutating returned slices does not leak back", func() {
			keys := groups.Keys()
			keys[0] = "mutated"
			So(groups.Keys()[0], ShouldEqual, "beta")
		})
	})
}

func TestMaxByAndAverage(t *testing.T) {
	Convey("Given scored items", t, func() {
		items := []item{{"a", 3, ""}, {"b", 9, ""}, {"c", 9, ""}, {"d", 1, ""}}
		score := func(it item) int { return it.score }

		Convey("MaxBy picks the first maximal element", func() {
			best, ok := collection.MaxBy(items, score)
			So(ok, ShouldBeTrue)
			So(best.name, ShouldEqual, "b")
		})

		Convey("MaxBy reports an empty input", func() {
			_, ok := collection.MaxBy([]item{}, score)
			So(ok, ShouldBeFalse)
		})

		Convey("Average is the arithmetic mean", func() {
			avg := collection.Average(items, func(it item) float64 { return float64(it.score) })
			So(avg, ShouldEqual, 5.5)
		})

		Convey("Average of nothing is zero", func() {
			So(collection.Average([]item{}, func(it item) float64 { return 1 }), ShouldEqual, 0)
		})
	})
}
