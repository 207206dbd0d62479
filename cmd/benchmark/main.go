package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/celljam/celljam/cells"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
)

func main() {
	flag.Parse()

	f, err := os.Create("default.pgo")
	if err != nil {
		log.Fatal(err)
	}
	pprof.StartCPUProfile(f)
	defer pprof.StopCPUProfile()

	log.Printf("warming up")

	benchmarkPropagate(true)
	benchmarkInvalidate(true)
}

var (
	ww    = []int{1, 10, 100, 1_000}
	hh    = []int{1, 10, 100, 1_000}
	iters = 100
)

// benchmarkPropagate times a write plus a pull of every chain tail, so
// each sample covers the full invalidate and recompute round trip.
func benchmarkPropagate(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Cells")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, w := range ww {
		for _, h := range hh {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			src := cells.New(1)
			tails := make([]*cells.Cell[int], 0, w)
			for i := 0; i < w; i++ {
				last := src
				for j := 0; j < h; j++ {
					prev := last
					last = cells.Computed(func(ctx *cells.Context) int {
						return prev.Use(ctx) + 1
					})
				}
				tails = append(tails, last)
			}

			// settle the graph so the timed loop never pays first-build cost
			for _, tail := range tails {
				tail.Value()
			}

			for i := 0; i < iters; i++ {
				start := time.Now()
				src.SetValue(src.Value() + 1)
				for _, tail := range tails {
					tail.Value()
				}
				tach.AddTime(time.Since(start))
			}

			calc := tach.Calc()
			tbl.AppendRows([]table.Row{
				{
					fmt.Sprintf("propagate: %d * %d", w, h),
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
				},
			})
		}
	}

	if shouldRender {
		tbl.Render()
	}
}

// benchmarkInvalidate times the push half alone: the write relays
// invalidation through every chain but nothing recomputes.
func benchmarkInvalidate(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Cells (invalidate only)")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, w := range ww {
		for _, h := range hh {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			src := cells.New(1)
			tails := make([]*cells.Cell[int], 0, w)
			for i := 0; i < w; i++ {
				last := src
				for j := 0; j < h; j++ {
					prev := last
					last = cells.Computed(func(ctx *cells.Context) int {
						return prev.Use(ctx) + 1
					})
				}
				tails = append(tails, last)
			}

			for i := 0; i < iters; i++ {
				// pull outside the timer so every write starts from a clean graph
				for _, tail := range tails {
					tail.Value()
				}
				start := time.Now()
				src.SetValue(src.Value() + 1)
				tach.AddTime(time.Since(start))
			}

			calc := tach.Calc()
			tbl.AppendRows([]table.Row{
				{
					fmt.Sprintf("invalidate: %d * %d", w, h),
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
				},
			})
		}
	}

	if shouldRender {
		tbl.Render()
	}
}
