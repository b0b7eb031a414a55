// Command vecinfo prints capacity growth statistics for vector workloads.
//
// Usage:
//
//	vecinfo [flags] [scenario ...]
//
// Without arguments it runs every known scenario.
//
// Examples:
//
//	vecinfo push
//	vecinfo -n 100000 push insert-front
//	vecinfo -v -n 50 push
//	vecinfo -list
//	vecinfo -cpu
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-vector/vector"
	"github.com/cwbudde/algo-vector/vector/numeric"
	"github.com/cwbudde/algo-vector/vector/rawbuf"
)

type scenario struct {
	name string
	desc string
	run  func(n int, opts ...vector.Option[int]) *vector.Vector[int]
}

var registry = []scenario{
	{"push", "PushBack n values onto an empty vector", runPush},
	{"reserved", "Reserve n, then PushBack n values", runReserved},
	{"insert-front", "Insert n values at position 0", runInsertFront},
	{"resize", "Resize to 1, 2, 4, ... up to n", runResize},
	{"pooled", "PushBack n values with a block pool, twice", runPooled},
}

func runPush(n int, opts ...vector.Option[int]) *vector.Vector[int] {
	v := vector.New(opts...)
	for i := range n {
		v.PushBack(i)
	}
	return v
}

func runReserved(n int, opts ...vector.Option[int]) *vector.Vector[int] {
	v := vector.New(opts...)
	v.Reserve(n)
	for i := range n {
		v.PushBack(i)
	}
	return v
}

func runInsertFront(n int, opts ...vector.Option[int]) *vector.Vector[int] {
	v := vector.New(opts...)
	for i := range n {
		v.Insert(0, i)
	}
	return v
}

func runResize(n int, opts ...vector.Option[int]) *vector.Vector[int] {
	v := vector.New(opts...)
	for size := 1; size < n; size *= 2 {
		v.Resize(size)
	}
	v.Resize(n)
	return v
}

func runPooled(n int, opts ...vector.Option[int]) *vector.Vector[int] {
	opts = append(opts, vector.WithPool(rawbuf.NewPool[int]()))
	v := runPush(n, opts...)
	v.Assign(vector.New[int]())
	for i := range n {
		v.PushBack(i)
	}
	return v
}

type result struct {
	name     string
	n        int
	length   int
	cap      int
	reallocs int
	moved    int
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("vecinfo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	n := fs.Int("n", 1000, "number of elements per scenario")
	list := fs.Bool("list", false, "list available scenario names")
	showCPU := fs.Bool("cpu", false, "print SIMD dispatch information and exit")
	verbose := fs.Bool("v", false, "log every reallocation")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: vecinfo [flags] [scenario ...]\n\n")
		fmt.Fprintf(stderr, "Prints capacity growth statistics for vector workloads.\n")
		fmt.Fprintf(stderr, "Without arguments, runs every scenario.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  vecinfo push\n")
		fmt.Fprintf(stderr, "  vecinfo -n 100000 push insert-front\n")
		fmt.Fprintf(stderr, "  vecinfo -list\n")
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if *list {
		printList(stdout)
		return 0
	}
	if *showCPU {
		fmt.Fprintf(stdout, "arch=%s simd=%s\n", numeric.Architecture(), numeric.SIMDLevel())
		return 0
	}
	if *n < 0 {
		logger.Error("invalid element count", "n", *n)
		return 2
	}

	scenarios := resolveScenarios(fs.Args(), logger)
	if len(scenarios) == 0 {
		logger.Error("no matching scenarios")
		return 1
	}

	results := make([]result, 0, len(scenarios))
	for _, sc := range scenarios {
		results = append(results, measure(sc, *n, logger))
	}

	if err := printResults(stdout, results); err != nil {
		logger.Error("failed to write output", "error", err)
		return 1
	}
	return 0
}

func printList(w io.Writer) {
	sorted := append([]scenario(nil), registry...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].name < sorted[j].name })
	for _, sc := range sorted {
		fmt.Fprintf(w, "%-14s %s\n", sc.name, sc.desc)
	}
}

func resolveScenarios(names []string, logger *slog.Logger) []scenario {
	if len(names) == 0 {
		return registry
	}

	byName := make(map[string]scenario, len(registry))
	for _, sc := range registry {
		byName[sc.name] = sc
	}

	var out []scenario
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		sc, ok := byName[name]
		if !ok {
			logger.Warn("unknown scenario (use -list to see available)", "name", name)
			continue
		}
		out = append(out, sc)
	}
	return out
}

func measure(sc scenario, n int, logger *slog.Logger) result {
	r := result{name: sc.name, n: n}
	hook := func(e vector.GrowthEvent) {
		r.reallocs++
		r.moved += e.Size
		logger.Debug("reallocation",
			"scenario", sc.name,
			"op", e.Op.String(),
			"old_cap", e.OldCapacity,
			"new_cap", e.NewCapacity,
			"moved", e.Size,
		)
	}
	v := sc.run(n, vector.WithGrowthHook[int](hook))
	r.length, r.cap = v.Len(), v.Cap()
	return r
}

// pushBound is the reallocation ceiling for n pushes onto an empty vector.
func pushBound(n int) int {
	if n == 0 {
		return 0
	}
	return max(1, int(math.Ceil(math.Log2(float64(n)/10)))+1)
}

func printResults(w io.Writer, results []result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Scenario\tN\tLen\tCap\tReallocs\tPush Bound\tMoved\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "--------\t-\t---\t---\t--------\t----------\t-----\n"); err != nil {
		return err
	}
	for _, r := range results {
		if _, err := fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%d\t%d\n",
			r.name, r.n, r.length, r.cap, r.reallocs, pushBound(r.n), r.moved,
		); err != nil {
			return err
		}
	}
	return tw.Flush()
}
