package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/aretw0/plans"
	"github.com/aretw0/plans/pkg/core"
)

// bench measures the cost of the whole-list rewrite: seeding N notes, a cold
// load in a fresh process, and one more save on top of N.
func main() {
	count := flag.Int("count", 1000, "Number of notes to generate")
	format := flag.String("format", "json", "Encoding: json, yaml or csv")
	adapter := flag.String("adapter", "fs", "Storage adapter: fs or sqlite")
	keep := flag.Bool("keep", false, "Keep the benchmark directory after running")
	flag.Parse()

	benchDir, err := os.MkdirTemp("", "plans_bench_")
	if err != nil {
		panic(err)
	}
	defer func() {
		if !*keep {
			os.RemoveAll(benchDir)
		} else {
			fmt.Printf("Keeping bench dir: %s\n", benchDir)
		}
	}()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn}))
	open := func() *plans.Store {
		store, err := plans.Open(context.Background(), benchDir,
			plans.WithFormat(*format),
			plans.WithAdapter(*adapter),
			plans.WithLogger(logger),
		)
		if err != nil {
			panic(err)
		}
		return store
	}
	ctx := context.Background()

	// Seed through a gateway write so generation does not pay N rewrites.
	fmt.Printf("Generating %d notes (%s, %s) in %s...\n", *count, *format, *adapter, benchDir)
	seed := open()
	notes := make([]core.Note, 0, *count)
	for i := range *count {
		n := core.NewNote(fmt.Sprintf("Note %d", i), "This is a benchmark note.")
		n.Date = n.Date.Add(-time.Duration(i) * time.Minute)
		notes = append(notes, n)
	}
	startGen := time.Now()
	data, err := seed.Codec.Encode(notes)
	if err != nil {
		panic(err)
	}
	if err := seed.Gateway.Write(ctx, data); err != nil {
		panic(err)
	}
	_ = seed.Close()
	fmt.Printf("Generation took: %v (%d bytes)\n", time.Since(startGen), len(data))

	// Run 1: cold load in a fresh store, as a new CLI invocation would.
	store := open()
	defer store.Close()

	startLoad := time.Now()
	list, err := store.Repository.FetchNotes(ctx)
	if err != nil {
		panic(err)
	}
	cold := time.Since(startLoad)
	fmt.Printf("Cold load: %v (Items: %d)\n", cold, len(list))

	// Run 2: served from the cache.
	startWarm := time.Now()
	if _, err := store.Repository.FetchNotes(ctx); err != nil {
		panic(err)
	}
	warm := time.Since(startWarm)

	// Run 3: one save rewrites all N+1 notes.
	startSave := time.Now()
	if err := store.Repository.SaveNote(ctx, core.NewNote("One more", "")); err != nil {
		panic(err)
	}
	save := time.Since(startSave)

	fmt.Printf("--------------------------------------------------\n")
	fmt.Printf("Benchmark Result (%d notes):\n", *count)
	fmt.Printf("  Cold load: %v\n", cold)
	fmt.Printf("  Warm load: %v\n", warm)
	fmt.Printf("  Save:      %v\n", save)
	fmt.Printf("--------------------------------------------------\n")
}
