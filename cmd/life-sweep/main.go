package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"time"

	"mad-life/internal/life"
	"mad-life/internal/render"

	"golang.org/x/sync/errgroup"
)

func main() {
	cfg := life.DefaultConfig()
	cfg.Bind(flag.CommandLine)
	seeds := flag.Int("seeds", 64, "number of consecutive seeds to run, starting at -seed")
	ticks := flag.Int("ticks", 1000, "maximum generations per seed")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	printFinal := flag.Bool("print", false, "print the final board of the first seed")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	if *seeds <= 0 {
		log.Fatalf("-seeds must be positive, got %d", *seeds)
	}

	if *printFinal {
		printBoard(cfg, *ticks)
	}

	fmt.Printf("Sweeping %d seeds on %dx%d at p=%.2f (%d workers, %d ticks)\n",
		*seeds, cfg.Width, cfg.Height, cfg.AliveProbability, *workers, *ticks)

	start := time.Now()
	results, err := sweep(context.Background(), cfg, *seeds, *ticks, *workers)
	if err != nil {
		log.Fatal(err)
	}
	elapsed := time.Since(start)

	report(results, elapsed)
}

// sweep runs one census per seed. Each engine is owned by a single goroutine.
func sweep(ctx context.Context, base life.Config, seeds, ticks, workers int) ([]life.Outcome, error) {
	if workers <= 0 {
		workers = 1
	}
	results := make([]life.Outcome, seeds)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < seeds; i++ {
		cfg := base
		cfg.Seed = base.Seed + int64(i)
		idx := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out, err := life.Census(cfg, ticks)
			if err != nil {
				return fmt.Errorf("seed %d: %w", cfg.Seed, err)
			}
			results[idx] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func report(results []life.Outcome, elapsed time.Duration) {
	var extinct, settled int
	periods := map[int]int{}
	for _, res := range results {
		if res.Extinct() {
			extinct++
		}
		if res.Period > 0 {
			settled++
			periods[res.Period]++
		}
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Population > results[j].Population })

	fmt.Printf("\nTop 5 by final population (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i := 0; i < len(results) && i < 5; i++ {
		res := results[i]
		fmt.Printf("%2d) seed=%d population=%d generations=%d period=%d settledAt=%d\n",
			i+1, res.Seed, res.Population, res.Generations, res.Period, res.SettledAt)
	}

	keys := make([]int, 0, len(periods))
	for p := range periods {
		keys = append(keys, p)
	}
	sort.Ints(keys)
	fmt.Printf("\nSettled %d/%d, extinct %d\n", settled, len(results), extinct)
	for _, p := range keys {
		fmt.Printf("  period %d: %d\n", p, periods[p])
	}
}

func printBoard(cfg life.Config, ticks int) {
	e, err := life.New(cfg)
	if err != nil {
		log.Fatalf("seeding grid: %v", err)
	}
	out := e.Census(ticks)
	fmt.Printf("seed %d after %d generations (population %d, period %d)\n",
		out.Seed, out.Generations, out.Population, out.Period)
	fmt.Print(render.FormatASCII(e))
	fmt.Println()
}
