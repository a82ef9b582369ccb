// Command bench compares A* and Weighted A* configurations on reproducible
// random grids and prints a report of average time, expansions, success count
// and cost per configuration.
//
// Every flag can also be supplied through an environment variable (see
// --help); a .env file in the working directory is loaded first if present.
//
// Examples:
//
//	bench                                  # 200x200, p=0.25, 20 trials, seed 123
//	bench --rows 500 --cols 500 --trials 5
//	bench --workers 4 --format json
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/morning-star-1/project9-hp-algo/bench"
)

func main() {
	// Load .env file if it exists (ignore error if not found)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newCommand(os.Stdout).Run(ctx, os.Args); err != nil {
		log.Fatalf("bench: %v", err)
	}
}

// newCommand builds the CLI; the report goes to out.
func newCommand(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:   "bench",
		Usage:  "benchmark A* / Weighted A* heuristics and weights on random grids",
		Writer: out,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "rows",
				Value:   bench.DefaultRows,
				Usage:   "grid rows",
				Sources: cli.EnvVars("HPALGO_ROWS"),
			},
			&cli.IntFlag{
				Name:    "cols",
				Value:   bench.DefaultCols,
				Usage:   "grid columns",
				Sources: cli.EnvVars("HPALGO_COLS"),
			},
			&cli.FloatFlag{
				Name:    "obstacle-p",
				Value:   bench.DefaultObstacleP,
				Usage:   "probability that a cell is blocked",
				Sources: cli.EnvVars("HPALGO_OBSTACLE_P"),
			},
			&cli.IntFlag{
				Name:    "trials",
				Value:   bench.DefaultTrials,
				Usage:   "number of grids (seed, seed+1, ...)",
				Sources: cli.EnvVars("HPALGO_TRIALS"),
			},
			&cli.Int64Flag{
				Name:    "seed",
				Value:   bench.DefaultSeed,
				Usage:   "base seed of the grid generator",
				Sources: cli.EnvVars("HPALGO_SEED"),
			},
			&cli.IntFlag{
				Name:    "workers",
				Value:   bench.DefaultWorkers,
				Usage:   "trials to run in parallel (timings are noisier above 1)",
				Sources: cli.EnvVars("HPALGO_WORKERS"),
			},
			&cli.StringFlag{
				Name:    "format",
				Value:   string(bench.FormatTable),
				Usage:   "report format: table, json or yaml",
				Sources: cli.EnvVars("HPALGO_FORMAT"),
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Usage:   "log per-trial progress to stderr",
				Sources: cli.EnvVars("HPALGO_VERBOSE"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format, err := bench.ParseFormat(cmd.String("format"))
			if err != nil {
				return err
			}

			s := bench.DefaultSuite()
			s.Rows = cmd.Int("rows")
			s.Cols = cmd.Int("cols")
			s.ObstacleP = cmd.Float("obstacle-p")
			s.Trials = cmd.Int("trials")
			s.Seed = cmd.Int64("seed")
			s.Workers = cmd.Int("workers")
			if cmd.Bool("verbose") {
				s.OnTrial = func(done, total int) {
					log.Printf("trial %d/%d done", done, total)
				}
			}

			rep, err := bench.Run(ctx, s)
			if err != nil {
				return fmt.Errorf("run suite: %w", err)
			}
			return rep.Write(cmd.Writer, format)
		},
	}
}
