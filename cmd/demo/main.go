// Command demo generates a small reproducible grid, runs A* from the top-left
// to the bottom-right corner and prints the metrics followed by an ASCII map.
//
// With no flags it reproduces the standard 20x40, p=0.22, seed 7 example.
// --tui shows the same map in an interactive terminal view (q or Esc quits).
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/urfave/cli/v3"

	"github.com/morning-star-1/project9-hp-algo/astar"
	"github.com/morning-star-1/project9-hp-algo/builder"
	"github.com/morning-star-1/project9-hp-algo/grid"
	"github.com/morning-star-1/project9-hp-algo/render"
)

// Demo defaults.
const (
	defaultRows      = 20
	defaultCols      = 40
	defaultObstacleP = 0.22
	defaultSeed      = 7
)

func main() {
	if err := newCommand(os.Stdout).Run(context.Background(), os.Args); err != nil {
		log.Fatalf("demo: %v", err)
	}
}

// scenario is one fully resolved demo run.
type scenario struct {
	g           *grid.Grid
	start, goal grid.Coord
	res         astar.Result
}

func newCommand(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:   "demo",
		Usage:  "run A* on a small random grid and print the map",
		Writer: out,
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "rows", Value: defaultRows, Usage: "grid rows"},
			&cli.IntFlag{Name: "cols", Value: defaultCols, Usage: "grid columns"},
			&cli.FloatFlag{Name: "obstacle-p", Value: defaultObstacleP, Usage: "probability that a cell is blocked"},
			&cli.Int64Flag{Name: "seed", Value: defaultSeed, Usage: "grid generator seed"},
			&cli.StringFlag{Name: "heuristic", Value: "manhattan", Usage: "manhattan, euclidean or zero"},
			&cli.FloatFlag{Name: "weight", Value: astar.DefaultWeight, Usage: "heuristic weight (>= 1)"},
			&cli.BoolFlag{Name: "tui", Usage: "show the map in an interactive terminal view"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			sc, err := runScenario(cmd.Int("rows"), cmd.Int("cols"), cmd.Float("obstacle-p"),
				cmd.Int64("seed"), cmd.String("heuristic"), cmd.Float("weight"))
			if err != nil {
				return err
			}
			if cmd.Bool("tui") {
				return showTUI(sc)
			}
			return printScenario(cmd.Writer, sc)
		},
	}
}

// runScenario builds the grid with both corners forced free and searches it.
func runScenario(rows, cols int, p float64, seed int64, heuristic string, weight float64) (scenario, error) {
	h, err := astar.Lookup(heuristic)
	if err != nil {
		return scenario{}, err
	}
	if err := astar.CheckWeight(weight); err != nil {
		return scenario{}, err
	}

	start := grid.Coord{Row: 0, Col: 0}
	goal := grid.Coord{Row: rows - 1, Col: cols - 1}
	g, err := builder.RandomGrid(rows, cols, p, builder.WithSeed(seed), builder.WithOpenCells(start, goal))
	if err != nil {
		return scenario{}, err
	}

	return scenario{
		g:     g,
		start: start,
		goal:  goal,
		res:   astar.Search(g, start, goal, h, astar.WithWeight(weight)),
	}, nil
}

func summary(res astar.Result) string {
	return fmt.Sprintf("found=%t cost=%s expanded=%d", res.Found, formatCost(res.Cost), res.Expanded)
}

// formatCost prints costs with one decimal and +Inf as "inf".
func formatCost(v float64) string {
	if math.IsInf(v, 1) {
		return "inf"
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func printScenario(w io.Writer, sc scenario) error {
	_, err := fmt.Fprintf(w, "%s\n%s\n", summary(sc.res),
		render.Text(sc.g, sc.res.Path, render.WithStart(sc.start), render.WithGoal(sc.goal)))
	return err
}

// showTUI draws the scenario on the terminal until the user quits.
func showTUI(sc scenario) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	draw := func() {
		screen.Clear()
		render.Draw(screen, sc.g, sc.res.Path, render.WithStart(sc.start), render.WithGoal(sc.goal))
		_, h := screen.Size()
		status := summary(sc.res) + "  (q to quit)"
		render.DrawLine(screen, min(sc.g.Rows(), render.DefaultMaxRows, h-1), status)
		screen.Show()
	}
	draw()

	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
			draw()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				return nil
			}
		case nil:
			return nil
		}
	}
}
