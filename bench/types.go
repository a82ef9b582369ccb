package bench

import (
	"errors"
	"fmt"

	"github.com/morning-star-1/project9-hp-algo/astar"
)

// Sentinel errors for suite validation and report encoding.
var (
	// ErrBadSize indicates a grid dimension below 1.
	ErrBadSize = errors.New("bench: rows and cols must be >= 1")
	// ErrBadTrials indicates a trial count below 1.
	ErrBadTrials = errors.New("bench: trials must be >= 1")
	// ErrBadWorkers indicates a worker count below 1.
	ErrBadWorkers = errors.New("bench: workers must be >= 1")
	// ErrNoConfigs indicates an empty configuration list.
	ErrNoConfigs = errors.New("bench: at least one config is required")
	// ErrBadProbability indicates an obstacle probability outside [0,1].
	ErrBadProbability = errors.New("bench: obstacle probability must be in [0,1]")
	// ErrUnknownFormat indicates an unsupported report format name.
	ErrUnknownFormat = errors.New("bench: unknown report format")
)

// Config is one heuristic/weight combination under test.
type Config struct {
	Name      string
	Heuristic astar.Heuristic
	Weight    float64
}

// DefaultConfigs returns the standard comparison set: A* with Manhattan and
// Euclidean heuristics, and Weighted A* with Manhattan at w = 1.5 and w = 2.0.
func DefaultConfigs() []Config {
	return []Config{
		{Name: "A* Manhattan", Heuristic: astar.Manhattan, Weight: 1.0},
		{Name: "A* Euclidean", Heuristic: astar.Euclidean, Weight: 1.0},
		{Name: "Weighted A* (w=1.5) Manhattan", Heuristic: astar.Manhattan, Weight: 1.5},
		{Name: "Weighted A* (w=2.0) Manhattan", Heuristic: astar.Manhattan, Weight: 2.0},
	}
}

// Suite describes one benchmark run.
//
// OnTrial, if set, is called after each trial completes with the number of
// trials finished so far. It may be called from several goroutines at once.
type Suite struct {
	Rows, Cols int
	ObstacleP  float64
	Trials     int
	Seed       int64
	Workers    int
	Configs    []Config
	OnTrial    func(done, total int)
}

// Default suite parameters.
const (
	DefaultRows      = 200
	DefaultCols      = 200
	DefaultObstacleP = 0.25
	DefaultTrials    = 20
	DefaultSeed      = 123
	DefaultWorkers   = 1
)

// DefaultSuite returns a 200×200, p=0.25, 20-trial, seed 123 suite running
// DefaultConfigs sequentially.
func DefaultSuite() Suite {
	return Suite{
		Rows:      DefaultRows,
		Cols:      DefaultCols,
		ObstacleP: DefaultObstacleP,
		Trials:    DefaultTrials,
		Seed:      DefaultSeed,
		Workers:   DefaultWorkers,
		Configs:   DefaultConfigs(),
	}
}

// Validate checks the suite parameters in order: size, probability, trials,
// workers, configs.
func (s Suite) Validate() error {
	if s.Rows < 1 || s.Cols < 1 {
		return fmt.Errorf("%w: got %dx%d", ErrBadSize, s.Rows, s.Cols)
	}
	if !(s.ObstacleP >= 0 && s.ObstacleP <= 1) {
		return fmt.Errorf("%w: got %v", ErrBadProbability, s.ObstacleP)
	}
	if s.Trials < 1 {
		return fmt.Errorf("%w: got %d", ErrBadTrials, s.Trials)
	}
	if s.Workers < 1 {
		return fmt.Errorf("%w: got %d", ErrBadWorkers, s.Workers)
	}
	if len(s.Configs) == 0 {
		return ErrNoConfigs
	}
	for _, c := range s.Configs {
		if err := astar.CheckWeight(c.Weight); err != nil {
			return fmt.Errorf("bench: config %q: %w", c.Name, err)
		}
	}
	return nil
}

// Stats aggregates every trial of one Config.
// AvgCost and MaxSubopt are NaN when no search succeeded.
type Stats struct {
	Name        string
	Weight      float64
	AvgMillis   float64
	AvgExpanded float64
	Successes   int
	Trials      int
	AvgCost     float64
	MaxSubopt   float64
}
