package optim

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/eulerlab/internal/config"
	"github.com/san-kum/eulerlab/internal/dynamo"
	"github.com/san-kum/eulerlab/internal/experiment"
)

// Point is one evaluated parameter combination. Err is set when that run
// failed; the search continues past it.
type Point struct {
	Params map[string]float64
	Value  float64
	Err    error
}

// Evaluator runs one parameter combination and returns the value to
// minimize.
type Evaluator func(ctx context.Context, params map[string]float64) (float64, error)

type GridSearch struct {
	paramNames []string
	ranges     [][]float64
}

func NewGridSearch(params []string, ranges [][]float64) (*GridSearch, error) {
	if len(params) == 0 || len(params) != len(ranges) {
		return nil, fmt.Errorf("%w: %d parameters with %d value lists", dynamo.ErrInvalidArgument, len(params), len(ranges))
	}
	for i, r := range ranges {
		if len(r) == 0 {
			return nil, fmt.Errorf("%w: no values for %s", dynamo.ErrInvalidArgument, params[i])
		}
	}
	return &GridSearch{paramNames: params, ranges: ranges}, nil
}

// Size is the number of combinations in the grid.
func (g *GridSearch) Size() int {
	n := 1
	for _, r := range g.ranges {
		n *= len(r)
	}
	return n
}

// Evaluate runs every combination in order, with the last parameter
// varying fastest.
func (g *GridSearch) Evaluate(ctx context.Context, eval Evaluator) ([]Point, error) {
	points := make([]Point, 0, g.Size())
	err := g.walk(ctx, 0, make(map[string]float64, len(g.paramNames)), eval, &points)
	return points, err
}

// Search evaluates the grid and returns the combination with the smallest
// value along with every evaluated point.
func (g *GridSearch) Search(ctx context.Context, eval Evaluator) (Point, []Point, error) {
	points, err := g.Evaluate(ctx, eval)
	if err != nil {
		return Point{}, points, err
	}

	best := Point{Value: math.Inf(1)}
	found := false
	for _, p := range points {
		if p.Err == nil && p.Value < best.Value {
			best, found = p, true
		}
	}
	if !found {
		return Point{}, points, fmt.Errorf("%w: no combination produced a value", dynamo.ErrInvalidState)
	}
	return best, points, nil
}

func (g *GridSearch) walk(ctx context.Context, depth int, current map[string]float64, eval Evaluator, points *[]Point) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if depth == len(g.paramNames) {
		params := make(map[string]float64, len(current))
		for k, v := range current {
			params[k] = v
		}
		val, err := eval(ctx, params)
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		*points = append(*points, Point{Params: params, Value: val, Err: err})
		return nil
	}

	name := g.paramNames[depth]
	for _, val := range g.ranges[depth] {
		current[name] = val
		if err := g.walk(ctx, depth+1, current, eval, points); err != nil {
			return err
		}
	}
	delete(current, name)
	return nil
}

// MetricEvaluator runs base with each combination applied through
// config.Config.Set and reports the named metric. Runs write no output.
func MetricEvaluator(base *config.Config, metric string) Evaluator {
	return func(ctx context.Context, params map[string]float64) (float64, error) {
		cfg := *base
		cfg.Mode = config.ModeNone
		for name, v := range params {
			if err := cfg.Set(name, v); err != nil {
				return 0, err
			}
		}

		res, err := experiment.New(&cfg).Run(ctx)
		if err != nil {
			return 0, err
		}
		val, ok := res.Metrics[metric]
		if !ok {
			return 0, fmt.Errorf("%w: %s has no metric %q", dynamo.ErrInvalidArgument, cfg.Scenario, metric)
		}
		return val, nil
	}
}
