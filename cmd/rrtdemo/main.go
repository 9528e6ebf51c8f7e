// Command rrtdemo grows a tree from a start configuration to a goal in
// the plane and prints the resulting path, the same worked example the
// toolkit's own tests reproduce: a degenerate sampler, a small goal
// bias, and a tight step radius.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"

	"github.com/urfave/cli/v2"

	"go.viam.com/rrt/kdtree"
	"go.viam.com/rrt/logging"
	"go.viam.com/rrt/metric"
	"go.viam.com/rrt/orderedfloat"
	"go.viam.com/rrt/planner"
	"go.viam.com/rrt/sample"
	"go.viam.com/rrt/spatial"
	"go.viam.com/rrt/termination"
	"go.viam.com/rrt/validate"
)

func main() {
	app := &cli.App{
		Name:  "rrtdemo",
		Usage: "grow an RRT from a start point to a goal in the plane",
		Flags: []cli.Flag{
			&cli.Float64Flag{Name: "goal-bias", Value: 0.05, Usage: "probability of sampling the goal directly"},
			&cli.Float64Flag{Name: "step-radius", Value: 0.05, Usage: "squared-distance steering budget per step"},
			&cli.IntFlag{Name: "max-nodes", Value: 10_000, Usage: "termination bound on tree size"},
			&cli.Int64Flag{Name: "seed", Value: 2707, Usage: "RNG seed, for reproducible runs"},
			&cli.StringFlag{Name: "log-level", Value: "info", Usage: "not applied: the demo logs at every level, debug included"},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "rrtdemo:", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	logger := logging.NewLogger()

	root := spatial.NewRealVector(0, 0)
	goal := spatial.NewRealVector(1, 1)
	radius := orderedfloat.New(c.Float64("step-radius"))

	nnMap := kdtree.New[*spatial.RealVector, int, orderedfloat.Float64](
		metric.SquaredEuclideanVector{},
		spatial.LowerBoundVector(2),
		spatial.UpperBoundVector(2),
	)
	p := planner.New[*spatial.RealVector, orderedfloat.Float64](root, nnMap, validate.AlwaysValid[*spatial.RealVector](), logger)

	sampler := sample.Rectangle{Min: spatial.NewRealVector(0, 1.1), Max: spatial.NewRealVector(0, 1.1)}
	term := termination.NewLimitNodes(c.Int("max-nodes"))
	bias := sample.NewBernoulli(c.Float64("goal-bias"))
	rng := rand.New(rand.NewSource(c.Int64("seed")))

	path, err := p.GrowToward(context.Background(), sampler, goal, radius, term, bias, rng)
	if err != nil {
		return fmt.Errorf("growing tree: %w", err)
	}

	logger.Infof("reached goal in %d nodes, path length %d", p.NumNodes(), len(path))
	for i, cfg := range path {
		fmt.Printf("%d: (%.4f, %.4f)\n", i, cfg.At(0), cfg.At(1))
	}
	return nil
}
