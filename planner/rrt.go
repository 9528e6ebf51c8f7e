// Package planner implements the Rapidly-exploring Random Tree (RRT)
// planner: it coordinates sampling, nearest-neighbor lookup,
// interpolation (steering), and validity checking to grow a tree of
// reachable configurations until a goal region is reached, then
// extracts the path back to the root.
//
// The planner is polymorphic over its validator, sampler, termination
// policy, and nearest-neighbor map — realized here as Go generics plus
// small interfaces (kdtree.NearestNeighborsMap, sample.Sampler,
// termination.Policy) — so it can grow a tree over any configuration
// type that implements rrt.Configuration.
package planner

import (
	"cmp"
	"context"
	"math/rand"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"go.viam.com/rrt"
	"go.viam.com/rrt/kdtree"
	"go.viam.com/rrt/logging"
	"go.viam.com/rrt/sample"
	"go.viam.com/rrt/termination"
)

// ErrTimeout is returned by GrowToward when the termination policy
// fires before the goal is reached. Partial tree state remains
// inspectable via NumNodes and Node.
var ErrTimeout = errors.New("planner: timed out before reaching goal")

// treeNode is an RRT node: a configuration plus an indexed (not owned)
// back-link to its parent. The root has no parent (parent == -1).
type treeNode[C any] struct {
	config C
	parent int
}

// Planner grows a tree of configurations reachable from a root under a
// validity predicate, using a caller-supplied nearest-neighbor map to
// steer growth.
type Planner[C rrt.Configuration[C, D], D cmp.Ordered] struct {
	nodes     []treeNode[C]
	nnMap     kdtree.NearestNeighborsMap[C, int]
	validator rrt.Validator[C]
	logger    logging.Logger
}

// New constructs a Planner rooted at root. root is inserted into nnMap
// immediately, so NumNodes reports 1 before any growth.
func New[C rrt.Configuration[C, D], D cmp.Ordered](
	root C,
	nnMap kdtree.NearestNeighborsMap[C, int],
	validator rrt.Validator[C],
	logger logging.Logger,
) *Planner[C, D] {
	if logger == nil {
		logger = logging.NewLogger()
	}
	p := &Planner[C, D]{
		nodes:     []treeNode[C]{{config: root, parent: -1}},
		nnMap:     nnMap,
		validator: validator,
		logger:    logger,
	}
	nnMap.Insert(root, 0)
	return p
}

// NumNodes reports the number of nodes in the tree, including the root.
func (p *Planner[C, D]) NumNodes() int { return len(p.nodes) }

// Node returns the configuration and parent index of the i-th node.
// The root (index 0) has parent -1.
func (p *Planner[C, D]) Node(i int) (config C, parent int) {
	n := p.nodes[i]
	return n.config, n.parent
}

// GrowToward is the planner's main loop. Each iteration draws a
// Bernoulli-gated target (goalConfiguration with probability goalBias,
// else a draw from goalSampler), finds the nearest existing node,
// steers toward the target by at most radius, validates the resulting
// configuration and transition, and on success inserts the new node.
// Reaching the goal configuration (interpolation "arrives" while the
// iteration's target was the goal itself, not merely some goal-biased
// sample that happens to land within radius) ends the loop
// successfully and returns the root-to-goal path. A coincidental
// near-goal sample whose target was not goalConfiguration does not
// count.
//
// Random draws occur in a fixed order — Bernoulli first, then the
// sampler draw only when the Bernoulli did not select the goal — so
// that seeded runs are reproducible.
func (p *Planner[C, D]) GrowToward(
	ctx context.Context,
	goalSampler sample.Sampler[C],
	goalConfiguration C,
	radius D,
	term termination.Policy,
	goalBias sample.Sampler[bool],
	rng *rand.Rand,
) ([]C, error) {
	runID := uuid.New()
	logger := p.logger.With("run_id", runID.String())
	samples := 0

	for {
		if term.IsOver() {
			logger.CDebugf(ctx, "stopping after %d samples, %d nodes", samples, len(p.nodes))
			return nil, ErrTimeout
		}

		targetIsGoal := goalBias.Sample(rng)
		var target C
		if targetIsGoal {
			target = goalConfiguration
		} else {
			target = goalSampler.Sample(rng)
		}
		samples++
		term.UpdateSampleCount(1)

		_, nearIdx, ok := p.nnMap.Nearest(target)
		if !ok {
			// Unreachable: the root is inserted at construction time,
			// so the map is never empty during growth.
			return nil, errors.New("planner: nearest-neighbor map unexpectedly empty")
		}
		nearConfig := p.nodes[nearIdx].config

		newConfig, arrived := nearConfig.Interpolate(target, radius)

		if !p.validator.IsValidConfiguration(newConfig) || !p.validator.IsValidTransition(nearConfig, newConfig) {
			continue
		}

		newIdx := len(p.nodes)
		p.nodes = append(p.nodes, treeNode[C]{config: newConfig, parent: nearIdx})
		p.nnMap.Insert(newConfig, newIdx)
		term.UpdateNodeCount(1)

		if arrived && targetIsGoal {
			logger.CDebugf(ctx, "reached goal after %d nodes", len(p.nodes))
			return p.extractPath(newIdx), nil
		}
	}
}

func (p *Planner[C, D]) extractPath(idx int) []C {
	var path []C
	for idx != -1 {
		path = append(path, p.nodes[idx].config)
		idx = p.nodes[idx].parent
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
