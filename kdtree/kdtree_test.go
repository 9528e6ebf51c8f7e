package kdtree

import (
	"math/rand"
	"testing"

	"go.viam.com/test"

	"go.viam.com/rrt/metric"
	"go.viam.com/rrt/orderedfloat"
	"go.viam.com/rrt/spatial"
)

func newVectorMap() *Map[*spatial.RealVector, int, orderedfloat.Float64] {
	return New[*spatial.RealVector, int, orderedfloat.Float64](
		metric.SquaredEuclideanVector{},
		spatial.LowerBoundVector(3),
		spatial.UpperBoundVector(3),
	)
}

func TestGetEmpty(t *testing.T) {
	m := newVectorMap()
	_, _, ok := m.Nearest(spatial.NewRealVector(0, 0, 0))
	test.That(t, ok, test.ShouldBeFalse)
}

func TestGetOne(t *testing.T) {
	m := newVectorMap()
	m.Insert(spatial.NewRealVector(1, 2, 3), 42)
	key, value, ok := m.Nearest(spatial.NewRealVector(1, 2, 3))
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, value, test.ShouldEqual, 42)
	test.That(t, key.At(0), test.ShouldEqual, 1.0)

	key, value, ok = m.Nearest(spatial.NewRealVector(100, 100, 100))
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, value, test.ShouldEqual, 42)
}

func TestMakeTree(t *testing.T) {
	m := newVectorMap()
	points := [][3]float64{
		{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {-1, -1, -1},
	}
	for i, p := range points {
		m.Insert(spatial.NewRealVector(p[0], p[1], p[2]), i)
	}
	_, value, ok := m.Nearest(spatial.NewRealVector(0, 0, 0))
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, value, test.ShouldEqual, 0)
}

// TestAcrossBorder places the query just past a k-d tree split plane,
// on the side holding a nearby but farther point, and checks that the
// node defining that split plane, which is closer, is the one returned.
func TestAcrossBorder(t *testing.T) {
	m := newVectorMap()
	m.Insert(spatial.NewRealVector(0, 0, 0), 0)
	m.Insert(spatial.NewRealVector(10, 0, 0), 1)
	m.Insert(spatial.NewRealVector(-10, 0, 0), 2)
	m.Insert(spatial.NewRealVector(10, 0.1, 0), 3)

	// Query sits just barely on the "10, 0.1, 0" side of the axis-1 split
	// at (10, 0, 0), but the split node itself is the nearer one:
	// squared distance 0.0016 to (10, 0, 0) vs 0.0036 to (10, 0.1, 0).
	_, value, ok := m.Nearest(spatial.NewRealVector(10, 0.04, 0))
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, value, test.ShouldEqual, 1)
}

func bruteForceNearest(
	queries []*spatial.RealVector,
	points []*spatial.RealVector,
	values []int,
	m metric.SquaredEuclideanVector,
) []int {
	result := make([]int, len(queries))
	for qi, q := range queries {
		bestIdx := -1
		var bestDist orderedfloat.Float64
		for i, p := range points {
			d := m.Distance(p, q)
			if bestIdx == -1 || d < bestDist {
				bestDist = d
				bestIdx = i
			}
		}
		result[qi] = values[bestIdx]
	}
	return result
}

// TestRandomized3D brute-force-checks 2000 random points against a fixed
// seed, so the tree's branch-and-bound search is tested against the
// trivially-correct O(n) algorithm rather than against itself.
func TestRandomized3D(t *testing.T) {
	rng := rand.New(rand.NewSource(2707))
	m := newVectorMap()

	const n = 2000
	points := make([]*spatial.RealVector, n)
	values := make([]int, n)
	for i := 0; i < n; i++ {
		p := spatial.NewRealVector(
			rng.Float64()*200-100,
			rng.Float64()*200-100,
			rng.Float64()*200-100,
		)
		points[i] = p
		values[i] = i
		m.Insert(p, i)
	}

	const numQueries = 200
	queries := make([]*spatial.RealVector, numQueries)
	for i := 0; i < numQueries; i++ {
		queries[i] = spatial.NewRealVector(
			rng.Float64()*200-100,
			rng.Float64()*200-100,
			rng.Float64()*200-100,
		)
	}

	expected := bruteForceNearest(queries, points, values, metric.SquaredEuclideanVector{})
	for i, q := range queries {
		_, value, ok := m.Nearest(q)
		test.That(t, ok, test.ShouldBeTrue)
		test.That(t, value, test.ShouldEqual, expected[i])
	}
}

// TestPose2DWeighted brute-force-checks the weighted pose metric, which
// exercises the composite DistanceToAABB used by Pose2D/WeightedPose2D
// rather than a single-component one.
func TestPose2DWeighted(t *testing.T) {
	rng := rand.New(rand.NewSource(2707))
	wm := metric.DefaultWeightedPose2D()
	m := New[*spatial.Pose2D, int, orderedfloat.Float64](
		wm,
		spatial.LowerBoundPose2D(),
		spatial.UpperBoundPose2D(),
	)

	const n = 500
	points := make([]*spatial.Pose2D, n)
	for i := 0; i < n; i++ {
		p := spatial.NewPose2D(rng.Float64()*20-10, rng.Float64()*20-10, rng.Float64()*2*3.14159265)
		points[i] = p
		m.Insert(p, i)
	}

	const numQueries = 50
	for q := 0; q < numQueries; q++ {
		query := spatial.NewPose2D(rng.Float64()*20-10, rng.Float64()*20-10, rng.Float64()*2*3.14159265)

		bestIdx := -1
		var bestDist orderedfloat.Float64
		for i, p := range points {
			d := wm.Distance(p, query)
			if bestIdx == -1 || d < bestDist {
				bestDist = d
				bestIdx = i
			}
		}

		_, value, ok := m.Nearest(query)
		test.That(t, ok, test.ShouldBeTrue)
		test.That(t, value, test.ShouldEqual, bestIdx)
	}
}

func TestNearestWithinR(t *testing.T) {
	m := newVectorMap()
	m.Insert(spatial.NewRealVector(0, 0, 0), 0)
	m.Insert(spatial.NewRealVector(1, 0, 0), 1)
	m.Insert(spatial.NewRealVector(5, 0, 0), 2)
	m.Insert(spatial.NewRealVector(0.5, 0.5, 0), 3)

	hits := map[int]bool{}
	for _, v := range m.NearestWithinR(spatial.NewRealVector(0, 0, 0), orderedfloat.New(2)) {
		hits[v] = true
	}
	test.That(t, hits[0], test.ShouldBeTrue)
	test.That(t, hits[1], test.ShouldBeTrue)
	test.That(t, hits[3], test.ShouldBeTrue)
	test.That(t, hits[2], test.ShouldBeFalse)
}
