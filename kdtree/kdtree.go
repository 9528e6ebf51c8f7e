// Package kdtree implements a k-d tree nearest-neighbor map, generic
// over the key type, its metric, and the value stored at each key. It
// supports insertion, branch-and-bound nearest search, and range
// ("within radius") search, and remains correct for non-Euclidean
// topologies (such as angular axes that wrap) as long as the supplied
// metric's DistanceToAABB lower-bounds true distance — the tree itself
// never assumes Cartesian clamping.
package kdtree

import (
	"cmp"
	"iter"

	"go.viam.com/rrt"
)

// NearestNeighborsMap is a key-value map capable of nearest-neighbor
// search. The planner package depends on this interface, not on Map
// directly, so it can be exercised against any conforming
// implementation.
type NearestNeighborsMap[K any, V any] interface {
	// Insert places key/value into the map. Insertion cannot fail;
	// duplicate keys are permitted.
	Insert(key K, value V)
	// Nearest returns the entry minimizing distance to query, or
	// ok=false if the map is empty.
	Nearest(query K) (key K, value V, ok bool)
}

// RangeNearestNeighborsMap additionally supports radius search.
type RangeNearestNeighborsMap[K any, V any, D any] interface {
	NearestNeighborsMap[K, V]
	// NearestWithinR yields every entry whose distance to query is <= r.
	// Order is unspecified. Each call produces a fresh sequence.
	NearestWithinR(query K, r D) iter.Seq2[K, V]
}

type node[K any, V any] struct {
	key      K
	value    V
	children [2]*node[K, V]
}

// Map is a NearestNeighborsMap backed by a k-d tree. It is not
// particularly efficient, but it supports spaces of unusual topology
// (such as spatial.Angle) because all topology-specific reasoning lives
// in the metric's DistanceToAABB, not in the tree.
type Map[K rrt.KdKey[K], V any, D cmp.Ordered] struct {
	root   *node[K, V]
	metric rrt.AABBMetric[K, D]
	lower  K
	upper  K
}

// New constructs an empty Map. lower and upper must bracket every
// representable key along every axis (spatial.LowerBoundVector /
// UpperBoundVector and friends supply these for the built-in
// configuration types) — they seed the k-d tree's initial search
// region.
func New[K rrt.KdKey[K], V any, D cmp.Ordered](metric rrt.AABBMetric[K, D], lower, upper K) *Map[K, V, D] {
	return &Map[K, V, D]{metric: metric, lower: lower, upper: upper}
}

// Insert implements NearestNeighborsMap. Descent rule at depth d
// (axis k = d mod dimension): compare the current node's key to the
// new key on axis k; descend right when node <= new key, left
// otherwise. Duplicate keys go right of their match.
func (m *Map[K, V, D]) Insert(key K, value V) {
	if m.root == nil {
		m.root = &node[K, V]{key: key, value: value}
		return
	}
	dim := key.Dimension()
	parent := m.root
	k := 0
	for {
		side := 0
		if parent.key.Compare(key, k) <= 0 {
			side = 1
		}
		if parent.children[side] == nil {
			parent.children[side] = &node[K, V]{key: key, value: value}
			return
		}
		parent = parent.children[side]
		k = (k + 1) % dim
	}
}

// Nearest implements NearestNeighborsMap via branch-and-bound search
// with AABB pruning.
func (m *Map[K, V, D]) Nearest(query K) (key K, value V, ok bool) {
	if m.root == nil {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	best := m.metric.Distance(m.root.key, query)
	if m.metric.IsZero(best) {
		return m.root.key, m.root.value, true
	}
	bestNode := m.nearestHelp(m.root, query, m.lower.Clone(), m.upper.Clone(), &best, 0)
	if bestNode == nil {
		bestNode = m.root
	}
	return bestNode.key, bestNode.value, true
}

func (m *Map[K, V, D]) nearestHelp(n *node[K, V], query, regLo, regHi K, radius *D, axis int) *node[K, V] {
	var best *node[K, V]
	dim := query.Dimension()
	isRight := n.key.Compare(query, axis) <= 0

	near, far := 1, 0
	if !isRight {
		near, far = 0, 1
	}

	if child := n.children[near]; child != nil {
		cdist := m.metric.Distance(child.key, query)
		if cdist <= *radius {
			*radius = cdist
			best = child
			if m.metric.IsZero(cdist) {
				return best
			}
		}
		if r := m.nearestHelp(child, query, regLo.Clone(), regHi.Clone(), radius, (axis+1)%dim); r != nil {
			best = r
		}
	}

	if child := n.children[far]; child != nil {
		cdist := m.metric.Distance(child.key, query)
		if cdist <= *radius {
			*radius = cdist
			best = child
			if m.metric.IsZero(cdist) {
				return best
			}
		}
		if isRight {
			regHi.Assign(n.key, axis)
		} else {
			regLo.Assign(n.key, axis)
		}
		if m.metric.DistanceToAABB(query, regLo, regHi) < *radius {
			if r := m.nearestHelp(child, query, regLo, regHi, radius, (axis+1)%dim); r != nil {
				best = r
			}
		}
	}

	return best
}

// NearestWithinR implements RangeNearestNeighborsMap.
func (m *Map[K, V, D]) NearestWithinR(query K, r D) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m.root == nil {
			return
		}
		var hits []*node[K, V]
		m.nearestRHelp(query, &hits, r, m.root, m.lower.Clone(), m.upper.Clone(), 0)
		for _, n := range hits {
			if !yield(n.key, n.value) {
				return
			}
		}
	}
}

func (m *Map[K, V, D]) nearestRHelp(query K, hits *[]*node[K, V], r D, n *node[K, V], regLo, regHi K, axis int) {
	if m.metric.Distance(query, n.key) <= r {
		*hits = append(*hits, n)
	}

	dim := query.Dimension()
	isLeft := query.Compare(n.key, axis) < 0
	near, far := 1, 0
	if isLeft {
		near, far = 0, 1
	}
	newAxis := (axis + 1) % dim

	if child := n.children[near]; child != nil {
		m.nearestRHelp(query, hits, r, child, regLo.Clone(), regHi.Clone(), newAxis)
	}

	if child := n.children[far]; child != nil {
		if isLeft {
			regLo.Assign(n.key, axis)
		} else {
			regHi.Assign(n.key, axis)
		}
		if m.metric.DistanceToAABB(query, regLo, regHi) <= r {
			m.nearestRHelp(query, hits, r, child, regLo, regHi, newAxis)
		}
	}
}
