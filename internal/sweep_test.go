package internal

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildEvents(t *testing.T) {
	points := PointSet{{0, 0}, {10, 5}, {4, 8}, {4, 1}}
	edges := []Edge{
		{1, 0}, // Reversed: the smaller X endpoint still starts
		{2, 3}, // Vertical: both events at the same X
		{0, 2},
	}

	events := BuildEvents(edges, points)
	assert.Equal(t, []SweepEvent{
		{0, 0, Start},
		{0, 2, Start},
		{4, 1, Start},
		{4, 1, End},
		{4, 2, End},
		{10, 0, End},
	}, events)
}

func TestActiveSet(t *testing.T) {
	var set ActiveSet
	assert.True(t, set.Empty())
	set.Insert(3)
	set.Insert(1)
	set.Insert(3)
	assert.True(t, set.Contains(1))
	assert.Equal(t, ActiveSet{3, 1, 3}, set)

	// Only the first occurrence goes
	assert.True(t, set.Remove(3))
	assert.Equal(t, ActiveSet{1, 3}, set)
	assert.False(t, set.Remove(7))
	assert.True(t, set.Remove(1))
	assert.True(t, set.Remove(3))
	assert.True(t, set.Empty())
}

func TestSweep_KnownCrossing(t *testing.T) {
	points, triangles := LoadFixture("known_crossing")
	require.Len(t, points, 8)
	require.Len(t, triangles, 6)
	edges := ExtractEdges(triangles, len(points))

	crossings := Sweep(edges, points)
	assert.Equal(t, []Crossing{
		{16, 0}, {16, 5}, {17, 0}, {17, 5}, {1, 16},
		{6, 14}, {6, 15}, {6, 16},
		{9, 14}, {9, 15}, {9, 16},
		{11, 14}, {11, 15}, {11, 16},
	}, crossings)

	t.Run("duplicated edges are reported per copy", func(t *testing.T) {
		// Edges 14 and 15 are both 1-5, shared by the two bridge triangles. They
		// are not merged, so every crossing against 1-5 shows up twice.
		require.Equal(t, Edge{5, 1}, edges[14])
		require.Equal(t, Edge{1, 5}, edges[15])
		for _, other := range []int{6, 9, 11} {
			assert.Contains(t, crossings, Crossing{other, 14})
			assert.Contains(t, crossings, Crossing{other, 15})
		}
	})
}

func TestSweep_KnownClean(t *testing.T) {
	points, triangles := LoadFixture("known_clean")
	edges := ExtractEdges(triangles, len(points))
	assert.Empty(t, Sweep(edges, points))
}

func TestSweep_SharedEndpoints(t *testing.T) {
	t.Run("collinear overlap through a shared index", func(t *testing.T) {
		points := PointSet{{0, 0}, {10, 0}, {5, 0}}
		edges := []Edge{{0, 1}, {2, 0}}
		assert.Empty(t, Sweep(edges, points))
	})

	t.Run("identical duplicates", func(t *testing.T) {
		points := PointSet{{0, 0}, {10, 10}}
		edges := []Edge{{0, 1}, {1, 0}, {0, 1}}
		assert.Empty(t, Sweep(edges, points))
	})

	t.Run("coincident coordinates with different indices still cross", func(t *testing.T) {
		// Points 0 and 4 sit at the same place but are different points, so the
		// edges are compared.
		points := PointSet{{0, 0}, {10, 10}, {0, 10}, {10, 0}, {0, 0}}
		edges := []Edge{{0, 1}, {2, 3}, {4, 1}}
		crossings := Sweep(edges, points)
		assert.ElementsMatch(t, []Crossing{{1, 0}, {2, 1}}, crossings)
	})
}

func TestSweep_ZeroWidthEdges(t *testing.T) {
	// A vertical edge is active for an instant, and must still be compared
	// against everything spanning its X.
	points := PointSet{{5, 0}, {5, 10}, {0, 5}, {10, 5}}
	edges := []Edge{{0, 1}, {2, 3}}
	assert.Equal(t, []Crossing{{0, 1}}, Sweep(edges, points))
}

func TestSweep_OutOfRange(t *testing.T) {
	sweep := func(edges []Edge, points PointSet) (err error) {
		defer func() {
			err = HandlePanicRecover(recover())
		}()
		Sweep(edges, points)
		return nil
	}
	assert.EqualError(t, sweep([]Edge{{0, 2}}, PointSet{{0, 0}, {1, 1}}), "edge 0 (0-2) out of range for 2 points")
}

// The sweep must find exactly what an all pairs comparison finds, with each
// unordered pair reported once.
func TestSweep_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 20; trial++ {
		n := 10 + rng.Intn(40)
		points := make(PointSet, n)
		for i := range points {
			points[i] = Point{rng.Float64() * 100, rng.Float64() * 100}
		}
		triangles := make([]Triangle, 2*n)
		for i := range triangles {
			triangles[i] = Triangle{rng.Intn(n), rng.Intn(n), rng.Intn(n)}
		}
		edges := ExtractEdges(triangles, n)

		crossings := Sweep(edges, points)
		seen := make(map[Crossing]struct{})
		for _, c := range crossings {
			normalized := normalizeCrossing(c)
			_, dup := seen[normalized]
			require.False(t, dup, "pair %v reported twice", c)
			seen[normalized] = struct{}{}
		}
		assert.Equal(t, bruteForceCrossings(edges, points), seen, "trial %d", trial)
	}
}

func normalizeCrossing(c Crossing) Crossing {
	if c.A < c.B {
		return Crossing{c.B, c.A}
	}
	return c
}

func bruteForceCrossings(edges []Edge, points PointSet) map[Crossing]struct{} {
	result := make(map[Crossing]struct{})
	for i, a := range edges {
		for j := 0; j < i; j++ {
			b := edges[j]
			if a.SharesEndpoint(b) {
				continue
			}
			p1, p2 := a.In(points)
			p3, p4 := b.In(points)
			if SegmentsIntersect(p1, p2, p3, p4) {
				result[Crossing{i, j}] = struct{}{}
			}
		}
	}
	return result
}
