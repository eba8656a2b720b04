package internal

// Convert triangles into a flat edge list. Triangle (i, j, k) contributes
// (i, j), (j, k), (k, i), in that order, and an edge's position in the result is
// its id for the rest of the pipeline.
//
// Edges shared by neighboring triangles are NOT deduplicated. Each copy is an
// independent edge and is separately eligible for crossing detection, so a
// single geometric crossing against a shared edge is reported once per copy.
//
// Every index must be in [0, n). An out of range index throws an *IndexError.
func ExtractEdges(triangles []Triangle, n int) []Edge {
	edges := make([]Edge, 0, len(triangles)*3)
	for t, triangle := range triangles {
		for i, index := range triangle {
			if index < 0 || index >= n {
				throw(&IndexError{Triangle: t, Index: index, Len: n})
			}
			next := triangle[CircularIndex(i+1, len(triangle))]
			edges = append(edges, Edge{index, next})
		}
	}
	return edges
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}
