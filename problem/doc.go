// Package problem encodes TSPLIB problem text for the LKH solver.
//
// The encoder is a typestate builder. Each section of the format is a
// distinct type that only exposes the calls legal at that position:
//
//	Problem -> Header -> Coordinates -> EdgeData -> FixedEdges -> sink
//
// so writing a header line after coordinates, or coordinates after fixed
// edges, does not compile. Transitions are one-way. A stale stage value that
// is used after its successor was taken fails with ErrStageOrder.
//
// Errors are sticky, in the manner of bufio.Writer: the first write error
// stops all further output and is returned by Finish or EOF.
//
//	sink, err := problem.New(&buf).
//	    Header().
//	    Type(problem.TSP).
//	    Dimension(3).
//	    EdgeWeightType(problem.Euc2D).
//	    Coordinates().
//	    BeginNodeCoordinates().
//	    WriteCoordinates(slices.Values(points)).
//	    EOF()
//
// # Indexing
//
// Nodes are 0-based in the API. Coordinate and edge-data indices are written
// 1-based. Fixed edges are written verbatim, without the shift: callers pass
// 1-based pairs there. This asymmetry is long-standing output behavior and is
// kept as is.
package problem
