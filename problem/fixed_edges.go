package problem

import (
	"io"
	"iter"
)

// FixedEdges writes the FIXED_EDGES_SECTION: edges that must appear in the tour.
type FixedEdges[W io.Writer] struct {
	e *encoder[W]
}

// BeginFixedEdges writes the section marker.
func (f FixedEdges[W]) BeginFixedEdges() FixedEdges[W] {
	f.e.literal(stageFixedEdges, "FIXED_EDGES_SECTION")
	return f
}

// WriteFixedEdges writes one `<a> <b>` line per edge.
//
// Unlike coordinates and edge data, the indices are written exactly as given,
// with no +1 shift. Pass 1-based node numbers.
func (f FixedEdges[W]) WriteFixedEdges(seq iter.Seq[Edge]) FixedEdges[W] {
	e := f.e
	for edge := range seq {
		if !e.at(stageFixedEdges) {
			break
		}
		e.appendUint(uint64(edge[0]))
		e.line.WriteByte(' ')
		e.appendUint(uint64(edge[1]))
		e.line.WriteByte('\n')
		e.flush()
	}
	return f
}

// EndFixedEdges writes the `-1` line that closes the section.
func (f FixedEdges[W]) EndFixedEdges() FixedEdges[W] {
	f.e.literal(stageFixedEdges, "-1")
	return f
}

// Finish returns the sink and the first error.
func (f FixedEdges[W]) Finish() (W, error) { return f.e.finish(stageFixedEdges) }

// EOF writes the EOF terminator, then finishes.
func (f FixedEdges[W]) EOF() (W, error) { return f.e.eof(stageFixedEdges) }
