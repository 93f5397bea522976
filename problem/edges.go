package problem

import (
	"io"
	"iter"
)

// EdgeData writes the EDGE_DATA_SECTION.
type EdgeData[W io.Writer] struct {
	e *encoder[W]
}

// BeginAdjacency writes the section marker.
func (d EdgeData[W]) BeginAdjacency() EdgeData[W] {
	d.e.literal(stageEdgeData, "EDGE_DATA_SECTION")
	return d
}

// WriteAdjacency writes one `<src+1> <dst+1> ... -1` line per source.
//
// All edges sharing a source must be contiguous in seq. This is not checked:
// a source that reappears after another one starts a second, separate line.
func (d EdgeData[W]) WriteAdjacency(seq iter.Seq[Edge]) EdgeData[W] {
	e := d.e
	if !e.at(stageEdgeData) {
		return d
	}

	open := false
	var current Node
	for edge := range seq {
		if open && edge[0] != current {
			e.line.WriteString(" -1\n")
			e.flush()
			open = false
		}
		if e.err != nil {
			return d
		}
		if !open {
			e.appendUint(uint64(edge[0]) + 1)
			current, open = edge[0], true
		}
		e.line.WriteByte(' ')
		e.appendUint(uint64(edge[1]) + 1)
	}
	if open {
		e.line.WriteString(" -1\n")
		e.flush()
	}
	return d
}

// WriteEdgeList writes one `<a+1> <b+1>` line per edge, for EDGE_LIST data.
func (d EdgeData[W]) WriteEdgeList(seq iter.Seq[Edge]) EdgeData[W] {
	e := d.e
	for edge := range seq {
		if !e.at(stageEdgeData) {
			break
		}
		e.appendUint(uint64(edge[0]) + 1)
		e.line.WriteByte(' ')
		e.appendUint(uint64(edge[1]) + 1)
		e.line.WriteByte('\n')
		e.flush()
	}
	return d
}

// EndEdgeData writes the `-1` line that closes the whole section.
func (d EdgeData[W]) EndEdgeData() EdgeData[W] {
	d.e.literal(stageEdgeData, "-1")
	return d
}

// FixedEdges ends the edge data section.
func (d EdgeData[W]) FixedEdges() FixedEdges[W] {
	d.e.advance(stageEdgeData, stageFixedEdges)
	return FixedEdges[W]{e: d.e}
}

// Finish returns the sink and the first error.
func (d EdgeData[W]) Finish() (W, error) { return d.e.finish(stageEdgeData) }

// EOF writes the EOF terminator, then finishes.
func (d EdgeData[W]) EOF() (W, error) { return d.e.eof(stageEdgeData) }
