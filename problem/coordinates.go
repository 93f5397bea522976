package problem

import (
	"io"
	"iter"
)

// Coordinates writes the NODE_COORD_SECTION.
type Coordinates[W io.Writer] struct {
	e *encoder[W]
}

// BeginNodeCoordinates writes the section marker.
func (c Coordinates[W]) BeginNodeCoordinates() Coordinates[W] {
	c.e.literal(stageCoordinates, "NODE_COORD_SECTION")
	return c
}

// WriteCoordinate writes `<index+1> <c1> ... <cN>`. Components use scientific
// notation with ten fractional digits, the precision LKH reads back exactly.
func (c Coordinates[W]) WriteCoordinate(index int, coordinate []float32) Coordinates[W] {
	e := c.e
	if !e.at(stageCoordinates) {
		return c
	}
	e.appendUint(uint64(index) + 1)
	for _, v := range coordinate {
		e.line.WriteByte(' ')
		e.appendFloat(v)
	}
	e.line.WriteByte('\n')
	e.flush()
	return c
}

// WriteCoordinates writes every coordinate of seq, numbered by position.
func (c Coordinates[W]) WriteCoordinates(seq iter.Seq[[]float32]) Coordinates[W] {
	i := 0
	for coordinate := range seq {
		if c.e.err != nil {
			break
		}
		c = c.WriteCoordinate(i, coordinate)
		i++
	}
	return c
}

// EdgeData ends the coordinates section.
func (c Coordinates[W]) EdgeData() EdgeData[W] {
	c.e.advance(stageCoordinates, stageEdgeData)
	return EdgeData[W]{e: c.e}
}

// FixedEdges skips the edge data section.
func (c Coordinates[W]) FixedEdges() FixedEdges[W] {
	c.e.advance(stageCoordinates, stageFixedEdges)
	return FixedEdges[W]{e: c.e}
}

// Finish returns the sink and the first error.
func (c Coordinates[W]) Finish() (W, error) { return c.e.finish(stageCoordinates) }

// EOF writes the EOF terminator, then finishes.
func (c Coordinates[W]) EOF() (W, error) { return c.e.eof(stageCoordinates) }
