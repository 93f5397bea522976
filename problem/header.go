package problem

import (
	"io"
	"strconv"
)

// Header writes the specification part, one `KEY: value` line per call.
type Header[W io.Writer] struct {
	e *encoder[W]
}

// Name identifies the data file.
func (h Header[W]) Name(name string) Header[W] {
	h.e.keyword("NAME", name)
	return h
}

// Comment adds a free-form comment line.
func (h Header[W]) Comment(comment string) Header[W] {
	h.e.keyword("COMMENT", comment)
	return h
}

// Type specifies the kind of problem.
func (h Header[W]) Type(kind Kind) Header[W] {
	h.e.keyword("TYPE", kind.String())
	return h
}

// Dimension is the number of nodes (for a CVRP, nodes plus depots). It must
// equal the number of coordinates written afterwards; this is not checked.
func (h Header[W]) Dimension(dimension uint32) Header[W] {
	h.e.keyword("DIMENSION", strconv.FormatUint(uint64(dimension), 10))
	return h
}

// Capacity specifies the truck capacity in a CVRP.
func (h Header[W]) Capacity(capacity uint32) Header[W] {
	h.e.keyword("CAPACITY", strconv.FormatUint(uint64(capacity), 10))
	return h
}

// EdgeWeightType specifies how edge weights are given.
func (h Header[W]) EdgeWeightType(t EdgeWeightType) Header[W] {
	h.e.keyword("EDGE_WEIGHT_TYPE", t.String())
	return h
}

// EdgeWeightFormat describes the layout of explicit weights.
func (h Header[W]) EdgeWeightFormat(f EdgeWeightFormat) Header[W] {
	h.e.keyword("EDGE_WEIGHT_FORMAT", f.String())
	return h
}

// EdgeDataFormat describes the EDGE_DATA_SECTION layout.
func (h Header[W]) EdgeDataFormat(f EdgeDataFormat) Header[W] {
	h.e.keyword("EDGE_DATA_FORMAT", f.String())
	return h
}

// NodeCoordType describes the dimensionality of node coordinates.
func (h Header[W]) NodeCoordType(t NodeCoordType) Header[W] {
	h.e.keyword("NODE_COORD_TYPE", t.String())
	return h
}

// DisplayDataType describes how a display may be produced.
func (h Header[W]) DisplayDataType(t DisplayDataType) Header[W] {
	h.e.keyword("DISPLAY_DATA_TYPE", t.String())
	return h
}

// Coordinates ends the header. There is no way back.
func (h Header[W]) Coordinates() Coordinates[W] {
	h.e.advance(stageHeader, stageCoordinates)
	return Coordinates[W]{e: h.e}
}

// Finish returns the sink and the first error.
func (h Header[W]) Finish() (W, error) { return h.e.finish(stageHeader) }

// EOF writes the EOF terminator, then finishes.
func (h Header[W]) EOF() (W, error) { return h.e.eof(stageHeader) }
