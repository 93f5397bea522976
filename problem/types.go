package problem

import "strconv"

// Node identifies a point. It is 0-based in the API.
type Node = uint32

// Edge is an ordered pair of nodes.
type Edge = [2]Node

// Point2 is a planar coordinate. Pass it as p[:].
type Point2 = [2]float32

// Point3 is a spatial coordinate. Pass it as p[:].
type Point3 = [3]float32

// Kind is the TYPE of a problem file.
type Kind int

const (
	// TSP is data for a symmetric traveling salesman problem.
	TSP Kind = iota
	// ATSP is data for an asymmetric traveling salesman problem.
	ATSP
	// SOP is data for a sequential ordering problem.
	SOP
	// HCP is Hamiltonian cycle problem data.
	HCP
	// CVRP is capacitated vehicle routing problem data.
	CVRP
	// TOUR is a collection of tours.
	TOUR
)

var kindNames = [...]string{"TSP", "ATSP", "SOP", "HCP", "CVRP", "TOUR"}

func (k Kind) String() string { return enumName(kindNames[:], int(k), "Kind") }

// EdgeWeightType specifies how edge weights (distances) are given.
type EdgeWeightType int

const (
	// Explicit weights are listed in the corresponding section.
	Explicit EdgeWeightType = iota
	// Euc2D weights are Euclidean distances in 2-D.
	Euc2D
	// Euc3D weights are Euclidean distances in 3-D.
	Euc3D
	// Max2D weights are maximum distances in 2-D.
	Max2D
	// Max3D weights are maximum distances in 3-D.
	Max3D
	// Man2D weights are Manhattan distances in 2-D.
	Man2D
	// Man3D weights are Manhattan distances in 3-D.
	Man3D
	// Ceil2D weights are Euclidean distances in 2-D rounded up.
	Ceil2D
	// Geo weights are geographical distances.
	Geo
	// Att is the special distance function for problems att48 and att532.
	Att
	// XRay1 is the crystallography distance function, version 1.
	XRay1
	// XRay2 is the crystallography distance function, version 2.
	XRay2
	// Special is a distance function documented elsewhere.
	Special
)

var edgeWeightTypeNames = [...]string{
	"EXPLICIT", "EUC_2D", "EUC_3D", "MAX_2D", "MAX_3D", "MAN_2D", "MAN_3D",
	"CEIL_2D", "GEO", "ATT", "XRAY1", "XRAY2", "SPECIAL",
}

func (t EdgeWeightType) String() string {
	return enumName(edgeWeightTypeNames[:], int(t), "EdgeWeightType")
}

// EdgeWeightFormat describes the layout of explicit weights.
type EdgeWeightFormat int

const (
	// Function weights are given by a function.
	Function EdgeWeightFormat = iota
	// FullMatrix weights are given by a full matrix.
	FullMatrix
	// UpperRow is an upper triangular matrix, row-wise without diagonal.
	UpperRow
	// LowerRow is a lower triangular matrix, row-wise without diagonal.
	LowerRow
	// UpperDiagRow is an upper triangular matrix, row-wise with diagonal.
	UpperDiagRow
	// LowerDiagRow is a lower triangular matrix, row-wise with diagonal.
	LowerDiagRow
	// UpperCol is an upper triangular matrix, column-wise without diagonal.
	UpperCol
	// LowerCol is a lower triangular matrix, column-wise without diagonal.
	LowerCol
	// UpperDiagCol is an upper triangular matrix, column-wise with diagonal.
	UpperDiagCol
	// LowerDiagCol is a lower triangular matrix, column-wise with diagonal.
	LowerDiagCol
)

var edgeWeightFormatNames = [...]string{
	"FUNCTION", "FULL_MATRIX", "UPPER_ROW", "LOWER_ROW", "UPPER_DIAG_ROW",
	"LOWER_DIAG_ROW", "UPPER_COL", "LOWER_COL", "UPPER_DIAG_COL", "LOWER_DIAG_COL",
}

func (f EdgeWeightFormat) String() string {
	return enumName(edgeWeightFormatNames[:], int(f), "EdgeWeightFormat")
}

// EdgeDataFormat describes the EDGE_DATA_SECTION layout.
type EdgeDataFormat int

const (
	// AdjList gives the graph as adjacency lists. It is the zero value.
	AdjList EdgeDataFormat = iota
	// EdgeList gives the graph as an edge list.
	EdgeList
)

var edgeDataFormatNames = [...]string{"ADJ_LIST", "EDGE_LIST"}

func (f EdgeDataFormat) String() string {
	return enumName(edgeDataFormatNames[:], int(f), "EdgeDataFormat")
}

// NodeCoordType describes the dimensionality of node coordinates.
type NodeCoordType int

const (
	// NoCoords means nodes have no spatial coordinates. It is the zero value.
	NoCoords NodeCoordType = iota
	// TwoDCoords means nodes are specified by 2-D coordinates.
	TwoDCoords
	// ThreeDCoords means nodes are specified by 3-D coordinates.
	ThreeDCoords
)

var nodeCoordTypeNames = [...]string{"NO_COORDS", "TWOD_COORDS", "THREED_COORDS"}

func (t NodeCoordType) String() string {
	return enumName(nodeCoordTypeNames[:], int(t), "NodeCoordType")
}

// DisplayDataType describes how a graphical display may be produced.
type DisplayDataType int

const (
	// CoordDisplay derives the display from node coordinates. It is the zero value.
	CoordDisplay DisplayDataType = iota
	// TwoDDisplay means explicit 2-D display coordinates are given.
	TwoDDisplay
	// NoDisplay means no graphical display is possible.
	NoDisplay
)

var displayDataTypeNames = [...]string{"COORD_DISPLAY", "TWOD_DISPLAY", "NO_DISPLAY"}

func (t DisplayDataType) String() string {
	return enumName(displayDataTypeNames[:], int(t), "DisplayDataType")
}

func enumName(names []string, v int, typ string) string {
	if v >= 0 && v < len(names) {
		return names[v]
	}
	return typ + "(" + strconv.Itoa(v) + ")"
}
