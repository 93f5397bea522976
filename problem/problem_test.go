package problem

import (
	"bytes"
	"errors"
	"reflect"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hupe1980/tspio/pool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeader_Keywords(t *testing.T) {
	var buf bytes.Buffer

	_, err := New(&buf).
		Header().
		Name("demo").
		Comment("two pairs").
		Type(TSP).
		Dimension(4).
		Capacity(10).
		EdgeWeightType(Euc2D).
		EdgeWeightFormat(Function).
		EdgeDataFormat(AdjList).
		NodeCoordType(TwoDCoords).
		DisplayDataType(CoordDisplay).
		Finish()
	require.NoError(t, err)

	want := "NAME: demo\n" +
		"COMMENT: two pairs\n" +
		"TYPE: TSP\n" +
		"DIMENSION: 4\n" +
		"CAPACITY: 10\n" +
		"EDGE_WEIGHT_TYPE: EUC_2D\n" +
		"EDGE_WEIGHT_FORMAT: FUNCTION\n" +
		"EDGE_DATA_FORMAT: ADJ_LIST\n" +
		"NODE_COORD_TYPE: TWOD_COORDS\n" +
		"DISPLAY_DATA_TYPE: COORD_DISPLAY\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("header mismatch (-want +got):\n%s", diff)
	}
}

func TestHeader_RejectsLineBreaks(t *testing.T) {
	var buf bytes.Buffer

	_, err := New(&buf).Header().Name("a\nTYPE: ATSP").Dimension(3).Finish()
	assert.ErrorIs(t, err, ErrInvalidValue)
	assert.Empty(t, buf.String())
}

func TestCoordinates_Format(t *testing.T) {
	var buf bytes.Buffer

	_, err := New(&buf).
		Header().
		Coordinates().
		BeginNodeCoordinates().
		WriteCoordinate(0, []float32{549.5, 29.25}).
		WriteCoordinate(9, []float32{0, -1.5, 100}).
		Finish()
	require.NoError(t, err)

	want := "NODE_COORD_SECTION\n" +
		"1 5.4950000000e+02 2.9250000000e+01\n" +
		"10 0.0000000000e+00 -1.5000000000e+00 1.0000000000e+02\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("coordinates mismatch (-want +got):\n%s", diff)
	}
}

func TestCoordinates_WriteCoordinatesNumbersByPosition(t *testing.T) {
	var buf bytes.Buffer
	points := []Point2{{0, 0}, {1, 0}, {1, 1}}

	_, err := New(&buf).
		Header().
		Coordinates().
		WriteCoordinates(func(yield func([]float32) bool) {
			for _, p := range points {
				if !yield(p[:]) {
					return
				}
			}
		}).
		Finish()
	require.NoError(t, err)

	want := "1 0.0000000000e+00 0.0000000000e+00\n" +
		"2 1.0000000000e+00 0.0000000000e+00\n" +
		"3 1.0000000000e+00 1.0000000000e+00\n"
	assert.Equal(t, want, buf.String())
}

func TestEdgeData_Adjacency(t *testing.T) {
	var buf bytes.Buffer

	_, err := New(&buf).
		Header().
		Coordinates().
		EdgeData().
		BeginAdjacency().
		WriteAdjacency(slices.Values([]Edge{{0, 1}, {0, 2}, {1, 3}})).
		Finish()
	require.NoError(t, err)

	assert.Equal(t, "EDGE_DATA_SECTION\n1 2 3 -1\n2 4 -1\n", buf.String())
}

func TestEdgeData_AdjacencyNonContiguousIsNotRejected(t *testing.T) {
	var buf bytes.Buffer

	_, err := New(&buf).
		Header().
		Coordinates().
		EdgeData().
		WriteAdjacency(slices.Values([]Edge{{0, 1}, {1, 2}, {0, 2}})).
		Finish()
	require.NoError(t, err)

	// Node 1 (on disk) gets two separate blocks
	assert.Equal(t, "1 2 -1\n2 3 -1\n1 3 -1\n", buf.String())
}

func TestEdgeData_EmptyAndEdgeList(t *testing.T) {
	var buf bytes.Buffer

	_, err := New(&buf).
		Header().
		EdgeDataFormat(EdgeList).
		Coordinates().
		EdgeData().
		BeginAdjacency().
		WriteAdjacency(slices.Values([]Edge(nil))).
		WriteEdgeList(slices.Values([]Edge{{0, 1}, {2, 0}})).
		EndEdgeData().
		Finish()
	require.NoError(t, err)

	assert.Equal(t, "EDGE_DATA_FORMAT: EDGE_LIST\nEDGE_DATA_SECTION\n1 2\n3 1\n-1\n", buf.String())
}

func TestFixedEdges_WrittenVerbatim(t *testing.T) {
	var buf bytes.Buffer

	_, err := New(&buf).
		Header().
		Coordinates().
		EdgeData().
		FixedEdges().
		BeginFixedEdges().
		WriteFixedEdges(slices.Values([]Edge{{1, 2}, {3, 4}})).
		EndFixedEdges().
		Finish()
	require.NoError(t, err)

	// No +1 shift, unlike coordinates and edge data
	assert.Equal(t, "FIXED_EDGES_SECTION\n1 2\n3 4\n-1\n", buf.String())
}

func TestEOF(t *testing.T) {
	var buf bytes.Buffer

	sink, err := New(&buf).
		Header().
		Dimension(1).
		Coordinates().
		BeginNodeCoordinates().
		WriteCoordinate(0, []float32{1, 2}).
		FixedEdges().
		EOF()
	require.NoError(t, err)
	assert.Same(t, &buf, sink)

	assert.Equal(t, "DIMENSION: 1\nNODE_COORD_SECTION\n1 1.0000000000e+00 2.0000000000e+00\nEOF\n", buf.String())
}

func TestStaleStageIsRejected(t *testing.T) {
	var buf bytes.Buffer

	header := New(&buf).Header().Dimension(2)
	coords := header.Coordinates().BeginNodeCoordinates()

	// Reusing the header value after moving on
	header.Name("late")
	_, err := coords.Finish()
	require.ErrorIs(t, err, ErrStageOrder)
	assert.NotContains(t, buf.String(), "NAME")

	// Finished encoders stay finished
	var buf2 bytes.Buffer
	h := New(&buf2).Header()
	_, err = h.Finish()
	require.NoError(t, err)
	_, err = h.Name("again").Finish()
	assert.ErrorIs(t, err, ErrFinished)
	assert.Empty(t, buf2.String())
}

type failingWriter struct {
	budget int
}

var errDiskFull = errors.New("disk full")

func (w *failingWriter) Write(p []byte) (int, error) {
	if len(p) > w.budget {
		n := w.budget
		w.budget = 0
		return n, errDiskFull
	}
	w.budget -= len(p)
	return len(p), nil
}

func TestStickyWriteError(t *testing.T) {
	w := &failingWriter{budget: 20}

	p := New(w)
	_, err := p.Header().
		Name("abcdefgh").   // 15 bytes
		Dimension(100000). // 18 bytes, fails after 5
		Comment("never").
		Coordinates().
		WriteCoordinate(0, []float32{1, 2}).
		Finish()

	require.ErrorIs(t, err, errDiskFull)
	assert.Equal(t, int64(20), p.Written())
}

func TestWithPool(t *testing.T) {
	bp := pool.New(1, 64)
	var buf bytes.Buffer

	_, err := New(&buf, WithPool(bp)).Header().Name("pooled").Finish()
	require.NoError(t, err)

	stats := bp.Stats()
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, 1, stats.Idle)

	_, err = New(&buf, WithPool(bp)).Header().Name("again").Finish()
	require.NoError(t, err)
	assert.Equal(t, int64(1), bp.Stats().Hits)
	assert.Equal(t, "NAME: pooled\nNAME: again\n", buf.String())
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "CVRP", CVRP.String())
	assert.Equal(t, "CEIL_2D", Ceil2D.String())
	assert.Equal(t, "LOWER_DIAG_COL", LowerDiagCol.String())
	assert.Equal(t, "EDGE_LIST", EdgeList.String())
	assert.Equal(t, "THREED_COORDS", ThreeDCoords.String())
	assert.Equal(t, "NO_DISPLAY", NoDisplay.String())
	assert.Equal(t, "Kind(42)", Kind(42).String())
	assert.Equal(t, "EdgeWeightType(-1)", EdgeWeightType(-1).String())
}

// Section order is a property of the stage types: each stage lacks the
// methods of the stages before it and any way back to them.
func TestStageMethodSets(t *testing.T) {
	type buf = *bytes.Buffer

	headerOnly := []string{"Name", "Comment", "Type", "Dimension", "Capacity", "EdgeWeightType",
		"EdgeWeightFormat", "EdgeDataFormat", "NodeCoordType", "DisplayDataType"}
	coordinateOnly := []string{"BeginNodeCoordinates", "WriteCoordinate", "WriteCoordinates"}
	edgeDataOnly := []string{"BeginAdjacency", "WriteAdjacency", "WriteEdgeList", "EndEdgeData"}
	fixedOnly := []string{"BeginFixedEdges", "WriteFixedEdges", "EndFixedEdges"}

	cases := []struct {
		stage   any
		missing [][]string
		back    []string
	}{
		{Problem[buf]{}, [][]string{headerOnly, coordinateOnly, edgeDataOnly, fixedOnly}, nil},
		{Header[buf]{}, [][]string{coordinateOnly, edgeDataOnly, fixedOnly}, []string{"Header", "EdgeData", "FixedEdges"}},
		{Coordinates[buf]{}, [][]string{headerOnly, edgeDataOnly, fixedOnly}, []string{"Header", "Coordinates"}},
		{EdgeData[buf]{}, [][]string{headerOnly, coordinateOnly, fixedOnly}, []string{"Header", "Coordinates", "EdgeData"}},
		{FixedEdges[buf]{}, [][]string{headerOnly, coordinateOnly, edgeDataOnly}, []string{"Header", "Coordinates", "EdgeData", "FixedEdges"}},
	}

	for _, tc := range cases {
		typ := reflect.TypeOf(tc.stage)
		t.Run(typ.Name(), func(t *testing.T) {
			for _, group := range tc.missing {
				for _, name := range group {
					_, ok := typ.MethodByName(name)
					assert.False(t, ok, "%s must not expose %s", typ, name)
				}
			}
			for _, name := range tc.back {
				_, ok := typ.MethodByName(name)
				assert.False(t, ok, "%s must not lead to %s", typ, name)
			}
		})
	}
}
