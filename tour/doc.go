// Package tour reads the tour file an LKH-style solver writes on success.
//
// The file is plain text: a header of `KEY : value` lines followed by a
// TOUR_SECTION listing 1-based node indices, one per line, terminated by -1.
//
//	data, err := tour.ReadFile(ctx, path, tour.WithPool(bufPool))
//	if err != nil {
//	    return err
//	}
//	defer data.Release()
//
//	p := data.Parser()
//	dim, err := p.Dimension()
//	...
//	nodes, err := p.Tour() // 0-based, in solver order
//
// A Parser only moves forward. Dimension must be requested before Tour
// because DIMENSION precedes TOUR_SECTION in the file; asking for a keyword
// that has already been passed reports it as not found.
package tour
