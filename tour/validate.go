package tour

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Validate checks that nodes visits each of the dimension nodes exactly once.
func Validate(nodes []Node, dimension uint32) error {
	if uint64(len(nodes)) != uint64(dimension) {
		return fmt.Errorf("%w: %d nodes for dimension %d", ErrInvalidTour, len(nodes), dimension)
	}

	seen := bitset.New(uint(dimension))
	for i, n := range nodes {
		if n >= dimension {
			return fmt.Errorf("%w: node %d at position %d out of range", ErrInvalidTour, n, i)
		}
		if seen.Test(uint(n)) {
			return fmt.Errorf("%w: node %d visited twice", ErrInvalidTour, n)
		}
		seen.Set(uint(n))
	}
	return nil
}
