// Package parameter writes LKH parameter files.
//
// A parameter file is a list of `KEY = value` lines. PROBLEM_FILE names the
// problem to solve and TOUR_FILE where the best tour goes; everything else is
// a solver tunable. Tunables can be kept in YAML:
//
//	POPULATION_SIZE: 256
//	RUNS: 10
//	MOVE_TYPE: 5
//
// Key order is preserved from the YAML document to the written file.
package parameter
