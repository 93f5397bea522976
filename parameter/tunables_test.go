package parameter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadYAML(t *testing.T) {
	src := `
# solver tunables
population_size: 128
RUNS: 10
MOVE_TYPE: 5
PATCHING_C: 3
`
	got, err := LoadYAML(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, Tunables{
		{Key: "POPULATION_SIZE", Value: "128"},
		{Key: "RUNS", Value: "10"},
		{Key: "MOVE_TYPE", Value: "5"},
		{Key: "PATCHING_C", Value: "3"},
	}, got)

	var buf bytes.Buffer
	n, err := got.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, "POPULATION_SIZE = 128\nRUNS = 10\nMOVE_TYPE = 5\nPATCHING_C = 3\n", buf.String())
	assert.Equal(t, int64(buf.Len()), n)
}

func TestLoadYAML_Empty(t *testing.T) {
	got, err := LoadYAML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoadYAML_Rejects(t *testing.T) {
	tests := map[string]string{
		"sequence":  "- RUNS\n- 10\n",
		"nested":    "RUNS:\n  value: 10\n",
		"reserved":  "TOUR_FILE: /tmp/x\n",
		"duplicate": "RUNS: 1\nruns: 2\n",
		"bad key":   "\"TWO WORDS\": 1\n",
		"malformed": "RUNS: [1\n",
	}
	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadYAML(strings.NewReader(src))
			assert.Error(t, err)
		})
	}

	_, err := LoadYAML(strings.NewReader("problem_file: a.tsp\n"))
	assert.ErrorIs(t, err, ErrReservedKey)
}

func TestTunables_With(t *testing.T) {
	base := DefaultTunables()

	updated := base.With("RUNS", "1").With("POPULATION_SIZE", "64")
	assert.Equal(t, Tunables{
		{Key: "POPULATION_SIZE", Value: "64"},
		{Key: "RUNS", Value: "1"},
	}, updated)

	// The receiver is untouched
	v, ok := base.Get("POPULATION_SIZE")
	require.True(t, ok)
	assert.Equal(t, "256", v)
	_, ok = base.Get("RUNS")
	assert.False(t, ok)
}
