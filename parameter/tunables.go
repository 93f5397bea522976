package parameter

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrReservedKey is returned when tunables try to set a path key the
// pipeline owns.
var ErrReservedKey = errors.New("parameter: reserved key")

// Pair is one tunable.
type Pair struct {
	Key   string
	Value string
}

// Tunables is an ordered list of solver settings.
type Tunables []Pair

// DefaultTunables returns the settings used when none are configured.
func DefaultTunables() Tunables {
	return Tunables{{Key: "POPULATION_SIZE", Value: "256"}}
}

// Get returns the value of key.
func (t Tunables) Get(key string) (string, bool) {
	for _, p := range t {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// With returns a copy of t with key set to value. An existing key keeps its
// position.
func (t Tunables) With(key, value string) Tunables {
	out := make(Tunables, len(t), len(t)+1)
	copy(out, t)
	for i := range out {
		if out[i].Key == key {
			out[i].Value = value
			return out
		}
	}
	return append(out, Pair{Key: key, Value: value})
}

// Validate checks every pair for line safety and reserved keys.
func (t Tunables) Validate() error {
	for _, p := range t {
		if p.Key == KeyProblemFile || p.Key == KeyTourFile {
			return fmt.Errorf("%w: %s", ErrReservedKey, p.Key)
		}
		if err := checkPair(p.Key, p.Value); err != nil {
			return err
		}
	}
	return nil
}

// WriteTo writes the tunables as `KEY = value` lines.
func (t Tunables) WriteTo(w io.Writer) (int64, error) {
	pw := NewWriter(w).Tunables(t)
	return pw.Written(), pw.Err()
}

// LoadYAML reads tunables from a YAML mapping of scalar values. Keys are
// upper-cased; document order is kept.
func LoadYAML(r io.Reader) (Tunables, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Tunables{}, nil
		}
		return nil, fmt.Errorf("parameter: decode yaml: %w", err)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("parameter: line %d: tunables must be a mapping", root.Line)
	}

	t := make(Tunables, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		k, v := root.Content[i], root.Content[i+1]
		if v.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("parameter: line %d: %s must be a scalar", v.Line, k.Value)
		}
		key := strings.ToUpper(k.Value)
		if _, dup := t.Get(key); dup {
			return nil, fmt.Errorf("parameter: line %d: duplicate key %s", k.Line, key)
		}
		t = append(t, Pair{Key: key, Value: v.Value})
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}
