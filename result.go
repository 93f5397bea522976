package tspio

import (
	"encoding/json"
	"io"
	"time"

	gojson "github.com/goccy/go-json"
)

// Result is the outcome of one solve.
type Result struct {
	// Dimension as reported in the tour file.
	Dimension uint32 `json:"dimension"`
	// Tour lists 0-based node indices in visiting order.
	Tour []Node `json:"tour"`
	// ProblemBytes is the size of the encoded problem.
	ProblemBytes int `json:"problem_bytes"`
	// Elapsed is the wall time of the whole solve, solver run included.
	Elapsed time.Duration `json:"elapsed_ns"`
}

// Codec serializes results. Encoded results carry no codec marker; decode
// with the codec that encoded them.
// Implementations must be safe for concurrent use.
type Codec interface {
	// AppendResult encodes r and appends it to dst. A nil r encodes as null.
	AppendResult(dst []byte, r *Result) ([]byte, error)
	DecodeResult(data []byte) (*Result, error)
	Name() string
}

// JSONCodec encodes results with encoding/json.
//
// Use it when the documents are consumed by tools that are picky about number
// formatting; GoJSONCodec produces equivalent documents faster.
type JSONCodec struct{}

// AppendResult implements Codec.
func (JSONCodec) AppendResult(dst []byte, r *Result) ([]byte, error) {
	b, err := json.Marshal(r)
	if err != nil {
		return dst, err
	}
	return append(dst, b...), nil
}

// DecodeResult implements Codec.
func (JSONCodec) DecodeResult(data []byte) (*Result, error) {
	var r Result
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// Name returns "json".
func (JSONCodec) Name() string { return "json" }

// GoJSONCodec encodes results with github.com/goccy/go-json. It is the
// default codec.
type GoJSONCodec struct{}

// AppendResult implements Codec.
func (GoJSONCodec) AppendResult(dst []byte, r *Result) ([]byte, error) {
	b, err := gojson.Marshal(r)
	if err != nil {
		return dst, err
	}
	return append(dst, b...), nil
}

// DecodeResult implements Codec.
func (GoJSONCodec) DecodeResult(data []byte) (*Result, error) {
	var r Result
	if err := gojson.Unmarshal(data, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// Name returns "go-json".
func (GoJSONCodec) Name() string { return "go-json" }

// DefaultCodec is used wherever a nil Codec is passed.
var DefaultCodec Codec = GoJSONCodec{}

// CodecByName returns a built-in codec by the name it reports.
func CodecByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSONCodec{}, true
	case "go-json":
		return GoJSONCodec{}, true
	default:
		return nil, false
	}
}

// Encode serializes the result with c, or DefaultCodec when c is nil.
func (r *Result) Encode(c Codec) ([]byte, error) {
	if c == nil {
		c = DefaultCodec
	}
	return c.AppendResult(nil, r)
}

// DecodeResult is the inverse of Result.Encode.
func DecodeResult(c Codec, data []byte) (*Result, error) {
	if c == nil {
		c = DefaultCodec
	}
	return c.DecodeResult(data)
}

// WriteResults writes results as JSON Lines, one document per result in
// input order. Failed jobs of a batch (nil entries) are written as null so
// line numbers keep matching job indices.
func WriteResults(w io.Writer, c Codec, results []*Result) error {
	if c == nil {
		c = DefaultCodec
	}

	var buf []byte
	for _, r := range results {
		var err error
		if buf, err = c.AppendResult(buf, r); err != nil {
			return err
		}
		buf = append(buf, '\n')
	}

	_, err := w.Write(buf)
	return err
}
