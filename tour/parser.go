package tour

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Node is a 0-based node index.
type Node = uint32

const (
	keyDimension   = "DIMENSION"
	keyTourSection = "TOUR_SECTION"
	sentinel       = "-1"
)

// Parser is a forward-only cursor over the lines of a tour file.
type Parser struct {
	sc  *bufio.Scanner
	err error
}

// NewParser returns a parser reading lines from r.
func NewParser(r io.Reader) *Parser {
	return &Parser{sc: bufio.NewScanner(r)}
}

func (p *Parser) next() (string, bool) {
	if p.err != nil {
		return "", false
	}
	if !p.sc.Scan() {
		p.err = p.sc.Err()
		return "", false
	}
	return p.sc.Text(), true
}

// Parse advances to the first line starting with keyword and returns its
// value: the text after the first ':' (or, failing that, the first '='),
// trimmed. Lines without a separator yield the whole trimmed line. Lines
// passed over are consumed.
func (p *Parser) Parse(keyword string) (string, error) {
	for {
		line, ok := p.next()
		if !ok {
			break
		}
		if !strings.HasPrefix(line, keyword) {
			continue
		}
		if i := strings.IndexByte(line, ':'); i >= 0 {
			return strings.TrimSpace(line[i+1:]), nil
		}
		if i := strings.IndexByte(line, '='); i >= 0 {
			return strings.TrimSpace(line[i+1:]), nil
		}
		return strings.TrimSpace(line), nil
	}
	if p.err != nil {
		return "", p.err
	}
	return "", &NotFoundError{Keyword: keyword}
}

// Dimension returns the value of the DIMENSION field.
func (p *Parser) Dimension() (uint32, error) {
	v, err := p.Parse(keyDimension)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return 0, &FormatError{Field: keyDimension, Value: v, Err: err}
	}
	return uint32(n), nil
}

// Tour returns the node sequence of the TOUR_SECTION, converted to 0-based
// indices. Reading stops at the -1 sentinel or at end of input.
func (p *Parser) Tour() ([]Node, error) {
	if _, err := p.Parse(keyTourSection); err != nil {
		return nil, err
	}

	var nodes []Node
	for {
		line, ok := p.next()
		if !ok {
			break
		}
		entry := strings.TrimSpace(line)
		if entry == sentinel {
			break
		}
		n, err := strconv.ParseUint(entry, 10, 32)
		if err != nil {
			return nil, &FormatError{Field: keyTourSection, Value: entry, Err: err}
		}
		if n == 0 {
			return nil, &FormatError{Field: keyTourSection, Value: entry}
		}
		nodes = append(nodes, Node(n-1))
	}
	if p.err != nil {
		return nil, p.err
	}
	return nodes, nil
}
