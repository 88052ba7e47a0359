package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// ErrInvalidScenario wraps every decoding and validation failure.
var ErrInvalidScenario = errors.New("scenario: invalid scenario")

// Scenario is a validated, ready-to-run search setup.
type Scenario struct {
	Grid      *gridgraph.Grid
	Source    gridgraph.Coord
	Target    gridgraph.Coord
	Algorithm gridpath.Algorithm
}

// document mirrors the YAML layout.
type document struct {
	Algorithm string   `yaml:"algorithm,omitempty"`
	Source    []int    `yaml:"source,flow,omitempty"`
	Target    []int    `yaml:"target,flow,omitempty"`
	Grid      []string `yaml:"grid"`
}

// Load reads and parses the scenario file at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a single YAML document into a Scenario.
func Parse(data []byte) (*Scenario, error) {
	var doc document
	if err := decodeStrict(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}

	g, err := gridgraph.Parse(doc.Grid)
	if err != nil {
		return nil, fmt.Errorf("%w: grid: %w", ErrInvalidScenario, err)
	}

	s := &Scenario{
		Grid:      g,
		Source:    gridgraph.Coord{},
		Target:    gridgraph.Coord{Row: g.Rows() - 1, Col: g.Cols() - 1},
		Algorithm: gridpath.BFS,
	}
	if doc.Algorithm != "" {
		if s.Algorithm, err = gridpath.ParseAlgorithm(doc.Algorithm); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidScenario, err)
		}
	}
	if doc.Source != nil {
		if s.Source, err = toCoord("source", doc.Source); err != nil {
			return nil, err
		}
	}
	if doc.Target != nil {
		if s.Target, err = toCoord("target", doc.Target); err != nil {
			return nil, err
		}
	}
	if err = g.CheckEndpoints(s.Source, s.Target); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}

	return s, nil
}

// Marshal encodes s back into YAML. Parse(Marshal(s)) reproduces s.
func (s *Scenario) Marshal() ([]byte, error) {
	doc := document{
		Algorithm: s.Algorithm.String(),
		Source:    []int{s.Source.Row, s.Source.Col},
		Target:    []int{s.Target.Row, s.Target.Col},
		Grid:      gridLines(s.Grid),
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("scenario: encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("scenario: encode: %w", err)
	}
	return buf.Bytes(), nil
}

func toCoord(field string, v []int) (gridgraph.Coord, error) {
	if len(v) != 2 {
		return gridgraph.Coord{}, fmt.Errorf("%w: %s must be [row, col], got %v", ErrInvalidScenario, field, v)
	}
	return gridgraph.Coord{Row: v[0], Col: v[1]}, nil
}

func gridLines(g *gridgraph.Grid) []string {
	if g == nil {
		return nil
	}
	return strings.Split(g.String(), "\n")
}

// decodeStrict decodes exactly one document and rejects unknown fields.
func decodeStrict(data []byte, out interface{}) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("empty document")
		}
		return err
	}
	var extra interface{}
	if err := dec.Decode(&extra); err == nil {
		return errors.New("multiple YAML documents are not supported")
	} else if !errors.Is(err, io.EOF) {
		return fmt.Errorf("after first document: %w", err)
	}
	return nil
}
