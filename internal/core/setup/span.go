package setup

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Span is a caller-supplied (start, end) pair. Config files may write it as a
// {start, end} mapping or as a [start, end] sequence.
type Span struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// spanFields decodes the mapping form without recursing into Span's methods.
type spanFields Span

func (s *Span) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.SequenceNode {
		var pair []int
		if err := node.Decode(&pair); err != nil {
			return err
		}
		return s.setPair(pair)
	}
	return node.Decode((*spanFields)(s))
}

func (s *Span) UnmarshalJSON(data []byte) error {
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '[' {
		var pair []int
		if err := json.Unmarshal(trimmed, &pair); err != nil {
			return err
		}
		return s.setPair(pair)
	}
	return json.Unmarshal(data, (*spanFields)(s))
}

func (s *Span) setPair(pair []int) error {
	if len(pair) != 2 {
		return fmt.Errorf("span needs [start, end], got %d values", len(pair))
	}
	s.Start, s.End = pair[0], pair[1]
	return nil
}
