package refdata

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// YAMLProvider reads reference tables from a single YAML document. The
// document is either a mapping with "measurements" and optional "axis"
// sequences, or a bare sequence treated as the measurement table.
//
// Decoding goes through yaml.Node rather than a map so that column scan
// order follows document order; role detection depends on it.
type YAMLProvider struct {
	Path string
}

// Load implements Provider.
func (p YAMLProvider) Load() (Table, Table, error) {
	data, err := os.ReadFile(p.Path)
	if err != nil {
		return Table{}, Table{}, err
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return Table{}, Table{}, fmt.Errorf("parse %s: %w", p.Path, err)
	}
	if len(root.Content) == 0 {
		return Table{}, Table{}, nil
	}

	doc := root.Content[0]
	switch doc.Kind {
	case yaml.SequenceNode:
		m, err := tableFromSequence(doc)
		if err != nil {
			return Table{}, Table{}, fmt.Errorf("measurement table: %w", err)
		}
		return m, Table{}, nil

	case yaml.MappingNode:
		var m, a Table
		for i := 0; i+1 < len(doc.Content); i += 2 {
			key, val := doc.Content[i], doc.Content[i+1]
			switch key.Value {
			case "measurements":
				m, err = tableFromSequence(val)
				if err != nil {
					return Table{}, Table{}, fmt.Errorf("measurements: %w", err)
				}
			case "axis":
				a, err = tableFromSequence(val)
				if err != nil {
					return Table{}, Table{}, fmt.Errorf("axis: %w", err)
				}
			}
		}
		return m, a, nil

	default:
		return Table{}, Table{}, fmt.Errorf("%s: expected a sequence or mapping at top level", p.Path)
	}
}

// tableFromSequence builds a Table from a sequence of mappings. Columns are
// recorded in first-seen document order; non-scalar cell values are ignored.
func tableFromSequence(seq *yaml.Node) (Table, error) {
	if seq.Kind != yaml.SequenceNode {
		return Table{}, fmt.Errorf("line %d: expected a sequence of rows", seq.Line)
	}

	var t Table
	seen := make(map[string]bool)
	for _, item := range seq.Content {
		if item.Kind != yaml.MappingNode {
			return Table{}, fmt.Errorf("line %d: row is not a mapping", item.Line)
		}
		row := make(Row, len(item.Content)/2)
		for i := 0; i+1 < len(item.Content); i += 2 {
			key, val := item.Content[i], item.Content[i+1]
			if val.Kind != yaml.ScalarNode {
				continue
			}
			if !seen[key.Value] {
				seen[key.Value] = true
				t.Columns = append(t.Columns, key.Value)
			}
			row[key.Value] = val.Value
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}
