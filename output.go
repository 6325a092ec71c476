package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"go.creack.net/pseudocu/interpreter"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

var formats = []string{formatText, formatJSON, formatYAML}

// writeBindings prints the bindings in the given format. Bindings are expected sorted by name.
func writeBindings(w io.Writer, format string, bindings []interpreter.Binding) error {
	switch format {
	case formatJSON:
		m := make(map[string]int64, len(bindings))
		for _, b := range bindings {
			m[b.Name] = b.Value
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(m)
	case formatYAML:
		return writeYAML(w, bindings)
	case formatText:
		for _, b := range bindings {
			if _, err := fmt.Fprintf(w, "%s = %d\n", b.Name, b.Value); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// writeYAML builds the mapping node by hand: the encoder's own key sorting
// is not a plain byte order.
func writeYAML(w io.Writer, bindings []interpreter.Binding) error {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, b := range bindings {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: b.Name},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(b.Value, 10)},
		)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return enc.Close()
}
