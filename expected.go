package formtree

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ExpectedFromYAML loads an expected-defaults schema from a YAML mapping,
// preserving key order. Scalar values become defaults, nested mappings
// become nested [Pairs]. Feed the result to [Expected]:
//
//	ps, err := formtree.ExpectedFromYAML(cfg)
//	n := formtree.New(input, formtree.Expected(ps))
func ExpectedFromYAML(b []byte) (Pairs, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	root := &doc
	if root.Kind == 0 {
		return nil, nil
	}
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil, nil
		}
		root = root.Content[0]
	}
	return yamlPairs(root)
}

func yamlPairs(n *yaml.Node) (Pairs, error) {
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("expected a mapping, got yaml kind %d at line %d", n.Kind, n.Line)
	}
	ps := make(Pairs, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]
		switch val.Kind {
		case yaml.MappingNode:
			sub, err := yamlPairs(val)
			if err != nil {
				return nil, err
			}
			ps = append(ps, Pair{Key: key.Value, Val: sub})
		case yaml.ScalarNode:
			ps = append(ps, Pair{Key: key.Value, Val: val.Value})
		default:
			return nil, fmt.Errorf("unsupported yaml kind %d under %q at line %d", val.Kind, key.Value, val.Line)
		}
	}
	return ps, nil
}
