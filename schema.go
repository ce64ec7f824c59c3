package formtree

import (
	"github.com/getkin/kin-openapi/openapi3"
)

// AsSchema projects the tree into an OpenAPI 3 schema: a collection becomes
// an object schema with one property per child, a leaf becomes a string
// schema carrying its current value as the example. Useful for documenting
// the shape a form endpoint expects.
func (n *Node) AsSchema() *openapi3.Schema {
	if n.leaf {
		s := openapi3.NewStringSchema()
		if n.value != "" {
			s.Example = n.value
		}
		return s
	}
	obj := openapi3.NewObjectSchema()
	for _, e := range n.entries {
		obj.WithProperty(e.key, e.child.AsSchema())
	}
	return obj
}
