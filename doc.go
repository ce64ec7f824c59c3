// Package formtree models nested string-keyed input (form submissions and
// similar) as a single recursive value: a [Node] is either a scalar string
// leaf or an ordered collection of named child nodes, and every operation
// applies uniformly to both shapes.
//
// Build a tree from ordered pairs:
//
//	n := formtree.New(formtree.Pairs{
//	    {Key: "name", Val: "  Alice  "},
//	    {Key: "contact", Val: formtree.Pairs{
//	        {Key: "email", Val: "alice@example.com"},
//	    }},
//	})
//
// Then transform, validate, and serialize:
//
//	n.ToLower()
//	n.Get("contact").Get("email").Validate().IsEmail().OnFalse("bad email")
//	if n.Validate().IsOK() {
//	    body, _ := n.Send(ctx, "https://example.com/submit")
//	    _ = body
//	}
//
// Leaves remember the value they were constructed with: [Node.Undo] restores
// it after any number of [Node.Set] calls, and [Node.Reset] re-baselines it.
//
// Validation errors are plain strings attached to the offending node, never
// returned as Go errors from the checks themselves; inspect them with
// [Chain.IsOK] and [Node.Errors].
package formtree
