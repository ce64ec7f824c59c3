package formtree

import (
	"errors"
	"slices"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Chain runs checks against one node and attaches an error message when the
// outcome matches a caller-supplied condition. Each node owns at most one
// chain, created lazily by [Node.Validate] and never shared between nodes.
//
// A node carries at most one error. Once one is attached, every later check
// on the same chain is skipped without evaluating: the first failure wins
// and its message is never overwritten.
type Chain struct {
	node *Node
	last any // bool or string outcome of the most recent check
}

// Validate returns the node's validation chain, creating it on first use.
func (n *Node) Validate() *Chain {
	if n.chain == nil {
		n.chain = &Chain{node: n}
	}
	return n.chain
}

// Node returns the underlying node, exiting the chain.
func (c *Chain) Node() *Node { return c.node }

// check records the outcome of f against the node's value, unless an error
// is already attached.
func (c *Chain) check(f func(string) any) *Chain {
	if c.node.errMsg != "" {
		return c
	}
	c.last = f(c.node.value)
	return c
}

// CheckFunc runs an arbitrary predicate against the node's value and records
// its outcome for the following On/OnFalse/OnTrue/Unless call.
func (c *Chain) CheckFunc(f func(string) bool) *Chain {
	return c.check(func(v string) any { return f(v) })
}

// CheckValue records the node's current value itself as the outcome, for
// matching against strings or string sets with [Chain.On] and [Chain.Unless].
func (c *Chain) CheckValue() *Chain {
	return c.check(func(v string) any { return v })
}

// Rule runs an ozzo-validation rule against the node's value and records
// whether it passed.
func (c *Chain) Rule(r validation.Rule) *Chain {
	return c.check(func(v string) any { return r.Validate(v) == nil })
}

// OnEmpty ensures key exists on a collection (inserting an empty leaf when
// missing) and attaches msg to that child if it is empty.
func (c *Chain) OnEmpty(key, msg string) *Chain {
	child := c.node.Check(key, "")
	if child != nil && child.errMsg == "" && child.empty() {
		child.errMsg = msg
	}
	return c
}

// OnFalse attaches msg if the last check's outcome was exactly false.
func (c *Chain) OnFalse(msg string) *Chain {
	return c.On(false, msg)
}

// OnTrue attaches msg if the last check's outcome was exactly true.
func (c *Chain) OnTrue(msg string) *Chain {
	return c.On(true, msg)
}

// On attaches msg if the last check's outcome equals want. want may be a
// bool, a string, or a []string (outcome is a member of the set).
func (c *Chain) On(want any, msg string) *Chain {
	if c.node.errMsg == "" && outcomeMatches(c.last, want) {
		c.node.errMsg = msg
	}
	return c
}

// Unless attaches msg if the last check's outcome does not equal want,
// with the same comparison forms as [Chain.On].
func (c *Chain) Unless(want any, msg string) *Chain {
	if c.node.errMsg == "" && !outcomeMatches(c.last, want) {
		c.node.errMsg = msg
	}
	return c
}

// Undo delegates to [Node.Undo].
func (c *Chain) Undo() *Chain {
	c.node.Undo()
	return c
}

// IsOK reports whether the node and every descendant are error-free.
func (c *Chain) IsOK() bool {
	return c.node.ok()
}

func outcomeMatches(got, want any) bool {
	if set, ok := want.([]string); ok {
		s, ok := got.(string)
		return ok && slices.Contains(set, s)
	}
	return got == want
}

func (n *Node) ok() bool {
	if n.errMsg != "" {
		return false
	}
	for _, e := range n.entries {
		if !e.child.ok() {
			return false
		}
	}
	return true
}

// ErrorMessage returns the message attached to this node, or "" when the
// node is error-free.
func (n *Node) ErrorMessage() string { return n.errMsg }

// Errors aggregates the subtree's validation errors. A collection maps each
// failing child's key to its error; nested collections nest their own
// [Errors] value. A message attached to the node itself (collection-level,
// or a bare leaf's own message) appears under the "common" key. Returns nil
// when the subtree is error-free.
func (n *Node) Errors() Errors {
	errs := Errors{}
	if n.errMsg != "" {
		errs["common"] = errors.New(n.errMsg)
	}
	for _, e := range n.entries {
		child := e.child
		if child.leaf {
			if child.errMsg != "" {
				errs[e.key] = errors.New(child.errMsg)
			}
			continue
		}
		if sub := child.Errors(); sub != nil {
			errs[e.key] = sub
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
