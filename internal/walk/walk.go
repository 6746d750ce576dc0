// Package walk provides bounded traversals over parent/child relations that
// may contain cycles, such as chapter outlines, tag trees and storyline chains.
package walk

// DefaultMaxDepth bounds a walk when the caller passes a non-positive depth.
const DefaultMaxDepth = 64

// Ancestors follows parent from start and returns the chain nearest first,
// excluding start. The walk stops when parent reports no parent, when a node
// repeats or after maxDepth steps.
func Ancestors[K comparable](start K, parent func(K) (K, bool), maxDepth int) []K {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	visited := map[K]bool{start: true}
	var out []K
	cur := start
	for len(out) < maxDepth {
		p, ok := parent(cur)
		if !ok || visited[p] {
			break
		}
		visited[p] = true
		out = append(out, p)
		cur = p
	}
	return out
}

// Descendants returns every node reachable from start through children, in
// pre-order and excluding start. Each node is visited once; nodes deeper than
// maxDepth below start are not expanded.
func Descendants[K comparable](start K, children func(K) []K, maxDepth int) []K {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	type frame struct {
		node  K
		depth int
	}

	visited := map[K]bool{start: true}
	var out []K
	stack := []frame{{node: start}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.depth > 0 {
			out = append(out, f.node)
		}
		if f.depth >= maxDepth {
			continue
		}

		kids := children(f.node)
		// Push in reverse so the first child is popped first.
		for i := len(kids) - 1; i >= 0; i-- {
			k := kids[i]
			if visited[k] {
				continue
			}
			visited[k] = true
			stack = append(stack, frame{node: k, depth: f.depth + 1})
		}
	}
	return out
}
