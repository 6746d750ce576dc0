// Package outline builds the collapsible chapter hierarchy shown beside the
// reader. A chapter's parent is the nearest preceding chapter with a strictly
// smaller level.
package outline

import (
	"slices"

	"novel-annotator/internal/novel"
	"novel-annotator/internal/walk"
)

// Node is a chapter in the outline tree.
type Node struct {
	Chapter  novel.Chapter
	Index    int
	Children []*Node
	parent   *Node
}

// FlatChapter is one visible row of a flattened outline.
type FlatChapter struct {
	ID                 string `json:"id"`
	Title              string `json:"title"`
	Level              int    `json:"level"`
	Index              int    `json:"index"`
	Depth              int    `json:"depth"`
	HasChildren        bool   `json:"hasChildren"`
	Expanded           bool   `json:"expanded"`
	OriginalStartIndex int    `json:"originalStartIndex"`
	OriginalEndIndex   int    `json:"originalEndIndex"`
}

// BuildTree arranges chapters by level in one left-to-right scan. Each chapter
// pops ancestors at its own level or deeper, attaches to the remaining top of
// the stack (or becomes a root) and is pushed.
func BuildTree(chapters []novel.Chapter) []*Node {
	var roots []*Node
	var stack []*Node

	for i, c := range chapters {
		node := &Node{Chapter: c, Index: i}
		level := c.EffectiveLevel()

		for len(stack) > 0 && stack[len(stack)-1].Chapter.EffectiveLevel() >= level {
			stack = stack[:len(stack)-1]
		}

		if len(stack) == 0 {
			roots = append(roots, node)
		} else {
			parent := stack[len(stack)-1]
			node.parent = parent
			parent.Children = append(parent.Children, node)
		}
		stack = append(stack, node)
	}
	return roots
}

// Flatten walks the tree in pre-order and returns the visible rows. Children
// are included only below nodes whose ID is in expanded.
func Flatten(tree []*Node, expanded map[string]bool) []FlatChapter {
	var out []FlatChapter
	var visit func(nodes []*Node, depth int)
	visit = func(nodes []*Node, depth int) {
		for _, n := range nodes {
			open := expanded[n.Chapter.ID]
			out = append(out, FlatChapter{
				ID:                 n.Chapter.ID,
				Title:              n.Chapter.Title,
				Level:              n.Chapter.EffectiveLevel(),
				Index:              n.Index,
				Depth:              depth,
				HasChildren:        len(n.Children) > 0,
				Expanded:           open,
				OriginalStartIndex: n.Chapter.OriginalStartIndex,
				OriginalEndIndex:   n.Chapter.OriginalEndIndex,
			})
			if open {
				visit(n.Children, depth+1)
			}
		}
	}
	visit(tree, 0)
	return out
}

// ExpandAll returns an expansion set containing every node that has children.
func ExpandAll(tree []*Node) map[string]bool {
	expanded := make(map[string]bool)
	for _, n := range allNodes(tree) {
		if len(n.Children) > 0 {
			expanded[n.Chapter.ID] = true
		}
	}
	return expanded
}

// Breadcrumb returns the path from a root down to the chapter with the given
// ID, or nil when the chapter is not in the tree.
func Breadcrumb(tree []*Node, id string) []FlatChapter {
	var target *Node
	for _, n := range allNodes(tree) {
		if n.Chapter.ID == id {
			target = n
			break
		}
	}
	if target == nil {
		return nil
	}

	parent := func(n *Node) (*Node, bool) {
		return n.parent, n.parent != nil
	}
	path := append(walk.Ancestors(target, parent, novel.MaxLevel), target)
	slices.Reverse(path[:len(path)-1])

	out := make([]FlatChapter, 0, len(path))
	for depth, n := range path {
		out = append(out, FlatChapter{
			ID:                 n.Chapter.ID,
			Title:              n.Chapter.Title,
			Level:              n.Chapter.EffectiveLevel(),
			Index:              n.Index,
			Depth:              depth,
			HasChildren:        len(n.Children) > 0,
			Expanded:           n != target,
			OriginalStartIndex: n.Chapter.OriginalStartIndex,
			OriginalEndIndex:   n.Chapter.OriginalEndIndex,
		})
	}
	return out
}

func allNodes(tree []*Node) []*Node {
	root := &Node{Children: tree}
	children := func(n *Node) []*Node {
		return n.Children
	}
	return walk.Descendants(root, children, novel.MaxLevel+1)
}
