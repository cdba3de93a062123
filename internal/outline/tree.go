// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package outline

import "github.com/pdiddy/pdfmarks/pkg/types"

// Node is a bookmark with its nested children.
type Node struct {
	types.Bookmark
	Kids []*Node
}

// Tree nests a flat, level-annotated list. An entry deeper than its
// predecessor becomes that predecessor's child; a jump of more than one
// level is attached to the deepest open node.
func Tree(bookmarks []types.Bookmark) []*Node {
	var roots []*Node
	var stack []*Node

	for _, b := range bookmarks {
		n := &Node{Bookmark: b}
		for len(stack) > 0 && stack[len(stack)-1].Level >= b.Level {
			stack = stack[:len(stack)-1]
		}
		if len(stack) == 0 {
			roots = append(roots, n)
		} else {
			parent := stack[len(stack)-1]
			parent.Kids = append(parent.Kids, n)
		}
		stack = append(stack, n)
	}
	return roots
}
