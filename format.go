// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bst

import (
	"fmt"
	"strings"

	"github.com/xlab/treeprint"
)

// String returns t as an s-expression: "()" for an empty tree,
// and "(key:val left right)" for a node.
func (t *Tree[K, V]) String() string { return t.top().String() }

// String returns t as an s-expression: "()" for an empty tree,
// and "(key:val left right)" for a node.
func (t *TreeFunc[K, V]) String() string { return t.top().String() }

func (x *node[K, V]) String() string {
	var b strings.Builder
	x.write(&b)
	return b.String()
}

func (x *node[K, V]) write(b *strings.Builder) {
	if x == nil {
		b.WriteString("()")
		return
	}
	fmt.Fprintf(b, "(%v:%v ", x.key, x.val)
	x.left.write(b)
	b.WriteByte(' ')
	x.right.write(b)
	b.WriteByte(')')
}

// Pretty renders the shape of t as an indented drawing, one node per line.
// Children are tagged L or R; an empty child of a node with one child
// is drawn as "()".
func (t *Tree[K, V]) Pretty() string { return pretty(t.top()) }

// Pretty renders the shape of t as an indented drawing, one node per line.
// Children are tagged L or R; an empty child of a node with one child
// is drawn as "()".
func (t *TreeFunc[K, V]) Pretty() string { return pretty(t.top()) }

func pretty[K, V any](x *node[K, V]) string {
	if x == nil {
		return treeprint.NewWithRoot("()").String()
	}
	p := treeprint.NewWithRoot(x.label())
	x.addChildren(p)
	return p.String()
}

func (x *node[K, V]) label() string {
	return fmt.Sprintf("%v: %v", x.key, x.val)
}

// addChildren adds the subtrees of x to p, left before right.
func (x *node[K, V]) addChildren(p treeprint.Tree) {
	if x.left == nil && x.right == nil {
		return
	}
	for _, c := range []struct {
		side  string
		child *node[K, V]
	}{{"L", x.left}, {"R", x.right}} {
		if c.child == nil {
			p.AddMetaNode(c.side, "()")
			continue
		}
		c.child.addChildren(p.AddMetaBranch(c.side, c.child.label()))
	}
}
