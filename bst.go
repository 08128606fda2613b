// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bst implements unbalanced, mutable binary search trees.
// [Tree][K, V] is suitable for ordered types K,
// while [TreeFunc][K, V] supports arbitrary keys and comparison functions.
//
// A tree is either empty or a node holding a key, a value and two subtrees.
// Every key in a node's left subtree is less than the node's key and every
// key in its right subtree is greater. Keys are unique: inserting an existing
// key replaces its value. The shape of a tree depends only on the order of
// insertions; nothing is ever rebalanced, so inserting keys in sorted order
// produces a chain.
//
// Trees are not safe for concurrent use. A caller that shares a tree between
// goroutines must serialize access to it, for example with a [sync.Mutex].
package bst

import (
	"cmp"
)

// A Tree is a binary search tree mapping keys of type K to values of type V,
// ordered according to K's standard Go ordering.
// The zero value of a Tree is an empty Tree ready to use.
//
// A Tree owns its nodes. Copying a non-empty Tree value shares those nodes
// with the copy; use [Tree.Clone] to obtain an independent tree.
//
// Floating-point NaN keys are not supported, since they are not ordered.
type Tree[K cmp.Ordered, V any] struct {
	_root *node[K, V]
}

// A TreeFunc is a binary search tree ordered according to an arbitrary
// comparison function.
// The zero value of a TreeFunc is not meaningful since it has no comparison function.
// Use [NewTreeFunc] or [LeafFunc] to create a [TreeFunc].
// A nil *TreeFunc can be read but not written and contains no entries.
type TreeFunc[K, V any] struct {
	_root *node[K, V]
	cmp   func(K, K) int
}

// A node is a non-empty tree. A nil *node is the empty tree.
// Each node is referenced by exactly one parent slot.
type node[K, V any] struct {
	key   K
	val   V
	left  *node[K, V]
	right *node[K, V]
}

// Leaf returns a tree with a single node holding key and val.
func Leaf[K cmp.Ordered, V any](key K, val V) Tree[K, V] {
	return Tree[K, V]{_root: leaf(key, val)}
}

// Branch returns a tree whose root holds key and val, with left and right
// as its subtrees. Branch takes ownership of left and right: they must not
// be used or modified afterwards.
//
// Branch does not check the ordering of keys; see [Tree.Valid].
func Branch[K cmp.Ordered, V any](key K, val V, left, right Tree[K, V]) Tree[K, V] {
	return Tree[K, V]{_root: &node[K, V]{key: key, val: val, left: left._root, right: right._root}}
}

// NewTreeFunc returns a new, empty TreeFunc[K, V] ordered according to cmp.
func NewTreeFunc[K, V any](cmp func(K, K) int) *TreeFunc[K, V] {
	assert(cmp != nil)
	return &TreeFunc[K, V]{cmp: cmp}
}

// LeafFunc returns a new TreeFunc[K, V] ordered according to cmp
// with a single node holding key and val.
func LeafFunc[K, V any](cmp func(K, K) int, key K, val V) *TreeFunc[K, V] {
	t := NewTreeFunc[K, V](cmp)
	t._root = leaf(key, val)
	return t
}

// BranchFunc returns a TreeFunc ordered according to cmp whose root holds
// key and val, with the trees of left and right as its subtrees.
// Either subtree may be nil. BranchFunc takes ownership of left and right:
// they must not be used or modified afterwards.
//
// BranchFunc does not check the ordering of keys; see [TreeFunc.Valid].
func BranchFunc[K, V any](cmp func(K, K) int, key K, val V, left, right *TreeFunc[K, V]) *TreeFunc[K, V] {
	t := NewTreeFunc[K, V](cmp)
	t._root = &node[K, V]{key: key, val: val, left: left.top(), right: right.top()}
	return t
}

func leaf[K, V any](key K, val V) *node[K, V] {
	return &node[K, V]{key: key, val: val}
}

// tree is the interface implemented by both Tree[K, V] and TreeFunc[K, V]
// that enables a common implementation of the tree operations.
type tree[K, V any] interface {
	// root returns &t._root; the caller can read or write *t.root().
	root() **node[K, V]

	// find reports where a node with the key would be: at *pos.
	// If *pos != nil, then key is present in the tree;
	// otherwise *pos is the empty slot where a new node with the key belongs.
	find(key K) (pos **node[K, V])

	// compare is the three-way comparison ordering the tree.
	compare(a, b K) int
}

func (t *Tree[K, V]) root() **node[K, V]     { return &t._root }
func (t *TreeFunc[K, V]) root() **node[K, V] { return &t._root }

func (t *Tree[K, V]) compare(a, b K) int     { return cmp.Compare(a, b) }
func (t *TreeFunc[K, V]) compare(a, b K) int { return t.cmp(a, b) }

// find walks down from the root to the slot holding k,
// or to the empty slot where k would be attached.
func (t *Tree[K, V]) find(k K) (pos **node[K, V]) {
	pos = &t._root
	for x := *pos; x != nil; x = *pos {
		if x.key == k {
			break
		}
		if k < x.key {
			pos = &x.left
		} else {
			pos = &x.right
		}
	}
	return pos
}

// find is the same as for Tree[K, V] but using t.cmp.
func (t *TreeFunc[K, V]) find(k K) (pos **node[K, V]) {
	if t.cmp == nil {
		panic("bst: TreeFunc has no comparison function")
	}
	pos = &t._root
	for x := *pos; x != nil; x = *pos {
		c := t.cmp(k, x.key)
		if c == 0 {
			break
		}
		if c < 0 {
			pos = &x.left
		} else {
			pos = &x.right
		}
	}
	return pos
}

// top returns the root node of t, or nil if t is nil or empty.
func (t *Tree[K, V]) top() *node[K, V] {
	if t == nil {
		return nil
	}
	return t._root
}

// top returns the root node of t, or nil if t is nil or empty.
func (t *TreeFunc[K, V]) top() *node[K, V] {
	if t == nil {
		return nil
	}
	return t._root
}

// IsEmpty reports whether t has no nodes.
func (t *Tree[K, V]) IsEmpty() bool { return t.top() == nil }

// IsEmpty reports whether t has no nodes.
func (t *TreeFunc[K, V]) IsEmpty() bool { return t.top() == nil }

// Insert sets the value for key to val.
// If key is already present its value is replaced and the shape of t is
// unchanged; otherwise a new leaf is attached where the search for key ended.
// Insert never rebalances t.
func (t *Tree[K, V]) Insert(key K, val V) {
	insert(t, key, val)
}

// Insert sets the value for key to val.
// If key is already present its value is replaced and the shape of t is
// unchanged; otherwise a new leaf is attached where the search for key ended.
// Insert never rebalances t.
func (t *TreeFunc[K, V]) Insert(key K, val V) {
	insert(t, key, val)
}

func insert[K, V any](t tree[K, V], key K, val V) {
	pos := t.find(key)
	if x := *pos; x != nil {
		x.val = val
		return
	}
	*pos = leaf(key, val)
}

// Find returns a pointer to the value stored for key, or nil if key is not
// in t. The pointer refers to the value held in t, so a later Insert of the
// same key is visible through it.
func (t *Tree[K, V]) Find(key K) *V {
	if t == nil {
		return nil
	}
	return find(t, key)
}

// Find returns a pointer to the value stored for key, or nil if key is not
// in t. The pointer refers to the value held in t, so a later Insert of the
// same key is visible through it.
func (t *TreeFunc[K, V]) Find(key K) *V {
	if t == nil {
		return nil
	}
	return find(t, key)
}

func find[K, V any](t tree[K, V], key K) *V {
	if x := *t.find(key); x != nil {
		return &x.val
	}
	return nil
}

// Get returns the value for key and reports whether it exists.
func (t *Tree[K, V]) Get(key K) (V, bool) {
	return get(t.Find(key))
}

// Get returns the value for key and reports whether it exists.
func (t *TreeFunc[K, V]) Get(key K) (V, bool) {
	return get(t.Find(key))
}

func get[V any](p *V) (V, bool) {
	if p != nil {
		return *p, true
	}
	var zero V
	return zero, false
}

func assert(b bool) {
	if !b {
		panic("assertion failed")
	}
}
