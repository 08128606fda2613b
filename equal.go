// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bst

import (
	"cmp"
	"fmt"
)

// Equal reports whether a and b have the same shape and hold equal keys and
// values at every position.
//
// Two trees holding the same entries but built in different orders are
// generally not Equal.
func Equal[K cmp.Ordered, V comparable](a, b Tree[K, V]) bool {
	return equalNodes(a._root, b._root, eqKeys[K], func(v1, v2 V) bool { return v1 == v2 })
}

// EqualFunc is like Equal but compares values using eq.
func EqualFunc[K cmp.Ordered, V1, V2 any](a Tree[K, V1], b Tree[K, V2], eq func(V1, V2) bool) bool {
	return equalNodes(a._root, b._root, eqKeys[K], eq)
}

// EqualFunc reports whether t and u have the same shape and hold equal keys
// and values at every position. Keys are equal when t's comparison function
// returns 0; values are compared using eq.
// A nil *TreeFunc is equal to an empty one.
func (t *TreeFunc[K, V]) EqualFunc(u *TreeFunc[K, V], eq func(V, V) bool) bool {
	x, y := t.top(), u.top()
	if x == nil || y == nil {
		return x == nil && y == nil
	}
	return equalNodes(x, y, func(k1, k2 K) bool { return t.cmp(k1, k2) == 0 }, eq)
}

func eqKeys[K comparable](k1, k2 K) bool { return k1 == k2 }

func equalNodes[K, V1, V2 any](x *node[K, V1], y *node[K, V2], keq func(K, K) bool, veq func(V1, V2) bool) bool {
	if x == nil || y == nil {
		return x == nil && y == nil
	}
	return keq(x.key, y.key) &&
		veq(x.val, y.val) &&
		equalNodes(x.left, y.left, keq, veq) &&
		equalNodes(x.right, y.right, keq, veq)
}

// Clone returns a copy of t with the same shape.
// Values are copied by assignment.
func (t *Tree[K, V]) Clone() *Tree[K, V] {
	return &Tree[K, V]{_root: t.top().clone()}
}

// Clone returns a copy of t with the same shape and comparison function.
// Values are copied by assignment.
// Cloning a nil *TreeFunc returns an empty TreeFunc with no comparison function.
func (t *TreeFunc[K, V]) Clone() *TreeFunc[K, V] {
	if t == nil {
		return &TreeFunc[K, V]{}
	}
	return &TreeFunc[K, V]{_root: t._root.clone(), cmp: t.cmp}
}

func (x *node[K, V]) clone() *node[K, V] {
	if x == nil {
		return nil
	}
	c := *x
	c.left = x.left.clone()
	c.right = x.right.clone()
	return &c
}

// Height returns the number of nodes on the longest path from the root of t
// to an empty subtree. The height of an empty tree is 0.
func (t *Tree[K, V]) Height() int { return t.top().height() }

// Height returns the number of nodes on the longest path from the root of t
// to an empty subtree. The height of an empty tree is 0.
func (t *TreeFunc[K, V]) Height() int { return t.top().height() }

func (x *node[K, V]) height() int {
	if x == nil {
		return 0
	}
	return 1 + max(x.left.height(), x.right.height())
}

// Valid reports whether every key in t is strictly greater than all keys in
// its left subtree and strictly less than all keys in its right subtree.
// It returns an error describing the first violation found.
// Keys are ordered with [cmp.Compare], which agrees with Insert and Find
// for all keys except floating-point NaNs.
func (t *Tree[K, V]) Valid() error {
	if t == nil {
		return nil
	}
	return valid(t)
}

// Valid is like [Tree.Valid] but orders keys with t's comparison function.
func (t *TreeFunc[K, V]) Valid() error {
	if t == nil {
		return nil
	}
	return valid(t)
}

func valid[K, V any](t tree[K, V]) error {
	var check func(x *node[K, V], lo, hi *K) error
	check = func(x *node[K, V], lo, hi *K) error {
		if x == nil {
			return nil
		}
		if lo != nil && t.compare(x.key, *lo) <= 0 {
			return fmt.Errorf("bst: key %v is not greater than %v", x.key, *lo)
		}
		if hi != nil && t.compare(x.key, *hi) >= 0 {
			return fmt.Errorf("bst: key %v is not less than %v", x.key, *hi)
		}
		if err := check(x.left, lo, &x.key); err != nil {
			return err
		}
		return check(x.right, &x.key, hi)
	}
	return check(*t.root(), nil, nil)
}
