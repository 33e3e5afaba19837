// Copyright ©2012 Dan Kortschak <dan.kortschak@adelaide.edu.au>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// Package nary implements a bounded-degree n-ary tree of integer keys.
//
// Keys are unordered. Nodes are placed in level order, each node taking up to
// the tree's degree children before the next node in level order receives any,
// so the tree is always complete. The node at level-order index i has its
// children at indices d*i+1 through d*i+d for degree d.
package nary

import (
	"errors"

	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/treeperf/store"
)

var (
	_ store.Tree  = (*Tree)(nil)
	_ store.Lener = (*Tree)(nil)
)

// ErrInvalidDegree is returned by New when the requested degree is less than one.
var ErrInvalidDegree = errors.New("nary: degree must be positive")

// A Node holds a key and at most the tree's degree children.
type Node struct {
	Key      int
	Children []*Node
}

// A Tree manages the root node of an n-ary tree.
type Tree struct {
	Root   *Node // Root node of the tree.
	Count  int   // Number of nodes in the tree.
	degree int
}

// New returns an empty Tree whose nodes have at most degree children.
func New(degree int) (*Tree, error) {
	if degree < 1 {
		return nil, ErrInvalidDegree
	}
	return &Tree{degree: degree}, nil
}

// Degree returns the maximum number of children of a node.
func (t *Tree) Degree() int { return t.degree }

// Len returns the number of keys stored in the Tree.
func (t *Tree) Len() int { return t.Count }

// Height returns the number of levels in the Tree.
func (t *Tree) Height() (h int) {
	for n := t.Root; n != nil; h++ {
		if len(n.Children) == 0 {
			n = nil
		} else {
			n = n.Children[0]
		}
	}
	return
}

// nodeAt returns the node at level-order index i. i must be less than t.Count.
func (t *Tree) nodeAt(i int) *Node {
	path := arraystack.New()
	for i > 0 {
		path.Push((i - 1) % t.degree)
		i = (i - 1) / t.degree
	}
	n := t.Root
	for !path.Empty() {
		c, _ := path.Pop()
		n = n.Children[c.(int)]
	}
	return n
}

// Insert adds key as a new node at the next free position in level order.
func (t *Tree) Insert(key int) {
	n := &Node{Key: key}
	if t.Root == nil {
		t.Root = n
	} else {
		p := t.nodeAt((t.Count - 1) / t.degree)
		p.Children = append(p.Children, n)
	}
	t.Count++
}

// Search returns whether any node in the Tree holds key.
func (t *Tree) Search(key int) bool {
	if t.Root == nil {
		return false
	}
	s := arraystack.New()
	s.Push(t.Root)
	for !s.Empty() {
		v, _ := s.Pop()
		n := v.(*Node)
		if n.Key == key {
			return true
		}
		for _, c := range n.Children {
			s.Push(c)
		}
	}
	return false
}

// Delete removes the first node in level order holding key. The key of the
// last node in level order takes its place and that node, always a leaf, is
// detached. Delete is a no-op if key is not stored.
func (t *Tree) Delete(key int) {
	var target *Node
	t.Do(func(n *Node) (done bool) {
		if n.Key == key {
			target = n
			return true
		}
		return
	})
	if target == nil {
		return
	}
	if t.Count == 1 {
		t.Root = nil
		t.Count = 0
		return
	}

	last := t.nodeAt(t.Count - 1)
	p := t.nodeAt((t.Count - 2) / t.degree)
	target.Key = last.Key
	p.Children[len(p.Children)-1] = nil
	p.Children = p.Children[:len(p.Children)-1]
	t.Count--
}

// An Operation is a function that operates on a Node. If done is returned true, the
// Operation is indicating that no further work needs to be done and so the Do function should
// traverse no further. An Operation must not alter the structure of the tree.
type Operation func(*Node) (done bool)

// Do performs fn on all nodes in the tree in level order. A boolean is returned
// indicating whether the Do traversal was interupted by an Operation returning true.
func (t *Tree) Do(fn Operation) bool {
	if t.Root == nil {
		return false
	}
	q := linkedlistqueue.New()
	q.Enqueue(t.Root)
	for !q.Empty() {
		v, _ := q.Dequeue()
		n := v.(*Node)
		if fn(n) {
			return true
		}
		for _, c := range n.Children {
			q.Enqueue(c)
		}
	}
	return false
}
