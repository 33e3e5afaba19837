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

// Package bst implements an unbalanced binary search tree of integer keys.
//
// No rebalancing is performed, so operations are O(h) where h may reach n for
// sorted insertion orders.
package bst

import (
	"github.com/treeperf/store"
)

var (
	_ store.Tree  = (*Tree)(nil)
	_ store.Lener = (*Tree)(nil)
)

// A Node represents a node in the tree.
type Node struct {
	Key         int
	Left, Right *Node
}

// A Tree manages the root node of a binary search tree. The zero value is an
// empty tree ready to use.
type Tree struct {
	Root  *Node // Root node of the tree.
	Count int   // Number of keys stored.
}

// Len returns the number of keys stored in the Tree.
func (self *Tree) Len() int {
	return self.Count
}

// Height returns the number of nodes on the longest path from the root to a leaf.
func (self *Tree) Height() int {
	return self.Root.height()
}

func (self *Node) height() int {
	if self == nil {
		return 0
	}
	l, r := self.Left.height(), self.Right.height()
	if l > r {
		return l + 1
	}
	return r + 1
}

// Search returns whether key is stored in the Tree.
func (self *Tree) Search(key int) bool {
	for n := self.Root; n != nil; {
		switch {
		case key == n.Key:
			return true
		case key < n.Key:
			n = n.Left
		default:
			n = n.Right
		}
	}
	return false
}

// Insert inserts key into the Tree. Inserting a key that is already stored
// leaves the Tree unchanged.
func (self *Tree) Insert(key int) {
	var d int
	self.Root, d = self.Root.insert(key)
	self.Count += d
}

func (self *Node) insert(key int) (root *Node, d int) {
	if self == nil {
		return &Node{Key: key}, 1
	}
	switch {
	case key < self.Key:
		self.Left, d = self.Left.insert(key)
	case key > self.Key:
		self.Right, d = self.Right.insert(key)
	}
	return self, d
}

// Delete deletes key from the Tree. Delete is a no-op if key is not stored.
func (self *Tree) Delete(key int) {
	var d int
	self.Root, d = self.Root.delete(key)
	self.Count += d
}

func (self *Node) delete(key int) (root *Node, d int) {
	if self == nil {
		return nil, 0
	}
	switch {
	case key < self.Key:
		self.Left, d = self.Left.delete(key)
	case key > self.Key:
		self.Right, d = self.Right.delete(key)
	default:
		if self.Left == nil {
			return self.Right, -1
		}
		if self.Right == nil {
			return self.Left, -1
		}
		self.Key = self.Right.min().Key
		self.Right, d = self.Right.delete(self.Key)
	}
	return self, d
}

func (self *Node) min() (n *Node) {
	for n = self; n.Left != nil; n = n.Left {
	}
	return
}

// An Operation is a function that operates on a key. If done is returned true, the
// Operation is indicating that no further work needs to be done and so the Do function should
// traverse no further.
type Operation func(key int) (done bool)

// Do performs fn on all keys stored in the tree in sort order. A boolean is returned
// indicating whether the Do traversal was interupted by an Operation returning true.
func (self *Tree) Do(fn Operation) bool {
	if self.Root == nil {
		return false
	}
	return self.Root.do(fn)
}

func (self *Node) do(fn Operation) (done bool) {
	if self.Left != nil {
		done = self.Left.do(fn)
		if done {
			return
		}
	}
	done = fn(self.Key)
	if done {
		return
	}
	if self.Right != nil {
		done = self.Right.do(fn)
	}
	return
}
