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

// Package ternary implements an unbalanced ternary search tree of integer keys.
//
// Keys are ordered as in a binary search tree. Each node has a third, equal,
// child through which further instances of the node's key are chained, so the
// tree stores every inserted key including duplicates.
package ternary

import (
	"github.com/treeperf/store"
)

var (
	_ store.Tree  = (*Tree)(nil)
	_ store.Lener = (*Tree)(nil)
)

// A Node represents a node in the tree. Nodes reached through an Equal link
// hold the same Key as their parent and have no Left or Right children.
type Node struct {
	Key                int
	Left, Equal, Right *Node
}

// A Tree manages the root node of a ternary search tree. The zero value is an
// empty tree ready to use.
type Tree struct {
	Root  *Node // Root node of the tree.
	Count int   // Number of key instances stored.
}

// Len returns the number of key instances stored in the Tree.
func (self *Tree) Len() int {
	return self.Count
}

// Height returns the number of nodes on the longest Left/Right path from the
// root to a leaf. Equal chains do not contribute.
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

func (self *Tree) find(key int) *Node {
	n := self.Root
	for n != nil && n.Key != key {
		if key < n.Key {
			n = n.Left
		} else {
			n = n.Right
		}
	}
	return n
}

// Search returns whether key is stored in the Tree.
func (self *Tree) Search(key int) bool {
	return self.find(key) != nil
}

// Instances returns the number of instances of key stored in the Tree.
func (self *Tree) Instances(key int) (n int) {
	for e := self.find(key); e != nil; e = e.Equal {
		n++
	}
	return
}

// Insert inserts an instance of key into the Tree.
func (self *Tree) Insert(key int) {
	self.Root = self.Root.insert(key)
	self.Count++
}

func (self *Node) insert(key int) *Node {
	if self == nil {
		return &Node{Key: key}
	}
	switch {
	case key < self.Key:
		self.Left = self.Left.insert(key)
	case key > self.Key:
		self.Right = self.Right.insert(key)
	default:
		self.Equal = self.Equal.insert(key)
	}
	return self
}

// Delete removes one instance of key from the Tree. If the key has chained
// duplicates one of them is unlinked, otherwise the node holding key is
// removed. Delete is a no-op if key is not stored.
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
		return self, d
	case key > self.Key:
		self.Right, d = self.Right.delete(key)
		return self, d
	}

	if self.Equal != nil {
		self.Equal = self.Equal.Equal
		return self, -1
	}
	switch {
	case self.Left == nil:
		root = self.Right
	case self.Right == nil:
		root = self.Left
	default:
		// The successor node moves up with its equal chain intact.
		self.Right, root = self.Right.deleteMin()
		root.Left, root.Right = self.Left, self.Right
	}
	self.Left, self.Right = nil, nil
	return root, -1
}

// deleteMin unlinks the minimum node of the subtree, returning the new subtree
// root and the unlinked node.
func (self *Node) deleteMin() (root, min *Node) {
	if self.Left == nil {
		return self.Right, self
	}
	self.Left, min = self.Left.deleteMin()
	return self, min
}

// An Operation is a function that operates on a key. If done is returned true, the
// Operation is indicating that no further work needs to be done and so the Do function should
// traverse no further.
type Operation func(key int) (done bool)

// Do performs fn on every key instance stored in the tree in sort order. A boolean
// is returned indicating whether the Do traversal was interupted by an Operation
// returning true.
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
	for e := self; e != nil; e = e.Equal {
		done = fn(e.Key)
		if done {
			return
		}
	}
	if self.Right != nil {
		done = self.Right.do(fn)
	}
	return
}
