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

// Package rbtree implements a red-black tree of integer keys as described in
// Cormen, Leiserson, Rivest and Stein, Introduction to Algorithms, chapter 13.
//
// Nodes hold parent links and every absent child, as well as the parent of the
// root, is represented by a single black sentinel node owned by the Tree.
package rbtree

import (
	"github.com/treeperf/store"
)

var (
	_ store.Tree  = (*Tree)(nil)
	_ store.Lener = (*Tree)(nil)
)

// A Color represents the color of a node.
type Color bool

// String returns a string representation of a Color.
func (c Color) String() string {
	if c {
		return "Black"
	}
	return "Red"
}

const (
	Red   Color = false
	Black Color = true
)

type node struct {
	key                 int
	color               Color
	left, right, parent *node
}

// A Tree manages the root node of a red-black tree. Public methods are exposed
// through this type. Trees must be created with New.
type Tree struct {
	root     *node
	sentinel *node // Black, self-linked and never written after New.
	count    int
}

// New returns an empty Tree.
func New() *Tree {
	z := &node{color: Black}
	z.left, z.right, z.parent = z, z, z
	return &Tree{root: z, sentinel: z}
}

// Len returns the number of elements stored in the Tree.
func (self *Tree) Len() int {
	return self.count
}

// Height returns the number of nodes on the longest path from the root to a
// leaf. An empty Tree has height zero.
func (self *Tree) Height() int {
	return self.height(self.root)
}

func (self *Tree) height(n *node) int {
	if n == self.sentinel {
		return 0
	}
	l, r := self.height(n.left), self.height(n.right)
	if l > r {
		return l + 1
	}
	return r + 1
}

// Search returns whether key is stored in the Tree.
func (self *Tree) Search(key int) bool {
	return self.search(key) != self.sentinel
}

// search returns the first node holding key on the descent from the root, or
// the sentinel if there is none.
func (self *Tree) search(key int) *node {
	n := self.root
	for n != self.sentinel && n.key != key {
		if key < n.key {
			n = n.left
		} else {
			n = n.right
		}
	}
	return n
}

// Insert inserts key into the Tree. Keys equal to a stored key are placed in
// its right subtree, so the Tree may hold duplicates.
func (self *Tree) Insert(key int) {
	n := &node{key: key, color: Red, left: self.sentinel, right: self.sentinel}

	p := self.sentinel
	for c := self.root; c != self.sentinel; {
		p = c
		if key < c.key {
			c = c.left
		} else {
			c = c.right
		}
	}

	n.parent = p
	switch {
	case p == self.sentinel:
		self.root = n
	case key < p.key:
		p.left = n
	default:
		p.right = n
	}
	self.count++

	if p == self.sentinel {
		n.color = Black
		return
	}
	if p.parent == self.sentinel {
		// A red child of the black root.
		return
	}
	self.insertFixup(n)
}

func (self *Tree) insertFixup(n *node) {
	for n.parent.color == Red {
		p := n.parent
		g := p.parent
		if p == g.left {
			if u := g.right; u.color == Red {
				p.color = Black
				u.color = Black
				g.color = Red
				n = g
			} else {
				if n == p.right {
					n = p
					self.rotateLeft(n)
				}
				n.parent.color = Black
				n.parent.parent.color = Red
				self.rotateRight(n.parent.parent)
			}
		} else {
			if u := g.left; u.color == Red {
				p.color = Black
				u.color = Black
				g.color = Red
				n = g
			} else {
				if n == p.left {
					n = p
					self.rotateRight(n)
				}
				n.parent.color = Black
				n.parent.parent.color = Red
				self.rotateLeft(n.parent.parent)
			}
		}
		if n == self.root {
			break
		}
	}
	self.root.color = Black
}

// Delete deletes the first node found holding key. Delete is a no-op if key
// is not in the Tree.
func (self *Tree) Delete(key int) {
	z := self.search(key)
	if z == self.sentinel {
		return
	}

	var (
		y      = z
		yColor = y.color

		// x takes y's place and p is its parent. p is carried separately
		// since x may be the sentinel.
		x, p *node
	)
	switch {
	case z.left == self.sentinel:
		x, p = z.right, z.parent
		self.transplant(z, z.right)
	case z.right == self.sentinel:
		x, p = z.left, z.parent
		self.transplant(z, z.left)
	default:
		y = self.min(z.right)
		yColor = y.color
		x = y.right
		if y.parent == z {
			p = y
		} else {
			p = y.parent
			self.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
		}
		self.transplant(z, y)
		y.left = z.left
		y.left.parent = y
		y.color = z.color
	}
	self.count--

	z.left, z.right, z.parent = nil, nil, nil

	if yColor == Black {
		self.deleteFixup(x, p)
	}
}

// deleteFixup restores black-height balance after a black node was spliced
// out from above x. p is the parent of x.
func (self *Tree) deleteFixup(x, p *node) {
	for x != self.root && x.color == Black {
		if x == p.left {
			s := p.right
			if s.color == Red {
				s.color = Black
				p.color = Red
				self.rotateLeft(p)
				s = p.right
			}
			if s.left.color == Black && s.right.color == Black {
				s.color = Red
				x, p = p, p.parent
				continue
			}
			if s.right.color == Black {
				s.left.color = Black
				s.color = Red
				self.rotateRight(s)
				s = p.right
			}
			s.color = p.color
			p.color = Black
			s.right.color = Black
			self.rotateLeft(p)
			x = self.root
		} else {
			s := p.left
			if s.color == Red {
				s.color = Black
				p.color = Red
				self.rotateRight(p)
				s = p.left
			}
			if s.left.color == Black && s.right.color == Black {
				s.color = Red
				x, p = p, p.parent
				continue
			}
			if s.left.color == Black {
				s.right.color = Black
				s.color = Red
				self.rotateLeft(s)
				s = p.left
			}
			s.color = p.color
			p.color = Black
			s.left.color = Black
			self.rotateRight(p)
			x = self.root
		}
	}
	if x != self.sentinel {
		x.color = Black
	}
}

// transplant replaces the subtree rooted at u with the subtree rooted at v.
func (self *Tree) transplant(u, v *node) {
	switch {
	case u.parent == self.sentinel:
		self.root = v
	case u == u.parent.left:
		u.parent.left = v
	default:
		u.parent.right = v
	}
	if v != self.sentinel {
		v.parent = u.parent
	}
}

// (a,c)b -rotL-> ((a,)b,)c
func (self *Tree) rotateLeft(x *node) {
	y := x.right
	x.right = y.left
	if y.left != self.sentinel {
		y.left.parent = x
	}
	y.parent = x.parent
	switch {
	case x.parent == self.sentinel:
		self.root = y
	case x == x.parent.left:
		x.parent.left = y
	default:
		x.parent.right = y
	}
	y.left = x
	x.parent = y
}

// (a,c)b -rotR-> (,(,c)b)a
func (self *Tree) rotateRight(x *node) {
	y := x.left
	x.left = y.right
	if y.right != self.sentinel {
		y.right.parent = x
	}
	y.parent = x.parent
	switch {
	case x.parent == self.sentinel:
		self.root = y
	case x == x.parent.right:
		x.parent.right = y
	default:
		x.parent.left = y
	}
	y.right = x
	x.parent = y
}

func (self *Tree) min(n *node) *node {
	for n.left != self.sentinel {
		n = n.left
	}
	return n
}

func (self *Tree) max(n *node) *node {
	for n.right != self.sentinel {
		n = n.right
	}
	return n
}

// Min returns the minimum key stored in the Tree. The boolean is false if the
// Tree is empty.
func (self *Tree) Min() (int, bool) {
	if self.root == self.sentinel {
		return 0, false
	}
	return self.min(self.root).key, true
}

// Max returns the maximum key stored in the Tree. The boolean is false if the
// Tree is empty.
func (self *Tree) Max() (int, bool) {
	if self.root == self.sentinel {
		return 0, false
	}
	return self.max(self.root).key, true
}

// An Operation is a function that operates on a key. If done is returned true, the
// Operation is indicating that no further work needs to be done and so the Do function should
// traverse no further.
type Operation func(key int) (done bool)

// Do performs fn on all keys stored in the tree in sort order. A boolean is returned
// indicating whether the Do traversal was interupted by an Operation returning true.
func (self *Tree) Do(fn Operation) bool {
	return self.do(self.root, fn)
}

func (self *Tree) do(n *node, fn Operation) (done bool) {
	if n == self.sentinel {
		return
	}
	done = self.do(n.left, fn)
	if done {
		return
	}
	done = fn(n.key)
	if done {
		return
	}
	return self.do(n.right, fn)
}
