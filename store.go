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

// Package store defines the operations shared by the integer keyed trees
// in the rbtree, bst, segment, ternary and nary packages.
package store

// A Tree is a container of integer keys supporting insertion, membership
// query and deletion.
//
// None of the operations fail. Searching for or deleting a key that is not
// present is a defined outcome: Search returns false and Delete does nothing.
type Tree interface {
	// Insert adds key to the Tree. After Insert returns, Search(key) reports
	// true unless the implementation documents otherwise.
	Insert(key int)

	// Search returns whether an element with exactly key is held by the Tree.
	Search(key int) bool

	// Delete removes a single instance of key from the Tree. If key was the
	// only instance, Search(key) reports false afterwards.
	Delete(key int)
}

// A Lener is a Tree that can report the number of elements it holds.
type Lener interface {
	Len() int
}
