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

// Package segment implements a static sum segment tree over an integer array.
//
// The tree is built once from a slice of values and its extent is fixed. It
// satisfies store.Tree only nominally: Insert does nothing, Search always
// reports false and Delete(i) sets the value at index i to zero.
package segment

import (
	"errors"

	"github.com/treeperf/store"
)

var (
	_ store.Tree  = (*Tree)(nil)
	_ store.Lener = (*Tree)(nil)
)

// ErrOutOfRange is returned when an index outside the extent of the Tree is used.
var ErrOutOfRange = errors.New("segment: index out of range")

// A Tree is an array backed segment tree holding the sum of each segment.
// Node i has children 2i+1 and 2i+2.
type Tree struct {
	sums   []int
	values []int
}

// New returns a Tree built over a copy of values.
func New(values []int) *Tree {
	t := &Tree{
		sums:   make([]int, 4*len(values)),
		values: append([]int(nil), values...),
	}
	if len(values) != 0 {
		t.build(0, 0, len(values)-1)
	}
	return t
}

func (t *Tree) build(n, start, end int) {
	if start == end {
		t.sums[n] = t.values[start]
		return
	}
	mid := (start + end) / 2
	t.build(2*n+1, start, mid)
	t.build(2*n+2, mid+1, end)
	t.sums[n] = t.sums[2*n+1] + t.sums[2*n+2]
}

// Len returns the number of values the Tree was built over.
func (t *Tree) Len() int { return len(t.values) }

// Sum returns the sum of all values held by the Tree.
func (t *Tree) Sum() int {
	if len(t.values) == 0 {
		return 0
	}
	return t.sums[0]
}

// At returns the value at index i.
func (t *Tree) At(i int) (int, error) {
	if i < 0 || i >= len(t.values) {
		return 0, ErrOutOfRange
	}
	return t.values[i], nil
}

// Update sets the value at index i to v and updates the sums covering i.
func (t *Tree) Update(i, v int) error {
	if i < 0 || i >= len(t.values) {
		return ErrOutOfRange
	}
	t.update(0, 0, len(t.values)-1, i, v)
	return nil
}

func (t *Tree) update(n, start, end, i, v int) {
	if start == end {
		t.values[start] = v
		t.sums[n] = v
		return
	}
	mid := (start + end) / 2
	if i <= mid {
		t.update(2*n+1, start, mid, i, v)
	} else {
		t.update(2*n+2, mid+1, end, i, v)
	}
	t.sums[n] = t.sums[2*n+1] + t.sums[2*n+2]
}

// Insert does nothing. The extent of a Tree is fixed at construction.
func (t *Tree) Insert(key int) {}

// Search always returns false. A Tree holds positional values, not keys.
func (t *Tree) Search(key int) bool { return false }

// Delete sets the value at index i to zero. Indices outside the extent of the
// Tree are ignored.
func (t *Tree) Delete(i int) {
	_ = t.Update(i, 0)
}
