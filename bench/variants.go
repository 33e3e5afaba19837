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

package bench

import (
	"github.com/treeperf/store"
	"github.com/treeperf/store/bst"
	"github.com/treeperf/store/nary"
	"github.com/treeperf/store/rbtree"
	"github.com/treeperf/store/segment"
	"github.com/treeperf/store/ternary"
)

// A Variant names a tree and constructs a fresh instance of it for a workload.
type Variant struct {
	Name string
	New  func(workload []int) (store.Tree, error)
}

// Variants returns the five tree variants in run order. degree is the maximum
// degree of the n-ary tree.
func Variants(degree int) []Variant {
	return []Variant{
		{Name: "BST", New: func([]int) (store.Tree, error) { return &bst.Tree{}, nil }},
		{Name: "RBTree", New: func([]int) (store.Tree, error) { return rbtree.New(), nil }},
		{Name: "SegmentTree", New: func(w []int) (store.Tree, error) { return segment.New(w), nil }},
		{Name: "TernaryTree", New: func([]int) (store.Tree, error) { return &ternary.Tree{}, nil }},
		{Name: "NaryTree", New: func([]int) (store.Tree, error) {
			t, err := nary.New(degree)
			if err != nil {
				return nil, err
			}
			return t, nil
		}},
	}
}
