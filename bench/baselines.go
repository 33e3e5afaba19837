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
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"

	"github.com/treeperf/store"
)

// btreeDegree is the branching factor of the B-tree baseline.
const btreeDegree = 32

var (
	_ store.Tree  = btreeWrap{}
	_ store.Lener = btreeWrap{}
	_ store.Tree  = llrbWrap{}
	_ store.Lener = llrbWrap{}
	_ store.Tree  = godsWrap{}
	_ store.Lener = godsWrap{}
)

// Baselines returns third-party ordered trees adapted to store.Tree. The
// baselines hold sets: inserting a stored key does not add a second instance.
func Baselines() []Variant {
	return []Variant{
		{Name: "BTree", New: func([]int) (store.Tree, error) {
			return btreeWrap{btree.NewOrderedG[int](btreeDegree)}, nil
		}},
		{Name: "LLRB", New: func([]int) (store.Tree, error) {
			return llrbWrap{llrb.New()}, nil
		}},
		{Name: "GodsRBTree", New: func([]int) (store.Tree, error) {
			return godsWrap{redblacktree.NewWithIntComparator()}, nil
		}},
	}
}

type btreeWrap struct {
	tree *btree.BTreeG[int]
}

func (b btreeWrap) Insert(key int) { b.tree.ReplaceOrInsert(key) }
func (b btreeWrap) Search(key int) bool { return b.tree.Has(key) }
func (b btreeWrap) Delete(key int) { b.tree.Delete(key) }
func (b btreeWrap) Len() int { return b.tree.Len() }

type llrbWrap struct {
	tree *llrb.LLRB
}

func (l llrbWrap) Insert(key int) { l.tree.ReplaceOrInsert(llrb.Int(key)) }
func (l llrbWrap) Search(key int) bool { return l.tree.Has(llrb.Int(key)) }
func (l llrbWrap) Delete(key int) { l.tree.Delete(llrb.Int(key)) }
func (l llrbWrap) Len() int { return l.tree.Len() }

type godsWrap struct {
	tree *redblacktree.Tree
}

func (g godsWrap) Insert(key int) { g.tree.Put(key, struct{}{}) }
func (g godsWrap) Search(key int) bool {
	_, found := g.tree.Get(key)
	return found
}
func (g godsWrap) Delete(key int) { g.tree.Remove(key) }
func (g godsWrap) Len() int { return g.tree.Size() }
