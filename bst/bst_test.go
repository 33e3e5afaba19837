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

package bst

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/kr/pretty"
	check "gopkg.in/check.v1"
)

// Is this tree a BST with strictly increasing keys?
func (self *Node) isBST(min, max *int) bool {
	if self == nil {
		return true
	}
	if (min != nil && self.Key <= *min) || (max != nil && self.Key >= *max) {
		return false
	}
	return self.Left.isBST(min, &self.Key) && self.Right.isBST(&self.Key, max)
}

func keys(t *Tree) []int {
	var k []int
	t.Do(func(key int) (done bool) {
		k = append(k, key)
		return
	})
	return k
}

// Tests
func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

func (s *S) TestNilOperations(c *check.C) {
	t := &Tree{}
	c.Check(t.Search(0), check.Equals, false)
	t.Delete(0)
	c.Check(t, check.DeepEquals, &Tree{})
	c.Check(t.Height(), check.Equals, 0)
	c.Check(t.Do(func(int) bool { return true }), check.Equals, false)
}

func (s *S) TestInsertIgnoresDuplicates(c *check.C) {
	t := &Tree{}
	for _, k := range []int{5, 3, 5, 8, 3} {
		t.Insert(k)
	}
	c.Check(t.Len(), check.Equals, 3)
	c.Check(keys(t), check.DeepEquals, []int{3, 5, 8})
}

func (s *S) TestDeleteShapes(c *check.C) {
	t := &Tree{}
	for _, k := range []int{50, 30, 70, 20, 40, 60, 80} {
		t.Insert(k)
	}

	// Two children: the successor's key replaces the deleted key.
	t.Delete(30)
	want := &Node{Key: 50,
		Left: &Node{Key: 40,
			Left: &Node{Key: 20},
		},
		Right: &Node{Key: 70,
			Left:  &Node{Key: 60},
			Right: &Node{Key: 80},
		},
	}
	if diff := pretty.Diff(t.Root, want); len(diff) != 0 {
		c.Errorf("unexpected tree after deleting 30: %v", diff)
	}

	// One child.
	t.Delete(40)
	want.Left = &Node{Key: 20}
	c.Check(pretty.Diff(t.Root, want), check.HasLen, 0)

	// Leaf.
	t.Delete(80)
	want.Right.Right = nil
	c.Check(pretty.Diff(t.Root, want), check.HasLen, 0)

	// Root with two children.
	t.Delete(50)
	c.Check(t.Root.Key, check.Equals, 60)
	c.Check(keys(t), check.DeepEquals, []int{20, 60, 70})
	c.Check(t.Len(), check.Equals, 3)
}

func (s *S) TestSortedInsertionHeight(c *check.C) {
	t := &Tree{}
	for i := 0; i < 500; i++ {
		t.Insert(i)
	}
	c.Check(t.Height(), check.Equals, 500)
}

func (s *S) TestRandomInsertionDeletion(c *check.C) {
	var (
		count, max = 50000, 1000
		t          = &Tree{}
		verify     = map[int]struct{}{}
	)
	for i := 0; i < count; i++ {
		if rand.Float64() < 0.5 {
			k := rand.Intn(max)
			t.Insert(k)
			verify[k] = struct{}{}
		} else {
			k := rand.Intn(max)
			t.Delete(k)
			delete(verify, k)
		}
		c.Assert(t.Len(), check.Equals, len(verify))
	}
	c.Check(t.Root.isBST(nil, nil), check.Equals, true)
	want := make([]int, 0, len(verify))
	for k := range verify {
		want = append(want, k)
	}
	sort.Ints(want)
	c.Check(pretty.Diff(keys(t), want), check.HasLen, 0)
	for k := 0; k < max; k++ {
		_, ok := verify[k]
		c.Check(t.Search(k), check.Equals, ok)
	}
}

// Benchmarks

func BenchmarkInsert(b *testing.B) {
	t := &Tree{}
	for _, k := range rand.Perm(b.N) {
		t.Insert(k)
	}
}

func BenchmarkSearch(b *testing.B) {
	b.StopTimer()
	t := &Tree{}
	for _, k := range rand.Perm(b.N) {
		t.Insert(k)
	}
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		t.Search(i)
	}
}

func BenchmarkDelete(b *testing.B) {
	b.StopTimer()
	t := &Tree{}
	for _, k := range rand.Perm(b.N) {
		t.Insert(k)
	}
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		t.Delete(i)
	}
}
