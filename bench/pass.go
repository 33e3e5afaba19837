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
	"math/rand"
	"time"

	"github.com/treeperf/store"
)

// Workload returns size keys drawn uniformly from [0, size*10).
func Workload(size int, rnd *rand.Rand) []int {
	w := make([]int, size)
	for i := range w {
		w[i] = rnd.Intn(size * 10)
	}
	return w
}

// A Result holds the outcome of one pass of a variant over a workload.
type Result struct {
	Variant string
	Size    int

	Insert time.Duration
	Search time.Duration
	Delete time.Duration

	Searches int // Number of searches performed.
	Hits     int // Number of searches that found their key.
	Deletes  int // Number of deletes performed.
	Len      int // Final number of stored keys, or -1 if the tree does not report it.
}

// Pass inserts every key of workload into t in order, then performs len(workload)
// searches and len(workload)/2 deletes of keys picked from random workload
// positions. Each phase is timed separately.
func Pass(t store.Tree, workload []int, rnd *rand.Rand) Result {
	r := Result{
		Size:     len(workload),
		Searches: len(workload),
		Deletes:  len(workload) / 2,
		Len:      -1,
	}

	start := time.Now()
	for _, k := range workload {
		t.Insert(k)
	}
	r.Insert = time.Since(start)

	if len(workload) == 0 {
		if l, ok := t.(store.Lener); ok {
			r.Len = l.Len()
		}
		return r
	}

	start = time.Now()
	for i := 0; i < r.Searches; i++ {
		if t.Search(workload[rnd.Intn(len(workload))]) {
			r.Hits++
		}
	}
	r.Search = time.Since(start)

	start = time.Now()
	for i := 0; i < r.Deletes; i++ {
		t.Delete(workload[rnd.Intn(len(workload))])
	}
	r.Delete = time.Since(start)

	if l, ok := t.(store.Lener); ok {
		r.Len = l.Len()
	}
	return r
}
