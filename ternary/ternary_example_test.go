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

package ternary_test

import (
	"fmt"

	"github.com/treeperf/store/ternary"
)

func Example() {
	t := &ternary.Tree{}
	for _, k := range []int{7, 3, 7, 9, 7} {
		t.Insert(k)
	}
	fmt.Println(t.Len(), t.Instances(7))

	t.Delete(7)
	fmt.Println(t.Len(), t.Instances(7))

	var keys []int
	t.Do(func(k int) (done bool) {
		keys = append(keys, k)
		return
	})
	fmt.Println(keys)

	// Output:
	// 5 3
	// 4 2
	// [3 7 7 9]
}
