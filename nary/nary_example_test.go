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

package nary_test

import (
	"fmt"

	"github.com/treeperf/store/nary"
)

func Example() {
	t, err := nary.New(2)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, k := range []int{1, 2, 3, 4, 5} {
		t.Insert(k)
	}
	// The last node in level order fills the hole left by 2.
	t.Delete(2)

	var keys []int
	t.Do(func(n *nary.Node) (done bool) {
		keys = append(keys, n.Key)
		return
	})
	fmt.Println(keys, t.Height())

	_, err = nary.New(0)
	fmt.Println(err)

	// Output:
	// [1 5 3 4] 3
	// nary: degree must be positive
}
