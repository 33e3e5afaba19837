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

// Package bench runs timed insert, search and delete passes over the integer
// keyed trees and reports the results.
package bench

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSize    = errors.New("bench: input sizes must be positive")
	ErrInvalidDegree  = errors.New("bench: n-ary degree must be positive")
	ErrUnknownVariant = errors.New("bench: unknown variant")
)

// Config describes a benchmark run.
type Config struct {
	Sizes     []int    // Workload sizes, one round per size.
	Degree    int      // Maximum degree of the n-ary tree.
	Seed      int64    // Seed for workload and probe generation.
	Variants  []string // Names of the variants to run. Empty means all.
	Baselines bool     // Also run the third-party baseline trees.
}

// DefaultConfig returns the standard five round configuration.
func DefaultConfig() Config {
	return Config{
		Sizes:  []int{10000, 20000, 30000, 40000, 50000},
		Degree: 5,
		Seed:   1,
	}
}

// Validate returns an error if the Config cannot be run.
func (c Config) Validate() error {
	if len(c.Sizes) == 0 {
		return ErrInvalidSize
	}
	for _, s := range c.Sizes {
		if s < 1 {
			return fmt.Errorf("%w: %d", ErrInvalidSize, s)
		}
	}
	if c.Degree < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidDegree, c.Degree)
	}
	_, err := c.variants()
	return err
}

// variants returns the variants selected by c in run order.
func (c Config) variants() ([]Variant, error) {
	all := Variants(c.Degree)
	if c.Baselines {
		all = append(all, Baselines()...)
	}
	if len(c.Variants) == 0 {
		return all, nil
	}

	byName := make(map[string]Variant, len(all))
	for _, v := range all {
		byName[v.Name] = v
	}
	sel := make([]Variant, 0, len(c.Variants))
	for _, name := range c.Variants {
		v, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
		}
		sel = append(sel, v)
	}
	return sel, nil
}
