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
	"fmt"
	"io"
	"math/rand"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
)

// A Report holds the results of a Runner's run.
type Report struct {
	ID      uuid.UUID
	Seed    int64
	Start   time.Time
	Results []Result
}

// A Runner runs each selected variant over one workload per configured size.
type Runner struct {
	Config Config

	// Progress is called after each pass if not nil.
	Progress func(Result)
}

// NewRunner returns a Runner for cfg. The Config is validated.
func NewRunner(cfg Config) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Runner{Config: cfg}, nil
}

// Run performs the configured passes. All variants in a round share the same
// workload and each is given a fresh tree. Probe positions are drawn from a
// single source seeded with the Config's seed, so a run is reproducible.
func (r *Runner) Run() (*Report, error) {
	vs, err := r.Config.variants()
	if err != nil {
		return nil, err
	}
	rep := &Report{
		ID:    uuid.New(),
		Seed:  r.Config.Seed,
		Start: time.Now(),
	}
	rnd := rand.New(rand.NewSource(r.Config.Seed))
	for _, size := range r.Config.Sizes {
		if size < 1 {
			return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
		}
		w := Workload(size, rnd)
		for _, v := range vs {
			t, err := v.New(w)
			if err != nil {
				return nil, fmt.Errorf("bench: %s: %w", v.Name, err)
			}
			res := Pass(t, w, rnd)
			res.Variant = v.Name
			rep.Results = append(rep.Results, res)
			if r.Progress != nil {
				r.Progress(res)
			}
		}
	}
	return rep, nil
}

// WriteText writes the Report to w as an aligned table with one row per pass.
func (r *Report) WriteText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "run %s seed %d\n\n", r.ID, r.Seed); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "size\tvariant\tinsert (ns)\tsearch (ns)\tdelete (ns)\thits\tlen\t")
	for _, res := range r.Results {
		l := "-"
		if res.Len >= 0 {
			l = fmt.Sprint(res.Len)
		}
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\t%d/%d\t%s\t\n",
			res.Size, res.Variant,
			res.Insert.Nanoseconds(), res.Search.Nanoseconds(), res.Delete.Nanoseconds(),
			res.Hits, res.Searches, l,
		)
	}
	return tw.Flush()
}
