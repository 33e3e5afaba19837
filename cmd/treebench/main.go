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

// treebench times insert, search and delete passes over the integer keyed trees
// for a series of input sizes and writes a report.
package main

import (
	"flag"
	"os"
	"time"

	"github.com/golang/glog"
	"github.com/spf13/pflag"

	"github.com/treeperf/store/bench"
)

var def = bench.DefaultConfig()

var (
	sizes     = pflag.IntSlice("sizes", def.Sizes, "Input sizes, one round per size")
	degree    = pflag.Int("degree", def.Degree, "Maximum degree of the n-ary tree")
	seed      = pflag.Int64("seed", def.Seed, "Seed for workloads and probes; 0 uses the current time")
	variants  = pflag.StringSlice("variants", nil, "Variants to run, defaults to all of them")
	baselines = pflag.Bool("baselines", false, "Also run the third-party baseline trees")
	out       = pflag.String("out", "", "File to write the report to, defaults to stdout")
)

func main() {
	pflag.CommandLine.AddGoFlagSet(flag.CommandLine)
	pflag.Parse()
	defer glog.Flush()

	cfg := bench.Config{
		Sizes:     *sizes,
		Degree:    *degree,
		Seed:      *seed,
		Variants:  *variants,
		Baselines: *baselines,
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	r, err := bench.NewRunner(cfg)
	if err != nil {
		glog.Exitf("treebench: %v", err)
	}
	r.Progress = func(res bench.Result) {
		glog.Infof("%s size=%d insert=%v search=%v delete=%v hits=%d/%d",
			res.Variant, res.Size, res.Insert, res.Search, res.Delete, res.Hits, res.Searches)
	}

	rep, err := r.Run()
	if err != nil {
		glog.Exitf("treebench: %v", err)
	}
	glog.Infof("run %s complete: %d passes", rep.ID, len(rep.Results))

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			glog.Exitf("treebench: cannot create report: %v", err)
		}
		defer f.Close()
		w = f
	}
	if err := rep.WriteText(w); err != nil {
		glog.Exitf("treebench: cannot write report: %v", err)
	}
}
