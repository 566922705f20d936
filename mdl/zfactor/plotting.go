// Copyright 2021 Cody Allen. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package zfactor

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// Plot plots compressibility factor versus pressure curves, one for each value
// in tavgs [°F]
func Plot(o Model, dirout, fnkey string, tavgs []float64, pmin, pmax float64, np int) {
	P := utl.LinSpace(pmin, pmax, np)
	Z := make([]float64, np)
	plt.Reset(false, nil)
	for _, t := range tavgs {
		for i, p := range P {
			Z[i] = o.Zfactor(t, p)
		}
		plt.Plot(P, Z, &plt.A{L: io.Sf("T = %g °F", t)})
	}
	plt.Gll("$p_{avg}$", "$z$", nil)
	plt.Save(dirout, fnkey)
}
