// Copyright 2021 Cody Allen. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compressor

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// PlotHead plots compressor head versus the compression ratio pd/ps, one curve
// for each mratio value
//  Input:
//   dirout   -- output directory
//   fnkey    -- filename key
//   tSuction -- suction temperature [°R]
//   zAvg     -- average compressibility factor
//   rgas     -- individual gas constant [ft・lbf/(lb・°R)]
//   mratios  -- one (k-1)/k value per curve
//   rmin     -- minimum compression ratio (must be > 0)
//   rmax     -- maximum compression ratio
//   np       -- number of points along each curve
func PlotHead(dirout, fnkey string, tSuction, zAvg, rgas float64, mratios []float64, rmin, rmax float64, np int) {
	R := utl.LinSpace(rmin, rmax, np)
	H := make([]float64, np)
	plt.Reset(false, nil)
	for _, mratio := range mratios {
		for i, r := range R {
			H[i] = Head(1.0, r, zAvg, mratio, tSuction, rgas)
		}
		plt.Plot(R, H, &plt.A{L: io.Sf("$m=%g$", mratio)})
	}
	plt.Gll("$p_d/p_s$", "$H$", nil)
	plt.Save(dirout, fnkey)
}
