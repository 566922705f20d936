// Copyright 2021 Cody Allen. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gas

import (
	"github.com/codyallen08/psig-compressor-course/flow"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// InitReference initialises properties with one of the reference gas mixtures
//  Input:
//   name : "methane"   pure methane
//          "pipeline"  typical pipeline quality natural gas
//          "rich"      rich associated gas
//          "air"       dry air
func (o *Properties) InitReference(name string) (err error) {
	switch name {
	case "methane":
		o.Desc = "Methane: pure CH4"
		return o.Init(dbf.Params{
			&dbf.P{N: "G", V: flow.MMethane / flow.MAir},
			&dbf.P{N: "K", V: flow.KMethane},
		})
	case "pipeline":
		o.Desc = "Natural gas: typical pipeline quality"
		return o.Init(dbf.Params{
			&dbf.P{N: "G", V: 0.6},
			&dbf.P{N: "K", V: 1.3},
		})
	case "rich":
		o.Desc = "Natural gas: rich associated gas"
		return o.Init(dbf.Params{
			&dbf.P{N: "G", V: 0.7},
			&dbf.P{N: "K", V: 1.25},
		})
	case "air":
		o.Desc = "Air: dry"
		return o.Init(dbf.Params{
			&dbf.P{N: "G", V: 1.0},
			&dbf.P{N: "K", V: 1.4},
		})
	}
	return chk.Err("reference gas %q is unavailable", name)
}
