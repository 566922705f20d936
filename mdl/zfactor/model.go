// Copyright 2021 Cody Allen. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package zfactor implements models for the compressibility factor of natural gas
//  References:
//   [1] Menon ES (2005) Gas Pipeline Hydraulics. Taylor & Francis, 408p
//       http://dx.doi.org/10.1201/9781420038224
package zfactor

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model defines compressibility factor models
type Model interface {
	Init(prms dbf.Params) error         // Init initialises this structure
	GetPrms(example bool) dbf.Params    // gets (an example) of parameters
	Zfactor(tavg, pavg float64) float64 // Zfactor computes z at tavg [°F] and pavg [psia]
}

// New compressibility factor model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'zfactor' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}
