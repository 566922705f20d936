// Copyright 2021 Cody Allen. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package zfactor

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Ideal implements the ideal gas law as a trivial compressibility model
type Ideal struct{}

// add model to factory
func init() {
	allocators["ideal"] = func() Model { return new(Ideal) }
}

// Init initialises model
func (o *Ideal) Init(prms dbf.Params) (err error) {
	if len(prms) > 0 {
		return chk.Err("ideal model: model takes no parameters")
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Ideal) GetPrms(example bool) dbf.Params {
	return dbf.Params{}
}

// Zfactor returns one for any temperature and pressure
func (o Ideal) Zfactor(tavg, pavg float64) float64 {
	return 1.0
}
