// Copyright 2021 Cody Allen. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flow

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func Test_fric01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fric01. Reynolds number and Colebrook friction factor")

	qb := 100.0e6 // [scf/day]
	g := 0.6
	mu := 8e-6 // [lb/(ft・s)]
	d := 15.5  // [in]

	re := ReynoldsNumber(qb, g, mu, d)
	chk.Float64(tst, "Re", 1e-6, re, 0.0004778*(Pb/Tb)*g*qb/(mu*d))
	io.Pf("Re = %v\n", re)
	if re <= 4000 {
		tst.Errorf("flow must be turbulent at transmission pipeline conditions\n")
	}

	// the solution satisfies the Colebrook equation
	e := 0.0007 // [in]
	f := FrictionFactorColebrook(re, e, d)
	x := 1.0 / math.Sqrt(f)
	resid := x + 2.0*math.Log10(e/(3.7*d)+2.51*x/re)
	io.Pf("f = %v  resid = %v\n", f, resid)
	chk.Float64(tst, "Colebrook residual", 1e-8, resid, 0)

	// transmission factor
	F := TransmissionFactor(f)
	chk.Float64(tst, "F", 1e-12, F, 2.0*x)
	if F < 10 || F > 26 {
		tst.Errorf("transmission factor F = %g is outside the typical range\n", F)
	}
}

func Test_fric02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fric02. friction factor trends")

	e, d := 0.0007, 15.5

	// f decreases with Re towards the fully rough limit
	Re := utl.LinSpace(1e5, 1e7, 12)
	F := make([]float64, len(Re))
	io.PfWhite("%14s%14s\n", "Re", "f")
	for i, r := range Re {
		F[i] = FrictionFactorColebrook(r, e, d)
		io.Pf("%14.0f%14.8f\n", r, F[i])
		if i > 0 && F[i] >= F[i-1] {
			tst.Errorf("friction factor must decrease with the Reynolds number\n")
		}
	}

	// rougher pipe gives more friction
	fSmooth := FrictionFactorColebrook(1e6, 0, d)
	fRough := FrictionFactorColebrook(1e6, 0.002, d)
	io.Pf("f(smooth) = %v  f(rough) = %v\n", fSmooth, fRough)
	if fRough <= fSmooth {
		tst.Errorf("rough pipe must have a larger friction factor than smooth pipe\n")
	}
}

func Test_fric03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fric03. friction domain errors")

	checkPanic(tst, "laminar", func() { FrictionFactorColebrook(1500, 0.0007, 15.5) })
	checkPanic(tst, "roughness", func() { FrictionFactorColebrook(1e6, -0.0007, 15.5) })
	checkPanic(tst, "diameter", func() { FrictionFactorColebrook(1e6, 0.0007, 0) })
	checkPanic(tst, "transmission", func() { TransmissionFactor(0) })
	checkPanic(tst, "reynolds", func() { ReynoldsNumber(100e6, 0.6, 0, 15.5) })
}
