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

func Test_geq01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("geq01. general flow equation")

	p1, p2 := 1200.0, 1000.0
	d, g, tf, l, z, f := 15.5, 0.6, 520.0, 50.0, 0.85, 0.01

	q := GeneralFlowEq(p1, p2, d, g, tf, l, z, f)
	rad := (p1*p1 - p2*p2) / (g * tf * l * z * f)
	chk.Float64(tst, "q", 1e-6, q, Kf*(Tb/Pb)*math.Pow(d, 2.5)*math.Sqrt(rad))
	io.Pf("q = %v [scf/day]\n", q)

	// flow scales with the inverse square root of length
	chk.Float64(tst, "q(4l)", 1e-6, GeneralFlowEq(p1, p2, d, g, tf, 4.0*l, z, f), q/2.0)

	// and with diameter^2.5
	chk.Float64(tst, "q(2d)", 1e-4, GeneralFlowEq(p1, p2, 2.0*d, g, tf, l, z, f), q*math.Pow(2.0, 2.5))

	// no flow without pressure differential
	chk.Float64(tst, "q(p,p)", 1e-15, GeneralFlowEq(p1, p1, d, g, tf, l, z, f), 0)

	// elementwise version
	P1 := utl.LinSpace(1100, 1400, 7)
	P2 := utl.LinSpace(900, 1000, 7)
	Q := GeneralFlowEqVec(P1, P2, d, g, tf, l, z, f)
	for i := range Q {
		chk.Float64(tst, "q vec", 1e-15, Q[i], GeneralFlowEq(P1[i], P2[i], d, g, tf, l, z, f))
	}
}

func Test_geq02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("geq02. empirical transmission equations")

	p1, p2 := 1200.0, 1000.0
	d, g, tf, l, z := 15.5, 0.6, 520.0, 50.0, 0.85
	ef := 0.95

	qw := Weymouth(p1, p2, d, g, tf, l, z, ef)
	radw := (p1*p1 - p2*p2) / (g * tf * l * z)
	chk.Float64(tst, "Weymouth", 1e-6, qw, KWeymouth*(Tb/Pb)*math.Sqrt(radw)*math.Pow(d, 2.667)*ef)

	qpa := PanhandleA(p1, p2, d, g, tf, l, z, ef)
	radpa := (p1*p1 - p2*p2) / (math.Pow(g, 0.8539) * tf * l * z)
	chk.Float64(tst, "Panhandle A", 1e-6, qpa, KPanhandleA*math.Pow(Tb/Pb, 1.0788)*math.Pow(radpa, 0.5394)*math.Pow(d, 2.6182)*ef)

	qpb := PanhandleB(p1, p2, d, g, tf, l, z, ef)
	radpb := (p1*p1 - p2*p2) / (math.Pow(g, 0.961) * tf * l * z)
	chk.Float64(tst, "Panhandle B", 1e-6, qpb, KPanhandleB*math.Pow(Tb/Pb, 1.02)*math.Pow(radpb, 0.51)*math.Pow(d, 2.53)*ef)

	io.Pf("Weymouth    = %v [scf/day]\n", qw)
	io.Pf("Panhandle A = %v [scf/day]\n", qpa)
	io.Pf("Panhandle B = %v [scf/day]\n", qpb)

	// flow is linear in the efficiency factor
	chk.Float64(tst, "Weymouth ef", 1e-6, Weymouth(p1, p2, d, g, tf, l, z, 1.0)*ef, qw)
	chk.Float64(tst, "Panhandle A ef", 1e-6, PanhandleA(p1, p2, d, g, tf, l, z, 1.0)*ef, qpa)
	chk.Float64(tst, "Panhandle B ef", 1e-6, PanhandleB(p1, p2, d, g, tf, l, z, 1.0)*ef, qpb)
}

func Test_geq03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("geq03. infeasible pressure drops are refused")

	d, g, tf, l, z, f := 15.5, 0.6, 520.0, 50.0, 0.85, 0.01

	// downstream pressure above upstream pressure
	checkPanic(tst, "GeneralFlowEq", func() { GeneralFlowEq(1000, 1200, d, g, tf, l, z, f) })
	checkPanic(tst, "Weymouth", func() { Weymouth(1000, 1200, d, g, tf, l, z, 0.95) })
	checkPanic(tst, "PanhandleA", func() { PanhandleA(1000, 1200, d, g, tf, l, z, 0.95) })
	checkPanic(tst, "PanhandleB", func() { PanhandleB(1000, 1200, d, g, tf, l, z, 0.95) })

	// vanishing divisor
	checkPanic(tst, "GeneralFlowEq divisor", func() { GeneralFlowEq(1200, 1000, d, 0, tf, l, z, f) })
	checkPanic(tst, "Weymouth divisor", func() { Weymouth(1200, 1000, d, g, 0, l, z, 0.95) })
}
