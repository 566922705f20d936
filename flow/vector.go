// Copyright 2021 Cody Allen. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flow

import "github.com/cpmech/gosl/chk"

// This file implements elementwise versions of the flow formulae. State
// quantities that are uniform over the set of points (gas data, segment
// geometry) remain scalars; paired arrays must have equal lengths.

// KsucVec computes the suction constant for each pair of temperature and
// compressibility values
func KsucVec(tf, z []float64) []float64 {
	chk.IntAssert(len(tf), len(z))
	res := make([]float64, len(tf))
	for i := range tf {
		res[i] = Ksuc(tf[i], z[i])
	}
	return res
}

// QaToMassFlowVec converts actual volumetric flow values to mass flow
func QaToMassFlowVec(qa []float64, pSuction, ksuc, cmf float64) []float64 {
	res := make([]float64, len(qa))
	for i, q := range qa {
		res[i] = QaToMassFlow(q, pSuction, ksuc, cmf)
	}
	return res
}

// QbToMassFlowVec converts standard volumetric flow values to mass flow
func QbToMassFlowVec(qb []float64, rgas float64) []float64 {
	res := make([]float64, len(qb))
	for i, q := range qb {
		res[i] = QbToMassFlow(q, rgas)
	}
	return res
}

// MassFlowToQbVec converts mass flow values to standard volumetric flow
func MassFlowToQbVec(m []float64, rgas float64) []float64 {
	res := make([]float64, len(m))
	for i, mi := range m {
		res[i] = MassFlowToQb(mi, rgas)
	}
	return res
}

// MassFlowToQaVec converts mass flow values to actual volumetric flow
func MassFlowToQaVec(m []float64, ksuc, pSuction, cmf float64) []float64 {
	res := make([]float64, len(m))
	for i, mi := range m {
		res[i] = MassFlowToQa(mi, ksuc, pSuction, cmf)
	}
	return res
}

// QaToQbVec converts actual volumetric flow values to standard volumetric flow
func QaToQbVec(qa []float64, tSuction, pSuction, zSuction float64) []float64 {
	res := make([]float64, len(qa))
	for i, q := range qa {
		res[i] = QaToQb(q, tSuction, pSuction, zSuction)
	}
	return res
}

// AveragePressureVec computes the average pressure for each pair of upstream
// and downstream values
func AveragePressureVec(p1, p2 []float64) []float64 {
	chk.IntAssert(len(p1), len(p2))
	res := make([]float64, len(p1))
	for i := range p1 {
		res[i] = AveragePressure(p1[i], p2[i])
	}
	return res
}

// ZFactorCNGAVec computes the CNGA compressibility factor for each pair of
// average temperature and pressure values
func ZFactorCNGAVec(sg float64, tavg, pavg []float64) []float64 {
	chk.IntAssert(len(tavg), len(pavg))
	res := make([]float64, len(tavg))
	for i := range tavg {
		res[i] = ZFactorCNGA(sg, tavg[i], pavg[i])
	}
	return res
}

// GeneralFlowEqVec computes the general flow equation for each pair of upstream
// and downstream pressures
func GeneralFlowEqVec(p1, p2 []float64, d, g, tf, l, z, f float64) []float64 {
	chk.IntAssert(len(p1), len(p2))
	res := make([]float64, len(p1))
	for i := range p1 {
		res[i] = GeneralFlowEq(p1[i], p2[i], d, g, tf, l, z, f)
	}
	return res
}
