// Copyright 2021 Cody Allen. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flow

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// checkPanic runs fcn and fails the test if it does not panic
func checkPanic(tst *testing.T, name string, fcn func()) {
	defer func() {
		if err := recover(); err == nil {
			tst.Errorf("%s: test should have panicked\n", name)
		} else {
			io.Pf("OK, panic comes: %v\n", err)
		}
	}()
	fcn()
}
