// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scaling

import (
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/dpedroso/pertsim/logx"
)

func Test_step01(tst *testing.T) {

	chk.PrintTitle("step01: three-plateau default curve")

	f := StepFunc{P0: 1, P1: 2, P2: 3}
	chk.Float64(tst, "t=0", 1e-15, f.F(0, nil), 1)
	chk.Float64(tst, "t=5", 1e-15, f.F(5, nil), 1)
	chk.Float64(tst, "t=5.5", 1e-15, f.F(5.5, nil), 2)
	chk.Float64(tst, "t=6", 1e-15, f.F(6, nil), 2)
	chk.Float64(tst, "t=8", 1e-15, f.F(8, nil), 3)
	chk.Float64(tst, "t=100", 1e-15, f.F(100, nil), 3)
}

func Test_registry01(tst *testing.T) {

	chk.PrintTitle("registry01: no file at all -> constant 0.5")

	r := NewRegistry(logx.New(logx.None, 0))
	chk.Float64(tst, "default", 1e-15, r.ScalarAt(Dissipation, 3.0), 0.5)
}

func Test_registry02(tst *testing.T) {

	chk.PrintTitle("registry02: per-node override falls back for unknown names")

	r := NewRegistry(logx.New(logx.None, 0))
	table, err := ParseParameterFile(strings.NewReader("name\tparameters\na\t1,2,3\n"))
	if err != nil {
		tst.Fatalf("ParseParameterFile failed: %v", err)
	}
	if err := r.LoadParameters(Dissipation, table, map[string]bool{"a": true, "b": true}); err != nil {
		tst.Fatalf("LoadParameters failed: %v", err)
	}
	chk.Float64(tst, "node a at t=0", 1e-15, r.ForNode(Dissipation, "a").F(0, nil), 1)
	chk.Float64(tst, "node b falls back to default", 1e-15, r.ForNode(Dissipation, "b").F(0, nil), 0.5)
}

func Test_registry03(tst *testing.T) {

	chk.PrintTitle("registry03: name absent from graph is ignored with a warning, not an error")

	r := NewRegistry(logx.New(logx.None, 0))
	table, err := ParseParameterFile(strings.NewReader("name\tparameters\nghost\t1,2,3\n"))
	if err != nil {
		tst.Fatalf("ParseParameterFile failed: %v", err)
	}
	if err := r.LoadParameters(Conservation, table, map[string]bool{"a": true}); err != nil {
		tst.Fatalf("LoadParameters should not fail on an unknown node name: %v", err)
	}
}
