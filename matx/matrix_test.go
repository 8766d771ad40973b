// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matx

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_matrix01(tst *testing.T) {

	chk.PrintTitle("matrix01: get/set and out-of-range")

	m := NewMatrix(2, 3)
	if err := m.Set(0, 0, 1); err != nil {
		tst.Fatalf("Set failed: %v", err)
	}
	if err := m.Set(1, 2, 5); err != nil {
		tst.Fatalf("Set failed: %v", err)
	}
	v, err := m.Get(1, 2)
	if err != nil {
		tst.Fatalf("Get failed: %v", err)
	}
	chk.Float64(tst, "m[1,2]", 1e-15, v, 5)

	if _, err := m.Get(5, 0); err == nil {
		tst.Fatalf("expected out-of-range error")
	}
}

func Test_matrix02(tst *testing.T) {

	chk.PrintTitle("matrix02: copyAndAddRowsColsWithZeros preserves the prefix block")

	m := NewMatrixFrom2D([][]float64{{1, 2}, {3, 4}})
	big := m.CopyAndAddRowsColsWithZeros(1, 2)
	if big.Rows() != 3 || big.Cols() != 4 {
		tst.Fatalf("expected 3x4, got %dx%d", big.Rows(), big.Cols())
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			got, _ := big.Get(i, j)
			want, _ := m.Get(i, j)
			chk.Float64(tst, "prefix block", 1e-15, got, want)
		}
	}
	for j := 2; j < 4; j++ {
		got, _ := big.Get(0, j)
		chk.Float64(tst, "added column is zero", 1e-15, got, 0)
	}
	got, _ := big.Get(2, 0)
	chk.Float64(tst, "added row is zero", 1e-15, got, 0)
}

func Test_matrix03(tst *testing.T) {

	chk.PrintTitle("matrix03: normalizeByVectorColumn never divides by zero")

	m := NewMatrixFrom2D([][]float64{{1, 2}, {3, 4}})
	if err := m.NormalizeByVectorColumn([]float64{0, 0}); err != nil {
		tst.Fatalf("NormalizeByVectorColumn failed: %v", err)
	}
	v00, _ := m.Get(0, 0)
	if v00 != 1/normEps {
		tst.Fatalf("expected division by epsilon, got %v", v00)
	}
}

func Test_matrix04(tst *testing.T) {

	chk.PrintTitle("matrix04: determinant closed forms")

	d1, _ := NewMatrixFrom2D([][]float64{{5}}).Det()
	chk.Float64(tst, "det 1x1", 1e-15, d1, 5)

	d2, _ := NewMatrixFrom2D([][]float64{{1, 2}, {3, 4}}).Det()
	chk.Float64(tst, "det 2x2", 1e-15, d2, -2)

	d3, _ := NewMatrixFrom2D([][]float64{
		{1, 0, 2},
		{0, 1, 1},
		{1, 1, 0},
	}).Det()
	chk.Float64(tst, "det 3x3", 1e-15, d3, -3)

	d4, _ := Identity(4).Det()
	chk.Float64(tst, "det identity 4x4 (laplace expansion)", 1e-15, d4, 1)
}

func Test_matrix05(tst *testing.T) {

	chk.PrintTitle("matrix05: transpose and addRow/addColumn")

	m := NewMatrixFrom2D([][]float64{{1, 2, 3}, {4, 5, 6}})
	tr := m.Transpose()
	if tr.Rows() != 3 || tr.Cols() != 2 {
		tst.Fatalf("expected 3x2, got %dx%d", tr.Rows(), tr.Cols())
	}
	v, _ := tr.Get(2, 1)
	chk.Float64(tst, "transpose[2,1]", 1e-15, v, 6)

	if err := m.AddRow(1, []float64{7, 8, 9}); err != nil {
		tst.Fatalf("AddRow failed: %v", err)
	}
	got, _ := m.Get(1, 0)
	chk.Float64(tst, "inserted row", 1e-15, got, 7)
	got, _ = m.Get(2, 0)
	chk.Float64(tst, "shifted row", 1e-15, got, 4)

	if err := m.AddColumn(0, []float64{1, 2, 3}); err != nil {
		tst.Fatalf("AddColumn failed: %v", err)
	}
	got, _ = m.Get(0, 0)
	chk.Float64(tst, "inserted column", 1e-15, got, 1)
}
