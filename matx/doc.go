// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package matx implements a dense row-major matrix and column vector with
// the elementary operations the perturbation kernel needs: elementwise
// arithmetic, row/column insertion, column/row normalisation, transpose
// and a small-size determinant. It is not a general-purpose linear algebra
// package; only the operations the kernel actually calls are implemented.
package matx
