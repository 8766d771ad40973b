// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package operators implements the three composable numeric transforms of
// the perturbation kernel — dissipation, conservation, propagation — each as
// a tagged-variant Go type sharing a common Apply/Term contract, per the
// "tagged variant, not inheritance" strategy of spec.md §9 Design Notes.
package operators
