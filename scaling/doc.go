// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scaling implements the time-indexed scaling-function registry:
// dissipation γ(t), conservation θ(t) and propagation ω(t), each either a
// single scalar curve or a per-node table of curves loaded from a parameter
// file, plus the (non time-indexed) saturation function. Every curve is a
// github.com/cpmech/gosl/fun.Func, the same time-indexed function interface
// gofem uses for its own boundary-condition and time-step functions.
package scaling
