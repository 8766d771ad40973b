// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package agent implements the per-agent perturbation computation: the
// un-augmented and augmented graphs, the input/output state vectors, the
// dissipation/conservation/propagation operators and the saturation
// function, combined into the five-step perturbation kernel.
package agent
