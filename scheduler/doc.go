// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scheduler drives the two-level outer/inner loop of spec.md §4.9:
// checkpoint-before-every-inner-step, bounded-parallel per-agent perturb
// and update-input, boundary exchange once per outer tick, and the two
// output modes.
package scheduler
