// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads and validates a run's configuration: iteration
// counts, time step, file locations, and the flag combinations spec.md §7
// rules on directly (saturation vs conserve-initial-norm, non-positive
// counts, duplicate type names).
package config
