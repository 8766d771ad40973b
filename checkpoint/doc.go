// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package checkpoint saves and restores an agent's inputAugmented state to
// and from disk, so an interrupted run can resume from the last completed
// (outer, inner) step instead of restarting from scratch.
package checkpoint
