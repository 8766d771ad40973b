// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package partition computes the deterministic assignment of agent types to
// worker ranks, and the aggregated virtual-node wire layout between worker
// pairs. The boundary exchange engine uses only the rank assignment; it
// groups the contact edges itself.
package partition
