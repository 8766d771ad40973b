// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package exchange implements the boundary exchange protocol of spec.md
// §4.8: post_recv, pack, send, wait, gated delivery. It runs once per outer
// tick, moving virtual-output values from sending agents into virtual-input
// values on receiving agents across a partition.Plan, over a
// transport.Transport.
package exchange
