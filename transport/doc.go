// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package transport abstracts the point-to-point, non-blocking-receive
// semantics the boundary exchange protocol is built on, so the core can run
// against either an MPI cluster transport or an in-process channel-based
// transport for single-binary runs and tests.
package transport
