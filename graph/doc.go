// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package graph implements a named, weighted, directed graph kept in two
// synchronised representations: an adjacency-set form (for neighbourhood
// queries) and a dense adjacency matrix (for the perturbation kernel's
// linear algebra). Every mutator preserves both representations atomically:
// an edge (s,d,w) appears in the edge list iff d is in s's out-adjacency set
// iff the matrix entry at (s,d) equals w.
package graph
