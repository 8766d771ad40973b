// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx is a small logger handle carried explicitly through
// constructors, rather than a mutable global singleton (spec.md §9 Design
// Notes). It wraps gofem's own colored-print idiom (github.com/cpmech/gosl/io)
// and honors an "all"/"none" verbosity level plus a "treat warnings as
// errors" flag.
package logx
