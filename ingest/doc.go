// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ingest reads the TSV external interfaces of spec.md §6: graph
// edge lists, initial-value vectors (single file or a folder per type),
// the contact/interaction file, and scaling-function parameter files. It
// is kept deliberately thin: it parses file shapes into plain Go values,
// leaving everything else (CLI flags, which files to read) to cmd/pertsim.
package ingest
