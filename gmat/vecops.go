// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gmat provides the sparse (CSR) and dense row-major matrix
// storage the rest of this module solves against, plus the free vector
// primitives (dot product, Euclidean norm) spec.md §4.1 asks for.
package gmat

import "gonum.org/v1/gonum/floats"

// Dot returns the dot product of u and v, which must have equal length.
// Delegates to gonum/floats.Dot — there is no richer contract to add on
// top of a two-vector dot product, so a hand-rolled loop would just be a
// slower, unverified copy of what gonum already ships.
func Dot(u, v []float64) float64 {
	return floats.Dot(u, v)
}

// Norm returns the Euclidean (L2) norm of v.
func Norm(v []float64) float64 {
	return floats.Norm(v, 2)
}
