// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package layers holds named, fixed-length, typed arrays over a mesh
// entity set (cells or edges), the way the original source's
// LayerManager dispatches over a closed set of element types — except
// keyed by name instead of numeric index, and narrowed to the three
// element types this engine ever produces (SPEC_FULL.md §3): solution
// fields, integer tags, boolean masks.
package layers

import "github.com/GregTheMadMonk/lmhfe-diffprog/lmerr"

// Store holds layers of a fixed length n (the entity count: |cells| or
// |edges|). Every layer added to a Store must have that length.
type Store struct {
	n      int
	floats map[string][]float64
	ints   map[string][]int
	bools  map[string][]bool
}

// NewStore builds an empty Store over n entities.
func NewStore(n int) *Store {
	return &Store{
		n:      n,
		floats: make(map[string][]float64),
		ints:   make(map[string][]int),
		bools:  make(map[string][]bool),
	}
}

func (s *Store) taken(name string) bool {
	_, f := s.floats[name]
	_, i := s.ints[name]
	_, b := s.bools[name]
	return f || i || b
}

// AddFloat64 creates a new zeroed []float64 layer named name and returns
// it for the caller to fill in place.
func (s *Store) AddFloat64(name string) ([]float64, error) {
	if s.taken(name) {
		return nil, lmerr.New(lmerr.InvalidArgument, "layers: %q already exists", name)
	}
	v := make([]float64, s.n)
	s.floats[name] = v
	return v, nil
}

// AddInt creates a new zeroed []int layer named name.
func (s *Store) AddInt(name string) ([]int, error) {
	if s.taken(name) {
		return nil, lmerr.New(lmerr.InvalidArgument, "layers: %q already exists", name)
	}
	v := make([]int, s.n)
	s.ints[name] = v
	return v, nil
}

// AddBool creates a new zeroed []bool layer named name.
func (s *Store) AddBool(name string) ([]bool, error) {
	if s.taken(name) {
		return nil, lmerr.New(lmerr.InvalidArgument, "layers: %q already exists", name)
	}
	v := make([]bool, s.n)
	s.bools[name] = v
	return v, nil
}

// Float64 returns the named []float64 layer. A type mismatch (the name
// exists under a different element type) is an InvalidArgument error,
// not a panic, because a caller reading an export layer by name does
// not control what an earlier stage wrote under it.
func (s *Store) Float64(name string) ([]float64, error) {
	if v, ok := s.floats[name]; ok {
		return v, nil
	}
	if s.taken(name) {
		return nil, lmerr.New(lmerr.InvalidArgument, "layers: %q is not a float64 layer", name)
	}
	return nil, lmerr.New(lmerr.InvalidArgument, "layers: no such layer %q", name)
}

// Int returns the named []int layer.
func (s *Store) Int(name string) ([]int, error) {
	if v, ok := s.ints[name]; ok {
		return v, nil
	}
	if s.taken(name) {
		return nil, lmerr.New(lmerr.InvalidArgument, "layers: %q is not an int layer", name)
	}
	return nil, lmerr.New(lmerr.InvalidArgument, "layers: no such layer %q", name)
}

// Bool returns the named []bool layer.
func (s *Store) Bool(name string) ([]bool, error) {
	if v, ok := s.bools[name]; ok {
		return v, nil
	}
	if s.taken(name) {
		return nil, lmerr.New(lmerr.InvalidArgument, "layers: %q is not a bool layer", name)
	}
	return nil, lmerr.New(lmerr.InvalidArgument, "layers: no such layer %q", name)
}

// Len returns the fixed entity count every layer in this Store shares.
func (s *Store) Len() int { return s.n }

// Names returns every layer name currently held, in no particular order.
func (s *Store) Names() []string {
	out := make([]string, 0, len(s.floats)+len(s.ints)+len(s.bools))
	for name := range s.floats {
		out = append(out, name)
	}
	for name := range s.ints {
		out = append(out, name)
	}
	for name := range s.bools {
		out = append(out, name)
	}
	return out
}
