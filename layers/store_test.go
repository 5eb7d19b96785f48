// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layers

import "testing"

func TestAddAndRetrieve(t *testing.T) {
	s := NewStore(3)
	p, err := s.AddFloat64("P")
	if err != nil {
		t.Fatalf("AddFloat64: %v", err)
	}
	p[0], p[1], p[2] = 1, 2, 3

	got, err := s.Float64("P")
	if err != nil {
		t.Fatalf("Float64: %v", err)
	}
	if got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Fatalf("Float64(\"P\") = %v, want [1 2 3]", got)
	}
}

func TestDuplicateNameRejected(t *testing.T) {
	s := NewStore(2)
	if _, err := s.AddInt("tag"); err != nil {
		t.Fatalf("AddInt: %v", err)
	}
	if _, err := s.AddFloat64("tag"); err == nil {
		t.Fatal("expected an error adding a layer under an already-used name")
	}
}

func TestTypeMismatchIsErrorNotPanic(t *testing.T) {
	s := NewStore(2)
	if _, err := s.AddBool("mask"); err != nil {
		t.Fatalf("AddBool: %v", err)
	}
	if _, err := s.Float64("mask"); err == nil {
		t.Fatal("expected an InvalidArgument error reading a bool layer as float64")
	}
	if _, err := s.Int("mask"); err == nil {
		t.Fatal("expected an InvalidArgument error reading a bool layer as int")
	}
}

func TestMissingNameIsError(t *testing.T) {
	s := NewStore(1)
	if _, err := s.Float64("nope"); err == nil {
		t.Fatal("expected an error for a name that was never added")
	}
}
