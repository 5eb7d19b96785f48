// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lmerr defines the error kinds shared by every package in this
// module: InvalidArgument, InvariantViolation, ConvergenceFailure and
// IOFailure (see spec.md §7). InvariantViolation is reserved for
// programming errors and is raised with gosl/chk.Panic rather than
// returned, matching gofem's convention for "this should never happen"
// conditions (e.g. fem/domain.go's chk.Panic calls).
package lmerr

import "fmt"

// Kind classifies the error so callers can decide whether to retry.
type Kind int

const (
	// InvalidArgument marks a malformed problem or bad input: size
	// mismatches, a zero time step, nonpositive mesh dimensions.
	InvalidArgument Kind = iota
	// InvariantViolation marks a broken internal contract: a duplicate
	// CSR Push, a row pushed past its reserved capacity. These are
	// caller bugs, not recoverable input errors — raised via panic.
	InvariantViolation
	// ConvergenceFailure marks a GMRES run that exhausted MaxIters above
	// tolerance. gmres.Solve still returns its best iterate; LMHFE.Step
	// does not store it and leaves P, TP and the time unchanged.
	ConvergenceFailure
	// IOFailure marks an unreadable or malformed mesh file.
	IOFailure
)

func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "InvalidArgument"
	case InvariantViolation:
		return "InvariantViolation"
	case ConvergenceFailure:
		return "ConvergenceFailure"
	case IOFailure:
		return "IOFailure"
	default:
		return "Unknown"
	}
}

// Error wraps a Kind with a formatted message.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return fmt.Sprintf("%s: %s", e.Kind, e.Msg) }

// New builds an *Error of the given kind, formatting msg/args like fmt.Sprintf.
func New(kind Kind, msg string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(msg, args...)}
}

// Is reports whether err is itself an *Error of the given kind. A wrapped
// error is not unwrapped.
func Is(err error, kind Kind) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == kind
}
