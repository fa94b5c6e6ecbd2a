// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package aerr defines the typed error taxonomy shared by every automesh
// package: voxel, mesh, topo, smooth, fe and the io adapters.
package aerr

import (
	"fmt"

	"github.com/cpmech/gosl/chk"
)

// Kind classifies an error without tying callers to a specific message string.
type Kind int

// kinds
const (
	InputFormat Kind = iota
	ShapeMismatch
	StateOrdering
	InvariantViolation
	UnknownOption
	IOFailure
)

// String returns the name of the kind
func (k Kind) String() string {
	switch k {
	case InputFormat:
		return "InputFormat"
	case ShapeMismatch:
		return "ShapeMismatch"
	case StateOrdering:
		return "StateOrdering"
	case InvariantViolation:
		return "InvariantViolation"
	case UnknownOption:
		return "UnknownOption"
	case IOFailure:
		return "IOFailure"
	}
	return "Unknown"
}

// Error is a typed error wrapping the message gosl/chk.Err would have produced
type Error struct {
	Kind  Kind
	inner error
}

// Error implements the error interface
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.inner)
}

// Unwrap exposes the inner chk.Err-built error for errors.Is / errors.As
func (e *Error) Unwrap() error {
	return e.inner
}

// New builds a typed error with a chk.Err-formatted message
func New(kind Kind, msg string, args ...interface{}) error {
	return &Error{Kind: kind, inner: chk.Err(msg, args...)}
}

// Is reports whether err is an *Error of the given kind
func Is(err error, kind Kind) bool {
	e, ok := err.(*Error)
	if !ok {
		return false
	}
	return e.Kind == kind
}
