// Package smirks models the family of SMIRKS-keyed force-field parameters
// that a bespoke fitting run proposes, queries, and updates. A parameter is
// identified by its SMIRKS pattern within its parameter type; the atom-index
// tuples it is known to cover accumulate as a molecule is labeled.
//
// SMIRKS strings and atom indices are treated as opaque identifiers here.
// Value fields carry unit-tagged strings verbatim; interpreting them is the
// force-field engine's job.
package smirks

import (
	"errors"
	"fmt"
)

// ParameterType identifies the force-field parameter handler a SMIRKS
// parameter belongs to. The type fixes the arity of the atom-index tuples
// the parameter covers and the prefix of generated parameter ids.
type ParameterType string

const (
	Vdw            ParameterType = "vdW"
	Bonds          ParameterType = "Bonds"
	Angles         ParameterType = "Angles"
	ProperTorsions ParameterType = "ProperTorsions"
)

// ErrUnsupportedArity indicates an atom-index tuple whose length has no
// corresponding parameter type.
var ErrUnsupportedArity = errors.New("unsupported atom tuple arity")

// Arity returns the number of atoms a tuple of this type spans.
func (t ParameterType) Arity() int {
	switch t {
	case Vdw:
		return 1
	case Bonds:
		return 2
	case Angles:
		return 3
	case ProperTorsions:
		return 4
	default:
		return 0
	}
}

// Prefix returns the single-letter prefix used when synthesizing parameter
// ids for this type.
func (t ParameterType) Prefix() string {
	switch t {
	case Vdw:
		return "n"
	case Bonds:
		return "b"
	case Angles:
		return "a"
	case ProperTorsions:
		return "t"
	default:
		return ""
	}
}

func (t ParameterType) String() string {
	return string(t)
}

// TypeForArity maps an atom tuple length to its parameter type.
func TypeForArity(n int) (ParameterType, error) {
	switch n {
	case 1:
		return Vdw, nil
	case 2:
		return Bonds, nil
	case 3:
		return Angles, nil
	case 4:
		return ProperTorsions, nil
	default:
		return "", fmt.Errorf("%w: %d atoms", ErrUnsupportedArity, n)
	}
}

// ParameterTypes lists all parameter types in handler order.
func ParameterTypes() []ParameterType {
	return []ParameterType{Vdw, Bonds, Angles, ProperTorsions}
}
