// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rerr implements the error taxonomy shared by every routing
// component: InvalidInput, TopologyError, ConfigError, SolverError and
// IOError. All fatal errors carry the offending field or pair in their
// message so the top-level handler can print a single-line diagnostic.
package rerr

import "github.com/cpmech/gosl/io"

// Kind identifies which branch of the error taxonomy an error belongs to.
type Kind int

const (
	InvalidInput Kind = iota
	TopologyError
	ConfigError
	SolverError
	IOError
)

func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "InvalidInput"
	case TopologyError:
		return "TopologyError"
	case ConfigError:
		return "ConfigError"
	case SolverError:
		return "SolverError"
	case IOError:
		return "IOError"
	default:
		return "UnknownError"
	}
}

// Error is a categorized, fatal error naming the offending field/variable.
type Error struct {
	Kind  Kind
	Field string // offending file, variable, or reach pair description
	Msg   string
}

func (e *Error) Error() string {
	if e.Field != "" {
		return io.Sf("%s: %s: %s", e.Kind, e.Field, e.Msg)
	}
	return io.Sf("%s: %s", e.Kind, e.Msg)
}

// New creates a categorized error, formatting Msg the way inp/msh.go
// formats its chk.Err messages.
func New(kind Kind, field, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Field: field, Msg: io.Sf(format, args...)}
}

// Invalid builds an InvalidInput error naming the offending field.
func Invalid(field, format string, args ...interface{}) *Error {
	return New(InvalidInput, field, format, args...)
}

// Topology builds a TopologyError naming the offending reach pair.
func Topology(field, format string, args ...interface{}) *Error {
	return New(TopologyError, field, format, args...)
}

// Config builds a ConfigError naming the offending key.
func Config(field, format string, args ...interface{}) *Error {
	return New(ConfigError, field, format, args...)
}

// Solver builds a SolverError naming the offending reach or matrix.
func Solver(field, format string, args ...interface{}) *Error {
	return New(SolverError, field, format, args...)
}

// IO builds an IOError naming the offending path.
func IO(field, format string, args ...interface{}) *Error {
	return New(IOError, field, format, args...)
}

// As reports whether err is a *Error and returns it.
func As(err error) (*Error, bool) {
	e, ok := err.(*Error)
	return e, ok
}
