// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package vartype provides values that know whether they were ever set.
package vartype

// VarFloat64 is a Variable holding a float64, used for optional provider metadata.
type VarFloat64 = Variable[float64]

// Variable holds a value and tracks whether it was initialized.
type Variable[T any] struct {
	value T
	isset bool
}

// NewVariable returns a Variable initialized with value.
func NewVariable[T any](value T) Variable[T] {
	return Variable[T]{
		isset: true,
		value: value,
	}
}

// Value returns the stored value, or the zero value if unset.
func (v Variable[T]) Value() T {
	return v.value
}

// IsSet reports whether a value was stored.
func (v Variable[T]) IsSet() bool {
	return v.isset
}
