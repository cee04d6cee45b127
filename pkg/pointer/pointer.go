// Copyright (c) 2026 Vinoteca. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pointer provides tiny helpers for working with pointer-typed
// optional fields.
package pointer

// To returns a pointer to the given value.
func To[T any](value T) *T {
	return &value
}

// Deref returns the value behind the pointer, or the zero value if nil.
func Deref[T any](value *T) T {
	if value == nil {
		var zero T
		return zero
	}
	return *value
}
