// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package classgraph

// Kinds are the kinds of directly declared class members.
type Kinds int32 //enums:enum -transform lower

const (
	// Method is a regular callable method.
	Method Kinds = iota

	// Getter is a property getter.
	Getter

	// Setter is a property setter.
	Setter
)

// ClassKinds are the kinds of class-like declarations.
type ClassKinds int32 //enums:enum -transform lower

const (
	// Regular is an ordinary class declaration.
	Regular ClassKinds = iota

	// Mixin is a mixin declaration, applied to classes via
	// their [Class.Mixins] list.
	Mixin

	// Enum is an enum declaration, which gets synthetic
	// index and values getters when built with [Graph.NewEnum].
	Enum
)
