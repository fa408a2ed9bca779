// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inherit

// LookupFlags restrict which declarations a [Lookup] query considers.
type LookupFlags int64 //enums:bitflag

const (
	// Inherited excludes the queried class's own declaration: only
	// ancestor (mixin and superclass chain) declarations are eligible.
	Inherited LookupFlags = iota

	// Concrete skips abstract declarations, continuing the search
	// further up the chain. An abstract declaration does not shadow
	// a concrete one found further up.
	Concrete
)
