// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package inherit resolves inherited members and supertype relations
// over a [classgraph.Graph]. All queries are pure functions of an
// immutable graph: they never mutate a class or member, each allocates
// its own visited set, and they are safe to run concurrently.
//
// Lookup semantics: a class's own declaration shadows its mixins,
// mixins shadow each other in reverse declaration order (the
// last-applied mixin wins), and all mixins shadow the superclass.
// Interfaces contribute to the supertype closure but are never
// searched during member lookup. Static members are never candidates
// for instance lookup. "Not found" is a nil result, not an error.
//
// Cyclic supertype graphs are malformed input, but every traversal
// guards against them with a visited set and returns a finite,
// best-effort result; reporting the cycle itself is a diagnostic
// concern outside this package.
package inherit

import (
	"cogentcore.org/classgraph"
)

// visited is the per-query guard against cyclic supertype graphs,
// keyed by declaration identity.
type visited map[*classgraph.Class]bool

// Supertypes returns the transitive closure of the supertype, mixin,
// and interface relations of the given class, excluding the class
// itself. The result has set semantics: it contains no duplicates, and
// its order is the traversal order, which is not semantically
// meaningful. On a cyclic graph it contains whatever was reachable
// before the cycle closed.
func Supertypes(cl *classgraph.Class) []*classgraph.Class {
	if cl == nil {
		return nil
	}
	vis := visited{cl: true}
	var sups []*classgraph.Class
	var walk func(c *classgraph.Class)
	expand := func(c *classgraph.Class) {
		if c == nil || vis[c] {
			return
		}
		vis[c] = true
		sups = append(sups, c)
		walk(c)
	}
	walk = func(c *classgraph.Class) {
		expand(c.Supertype)
		for _, mx := range c.Mixins {
			expand(mx)
		}
		for _, fc := range c.Interfaces {
			expand(fc)
		}
	}
	walk(cl)
	return sups
}

// HasSupertype reports whether sup is in the supertype closure of cl
// (see [Supertypes]). A class is not its own supertype.
func HasSupertype(cl, sup *classgraph.Class) bool {
	for _, sc := range Supertypes(cl) {
		if sc == sup {
			return true
		}
	}
	return false
}

// Lookup looks up the effective instance member of the given name and
// kind for the given class, as used for call resolution: the class's
// own declaration first, then its mixins in reverse declaration order,
// then the superclass, recursively. The given flags restrict which
// declarations are eligible (see [Inherited] and [Concrete]). It
// returns nil if no eligible declaration exists anywhere in the
// searched chain.
func Lookup(cl *classgraph.Class, name string, kind classgraph.Kinds, flags LookupFlags) *classgraph.Member {
	return lookup(cl, name, kind, flags, false, visited{})
}

// lookup is the one traversal behind all member lookups. asMixin is
// true when cl is being searched as a mixin contribution: then only
// its own and its mixins' declarations count, and its supertype is
// not descended into (that chain belongs to the applying class).
func lookup(cl *classgraph.Class, name string, kind classgraph.Kinds, flags LookupFlags, asMixin bool, vis visited) *classgraph.Member {
	if cl == nil || vis[cl] {
		return nil
	}
	vis[cl] = true
	if !flags.HasFlag(Inherited) {
		if mb := cl.Declared(name, kind); mb != nil && !mb.Static {
			if !flags.HasFlag(Concrete) || !mb.Abstract {
				return mb
			}
		}
	}
	sub := flags
	sub.SetFlag(false, Inherited) // only the top-level class is excluded
	for i := len(cl.Mixins) - 1; i >= 0; i-- {
		if mb := lookup(cl.Mixins[i], name, kind, sub, true, vis); mb != nil {
			return mb
		}
	}
	if asMixin {
		return nil
	}
	return lookup(cl.Supertype, name, kind, sub, false, vis)
}

// Method looks up the effective instance method of the given name,
// searching the class itself, its mixins in reverse declaration order,
// and then its superclass chain. See [Lookup].
func Method(cl *classgraph.Class, name string) *classgraph.Member {
	return Lookup(cl, name, classgraph.Method, 0)
}

// Getter looks up the effective instance getter of the given name.
// See [Lookup].
func Getter(cl *classgraph.Class, name string) *classgraph.Member {
	return Lookup(cl, name, classgraph.Getter, 0)
}

// Setter looks up the effective instance setter of the given name.
// See [Lookup].
func Setter(cl *classgraph.Class, name string) *classgraph.Member {
	return Lookup(cl, name, classgraph.Setter, 0)
}

// InheritedMethod looks up the method the given class inherits under
// the given name, excluding its own declaration. See [Lookup].
func InheritedMethod(cl *classgraph.Class, name string) *classgraph.Member {
	return Lookup(cl, name, classgraph.Method, inheritedFlags)
}

// InheritedGetter looks up the getter the given class inherits under
// the given name, excluding its own declaration. See [Lookup].
func InheritedGetter(cl *classgraph.Class, name string) *classgraph.Member {
	return Lookup(cl, name, classgraph.Getter, inheritedFlags)
}

// InheritedSetter looks up the setter the given class inherits under
// the given name, excluding its own declaration. See [Lookup].
func InheritedSetter(cl *classgraph.Class, name string) *classgraph.Member {
	return Lookup(cl, name, classgraph.Setter, inheritedFlags)
}

// ConcreteMethod looks up the effective concrete method of the given
// name, skipping abstract declarations. See [Lookup].
func ConcreteMethod(cl *classgraph.Class, name string) *classgraph.Member {
	return Lookup(cl, name, classgraph.Method, concreteFlags)
}

// ConcreteGetter looks up the effective concrete getter of the given
// name, skipping abstract declarations. See [Lookup].
func ConcreteGetter(cl *classgraph.Class, name string) *classgraph.Member {
	return Lookup(cl, name, classgraph.Getter, concreteFlags)
}

// ConcreteSetter looks up the effective concrete setter of the given
// name, skipping abstract declarations. See [Lookup].
func ConcreteSetter(cl *classgraph.Class, name string) *classgraph.Member {
	return Lookup(cl, name, classgraph.Setter, concreteFlags)
}

// InheritedConcreteMethod looks up the concrete method the given class
// inherits under the given name, excluding its own declaration and
// skipping abstract declarations. See [Lookup].
func InheritedConcreteMethod(cl *classgraph.Class, name string) *classgraph.Member {
	return Lookup(cl, name, classgraph.Method, inheritedFlags|concreteFlags)
}

// InheritedConcreteGetter looks up the concrete getter the given class
// inherits under the given name, excluding its own declaration and
// skipping abstract declarations. See [Lookup].
func InheritedConcreteGetter(cl *classgraph.Class, name string) *classgraph.Member {
	return Lookup(cl, name, classgraph.Getter, inheritedFlags|concreteFlags)
}

// InheritedConcreteSetter looks up the concrete setter the given class
// inherits under the given name, excluding its own declaration and
// skipping abstract declarations. See [Lookup].
func InheritedConcreteSetter(cl *classgraph.Class, name string) *classgraph.Member {
	return Lookup(cl, name, classgraph.Setter, inheritedFlags|concreteFlags)
}

// inheritedFlags and concreteFlags are the flag bit values, as
// LookupFlags constants are bit indexes per the enums bitflag
// convention.
var (
	inheritedFlags = flagsOf(Inherited)
	concreteFlags  = flagsOf(Concrete)
)

// flagsOf returns the LookupFlags value with the given flags set.
func flagsOf(flags ...LookupFlags) LookupFlags {
	var lf LookupFlags
	for _, f := range flags {
		lf.SetFlag(true, f)
	}
	return lf
}
