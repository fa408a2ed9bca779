// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package classgraph

import (
	"fmt"
	"io"
	"maps"
	"slices"

	"cogentcore.org/core/base/indent"
)

// Class contains the information for one class-like declaration:
// a class, mixin, or enum. Classes are constructed once when a graph
// is built and are treated as immutable thereafter; the [inherit]
// resolver never mutates them.
type Class struct {
	// Name is the name of the class, unique within its [Graph].
	Name string

	// Kind is the kind of declaration: regular class, mixin, or enum.
	Kind ClassKinds

	// Abstract is true for abstract class declarations.
	Abstract bool

	// Supertype is the extends clause. It is nil only for the root
	// Object class of a graph.
	Supertype *Class

	// Mixins is the with clause, in declaration order. Later entries
	// shadow earlier ones, and all entries shadow the supertype,
	// for member lookup.
	Mixins []*Class

	// Interfaces is the implements clause. Interfaces contribute to
	// the transitive supertype set but are never searched during
	// member lookup.
	Interfaces []*Class

	// Methods, Getters, and Setters are the members declared directly
	// on this class, keyed by name. They do not include inherited
	// members.
	Methods MemberMap
	Getters MemberMap
	Setters MemberMap
}

// SetAbstract sets [Class.Abstract] and returns the class,
// for chaining during graph construction.
func (cl *Class) SetAbstract(abstract bool) *Class {
	cl.Abstract = abstract
	return cl
}

// AddMixins appends the given mixins to the with clause, after any
// already present. The last mixin added has the highest shadowing
// priority.
func (cl *Class) AddMixins(mixins ...*Class) *Class {
	cl.Mixins = append(cl.Mixins, mixins...)
	return cl
}

// AddInterfaces appends the given classes to the implements clause.
func (cl *Class) AddInterfaces(ifaces ...*Class) *Class {
	cl.Interfaces = append(cl.Interfaces, ifaces...)
	return cl
}

// Members returns the member table for the given member kind.
func (cl *Class) Members(kind Kinds) MemberMap {
	switch kind {
	case Getter:
		return cl.Getters
	case Setter:
		return cl.Setters
	default:
		return cl.Methods
	}
}

// membersPtr returns a pointer to the member table for the given kind,
// so it can be allocated during graph building.
func (cl *Class) membersPtr(kind Kinds) *MemberMap {
	switch kind {
	case Getter:
		return &cl.Getters
	case Setter:
		return &cl.Setters
	default:
		return &cl.Methods
	}
}

// AddMember adds a new directly declared member of the given name and
// kind, replacing any existing declaration of that name and kind,
// and returns it for further configuration
// (e.g., [Member.SetAbstract], [Member.SetStatic]).
func (cl *Class) AddMember(name string, kind Kinds) *Member {
	mb := &Member{Name: name, Kind: kind, Owner: cl}
	mm := cl.membersPtr(kind)
	mm.Alloc()
	(*mm)[name] = mb
	return mb
}

// AddMethod adds a new directly declared method. See [Class.AddMember].
func (cl *Class) AddMethod(name string) *Member { return cl.AddMember(name, Method) }

// AddGetter adds a new directly declared getter. See [Class.AddMember].
func (cl *Class) AddGetter(name string) *Member { return cl.AddMember(name, Getter) }

// AddSetter adds a new directly declared setter. See [Class.AddMember].
func (cl *Class) AddSetter(name string) *Member { return cl.AddMember(name, Setter) }

// Declared returns the member of the given name and kind declared
// directly on this class, regardless of its abstract or static status,
// or nil if there is no such declaration. It does not search ancestors:
// use the [inherit] package for effective lookup along the inheritance
// chain.
func (cl *Class) Declared(name string, kind Kinds) *Member {
	return cl.Members(kind)[name]
}

// Method returns the directly declared method of the given name,
// or nil. See [Class.Declared].
func (cl *Class) Method(name string) *Member { return cl.Declared(name, Method) }

// Getter returns the directly declared getter of the given name,
// or nil. See [Class.Declared].
func (cl *Class) Getter(name string) *Member { return cl.Declared(name, Getter) }

// Setter returns the directly declared setter of the given name,
// or nil. See [Class.Declared].
func (cl *Class) Setter(name string) *Member { return cl.Declared(name, Setter) }

func (cl *Class) String() string {
	return cl.Name
}

// WriteDoc writes an indented textual description of the class and its
// directly declared members, for debugging and the classgraph doc command.
func (cl *Class) WriteDoc(out io.Writer, depth int) {
	ind := indent.Tabs(depth)
	fmt.Fprintf(out, "%v%v: %v", ind, cl.Name, cl.Kind)
	if cl.Abstract {
		fmt.Fprint(out, " abstract")
	}
	if cl.Supertype != nil {
		fmt.Fprintf(out, " extends %v", cl.Supertype.Name)
	}
	if len(cl.Mixins) > 0 {
		fmt.Fprintf(out, " with %v", classNames(cl.Mixins))
	}
	if len(cl.Interfaces) > 0 {
		fmt.Fprintf(out, " implements %v", classNames(cl.Interfaces))
	}
	fmt.Fprint(out, " {\n")
	mind := indent.Tabs(depth + 1)
	for _, kind := range KindsValues() {
		mm := cl.Members(kind)
		for _, nm := range slices.Sorted(maps.Keys(mm)) {
			mb := mm[nm]
			fmt.Fprintf(out, "%v%v %v", mind, mb.Kind, mb.Name)
			if mb.Static {
				fmt.Fprint(out, " static")
			}
			if mb.Abstract {
				fmt.Fprint(out, " abstract")
			}
			if mb.Synthetic {
				fmt.Fprint(out, " synthetic")
			}
			fmt.Fprint(out, "\n")
		}
	}
	fmt.Fprintf(out, "%v}\n", ind)
}

// classNames returns the names of the given classes, in order.
func classNames(cls []*Class) []string {
	nms := make([]string, len(cls))
	for i, cl := range cls {
		nms[i] = cl.Name
	}
	return nms
}
