// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package classgraph

// Member contains the information for one directly declared member of a
// [Class]: a method, getter, or setter. A Member is owned exclusively by
// the class that declares it; resolution results reference members but
// never copy or re-own them.
type Member struct {
	// Name is the declared name of the member.
	Name string

	// Kind is the kind of member: method, getter, or setter.
	Kind Kinds

	// Static is true for members declared on the class itself rather
	// than on its instances. Static members are never candidates for
	// instance lookup.
	Static bool

	// Abstract is true for body-less declarations.
	Abstract bool

	// Synthetic is true for members generated implicitly rather than
	// declared in source, such as the index getter on enums.
	Synthetic bool

	// Owner is the class that declares this member.
	Owner *Class
}

// SetStatic sets [Member.Static] and returns the member,
// for chaining during graph construction.
func (mb *Member) SetStatic(static bool) *Member {
	mb.Static = static
	return mb
}

// SetAbstract sets [Member.Abstract] and returns the member,
// for chaining during graph construction.
func (mb *Member) SetAbstract(abstract bool) *Member {
	mb.Abstract = abstract
	return mb
}

// String returns the owner-qualified name of the member (e.g., Shape.area).
func (mb *Member) String() string {
	if mb.Owner == nil {
		return mb.Name
	}
	return mb.Owner.Name + "." + mb.Name
}

// MemberMap is a map of members keyed by member name,
// as directly declared on one class.
type MemberMap map[string]*Member

// Alloc ensures that the map is made.
func (mm *MemberMap) Alloc() {
	if *mm == nil {
		*mm = make(MemberMap)
	}
}
