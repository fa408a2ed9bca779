// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lsp contains the Language Server Protocol SymbolKind type
// (https://microsoft.github.io/language-server-protocol/specification)
// and mappings from classgraph kinds onto it, for tools that surface
// classgraph elements through an LSP server. The transport itself is
// not part of this module.
package lsp

import (
	"cogentcore.org/classgraph"
)

// SymbolKind is the list of SymbolKind items from LSP.
type SymbolKind int32 //enums:enum

const (
	NoSymbolKind SymbolKind = iota
	File                    // 1 in LSP
	Module
	Namespace
	Package
	Class
	Method
	Property
	Field
	Constructor
	Enum
	Interface
	Function
	Variable
	Constant
	String
	Number
	Boolean
	Array
	Object
	Key
	Null
	EnumMember
	Struct
	Event
	Operator
	TypeParameter // 26 in LSP
)

// ClassSymbolKinds maps classgraph class kinds onto LSP symbol kinds.
// LSP has no mixin kind, so mixins map to Class like everything else
// class-shaped.
var ClassSymbolKinds = map[classgraph.ClassKinds]SymbolKind{
	classgraph.Regular: Class,
	classgraph.Mixin:   Class,
	classgraph.Enum:    Enum,
}

// MemberSymbolKinds maps classgraph member kinds onto LSP symbol kinds.
// Getters and setters both surface as properties.
var MemberSymbolKinds = map[classgraph.Kinds]SymbolKind{
	classgraph.Method: Method,
	classgraph.Getter: Property,
	classgraph.Setter: Property,
}

// ClassKind returns the LSP symbol kind for the given class.
func ClassKind(cl *classgraph.Class) SymbolKind {
	if cl == nil {
		return NoSymbolKind
	}
	return ClassSymbolKinds[cl.Kind]
}

// MemberKind returns the LSP symbol kind for the given member.
// Synthetic enum getters surface as enum members.
func MemberKind(mb *classgraph.Member) SymbolKind {
	if mb == nil {
		return NoSymbolKind
	}
	if mb.Synthetic && mb.Owner != nil && mb.Owner.Kind == classgraph.Enum {
		return EnumMember
	}
	return MemberSymbolKinds[mb.Kind]
}
