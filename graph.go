// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package classgraph defines an immutable element model of class-like
// declarations (classes, mixins, and enums) and their directly declared
// members, for use by language analysis tools. A [Graph] is built once
// per compilation scope by a symbol-table builder, and is then queried
// through the [cogentcore.org/classgraph/inherit] package, which
// resolves inherited members with correct shadowing, overriding, and
// cycle-termination semantics.
//
// The model corresponds to the class-element portion of the LSP
// DocumentSymbol structure and the go/types Object model; see the
// [cogentcore.org/classgraph/lsp] package for the kind mappings.
package classgraph

import (
	"fmt"
	"io"
	"strings"

	"cogentcore.org/core/base/keylist"
)

// ObjectName is the name of the root class that every graph owns.
// It is the only class with a nil [Class.Supertype].
const ObjectName = "Object"

// Graph is one finalized set of class declarations for a compilation
// scope, keyed and ordered by class name. Build it with [NewGraph] and
// the New* methods (or load it from a file with [OpenGraph]), and treat
// it as read-only afterward: all resolver queries are pure and safe to
// run concurrently against the same graph.
type Graph struct {
	// Classes is the ordered list of classes in the graph,
	// keyed by class name, in order added.
	Classes keylist.List[string, *Class]

	// Object is the root class of the graph. Every class added with
	// [Graph.NewClass] descends from it unless given another supertype.
	Object *Class
}

// NewGraph returns a new empty graph containing only the root
// Object class.
func NewGraph() *Graph {
	gr := &Graph{}
	gr.Object = &Class{Name: ObjectName}
	gr.Classes.Set(gr.Object.Name, gr.Object)
	return gr
}

// Class returns the class of the given name, or nil if there is none.
func (gr *Graph) Class(name string) *Class {
	return gr.Classes.At(name)
}

// NewClass adds and returns a new class of the given name, extending
// the given supertype, which defaults to the graph's Object root if nil.
// Any existing class of the same name is replaced.
func (gr *Graph) NewClass(name string, super *Class) *Class {
	if super == nil {
		super = gr.Object
	}
	cl := &Class{Name: name, Supertype: super}
	gr.Classes.Set(name, cl)
	return cl
}

// NewMixin adds and returns a new mixin declaration of the given name.
// Mixins descend from Object like any class, but when applied they
// contribute only their own declarations to lookup: their supertype
// chain is reached through the applying class's superclass chain.
func (gr *Graph) NewMixin(name string) *Class {
	cl := gr.NewClass(name, nil)
	cl.Kind = Mixin
	return cl
}

// NewEnum adds and returns a new enum declaration of the given name,
// with the synthetic members every enum has: the index instance getter
// and the values static getter.
func (gr *Graph) NewEnum(name string) *Class {
	cl := gr.NewClass(name, nil)
	cl.Kind = Enum
	addEnumSynthetics(cl)
	return cl
}

// addEnumSynthetics adds the synthetic enum members to cl if they are
// not already declared.
func addEnumSynthetics(cl *Class) {
	if cl.Getter("index") == nil {
		cl.AddGetter("index").Synthetic = true
	}
	if cl.Getter("values") == nil {
		mb := cl.AddGetter("values")
		mb.Static = true
		mb.Synthetic = true
	}
}

// WriteDoc writes an indented textual description of every class in
// the graph, in the order added.
func (gr *Graph) WriteDoc(out io.Writer) {
	for _, cl := range gr.Classes.Values {
		cl.WriteDoc(out, 0)
	}
}

func (gr *Graph) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Graph[%d]\n", gr.Classes.Len())
	gr.WriteDoc(&sb)
	return sb.String()
}
