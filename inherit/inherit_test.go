// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inherit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"cogentcore.org/classgraph"
)

// chain builds Object <- A {f()} <- B <- C with no overrides.
func chain() (gr *classgraph.Graph, a, b, c *classgraph.Class) {
	gr = classgraph.NewGraph()
	a = gr.NewClass("A", nil)
	a.AddMethod("f")
	b = gr.NewClass("B", a)
	c = gr.NewClass("C", b)
	return
}

func TestSupertypes(t *testing.T) {
	gr, a, b, c := chain()
	assert.ElementsMatch(t, []*classgraph.Class{b, a, gr.Object}, Supertypes(c))
	assert.ElementsMatch(t, []*classgraph.Class{gr.Object}, Supertypes(a))
	assert.Empty(t, Supertypes(gr.Object))
	assert.Nil(t, Supertypes(nil))

	assert.True(t, HasSupertype(c, a))
	assert.True(t, HasSupertype(c, gr.Object))
	assert.False(t, HasSupertype(a, c))
	assert.False(t, HasSupertype(c, c))
}

func TestSupertypesInterfaces(t *testing.T) {
	gr := classgraph.NewGraph()
	iface := gr.NewClass("Comparable", nil).SetAbstract(true)
	mx := gr.NewMixin("M")
	a := gr.NewClass("A", nil)
	a.AddInterfaces(iface)
	b := gr.NewClass("B", a)
	b.AddMixins(mx)
	assert.ElementsMatch(t, []*classgraph.Class{a, mx, iface, gr.Object}, Supertypes(b))
}

func TestSupertypesCycle(t *testing.T) {
	gr := classgraph.NewGraph()
	a := gr.NewClass("A", nil)
	b := gr.NewClass("B", a)
	a.Supertype = b // malformed: A extends B extends A

	sups := Supertypes(a)
	assert.NotContains(t, sups, a)
	assert.Contains(t, sups, b)

	// self-referential
	s := gr.NewClass("S", nil)
	s.Supertype = s
	assert.Empty(t, Supertypes(s))
}

func TestLookupCycleTerminates(t *testing.T) {
	gr := classgraph.NewGraph()
	a := gr.NewClass("A", nil)
	b := gr.NewClass("B", a)
	b.AddMethod("f")
	a.Supertype = b

	assert.Nil(t, Method(a, "anything"))
	assert.Same(t, b.Method("f"), Method(a, "f"))
	assert.Nil(t, Method(b, "anything"))

	// mixin cycle
	m := gr.NewMixin("M")
	m.AddMixins(m)
	c := gr.NewClass("C", nil)
	c.AddMixins(m)
	assert.Nil(t, Getter(c, "g"))
}

func TestLocalVsChain(t *testing.T) {
	gr := classgraph.NewGraph()
	a := gr.NewClass("A", nil)
	fm := a.AddMethod("m")

	assert.Same(t, fm, a.Method("m"))
	assert.Same(t, fm, Method(a, "m"))
	assert.Nil(t, InheritedMethod(a, "m"))
	assert.Nil(t, a.Getter("m"))
}

func TestChainScenario(t *testing.T) {
	_, a, _, c := chain()
	fm := a.Method("f")
	require.NotNil(t, fm)
	assert.Same(t, fm, Method(c, "f"))
	assert.Same(t, fm, InheritedMethod(c, "f"))
	assert.Nil(t, c.Method("f"))
}

func TestMixinShadowing(t *testing.T) {
	gr := classgraph.NewGraph()
	b := gr.NewClass("B", nil)
	b.AddGetter("g")
	m1 := gr.NewMixin("M1")
	g1 := m1.AddGetter("g")
	m2 := gr.NewMixin("M2")
	g2 := m2.AddGetter("g")

	c := gr.NewClass("C", b)
	c.AddMixins(m1, m2)
	assert.Same(t, g2, Getter(c, "g")) // last mixin wins

	d := gr.NewClass("D", b)
	d.AddMixins(m2, m1)
	assert.Same(t, g1, Getter(d, "g")) // swapped order flips the result

	// superclass is only searched when no mixin matches
	bh := b.AddGetter("h")
	assert.Same(t, bh, Getter(c, "h"))
}

func TestMixinShadowsSelfDeclaration(t *testing.T) {
	gr := classgraph.NewGraph()
	m := gr.NewMixin("M")
	mg := m.AddGetter("g")
	c := gr.NewClass("C", nil)
	cg := c.AddGetter("g")
	c.AddMixins(m)

	assert.Same(t, cg, Getter(c, "g")) // own declaration first
	assert.Same(t, mg, InheritedGetter(c, "g"))
}

func TestMixinSupertypeNotSearched(t *testing.T) {
	// a member reachable through a mixin's implicit Object supertype
	// must not shadow the applying class's own superclass chain.
	gr := classgraph.NewGraph()
	gr.Object.AddMethod("m")
	a := gr.NewClass("A", nil)
	a.AddMethod("m")
	b := gr.NewClass("B", a)
	bm := b.AddMethod("m")
	mx := gr.NewMixin("M")
	c := gr.NewClass("C", b)
	c.AddMixins(mx)

	assert.Same(t, bm, Method(c, "m"))
	// Object members still resolve when nothing closer declares them
	ot := gr.Object.AddMethod("toString")
	assert.Same(t, ot, Method(c, "toString"))
}

func TestConcreteSkipsAbstract(t *testing.T) {
	gr := classgraph.NewGraph()
	a := gr.NewClass("A", nil).SetAbstract(true)
	am := a.AddMethod("m").SetAbstract(true)
	b := gr.NewClass("B", a)
	bm := b.AddMethod("m")

	assert.Same(t, bm, ConcreteMethod(b, "m"))
	assert.Same(t, bm, Method(b, "m"))
	assert.Nil(t, InheritedConcreteMethod(b, "m"))
	assert.Same(t, am, InheritedMethod(b, "m"))
}

func TestConcreteSkipsAbstractOverride(t *testing.T) {
	// an abstract override does not shadow a concrete ancestor member
	gr := classgraph.NewGraph()
	a := gr.NewClass("A", nil)
	am := a.AddMethod("m")
	b := gr.NewClass("B", a)
	bm := b.AddMethod("m").SetAbstract(true)

	assert.Same(t, am, ConcreteMethod(b, "m"))
	assert.Same(t, bm, Method(b, "m"))
	assert.Same(t, am, InheritedConcreteMethod(b, "m"))
}

func TestConcreteMixinChain(t *testing.T) {
	// abstract declarations in later mixins fall through to
	// concrete ones in earlier mixins, then the superclass.
	gr := classgraph.NewGraph()
	b := gr.NewClass("B", nil)
	bg := b.AddGetter("g")
	m1 := gr.NewMixin("M1")
	g1 := m1.AddGetter("g")
	m2 := gr.NewMixin("M2")
	m2.AddGetter("g").SetAbstract(true)

	c := gr.NewClass("C", b)
	c.AddMixins(m1, m2)
	assert.Same(t, g1, ConcreteGetter(c, "g"))

	d := gr.NewClass("D", b)
	d.AddMixins(m2)
	assert.Same(t, bg, ConcreteGetter(d, "g"))
}

func TestStaticNotInstanceCandidate(t *testing.T) {
	gr := classgraph.NewGraph()
	a := gr.NewClass("A", nil)
	af := a.AddMethod("f")
	b := gr.NewClass("B", a)
	bf := b.AddMethod("f").SetStatic(true)

	// B's static f is skipped; A's instance f resolves
	assert.Same(t, af, Method(b, "f"))
	// but the local declared accessor still sees it
	assert.Same(t, bf, b.Method("f"))

	s := a.AddMethod("s").SetStatic(true)
	assert.Nil(t, Method(b, "s"))
	assert.Same(t, s, a.Method("s"))
}

func TestSettersIndependentOfGetters(t *testing.T) {
	gr := classgraph.NewGraph()
	a := gr.NewClass("A", nil)
	ag := a.AddGetter("x")
	as := a.AddSetter("x")
	b := gr.NewClass("B", a)

	assert.Same(t, ag, Getter(b, "x"))
	assert.Same(t, as, Setter(b, "x"))
	assert.Nil(t, Method(b, "x"))
}

func TestUndeclaredReturnsNil(t *testing.T) {
	_, a, _, c := chain()
	assert.Nil(t, a.Method("noSuchMethod"))
	assert.Nil(t, Method(c, "noSuchMethod"))
	assert.Nil(t, Getter(c, "noSuchMethod"))
	assert.Nil(t, Setter(c, "noSuchMethod"))
	assert.Nil(t, InheritedMethod(c, "noSuchMethod"))
	assert.Nil(t, ConcreteMethod(c, "noSuchMethod"))
	assert.Nil(t, InheritedConcreteMethod(c, "noSuchMethod"))
}

func TestEnumSynthetics(t *testing.T) {
	gr := classgraph.NewGraph()
	en := gr.NewEnum("Color")

	ix := en.Getter("index")
	require.NotNil(t, ix)
	assert.True(t, ix.Synthetic)
	assert.False(t, ix.Static)
	assert.Same(t, ix, Getter(en, "index"))

	vs := en.Getter("values")
	require.NotNil(t, vs)
	assert.True(t, vs.Static)
	// static values getter is not an instance lookup candidate
	assert.Nil(t, Getter(en, "values"))
}

func TestIdempotence(t *testing.T) {
	gr := classgraph.NewGraph()
	b := gr.NewClass("B", nil)
	m1 := gr.NewMixin("M1")
	m1.AddGetter("g")
	m2 := gr.NewMixin("M2")
	g2 := m2.AddGetter("g")
	c := gr.NewClass("C", b)
	c.AddMixins(m1, m2)

	assert.Same(t, g2, Getter(c, "g"))
	assert.Same(t, Getter(c, "g"), Getter(c, "g"))
	assert.Equal(t, Supertypes(c), Supertypes(c))
}

func TestConcurrentQueries(t *testing.T) {
	gr := classgraph.NewGraph()
	a := gr.NewClass("A", nil)
	af := a.AddMethod("f")
	b := gr.NewClass("B", a)
	c := gr.NewClass("C", b)
	sups := Supertypes(c)

	var g errgroup.Group
	for range 8 {
		g.Go(func() error {
			for range 100 {
				if Method(c, "f") != af {
					return assert.AnError
				}
				if len(Supertypes(c)) != len(sups) {
					return assert.AnError
				}
				if Method(c, "nope") != nil {
					return assert.AnError
				}
			}
			return nil
		})
	}
	assert.NoError(t, g.Wait())
}

func TestLookupFlags(t *testing.T) {
	gr := classgraph.NewGraph()
	a := gr.NewClass("A", nil)
	am := a.AddMethod("m")
	b := gr.NewClass("B", a)
	bm := b.AddMethod("m").SetAbstract(true)

	var flags LookupFlags
	assert.Same(t, bm, Lookup(b, "m", classgraph.Method, flags))
	flags.SetFlag(true, Concrete)
	assert.Same(t, am, Lookup(b, "m", classgraph.Method, flags))
	flags.SetFlag(true, Inherited)
	assert.Same(t, am, Lookup(b, "m", classgraph.Method, flags))
	flags.SetFlag(false, Concrete)
	assert.Same(t, am, Lookup(b, "m", classgraph.Method, flags))
}
