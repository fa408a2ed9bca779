// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inherit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/classgraph"
)

func TestCacheLookup(t *testing.T) {
	gr := classgraph.NewGraph()
	a := gr.NewClass("A", nil)
	af := a.AddMethod("f")
	b := gr.NewClass("B", a)
	c := gr.NewClass("C", b)

	ch, err := NewCache(1024)
	require.NoError(t, err)
	defer ch.Close()

	assert.Same(t, af, ch.Lookup(c, "f", classgraph.Method, 0))
	ch.Wait()
	// cached result is the same reference
	assert.Same(t, af, ch.Lookup(c, "f", classgraph.Method, 0))

	// negative results are cached without becoming errors
	assert.Nil(t, ch.Lookup(c, "nope", classgraph.Method, 0))
	ch.Wait()
	assert.Nil(t, ch.Lookup(c, "nope", classgraph.Method, 0))

	// flags are part of the key
	assert.Same(t, af, ch.Lookup(c, "f", classgraph.Method, inheritedFlags))
	assert.Nil(t, ch.Lookup(a, "f", classgraph.Method, inheritedFlags))
}

func TestCacheSupertypes(t *testing.T) {
	gr := classgraph.NewGraph()
	a := gr.NewClass("A", nil)
	b := gr.NewClass("B", a)

	ch, err := NewCache(1024)
	require.NoError(t, err)
	defer ch.Close()

	sups := ch.Supertypes(b)
	assert.ElementsMatch(t, []*classgraph.Class{a, gr.Object}, sups)
	ch.Wait()
	assert.Equal(t, sups, ch.Supertypes(b))
	assert.Nil(t, ch.Supertypes(nil))
}
