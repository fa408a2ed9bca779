// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inherit

import (
	"strconv"
	"strings"

	"github.com/dgraph-io/ristretto/v2"

	"cogentcore.org/classgraph"
)

// Cache memoizes resolver queries over one immutable [classgraph.Graph],
// using a ristretto in-process cache. It is worthwhile for analysis
// passes that issue many repeated lookups over large graphs; for
// one-off queries, use the package functions directly.
//
// Keys are class names, which are unique within a graph, so one Cache
// must not be shared across graphs. A Cache must be discarded along
// with its graph when the owning scope is invalidated. Entries may be
// dropped by the admission policy at any time; a miss just recomputes.
type Cache struct {
	lookups *ristretto.Cache[string, *classgraph.Member]
	supers  *ristretto.Cache[string, []*classgraph.Class]
}

// NewCache returns a new query cache holding up to roughly maxItems
// memoized results.
func NewCache(maxItems int64) (*Cache, error) {
	lc, err := ristretto.NewCache(&ristretto.Config[string, *classgraph.Member]{
		NumCounters: maxItems * 10,
		MaxCost:     maxItems,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	sc, err := ristretto.NewCache(&ristretto.Config[string, []*classgraph.Class]{
		NumCounters: maxItems * 10,
		MaxCost:     maxItems,
		BufferItems: 64,
	})
	if err != nil {
		lc.Close()
		return nil, err
	}
	return &Cache{lookups: lc, supers: sc}, nil
}

// Lookup is [Lookup] with memoization. Negative (nil) results are
// cached too: failed lookups are a common, expected outcome.
func (ch *Cache) Lookup(cl *classgraph.Class, name string, kind classgraph.Kinds, flags LookupFlags) *classgraph.Member {
	key := lookupKey(cl, name, kind, flags)
	if mb, ok := ch.lookups.Get(key); ok {
		return mb
	}
	mb := Lookup(cl, name, kind, flags)
	ch.lookups.Set(key, mb, 1)
	return mb
}

// Supertypes is [Supertypes] with memoization.
func (ch *Cache) Supertypes(cl *classgraph.Class) []*classgraph.Class {
	if cl == nil {
		return nil
	}
	if sups, ok := ch.supers.Get(cl.Name); ok {
		return sups
	}
	sups := Supertypes(cl)
	ch.supers.Set(cl.Name, sups, max(1, int64(len(sups))))
	return sups
}

// Wait blocks until pending cache writes are applied, so that
// subsequent gets see them. Only needed for deterministic tests
// and benchmarks.
func (ch *Cache) Wait() {
	ch.lookups.Wait()
	ch.supers.Wait()
}

// Close shuts down the cache and releases its resources.
func (ch *Cache) Close() {
	ch.lookups.Close()
	ch.supers.Close()
}

// lookupKey encodes one lookup query; NUL separators keep member and
// class names from colliding.
func lookupKey(cl *classgraph.Class, name string, kind classgraph.Kinds, flags LookupFlags) string {
	var sb strings.Builder
	sb.WriteString(cl.Name)
	sb.WriteByte(0)
	sb.WriteString(name)
	sb.WriteByte(0)
	sb.WriteString(strconv.FormatInt(kind.Int64(), 10))
	sb.WriteByte(0)
	sb.WriteString(strconv.FormatInt(flags.Int64(), 10))
	return sb.String()
}
