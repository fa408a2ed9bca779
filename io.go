// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package classgraph

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// graphFile is the flat, name-referenced file representation of a
// [Graph]. Supertype, mixin, and interface relations are stored as
// class names and relinked to pointers on load.
type graphFile struct {
	Classes []*classFile `json:"classes" yaml:"classes" toml:"classes"`
}

// classFile is the file representation of one [Class].
type classFile struct {
	Name       string        `json:"name" yaml:"name" toml:"name"`
	Kind       string        `json:"kind,omitempty" yaml:"kind,omitempty" toml:"kind,omitempty"`
	Abstract   bool          `json:"abstract,omitempty" yaml:"abstract,omitempty" toml:"abstract,omitempty"`
	Extends    string        `json:"extends,omitempty" yaml:"extends,omitempty" toml:"extends,omitempty"`
	With       []string      `json:"with,omitempty" yaml:"with,omitempty" toml:"with,omitempty"`
	Implements []string      `json:"implements,omitempty" yaml:"implements,omitempty" toml:"implements,omitempty"`
	Methods    []*memberFile `json:"methods,omitempty" yaml:"methods,omitempty" toml:"methods,omitempty"`
	Getters    []*memberFile `json:"getters,omitempty" yaml:"getters,omitempty" toml:"getters,omitempty"`
	Setters    []*memberFile `json:"setters,omitempty" yaml:"setters,omitempty" toml:"setters,omitempty"`
}

// memberFile is the file representation of one [Member].
// Synthetic members are not saved: they are regenerated on load.
type memberFile struct {
	Name     string `json:"name" yaml:"name" toml:"name"`
	Abstract bool   `json:"abstract,omitempty" yaml:"abstract,omitempty" toml:"abstract,omitempty"`
	Static   bool   `json:"static,omitempty" yaml:"static,omitempty" toml:"static,omitempty"`
}

// fileRep returns the file representation of the graph, with members
// sorted by name for deterministic output. The root Object class is
// only included if it has declarations of its own.
func (gr *Graph) fileRep() *graphFile {
	gf := &graphFile{}
	for _, cl := range gr.Classes.Values {
		cf := &classFile{Name: cl.Name, Abstract: cl.Abstract}
		if cl.Kind != Regular {
			cf.Kind = cl.Kind.String()
		}
		if cl.Supertype != nil && cl.Supertype != gr.Object {
			cf.Extends = cl.Supertype.Name
		}
		cf.With = classNames(cl.Mixins)
		cf.Implements = classNames(cl.Interfaces)
		cf.Methods = memberFiles(cl.Methods)
		cf.Getters = memberFiles(cl.Getters)
		cf.Setters = memberFiles(cl.Setters)
		if cl == gr.Object && cf.empty() {
			continue
		}
		gf.Classes = append(gf.Classes, cf)
	}
	return gf
}

// empty is true if the class file has nothing beyond its name.
func (cf *classFile) empty() bool {
	return cf.Extends == "" && len(cf.With) == 0 && len(cf.Implements) == 0 &&
		len(cf.Methods) == 0 && len(cf.Getters) == 0 && len(cf.Setters) == 0
}

// memberFiles returns the file representations of the non-synthetic
// members in the given map, sorted by name.
func memberFiles(mm MemberMap) []*memberFile {
	var mfs []*memberFile
	for _, nm := range slices.Sorted(maps.Keys(mm)) {
		mb := mm[nm]
		if mb.Synthetic {
			continue
		}
		mfs = append(mfs, &memberFile{Name: mb.Name, Abstract: mb.Abstract, Static: mb.Static})
	}
	return mfs
}

// newGraphFromFile builds and links a graph from its file
// representation. Classes are created in a first pass and relations
// linked by name in a second, so forward references are fine; a
// reference to a class not in the file is an error.
func newGraphFromFile(gf *graphFile) (*Graph, error) {
	gr := NewGraph()
	for _, cf := range gf.Classes {
		cl := gr.Class(cf.Name)
		if cl == nil {
			cl = gr.NewClass(cf.Name, nil)
		}
		if cf.Kind != "" {
			if err := cl.Kind.SetString(cf.Kind); err != nil {
				return nil, fmt.Errorf("classgraph: class %q: %w", cf.Name, err)
			}
		}
		cl.Abstract = cf.Abstract
		addFileMembers(cl, Method, cf.Methods)
		addFileMembers(cl, Getter, cf.Getters)
		addFileMembers(cl, Setter, cf.Setters)
	}
	for _, cf := range gf.Classes {
		cl := gr.Class(cf.Name)
		if cf.Extends != "" {
			sup := gr.Class(cf.Extends)
			if sup == nil {
				return nil, fmt.Errorf("classgraph: class %q extends unknown class %q", cf.Name, cf.Extends)
			}
			cl.Supertype = sup
		}
		for _, nm := range cf.With {
			mx := gr.Class(nm)
			if mx == nil {
				return nil, fmt.Errorf("classgraph: class %q mixes in unknown class %q", cf.Name, nm)
			}
			cl.AddMixins(mx)
		}
		for _, nm := range cf.Implements {
			fc := gr.Class(nm)
			if fc == nil {
				return nil, fmt.Errorf("classgraph: class %q implements unknown class %q", cf.Name, nm)
			}
			cl.AddInterfaces(fc)
		}
	}
	for _, cl := range gr.Classes.Values {
		if cl.Kind == Enum {
			addEnumSynthetics(cl)
		}
	}
	return gr, nil
}

// addFileMembers adds the given file members of one kind to the class.
func addFileMembers(cl *Class, kind Kinds, mfs []*memberFile) {
	for _, mf := range mfs {
		cl.AddMember(mf.Name, kind).SetAbstract(mf.Abstract).SetStatic(mf.Static)
	}
}

// Save saves the graph to the given file, with the format determined
// by the file extension: .json, .yaml / .yml, or .toml.
func (gr *Graph) Save(filename string) error {
	switch filepath.Ext(filename) {
	case ".json":
		return gr.SaveJSON(filename)
	case ".yaml", ".yml":
		return gr.SaveYAML(filename)
	case ".toml":
		return gr.SaveTOML(filename)
	}
	return fmt.Errorf("classgraph.Save: unknown file extension %q", filepath.Ext(filename))
}

// OpenGraph opens a graph from the given file, with the format
// determined by the file extension: .json, .yaml / .yml, or .toml.
func OpenGraph(filename string) (*Graph, error) {
	switch filepath.Ext(filename) {
	case ".json":
		return OpenGraphJSON(filename)
	case ".yaml", ".yml":
		return OpenGraphYAML(filename)
	case ".toml":
		return OpenGraphTOML(filename)
	}
	return nil, fmt.Errorf("classgraph.OpenGraph: unknown file extension %q", filepath.Ext(filename))
}

// SaveJSON saves the graph to a JSON-formatted file.
func (gr *Graph) SaveJSON(filename string) error {
	b, err := json.MarshalIndent(gr.fileRep(), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}

// OpenGraphJSON opens a graph from a JSON-formatted file.
func OpenGraphJSON(filename string) (*Graph, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	gf := &graphFile{}
	if err := json.Unmarshal(b, gf); err != nil {
		return nil, err
	}
	return newGraphFromFile(gf)
}

// SaveYAML saves the graph to a YAML-formatted file.
func (gr *Graph) SaveYAML(filename string) error {
	b, err := yaml.Marshal(gr.fileRep())
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}

// OpenGraphYAML opens a graph from a YAML-formatted file.
func OpenGraphYAML(filename string) (*Graph, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	gf := &graphFile{}
	if err := yaml.Unmarshal(b, gf); err != nil {
		return nil, err
	}
	return newGraphFromFile(gf)
}

// SaveTOML saves the graph to a TOML-formatted file.
func (gr *Graph) SaveTOML(filename string) error {
	b, err := toml.Marshal(gr.fileRep())
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}

// OpenGraphTOML opens a graph from a TOML-formatted file.
func OpenGraphTOML(filename string) (*Graph, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	gf := &graphFile{}
	if err := toml.Unmarshal(b, gf); err != nil {
		return nil, err
	}
	return newGraphFromFile(gf)
}
