// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command classgraph inspects class graph files (.json, .yaml, .toml)
// and runs inheritance-resolution queries against them.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"cogentcore.org/core/base/logx"
	"github.com/spf13/cobra"

	"cogentcore.org/classgraph"
	"cogentcore.org/classgraph/inherit"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "classgraph",
	Short: "classgraph inspects class graph files and resolves inherited members",
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if verbose {
			logx.UserLevel = slog.LevelDebug
		}
	},
}

var docCmd = &cobra.Command{
	Use:   "doc <file>",
	Short: "print an indented description of every class in the graph",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		gr, err := classgraph.OpenGraph(args[0])
		if err != nil {
			return err
		}
		gr.WriteDoc(os.Stdout)
		return nil
	},
}

var supersCmd = &cobra.Command{
	Use:   "supers <file> <class>",
	Short: "print the transitive supertypes of a class",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		gr, err := classgraph.OpenGraph(args[0])
		if err != nil {
			return err
		}
		cl := gr.Class(args[1])
		if cl == nil {
			return fmt.Errorf("no class named %q in %s", args[1], args[0])
		}
		for _, sup := range inherit.Supertypes(cl) {
			fmt.Println(sup.Name)
		}
		return nil
	},
}

var (
	lookupKind      string
	lookupInherited bool
	lookupConcrete  bool
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <file> <class> <member>",
	Short: "resolve a member name against a class's inheritance chain",
	Args:  cobra.ExactArgs(3),
	RunE: func(_ *cobra.Command, args []string) error {
		gr, err := classgraph.OpenGraph(args[0])
		if err != nil {
			return err
		}
		cl := gr.Class(args[1])
		if cl == nil {
			return fmt.Errorf("no class named %q in %s", args[1], args[0])
		}
		var kind classgraph.Kinds
		if err := kind.SetString(lookupKind); err != nil {
			return err
		}
		var flags inherit.LookupFlags
		flags.SetFlag(lookupInherited, inherit.Inherited)
		flags.SetFlag(lookupConcrete, inherit.Concrete)
		mb := inherit.Lookup(cl, args[2], kind, flags)
		if mb == nil {
			fmt.Println("(not found)")
			return nil
		}
		fmt.Printf("%v %v", mb.Kind, mb)
		if mb.Abstract {
			fmt.Print(" abstract")
		}
		if mb.Synthetic {
			fmt.Print(" synthetic")
		}
		fmt.Println()
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	lookupCmd.Flags().StringVarP(&lookupKind, "kind", "k", "method", "member kind to look up: method, getter, or setter")
	lookupCmd.Flags().BoolVar(&lookupInherited, "inherited", false, "exclude the class's own declaration")
	lookupCmd.Flags().BoolVar(&lookupConcrete, "concrete", false, "skip abstract declarations")
	rootCmd.AddCommand(docCmd, supersCmd, lookupCmd, watchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logx.PrintlnError(err)
		os.Exit(1)
	}
}
