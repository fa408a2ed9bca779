// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"cogentcore.org/core/base/logx"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"cogentcore.org/classgraph"
)

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "watch a graph file and re-print its description when it changes",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		if err := printGraph(args[0]); err != nil {
			return err
		}
		wa, err := fsnotify.NewWatcher()
		if err != nil {
			return err
		}
		defer wa.Close()
		if err := wa.Add(args[0]); err != nil {
			return err
		}
		for {
			select {
			case ev, ok := <-wa.Events:
				if !ok {
					return nil
				}
				if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
					logx.PrintlnDebug("reloading:", ev.Name)
					if err := printGraph(args[0]); err != nil {
						logx.PrintlnError(err)
					}
				}
			case err, ok := <-wa.Errors:
				if !ok {
					return nil
				}
				logx.PrintlnError(err)
			}
		}
	},
}

func printGraph(filename string) error {
	gr, err := classgraph.OpenGraph(filename)
	if err != nil {
		return err
	}
	gr.WriteDoc(os.Stdout)
	return nil
}
