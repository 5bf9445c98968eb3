// Copyright (c) 2025, The Spherebase Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command spherebase opens a universe window: a node editor where nodes
// and edges live on the surface of interactive 3D spheres.
package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	var cfgPath string

	root := &cobra.Command{
		Use:     "spherebase",
		Short:   "spherebase — a node editor on the surface of 3D spheres",
		Version: version,
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Open the universe window",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cfgPath)
		},
	}
	runCmd.Flags().StringVarP(&cfgPath, "config", "c", "", "path to a TOML settings file")
	root.AddCommand(runCmd)

	if err := root.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "spherebase: %v\n", err)
		os.Exit(1)
	}
}
