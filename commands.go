// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	goio "io"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/henrij22/gomuesli/bind"
	"github.com/henrij22/gomuesli/inp"
	"github.com/henrij22/gomuesli/msolid"
	"github.com/henrij22/gomuesli/out"
	"github.com/spf13/cobra"
)

// runOptions holds the flags of the run command
type runOptions struct {
	alias      string // word added to the simulation key
	dirout     string // output directory; overrides the one in .sim files
	checkpoint string // checkpoint file; empty => dirout/key.cpt for .sim files, none otherwise
	enc        string // encoder of checkpoint
	compress   string // compression of checkpoint
	checkd     bool   // check consistent tangent numerically
	verbose    bool   // show messages
	table      bool   // print table of results
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "gomuesli",
		Short: "Material point driver for continuum mechanics material models",
		Long: `Drive material points of solid models along strain or deformation
gradient paths, save checkpoints of converged states and list the types
exposed to host runtimes.`,
		SilenceUsage: true,
	}
	root.AddCommand(newRunCmd(), newTypesCmd(), newPropsCmd())
	return root
}

func newRunCmd() *cobra.Command {
	var opts runOptions
	cmd := &cobra.Command{
		Use:   "run SIMFILE | MATFILE MATNAME PATHFILE",
		Short: "Drive a material point along a loading path",
		Long: `Drive a material point along a loading path.

With one argument, all data is read from a .sim file. With three arguments,
the material MATNAME is read from MATFILE and the path from PATHFILE.

Example:
  gomuesli run inp/data/uniaxial.sim
  gomuesli run materials.mat steel uniaxial.pat --checkd --checkpoint /tmp/steel.cpt`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 && len(args) != 3 {
				return chk.Err("run requires 1 or 3 arguments; got %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), args, &opts, cmd.Flags().Changed)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.alias, "alias", "", "word added to the simulation key")
	f.StringVar(&opts.dirout, "dirout", "", "output directory")
	f.StringVar(&opts.checkpoint, "checkpoint", "", "checkpoint file (saved as DIR/KEY.cpt)")
	f.StringVar(&opts.enc, "enc", "gob", "checkpoint encoder: gob or json")
	f.StringVar(&opts.compress, "compress", "none", "checkpoint compression: "+strings.Join(out.CompressionNames(), ", "))
	f.BoolVar(&opts.checkd, "checkd", false, "check consistent tangent numerically")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "show messages")
	f.BoolVar(&opts.table, "table", true, "print table of results")
	return cmd
}

// run drives a material point; changed tells whether a flag was given in the command line
func run(w goio.Writer, args []string, opts *runOptions, changed func(string) bool) (err error) {
	io.Verbose = opts.verbose

	// input data
	var sim *inp.Simulation
	if len(args) == 1 {
		sim, err = inp.ReadSim(args[0], opts.alias)
		if err != nil {
			return
		}
	} else {
		sim, err = simFromFiles(args[0], args[1], args[2], opts.alias)
		if err != nil {
			return
		}
	}
	if opts.dirout != "" {
		sim.DirOut = opts.dirout
	}
	if changed("enc") {
		sim.EncType = opts.enc
	}
	if changed("compress") {
		sim.Data.Compress = opts.compress
	}
	if changed("checkd") {
		sim.Driver.CheckD = opts.checkd
	}
	compress, err := out.ParseCompression(sim.Data.Compress)
	if err != nil {
		return
	}

	// model
	mdl, err := msolid.GetModel(sim.MatDb, sim.Mat.Name)
	if err != nil {
		return
	}
	if opts.verbose {
		mdl.Print(w)
	}

	// run
	drv := msolid.Driver{CheckD: sim.Driver.CheckD, TolD: sim.Driver.TolD, VerD: sim.Driver.VerD && opts.verbose}
	err = drv.Init(mdl)
	if err != nil {
		return
	}
	err = drv.Run(sim.Path)
	if err != nil {
		return chk.Err("%s failed:\n%v", sim.Key, err)
	}

	// output
	if opts.table {
		err = out.WriteTable(w, &drv)
		if err != nil {
			return
		}
	}
	if opts.verbose {
		out.PrintSummary(&drv)
	}
	dirout, key := sim.DirOut, sim.Key
	if opts.checkpoint != "" {
		dirout, key = filepath.Dir(opts.checkpoint), io.FnKey(filepath.Base(opts.checkpoint))
	} else if len(args) == 3 {
		return
	}
	cpt, err := out.NewCheckpoint(mdl, &drv)
	if err != nil {
		return
	}
	_, err = cpt.Save(dirout, key, sim.EncType, compress, opts.verbose)
	return
}

// simFromFiles assembles simulation data from a materials file and a path file
func simFromFiles(matfile, matname, pathfile, alias string) (sim *inp.Simulation, err error) {
	sim = new(inp.Simulation)
	sim.Driver.SetDefault()
	sim.Data.Matfile, sim.Data.Matname, sim.Data.Pathfile = matfile, matname, pathfile
	sim.Key = io.FnKey(filepath.Base(pathfile))
	if alias != "" {
		sim.Key += "-" + alias
	}
	sim.DirOut = "/tmp/gomuesli/" + sim.Key
	sim.EncType = "gob"
	sim.Data.Compress = "none"
	sim.MatDb, err = inp.ReadMat(filepath.Dir(matfile), filepath.Base(matfile))
	if err != nil {
		return
	}
	sim.Mat = sim.MatDb.Get(matname)
	if sim.Mat == nil {
		return nil, chk.Err("cannot find material %q in %q", matname, matfile)
	}
	sim.Path, err = inp.ReadPath(filepath.Dir(pathfile), filepath.Base(pathfile))
	return
}

func newTypesCmd() *cobra.Command {
	var methods bool
	cmd := &cobra.Command{
		Use:   "types",
		Short: "List the types exposed to host runtimes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listTypes(cmd.OutOrStdout(), methods)
		},
	}
	cmd.Flags().BoolVarP(&methods, "methods", "m", false, "list methods and constants too")
	return cmd
}

func listTypes(w goio.Writer, methods bool) error {
	mod := bind.NewModule("Muesli")
	err := bind.Register(mod)
	if err != nil {
		return err
	}
	if methods {
		mod.Print(w)
		return nil
	}
	linked := make(map[string]bool)
	for _, kind := range msolid.Available() {
		linked[kind] = true
	}
	for _, k := range msolid.Kinds {
		status := "not linked"
		if linked[k.Name] {
			status = "linked"
		}
		fmt.Fprintf(w, "%-30s %-20s <: %-22s %s\n", k.MaterialType(), k.PointType(), k.BaseMP, status)
	}
	return nil
}

func newPropsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "props",
		Short: "List the property-name constants",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, p := range inp.AllPropertyNames() {
				fmt.Fprintf(cmd.OutOrStdout(), "%3d %s\n", int(p), p)
			}
		},
	}
}
