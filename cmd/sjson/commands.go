// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/creachadair/sjson"
	"github.com/creachadair/sjson/resource"
	"github.com/creachadair/sjson/strid"
	"github.com/spf13/cobra"
)

func getCmd() *cobra.Command {
	var decode bool
	cmd := &cobra.Command{
		Use:   "get FILE [PATH...]",
		Short: "Print the value at a path in a document",
		Long: `Print the text of the value reached by following PATH from the root of
the document in FILE. Numeric path elements index arrays, and negative
indices count from the end; all others name object keys.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := lookup(args[0], args[1:])
			if err != nil {
				return err
			}
			var out string
			if err := sjson.Catch(func() {
				out = v.Raw()
				if decode && v.IsString() {
					out = v.ToString("")
				}
			}); err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&decode, "decode", "d", false, "Print strings decoded rather than quoted")
	cmd.Flags().SetInterspersed(false) // allow negative indices in the path
	return cmd
}

func keysCmd() *cobra.Command {
	var quote bool
	cmd := &cobra.Command{
		Use:   "keys FILE [PATH...]",
		Short: "List the keys of the object at a path",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := lookup(args[0], args[1:])
			if err != nil {
				return err
			}
			var keys []string
			if err := sjson.Catch(func() { keys = v.Keys() }); err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			for _, key := range keys {
				if quote {
					key = sjson.Quote(key)
				}
				fmt.Fprintln(cmd.OutOrStdout(), key)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&quote, "quote", "q", false, "Print keys as quoted strings")
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE...",
		Short: "Report whether documents are well-formed",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var nbad int
			for _, path := range args {
				doc, err := sjson.Open(path)
				if err == nil {
					err = doc.Check()
				}
				if err != nil {
					log.Errorf("%s: %v", path, err)
					nbad++
					continue
				}
				log.Debugf("%s: ok (%d bytes)", path, doc.Len())
			}
			if nbad > 0 {
				return fmt.Errorf("%d of %d documents are invalid", nbad, len(args))
			}
			return nil
		},
	}
}

func idCmd() *cobra.Command {
	var asResource bool
	cmd := &cobra.Command{
		Use:   "id STRING...",
		Short: "Print the identifiers of strings or resource paths",
		Long: `Print the 32-bit identifier of each STRING. With --resource, each STRING
is a resource path "name.type", and its 64-bit type and name identifiers
are printed instead.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, s := range args {
				if !asResource {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", strid.New(s), s)
					continue
				}
				id, err := strid.ParseResource(s)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", id, s)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&asResource, "resource", "r", false, "Treat arguments as resource paths")
	return cmd
}

func compileCmd() *cobra.Command {
	var configPath string
	var debug bool
	cmd := &cobra.Command{
		Use:   "compile -c CONFIG SOURCE OUTPUT",
		Short: "Compile a script into a resource blob",
		Long: `Compile the script in SOURCE with the compiler described by CONFIG and
write the resulting resource to OUTPUT.

The configuration is an SJSON object:

  {
    compiler: "./luajit",      // the compiler program (required)
    flags: ["-b"],             // flags for normal builds
    debug_flags: ["-bg"],      // flags used with --debug
    version: 1                 // resource version
  }`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := sjson.Open(configPath)
			if err != nil {
				return err
			}
			c, err := loadCompiler(doc)
			if err != nil {
				return fmt.Errorf("%s: %w", configPath, err)
			}
			c.Debug = debug
			c.Logger = log.Desugar()

			f, err := os.Create(args[1])
			if err != nil {
				return err
			}
			if err := c.Compile(cmd.Context(), args[0], f); err != nil {
				f.Close()
				os.Remove(args[1])
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			log.Infof("compiled %s to %s", args[0], args[1])
			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "compiler.sjson", "Compiler configuration file")
	cmd.Flags().BoolVar(&debug, "debug", false, "Keep debugging information")
	return cmd
}

// lookup opens the document at path and returns the element reached by
// following args from its root.
func lookup(path string, args []string) (sjson.Element, error) {
	doc, err := sjson.Open(path)
	if err != nil {
		return sjson.Element{}, err
	}
	v, err := doc.Root().Path(parsePath(args)...)
	if err != nil {
		return sjson.Element{}, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}

// parsePath converts command-line path arguments to path elements. An
// argument that parses as an integer is an array index; anything else is an
// object key.
func parsePath(args []string) []any {
	out := make([]any, len(args))
	for i, arg := range args {
		if n, err := strconv.Atoi(arg); err == nil {
			out[i] = n
		} else {
			out[i] = arg
		}
	}
	return out
}

// loadCompiler constructs a compiler from the configuration in doc.
func loadCompiler(doc *sjson.Document) (*resource.Compiler, error) {
	var c resource.Compiler
	err := sjson.Catch(func() {
		root := doc.Root()
		c.Command = root.KeyOrNil("compiler").ToString("")
		if flags := root.KeyOrNil("flags"); !flags.IsNil() {
			c.Flags = sjson.AppendArray(c.Flags, flags)
		}
		if flags := root.KeyOrNil("debug_flags"); !flags.IsNil() {
			c.DebugFlags = sjson.AppendArray(c.DebugFlags, flags)
		}
		c.Version = uint32(root.KeyOrNil("version").ToInt(1))
	})
	if err != nil {
		return nil, err
	}
	if c.Command == "" {
		return nil, errors.New("no compiler specified")
	}
	return &c, nil
}
