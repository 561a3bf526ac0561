package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jnew-dev/jnew/internal/javaname"
	"github.com/jnew-dev/jnew/internal/output"
	"github.com/jnew-dev/jnew/internal/scaffold"
	"github.com/spf13/cobra"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		pkg    string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "render <kind> <name>",
		Short: "Print a rendered template without writing a file",
		Example: `  jnew render class Foo --package com.example
  jnew render record Point --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, name := kindFromArg(args[0]), args[1]
			if err := javaname.Validate(name); err != nil {
				return err
			}
			tmpl, err := scaffold.Template(a.cfg, kind)
			if err != nil {
				return err
			}
			if err := scaffold.CheckRelease(kind, a.cfg.Options.JavaRelease); err != nil {
				return err
			}

			r := scaffold.Render(tmpl, pkg, name)
			if asJSON {
				out, err := json.MarshalIndent(r, "", "  ")
				if err != nil {
					return fmt.Errorf("marshaling rendered template: %w", err)
				}
				fmt.Fprintln(a.out, string(out))
				return nil
			}

			fmt.Fprint(a.out, r.Content)
			output.Info("cursor", "line", r.CursorLine+1, "column", r.CursorCol+1)
			return nil
		},
	}

	cmd.Flags().StringVarP(&pkg, "package", "p", "", "Package to declare (default: none)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print content and zero-based cursor as JSON")
	return cmd
}

// kindFromArg accepts the CLI spelling of a kind ("abstract-class").
func kindFromArg(arg string) string {
	return strings.ReplaceAll(strings.ToLower(arg), "-", "_")
}
