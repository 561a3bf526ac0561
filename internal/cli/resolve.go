package cli

import (
	"encoding/json"
	"fmt"

	"github.com/jnew-dev/jnew/internal/output"
	"github.com/jnew-dev/jnew/internal/resolve"
	"github.com/spf13/cobra"
)

func newResolveCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Show where a new file would go and which package it gets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := resolve.Resolve(a.cfg, a.host())
			if err != nil {
				return err
			}

			if asJSON {
				out, err := json.MarshalIndent(res, "", "  ")
				if err != nil {
					return fmt.Errorf("marshaling resolution: %w", err)
				}
				fmt.Fprintln(a.out, string(out))
				return nil
			}

			pkg := res.Package
			if pkg == "" {
				pkg = output.StyleDim.Render("(default package)")
			}
			fmt.Fprintf(a.out, "source dir: %s\n", output.StyleNoun.Render(res.SourceDir))
			fmt.Fprintf(a.out, "package:    %s\n", pkg)
			fmt.Fprintf(a.out, "strategy:   %s\n", res.Strategy)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the resolution as JSON")
	return cmd
}
