package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/jnew-dev/jnew/internal/config"
	"github.com/jnew-dev/jnew/internal/output"
	"github.com/jnew-dev/jnew/internal/resolve"
	"github.com/jnew-dev/jnew/internal/scaffold"
	"github.com/jnew-dev/jnew/internal/wizard"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newNewCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   config.OpNew,
		Short: "Create a Java file, choosing the kind and name interactively",
		Long: `Ask for a construct kind and a type name, then create the file in the
resolved source directory. Dismissing either prompt cancels without
creating anything.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			outcome, err := wizard.Run(cmd.Context(), a.prompterFor(), a.cfg.Kinds())
			if err != nil {
				return err
			}
			return a.finish(cmd.Context(), outcome)
		},
	}
}

func newKindCmd(a *app, kind string) *cobra.Command {
	label := scaffold.Label(kind)
	return &cobra.Command{
		Use:   scaffold.CommandName(kind) + " [name]",
		Short: fmt.Sprintf("Create a new %s", label),
		Long: fmt.Sprintf(`Create a new %s called name in the resolved source directory. The name is
prompted for when omitted.`, label),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return a.create(cmd.Context(), kind, args[0])
			}
			outcome, err := wizard.RunName(cmd.Context(), a.prompterFor(), kind)
			if err != nil {
				return err
			}
			return a.finish(cmd.Context(), outcome)
		},
	}
}

func (a *app) finish(ctx context.Context, outcome wizard.Outcome) error {
	if outcome.Cancelled() {
		output.Info("cancelled, nothing created")
		return nil
	}
	return a.create(ctx, outcome.Kind, outcome.Name)
}

// create resolves the target, writes the file, and opens it. Editor
// failures are only warnings; the file already exists at that point.
func (a *app) create(ctx context.Context, kind, name string) error {
	res, err := resolve.Resolve(a.cfg, a.host())
	if err != nil {
		return err
	}
	output.Debug("resolved target", "dir", res.SourceDir, "package", res.Package, "strategy", res.Strategy)

	result, err := scaffold.Create(a.cfg, scaffold.Request{
		Kind:      kind,
		Name:      name,
		SourceDir: res.SourceDir,
		Package:   res.Package,
	})
	if err != nil {
		return err
	}

	output.Created(a.out, scaffold.Label(kind), qualifiedName(res.Package, name), result.Path)

	if err := a.openEditor(ctx, a.cfg, result.Path, result.CursorLine, result.CursorCol); err != nil {
		output.Warn("could not open editor", "path", result.Path, "err", err)
	}
	return nil
}

// prompterFor picks the TUI when both ends are terminals and numbered line
// prompts otherwise.
func (a *app) prompterFor() wizard.Prompter {
	if a.prompter != nil {
		return a.prompter
	}
	if isTerminal(a.in) && isTerminal(a.out) {
		return wizard.NewTUIPrompter(a.in, a.out)
	}
	return wizard.NewLinePrompter(a.in, a.out)
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func qualifiedName(pkg, name string) string {
	if pkg == "" {
		return name
	}
	return pkg + "." + name
}
