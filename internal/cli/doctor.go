package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sort"
	"strings"

	"github.com/jnew-dev/jnew/internal/config"
	"github.com/jnew-dev/jnew/internal/editor"
	"github.com/jnew-dev/jnew/internal/resolve"
	"github.com/jnew-dev/jnew/internal/scaffold"
	"github.com/spf13/cobra"
)

// doctorReport counts failures while checks print their lines.
type doctorReport struct {
	w        io.Writer
	failures int
}

func (r *doctorReport) ok(format string, args ...any) {
	fmt.Fprintf(r.w, "  [ OK ] "+format+"\n", args...)
}

func (r *doctorReport) info(format string, args ...any) {
	fmt.Fprintf(r.w, "  [INFO] "+format+"\n", args...)
}

func (r *doctorReport) warn(format string, args ...any) {
	fmt.Fprintf(r.w, "  [WARN] "+format+"\n", args...)
}

func (r *doctorReport) fail(format string, args ...any) {
	r.failures++
	fmt.Fprintf(r.w, "  [FAIL] "+format+"\n", args...)
}

func newDoctorCmd(a *app) *cobra.Command {
	var (
		checkConfig    bool
		checkEditor    bool
		checkTemplates bool
		checkKeymaps   bool
		checkProject   bool
	)

	cmd := &cobra.Command{
		Use:         "doctor",
		Short:       "Health check for configuration and environment",
		Long:        `Run diagnostic checks on the configuration file, editor, templates, keymaps, and the current project.`,
		Args:        cobra.NoArgs,
		Annotations: tolerateBrokenConfig(),
		RunE: func(cmd *cobra.Command, args []string) error {
			all := !(checkConfig || checkEditor || checkTemplates || checkKeymaps || checkProject)
			r := &doctorReport{w: a.out}

			if all || checkConfig {
				a.runConfigCheck(r)
			}
			if all || checkEditor {
				a.runEditorCheck(r)
			}
			if all || checkTemplates {
				a.runTemplateCheck(r)
			}
			if all || checkKeymaps {
				a.runKeymapCheck(r, cmd.Root())
			}
			if all || checkProject {
				a.runProjectCheck(r)
			}

			if r.failures > 0 {
				return fmt.Errorf("doctor found %d problem(s)", r.failures)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&checkConfig, "check-config", false, "Validate the config file")
	cmd.Flags().BoolVar(&checkEditor, "check-editor", false, "Verify the editor can be found")
	cmd.Flags().BoolVar(&checkTemplates, "check-templates", false, "Verify templates and the Java release")
	cmd.Flags().BoolVar(&checkKeymaps, "check-keymaps", false, "Look for conflicting aliases")
	cmd.Flags().BoolVar(&checkProject, "check-project", false, "Show how the current directory resolves")
	return cmd
}

func (a *app) runConfigCheck(r *doctorReport) {
	fmt.Fprintln(r.w, "Config check:")

	path := a.configPath()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		r.info("no config file at %s, using defaults", path)
	} else {
		res, err := config.ValidateFile(path)
		switch {
		case err != nil:
			r.fail("cannot read %s: %v", path, err)
		case !res.Valid:
			r.fail("%s has %d schema issue(s):", path, len(res.Issues))
			for _, issue := range res.Issues {
				fmt.Fprintf(r.w, "    - %s\n", issue)
			}
		default:
			r.ok("%s is valid", path)
		}
	}

	if a.loadErr != nil {
		r.fail("configuration did not load: %v", a.loadErr)
	}
}

func (a *app) runEditorCheck(r *doctorReport) {
	fmt.Fprintln(r.w, "Editor check:")

	if !a.cfg.Options.AutoOpen {
		r.info("options.auto_open is off, files are not opened")
	}

	fields := strings.Fields(editor.Editor(a.cfg))
	if len(fields) == 0 {
		r.warn("no editor configured")
		return
	}
	path, err := exec.LookPath(fields[0])
	if err != nil {
		r.warn("%s not found in PATH", fields[0])
		return
	}
	r.ok("%s found at %s", fields[0], path)
}

func (a *app) runTemplateCheck(r *doctorReport) {
	fmt.Fprintln(r.w, "Templates check:")

	kinds := a.cfg.Kinds()
	if len(kinds) == 0 {
		r.fail("no templates configured")
		return
	}

	for _, kind := range kinds {
		tmpl := a.cfg.Templates[kind]
		switch {
		case !strings.Contains(tmpl, config.NameToken):
			r.warn("%s: template has no %s placeholder", kind, config.NameToken)
		case !strings.Contains(tmpl, config.CursorToken):
			r.info("%s: template has no %s placeholder, cursor starts at the top", kind, config.CursorToken)
		default:
			r.ok("%s", kind)
		}

		if err := scaffold.CheckRelease(kind, a.cfg.Options.JavaRelease); err != nil {
			r.warn("%s: %v", kind, err)
		}
	}
}

func (a *app) runKeymapCheck(r *doctorReport, root *cobra.Command) {
	fmt.Fprintln(r.w, "Keymaps check:")

	names := make(map[string]bool)
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}

	byAlias := make(map[string][]string)
	for op, alias := range a.cfg.Keymaps {
		if alias != "" {
			byAlias[alias] = append(byAlias[alias], op)
		}
	}

	aliases := make([]string, 0, len(byAlias))
	for alias := range byAlias {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)

	clean := true
	for _, alias := range aliases {
		ops := byAlias[alias]
		sort.Strings(ops)
		if len(ops) > 1 {
			clean = false
			r.warn("alias %q is bound to %s; only one will work", alias, strings.Join(ops, ", "))
		}
		if names[alias] {
			clean = false
			r.warn("alias %q shadows the %q command", alias, alias)
		}
	}
	if clean {
		r.ok("%d alias(es), no conflicts", len(aliases))
	}
}

func (a *app) runProjectCheck(r *doctorReport) {
	fmt.Fprintln(r.w, "Project check:")

	res, err := resolve.Resolve(a.cfg, a.host())
	if err != nil {
		r.fail("cannot resolve the working directory: %v", err)
		return
	}
	pkg := res.Package
	if pkg == "" {
		pkg = "(default package)"
	}
	r.ok("%s -> %s [%s]", res.SourceDir, pkg, res.Strategy)
}
