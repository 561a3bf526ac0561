package cli

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/jnew-dev/jnew/internal/branding"
	"github.com/jnew-dev/jnew/internal/config"
	"github.com/jnew-dev/jnew/internal/editor"
	jerrors "github.com/jnew-dev/jnew/internal/errors"
	"github.com/jnew-dev/jnew/internal/output"
	"github.com/jnew-dev/jnew/internal/resolve"
	"github.com/jnew-dev/jnew/internal/wizard"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// skipConfigAnnotation marks commands that still run when the config file
// cannot be loaded, so a broken file can be inspected and repaired.
const skipConfigAnnotation = "jnew/skip-config"

// app holds global flags and the state commands share once flags are
// parsed.
type app struct {
	configFile string
	sets       []string
	verbose    bool
	dir        string
	from       string

	cfg     *config.Config
	loadErr error

	in     io.Reader
	out    io.Writer
	errOut io.Writer

	// prompter overrides terminal detection when set.
	prompter wizard.Prompter

	openEditor func(ctx context.Context, cfg *config.Config, path string, line, col int) error
}

func newApp(in io.Reader, out, errOut io.Writer) *app {
	return &app{
		in:         in,
		out:        out,
		errOut:     errOut,
		openEditor: editor.Open,
	}
}

func (a *app) loadOptions() config.LoadOptions {
	return config.LoadOptions{File: a.configFile, Sets: a.sets}
}

func (a *app) host() resolve.Host {
	return resolve.FSHost{Dir: a.dir, From: a.from}
}

// newRootCmd builds the command tree. Kind shortcuts and aliases are taken
// from seed, the configuration loaded before flag parsing.
func newRootCmd(a *app, seed *config.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   branding.CLIName(),
		Short: branding.Description(),
		Long: branding.DisplayName() + ` creates Java source files from templates. It infers the package
from the project layout or from a Java file you are editing, never overwrites an
existing file, and opens the new file in your editor at the insertion point.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initialize(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", "Path to config file (env: "+branding.EnvVar("CONFIG")+")")
	rootCmd.PersistentFlags().StringArrayVar(&a.sets, "set", nil, "Override a config key, e.g. --set options.auto_open=false (repeatable)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&a.dir, "dir", "C", "", "Working directory or a file inside it (default: current directory)")
	rootCmd.PersistentFlags().StringVar(&a.from, "from", "", "Java file whose package statement is used as a fallback")

	rootCmd.AddCommand(newResolveCmd(a))
	rootCmd.AddCommand(newRenderCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newDoctorCmd(a))
	rootCmd.AddCommand(newVersionCmd(a))

	newCmd := newNewCmd(a)
	rootCmd.AddCommand(newCmd)
	bindAlias(newCmd, seed.Keymap(config.OpNew))

	for _, kind := range seed.Kinds() {
		kindCmd := newKindCmd(a, kind)
		if taken, _, err := rootCmd.Find([]string{kindCmd.Name()}); err == nil && taken != rootCmd {
			output.Debug("kind shadows a built-in command, skipping shortcut", "kind", kind)
			continue
		}
		rootCmd.AddCommand(kindCmd)
		bindAlias(kindCmd, seed.Keymap(kind))
	}

	rootCmd.SetIn(a.in)
	rootCmd.SetOut(a.out)
	rootCmd.SetErr(a.errOut)
	return rootCmd
}

// bindAlias adds alias to cmd. An empty alias leaves the command without
// one.
func bindAlias(cmd *cobra.Command, alias string) {
	if alias == "" || alias == cmd.Name() {
		return
	}
	cmd.Aliases = append(cmd.Aliases, alias)
}

// initialize loads the configuration with the parsed flags and sets up
// logging.
func (a *app) initialize(cmd *cobra.Command) error {
	output.SetupLogging(a.errOut, "info", a.verbose)

	cfg, err := config.Load(a.loadOptions())
	if err != nil {
		if _, ok := cmd.Annotations[skipConfigAnnotation]; !ok {
			return err
		}
		output.Debug("config load failed, continuing with defaults", "err", err)
		a.loadErr = err
		cfg = config.Default()
	}
	a.cfg = cfg

	output.SetupLogging(a.errOut, cfg.Options.Notify.Level, a.verbose)
	output.Debug("configuration loaded", "file", cfg.File, "kinds", cfg.Kinds())
	return nil
}

// preload reads only --config and --set from args so the command tree can
// be built from the user's kinds and keymaps before cobra parses anything.
// A configuration that fails to load falls back to defaults here; the real
// error surfaces when the command runs.
func preload(args []string) *config.Config {
	var opts config.LoadOptions

	fs := pflag.NewFlagSet("preload", pflag.ContinueOnError)
	fs.ParseErrorsAllowlist.UnknownFlags = true
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.StringVar(&opts.File, "config", "", "")
	fs.StringArrayVar(&opts.Sets, "set", nil, "")
	_ = fs.Parse(args)

	cfg, err := config.Load(opts)
	if err != nil {
		return config.Default()
	}
	return cfg
}

// run executes args against a fresh command tree. Errors are reported
// through the logger exactly once.
func run(ctx context.Context, a *app, args []string) error {
	rootCmd := newRootCmd(a, preload(args))
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		reportError(err)
	}
	return err
}

func reportError(err error) {
	if hint := jerrors.HintOf(err); hint != "" {
		output.Error(err.Error(), "hint", hint)
		return
	}
	output.Error(err.Error())
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return run(ctx, newApp(os.Stdin, os.Stdout, os.Stderr), os.Args[1:])
}
