package cli

import (
	"fmt"

	"github.com/jnew-dev/jnew/internal/config"
	jerrors "github.com/jnew-dev/jnew/internal/errors"
	"github.com/jnew-dev/jnew/internal/output"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

func newConfigCmd(a *app) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage user settings",
		Long: `Read and write jnew configuration stored at ~/.jnew/config.yaml.

Values are merged from built-in defaults, the config file, JNEW_* environment
variables, and --set flags, in that order.`,
	}

	configCmd.AddCommand(newConfigPathCmd(a))
	configCmd.AddCommand(newConfigGetCmd(a))
	configCmd.AddCommand(newConfigSetCmd(a))
	configCmd.AddCommand(newConfigShowCmd(a))
	configCmd.AddCommand(newConfigValidateCmd(a))
	return configCmd
}

// configPath is the file config commands act on.
func (a *app) configPath() string {
	if a.configFile != "" {
		return a.configFile
	}
	return config.FilePath()
}

func tolerateBrokenConfig() map[string]string {
	return map[string]string{skipConfigAnnotation: "true"}
}

func newConfigPathCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:         "path",
		Short:       "Print the config file location",
		Args:        cobra.NoArgs,
		Annotations: tolerateBrokenConfig(),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(a.out, a.configPath())
			return nil
		},
	}
}

func newConfigGetCmd(a *app) *cobra.Command {
	var fileOnly bool

	cmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Long: `Print the effective value of a dotted key such as options.notify.level.
With --file, print only what the config file itself sets.`,
		Args:        cobra.ExactArgs(1),
		Annotations: tolerateBrokenConfig(),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]

			var (
				value any
				found bool
			)
			if fileOnly {
				v, err := config.Get(a.configPath(), key)
				if err != nil {
					return err
				}
				value, found = v, v != nil
			} else {
				value, found = a.cfg.Lookup(key)
			}
			if !found {
				return jerrors.NewConfigError(fmt.Sprintf("key %q is not set", key), "",
					"run 'jnew config show' to list keys")
			}
			return printValue(a, value)
		},
	}

	cmd.Flags().BoolVar(&fileOnly, "file", false, "Read from the config file only")
	return cmd
}

func newConfigSetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Example: `  jnew config set options.auto_open false
  jnew config set keymaps.record ""
  jnew config set options.source_roots "[src/main/java, app/src]"`,
		Args:        cobra.ExactArgs(2),
		Annotations: tolerateBrokenConfig(),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			path := a.configPath()
			if err := config.Set(path, key, config.ParseValue(value)); err != nil {
				return fmt.Errorf("setting config key %q: %w", key, err)
			}
			output.Debug("config updated", "file", path, "key", key)
			fmt.Fprintf(a.out, "Set %s = %s\n", key, value)
			return nil
		},
	}
}

func newConfigShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printValue(a, a.cfg.Map())
		},
	}
}

func newConfigValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:         "validate [file]",
		Short:       "Check a config file against the schema",
		Args:        cobra.MaximumNArgs(1),
		Annotations: tolerateBrokenConfig(),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.configPath()
			if len(args) == 1 {
				path = args[0]
			}

			res, err := config.ValidateFile(path)
			if err != nil {
				return jerrors.NewConfigError(err.Error(), path, "")
			}
			if !res.Valid {
				for _, issue := range res.Issues {
					fmt.Fprintf(a.out, "  %s %s\n", output.StyleWarn.Render("✗"), issue)
				}
				return jerrors.NewConfigError(fmt.Sprintf("%d schema issue(s)", len(res.Issues)), path, "")
			}

			fmt.Fprintf(a.out, "%s %s is valid\n", output.StyleCheck.Render("✔"), path)
			return nil
		},
	}
}

// printValue writes scalars bare and collections as YAML.
func printValue(a *app, value any) error {
	switch value.(type) {
	case map[string]any, []any, []string:
		out, err := yaml.Marshal(value)
		if err != nil {
			return fmt.Errorf("encoding value: %w", err)
		}
		fmt.Fprint(a.out, string(out))
	default:
		fmt.Fprintln(a.out, value)
	}
	return nil
}
