package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/jnew-dev/jnew/internal/branding"
	jerrors "github.com/jnew-dev/jnew/internal/errors"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Config is the merged configuration. It is built once by Load and treated as
// read-only afterwards.
type Config struct {
	Templates map[string]string `mapstructure:"templates"`
	Keymaps   map[string]string `mapstructure:"keymaps"`
	Options   Options           `mapstructure:"options"`

	// File is the config file that was merged, or "" when none existed.
	File string `mapstructure:"-"`
}

// Options holds behavioral flags.
type Options struct {
	AutoOpen      bool     `mapstructure:"auto_open"`
	Editor        string   `mapstructure:"editor"`
	FileExtension string   `mapstructure:"file_extension"`
	JavaRelease   string   `mapstructure:"java_release"`
	SourceRoots   []string `mapstructure:"source_roots"`
	Notify        Notify   `mapstructure:"notify"`
}

// Notify controls user feedback verbosity.
type Notify struct {
	Level   string `mapstructure:"level"`
	Timeout int    `mapstructure:"timeout"`
}

// Kinds returns the construct kinds that have a template: the built-in kinds
// first, in menu order, then any extra kinds from the config file sorted by
// name.
func (c *Config) Kinds() []string {
	var kinds, extra []string
	for _, k := range BuiltinKinds {
		if c.Templates[k] != "" {
			kinds = append(kinds, k)
		}
	}
	for k, tmpl := range c.Templates {
		if tmpl != "" && !slices.Contains(BuiltinKinds, k) {
			extra = append(extra, k)
		}
	}
	slices.Sort(extra)
	return append(kinds, extra...)
}

// Keymap returns the alias bound to an operation, or "" when disabled.
func (c *Config) Keymap(op string) string {
	return c.Keymaps[op]
}

// LoadOptions controls where Load reads from.
type LoadOptions struct {
	// File overrides the default config file location.
	File string

	// Overrides is a nested map merged over defaults and the file.
	Overrides map[string]any

	// Sets are "dotted.key=value" pairs applied last.
	Sets []string
}

// Dir returns the jnew config directory. JNEW_HOME takes precedence over
// ~/.jnew.
func Dir() string {
	if v := os.Getenv(branding.EnvVar("HOME")); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the config file path. JNEW_CONFIG takes precedence over
// Dir()/config.yaml.
func FilePath() string {
	if v := os.Getenv(branding.EnvVar("CONFIG")); v != "" {
		return v
	}
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Default returns the built-in configuration with nothing merged on top.
func Default() *Config {
	cfg, err := load(newViper(false), "")
	if err != nil {
		// Defaults are static; failing to decode them is a programming error.
		panic(err)
	}
	return cfg
}

// Load merges defaults, the config file, environment variables, and the
// caller's overrides into a Config. A missing config file is not an error;
// a file that fails schema validation is an errors.ErrConfig.
func Load(opts LoadOptions) (*Config, error) {
	v := newViper(true)

	path := opts.File
	if path == "" {
		path = FilePath()
	}

	used := ""
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := checkSchema(path, data); err != nil {
			return nil, err
		}
		if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
			return nil, jerrors.NewConfigError(fmt.Sprintf("reading config: %v", err), path, "")
		}
		used = path
	case os.IsNotExist(err) && opts.File == "":
		// No user config yet; defaults and env only.
	default:
		return nil, jerrors.NewConfigError(fmt.Sprintf("reading config: %v", err), path, "")
	}

	if len(opts.Overrides) > 0 {
		if err := v.MergeConfigMap(opts.Overrides); err != nil {
			return nil, jerrors.NewConfigError(fmt.Sprintf("merging overrides: %v", err), "", "")
		}
	}

	for _, kv := range opts.Sets {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, jerrors.NewConfigError(fmt.Sprintf("invalid override %q", kv), "",
				"use --set dotted.key=value, e.g. --set options.auto_open=false")
		}
		v.Set(strings.TrimSpace(key), ParseValue(value))
	}

	return load(v, used)
}

func newViper(withEnv bool) *viper.Viper {
	v := viper.New()
	v.SetConfigType(fileType)
	if withEnv {
		v.SetEnvPrefix(branding.EnvPrefix())
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()
	}
	for key, value := range defaultSettings() {
		v.SetDefault(key, value)
	}
	return v
}

func load(v *viper.Viper, used string) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, jerrors.NewConfigError(fmt.Sprintf("decoding config: %v", err), used, "")
	}
	cfg.File = used
	return &cfg, nil
}

// ParseValue decodes a command-line value as a YAML scalar or flow
// collection, so "false" becomes a bool and "[src, lib]" a list. Values that
// are not valid YAML, such as templates starting with %package%, are kept as
// plain strings.
func ParseValue(value string) any {
	var parsed any
	if err := yaml.Unmarshal([]byte(value), &parsed); err != nil || parsed == nil {
		return value
	}
	if _, isMap := parsed.(map[string]any); isMap {
		return value
	}
	return parsed
}

func checkSchema(path string, data []byte) error {
	res, err := Validate(data)
	if err != nil {
		return jerrors.NewConfigError(err.Error(), path, "")
	}
	if res.Valid {
		return nil
	}
	msgs := make([]string, len(res.Issues))
	for i, issue := range res.Issues {
		msgs[i] = issue.String()
	}
	return jerrors.NewConfigError(strings.Join(msgs, "; "), path,
		"run 'jnew config validate' for the full report")
}

// Get returns the raw value stored under key in the config file at path, or
// nil when the file or key does not exist.
func Get(path, key string) (any, error) {
	v, err := readFileOnly(path)
	if err != nil {
		return nil, err
	}
	return v.Get(key), nil
}

// Set writes a key-value pair into the config file at path, creating the
// file if needed. Only the file's own keys are written back; defaults stay
// implicit. The updated document must still pass schema validation.
func Set(path, key string, value any) error {
	v, err := readFileOnly(path)
	if err != nil {
		return err
	}
	v.Set(key, value)

	out, err := yaml.Marshal(v.AllSettings())
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := checkSchema(path, out); err != nil {
		return err
	}

	if path == FilePath() {
		if err := EnsureDir(); err != nil {
			return err
		}
	} else if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// readFileOnly loads only the config file, without defaults or env.
func readFileOnly(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigType(fileType)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return v, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return v, nil
}

// Map returns the effective configuration as nested maps keyed like the
// config file.
func (c *Config) Map() map[string]any {
	templates := make(map[string]any, len(c.Templates))
	for k, v := range c.Templates {
		templates[k] = v
	}
	keymaps := make(map[string]any, len(c.Keymaps))
	for k, v := range c.Keymaps {
		keymaps[k] = v
	}
	return map[string]any{
		"templates": templates,
		"keymaps":   keymaps,
		"options": map[string]any{
			"auto_open":      c.Options.AutoOpen,
			"editor":         c.Options.Editor,
			"file_extension": c.Options.FileExtension,
			"java_release":   c.Options.JavaRelease,
			"source_roots":   append([]string(nil), c.Options.SourceRoots...),
			"notify": map[string]any{
				"level":   c.Options.Notify.Level,
				"timeout": c.Options.Notify.Timeout,
			},
		},
	}
}

// Lookup returns the effective value under a dotted key such as
// "options.notify.level". Intermediate keys return their whole subtree.
func (c *Config) Lookup(key string) (any, bool) {
	var cur any = c.Map()
	for _, part := range strings.Split(key, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[part]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}
