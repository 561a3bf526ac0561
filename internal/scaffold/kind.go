package scaffold

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/jnew-dev/jnew/internal/config"
	jerrors "github.com/jnew-dev/jnew/internal/errors"
)

// minRelease maps kinds to the first Java release that supports them.
var minRelease = map[string]string{
	config.KindRecord: "16",
}

// Template returns the template registered for kind. An unknown kind or an
// empty template is an errors.ErrConfig; there is no fallback template.
func Template(cfg *config.Config, kind string) (string, error) {
	tmpl, ok := cfg.Templates[kind]
	if !ok {
		return "", jerrors.NewConfigError(fmt.Sprintf("unknown construct kind %q", kind), "",
			"known kinds: "+strings.Join(cfg.Kinds(), ", "))
	}
	if tmpl == "" {
		return "", jerrors.NewConfigError(fmt.Sprintf("no template configured for %q", kind), cfg.File,
			fmt.Sprintf("set templates.%s in the config file", kind))
	}
	return tmpl, nil
}

// CheckRelease reports an errors.ErrConfig when the configured Java release
// predates kind. An empty release disables the check.
func CheckRelease(kind, release string) error {
	minimum, gated := minRelease[kind]
	if !gated || release == "" {
		return nil
	}

	v, err := semver.NewVersion(release)
	if err != nil {
		return jerrors.NewConfigError(fmt.Sprintf("invalid options.java_release %q: %v", release, err), "",
			`use a release number such as "17" or "1.8"`)
	}
	if v.LessThan(semver.MustParse(minimum)) {
		return jerrors.NewConfigError(
			fmt.Sprintf("%s requires Java %s or newer, configured release is %s", Label(kind), minimum, release), "",
			"raise options.java_release or pick another kind")
	}
	return nil
}

// Label returns the human-readable name of a kind ("abstract class").
func Label(kind string) string {
	return strings.ReplaceAll(kind, "_", " ")
}

// CommandName returns the CLI spelling of a kind ("abstract-class").
func CommandName(kind string) string {
	return strings.ReplaceAll(kind, "_", "-")
}
