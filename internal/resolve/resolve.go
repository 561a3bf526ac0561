package resolve

import (
	"path/filepath"
	"strings"

	"github.com/jnew-dev/jnew/internal/config"
)

// Strategy names the inference step that produced a Result.
type Strategy string

const (
	StrategyPattern Strategy = "pattern"
	StrategyBuffer  Strategy = "buffer"
	StrategyDefault Strategy = "default"
)

// Buffer is the file currently being edited, if any.
type Buffer struct {
	Path     string
	FileType string // lower-case language name, e.g. "java"
	Lines    []string
}

// Context is what the host knows about where the user is working.
type Context struct {
	// Path is the directory the user is working in.
	Path string

	// Buffer is the open file, or nil.
	Buffer *Buffer
}

// Host supplies the working context. Terminal, editor, and test adapters
// implement it.
type Host interface {
	Context() (Context, error)
}

// Result is the outcome of a resolution. It is computed fresh on every call.
type Result struct {
	SourceDir string   `json:"source_dir"`
	Package   string   `json:"package"`
	Strategy  Strategy `json:"strategy"`
}

// Resolve asks the host for its context and resolves it against the
// configured source roots.
func Resolve(cfg *config.Config, host Host) (Result, error) {
	ctx, err := host.Context()
	if err != nil {
		return Result{}, err
	}
	return ResolveContext(cfg.Options.SourceRoots, ctx), nil
}

// ResolveContext tries, in order: source-root pattern match on ctx.Path, the
// package statement of a Java buffer, and finally ctx.Path with no package.
func ResolveContext(roots []string, ctx Context) Result {
	if pkg, ok := MatchPattern(ctx.Path, roots); ok {
		return Result{SourceDir: ctx.Path, Package: pkg, Strategy: StrategyPattern}
	}

	if b := ctx.Buffer; b != nil && b.FileType == "java" {
		if pkg, ok := ScanPackage(b.Lines); ok {
			return Result{SourceDir: filepath.Dir(b.Path), Package: pkg, Strategy: StrategyBuffer}
		}
	}

	return Result{SourceDir: ctx.Path, Strategy: StrategyDefault}
}

// MatchPattern looks for the first root, in configured order, that occurs in
// path as a whole-segment run. The segments after the leftmost occurrence
// become the package. A path that ends with the root yields an empty
// package. Inferred segments are not checked for identifier shape.
func MatchPattern(path string, roots []string) (string, bool) {
	if path == "" {
		return "", false
	}
	p := filepath.ToSlash(filepath.Clean(path))

	for _, root := range roots {
		r := strings.Trim(filepath.ToSlash(root), "/")
		if r == "" {
			continue
		}
		if idx := strings.Index(p, "/"+r+"/"); idx >= 0 {
			rest := strings.Trim(p[idx+len(r)+2:], "/")
			return strings.ReplaceAll(rest, "/", "."), true
		}
		if strings.HasSuffix(p, "/"+r) {
			return "", true
		}
	}
	return "", false
}
