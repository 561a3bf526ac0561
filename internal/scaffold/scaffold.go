package scaffold

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jnew-dev/jnew/internal/config"
	jerrors "github.com/jnew-dev/jnew/internal/errors"
	"github.com/jnew-dev/jnew/internal/javaname"
	"github.com/jnew-dev/jnew/internal/platform"
)

// Request describes one file to create.
type Request struct {
	Kind      string
	Name      string
	SourceDir string
	Package   string
}

// Result holds the outcome of a successful Create.
type Result struct {
	Path string `json:"path"`
	Rendered
}

// TargetPath returns where a type called name would be written.
func TargetPath(cfg *config.Config, sourceDir, name string) string {
	ext := cfg.Options.FileExtension
	if ext == "" {
		ext = "java"
	}
	return filepath.Join(sourceDir, name+"."+ext)
}

// Create validates the request, renders its template, and writes the file.
// Failures are classified by sentinel: ErrValidation for a bad name,
// ErrCollision when the file exists (it is never overwritten), ErrConfig for
// an unknown kind or unsupported release, ErrIO when the write fails. No
// file is left behind on any failure.
func Create(cfg *config.Config, req Request) (*Result, error) {
	if err := javaname.Validate(req.Name); err != nil {
		return nil, err
	}

	path := TargetPath(cfg, req.SourceDir, req.Name)
	if _, err := os.Lstat(path); err == nil {
		return nil, jerrors.NewCollisionError(path)
	}

	tmpl, err := Template(cfg, req.Kind)
	if err != nil {
		return nil, err
	}
	if err := CheckRelease(req.Kind, cfg.Options.JavaRelease); err != nil {
		return nil, err
	}

	rendered := Render(tmpl, req.Package, req.Name)

	if err := os.MkdirAll(req.SourceDir, 0755); err != nil {
		return nil, jerrors.NewIOError(req.SourceDir, err)
	}
	if err := platform.WriteFileExclusive(path, []byte(rendered.Content), 0644); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil, jerrors.NewCollisionError(path)
		}
		return nil, jerrors.NewIOError(path, err)
	}

	return &Result{Path: path, Rendered: rendered}, nil
}
