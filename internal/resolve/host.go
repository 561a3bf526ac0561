package resolve

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// FSHost builds a Context from the filesystem. Dir is the working
// directory or a file inside it; From names a file to treat as the open
// buffer. When Dir is a file and From is empty, Dir itself is the buffer.
type FSHost struct {
	Dir  string
	From string
}

// Context implements Host.
func (h FSHost) Context() (Context, error) {
	dir := h.Dir
	if dir == "" {
		dir = "."
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return Context{}, fmt.Errorf("resolving %s: %w", dir, err)
	}

	ctx := Context{Path: abs}
	bufferPath := h.From

	if info, err := os.Stat(abs); err == nil && !info.IsDir() {
		ctx.Path = filepath.Dir(abs)
		if bufferPath == "" {
			bufferPath = abs
		}
	}

	if bufferPath != "" {
		b, err := LoadBuffer(bufferPath)
		if err != nil {
			return Context{}, err
		}
		ctx.Buffer = b
	}
	return ctx, nil
}

// LoadBuffer reads a file and detects its language.
func LoadBuffer(path string) (*Buffer, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}
	content, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("reading buffer %s: %w", path, err)
	}
	return &Buffer{
		Path:     abs,
		FileType: DetectFileType(abs, content),
		Lines:    strings.Split(string(content), "\n"),
	}, nil
}

// DetectFileType returns the lower-cased language of a file, e.g. "java",
// or "" when it cannot be identified. Files without an extension are never
// classified, so content alone cannot make a scratch buffer Java.
func DetectFileType(path string, content []byte) string {
	if filepath.Ext(path) == "" {
		return ""
	}
	lang, safe := enry.GetLanguageByExtension(path)
	if !safe || lang == "" {
		lang = enry.GetLanguage(filepath.Base(path), content)
	}
	return strings.ToLower(lang)
}
