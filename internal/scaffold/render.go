package scaffold

import (
	"strings"

	"github.com/jnew-dev/jnew/internal/config"
)

// Rendered is a template instantiated for one type. Cursor coordinates are
// zero-based; the column counts bytes.
type Rendered struct {
	Content    string `json:"content"`
	CursorLine int    `json:"cursor_line"`
	CursorCol  int    `json:"cursor_col"`
}

// Render fills tmpl for a type called name in package pkg. An empty pkg
// collapses the declaration slot to nothing. The first cursor marker, found
// line by line, sets the cursor; every marker is then removed. Without a
// marker the cursor is (0, 0).
func Render(tmpl, pkg, name string) Rendered {
	decl := ""
	if pkg != "" {
		decl = "package " + pkg + ";\n\n"
	}

	out := strings.ReplaceAll(tmpl, config.PackageToken, decl)
	out = strings.ReplaceAll(out, config.NameToken, name)

	r := Rendered{Content: out}
	for i, line := range strings.Split(out, "\n") {
		if col := strings.Index(line, config.CursorToken); col >= 0 {
			r.CursorLine = i
			r.CursorCol = col
			r.Content = strings.ReplaceAll(out, config.CursorToken, "")
			break
		}
	}
	return r
}
