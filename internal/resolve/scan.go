package resolve

import (
	"context"
	"regexp"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"
)

var packageLine = regexp.MustCompile(`^\s*package\s+([\w.]+)\s*;`)

// ScanPackage returns the package declared by a Java source file. The
// source is parsed with tree-sitter first; if the parse finds no
// package_declaration, the lines are scanned for "package <name>;".
func ScanPackage(lines []string) (string, bool) {
	if pkg, ok := parsePackage([]byte(strings.Join(lines, "\n"))); ok {
		return pkg, true
	}
	return scanPackageLines(lines)
}

func parsePackage(content []byte) (string, bool) {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(java.GetLanguage())

	tree, err := parser.ParseCtx(context.Background(), nil, content)
	if err != nil {
		return "", false
	}
	defer tree.Close()

	root := tree.RootNode()
	for i := 0; i < int(root.NamedChildCount()); i++ {
		decl := root.NamedChild(i)
		if decl.Type() != "package_declaration" {
			continue
		}
		if decl.HasError() || !terminated(decl) {
			continue
		}
		for j := 0; j < int(decl.NamedChildCount()); j++ {
			name := decl.NamedChild(j)
			switch name.Type() {
			case "scoped_identifier", "identifier":
				text := name.Content(content)
				if strings.ContainsAny(text, " \t\r\n") {
					return "", false
				}
				return text, true
			}
		}
	}
	return "", false
}

// terminated reports whether decl ends in a ";" present in the source.
// tree-sitter inserts a zero-width MISSING node when recovering.
func terminated(decl *sitter.Node) bool {
	for k := 0; k < int(decl.ChildCount()); k++ {
		if c := decl.Child(k); c.Type() == ";" && !c.IsMissing() {
			return true
		}
	}
	return false
}

func scanPackageLines(lines []string) (string, bool) {
	for _, line := range lines {
		if m := packageLine.FindStringSubmatch(line); m != nil {
			return m[1], true
		}
	}
	return "", false
}
