// Package javaname validates type names before they become Java source files.
package javaname

import (
	"fmt"
	"unicode"

	jerrors "github.com/jnew-dev/jnew/internal/errors"
	"golang.org/x/text/cases"
)

// Failure reasons, reported as the error message.
const (
	ReasonEmpty        = "empty"
	ReasonInvalidStart = "invalid start character"
	ReasonInvalidChar  = "invalid character"
	ReasonReserved     = "reserved word"
)

// reserved holds the Java keywords and literals, keyed by their case-folded
// spelling.
var reserved = map[string]string{}

var folder = cases.Fold()

func init() {
	for _, w := range []string{
		"abstract", "assert", "boolean", "break", "byte", "case", "catch",
		"char", "class", "const", "continue", "default", "do", "double",
		"else", "enum", "extends", "final", "finally", "float", "for", "goto",
		"if", "implements", "import", "instanceof", "int", "interface", "long",
		"native", "new", "package", "private", "protected", "public", "return",
		"short", "static", "strictfp", "super", "switch", "synchronized",
		"this", "throw", "throws", "transient", "try", "void", "volatile",
		"while", "true", "false", "null",
	} {
		reserved[folder.String(w)] = w
	}
}

// Validate reports whether name can be used as a type name. Checks run in
// order and the first failure wins: empty, start character, remaining
// characters, reserved word (compared case-insensitively). The error wraps
// errors.ErrValidation.
func Validate(name string) error {
	if name == "" {
		return jerrors.NewValidationError(ReasonEmpty, "enter a type name")
	}

	for i, r := range name {
		if i == 0 {
			if !isLetter(r) && r != '_' {
				return jerrors.NewValidationError(ReasonInvalidStart,
					fmt.Sprintf("%q must start with a letter or underscore", name))
			}
			continue
		}
		if !isLetter(r) && !isDigit(r) && r != '_' {
			return jerrors.NewValidationError(ReasonInvalidChar,
				fmt.Sprintf("%q may contain only letters, digits, and underscores", name))
		}
	}

	if kw, ok := reserved[folder.String(name)]; ok {
		return jerrors.NewValidationError(fmt.Sprintf("%s %q", ReasonReserved, kw),
			"Java keywords cannot be used as type names, in any letter case")
	}
	return nil
}

func isLetter(r rune) bool {
	return r < unicode.MaxASCII && unicode.IsLetter(r)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
