package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. Use these instead of inline lipgloss.Color literals.
var (
	ColorCyan       = lipgloss.Color("14")
	ColorGreenCheck = lipgloss.Color("10")
	ColorPink       = lipgloss.Color("205")
	ColorDimGray    = lipgloss.Color("240")
	ColorYellow     = lipgloss.Color("220")
)

// Semantic styles.
var (
	// StyleNoun styles paths, package names, and type names.
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleCheck styles the completion checkmark.
	StyleCheck = lipgloss.NewStyle().Foreground(ColorGreenCheck)

	// StyleDim styles structural chrome.
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleTitle styles prompt titles.
	StyleTitle = lipgloss.NewStyle().Bold(true)

	// StyleSelected styles the highlighted menu entry.
	StyleSelected = lipgloss.NewStyle().Foreground(ColorPink).Bold(true)

	// StyleWarn styles inline input problems.
	StyleWarn = lipgloss.NewStyle().Foreground(ColorYellow)
)

// Created prints the success line for a new file:
//
//	✔ created class com.example.Foo → /path/Foo.java
func Created(w io.Writer, kind, qualifiedName, path string) {
	fmt.Fprintf(w, "%s created %s %s %s %s\n",
		StyleCheck.Render("✔"),
		kind,
		StyleNoun.Render(qualifiedName),
		StyleDim.Render("→"),
		path,
	)
}
