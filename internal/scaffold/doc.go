// Package scaffold turns a construct kind, a type name, and a resolved
// package into a new Java source file. Rendering substitutes the template
// placeholders and locates the cursor marker; Create validates the name,
// refuses to overwrite, and writes the file in one step.
package scaffold
