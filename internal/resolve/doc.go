// Package resolve infers where a new Java type belongs: the source directory
// to write into and the package it should declare. Inference is a heuristic
// over the directory layout, with the package statement of an open Java
// file as a fallback.
package resolve
