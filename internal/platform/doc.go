// Package platform provides cross-platform filesystem operations. Its main
// job is writing a new file without ever replacing an existing one: on
// filesystems with hard links the content is staged in a temp file and
// linked into place; elsewhere it falls back to an exclusive create.
package platform
