// Package cli defines the Cobra command tree for the jnew CLI. Each file in
// this package builds one top-level command. Kind shortcuts and their
// aliases are generated from the loaded configuration. Commands only parse
// flags, format output, and drive prompts; the work is done by the resolve,
// scaffold, wizard, and editor packages.
package cli
