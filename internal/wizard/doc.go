// Package wizard drives the two-step "new file" dialog: pick a construct
// kind, then enter a type name.
//
// The dialog is an explicit state machine. A Prompter supplies the answers
// at each suspend point; dismissing a prompt moves the machine to
// Cancelled, which is an ordinary outcome rather than an error. Two
// prompters ship with the package: LinePrompter for plain numbered menus
// over any reader and writer, and TUIPrompter for an interactive terminal.
package wizard
