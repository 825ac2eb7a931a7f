// package ui implements the interactive movie browser.
//
// The TUI lists one catalog section at a time, opens a detail pane per
// movie, and lets the user toggle favorites or open a trailer without
// leaving the terminal.
package ui
