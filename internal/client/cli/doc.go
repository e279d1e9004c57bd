// Package cli implements the interactive surface of the AstroAI client: a
// REPL whose command set follows the navigation state machine. Command
// handlers live on App and print their own messages; the loop in runREPL only
// reads, dispatches and keeps going.
package cli
