// Package terminal defines the backend contract the component tree draws
// through: seven output directives, a blocking event read and a size query.
//
// Screen adapts a tcell.Screen (real or simulated) to that contract.
// Recorder keeps directives in memory and replays queued events, for tests
// and headless runs.
//
// Coordinates are 0-indexed cells, origin top-left.
package terminal
