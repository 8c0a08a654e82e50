// Package console provides interactive control of an emulator from a
// terminal: single-stepping by keypress, memory dumps, and continuing to a
// free run.
package console
