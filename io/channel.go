// Package io provides the devices and image formats of the TCPU system.
// It includes the character console (Tty), raw binary images (Rom), and the
// hexadecimal memory dump used for diagnostics and as an image format.
package io

// Console defines the interface for the TCPU character console.
type Console interface {
	// Send writes a single character to the console.
	Send(value byte) error
}
