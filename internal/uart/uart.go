// Package uart opens the serial link to the hardware controller.
package uart

import "io"

// Port is an open serial line. Reads and writes are not synchronized
// against each other; a Port is meant to be read by one goroutine and
// written by another, same as any full-duplex file descriptor.
type Port interface {
	io.ReadWriteCloser
}

// Open opens device at the given baud rate, 8 data bits, no parity, one
// stop bit, with input parity errors ignored and modem control lines
// disabled, matching the line discipline the hardware controller expects.
func Open(device string, baud int) (Port, error) {
	return open(device, baud)
}
