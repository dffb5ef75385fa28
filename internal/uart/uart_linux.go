//go:build linux

package uart

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

var baudConstants = map[int]uint32{
	9600:   unix.B9600,
	19200:  unix.B19200,
	38400:  unix.B38400,
	57600:  unix.B57600,
	115200: unix.B115200,
	230400: unix.B230400,
}

func open(device string, baud int) (Port, error) {
	speed, ok := baudConstants[baud]
	if !ok {
		return nil, fmt.Errorf("uart: unsupported baud rate %d", baud)
	}

	f, err := os.OpenFile(device, os.O_RDWR|unix.O_NOCTTY, 0)
	if err != nil {
		return nil, fmt.Errorf("uart: open %s: %w", device, err)
	}

	fd := int(f.Fd())
	term := unix.Termios{
		Iflag: unix.IGNPAR,
		Cflag: speed | unix.CS8 | unix.CLOCAL | unix.CREAD,
	}
	for i := range term.Cc {
		term.Cc[i] = 0
	}
	term.Cc[unix.VMIN] = 1
	term.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(fd, unix.TCSETS, &term); err != nil {
		f.Close()
		return nil, fmt.Errorf("uart: configure %s: %w", device, err)
	}
	if err := unix.IoctlTcflush(fd, unix.TCIOFLUSH); err != nil {
		f.Close()
		return nil, fmt.Errorf("uart: flush %s: %w", device, err)
	}

	return f, nil
}
