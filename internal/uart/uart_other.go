//go:build !linux

package uart

import "github.com/tarm/serial"

func open(device string, baud int) (Port, error) {
	cfg := &serial.Config{
		Name:        device,
		Baud:        baud,
		Size:        8,
		Parity:      serial.ParityNone,
		StopBits:    serial.Stop1,
		ReadTimeout: 0,
	}
	return serial.OpenPort(cfg)
}
