// Command swc runs the software controller: it bridges a high-level
// controller reachable over a UART link to locally compiled and executed
// user programs and an attached debugger.
package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/PRIArobotics/HedgehogLightPi/internal/axcp"
	"github.com/PRIArobotics/HedgehogLightPi/internal/store"
	"github.com/PRIArobotics/HedgehogLightPi/internal/swc"
	"github.com/PRIArobotics/HedgehogLightPi/internal/toolchain"
	"github.com/PRIArobotics/HedgehogLightPi/internal/uart"
)

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)

	var (
		serialDevice   = flag.String("serial", "/dev/ttyAMA0", "UART device connected to the hardware controller")
		baud           = flag.Int("baud", 115200, "UART baud rate")
		programsDir    = flag.String("programs-dir", ".", "directory holding compiled user programs")
		compiler       = flag.String("compiler", "gcc", "C compiler used to build user programs")
		debuggerBin    = flag.String("debugger", "gdb", "debugger used for DEBUGGING_* actions")
		stdbufBin      = flag.String("stdbuf", "stdbuf", "stdbuf binary used to force unbuffered program output")
		customDataSize = flag.Int("custom-data-size", 256, "capacity in bytes of the per-program custom data buffer")
	)
	flag.Parse()

	port, err := uart.Open(*serialDevice, *baud)
	if err != nil {
		log.Fatalf("open UART: %v", err)
	}

	controller := swc.New(swc.Config{
		UART:           port,
		Store:          store.NewRoot(*programsDir),
		Toolchain:      toolchain.New(*compiler),
		DebuggerPath:   *debuggerBin,
		StdbufPath:     *stdbufBin,
		CustomDataSize: *customDataSize,
		Logger:         log.Default(),
	})

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Println("shutting down")
		port.Close()
	}()

	if err := axcp.Encode(port, axcp.Command{Op: axcp.HWControllerTypeRequest}); err != nil {
		log.Fatalf("request hardware controller type: %v", err)
	}

	if err := controller.Run(); err != nil {
		log.Fatalf("controller exited: %v", err)
	}
}
