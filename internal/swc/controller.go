// Package swc implements the software controller: the middle tier that
// bridges a phone-side high-level controller, reachable over UART, to
// locally compiled and run user programs and an attached debugger.
package swc

import (
	"fmt"
	"io"
	"log"

	"github.com/PRIArobotics/HedgehogLightPi/internal/axcp"
	"github.com/PRIArobotics/HedgehogLightPi/internal/debugger"
	"github.com/PRIArobotics/HedgehogLightPi/internal/ringbuf"
	"github.com/PRIArobotics/HedgehogLightPi/internal/store"
	"github.com/PRIArobotics/HedgehogLightPi/internal/toolchain"
)

// Config gathers everything the controller needs at startup.
type Config struct {
	UART           io.ReadWriteCloser
	Store          *store.Root
	Toolchain      *toolchain.Toolchain
	DebuggerPath   string
	StdbufPath     string
	CustomDataSize int
	Logger         *log.Logger
}

// Controller holds all of the software controller's live state: the
// identity of the currently loaded program, its running child process if
// any, the attached debugger, and the single pending hardware-controller
// reply being relayed to a user program.
type Controller struct {
	uart  io.ReadWriteCloser
	store *store.Root
	tc    *toolchain.Toolchain
	log   *log.Logger

	debuggerPath string
	stdbufPath   string
	customDataSz int

	hwType byte

	name    string
	version uint16

	prog       *runningProgram
	customData *ringbuf.Ring

	dbg              *debugger.Debugger
	debuggerAttached bool
	debuggerBreaked  bool

	restartPending bool
	pending        pendingReply
}

// New constructs a Controller ready to Run. The hardware controller type
// is not known until its reply to the initial type request arrives, so it
// starts at zero.
func New(cfg Config) *Controller {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Controller{
		uart:         cfg.UART,
		store:        cfg.Store,
		tc:           cfg.Toolchain,
		log:          logger,
		debuggerPath: cfg.DebuggerPath,
		stdbufPath:   cfg.StdbufPath,
		customDataSz: cfg.CustomDataSize,
	}
}

// writeUART encodes and sends cmd. Every outbound frame the controller
// sends goes through this one routine; its caller, the event loop, treats any error
// from it as fatal, since a half-written frame desynchronizes the link.
func (c *Controller) writeUART(cmd axcp.Command) error {
	return axcp.Encode(c.uart, cmd)
}

// sendError reports that a command could not be carried out.
func (c *Controller) sendError(code axcp.ErrorCode, causedBy axcp.Opcode) error {
	return c.writeUART(axcp.Command{
		Op:      axcp.ErrorAction,
		Payload: []byte{byte(code), byte(causedBy)},
	})
}

// programRunning reports whether a user program is currently executing.
func (c *Controller) programRunning() bool {
	return c.prog != nil
}

// encodeName renders a program name as the fixed-width, space-padded
// field used on the wire and on disk.
func encodeName(name string) [axcp.ProgramNameLen]byte {
	var out [axcp.ProgramNameLen]byte
	for i := range out {
		out[i] = ' '
	}
	copy(out[:], name)
	return out
}

// decodeName trims the trailing padding from a fixed-width name field.
func decodeName(field []byte) string {
	end := len(field)
	for end > 0 && field[end-1] == ' ' {
		end--
	}
	return string(field[:end])
}

// decodeVersion reads a big-endian 16-bit version number.
func decodeVersion(hi, lo byte) uint16 {
	return uint16(hi)<<8 | uint16(lo)
}

// encodeVersion writes a 16-bit version number big-endian.
func encodeVersion(v uint16) [2]byte {
	return [2]byte{byte(v >> 8), byte(v)}
}

// stopProgram sends SIGTERM to the running program, through the attached
// debugger if there is one. reapProgram closes the debugger and reports
// the program's end once the child has exited.
func (c *Controller) stopProgram() error {
	if !c.programRunning() {
		return c.sendError(axcp.ErrProgramIsNotRunning, axcp.ExecutionStopAction)
	}
	if c.debuggerAttached {
		c.dbg.TerminateProgram()
	} else {
		c.prog.Terminate()
	}
	return nil
}

// fatalf logs a fatal condition. The caller is expected to return the
// error so the event loop unwinds and main() exits.
func (c *Controller) fatalf(format string, args ...interface{}) error {
	err := fmt.Errorf(format, args...)
	c.log.Printf("fatal: %v", err)
	return err
}
