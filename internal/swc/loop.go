package swc

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/PRIArobotics/HedgehogLightPi/internal/axcp"
)

// idleBackoff is how long Run sleeps when a full pass over every source
// drained nothing, so the loop does not spin the CPU waiting for I/O.
const idleBackoff = 5 * time.Millisecond

// rxResult carries either a decoded command or the error that ended its
// source's feeder goroutine.
type rxResult struct {
	cmd axcp.Command
	err error
}

// Run drives the five-source event loop for as long as the UART stays
// open: it decodes at most one command from each live source per pass, in
// a fixed order, so that no single source can starve the others. Run
// returns when the high-level controller asks the controller to shut
// down, or when an unrecoverable I/O error occurs on the UART.
func (c *Controller) Run() error {
	uartCh := make(chan rxResult, 4)
	go feedCommands(c.uart, uartCh)

	stdinCh := make(chan string, 4)
	go feedLines(os.Stdin, stdinCh)

	for {
		if err := c.reapProgram(); err != nil {
			return err
		}

		progressed := false

		select {
		case r := <-uartCh:
			progressed = true
			if r.err != nil {
				if !errors.Is(r.err, axcp.ErrUnknownOpcode) {
					return c.fatalf("uart read: %w", r.err)
				}
				if err := c.sendError(axcp.ErrUnspecifiedOpcode, r.cmd.Op); err != nil {
					return err
				}
			} else if err := c.dispatchUART(r.cmd); err != nil {
				if errors.Is(err, errShutdown) {
					return nil
				}
				return err
			}
		default:
		}

		if c.prog != nil {
			select {
			case r, ok := <-c.prog.replyCh():
				if ok {
					progressed = true
					if r.err == nil {
						if err := c.dispatchProgramReply(r.cmd); err != nil {
							return err
						}
					}
				}
			default:
			}

			select {
			case chunk, ok := <-c.prog.stdoutCh():
				if ok {
					progressed = true
					if err := c.dispatchProgramStdout(chunk); err != nil {
						return err
					}
				}
			default:
			}
		}

		if c.dbg != nil {
			select {
			case ev, ok := <-c.dbg.Events():
				if ok {
					progressed = true
					if err := c.dispatchDebuggerEvent(ev); err != nil {
						return err
					}
				}
			case err := <-c.dbg.Errs():
				return c.fatalf("debugger: %w", err)
			default:
			}
		}

		select {
		case line := <-stdinCh:
			progressed = true
			c.dispatchStdin(line)
		default:
		}

		if !progressed {
			time.Sleep(idleBackoff)
		}
	}
}

// reapProgram checks, without blocking, whether the running program has
// exited, and reacts accordingly: reporting completion to the high-level
// controller, tearing down an attached debugger, and respawning the same
// binary if a restart was requested while it was shutting down.
func (c *Controller) reapProgram() error {
	if c.prog == nil {
		return nil
	}

	select {
	case state := <-c.prog.Done():
		exited := state != nil && state.Exited()
		name, version := c.name, c.version
		c.prog.Close()
		c.prog = nil

		if c.debuggerAttached {
			c.dbg.Close()
			c.dbg = nil
			c.debuggerAttached = false
			c.debuggerBreaked = false
		}

		restart := c.restartPending
		c.restartPending = false

		nameField := encodeName(name)
		versionField := encodeVersion(version)

		var report axcp.Command
		if exited {
			exitField := encodeUint32(uint32(state.ExitCode()))
			payload := make([]byte, 0, axcp.ProgramNameLen+6)
			payload = append(payload, nameField[:]...)
			payload = append(payload, versionField[:]...)
			payload = append(payload, exitField[:]...)
			report = axcp.Command{Op: axcp.ExecutionDoneAction, Payload: payload}
		} else {
			payload := append(append([]byte{}, nameField[:]...), versionField[:]...)
			report = axcp.Command{Op: axcp.ExecutionStoppedAction, Payload: payload}
		}
		if err := c.writeUART(report); err != nil {
			return err
		}

		if restart {
			paths := c.store.Paths(name, version)
			return c.startProgram(name, version, paths)
		}
		return nil
	default:
		return nil
	}
}

// dispatchStdin interprets a line of local standard input as
// space-separated decimal byte values forming one raw framed command,
// injecting it as though it had arrived over the UART. This exists purely
// as a local testing convenience.
func (c *Controller) dispatchStdin(line string) {
	fields := strings.Fields(line)
	raw := make([]byte, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 0 || n > 255 {
			c.log.Printf("stdin: invalid byte %q", f)
			return
		}
		raw = append(raw, byte(n))
	}
	cmd, err := axcp.Decode(bytes.NewReader(raw))
	if err != nil && !errors.Is(err, axcp.ErrUnknownOpcode) {
		c.log.Printf("stdin: %v", err)
		return
	}
	if err := c.dispatchUART(cmd); err != nil {
		c.log.Printf("stdin command: %v", err)
	}
}

// feedCommands decodes framed commands from r in a loop, posting each one
// (or the terminal error) to out, then closes out. The UART's feeder runs
// for the life of the process; a program's reply-pipe feeder stops once
// the pipe closes on program exit.
func feedCommands(r io.Reader, out chan<- rxResult) {
	defer close(out)
	for {
		cmd, err := axcp.Decode(r)
		out <- rxResult{cmd: cmd, err: err}
		if err != nil && !errors.Is(err, axcp.ErrUnknownOpcode) {
			return
		}
	}
}

// feedLines scans r for newline-terminated lines, posting each to out. It
// exits silently when r is closed.
func feedLines(r io.Reader, out chan<- string) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		out <- scanner.Text()
	}
}

// feedBytes reads r in chunks, posting each non-empty read to out. It
// closes out when r returns an error.
func feedBytes(r io.Reader, out chan<- []byte) {
	defer close(out)
	buf := make([]byte, 4096)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			out <- chunk
		}
		if err != nil {
			return
		}
	}
}
