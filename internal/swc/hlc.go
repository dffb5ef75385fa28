package swc

import (
	"os"
	"path/filepath"
	"syscall"
	"time"

	"github.com/PRIArobotics/HedgehogLightPi/internal/axcp"
	"github.com/PRIArobotics/HedgehogLightPi/internal/debugger"
	"github.com/PRIArobotics/HedgehogLightPi/internal/program"
	"github.com/PRIArobotics/HedgehogLightPi/internal/ringbuf"
	"github.com/PRIArobotics/HedgehogLightPi/internal/store"
)

// errShutdown unwinds the event loop cleanly in response to
// SW_CONTROLLER_OFF_ACTION; it is not logged as a failure.
var errShutdown = &shutdownError{}

type shutdownError struct{}

func (*shutdownError) Error() string { return "swc: shutdown requested" }

// dispatchUART handles a single command received from the high-level
// controller over the UART link.
func (c *Controller) dispatchUART(cmd axcp.Command) error {
	if c.pending.match(cmd) {
		return c.forwardToProgram(cmd)
	}

	switch cmd.Op {
	case axcp.HWControllerTypeReply:
		if len(cmd.Payload) >= 1 {
			c.hwType = cmd.Payload[0]
		}
		return nil

	case axcp.SWControllerTypeRequest:
		return c.writeUART(axcp.Command{Op: axcp.SWControllerTypeReply, Payload: []byte{swControllerType}})

	case axcp.ProgramCompileRequest:
		return c.handleCompile(cmd.Payload, false)

	case axcp.ProgramCompileExecuteRequest:
		return c.handleCompile(cmd.Payload, true)

	case axcp.ProgramExecuteAction:
		return c.handleExecute(cmd.Payload)

	case axcp.ProgramsFetchSubscription:
		return c.handleProgramsFetch()

	case axcp.ExecutionDataAction:
		return c.handleExecutionData(cmd.Payload)

	case axcp.ExecutionStopAction:
		return c.stopProgram()

	case axcp.ExecutionRestartAction:
		return c.handleRestart()

	case axcp.DebuggingBreakAction:
		return c.handleDebugBreak()

	case axcp.DebuggingContinueAction:
		return c.handleDebugContinue()

	case axcp.DebuggingAddBreakpointAction:
		return c.handleAddBreakpoint(cmd.Payload)

	case axcp.DebuggingRemoveBreakpointAction:
		return c.handleRemoveBreakpoint(cmd.Payload)

	case axcp.SWControllerOffAction:
		return errShutdown

	case axcp.SWControllerResetAction:
		return c.handleReset()

	default:
		return c.sendError(axcp.ErrOperationNotSupported, cmd.Op)
	}
}

// swControllerType is the fixed identifier this implementation reports
// for SW_CONTROLLER_TYPE_REPLY.
const swControllerType = 1

func (c *Controller) handleCompile(payload []byte, executeAfter bool) error {
	op := axcp.ProgramCompileRequest
	if executeAfter {
		op = axcp.ProgramCompileExecuteRequest
	}
	if len(payload) < axcp.ProgramNameLen+2 {
		return c.sendError(axcp.ErrPayloadLengthOutOfRange, op)
	}
	if c.hwType == 0 {
		return c.sendError(axcp.ErrNoHWControllerConnected, op)
	}

	name := decodeName(payload[:axcp.ProgramNameLen])
	version := decodeVersion(payload[axcp.ProgramNameLen], payload[axcp.ProgramNameLen+1])
	code := payload[axcp.ProgramNameLen+2:]

	paths, err := c.store.WriteSource(name, version, c.hwType, code)
	if err != nil {
		return c.fatalf("write source for %s: %w", name, err)
	}

	result, err := c.tc.Compile(paths, c.hwType)
	if err != nil {
		return c.fatalf("compile %s: %w", name, err)
	}
	if err := c.store.WriteManifest(store.Manifest{
		Name: name, Version: version, CompiledAt: time.Now(), Succeeded: result.Succeeded,
	}); err != nil {
		c.log.Printf("write manifest for %s: %v", name, err)
	}

	status := byte(1)
	if result.Succeeded {
		status = 0
	}
	nameField := encodeName(name)
	versionField := encodeVersion(version)
	reply := make([]byte, 0, axcp.ProgramNameLen+3+len(result.Diagnostics))
	reply = append(reply, nameField[:]...)
	reply = append(reply, versionField[:]...)
	reply = append(reply, status)
	reply = append(reply, result.Diagnostics...)

	replyOp := axcp.ProgramCompileReply
	if executeAfter {
		replyOp = axcp.ProgramCompileExecuteReply
	}
	if err := c.writeUART(axcp.Command{Op: replyOp, Payload: reply}); err != nil {
		return err
	}

	if executeAfter && result.Succeeded {
		return c.startProgram(name, version, paths)
	}
	return nil
}

func (c *Controller) handleExecute(payload []byte) error {
	if len(payload) < axcp.ProgramNameLen+2 {
		return c.sendError(axcp.ErrPayloadLengthOutOfRange, axcp.ProgramExecuteAction)
	}
	if c.programRunning() {
		return c.sendError(axcp.ErrProgramAlreadyRunning, axcp.ProgramExecuteAction)
	}

	name := decodeName(payload[:axcp.ProgramNameLen])
	version := decodeVersion(payload[axcp.ProgramNameLen], payload[axcp.ProgramNameLen+1])
	paths := c.store.Paths(name, version)

	if _, err := os.Stat(paths.Binary); err != nil {
		return c.sendError(axcp.ErrProgramNotFound, axcp.ProgramExecuteAction)
	}
	return c.startProgram(name, version, paths)
}

func (c *Controller) startProgram(name string, version uint16, paths store.Paths) error {
	running, err := program.Spawn(paths.Binary, name, version, c.stdbufPath)
	if err != nil {
		return c.fatalf("spawn %s: %w", name, err)
	}
	c.prog = wrapRunning(running)
	c.name = name
	c.version = version
	c.customData = ringbuf.New(c.customDataSz)

	nameField := encodeName(name)
	versionField := encodeVersion(version)
	payload := append(append([]byte{}, nameField[:]...), versionField[:]...)
	return c.writeUART(axcp.Command{Op: axcp.ExecutionStartedAction, Payload: payload})
}

func (c *Controller) handleProgramsFetch() error {
	programs, err := c.store.List()
	if err != nil {
		return c.fatalf("list programs: %w", err)
	}
	for _, p := range programs {
		source, err := c.store.ReadUserSource(p.Name, p.Version)
		if err != nil {
			c.log.Printf("read source for %s: %v", p.Name, err)
			continue
		}
		nameField := encodeName(p.Name)
		versionField := encodeVersion(p.Version)
		payload := make([]byte, 0, axcp.ProgramNameLen+2+len(source))
		payload = append(payload, nameField[:]...)
		payload = append(payload, versionField[:]...)
		payload = append(payload, source...)
		if err := c.writeUART(axcp.Command{Op: axcp.ProgramsFetchUpdate, Payload: payload}); err != nil {
			return err
		}
	}
	return c.writeUART(axcp.Command{Op: axcp.ProgramsFetchDoneUpdate})
}

// handleExecutionData appends custom data the high-level controller sent
// for the running program to its inbound custom-data buffer.
func (c *Controller) handleExecutionData(payload []byte) error {
	if len(payload) < axcp.ProgramNameLen+2 {
		return c.sendError(axcp.ErrPayloadLengthOutOfRange, axcp.ExecutionDataAction)
	}
	if !c.programRunning() {
		return c.sendError(axcp.ErrProgramIsNotRunning, axcp.ExecutionDataAction)
	}
	c.appendCustomData(payload[axcp.ProgramNameLen+2:])
	return nil
}

func (c *Controller) handleRestart() error {
	if !c.programRunning() {
		return c.sendError(axcp.ErrProgramIsNotRunning, axcp.ExecutionRestartAction)
	}
	c.restartPending = true
	if c.debuggerAttached {
		c.dbg.TerminateProgram()
	} else {
		c.prog.Terminate()
	}
	return nil
}

func (c *Controller) handleDebugBreak() error {
	if !c.programRunning() {
		return c.sendError(axcp.ErrProgramIsNotRunning, axcp.DebuggingBreakAction)
	}
	if c.debuggerAttached {
		// Already attached: a further break just interrupts the program in
		// place rather than reattaching.
		if err := c.prog.Signal(syscall.SIGINT); err != nil {
			return c.fatalf("signal %s: %w", c.name, err)
		}
		c.debuggerBreaked = true
		return nil
	}

	dbg, err := debugger.Start(c.debuggerPath)
	if err != nil {
		return c.fatalf("start debugger: %w", err)
	}
	paths := c.store.Paths(c.name, c.version)
	dbg.Delete()
	dbg.LoadFile(paths.Binary)
	dbg.Attach(c.prog.Pid())

	c.dbg = dbg
	c.debuggerAttached = true
	c.debuggerBreaked = true

	return c.writeUART(axcp.Command{Op: axcp.DebuggingBreakedAction, Payload: encodeVersion(0)[:]})
}

func (c *Controller) handleDebugContinue() error {
	if !c.debuggerAttached || !c.debuggerBreaked {
		return c.sendError(axcp.ErrProgramIsNotBreaked, axcp.DebuggingContinueAction)
	}
	c.debuggerBreaked = false
	return c.dbg.Continue()
}

func (c *Controller) handleAddBreakpoint(payload []byte) error {
	if !c.debuggerAttached || !c.debuggerBreaked {
		return c.sendError(axcp.ErrProgramIsNotBreaked, axcp.DebuggingAddBreakpointAction)
	}
	if len(payload) < axcp.ProgramNameLen+4 {
		return c.sendError(axcp.ErrPayloadLengthOutOfRange, axcp.DebuggingAddBreakpointAction)
	}
	line := int(decodeVersion(payload[axcp.ProgramNameLen+2], payload[axcp.ProgramNameLen+3]))
	return c.dbg.AddBreakpoint(line + store.SourcePreambleLines)
}

func (c *Controller) handleRemoveBreakpoint(payload []byte) error {
	if !c.debuggerAttached || !c.debuggerBreaked {
		return c.sendError(axcp.ErrProgramIsNotBreaked, axcp.DebuggingRemoveBreakpointAction)
	}
	if len(payload) < axcp.ProgramNameLen+4 {
		return c.sendError(axcp.ErrPayloadLengthOutOfRange, axcp.DebuggingRemoveBreakpointAction)
	}
	line := int(decodeVersion(payload[axcp.ProgramNameLen+2], payload[axcp.ProgramNameLen+3]))
	return c.dbg.RemoveBreakpoint(line + store.SourcePreambleLines)
}

func (c *Controller) handleReset() error {
	entries, err := os.ReadDir(c.store.Dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return c.fatalf("read store root: %w", err)
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if err := os.RemoveAll(filepath.Join(c.store.Dir, e.Name())); err != nil {
			c.log.Printf("remove %s: %v", e.Name(), err)
		}
	}
	return nil
}
