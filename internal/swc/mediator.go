package swc

import (
	"bytes"

	"github.com/PRIArobotics/HedgehogLightPi/internal/axcp"
	"github.com/PRIArobotics/HedgehogLightPi/internal/debugger"
)

// forwardToProgram re-encodes cmd and writes it to the running program's
// command pipe, delivering a hardware-controller reply the program is
// blocked waiting on.
func (c *Controller) forwardToProgram(cmd axcp.Command) error {
	if !c.programRunning() {
		return nil // program exited while its request was in flight
	}
	var buf bytes.Buffer
	if err := axcp.Encode(&buf, cmd); err != nil {
		return err
	}
	_, err := c.prog.CommandW.Write(buf.Bytes())
	return err
}

// replyOpcodeFor returns the reply opcode a request opcode expects, by
// the convention every request/reply pair in the table uses: the reply
// is the next opcode value after the request.
func replyOpcodeFor(request axcp.Opcode) axcp.Opcode {
	return request + 1
}

// dispatchProgramReply handles one command the running program wrote to
// its reply pipe: either an internal custom-data operation serviced
// locally, or a hardware-controller request relayed over the UART on the
// program's behalf.
func (c *Controller) dispatchProgramReply(cmd axcp.Command) error {
	switch cmd.Op {
	case axcp.CustomDataAvailableRequest:
		size := encodeUint32(uint32(c.customData.Len()))
		return c.replyToProgram(axcp.Command{
			Op:      axcp.CustomDataAvailableReply,
			Payload: size[:],
		})

	case axcp.ReadCustomDataRequest:
		if len(cmd.Payload) < 4 {
			return nil // malformed request from the program; nothing to answer
		}
		count := decodeUint32(cmd.Payload)
		return c.replyToProgram(axcp.Command{
			Op:      axcp.ReadCustomDataReply,
			Payload: c.drainCustomData(count),
		})

	case axcp.SendCustomDataAction:
		return c.forwardCustomData(cmd.Payload)

	default:
		// Arming overwrites any request that was already pending; the
		// user program API blocks until a reply arrives, but a stale
		// reply for an abandoned request should not wedge the slot.
		c.pending.arm(replyOpcodeFor(cmd.Op), requestPort(cmd.Payload))
		return c.writeUART(cmd)
	}
}

// replyToProgram answers a program-originated request without going over
// the UART at all.
func (c *Controller) replyToProgram(cmd axcp.Command) error {
	var buf bytes.Buffer
	if err := axcp.Encode(&buf, cmd); err != nil {
		return err
	}
	_, err := c.prog.CommandW.Write(buf.Bytes())
	return err
}

// requestPort reads the port byte that most sensor/motor/servo requests
// carry as their first payload byte; it is the correlation key matched
// against the eventual reply.
func requestPort(payload []byte) byte {
	if len(payload) == 0 {
		return 0
	}
	return payload[0]
}

// encodeUint32 writes a 32-bit count big-endian, the width the custom data
// channel's size and count fields use on the wire.
func encodeUint32(v uint32) [4]byte {
	return [4]byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
}

// decodeUint32 reads a big-endian 32-bit count.
func decodeUint32(b []byte) uint32 {
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

// appendCustomData copies as much of data as fits into the custom data
// ring buffer, dropping and logging once if it is, or becomes, full. This
// matches the original behavior of silently discarding overflow rather
// than signalling an error back to either side.
func (c *Controller) appendCustomData(data []byte) {
	dropped := false
	for _, b := range data {
		if err := c.customData.Append(b); err != nil {
			dropped = true
			continue
		}
	}
	if dropped {
		c.log.Printf("custom data buffer full, dropped some of %d incoming bytes", len(data))
	}
}

// drainCustomData pops exactly n bytes from the custom data ring buffer,
// zero-padding the tail of the result if fewer than n bytes are available.
func (c *Controller) drainCustomData(n uint32) []byte {
	out := make([]byte, n)
	for i := range out {
		b, err := c.customData.Read()
		if err != nil {
			break // the buffer is now empty; the rest of out stays zero
		}
		out[i] = b
	}
	return out
}

// forwardCustomData wraps bytes a running program sent for the high-level
// controller in an EXECUTION_DATA_ACTION and relays it over the UART.
func (c *Controller) forwardCustomData(data []byte) error {
	nameField := encodeName(c.name)
	versionField := encodeVersion(c.version)
	payload := make([]byte, 0, axcp.ProgramNameLen+2+len(data))
	payload = append(payload, nameField[:]...)
	payload = append(payload, versionField[:]...)
	payload = append(payload, data...)
	return c.writeUART(axcp.Command{Op: axcp.ExecutionDataAction, Payload: payload})
}

// dispatchProgramStdout wraps a chunk of the running program's combined
// stdout/stderr output in an EXECUTION_PRINTOUT_ACTION and relays it to
// the high-level controller.
func (c *Controller) dispatchProgramStdout(chunk []byte) error {
	return c.writeUART(axcp.Command{Op: axcp.ExecutionPrintoutAction, Payload: chunk})
}

// dispatchDebuggerEvent relays a structured debugger event to the
// high-level controller.
func (c *Controller) dispatchDebuggerEvent(ev debugger.Event) error {
	payload := make([]byte, 0, 2+len(ev.Locals))
	ver := encodeVersion(ev.Line)
	payload = append(payload, ver[:]...)
	payload = append(payload, ev.Locals...)
	return c.writeUART(axcp.Command{Op: axcp.DebuggingBreakedAction, Payload: payload})
}
