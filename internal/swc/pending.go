package swc

import "github.com/PRIArobotics/HedgehogLightPi/internal/axcp"

// pendingReply correlates a single outstanding hardware-controller request
// raised on a user program's behalf with the reply that eventually comes
// back over the UART. Only one such request slot exists; arming it again
// before a reply arrives overwrites whatever was pending, same as the
// single-slot design it is modeled on.
type pendingReply struct {
	active bool
	opcode axcp.Opcode
	port   byte
}

// arm records that a reply for opcode/port should be forwarded to the
// program, overwriting any request that was already pending.
func (p *pendingReply) arm(opcode axcp.Opcode, port byte) {
	p.active = true
	p.opcode = opcode
	p.port = port
}

// match reports whether cmd is the reply the pending slot is waiting for,
// clearing the slot if so.
func (p *pendingReply) match(cmd axcp.Command) bool {
	if !p.active || cmd.Op != p.opcode {
		return false
	}
	if len(cmd.Payload) == 0 || cmd.Payload[0] != p.port {
		return false
	}
	p.active = false
	return true
}
