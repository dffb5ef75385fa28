package swc

import (
	"testing"

	"github.com/PRIArobotics/HedgehogLightPi/internal/axcp"
)

func TestPendingReplyArmAndMatch(t *testing.T) {
	var p pendingReply
	p.arm(axcp.AnalogSensorReply, 3)
	if p.match(axcp.Command{Op: axcp.AnalogSensorReply, Payload: []byte{5, 0, 0}}) {
		t.Fatal("match should fail for the wrong port")
	}
	if !p.match(axcp.Command{Op: axcp.AnalogSensorReply, Payload: []byte{3, 0, 0}}) {
		t.Fatal("match should succeed for the armed opcode and port")
	}
	if p.active {
		t.Fatal("a successful match should clear the pending slot")
	}
}

func TestPendingReplyArmOverwritesPending(t *testing.T) {
	var p pendingReply
	p.arm(axcp.AnalogSensorReply, 1)
	p.arm(axcp.DigitalSensorReply, 2)
	if p.match(axcp.Command{Op: axcp.AnalogSensorReply, Payload: []byte{1, 0, 0}}) {
		t.Fatal("the overwritten request should no longer match")
	}
	if !p.match(axcp.Command{Op: axcp.DigitalSensorReply, Payload: []byte{2, 0}}) {
		t.Fatal("the second arm should match its own reply")
	}
}

func TestPendingReplyMatchWrongOpcode(t *testing.T) {
	var p pendingReply
	p.arm(axcp.AnalogSensorReply, 1)
	if p.match(axcp.Command{Op: axcp.DigitalSensorReply, Payload: []byte{1}}) {
		t.Fatal("match should fail for a differing opcode")
	}
}
