package axcp

import (
	"bytes"
	"errors"
	"testing"
)

func roundTrip(t *testing.T, op Opcode, payload []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := Encode(&buf, Command{Op: op, Payload: payload}); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	encoded := append([]byte(nil), buf.Bytes()...)

	got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.Op != op {
		t.Fatalf("Op = %v, want %v", got.Op, op)
	}
	if !bytes.Equal(got.Payload, payload) && !(len(got.Payload) == 0 && len(payload) == 0) {
		t.Fatalf("Payload = %v, want %v", got.Payload, payload)
	}
	return encoded
}

func TestFixedLengthRoundTrip(t *testing.T) {
	roundTrip(t, NOP, nil)
	roundTrip(t, AnalogSensorRequest, []byte{3})
	roundTrip(t, MotorPowerAbsolutePositionAction, []byte{1, 2, 3, 4, 5, 6})
}

func TestFixedLengthMismatch(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(&buf, Command{Op: AnalogSensorRequest, Payload: []byte{1, 2}})
	if !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("err = %v, want ErrLengthMismatch", err)
	}
}

func TestVariableLengthBoundaries(t *testing.T) {
	cases := []struct {
		name     string
		length   int
		wantSize int // total encoded size including opcode byte
	}{
		{"empty", 0, 1 + 1 + 0},
		{"one short of a chunk", 254, 1 + 1 + 254},
		{"exactly one chunk", 255, 1 + 1 + 255 + 1 + 0},
		{"one past a chunk", 256, 1 + 1 + 255 + 1 + 1},
		{"two chunks minus one", 509, 1 + 1 + 255 + 1 + 254},
		{"exactly two chunks", 510, 1 + 1 + 255 + 1 + 255 + 1 + 0},
		{"two chunks plus one", 511, 1 + 1 + 255 + 1 + 255 + 1 + 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			payload := make([]byte, c.length)
			for i := range payload {
				payload[i] = byte(i)
			}
			encoded := roundTrip(t, CustomAction, payload)
			if len(encoded) != c.wantSize {
				t.Fatalf("encoded size = %d, want %d", len(encoded), c.wantSize)
			}
		})
	}
}

func TestDecodeUnknownOpcode(t *testing.T) {
	buf := bytes.NewBuffer([]byte{0xfe})
	cmd, err := Decode(buf)
	if !errors.Is(err, ErrUnknownOpcode) {
		t.Fatalf("err = %v, want ErrUnknownOpcode", err)
	}
	if cmd.Op != Opcode(0xfe) {
		t.Fatalf("Op = %v, want 0xfe", cmd.Op)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected opcode byte alone to be consumed, %d bytes remain", buf.Len())
	}
}

func TestDecodeShortFixedPayload(t *testing.T) {
	buf := bytes.NewBuffer([]byte{byte(AnalogSensorRequest)})
	if _, err := Decode(buf); err == nil {
		t.Fatal("expected an error decoding a truncated fixed payload")
	}
}

func TestEncodeUnknownOpcode(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(&buf, Command{Op: Opcode(0xfe)})
	if !errors.Is(err, ErrUnknownOpcode) {
		t.Fatalf("err = %v, want ErrUnknownOpcode", err)
	}
}
