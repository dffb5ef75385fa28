package swc

import "testing"

func TestEncodeDecodeName(t *testing.T) {
	field := encodeName("blink")
	if got := decodeName(field[:]); got != "blink" {
		t.Fatalf("decodeName = %q, want %q", got, "blink")
	}
	for i := len("blink"); i < len(field); i++ {
		if field[i] != ' ' {
			t.Fatalf("field[%d] = %q, want a space", i, field[i])
		}
	}
}

func TestEncodeDecodeVersion(t *testing.T) {
	v := uint16(0x1234)
	field := encodeVersion(v)
	if got := decodeVersion(field[0], field[1]); got != v {
		t.Fatalf("decodeVersion = %#x, want %#x", got, v)
	}
}

func TestReplyOpcodeForFollowsRequestReplyConvention(t *testing.T) {
	if got := replyOpcodeFor(0); got != 1 {
		t.Fatalf("replyOpcodeFor(0) = %v, want 1", got)
	}
}
