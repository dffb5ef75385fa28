package swc

import (
	"bytes"
	"log"
	"testing"

	"github.com/PRIArobotics/HedgehogLightPi/internal/ringbuf"
)

func newTestController() *Controller {
	return &Controller{
		log:        log.New(bytes.NewBuffer(nil), "", 0),
		customData: ringbuf.New(4),
	}
}

func TestAppendAndDrainCustomData(t *testing.T) {
	c := newTestController()
	c.appendCustomData([]byte{1, 2, 3})
	got := c.drainCustomData(3)
	if !bytes.Equal(got, []byte{1, 2, 3}) {
		t.Fatalf("drainCustomData = %v, want [1 2 3]", got)
	}
	if !bytes.Equal(c.drainCustomData(2), []byte{0, 0}) {
		t.Fatal("draining an empty buffer should zero-pad the whole result")
	}
}

func TestDrainCustomDataZeroPadsShortfall(t *testing.T) {
	c := newTestController()
	c.appendCustomData([]byte{1, 2})
	got := c.drainCustomData(5)
	if !bytes.Equal(got, []byte{1, 2, 0, 0, 0}) {
		t.Fatalf("drainCustomData = %v, want [1 2 0 0 0]", got)
	}
}

func TestAppendCustomDataDropsOnOverflow(t *testing.T) {
	c := newTestController()
	c.appendCustomData([]byte{1, 2, 3, 4, 5, 6})
	got := c.drainCustomData(4)
	if !bytes.Equal(got, []byte{1, 2, 3, 4}) {
		t.Fatalf("drainCustomData returned %v, want [1 2 3 4] (capacity)", got)
	}
}

func TestEncodeDecodeUint32(t *testing.T) {
	field := encodeUint32(0x01020304)
	if got := decodeUint32(field[:]); got != 0x01020304 {
		t.Fatalf("decodeUint32 = %#x, want %#x", got, uint32(0x01020304))
	}
}
