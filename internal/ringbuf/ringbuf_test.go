package ringbuf

import "testing"

func TestEmptyRead(t *testing.T) {
	r := New(4)
	if _, err := r.Read(); err != ErrEmpty {
		t.Fatalf("err = %v, want ErrEmpty", err)
	}
}

func TestCapacityIsSizeMinusOne(t *testing.T) {
	r := New(4)
	for i := 0; i < 4; i++ {
		if err := r.Append(byte(i)); err != nil {
			t.Fatalf("Append(%d): %v", i, err)
		}
	}
	if err := r.Append(99); err != ErrFull {
		t.Fatalf("err = %v, want ErrFull", err)
	}
}

func TestFIFOOrder(t *testing.T) {
	r := New(4)
	for i := 0; i < 4; i++ {
		if err := r.Append(byte(i)); err != nil {
			t.Fatalf("Append(%d): %v", i, err)
		}
	}
	for i := 0; i < 4; i++ {
		v, err := r.Read()
		if err != nil {
			t.Fatalf("Read: %v", err)
		}
		if v != byte(i) {
			t.Fatalf("Read() = %d, want %d", v, i)
		}
	}
}

func TestWrapAround(t *testing.T) {
	r := New(3)
	r.Append(1)
	r.Append(2)
	r.Append(3)
	if v, _ := r.Read(); v != 1 {
		t.Fatalf("got %d, want 1", v)
	}
	if err := r.Append(4); err != nil {
		t.Fatalf("Append after wrap: %v", err)
	}
	for _, want := range []byte{2, 3, 4} {
		v, err := r.Read()
		if err != nil {
			t.Fatalf("Read: %v", err)
		}
		if v != want {
			t.Fatalf("got %d, want %d", v, want)
		}
	}
}

func TestLen(t *testing.T) {
	r := New(5)
	if r.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", r.Len())
	}
	r.Append(1)
	r.Append(2)
	if r.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", r.Len())
	}
	r.Read()
	if r.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", r.Len())
	}
}
