package rpmsg

import "testing"

func TestRingFIFOOrder(t *testing.T) {
	var r Ring
	for i := 0; i < 3; i++ {
		if err := r.Put([]byte{byte(i), byte(i)}); err != nil {
			t.Fatalf("Put %d failed: %v", i, err)
		}
	}
	if r.Available() != 3 || r.Free() != NumBuffers-3 {
		t.Errorf("Expected 3 used, got available=%d free=%d", r.Available(), r.Free())
	}

	buf := make([]byte, BufferSize)
	for i := 0; i < 3; i++ {
		n, err := r.Get(buf)
		if err != nil {
			t.Fatalf("Get %d failed: %v", i, err)
		}
		if n != 2 || buf[0] != byte(i) {
			t.Errorf("Get %d: got %v", i, buf[:n])
		}
	}
	if !r.IsEmpty() {
		t.Error("Expected empty ring")
	}
	if _, err := r.Get(buf); err != ErrNoBuffer {
		t.Errorf("Expected ErrNoBuffer on empty ring, got %v", err)
	}
}

func TestRingFullAndWrap(t *testing.T) {
	var r Ring
	buf := make([]byte, BufferSize)

	// Several laps around the ring
	for lap := 0; lap < 3; lap++ {
		for i := 0; i < NumBuffers; i++ {
			if err := r.Put([]byte{byte(lap), byte(i)}); err != nil {
				t.Fatalf("lap %d put %d: %v", lap, i, err)
			}
		}
		if err := r.Put([]byte{0}); err != ErrNoBuffer {
			t.Fatalf("Expected ErrNoBuffer on full ring, got %v", err)
		}
		for i := 0; i < NumBuffers; i++ {
			n, err := r.Get(buf)
			if err != nil || n != 2 || buf[0] != byte(lap) || buf[1] != byte(i) {
				t.Fatalf("lap %d get %d: n=%d err=%v data=%v", lap, i, n, err, buf[:n])
			}
		}
	}
}

func TestRingRejectsOversize(t *testing.T) {
	var r Ring
	if err := r.Put(make([]byte, BufferSize+1)); err != ErrBufSize {
		t.Errorf("Expected ErrBufSize, got %v", err)
	}
	r.Put(make([]byte, 100))
	if _, err := r.Get(make([]byte, 10)); err != ErrBufSize {
		t.Errorf("Expected ErrBufSize for short destination, got %v", err)
	}
	if r.Available() != 1 {
		t.Errorf("Expected buffer kept after short Get, got %d", r.Available())
	}
}

func TestIntcEvents(t *testing.T) {
	var c Intc
	c.Raise(18)
	c.Raise(19)
	if !c.Pending(18) || !c.Pending(19) || c.Pending(16) {
		t.Fatal("unexpected pending state after Raise")
	}
	c.ClearEvent(19)
	if c.Pending(19) || !c.Pending(18) {
		t.Error("ClearEvent touched the wrong event")
	}
}
