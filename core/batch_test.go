package core

import "testing"

func newTestDispatcher(tr *FakeTransport) *Dispatcher {
	session := NewSession(tr)
	session.Src = 1024 // host endpoint
	session.Dst = 31   // our port
	return NewDispatcher(session)
}

func TestDispatcherSendsFullBatchOnly(t *testing.T) {
	tr := &FakeTransport{}
	d := newTestDispatcher(tr)

	for i := 1; i < BatchSize; i++ {
		d.Push(Sample(i))
		if len(tr.Sent) != 0 {
			t.Fatalf("batch sent after %d samples", i)
		}
	}

	d.Push(Sample(BatchSize))
	if len(tr.Sent) != 1 {
		t.Fatalf("Expected 1 batch after %d samples, got %d", BatchSize, len(tr.Sent))
	}
	if len(tr.Sent[0]) != BatchPayloadSize {
		t.Errorf("Expected %d byte payload, got %d", BatchPayloadSize, len(tr.Sent[0]))
	}
	if d.Pending() != 0 {
		t.Errorf("Expected empty batch after send, got %d pending", d.Pending())
	}

	// Replies swap the recorded endpoints
	if tr.SentSrc[0] != 31 || tr.SentDst[0] != 1024 {
		t.Errorf("Expected src=31 dst=1024, got src=%d dst=%d", tr.SentSrc[0], tr.SentDst[0])
	}

	b, err := DecodeBatch(tr.Sent[0])
	if err != nil {
		t.Fatalf("DecodeBatch failed: %v", err)
	}
	for i, s := range b {
		if s != Sample(i+1) {
			t.Errorf("slot %d: got %d, want %d", i, s, i+1)
		}
	}

	// The 11th sample starts a new batch
	d.Push(-1)
	if d.Pending() != 1 || len(tr.Sent) != 1 {
		t.Errorf("Expected new batch at index 1 with no send, got pending=%d sent=%d", d.Pending(), len(tr.Sent))
	}
}

func TestDispatcherBatchCount(t *testing.T) {
	tr := &FakeTransport{}
	d := newTestDispatcher(tr)

	for i := 0; i < 95; i++ {
		d.Push(Sample(i))
	}

	if len(tr.Sent) != 9 {
		t.Errorf("Expected 9 batches for 95 samples, got %d", len(tr.Sent))
	}
	for i, p := range tr.Sent {
		b, err := DecodeBatch(p)
		if err != nil {
			t.Fatalf("batch %d: %v", i, err)
		}
		if b[0] != Sample(i*BatchSize) || b[BatchSize-1] != Sample(i*BatchSize+BatchSize-1) {
			t.Errorf("batch %d out of order: %v", i, b)
		}
	}
	if d.Pending() != 5 {
		t.Errorf("Expected 5 pending samples, got %d", d.Pending())
	}
}

func TestDispatcherDropsFailedBatch(t *testing.T) {
	tr := &FakeTransport{SendErr: errFake}
	d := newTestDispatcher(tr)

	for i := 0; i < BatchSize; i++ {
		d.Push(Sample(i))
	}
	stats := d.Stats()
	if stats.Dropped != 1 || stats.Sent != 0 {
		t.Fatalf("Expected 1 dropped batch, got %+v", stats)
	}
	if d.Pending() != 0 {
		t.Errorf("Expected dropped batch to reset the index, got %d", d.Pending())
	}

	// Sampling carries on once the queue drains
	tr.SendErr = nil
	for i := 0; i < BatchSize; i++ {
		d.Push(Sample(100 + i))
	}
	if len(tr.Sent) != 1 {
		t.Fatalf("Expected 1 sent batch, got %d", len(tr.Sent))
	}
	b, _ := DecodeBatch(tr.Sent[0])
	if b[0] != 100 {
		t.Errorf("Expected the dropped samples to be gone, first sample %d", b[0])
	}
	if d.Stats().Samples != 2*BatchSize {
		t.Errorf("Expected %d samples counted, got %d", 2*BatchSize, d.Stats().Samples)
	}
}

func TestEncodeBatchWireFormat(t *testing.T) {
	var b Batch
	b[0] = -1
	b[1] = -8388607
	b[9] = 8388607

	var payload [BatchPayloadSize]byte
	EncodeBatch(&payload, &b)

	expected := map[int][4]byte{
		0: {0xFF, 0xFF, 0xFF, 0xFF},
		1: {0x01, 0x00, 0x80, 0xFF},
		9: {0xFF, 0xFF, 0x7F, 0x00},
	}
	for slot, want := range expected {
		off := slot * SampleWireSize
		got := [4]byte{payload[off], payload[off+1], payload[off+2], payload[off+3]}
		if got != want {
			t.Errorf("slot %d: got % X, want % X", slot, got, want)
		}
	}
}

func TestDecodeBatchRejectsWrongSize(t *testing.T) {
	for _, n := range []int{0, BatchPayloadSize - 1, BatchPayloadSize + 4} {
		if _, err := DecodeBatch(make([]byte, n)); err != ErrBatchSize {
			t.Errorf("len %d: expected ErrBatchSize, got %v", n, err)
		}
	}
}
