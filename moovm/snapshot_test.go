package moovm

import (
	"bytes"
	"errors"
	"testing"
)

func TestSnapshotRestore(t *testing.T) {
	r := New(mustCompile(t, "(double):{++}~double;>,~double;."))
	r.FeedInput([]byte{3})

	// stop mid-run, resting on the second call
	for range 7 {
		step(t, r)
	}

	var buf bytes.Buffer
	if err := r.Snapshot(&buf); err != nil {
		t.Fatal(err)
	}

	// keep running the original to completion
	runToHalt(t, r)
	wantOut := r.Output()
	wantCell := r.DataTape[1]

	restored := New(r.Program)
	if err := restored.Restore(&buf); err != nil {
		t.Fatal(err)
	}
	if restored.Halted() {
		t.Fatal("halted")
	}

	runToHalt(t, restored)
	if restored.Output() != wantOut {
		t.Fatalf("got %q, want %q", restored.Output(), wantOut)
	}
	if restored.DataTape[1] != wantCell {
		t.Fatalf("got %d, want %d", restored.DataTape[1], wantCell)
	}
}

func TestSnapshotPreservesFault(t *testing.T) {
	r := New(mustCompile(t, "]"))
	if err := r.Step(); !errors.Is(err, ErrMalformedProgram) {
		t.Fatalf("got %v", err)
	}

	var buf bytes.Buffer
	if err := r.Snapshot(&buf); err != nil {
		t.Fatal(err)
	}

	restored := New(r.Program)
	if err := restored.Restore(&buf); err != nil {
		t.Fatal(err)
	}
	if err := restored.Step(); !errors.Is(err, ErrMalformedProgram) {
		t.Fatalf("got %v", err)
	}
}

func TestSnapshotTapes(t *testing.T) {
	r := New(mustCompile(t, "+>++^<+++"))
	runToHalt(t, r)

	var buf bytes.Buffer
	if err := r.Snapshot(&buf); err != nil {
		t.Fatal(err)
	}

	restored := New(r.Program)
	if err := restored.Restore(&buf); err != nil {
		t.Fatal(err)
	}
	if restored.DataTape[0] != 1 || restored.DataTape[1] != 2 {
		t.Fatalf("got %v", restored.DataTape)
	}
	if restored.MetaTape[-1] != 3 {
		t.Fatalf("got %v", restored.MetaTape)
	}
	if !restored.OnMetaTape || restored.MetaPointer != -1 {
		t.Fatal("active tape state lost")
	}
}
