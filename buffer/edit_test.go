package buffer

import (
	"errors"
	"testing"
)

func TestBuffer_InsertPositions(t *testing.T) {
	b := New("ac")

	if err := b.InsertRune(1, 'b'); err != nil {
		t.Fatalf("insert middle: %v", err)
	}
	if err := b.Insert(0, ">"); err != nil {
		t.Fatalf("insert start: %v", err)
	}
	if err := b.Insert(b.Len(), "!!"); err != nil {
		t.Fatalf("insert end: %v", err)
	}
	if got, want := b.Text(), ">abc!!"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}

	if err := b.Insert(b.Len()+1, "x"); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("insert past end: got %v, want ErrOutOfRange", err)
	}
	if got, want := b.Text(), ">abc!!"; got != want {
		t.Fatalf("failed insert mutated text: got %q, want %q", got, want)
	}
}

func TestBuffer_InsertEmptyKeepsVersion(t *testing.T) {
	b := New("ab")
	v := b.Version()
	if err := b.Insert(1, ""); err != nil {
		t.Fatalf("insert empty: %v", err)
	}
	if got := b.Version(); got != v {
		t.Fatalf("version: got %d, want %d", got, v)
	}
}

func TestBuffer_DeleteReturnsRemoved(t *testing.T) {
	b := New("hello world")

	removed, err := b.Delete(6, 11)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if removed != "world" {
		t.Fatalf("removed: got %q, want %q", removed, "world")
	}
	if got, want := b.Text(), "hello "; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}

	v := b.Version()
	if removed, err := b.Delete(2, 2); err != nil || removed != "" {
		t.Fatalf("empty delete: got %q, %v", removed, err)
	}
	if b.Version() != v {
		t.Fatalf("empty delete bumped version")
	}

	if _, err := b.Delete(3, 7); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("delete past end: got %v, want ErrOutOfRange", err)
	}
}

func TestBuffer_Swap(t *testing.T) {
	b := New("ab")
	if err := b.Swap(0, 1); err != nil {
		t.Fatalf("swap: %v", err)
	}
	if got, want := b.Text(), "ba"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}

	v := b.Version()
	same := New("aa")
	if err := same.Swap(0, 1); err != nil {
		t.Fatalf("swap equal runes: %v", err)
	}
	if same.Version() != 0 {
		t.Fatalf("swapping equal runes must not bump version")
	}
	if b.Version() != v {
		t.Fatalf("unrelated buffer version changed")
	}

	if err := b.Swap(1, 2); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("swap past end: got %v, want ErrOutOfRange", err)
	}
}

func TestBuffer_SetAndReset(t *testing.T) {
	b := New("abc")

	b.Set("abc")
	if b.Version() != 0 {
		t.Fatalf("setting identical text must not bump version")
	}

	b.Set("xy")
	if got, want := b.Text(), "xy"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}

	b.Reset()
	if b.Len() != 0 {
		t.Fatalf("len after reset: got %d, want 0", b.Len())
	}
	v := b.Version()
	b.Reset()
	if b.Version() != v {
		t.Fatalf("resetting empty buffer bumped version")
	}
}
