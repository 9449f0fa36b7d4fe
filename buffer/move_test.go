package buffer

import (
	"errors"
	"testing"
)

func TestBuffer_WordStart(t *testing.T) {
	cases := []struct {
		text string
		off  int
		want int
	}{
		{text: "hello world", off: 11, want: 6},
		{text: "hello world", off: 6, want: 0},
		{text: "hello world", off: 8, want: 6},
		{text: "hello   ", off: 8, want: 0},
		{text: "/usr/local/bin", off: 14, want: 11},
		{text: "/usr/local/", off: 11, want: 5},
		{text: "", off: 0, want: 0},
	}
	for _, tc := range cases {
		got, err := New(tc.text).WordStart(tc.off, DefaultWordSeparators)
		if err != nil {
			t.Fatalf("WordStart(%q, %d): %v", tc.text, tc.off, err)
		}
		if got != tc.want {
			t.Fatalf("WordStart(%q, %d): got %d, want %d", tc.text, tc.off, got, tc.want)
		}
	}
}

func TestBuffer_WordEnd(t *testing.T) {
	cases := []struct {
		text string
		off  int
		want int
	}{
		{text: "hello world", off: 0, want: 5},
		{text: "hello world", off: 5, want: 11},
		{text: "hello world", off: 2, want: 5},
		{text: "  hi", off: 0, want: 4},
		{text: "a/b", off: 1, want: 3},
		{text: "abc", off: 3, want: 3},
	}
	for _, tc := range cases {
		got, err := New(tc.text).WordEnd(tc.off, DefaultWordSeparators)
		if err != nil {
			t.Fatalf("WordEnd(%q, %d): %v", tc.text, tc.off, err)
		}
		if got != tc.want {
			t.Fatalf("WordEnd(%q, %d): got %d, want %d", tc.text, tc.off, got, tc.want)
		}
	}
}

func TestBuffer_WordScanCustomSeparators(t *testing.T) {
	b := New("a-b c")
	seps := Separators{'-'}

	got, err := b.WordStart(5, seps)
	if err != nil {
		t.Fatalf("word start: %v", err)
	}
	if got != 2 {
		t.Fatalf("word start with '-' separator: got %d, want 2", got)
	}
}

func TestBuffer_SegmentStart(t *testing.T) {
	b := New("cd fo")
	seps := Separators{' '}

	got, err := b.SegmentStart(5, seps)
	if err != nil {
		t.Fatalf("segment start: %v", err)
	}
	if got != 3 {
		t.Fatalf("segment start: got %d, want 3", got)
	}

	got, _ = b.SegmentStart(2, seps)
	if got != 0 {
		t.Fatalf("segment start before separator: got %d, want 0", got)
	}
}

func TestBuffer_WordScanRejectsBadOffset(t *testing.T) {
	b := New("abc")
	if _, err := b.WordStart(4, DefaultWordSeparators); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("word start: got %v, want ErrOutOfRange", err)
	}
	if _, err := b.WordEnd(-1, DefaultWordSeparators); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("word end: got %v, want ErrOutOfRange", err)
	}
	if _, err := b.SegmentStart(9, DefaultWordSeparators); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("segment start: got %v, want ErrOutOfRange", err)
	}
}
