package core

import (
	"slices"
	"testing"
)

func TestFillBinaryDeterministic(t *testing.T) {
	a := make([]uint8, 512)
	b := make([]uint8, 512)
	FillBinary(NewRNG(1337).Source(), a, 0.25)
	FillBinary(NewRNG(1337).Source(), b, 0.25)
	if !slices.Equal(a, b) {
		t.Fatal("equal seeds produced different fills")
	}

	FillBinary(NewRNG(1338).Source(), b, 0.25)
	if slices.Equal(a, b) {
		t.Fatal("different seeds produced identical fills")
	}
}

func TestFillBinaryExtremes(t *testing.T) {
	buf := make([]uint8, 64)

	FillBinary(NewRNG(1).Source(), buf, 0)
	if slices.Contains(buf, 1) {
		t.Fatal("p=0 produced a live cell")
	}

	FillBinary(NewRNG(1).Source(), buf, 1)
	if slices.Contains(buf, 0) {
		t.Fatal("p=1 produced a dead cell")
	}
}

func TestBoolExtremes(t *testing.T) {
	r := NewRNG(7)
	for i := 0; i < 100; i++ {
		if r.Bool(0) {
			t.Fatal("Bool(0) returned true")
		}
		if !r.Bool(1) {
			t.Fatal("Bool(1) returned false")
		}
	}
}
