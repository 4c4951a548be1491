package dna

import (
	"errors"
	"math/rand"
	"testing"
)

func TestReverseComplementSimple(t *testing.T) {
	got, err := ReverseComplement("AGTC")
	if err != nil {
		t.Fatal(err)
	}
	if got != "GACT" {
		t.Errorf("ReverseComplement(AGTC) = %s, want GACT", got)
	}
}

func TestReverseComplementEmpty(t *testing.T) {
	got, err := ReverseComplement("")
	if err != nil || got != "" {
		t.Errorf("ReverseComplement(\"\") = %q, %v", got, err)
	}
}

func TestReverseComplementInvolution(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const alphabet = "ACGT"
	for n := 0; n < 200; n++ {
		b := make([]byte, rng.Intn(64))
		for i := range b {
			b[i] = alphabet[rng.Intn(4)]
		}
		s := string(b)
		once, err := ReverseComplement(s)
		if err != nil {
			t.Fatal(err)
		}
		twice, err := ReverseComplement(once)
		if err != nil {
			t.Fatal(err)
		}
		if twice != s {
			t.Fatalf("rc(rc(%s)) = %s", s, twice)
		}
	}
}

func TestReverseComplementInvalidBase(t *testing.T) {
	for _, in := range []string{"ACNGT", "acgt", "ACGU"} {
		_, err := ReverseComplement(in)
		var ib *InvalidBaseError
		if !errors.As(err, &ib) {
			t.Fatalf("ReverseComplement(%s): want *InvalidBaseError, got %v", in, err)
		}
		if in[ib.Offset] != ib.Base {
			t.Errorf("%s: offset %d does not point at %q", in, ib.Offset, ib.Base)
		}
	}
}
