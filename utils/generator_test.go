package utils

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
)

func TestFormatStudentSerial(t *testing.T) {
	tests := []struct {
		year   int
		number int
		want   string
	}{
		{2026, 482, "CC-2026-0482"},
		{2026, 0, "CC-2026-0000"},
		{2026, 9999, "CC-2026-9999"},
		{2025, 7, "CC-2025-0007"},
	}
	for _, tt := range tests {
		if got := FormatStudentSerial(tt.year, tt.number); got != tt.want {
			t.Errorf("FormatStudentSerial(%d, %d) = %q, want %q", tt.year, tt.number, got, tt.want)
		}
	}
}

func TestGenerateSerialReturnsFreeSerial(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	probes := 0

	serial, err := generateSerial(2026, rng, func(s string) (bool, error) {
		probes++
		return probes <= 3, nil // first three candidates collide
	})
	if err != nil {
		t.Fatalf("generateSerial: %v", err)
	}
	if !strings.HasPrefix(serial, "CC-2026-") {
		t.Errorf("serial = %q, want CC-2026- prefix", serial)
	}
	if probes != 4 {
		t.Errorf("probes = %d, want 4", probes)
	}
}

func TestGenerateSerialGivesUpWhenSpaceExhausted(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	_, err := generateSerial(2026, rng, func(string) (bool, error) {
		return true, nil
	})
	if err == nil {
		t.Fatal("expected error when every serial is taken")
	}
}

func TestGenerateSerialPropagatesLookupError(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	lookupErr := errors.New("connection reset")

	_, err := generateSerial(2026, rng, func(string) (bool, error) {
		return false, lookupErr
	})
	if !errors.Is(err, lookupErr) {
		t.Errorf("err = %v, want the lookup error", err)
	}
}
