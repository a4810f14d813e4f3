package handlers

import (
	"testing"
	"time"
)

func TestResetTokenExpired(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Minute)
	future := now.Add(15 * time.Minute)

	tests := []struct {
		name      string
		expiresAt *time.Time
		want      bool
	}{
		{"nil expiry", nil, true},
		{"past expiry", &past, true},
		{"future expiry", &future, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resetTokenExpired(tt.expiresAt, now); got != tt.want {
				t.Errorf("resetTokenExpired() = %v, want %v", got, tt.want)
			}
		})
	}
}
