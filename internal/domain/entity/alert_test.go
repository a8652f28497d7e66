package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAlertIsExpired(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	alert := &Alert{ExpiresAt: now.Add(time.Hour)}
	assert.False(t, alert.IsExpired(now))

	// Expiry instant itself counts as expired
	alert.ExpiresAt = now
	assert.True(t, alert.IsExpired(now))

	alert.ExpiresAt = now.Add(-time.Second)
	assert.True(t, alert.IsExpired(now))
}

func TestAlertActivePastPartition(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		status AlertStatus
		expiry time.Time
		active bool
	}{
		{"active and unexpired", AlertStatusActive, now.Add(time.Hour), true},
		{"active but expired", AlertStatusActive, now.Add(-time.Hour), false},
		{"resolved before expiry", AlertStatusResolved, now.Add(time.Hour), false},
		{"cancelled before expiry", AlertStatusCancelled, now.Add(time.Hour), false},
		{"resolved and expired", AlertStatusResolved, now.Add(-time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alert := &Alert{Status: tt.status, ExpiresAt: tt.expiry}

			assert.Equal(t, tt.active, alert.IsCurrentlyActive(now))
			// Every alert is in exactly one partition
			assert.Equal(t, !tt.active, alert.IsPast(now))
		})
	}
}
