package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOuncesFromLbsOz(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 42, OuncesFromLbsOz(2, 10))
	assert.Equal(t, 80, OuncesFromLbsOz(5, 0))

	lbs, oz := LbsOz(44)
	assert.Equal(t, 2, lbs)
	assert.Equal(t, 12, oz)
	assert.Equal(t, "2.12", FormatWeight(44))
	assert.Equal(t, "5.04", FormatWeight(84))
}

func TestClockSeconds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		minutes int
		seconds int
		want    int
	}{
		{name: "plain", minutes: 2, seconds: 5, want: 125},
		{name: "seconds clamped", minutes: 1, seconds: 75, want: 119},
		{name: "zero", want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClockSeconds(tt.minutes, tt.seconds))
		})
	}
}
