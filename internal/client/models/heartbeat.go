package models

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/legacykeeper/internal/common"
)

// Frequency is the heartbeat check-in cadence.
type Frequency string

const (
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
)

// Months is the length of one period in calendar months.
func (f Frequency) Months() int {
	if f == FrequencyQuarterly {
		return 3
	}
	return 1
}

// ParseFrequency is the strict parser used for user input.
func ParseFrequency(s string) (Frequency, error) {
	switch Frequency(strings.ToLower(strings.TrimSpace(s))) {
	case FrequencyMonthly:
		return FrequencyMonthly, nil
	case FrequencyQuarterly:
		return FrequencyQuarterly, nil
	}
	return "", fmt.Errorf("%w: %q", common.ErrInvalidFrequency, s)
}

// FrequencyFromStored decodes a persisted value. Anything other than
// "quarterly", including an absent value, means monthly.
func FrequencyFromStored(s string) Frequency {
	if Frequency(s) == FrequencyQuarterly {
		return FrequencyQuarterly
	}
	return FrequencyMonthly
}

// HeartbeatSettings is the user's check-in configuration.
type HeartbeatSettings struct {
	Enabled   bool
	Frequency Frequency
	// LastConfirmAt is epoch milliseconds; 0 means never confirmed.
	LastConfirmAt int64
}

// DefaultHeartbeatSettings is what a fresh vault reports.
func DefaultHeartbeatSettings() HeartbeatSettings {
	return HeartbeatSettings{Frequency: FrequencyMonthly}
}
