package urgency_test

import (
	"testing"
	"time"

	"buildmat-orders-api-server/internal/urgency"

	"github.com/stretchr/testify/assert"
)

var now = time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

func TestClassify_Boundaries(t *testing.T) {
	tests := []struct {
		name     string
		daysOut  int
		wantTier urgency.Tier
	}{
		{"overdue by a week", -7, urgency.TierUrgent},
		{"due today", 0, urgency.TierUrgent},
		{"exactly three days out", 3, urgency.TierUrgent},
		{"exactly four days out", 4, urgency.TierSoon},
		{"exactly ten days out", 10, urgency.TierSoon},
		{"exactly eleven days out", 11, urgency.TierNormal},
		{"a month out", 30, urgency.TierNormal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deadline := now.AddDate(0, 0, tt.daysOut)
			got := urgency.Classify(deadline, now)
			assert.Equal(t, tt.wantTier, got.Tier)
		})
	}
}

func TestClassify_TimeOfDayInsensitive(t *testing.T) {
	deadline := now.AddDate(0, 0, 4)

	lateNow := now.Add(23*time.Hour + 59*time.Minute)
	lateDeadline := deadline.Add(18 * time.Hour)

	assert.Equal(t, urgency.Classify(deadline, now), urgency.Classify(lateDeadline, lateNow))
}

func TestClassify_Deterministic(t *testing.T) {
	deadline := now.AddDate(0, 0, 2)
	first := urgency.Classify(deadline, now)
	second := urgency.Classify(deadline, now)
	assert.Equal(t, first, second)
}

func TestClassify_AdvisoryMatchesTier(t *testing.T) {
	urgent := urgency.Classify(now.AddDate(0, 0, 2), now)
	assert.Equal(t, urgency.TierUrgent, urgent.Tier)
	assert.Equal(t, "Urgent", urgent.Label)
	assert.NotEmpty(t, urgent.Advisory)

	soon := urgency.Classify(now.AddDate(0, 0, 7), now)
	assert.Equal(t, "Soon", soon.Label)
	assert.NotEmpty(t, soon.Advisory)

	normal := urgency.Classify(now.AddDate(0, 0, 20), now)
	assert.Equal(t, "Normal", normal.Label)
	assert.NotEmpty(t, normal.Advisory)

	assert.NotEqual(t, urgent.Advisory, soon.Advisory)
	assert.NotEqual(t, soon.Advisory, normal.Advisory)
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 0, urgency.DaysBetween(now, now))
	assert.Equal(t, 5, urgency.DaysBetween(now, now.AddDate(0, 0, 5)))
	assert.Equal(t, -5, urgency.DaysBetween(now.AddDate(0, 0, 5), now))

	// Partial days never count: 11:59pm to 00:01am the next day is
	// still one calendar day.
	a := time.Date(2024, time.March, 15, 23, 59, 0, 0, time.UTC)
	b := time.Date(2024, time.March, 16, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, 1, urgency.DaysBetween(a, b))
}
