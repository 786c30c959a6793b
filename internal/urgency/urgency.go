// Package urgency buckets delivery deadlines into operator-facing tiers.
package urgency

import "time"

// Tier is the severity bucket of a delivery deadline.
type Tier string

const (
	TierUrgent Tier = "Urgent"
	TierSoon   Tier = "Soon"
	TierNormal Tier = "Normal"
)

// Classification pairs a tier with its display label and the advisory
// text shown to operators.
type Classification struct {
	Tier     Tier   `json:"tier"`
	Label    string `json:"label"`
	Advisory string `json:"advisory"`
}

var classifications = map[Tier]Classification{
	TierUrgent: {
		Tier:     TierUrgent,
		Label:    "Urgent",
		Advisory: "Urgent delivery. Confirm supplier availability before committing.",
	},
	TierSoon: {
		Tier:     TierSoon,
		Label:    "Soon",
		Advisory: "Moderate lead time. Plan ahead with your suppliers.",
	},
	TierNormal: {
		Tier:     TierNormal,
		Label:    "Normal",
		Advisory: "Flexible schedule. Standard shipping keeps costs down.",
	},
}

// Thresholds in whole calendar days, first match wins.
const (
	urgentWithinDays = 3
	soonWithinDays   = 10
)

// Classify buckets a delivery deadline relative to now. Both operands
// are truncated to midnight so the time of day never skews the result.
// An already-overdue deadline classifies as Urgent; there is no
// separate overdue tier.
func Classify(deadline, now time.Time) Classification {
	days := DaysBetween(now, deadline)
	switch {
	case days <= urgentWithinDays:
		return classifications[TierUrgent]
	case days <= soonWithinDays:
		return classifications[TierSoon]
	default:
		return classifications[TierNormal]
	}
}

// DaysBetween returns the whole calendar days from a to b, negative
// when b precedes a. Dates are compared in UTC at midnight so DST
// shifts cannot produce partial days.
func DaysBetween(a, b time.Time) int {
	return int(truncateToDay(b).Sub(truncateToDay(a)).Hours() / 24)
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
