package risk

import (
	"time"
	"waitingwell-service/internal/pkg/constvars"
)

// Eligibility describes whether a user may file a new weekly check-in.
// It is derived purely from the time of the most recent check-in; no
// eligibility flag is ever stored.
type Eligibility struct {
	Eligible        bool
	NextAvailableAt time.Time
	DaysRemaining   int
}

// NextEligibility computes the gate state. A user with no prior check-in
// is always eligible. Otherwise the window reopens exactly seven days
// after the most recent completedAt, chosen by timestamp rather than week
// number since completedAt is the authoritative temporal ordering.
func NextEligibility(lastCompletedAt *time.Time, now time.Time) Eligibility {
	if lastCompletedAt == nil {
		return Eligibility{Eligible: true}
	}

	nextAvailableAt := lastCompletedAt.Add(constvars.WeeklyAssessmentIntervalDays * 24 * time.Hour)
	if !now.Before(nextAvailableAt) {
		return Eligibility{Eligible: true, NextAvailableAt: nextAvailableAt}
	}

	remaining := nextAvailableAt.Sub(now)
	days := int(remaining / (24 * time.Hour))
	if remaining%(24*time.Hour) != 0 {
		days++
	}

	return Eligibility{
		Eligible:        false,
		NextAvailableAt: nextAvailableAt,
		DaysRemaining:   days,
	}
}

// MostRecentCompletion picks the latest completedAt from a history slice.
// Returns nil for an empty history.
func MostRecentCompletion(completedAts []time.Time) *time.Time {
	var latest *time.Time
	for i := range completedAts {
		if latest == nil || completedAts[i].After(*latest) {
			latest = &completedAts[i]
		}
	}
	return latest
}
