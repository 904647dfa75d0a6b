package risk

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextEligibility_NoHistory(t *testing.T) {
	eligibility := NextEligibility(nil, time.Now())

	assert.True(t, eligibility.Eligible)
	assert.Zero(t, eligibility.DaysRemaining)
}

func TestNextEligibility_LockedImmediatelyAfterSubmission(t *testing.T) {
	submittedAt := time.Date(2025, time.March, 3, 10, 0, 0, 0, time.UTC)

	eligibility := NextEligibility(&submittedAt, submittedAt)

	assert.False(t, eligibility.Eligible)
	assert.Equal(t, 7, eligibility.DaysRemaining)
	assert.Equal(t, submittedAt.Add(7*24*time.Hour), eligibility.NextAvailableAt)
}

func TestNextEligibility_EligibleAtExactBoundary(t *testing.T) {
	submittedAt := time.Date(2025, time.March, 3, 10, 0, 0, 0, time.UTC)
	now := submittedAt.Add(7 * 24 * time.Hour)

	eligibility := NextEligibility(&submittedAt, now)

	assert.True(t, eligibility.Eligible)
}

func TestNextEligibility_OneDayRemaining(t *testing.T) {
	submittedAt := time.Date(2025, time.March, 3, 10, 0, 0, 0, time.UTC)
	now := submittedAt.Add(6*24*time.Hour + 23*time.Hour)

	eligibility := NextEligibility(&submittedAt, now)

	assert.False(t, eligibility.Eligible)
	assert.Equal(t, 1, eligibility.DaysRemaining)
}

func TestNextEligibility_PartialDaysRoundUp(t *testing.T) {
	submittedAt := time.Date(2025, time.March, 3, 10, 0, 0, 0, time.UTC)
	now := submittedAt.Add(3*24*time.Hour + time.Minute)

	eligibility := NextEligibility(&submittedAt, now)

	assert.False(t, eligibility.Eligible)
	assert.Equal(t, 4, eligibility.DaysRemaining)
}

func TestNextEligibility_LongAfterWindow(t *testing.T) {
	submittedAt := time.Date(2025, time.March, 3, 10, 0, 0, 0, time.UTC)
	now := submittedAt.Add(40 * 24 * time.Hour)

	eligibility := NextEligibility(&submittedAt, now)

	assert.True(t, eligibility.Eligible)
}

func TestMostRecentCompletion(t *testing.T) {
	base := time.Date(2025, time.January, 6, 9, 0, 0, 0, time.UTC)
	history := []time.Time{
		base,
		base.Add(21 * 24 * time.Hour),
		base.Add(7 * 24 * time.Hour),
	}

	latest := MostRecentCompletion(history)

	assert.NotNil(t, latest)
	assert.Equal(t, base.Add(21*24*time.Hour), *latest)
}

func TestMostRecentCompletion_Empty(t *testing.T) {
	assert.Nil(t, MostRecentCompletion(nil))
}
