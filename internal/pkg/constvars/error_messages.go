package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":      "is required",
	"min":           "must be at least %s characters long",
	"max":           "maximum at %s characters long",
	"numeric":       "must be a number",
	"oneof":         "must be one of [%s]",
	"uuid":          "must be a valid UUID",
	"datetime":      "must be a valid date in %s format",
	"likert":        "must be a whole number between 0 and 3",
	"mood":          "must be one of [very-low, low, okay, good, great]",
	"yes_no":        "must be either 'yes' or 'no'",
	"sleep_quality": "must be one of [excellent, good, fair, poor]",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":      true,
	"max":      true,
	"oneof":    true,
	"datetime": true,
}

// Client-facing messages
const (
	ErrClientCannotProcessRequest          = "We cannot process your request, please try again"
	ErrClientSomethingWrongWithApplication = "Something is wrong with the application, please contact the administrator"
	ErrClientServerLongRespond             = "Server took too long to respond, please try again"

	ErrClientOnboardingAlreadyCompleted = "You have already completed your initial check-in"
	ErrClientOnboardingNotFound         = "We could not find your initial check-in"
	ErrClientWeeklyAssessmentNotDue     = "Your next weekly check-in is not available yet"
	ErrClientAssessmentNotFound         = "We could not find that assessment"
	ErrClientJournalNotFound            = "We could not find that journal entry"
	ErrClientResourceNotFound           = "We could not find that resource"
	ErrClientSubmissionInProgress       = "A submission is already in progress, please wait a moment"
)

// Dev messages
const (
	ErrDevValidationFailed       = "Request validation failed"
	ErrDevCannotParseJSON        = "Failed to parse JSON request body"
	ErrDevInvalidInput           = "Invalid input"
	ErrDevServerDeadlineExceeded = "Deadline exceeded while processing request"
	ErrDevURLParamMissing        = "Required URL parameter '%s' is missing"

	ErrDevOnboardingAlreadyCompleted = "Onboarding response already exists for this user"
	ErrDevOnboardingNotFound         = "Onboarding response not found"
	ErrDevWeeklyAssessmentNotDue     = "Weekly assessment submitted while the 7-day gate is still locked"
	ErrDevAssessmentNotFound         = "Assessment record not found"
	ErrDevJournalNotFound            = "Journal entry not found"
	ErrDevResourceNotFound           = "Resource not found"
	ErrDevSubmissionLockNotAcquired  = "Could not acquire the per-user submission lock"

	ErrDevPostgresInsertData = "Failed to insert data into postgres"
	ErrDevPostgresSelectData = "Failed to select data from postgres"
	ErrDevPostgresDeleteData = "Failed to delete data from postgres"
	ErrDevPostgresCountData  = "Failed to count data in postgres"
	ErrDevPostgresTxBegin    = "Failed to begin postgres transaction"
	ErrDevPostgresTxCommit   = "Failed to commit postgres transaction"

	ErrDevRedisSet       = "Failed to set value in redis"
	ErrDevRedisGet       = "Failed to get value from redis, key: %s"
	ErrDevRedisDelete    = "Failed to delete value from redis"
	ErrDevRedisSetNX     = "Failed to set NX value in redis"
	ErrDevRedisUnlock    = "Failed to release redis lock"
	ErrDevCannotMarshal  = "Failed to marshal value to JSON"
	ErrDevPublishMessage = "Failed to publish message to queue"
)
