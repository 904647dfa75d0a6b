package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	ResourceAssessments = "assessments"
	ResourceOnboarding  = "onboarding"
	ResourceJournals    = "journals"
	ResourceLibrary     = "resources"
)

// Redis key formats. Submission locks fence the eligibility check and week
// number assignment for one user at a time.
const (
	RedisKeySubmissionLockFormat = "assessment:submit-lock:%s"
	RedisKeyResourceListFormat   = "resources:list:%s"
)
