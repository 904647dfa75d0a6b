package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Assessment messages
	SubmitWeeklyAssessmentSuccessMessage = "weekly check-in submitted successfully"
	FindAssessmentHistorySuccessMessage  = "assessment history retrieved successfully"
	FindEligibilitySuccessMessage        = "eligibility retrieved successfully"

	// Onboarding messages
	SubmitOnboardingSuccessMessage = "initial check-in submitted successfully"
	FindOnboardingSuccessMessage   = "initial check-in retrieved successfully"

	// Journal messages
	CreateJournalSuccessMessage = "journal entry created successfully"
	FindJournalSuccessMessage   = "journal entry retrieved successfully"
	ListJournalSuccessMessage   = "journal entries retrieved successfully"
	DeleteJournalSuccessMessage = "journal entry deleted successfully"

	// Resource library messages
	ListResourceSuccessMessage = "resources retrieved successfully"
	FindResourceSuccessMessage = "resource retrieved successfully"
)
