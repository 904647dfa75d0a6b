package constvars

const (
	URLParamUserID       = "user_id"
	URLParamJournalID    = "journal_id"
	URLParamResourceSlug = "resource_slug"
)

const (
	URLQueryParamUserID   = "user_id"
	URLQueryParamCategory = "category"
)
