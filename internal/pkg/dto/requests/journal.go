package requests

type CreateJournal struct {
	UserID    string `json:"user_id" validate:"required"`
	Mood      string `json:"mood" validate:"required,mood"`
	Note      string `json:"note,omitempty" validate:"max=2000"`
	EntryDate string `json:"entry_date" validate:"required,datetime=2006-01-02"`
}

type FindJournalByID struct {
	JournalID string `validate:"required"`
}

type ListJournals struct {
	UserID string `validate:"required"`
}

type DeleteJournalByID struct {
	JournalID string `validate:"required"`
	UserID    string `validate:"required"`
}
