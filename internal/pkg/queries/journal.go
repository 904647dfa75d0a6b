package queries

const (
	InsertJournalEntry = `
		INSERT INTO journal_entries (id, user_id, mood, note, entry_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	FindJournalEntryByID = `
		SELECT id, user_id, mood, note, entry_date, created_at
		FROM journal_entries
		WHERE id = $1
	`

	FindJournalEntriesByUserID = `
		SELECT id, user_id, mood, note, entry_date, created_at
		FROM journal_entries
		WHERE user_id = $1
		ORDER BY entry_date DESC, created_at DESC
	`

	DeleteJournalEntryByID = `
		DELETE FROM journal_entries
		WHERE id = $1 AND user_id = $2
	`
)
