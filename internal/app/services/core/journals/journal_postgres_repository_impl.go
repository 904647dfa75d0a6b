package journals

import (
	"context"
	"database/sql"
	"sync"
	"waitingwell-service/internal/app/contracts"
	"waitingwell-service/internal/app/models"
	"waitingwell-service/internal/pkg/constvars"
	"waitingwell-service/internal/pkg/exceptions"
	"waitingwell-service/internal/pkg/queries"

	"go.uber.org/zap"
)

type journalPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	journalPostgresRepositoryInstance contracts.JournalRepository
	onceJournalPostgresRepository     sync.Once
)

func NewJournalPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.JournalRepository {
	onceJournalPostgresRepository.Do(func() {
		instance := &journalPostgresRepository{
			DB:  db,
			Log: logger,
		}
		journalPostgresRepositoryInstance = instance
	})
	return journalPostgresRepositoryInstance
}

func (r *journalPostgresRepository) CreateJournalEntry(ctx context.Context, entry *models.JournalEntry) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("journalPostgresRepository.CreateJournalEntry called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, entry.UserID),
	)

	var id string
	err := r.DB.QueryRowContext(ctx, queries.InsertJournalEntry,
		entry.ID, entry.UserID, entry.Mood, entry.Note, entry.EntryDate, entry.CreatedAt,
	).Scan(&id)
	if err != nil {
		r.Log.Error("journalPostgresRepository.CreateJournalEntry error inserting entry",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrPostgresDBInsertData(err)
	}

	return id, nil
}

func (r *journalPostgresRepository) FindJournalEntryByID(ctx context.Context, journalID string) (*models.JournalEntry, error) {
	var entry models.JournalEntry
	err := r.DB.QueryRowContext(ctx, queries.FindJournalEntryByID, journalID).Scan(
		&entry.ID, &entry.UserID, &entry.Mood, &entry.Note, &entry.EntryDate, &entry.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, exceptions.ErrPostgresDBSelectData(err)
	}
	return &entry, nil
}

func (r *journalPostgresRepository) FindJournalEntriesByUserID(ctx context.Context, userID string) ([]models.JournalEntry, error) {
	rows, err := r.DB.QueryContext(ctx, queries.FindJournalEntriesByUserID, userID)
	if err != nil {
		return nil, exceptions.ErrPostgresDBSelectData(err)
	}
	defer rows.Close()

	entries := make([]models.JournalEntry, 0)
	for rows.Next() {
		var entry models.JournalEntry
		err := rows.Scan(&entry.ID, &entry.UserID, &entry.Mood, &entry.Note, &entry.EntryDate, &entry.CreatedAt)
		if err != nil {
			return nil, exceptions.ErrPostgresDBSelectData(err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBSelectData(err)
	}

	return entries, nil
}

func (r *journalPostgresRepository) DeleteJournalEntryByID(ctx context.Context, journalID, userID string) error {
	_, err := r.DB.ExecContext(ctx, queries.DeleteJournalEntryByID, journalID, userID)
	if err != nil {
		return exceptions.ErrPostgresDBDeleteData(err)
	}
	return nil
}
