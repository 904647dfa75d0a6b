package contracts

import (
	"context"
	"waitingwell-service/internal/app/models"
	"waitingwell-service/internal/pkg/dto/requests"
	"waitingwell-service/internal/pkg/dto/responses"
)

type JournalUsecase interface {
	CreateJournal(ctx context.Context, request *requests.CreateJournal) (*responses.Journal, error)
	FindJournalByID(ctx context.Context, request *requests.FindJournalByID) (*responses.Journal, error)
	ListJournals(ctx context.Context, request *requests.ListJournals) ([]responses.Journal, error)
	DeleteJournalByID(ctx context.Context, request *requests.DeleteJournalByID) error
}

type JournalRepository interface {
	CreateJournalEntry(ctx context.Context, entry *models.JournalEntry) (string, error)
	FindJournalEntryByID(ctx context.Context, journalID string) (*models.JournalEntry, error)
	FindJournalEntriesByUserID(ctx context.Context, userID string) ([]models.JournalEntry, error)
	DeleteJournalEntryByID(ctx context.Context, journalID, userID string) error
}
