package journals

import (
	"context"
	"sync"
	"time"
	"waitingwell-service/internal/app/contracts"
	"waitingwell-service/internal/app/models"
	"waitingwell-service/internal/pkg/dto/requests"
	"waitingwell-service/internal/pkg/dto/responses"
	"waitingwell-service/internal/pkg/exceptions"
	"waitingwell-service/internal/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type journalUsecase struct {
	JournalRepository contracts.JournalRepository
	Log               *zap.Logger
}

var (
	journalUsecaseInstance contracts.JournalUsecase
	onceJournalUsecase     sync.Once
)

func NewJournalUsecase(journalRepository contracts.JournalRepository, logger *zap.Logger) contracts.JournalUsecase {
	onceJournalUsecase.Do(func() {
		instance := &journalUsecase{
			JournalRepository: journalRepository,
			Log:               logger,
		}
		journalUsecaseInstance = instance
	})
	return journalUsecaseInstance
}

func (uc *journalUsecase) CreateJournal(ctx context.Context, request *requests.CreateJournal) (*responses.Journal, error) {
	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	entryDate, err := time.Parse("2006-01-02", request.EntryDate)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	entry := &models.JournalEntry{
		ID:        uuid.NewString(),
		UserID:    request.UserID,
		Mood:      request.Mood,
		Note:      request.Note,
		EntryDate: entryDate,
		CreatedAt: time.Now().UTC(),
	}

	_, err = uc.JournalRepository.CreateJournalEntry(ctx, entry)
	if err != nil {
		return nil, err
	}

	return mapJournalToResponse(entry), nil
}

func (uc *journalUsecase) FindJournalByID(ctx context.Context, request *requests.FindJournalByID) (*responses.Journal, error) {
	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	entry, err := uc.JournalRepository.FindJournalEntryByID(ctx, request.JournalID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, exceptions.ErrJournalNotFound(nil)
	}

	return mapJournalToResponse(entry), nil
}

func (uc *journalUsecase) ListJournals(ctx context.Context, request *requests.ListJournals) ([]responses.Journal, error) {
	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	entries, err := uc.JournalRepository.FindJournalEntriesByUserID(ctx, request.UserID)
	if err != nil {
		return nil, err
	}

	journals := make([]responses.Journal, 0, len(entries))
	for i := range entries {
		journals = append(journals, *mapJournalToResponse(&entries[i]))
	}
	return journals, nil
}

func (uc *journalUsecase) DeleteJournalByID(ctx context.Context, request *requests.DeleteJournalByID) error {
	err := utils.ValidateStruct(request)
	if err != nil {
		return exceptions.ErrInputValidation(err)
	}

	entry, err := uc.JournalRepository.FindJournalEntryByID(ctx, request.JournalID)
	if err != nil {
		return err
	}
	if entry == nil || entry.UserID != request.UserID {
		return exceptions.ErrJournalNotFound(nil)
	}

	return uc.JournalRepository.DeleteJournalEntryByID(ctx, request.JournalID, request.UserID)
}

func mapJournalToResponse(entry *models.JournalEntry) *responses.Journal {
	return &responses.Journal{
		JournalID: entry.ID,
		UserID:    entry.UserID,
		Mood:      entry.Mood,
		Note:      entry.Note,
		EntryDate: entry.EntryDate,
		CreatedAt: entry.CreatedAt,
	}
}
