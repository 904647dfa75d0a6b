package journals

import (
	"context"
	"net/http"
	"time"
	"waitingwell-service/internal/app/contracts"
	"waitingwell-service/internal/pkg/constvars"
	"waitingwell-service/internal/pkg/dto/requests"
	"waitingwell-service/internal/pkg/exceptions"
	"waitingwell-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type JournalController struct {
	Log            *zap.Logger
	JournalUsecase contracts.JournalUsecase
}

func NewJournalController(logger *zap.Logger, journalUsecase contracts.JournalUsecase) *JournalController {
	return &JournalController{
		Log:            logger,
		JournalUsecase: journalUsecase,
	}
}

func (ctrl *JournalController) CreateJournal(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateJournal)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.JournalUsecase.CreateJournal(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateJournalSuccessMessage, response)
}

func (ctrl *JournalController) FindJournalByID(w http.ResponseWriter, r *http.Request) {
	request := &requests.FindJournalByID{
		JournalID: chi.URLParam(r, constvars.URLParamJournalID),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.JournalUsecase.FindJournalByID(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindJournalSuccessMessage, response)
}

func (ctrl *JournalController) ListJournals(w http.ResponseWriter, r *http.Request) {
	request := &requests.ListJournals{
		UserID: r.URL.Query().Get(constvars.URLQueryParamUserID),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.JournalUsecase.ListJournals(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListJournalSuccessMessage, response)
}

func (ctrl *JournalController) DeleteJournalByID(w http.ResponseWriter, r *http.Request) {
	request := &requests.DeleteJournalByID{
		JournalID: chi.URLParam(r, constvars.URLParamJournalID),
		UserID:    r.URL.Query().Get(constvars.URLQueryParamUserID),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err := ctrl.JournalUsecase.DeleteJournalByID(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteJournalSuccessMessage, nil)
}
