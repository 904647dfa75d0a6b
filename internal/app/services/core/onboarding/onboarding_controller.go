package onboarding

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

type OnboardingController struct {
	Log               *zap.Logger
	OnboardingUsecase contracts.OnboardingUsecase
}

func NewOnboardingController(logger *zap.Logger, onboardingUsecase contracts.OnboardingUsecase) *OnboardingController {
	return &OnboardingController{
		Log:               logger,
		OnboardingUsecase: onboardingUsecase,
	}
}

func (ctrl *OnboardingController) SubmitOnboarding(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SubmitOnboarding)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.OnboardingUsecase.SubmitOnboarding(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SubmitOnboardingSuccessMessage, response)
}

func (ctrl *OnboardingController) FindOnboardingByUserID(w http.ResponseWriter, r *http.Request) {
	request := &requests.FindOnboarding{
		UserID: chi.URLParam(r, constvars.URLParamUserID),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.OnboardingUsecase.FindOnboardingByUserID(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindOnboardingSuccessMessage, response)
}
