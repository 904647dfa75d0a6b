package assessments

import (
	"context"
	"net/http"
	"time"
	"waitingwell-service/internal/app/contracts"
	"waitingwell-service/internal/pkg/constvars"
	"waitingwell-service/internal/pkg/dto/requests"
	"waitingwell-service/internal/pkg/exceptions"
	"waitingwell-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AssessmentController struct {
	Log               *zap.Logger
	AssessmentUsecase contracts.AssessmentUsecase
}

func NewAssessmentController(logger *zap.Logger, assessmentUsecase contracts.AssessmentUsecase) *AssessmentController {
	return &AssessmentController{
		Log:               logger,
		AssessmentUsecase: assessmentUsecase,
	}
}

func (ctrl *AssessmentController) SubmitWeeklyAssessment(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SubmitWeeklyAssessment)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AssessmentUsecase.SubmitWeeklyAssessment(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SubmitWeeklyAssessmentSuccessMessage, response)
}

func (ctrl *AssessmentController) FindAssessmentHistory(w http.ResponseWriter, r *http.Request) {
	request := &requests.FindAssessmentHistory{
		UserID: r.URL.Query().Get(constvars.URLQueryParamUserID),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AssessmentUsecase.FindAssessmentHistory(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindAssessmentHistorySuccessMessage, response)
}

func (ctrl *AssessmentController) FindEligibility(w http.ResponseWriter, r *http.Request) {
	request := &requests.FindEligibility{
		UserID: r.URL.Query().Get(constvars.URLQueryParamUserID),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AssessmentUsecase.FindEligibility(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindEligibilitySuccessMessage, response)
}
