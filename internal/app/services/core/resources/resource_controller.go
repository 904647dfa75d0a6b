package resources

import (
	"context"
	"net/http"
	"time"
	"waitingwell-service/internal/app/contracts"
	"waitingwell-service/internal/pkg/constvars"
	"waitingwell-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ResourceController struct {
	Log             *zap.Logger
	ResourceUsecase contracts.ResourceUsecase
}

func NewResourceController(logger *zap.Logger, resourceUsecase contracts.ResourceUsecase) *ResourceController {
	return &ResourceController{
		Log:             logger,
		ResourceUsecase: resourceUsecase,
	}
}

func (ctrl *ResourceController) ListResources(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get(constvars.URLQueryParamCategory)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ResourceUsecase.ListResources(ctx, category)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListResourceSuccessMessage, response)
}

func (ctrl *ResourceController) FindResourceBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, constvars.URLParamResourceSlug)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ResourceUsecase.FindResourceBySlug(ctx, slug)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindResourceSuccessMessage, response)
}
