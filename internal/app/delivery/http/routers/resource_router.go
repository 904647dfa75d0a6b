package routers

import (
	"fmt"
	"waitingwell-service/internal/app/delivery/http/middlewares"
	"waitingwell-service/internal/app/services/core/resources"
	"waitingwell-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachResourceRoutes(router chi.Router, middlewares *middlewares.Middlewares, resourceController *resources.ResourceController) {
	router.Get("/", resourceController.ListResources)
	router.Get(fmt.Sprintf("/{%s}", constvars.URLParamResourceSlug), resourceController.FindResourceBySlug)
}
