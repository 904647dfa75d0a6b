package routers

import (
	"fmt"
	"waitingwell-service/internal/app/delivery/http/middlewares"
	"waitingwell-service/internal/app/services/core/journals"
	"waitingwell-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachJournalRoutes(router chi.Router, middlewares *middlewares.Middlewares, journalController *journals.JournalController) {
	router.Post("/", journalController.CreateJournal)
	router.Get("/", journalController.ListJournals)
	router.Get(fmt.Sprintf("/{%s}", constvars.URLParamJournalID), journalController.FindJournalByID)
	router.Delete(fmt.Sprintf("/{%s}", constvars.URLParamJournalID), journalController.DeleteJournalByID)
}
