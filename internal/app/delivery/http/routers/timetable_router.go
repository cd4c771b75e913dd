package routers

import (
	"scolaris-service/internal/app/delivery/http/controllers"
	"scolaris-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachTimetableRoutes(router chi.Router, middlewares *middlewares.Middlewares, timetableController *controllers.TimetableController) {
	router.Get("/week", timetableController.GetWeekSchedule)
}
