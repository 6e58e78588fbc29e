// file: internals/features/responses/route/response_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	responseCtl "kuesionerku_backend/internals/features/responses/controller"
	middlewares "kuesionerku_backend/internals/middlewares"
)

func ResponseRoutes(api fiber.Router, db *gorm.DB) {
	ctl := responseCtl.NewResponseController(db, nil)

	r := api.Group("/responses")
	r.Post("/", middlewares.SubmitRateLimiter(), ctl.Submit)
	r.Get("/questionnaire/:questionnaireId", ctl.ListByQuestionnaire)
	r.Get("/stats/:questionnaireId", ctl.Stats)
}
