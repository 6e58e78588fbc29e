// file: internals/features/questionnaires/route/questionnaire_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	questionnaireCtl "kuesionerku_backend/internals/features/questionnaires/controller"
)

func QuestionnaireRoutes(api fiber.Router, db *gorm.DB) {
	ctl := questionnaireCtl.NewQuestionnaireController(db, nil)

	r := api.Group("/questionnaires")
	r.Get("/", ctl.List)
	r.Get("/:id", ctl.GetByID)
	r.Post("/", ctl.Create)
	r.Put("/:id", ctl.Update)
	r.Delete("/:id", ctl.Delete)
}
